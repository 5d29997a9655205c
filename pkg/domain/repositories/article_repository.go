package repositories

import "slotter/pkg/domain/entities"

// ArticleRepository provides access to article master data
type ArticleRepository interface {
	GetArticles() ([]*entities.ArticleRecord, error)
	LoadArticles(articles []*entities.ArticleRecord) error
}
