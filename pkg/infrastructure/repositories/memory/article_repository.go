package memory

import (
	"slotter/pkg/domain/entities"
	"slotter/pkg/domain/repositories"
)

// ArticleRepository provides in-memory article master storage
type ArticleRepository struct {
	articles []*entities.ArticleRecord
}

// NewArticleRepository creates a new in-memory article repository
func NewArticleRepository() *ArticleRepository {
	return &ArticleRepository{
		articles: []*entities.ArticleRecord{},
	}
}

// Verify interface compliance
var _ repositories.ArticleRepository = (*ArticleRepository)(nil)

// LoadArticles loads article master rows into the repository
func (r *ArticleRepository) LoadArticles(articles []*entities.ArticleRecord) error {
	r.articles = append(r.articles, articles...)
	return nil
}

// GetArticles returns all article master rows in load order
func (r *ArticleRepository) GetArticles() ([]*entities.ArticleRecord, error) {
	return r.articles, nil
}
