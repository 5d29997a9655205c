package sqlite

import (
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"slotter/pkg/application/dto"
	"slotter/pkg/domain/entities"
)

// Store reads slotting inputs from a WMS snapshot database and persists
// run results back into result tables
type Store struct {
	db *sqlx.DB
}

// Open opens (or creates) a snapshot database
func Open(path string) (*Store, error) {
	db, err := sqlx.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot database %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

// Migrate creates the input and result tables if they do not exist
func (s *Store) Migrate() error {
	const schema = `
	CREATE TABLE IF NOT EXISTS location_master (
		location_code TEXT PRIMARY KEY,
		aisle         TEXT NOT NULL,
		bay_number    TEXT NOT NULL,
		slot_type     TEXT NOT NULL DEFAULT ''
	);
	CREATE TABLE IF NOT EXISTS article_master (
		article_number TEXT NOT NULL,
		pick_location  TEXT NOT NULL DEFAULT ''
	);
	CREATE TABLE IF NOT EXISTS demand_events (
		article_number TEXT NOT NULL,
		location_code  TEXT NOT NULL,
		picked_at      TEXT NOT NULL DEFAULT '',
		quantity       INTEGER NOT NULL DEFAULT 1,
		order_ref      TEXT NOT NULL DEFAULT ''
	);
	CREATE TABLE IF NOT EXISTS slotting_bays (
		bay_code    TEXT PRIMARY KEY,
		layout      TEXT NOT NULL,
		total_slots INTEGER NOT NULL,
		composition TEXT NOT NULL,
		provenance  TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS slotting_assignments (
		article_number  TEXT NOT NULL,
		bay_code        TEXT NOT NULL,
		size_class      TEXT NOT NULL,
		source_location TEXT NOT NULL,
		bay_provenance  TEXT NOT NULL,
		PRIMARY KEY (article_number, bay_code)
	);
	CREATE TABLE IF NOT EXISTS slotting_overflows (
		article_number  TEXT NOT NULL,
		bay_code        TEXT NOT NULL,
		size_class      TEXT NOT NULL,
		source_location TEXT NOT NULL,
		picked_at       TEXT NOT NULL,
		reason          TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS slotting_location_audit (
		location_code TEXT PRIMARY KEY,
		bay_code      TEXT NOT NULL,
		size_class    TEXT NOT NULL,
		provenance    TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS slotting_findings (
		position  INTEGER PRIMARY KEY,
		scope     TEXT NOT NULL,
		severity  TEXT NOT NULL,
		category  TEXT NOT NULL,
		count     INTEGER NOT NULL,
		samples   TEXT NOT NULL
	);`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to migrate snapshot schema: %w", err)
	}
	return nil
}

type locationRow struct {
	Code      string `db:"location_code"`
	Aisle     string `db:"aisle"`
	BayNumber string `db:"bay_number"`
	SlotType  string `db:"slot_type"`
}

type articleRow struct {
	Article      string `db:"article_number"`
	PickLocation string `db:"pick_location"`
}

type demandRow struct {
	Article      string `db:"article_number"`
	LocationCode string `db:"location_code"`
	PickedAt     string `db:"picked_at"`
	Quantity     int64  `db:"quantity"`
	OrderRef     string `db:"order_ref"`
}

// LoadLocations reads the location master from the snapshot
func (s *Store) LoadLocations() ([]*entities.MasterLocation, error) {
	var rows []locationRow
	const q = `SELECT location_code, aisle, bay_number, slot_type FROM location_master ORDER BY rowid`
	if err := s.db.Select(&rows, q); err != nil {
		return nil, fmt.Errorf("failed to load location_master: %w", err)
	}

	locations := make([]*entities.MasterLocation, 0, len(rows))
	for _, row := range rows {
		locations = append(locations, &entities.MasterLocation{
			Code:      row.Code,
			Aisle:     row.Aisle,
			BayNumber: row.BayNumber,
			SlotType:  row.SlotType,
		})
	}
	return locations, nil
}

// LoadArticles reads the article master from the snapshot
func (s *Store) LoadArticles() ([]*entities.ArticleRecord, error) {
	var rows []articleRow
	const q = `SELECT article_number, pick_location FROM article_master ORDER BY rowid`
	if err := s.db.Select(&rows, q); err != nil {
		return nil, fmt.Errorf("failed to load article_master: %w", err)
	}

	articles := make([]*entities.ArticleRecord, 0, len(rows))
	for _, row := range rows {
		articles = append(articles, &entities.ArticleRecord{
			Article:      entities.ArticleNumber(row.Article),
			PickLocation: row.PickLocation,
		})
	}
	return articles, nil
}

// LoadDemands reads the demand stream from the snapshot in stored order
func (s *Store) LoadDemands() ([]*entities.DemandEvent, error) {
	var rows []demandRow
	const q = `SELECT article_number, location_code, picked_at, quantity, order_ref FROM demand_events ORDER BY rowid`
	if err := s.db.Select(&rows, q); err != nil {
		return nil, fmt.Errorf("failed to load demand_events: %w", err)
	}

	demands := make([]*entities.DemandEvent, 0, len(rows))
	for _, row := range rows {
		demands = append(demands, &entities.DemandEvent{
			Article:      entities.ArticleNumber(row.Article),
			LocationCode: row.LocationCode,
			PickedAt:     parseStoredTime(row.PickedAt),
			Quantity:     row.Quantity,
			OrderRef:     row.OrderRef,
		})
	}
	return demands, nil
}

// SaveResult replaces any previous run's result tables with this run's
// output in a single transaction
func (s *Store) SaveResult(result *dto.SlottingResult) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin result transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{
		"slotting_bays", "slotting_assignments", "slotting_overflows",
		"slotting_location_audit", "slotting_findings",
	} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for _, bay := range result.Bays {
		_, err := tx.Exec(
			`INSERT INTO slotting_bays (bay_code, layout, total_slots, composition, provenance) VALUES (?, ?, ?, ?, ?)`,
			bay.Code, renderLayout(bay.Layout), bay.TotalSlots(), renderComposition(bay.Composition), bay.Provenance.String(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert bay %s: %w", bay.Code, err)
		}
	}

	for _, alloc := range result.Assignments {
		_, err := tx.Exec(
			`INSERT INTO slotting_assignments (article_number, bay_code, size_class, source_location, bay_provenance) VALUES (?, ?, ?, ?, ?)`,
			string(alloc.Article), alloc.BayCode, alloc.SizeClass.String(), alloc.SourceLocation, alloc.BayProvenance.String(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert assignment %s@%s: %w", alloc.Article, alloc.BayCode, err)
		}
	}

	for _, overflow := range result.Overflows {
		_, err := tx.Exec(
			`INSERT INTO slotting_overflows (article_number, bay_code, size_class, source_location, picked_at, reason) VALUES (?, ?, ?, ?, ?, ?)`,
			string(overflow.Article), overflow.BayCode, overflow.SizeClass.String(),
			overflow.SourceLocation, renderStoredTime(overflow.PickedAt), overflow.Reason,
		)
		if err != nil {
			return fmt.Errorf("failed to insert overflow %s@%s: %w", overflow.Article, overflow.BayCode, err)
		}
	}

	for _, entry := range result.LocationAudit {
		_, err := tx.Exec(
			`INSERT INTO slotting_location_audit (location_code, bay_code, size_class, provenance) VALUES (?, ?, ?, ?)`,
			entry.Code, entry.BayCode, entry.SizeClass, entry.Provenance,
		)
		if err != nil {
			return fmt.Errorf("failed to insert audit entry %s: %w", entry.Code, err)
		}
	}

	for i, finding := range result.Findings {
		_, err := tx.Exec(
			`INSERT INTO slotting_findings (position, scope, severity, category, count, samples) VALUES (?, ?, ?, ?, ?, ?)`,
			i+1, finding.Scope, finding.Severity.String(), finding.Category, finding.Count, strings.Join(finding.Samples, ","),
		)
		if err != nil {
			return fmt.Errorf("failed to insert finding %s: %w", finding.Category, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit result transaction: %w", err)
	}
	return nil
}

const storedTimeLayout = "2006-01-02 15:04:05"

// parseStoredTime tolerates date-only values; anything else sorts oldest
func parseStoredTime(raw string) time.Time {
	for _, layout := range []string{storedTimeLayout, "2006-01-02"} {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts
		}
	}
	return time.Time{}
}

func renderStoredTime(ts time.Time) string {
	if ts.IsZero() {
		return ""
	}
	return ts.Format(storedTimeLayout)
}

// renderLayout serializes a capacity layout as its ordered weight list,
// e.g. "0.25,0.25,0.5"
func renderLayout(layout []entities.SizeClass) string {
	weights := make([]string, len(layout))
	for i, class := range layout {
		weights[i] = class.Weight().String()
	}
	return strings.Join(weights, ",")
}

func renderComposition(composition []entities.SlotTypeCount) string {
	parts := make([]string, len(composition))
	for i, entry := range composition {
		parts[i] = fmt.Sprintf("%s x%d", entry.SlotType, entry.Count)
	}
	return strings.Join(parts, ", ")
}
