package csv

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"slotter/pkg/domain/entities"
)

// Loader handles loading slotting input data from CSV files. Legacy WMS
// exports are not always UTF-8; Encoding selects the decoder applied to
// every file ("utf-8", "shift-jis" or "windows-1252").
type Loader struct {
	Encoding string
}

// NewLoader creates a new CSV loader reading UTF-8 input
func NewLoader() *Loader {
	return &Loader{Encoding: "utf-8"}
}

// NewLoaderWithEncoding creates a CSV loader for a specific file encoding
func NewLoaderWithEncoding(encoding string) (*Loader, error) {
	switch strings.ToLower(encoding) {
	case "", "utf-8", "utf8", "shift-jis", "sjis", "windows-1252", "cp1252":
		return &Loader{Encoding: strings.ToLower(encoding)}, nil
	default:
		return nil, fmt.Errorf("unsupported encoding: %s", encoding)
	}
}

// LoadLocations loads the location master from a CSV file. Malformed rows
// are skipped and counted, never fatal.
func (l *Loader) LoadLocations(filename string) ([]*entities.MasterLocation, int, error) {
	records, err := l.readAll(filename)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read locations file %s: %w", filename, err)
	}

	expectedHeader := []string{"location_code", "aisle", "bay_number", "slot_type"}
	if err := validateHeader(records, expectedHeader); err != nil {
		return nil, 0, fmt.Errorf("locations CSV: %w", err)
	}

	var locations []*entities.MasterLocation
	skipped := 0
	for _, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			skipped++
			continue
		}

		code := strings.TrimSpace(record[0])
		aisle := strings.TrimSpace(record[1])
		bayNumber := strings.TrimSpace(record[2])
		if code == "" || aisle == "" || bayNumber == "" {
			skipped++
			continue
		}

		locations = append(locations, &entities.MasterLocation{
			Code:      code,
			Aisle:     aisle,
			BayNumber: bayNumber,
			SlotType:  strings.TrimSpace(record[3]),
		})
	}

	return locations, skipped, nil
}

// LoadArticles loads the article master from a CSV file
func (l *Loader) LoadArticles(filename string) ([]*entities.ArticleRecord, int, error) {
	records, err := l.readAll(filename)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read articles file %s: %w", filename, err)
	}

	expectedHeader := []string{"article_number", "pick_location"}
	if err := validateHeader(records, expectedHeader); err != nil {
		return nil, 0, fmt.Errorf("articles CSV: %w", err)
	}

	var articles []*entities.ArticleRecord
	skipped := 0
	for _, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			skipped++
			continue
		}

		article, ok := parseArticleNumber(record[0])
		if !ok {
			skipped++
			continue
		}

		articles = append(articles, &entities.ArticleRecord{
			Article:      article,
			PickLocation: strings.TrimSpace(record[1]),
		})
	}

	return articles, skipped, nil
}

// LoadDemands loads the demand event stream from a CSV file. Rows with an
// unparsable article identifier or quantity are skipped; a row with an
// unparsable date is kept with a zero picked-at time so it sorts oldest.
func (l *Loader) LoadDemands(filename string) ([]*entities.DemandEvent, int, error) {
	records, err := l.readAll(filename)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read demands file %s: %w", filename, err)
	}

	expectedHeader := []string{"article_number", "location_code", "picked_at", "quantity", "order_ref"}
	if err := validateHeader(records, expectedHeader); err != nil {
		return nil, 0, fmt.Errorf("demands CSV: %w", err)
	}

	var demands []*entities.DemandEvent
	skipped := 0
	for _, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			skipped++
			continue
		}

		article, ok := parseArticleNumber(record[0])
		if !ok {
			skipped++
			continue
		}

		locationCode := strings.TrimSpace(record[1])
		if locationCode == "" {
			skipped++
			continue
		}

		quantity, err := strconv.ParseInt(strings.TrimSpace(record[3]), 10, 64)
		if err != nil || quantity <= 0 {
			skipped++
			continue
		}

		demands = append(demands, &entities.DemandEvent{
			Article:      article,
			LocationCode: locationCode,
			PickedAt:     parsePickedAt(record[2]),
			Quantity:     quantity,
			OrderRef:     strings.TrimSpace(record[4]),
		})
	}

	return demands, skipped, nil
}

// readAll opens, decodes and tokenizes one CSV file
func (l *Loader) readAll(filename string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(skipBOM(l.decode(file)))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	return records, nil
}

func (l *Loader) decode(r io.Reader) io.Reader {
	switch l.Encoding {
	case "shift-jis", "sjis":
		return transform.NewReader(r, japanese.ShiftJIS.NewDecoder())
	case "windows-1252", "cp1252":
		return transform.NewReader(r, charmap.Windows1252.NewDecoder())
	default:
		return r
	}
}

// skipBOM drops a leading UTF-8 byte order mark
func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	peeked, err := br.Peek(3)
	if err == nil && peeked[0] == 0xEF && peeked[1] == 0xBB && peeked[2] == 0xBF {
		br.Discard(3)
	}
	return br
}

func validateHeader(records [][]string, expected []string) error {
	if len(records) < 2 {
		return fmt.Errorf("must have header and at least one data row")
	}

	header := records[0]
	if len(header) != len(expected) {
		return fmt.Errorf("header mismatch. Expected: %v, Got: %v", expected, header)
	}
	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(header[i])) != col {
			return fmt.Errorf("header mismatch. Expected: %v, Got: %v", expected, header)
		}
	}
	return nil
}

// parseArticleNumber rejects empty and non-numeric article identifiers
func parseArticleNumber(raw string) (entities.ArticleNumber, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false
	}
	if _, err := strconv.ParseUint(trimmed, 10, 64); err != nil {
		return "", false
	}
	return entities.ArticleNumber(trimmed), true
}

// pickedAtLayouts lists the date shapes seen in WMS exports, most specific
// first. A fallback date without time is common in archived picks.
var pickedAtLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02.01.2006",
}

// parsePickedAt derives the event date; unparsable input yields the zero
// time, which the engine sorts as the oldest possible value
func parsePickedAt(raw string) time.Time {
	trimmed := strings.TrimSpace(raw)
	for _, layout := range pickedAtLayouts {
		if ts, err := time.Parse(layout, trimmed); err == nil {
			return ts
		}
	}
	return time.Time{}
}
