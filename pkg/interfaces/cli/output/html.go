package output

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"slotter/pkg/application/dto"
	"slotter/pkg/domain/entities"
)

//go:embed templates/*.html
var templateFS embed.FS

// BayRow is one bay in the HTML utilization report
type BayRow struct {
	Code        string
	Small       int
	Medium      int
	Large       int
	TotalSlots  int
	Used        int
	Utilization int
	Weight      string
	Composition string
	Provenance  string
	Synthesized bool
}

// FindingRow is one validation finding in the HTML report
type FindingRow struct {
	Scope    string
	Severity string
	Category string
	Count    int
	Samples  []string
	Blocking bool
}

// ReportData contains all data for rendering the HTML report
type ReportData struct {
	Bays        []BayRow
	Findings    []FindingRow
	Stats       dto.RunStats
	Ready       bool
	Overflows   int
	RunTime     string
	GeneratedAt string
}

// GenerateHTML renders the bay utilization report
func GenerateHTML(result *dto.SlottingResult, config Config) (string, error) {
	if config.Verbose {
		fmt.Printf("    📊 Processing %d bays for report...\n", len(result.Bays))
	}

	data := buildReportData(result, config)

	tmpl, err := template.ParseFS(templateFS, "templates/bay_report.html")
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

func buildReportData(result *dto.SlottingResult, config Config) *ReportData {
	data := &ReportData{
		Stats:       result.Stats,
		Ready:       result.Ready(),
		Overflows:   len(result.Overflows),
		RunTime:     config.RunTime.String(),
		GeneratedAt: time.Now().Format("2006-01-02 15:04:05"),
	}

	used := assignmentsPerBay(result.Assignments)
	for _, bay := range result.Bays {
		total := bay.TotalSlots()
		utilization := 0
		if total > 0 {
			utilization = used[bay.Code] * 100 / total
		}
		data.Bays = append(data.Bays, BayRow{
			Code:        bay.Code,
			Small:       bay.Inventory[entities.Small],
			Medium:      bay.Inventory[entities.Medium],
			Large:       bay.Inventory[entities.Large],
			TotalSlots:  total,
			Used:        used[bay.Code],
			Utilization: utilization,
			Weight:      bayWeight(bay).String(),
			Composition: formatComposition(bay.Composition),
			Provenance:  bay.Provenance.String(),
			Synthesized: bay.Provenance == entities.Synthesized,
		})
	}

	for _, finding := range result.Findings {
		data.Findings = append(data.Findings, FindingRow{
			Scope:    finding.Scope,
			Severity: finding.Severity.String(),
			Category: finding.Category,
			Count:    finding.Count,
			Samples:  finding.Samples,
			Blocking: finding.Severity == entities.Error,
		})
	}

	return data
}

// generateHTMLOutput creates the HTML report file
func generateHTMLOutput(result *dto.SlottingResult, config Config) error {
	if config.OutputDir == "" {
		return fmt.Errorf("output directory required for HTML format")
	}

	html, err := GenerateHTML(result, config)
	if err != nil {
		return fmt.Errorf("failed to generate HTML report: %w", err)
	}

	if config.Verbose {
		fmt.Printf("  📝 Generated HTML document (%d bytes)\n", len(html))
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := filepath.Join(config.OutputDir, "bay_report.html")
	if err := os.WriteFile(filename, []byte(html), 0644); err != nil {
		return fmt.Errorf("failed to write HTML file: %w", err)
	}

	if config.Verbose {
		fmt.Printf("🌐 Bay utilization report saved to: %s\n", filename)
	}

	return nil
}
