package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"slotter/pkg/application/dto"
	"slotter/pkg/domain/entities"
)

// Config holds configuration for output generation
type Config struct {
	Format     string
	OutputDir  string
	Verbose    bool
	RunTime    time.Duration
	InputFiles map[string]string
}

// Generate creates output in the specified format
func Generate(result *dto.SlottingResult, config Config) error {
	switch config.Format {
	case "text":
		return generateTextOutput(result, config)
	case "json":
		return generateJSONOutput(result, config)
	case "csv":
		return generateCSVOutput(result, config)
	case "html":
		return generateHTMLOutput(result, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateTextOutput creates human-readable text output
func generateTextOutput(result *dto.SlottingResult, config Config) error {
	fmt.Printf("📊 Slotting Results Summary\n")
	fmt.Printf("===========================\n\n")

	fmt.Printf("Bays: %d\n", len(result.Bays))
	fmt.Printf("Assignments: %d\n", len(result.Assignments))
	fmt.Printf("Overflows: %d\n", len(result.Overflows))
	fmt.Printf("Findings: %d\n", len(result.Findings))
	fmt.Printf("Run Time: %v\n\n", config.RunTime)

	fmt.Printf("Demand stream: %d events, %d considered",
		result.Stats.TotalEvents, result.Stats.ConsideredEvents)
	if result.Stats.CappedEvents > 0 {
		fmt.Printf(" (%d beyond cap)", result.Stats.CappedEvents)
	}
	fmt.Printf(", %d duplicate pairs skipped, %d unroutable\n\n",
		result.Stats.ServedSkips, result.Stats.UnroutableSkips)

	if len(result.Bays) > 0 {
		fmt.Printf("🏗️  Bay Inventory:\n")
		fmt.Printf("%-12s %-8s %-8s %-8s %-8s %-10s %-12s\n",
			"Bay", "Small", "Medium", "Large", "Used", "Weight", "Provenance")
		fmt.Printf("%-12s %-8s %-8s %-8s %-8s %-10s %-12s\n",
			"------------", "--------", "--------", "--------", "--------", "----------", "------------")

		used := assignmentsPerBay(result.Assignments)
		for _, bay := range result.Bays {
			fmt.Printf("%-12s %-8d %-8d %-8d %-8d %-10s %-12s\n",
				bay.Code,
				bay.Inventory[entities.Small],
				bay.Inventory[entities.Medium],
				bay.Inventory[entities.Large],
				used[bay.Code],
				bayWeight(bay).String(),
				bay.Provenance)
		}
		fmt.Println()
	}

	if len(result.Assignments) > 0 {
		fmt.Printf("📦 Assignments:\n")
		fmt.Printf("%-12s %-12s %-8s %-16s\n",
			"Article", "Bay", "Size", "Source Location")
		fmt.Printf("%-12s %-12s %-8s %-16s\n",
			"------------", "------------", "--------", "----------------")

		for _, assignment := range result.Assignments {
			fmt.Printf("%-12s %-12s %-8s %-16s\n",
				assignment.Article,
				assignment.BayCode,
				assignment.SizeClass,
				assignment.SourceLocation)
		}
		fmt.Println()
	}

	if len(result.Overflows) > 0 {
		fmt.Printf("🌊 Overflows:\n")
		fmt.Printf("%-12s %-12s %-8s %-12s %-20s\n",
			"Article", "Bay", "Size", "Picked At", "Reason")
		fmt.Printf("%-12s %-12s %-8s %-12s %-20s\n",
			"------------", "------------", "--------", "------------", "--------------------")

		for _, overflow := range result.Overflows {
			fmt.Printf("%-12s %-12s %-8s %-12s %-20s\n",
				overflow.Article,
				overflow.BayCode,
				overflow.SizeClass,
				formatPickedAt(overflow.PickedAt),
				overflow.Reason)
		}
		fmt.Println()
	}

	if len(result.Findings) > 0 {
		fmt.Printf("⚠️  Findings:\n")
		fmt.Printf("%-12s %-10s %-32s %-8s %s\n",
			"Scope", "Severity", "Category", "Count", "Samples")
		fmt.Printf("%-12s %-10s %-32s %-8s %s\n",
			"------------", "----------", "--------------------------------", "--------", "-------")

		for _, finding := range result.Findings {
			fmt.Printf("%-12s %-10s %-32s %-8d %v\n",
				finding.Scope,
				finding.Severity,
				finding.Category,
				finding.Count,
				finding.Samples)
		}
		fmt.Println()
	}

	if result.Ready() {
		fmt.Printf("✅ No blocking findings\n")
	} else {
		fmt.Printf("❌ Blocking findings present\n")
	}

	return nil
}

// jsonReport is the stable JSON shape of a slotting run
type jsonReport struct {
	Bays          []jsonBay                `json:"bays"`
	Assignments   []jsonAssignment         `json:"assignments"`
	Overflows     []jsonOverflow           `json:"overflows"`
	LocationAudit []dto.LocationAuditEntry `json:"location_audit"`
	Findings      []jsonFinding            `json:"findings"`
	Stats         dto.RunStats             `json:"stats"`
	Ready         bool                     `json:"ready"`
}

type jsonBay struct {
	Code        string          `json:"code"`
	Small       int             `json:"small"`
	Medium      int             `json:"medium"`
	Large       int             `json:"large"`
	TotalSlots  int             `json:"total_slots"`
	Weight      decimal.Decimal `json:"weight"`
	Composition string          `json:"composition"`
	Provenance  string          `json:"provenance"`
}

type jsonAssignment struct {
	Article        string `json:"article"`
	BayCode        string `json:"bay_code"`
	SizeClass      string `json:"size_class"`
	SourceLocation string `json:"source_location"`
	BayProvenance  string `json:"bay_provenance"`
}

type jsonOverflow struct {
	Article        string `json:"article"`
	BayCode        string `json:"bay_code"`
	SizeClass      string `json:"size_class"`
	SourceLocation string `json:"source_location"`
	PickedAt       string `json:"picked_at"`
	Reason         string `json:"reason"`
}

type jsonFinding struct {
	Scope    string   `json:"scope"`
	Severity string   `json:"severity"`
	Category string   `json:"category"`
	Count    int      `json:"count"`
	Samples  []string `json:"samples"`
}

func buildJSONReport(result *dto.SlottingResult) *jsonReport {
	report := &jsonReport{
		Bays:          make([]jsonBay, 0, len(result.Bays)),
		Assignments:   make([]jsonAssignment, 0, len(result.Assignments)),
		Overflows:     make([]jsonOverflow, 0, len(result.Overflows)),
		LocationAudit: result.LocationAudit,
		Findings:      make([]jsonFinding, 0, len(result.Findings)),
		Stats:         result.Stats,
		Ready:         result.Ready(),
	}

	for _, bay := range result.Bays {
		report.Bays = append(report.Bays, jsonBay{
			Code:        bay.Code,
			Small:       bay.Inventory[entities.Small],
			Medium:      bay.Inventory[entities.Medium],
			Large:       bay.Inventory[entities.Large],
			TotalSlots:  bay.TotalSlots(),
			Weight:      bayWeight(bay),
			Composition: formatComposition(bay.Composition),
			Provenance:  bay.Provenance.String(),
		})
	}

	for _, assignment := range result.Assignments {
		report.Assignments = append(report.Assignments, jsonAssignment{
			Article:        string(assignment.Article),
			BayCode:        assignment.BayCode,
			SizeClass:      assignment.SizeClass.String(),
			SourceLocation: assignment.SourceLocation,
			BayProvenance:  assignment.BayProvenance.String(),
		})
	}

	for _, overflow := range result.Overflows {
		report.Overflows = append(report.Overflows, jsonOverflow{
			Article:        string(overflow.Article),
			BayCode:        overflow.BayCode,
			SizeClass:      overflow.SizeClass.String(),
			SourceLocation: overflow.SourceLocation,
			PickedAt:       formatPickedAt(overflow.PickedAt),
			Reason:         overflow.Reason,
		})
	}

	for _, finding := range result.Findings {
		report.Findings = append(report.Findings, jsonFinding{
			Scope:    finding.Scope,
			Severity: finding.Severity.String(),
			Category: finding.Category,
			Count:    finding.Count,
			Samples:  finding.Samples,
		})
	}

	return report
}

// generateJSONOutput creates JSON output
func generateJSONOutput(result *dto.SlottingResult, config Config) error {
	jsonData, err := json.MarshalIndent(buildJSONReport(result), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if config.OutputDir == "" {
		fmt.Println(string(jsonData))
		return nil
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := filepath.Join(config.OutputDir, "slotting_results.json")
	if err := os.WriteFile(filename, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}

	if config.Verbose {
		fmt.Printf("💾 JSON results saved to: %s\n", filename)
	}

	return nil
}

// generateCSVOutput creates CSV output
func generateCSVOutput(result *dto.SlottingResult, config Config) error {
	if config.OutputDir == "" {
		return fmt.Errorf("output directory required for CSV format")
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	baysFile := filepath.Join(config.OutputDir, "bay_inventory.csv")
	if err := writeBaysCSV(result, baysFile); err != nil {
		return fmt.Errorf("failed to write bay inventory CSV: %w", err)
	}

	assignmentsFile := filepath.Join(config.OutputDir, "assignments.csv")
	if err := writeAssignmentsCSV(result.Assignments, assignmentsFile); err != nil {
		return fmt.Errorf("failed to write assignments CSV: %w", err)
	}

	overflowsFile := filepath.Join(config.OutputDir, "overflows.csv")
	if err := writeOverflowsCSV(result.Overflows, overflowsFile); err != nil {
		return fmt.Errorf("failed to write overflows CSV: %w", err)
	}

	auditFile := filepath.Join(config.OutputDir, "location_audit.csv")
	if err := writeAuditCSV(result.LocationAudit, auditFile); err != nil {
		return fmt.Errorf("failed to write location audit CSV: %w", err)
	}

	findingsFile := filepath.Join(config.OutputDir, "findings.csv")
	if err := writeFindingsCSV(result.Findings, findingsFile); err != nil {
		return fmt.Errorf("failed to write findings CSV: %w", err)
	}

	if config.Verbose {
		fmt.Printf("💾 CSV results saved to:\n")
		fmt.Printf("  Bay Inventory: %s\n", baysFile)
		fmt.Printf("  Assignments: %s\n", assignmentsFile)
		fmt.Printf("  Overflows: %s\n", overflowsFile)
		fmt.Printf("  Location Audit: %s\n", auditFile)
		fmt.Printf("  Findings: %s\n", findingsFile)
	}

	return nil
}

func writeCSVFile(filename string, header []string, rows [][]string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func writeBaysCSV(result *dto.SlottingResult, filename string) error {
	used := assignmentsPerBay(result.Assignments)
	rows := make([][]string, 0, len(result.Bays))
	for _, bay := range result.Bays {
		rows = append(rows, []string{
			bay.Code,
			strconv.Itoa(bay.Inventory[entities.Small]),
			strconv.Itoa(bay.Inventory[entities.Medium]),
			strconv.Itoa(bay.Inventory[entities.Large]),
			strconv.Itoa(used[bay.Code]),
			bayWeight(bay).String(),
			formatComposition(bay.Composition),
			bay.Provenance.String(),
		})
	}
	header := []string{
		"bay_code", "small", "medium", "large", "used", "weight", "composition", "provenance",
	}
	return writeCSVFile(filename, header, rows)
}

func writeAssignmentsCSV(assignments []entities.AllocationRecord, filename string) error {
	rows := make([][]string, 0, len(assignments))
	for _, a := range assignments {
		rows = append(rows, []string{
			string(a.Article), a.BayCode, a.SizeClass.String(), a.SourceLocation, a.BayProvenance.String(),
		})
	}
	header := []string{"article_number", "bay_code", "size_class", "source_location", "bay_provenance"}
	return writeCSVFile(filename, header, rows)
}

func writeOverflowsCSV(overflows []entities.OverflowRecord, filename string) error {
	rows := make([][]string, 0, len(overflows))
	for _, o := range overflows {
		rows = append(rows, []string{
			string(o.Article), o.BayCode, o.SizeClass.String(), o.SourceLocation,
			formatPickedAt(o.PickedAt), o.Reason,
		})
	}
	header := []string{"article_number", "bay_code", "size_class", "source_location", "picked_at", "reason"}
	return writeCSVFile(filename, header, rows)
}

func writeAuditCSV(audit []dto.LocationAuditEntry, filename string) error {
	rows := make([][]string, 0, len(audit))
	for _, entry := range audit {
		rows = append(rows, []string{entry.Code, entry.BayCode, entry.SizeClass, entry.Provenance})
	}
	header := []string{"location_code", "bay_code", "size_class", "provenance"}
	return writeCSVFile(filename, header, rows)
}

func writeFindingsCSV(findings []entities.Finding, filename string) error {
	rows := make([][]string, 0, len(findings))
	for _, f := range findings {
		samples := ""
		for i, sample := range f.Samples {
			if i > 0 {
				samples += ";"
			}
			samples += sample
		}
		rows = append(rows, []string{
			f.Scope, f.Severity.String(), f.Category, strconv.Itoa(f.Count), samples,
		})
	}
	header := []string{"scope", "severity", "category", "count", "samples"}
	return writeCSVFile(filename, header, rows)
}

// assignmentsPerBay counts how many slots each bay has filled
func assignmentsPerBay(assignments []entities.AllocationRecord) map[string]int {
	used := make(map[string]int)
	for _, a := range assignments {
		used[a.BayCode]++
	}
	return used
}

// bayWeight sums the capacity weights of every slot in the bay
func bayWeight(bay *entities.Bay) decimal.Decimal {
	weight := decimal.Zero
	for _, class := range bay.Layout {
		weight = weight.Add(class.Weight())
	}
	return weight
}

func formatComposition(composition []entities.SlotTypeCount) string {
	out := ""
	for i, part := range composition {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s x%d", part.SlotType, part.Count)
	}
	return out
}

func formatPickedAt(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return t.Format("2006-01-02")
}
