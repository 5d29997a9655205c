package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"slotter/pkg/application/dto"
	"slotter/pkg/application/services/slotting"
	"slotter/pkg/domain/entities"
	"slotter/pkg/infrastructure/events"
	"slotter/pkg/infrastructure/repositories/csv"
	"slotter/pkg/infrastructure/repositories/sqlite"
	"slotter/pkg/interfaces/cli/output"
)

// Config holds configuration for the slotting command
type Config struct {
	DataDir       string
	LocationsFile string
	ArticlesFile  string
	DemandsFile   string
	DBFile        string
	OutputDir     string
	Format        string
	Encoding      string
	MaxEvents     int
	SaveDB        bool
	Verbose       bool
	Help          bool
}

// SlottingCommand handles the main slotting execution logic
type SlottingCommand struct {
	config Config
}

// NewSlottingCommand creates a new slotting command with the given configuration
func NewSlottingCommand(config Config) *SlottingCommand {
	return &SlottingCommand{
		config: config,
	}
}

// Execute runs the slotting command. It returns an error when the run itself
// fails or when the validator reports blocking findings, so callers can map
// either onto a nonzero exit code.
func (c *SlottingCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	if err := c.validateInputs(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	var store *sqlite.Store
	if c.config.DBFile != "" {
		var err error
		store, err = sqlite.Open(c.config.DBFile)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer store.Close()

		if err := store.Migrate(); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	masters, articles, demands, err := c.loadInputs(store)
	if err != nil {
		return err
	}

	if c.config.Verbose {
		fmt.Printf("✅ Data loaded successfully:\n")
		fmt.Printf("  Locations: %d\n", len(masters))
		fmt.Printf("  Articles: %d\n", len(articles))
		fmt.Printf("  Demand Events: %d\n", len(demands))
		fmt.Println()
	}

	eventStore := events.NewInMemoryEventStore()
	service := slotting.NewServiceWithEvents(c.config.MaxEvents, eventStore)

	if c.config.Verbose {
		fmt.Println("🔄 Running slotting pipeline...")
	}

	startTime := time.Now()
	result, err := service.RunOnData(ctx, masters, articles, demands)
	runTime := time.Since(startTime)

	if err != nil {
		return fmt.Errorf("error running slotting pipeline: %w", err)
	}

	if c.config.Verbose {
		fmt.Printf("✅ Slotting completed in %v\n\n", runTime)
		c.printRunLog(eventStore)
	}

	if store != nil && c.config.SaveDB {
		if err := store.SaveResult(result); err != nil {
			return fmt.Errorf("failed to save results to database: %w", err)
		}
		if c.config.Verbose {
			fmt.Printf("💾 Results saved to database: %s\n\n", c.config.DBFile)
		}
	}

	outputConfig := output.Config{
		Format:     c.config.Format,
		OutputDir:  c.config.OutputDir,
		Verbose:    c.config.Verbose,
		RunTime:    runTime,
		InputFiles: c.inputFileMap(),
	}

	if err := output.Generate(result, outputConfig); err != nil {
		return fmt.Errorf("error generating output: %w", err)
	}

	if c.config.Verbose {
		fmt.Println("🏁 Slotting analysis complete!")
	}

	if !result.Ready() {
		return fmt.Errorf("slotting produced %d blocking findings", countBlocking(result))
	}

	return nil
}

// validateInputs validates the command configuration
func (c *SlottingCommand) validateInputs() error {
	haveCSV := c.config.DataDir != "" ||
		(c.config.LocationsFile != "" && c.config.DemandsFile != "")
	if !haveCSV && c.config.DBFile == "" {
		return fmt.Errorf(
			"must specify -data directory, -locations and -demands CSV files, or a -db file")
	}
	return nil
}

// loadInputs reads location master, article master and demand events from
// CSV files when any are configured, otherwise from the sqlite store
func (c *SlottingCommand) loadInputs(
	store *sqlite.Store,
) ([]*entities.MasterLocation, []*entities.ArticleRecord, []*entities.DemandEvent, error) {
	files := c.inputFileMap()
	if len(files) == 0 {
		if c.config.Verbose {
			fmt.Printf("📂 Loading data from database: %s\n", c.config.DBFile)
		}

		masters, err := store.LoadLocations()
		if err != nil {
			return nil, nil, nil, fmt.Errorf("error loading locations: %w", err)
		}
		articles, err := store.LoadArticles()
		if err != nil {
			return nil, nil, nil, fmt.Errorf("error loading articles: %w", err)
		}
		demands, err := store.LoadDemands()
		if err != nil {
			return nil, nil, nil, fmt.Errorf("error loading demand events: %w", err)
		}
		return masters, articles, demands, nil
	}

	for name, path := range files {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, nil, nil, fmt.Errorf("%s file not found: %s", name, path)
		}
	}

	if c.config.Verbose {
		fmt.Println("📂 Loading data from CSV files...")
	}

	loader, err := csv.NewLoaderWithEncoding(c.config.Encoding)
	if err != nil {
		return nil, nil, nil, err
	}

	masters, skippedLocations, err := loader.LoadLocations(files["Locations"])
	if err != nil {
		return nil, nil, nil, fmt.Errorf("error loading locations: %w", err)
	}

	var articles []*entities.ArticleRecord
	skippedArticles := 0
	if path, ok := files["Articles"]; ok {
		articles, skippedArticles, err = loader.LoadArticles(path)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("error loading articles: %w", err)
		}
	}

	demands, skippedDemands, err := loader.LoadDemands(files["Demands"])
	if err != nil {
		return nil, nil, nil, fmt.Errorf("error loading demand events: %w", err)
	}

	if c.config.Verbose {
		skipped := skippedLocations + skippedArticles + skippedDemands
		if skipped > 0 {
			fmt.Printf("⚠️  Skipped %d malformed rows (%d locations, %d articles, %d demands)\n",
				skipped, skippedLocations, skippedArticles, skippedDemands)
		}
	}

	return masters, articles, demands, nil
}

// inputFileMap resolves the CSV paths to use; empty when reading from sqlite
func (c *SlottingCommand) inputFileMap() map[string]string {
	files := map[string]string{}

	if c.config.DataDir != "" {
		files["Locations"] = filepath.Join(c.config.DataDir, "locations.csv")
		files["Articles"] = filepath.Join(c.config.DataDir, "articles.csv")
		files["Demands"] = filepath.Join(c.config.DataDir, "demands.csv")
		return files
	}

	if c.config.LocationsFile != "" {
		files["Locations"] = c.config.LocationsFile
	}
	if c.config.ArticlesFile != "" {
		files["Articles"] = c.config.ArticlesFile
	}
	if c.config.DemandsFile != "" {
		files["Demands"] = c.config.DemandsFile
	}
	return files
}

// printRunLog replays the run-audit event stream
func (c *SlottingCommand) printRunLog(store events.EventStore) {
	recorded, err := store.ReadEvents(events.RunStream, 1)
	if err != nil || len(recorded) == 0 {
		return
	}

	fmt.Println("📜 Run log:")
	for _, event := range recorded {
		fmt.Printf("  [%s] %s %+v\n",
			event.Timestamp().Format("15:04:05.000"), event.Type(), event.Data())
	}
	fmt.Println()
}

func countBlocking(result *dto.SlottingResult) int {
	blocking := 0
	for _, finding := range result.Findings {
		if finding.Severity == entities.Error {
			blocking++
		}
	}
	return blocking
}

// showHelp displays the help message
func (c *SlottingCommand) showHelp() {
	fmt.Printf(`Slotter CLI - Warehouse Bay Slotting from Pick History

USAGE:
    slotter -data <directory>                   # Use data directory with CSV files
    slotter -locations <file> -demands <file>   # Use individual CSV files
    slotter -db <file>                          # Read inputs from a SQLite database

OPTIONS:
    -data <dir>        Path to data directory containing CSV files
    -locations <file>  Path to location master CSV file
    -articles <file>   Path to article master CSV file (optional)
    -demands <file>    Path to demand events CSV file
    -db <file>         Path to SQLite database (input source and/or result sink)
    -save-db           Persist results into the SQLite database (requires -db)
    -output <dir>      Output directory for results (optional)
    -format <fmt>      Output format: text, json, csv, html (default: text)
    -encoding <enc>    CSV encoding: utf-8, shift-jis, windows-1252 (default: utf-8)
    -max-events <n>    Cap on demand events considered, newest first (0 = no cap)
    -verbose           Enable verbose output
    -help              Show this help message

DATA DIRECTORY STRUCTURE:
    warehouse_data/
    ├── locations.csv   # Location master (slot types per location)
    ├── articles.csv    # Article master (article -> pick location)
    └── demands.csv     # Pick events (article, location, picked_at)

CSV FILE FORMATS:

locations.csv:
    location_code,aisle,bay_number,slot_type
    A01-03-01,A01,03,SHELF-S

articles.csv:
    article_number,pick_location
    100001,A01-03-01

demands.csv:
    article_number,location_code,picked_at,quantity,order_ref
    100001,A01-03-01,2024-05-01 12:00:00,3,SO-4711

EXAMPLES:
    # Run with a data directory
    slotter -data warehouse_data -verbose

    # Cap to the 50000 most recent pick events
    slotter -data warehouse_data -max-events 50000

    # Generate the HTML bay utilization report
    slotter -data warehouse_data -format html -output results/

    # Load from SQLite, save results back
    slotter -db warehouse.db -save-db -format json -output results/

    # Legacy exports in Windows-1252
    slotter -locations wms_locations.csv -demands wms_picks.csv -encoding windows-1252

EXIT STATUS:
    0 on success with no blocking findings, 1 otherwise.
`)
}
