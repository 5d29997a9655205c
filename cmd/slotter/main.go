package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"

	"slotter/pkg/interfaces/cli/commands"
)

// envDefaults lets deployments preset flags through the environment;
// command line flags still win
type envDefaults struct {
	DataDir   string `env:"SLOTTER_DATA_DIR"`
	DBFile    string `env:"SLOTTER_DB"`
	OutputDir string `env:"SLOTTER_OUTPUT_DIR"`
	Format    string `env:"SLOTTER_FORMAT" envDefault:"text"`
	Encoding  string `env:"SLOTTER_ENCODING" envDefault:"utf-8"`
	MaxEvents int    `env:"SLOTTER_MAX_EVENTS" envDefault:"0"`
}

func main() {
	var defaults envDefaults
	if err := env.Parse(&defaults); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid environment configuration: %v\n", err)
		os.Exit(1)
	}

	// Command line flags
	var (
		dataDir = flag.String(
			"data",
			defaults.DataDir,
			"Path to data directory containing CSV files",
		)
		locationsFile = flag.String("locations", "", "Path to location master CSV file")
		articlesFile  = flag.String("articles", "", "Path to article master CSV file")
		demandsFile   = flag.String("demands", "", "Path to demand events CSV file")
		dbFile        = flag.String("db", defaults.DBFile, "Path to SQLite database")
		saveDB        = flag.Bool("save-db", false, "Persist results into the SQLite database")
		outputDir     = flag.String("output", defaults.OutputDir, "Output directory for results (optional)")
		format        = flag.String("format", defaults.Format, "Output format: text, json, csv, html")
		encoding      = flag.String("encoding", defaults.Encoding, "CSV encoding: utf-8, shift-jis, windows-1252")
		maxEvents     = flag.Int("max-events", defaults.MaxEvents, "Cap on demand events considered (0 = no cap)")
		verbose       = flag.Bool("verbose", false, "Enable verbose output")
		help          = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	// Create command configuration
	config := commands.Config{
		DataDir:       *dataDir,
		LocationsFile: *locationsFile,
		ArticlesFile:  *articlesFile,
		DemandsFile:   *demandsFile,
		DBFile:        *dbFile,
		SaveDB:        *saveDB,
		OutputDir:     *outputDir,
		Format:        *format,
		Encoding:      *encoding,
		MaxEvents:     *maxEvents,
		Verbose:       *verbose,
		Help:          *help,
	}

	// Create and execute command
	cmd := commands.NewSlottingCommand(config)
	ctx := context.Background()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
