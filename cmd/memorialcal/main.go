package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"memorialcal/internal/config"
	"memorialcal/internal/generate"
	appLog "memorialcal/internal/log"
)

// flagConfig holds CLI flag values.
type flagConfig struct {
	year       int
	outputDir  string
	configPath string
}

func main() {
	flags := parseFlags()

	appLog.Info("memorialcal starting",
		"year", flags.year,
		"output_dir", flags.outputDir,
		"config", flags.configPath,
	)

	// Anniversary ingestion degrades to zero records on any failure;
	// warnings are logged inside Load.
	anniversaries := config.Load(flags.configPath)

	paths, err := generate.Run(generate.Options{
		Year:      flags.year,
		OutputDir: flags.outputDir,
		Location:  time.Local,
	}, anniversaries)
	if err != nil {
		appLog.Error("calendar generation failed", err, "year", flags.year)
		os.Exit(1)
	}

	fmt.Printf("\nGenerated calendar files in %s:\n", flags.outputDir)
	for _, path := range paths {
		fmt.Printf("- %s\n", filepath.Base(path))
	}
	fmt.Println("\nYou can import these files into Google Calendar or any other calendar application.")
}

func parseFlags() flagConfig {
	var cfg flagConfig

	flag.IntVar(&cfg.year, "year", time.Now().Year(), "Year to generate calendar for")
	flag.StringVar(&cfg.outputDir, "output-dir", "calendar_events", "Output directory for ICS files")
	flag.StringVar(&cfg.configPath, "config", "anniversaries.yml", "YAML configuration file for death anniversaries")

	flag.Parse()

	return cfg
}
