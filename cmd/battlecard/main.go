// Battlecard - competitive battle card generator
//
// Battlecard walks a sales engineer through a multi-step wizard, calls the
// card generation service, previews the result in the terminal, and exports
// it as a paginated PDF with a JSON mirror.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/vantageworks/battlecard/pkg/card"
	"github.com/vantageworks/battlecard/pkg/config"
	apperrors "github.com/vantageworks/battlecard/pkg/errors"
	"github.com/vantageworks/battlecard/pkg/export"
	"github.com/vantageworks/battlecard/pkg/wizard"
)

const version = "1.0.0"

func main() {
	configPath := flag.String("config", "", "Config file path (default: ./battlecard.yaml)")
	initConfig := flag.Bool("init", false, "Initialize default config file")
	showVersion := flag.Bool("version", false, "Show version and exit")
	exportPath := flag.String("export", "", "Render a saved card JSON to PDF and exit (headless)")
	flag.Parse()

	if *showVersion {
		fmt.Printf("battlecard %s\n", version)
		os.Exit(0)
	}

	cfgPath := *configPath
	if cfgPath == "" {
		cfgPath = config.DefaultConfigPath()
	}

	if *initConfig {
		if err := config.InitConfig(cfgPath); err != nil {
			fmt.Printf("Failed to initialize config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Config initialized at: %s\n", cfgPath)
		fmt.Println("Edit this file to point at your card service.")
		os.Exit(0)
	}

	cfg, err := config.LoadOrDefault(cfgPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Headless mode: render a saved card without the wizard.
	if *exportPath != "" {
		if err := exportSaved(*exportPath, cfg); err != nil {
			apperrors.DefaultFormatter().Print(err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nShutting down...")
		cancel()
	}()

	fmt.Println("╔═══════════════════════════════════════════════════════════╗")
	fmt.Println("║          battlecard - competitive battle cards            ║")
	fmt.Println("╚═══════════════════════════════════════════════════════════╝")
	fmt.Println()

	if _, err := os.Stat(cfgPath); err == nil {
		fmt.Printf("Config: %s\n", cfgPath)
	} else {
		fmt.Printf("Config: (using defaults, run -init to create)\n")
	}
	fmt.Printf("Service: %s\n", cfg.Service.URL)
	fmt.Println()

	wiz, err := wizard.New(cfg)
	if err != nil {
		fmt.Printf("Failed to start wizard: %v\n", err)
		os.Exit(1)
	}

	if err := wiz.Run(ctx); err != nil && err != context.Canceled {
		apperrors.DefaultFormatter().Print(err)
		os.Exit(1)
	}

	fmt.Println("Goodbye!")
}

// exportSaved renders a card JSON file to PDF and a fresh JSON mirror in
// the configured export directory.
func exportSaved(path string, cfg *config.Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrExportFailed,
			apperrors.CategoryIO, "cannot read card file")
	}

	c, err := card.Parse(data)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrExportFailed,
			apperrors.CategoryExport, "card file is not valid JSON")
	}

	if err := os.MkdirAll(cfg.Export.Path, 0755); err != nil {
		return apperrors.Wrap(err, apperrors.ErrExportWriteFailed,
			apperrors.CategoryExport, "cannot create export directory")
	}

	out := filepath.Join(cfg.Export.Path, c.ExportFilename("pdf"))
	exportCfg := &export.Config{
		Geometry:     export.DefaultGeometry(),
		Confidential: cfg.Export.Confidential,
		Author:       cfg.Export.Author,
		Compress:     cfg.Export.Compress,
	}
	if err := export.WriteFile(out, c, exportCfg); err != nil {
		return err
	}

	fmt.Printf("Exported %s\n", out)
	return nil
}
