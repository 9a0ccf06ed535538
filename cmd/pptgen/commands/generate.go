package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mgk2100/ppt-generator/internal/app"
	"github.com/mgk2100/ppt-generator/internal/config"
	"github.com/mgk2100/ppt-generator/internal/domain"
	"github.com/mgk2100/ppt-generator/internal/theme"
)

func generateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Build a deck from a configuration file (same as the root command)",
		RunE:  runGenerate,
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if saveTheme != "" {
		th := theme.Resolve(themeName, themeFile, os.Stderr)
		if err := theme.Save(th, saveTheme); err != nil {
			return fmt.Errorf("save theme: %w", err)
		}
		fmt.Printf("Theme saved: %s\n", saveTheme)
		return nil
	}

	cfg, err := deckConfig(cmd)
	if err != nil {
		return err
	}

	// Flags beat the settings block of the configuration file.
	preset := themeName
	if preset == "" {
		preset = cfg.Settings.ThemeName
	}
	overridePath := themeFile
	if overridePath == "" {
		overridePath = cfg.Settings.ThemePath
	}

	if unknown := config.UnknownTypes(cfg); len(unknown) > 0 {
		fmt.Fprintf(os.Stderr, "warning: unknown slide types will be skipped: %s\n", strings.Join(unknown, ", "))
	}

	wire, err := app.NewWire(app.Config{
		OutputDir: outputDir,
		Theme:     preset,
		ThemeFile: overridePath,
		Warn:      os.Stderr,
	})
	if err != nil {
		return err
	}

	path, err := wire.Decks.Generate(cfg, outputName)
	if err != nil {
		return err
	}
	fmt.Printf("Saved: %s\n", path)

	if exportPDF || cfg.Settings.ExportPDF {
		pdfPath, err := wire.PDF.ExportPDF(context.Background(), path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: pdf export: %v\n", err)
		} else {
			fmt.Printf("PDF: %s\n", pdfPath)
		}
	}
	return nil
}

// deckConfig loads the configuration file, or builds a cover-only deck from
// the simple mode flags.
func deckConfig(cmd *cobra.Command) (*domain.DeckConfig, error) {
	if configPath != "" {
		return config.Load(configPath)
	}
	if simpleTitle != "" {
		return &domain.DeckConfig{
			Cover: &domain.CoverConfig{
				Title:      simpleTitle,
				Date:       simpleDate,
				Author:     simpleAuthor,
				ReportType: simpleType,
			},
		}, nil
	}
	_ = cmd.Usage()
	return nil, fmt.Errorf("a configuration file (-c) or a title (--title) is required")
}
