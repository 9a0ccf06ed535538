package commands

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	configPath string
	outputName string
	outputDir  string
	exportPDF  bool
	themeName  string
	themeFile  string
	saveTheme  string

	// Simple mode: a one-slide cover deck without a config file.
	simpleTitle  string
	simpleDate   string
	simpleAuthor string
	simpleType   string
)

func Execute() error {
	// Optional .env with PPTGEN_OUTPUT_DIR and PPTGEN_THEME defaults.
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:           "pptgen",
		Short:         "Generate PowerPoint decks from YAML or JSON configuration",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runGenerate,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "deck configuration file (.yaml/.yml/.json)")
	pf.StringVarP(&outputName, "output", "o", "", "output filename (bare names go into the output dir)")
	pf.StringVar(&outputDir, "output-dir", envOr("PPTGEN_OUTPUT_DIR", "output"), "directory for generated files")
	pf.BoolVar(&exportPDF, "pdf", false, "also convert the deck to PDF")
	pf.StringVar(&themeName, "theme", os.Getenv("PPTGEN_THEME"), "theme preset (default, dark, green, purple, warm)")
	pf.StringVar(&themeFile, "theme-file", "", "theme override file (.yaml/.yml/.json)")
	pf.StringVar(&saveTheme, "save-theme", "", "write the resolved theme to a file and exit")

	pf.StringVar(&simpleTitle, "title", "", "cover title (simple mode, no config file)")
	pf.StringVar(&simpleDate, "date", "", "cover date (simple mode)")
	pf.StringVar(&simpleAuthor, "author", "", "cover author (simple mode)")
	pf.StringVar(&simpleType, "type", "", "report type: 의사결정, 보고, 정보공유 (simple mode)")

	root.AddCommand(generateCmd(), themesCmd())
	return root.Execute()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
