package export

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/mgk2100/ppt-generator/internal/domain"
)

// convertTimeout bounds one LibreOffice conversion run.
const convertTimeout = 120 * time.Second

// converterNames are tried in order when locating the converter binary.
var converterNames = []string{"libreoffice", "soffice"}

// PDFExporter converts decks to PDF through a headless LibreOffice
// subprocess. The PDF lands next to the source file.
type PDFExporter struct{}

var _ domain.ExportService = (*PDFExporter)(nil)

// NewPDFExporter returns a PDF exporter.
func NewPDFExporter() *PDFExporter { return &PDFExporter{} }

// ExportPDF converts pptxPath to a PDF in the same directory and returns the
// PDF path. The error covers a missing converter, a failed run, the timeout,
// and a run that exits cleanly without producing the file.
func (e *PDFExporter) ExportPDF(ctx context.Context, pptxPath string) (string, error) {
	bin, err := findConverter()
	if err != nil {
		return "", err
	}

	outDir := filepath.Dir(pptxPath)
	ctx, cancel := context.WithTimeout(ctx, convertTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, bin, "--headless", "--convert-to", "pdf", "--outdir", outDir, pptxPath)
	out, err := cmd.CombinedOutput()
	if ctx.Err() == context.DeadlineExceeded {
		return "", fmt.Errorf("pdf conversion timed out after %s", convertTimeout)
	}
	if err != nil {
		return "", fmt.Errorf("pdf conversion failed: %w: %s", err, strings.TrimSpace(string(out)))
	}

	pdfPath := strings.TrimSuffix(pptxPath, filepath.Ext(pptxPath)) + ".pdf"
	if _, err := os.Stat(pdfPath); err != nil {
		return "", fmt.Errorf("pdf conversion produced no output at %s", pdfPath)
	}
	return pdfPath, nil
}

func findConverter() (string, error) {
	for _, name := range converterNames {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no pdf converter found, install libreoffice")
}
