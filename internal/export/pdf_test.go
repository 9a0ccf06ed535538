package export_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/mgk2100/ppt-generator/internal/export"
)

func TestExportPDF_NoConverterInstalled(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("PATH semantics differ on windows")
	}
	t.Setenv("PATH", t.TempDir())

	e := export.NewPDFExporter()
	_, err := e.ExportPDF(context.Background(), "deck.pptx")
	if err == nil {
		t.Fatal("want error when no converter is on PATH")
	}
	if !strings.Contains(err.Error(), "libreoffice") {
		t.Errorf("error %q does not mention the converter", err)
	}
}

func TestExportPDF_ConverterFailureReported(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell stub not portable to windows")
	}

	// A stub converter that exits nonzero.
	bin := t.TempDir()
	stub := filepath.Join(bin, "libreoffice")
	if err := os.WriteFile(stub, []byte("#!/bin/sh\necho conversion broke >&2\nexit 3\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", bin)

	e := export.NewPDFExporter()
	_, err := e.ExportPDF(context.Background(), filepath.Join(t.TempDir(), "deck.pptx"))
	if err == nil {
		t.Fatal("want error from failing converter")
	}
	if !strings.Contains(err.Error(), "conversion broke") {
		t.Errorf("error %q does not carry converter output", err)
	}
}

func TestExportPDF_SilentSuccessWithoutOutput(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell stub not portable to windows")
	}

	// A stub that exits cleanly but writes nothing.
	bin := t.TempDir()
	stub := filepath.Join(bin, "libreoffice")
	if err := os.WriteFile(stub, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", bin)

	e := export.NewPDFExporter()
	_, err := e.ExportPDF(context.Background(), filepath.Join(t.TempDir(), "deck.pptx"))
	if err == nil {
		t.Fatal("want error when the converter produces no file")
	}
	if !strings.Contains(err.Error(), "no output") {
		t.Errorf("error = %q", err)
	}
}

func TestExportPDF_Success(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell stub not portable to windows")
	}

	dir := t.TempDir()
	pptx := filepath.Join(dir, "deck.pptx")
	if err := os.WriteFile(pptx, []byte("fake"), 0o644); err != nil {
		t.Fatal(err)
	}

	// A stub that writes the expected PDF next to the input.
	bin := t.TempDir()
	stub := filepath.Join(bin, "soffice")
	// Parameter expansion only, so the stub works with an emptied PATH.
	script := "#!/bin/sh\n" +
		"out=$5\n" +
		"src=$6\n" +
		"base=${src##*/}\n" +
		"base=${base%.pptx}\n" +
		"echo pdf > \"$out/$base.pdf\"\n"
	if err := os.WriteFile(stub, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", bin)

	e := export.NewPDFExporter()
	got, err := e.ExportPDF(context.Background(), pptx)
	if err != nil {
		t.Fatalf("ExportPDF: %v", err)
	}
	want := filepath.Join(dir, "deck.pdf")
	if got != want {
		t.Errorf("pdf path = %q, want %q", got, want)
	}
	if _, err := os.Stat(got); err != nil {
		t.Errorf("pdf not written: %v", err)
	}
}
