package store_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mgk2100/ppt-generator/internal/store"
)

func TestResolveDeckPath_EmptyNameTimestamped(t *testing.T) {
	dir := t.TempDir()
	s := store.NewOutputStore(dir)

	path, err := s.ResolveDeckPath("")
	if err != nil {
		t.Fatalf("ResolveDeckPath: %v", err)
	}
	base := filepath.Base(path)
	if !strings.HasPrefix(base, "presentation_") || !strings.HasSuffix(base, ".pptx") {
		t.Errorf("default name = %q", base)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("default path %q not under output dir", path)
	}
}

func TestResolveDeckPath_BareNameGoesToOutputDir(t *testing.T) {
	dir := t.TempDir()
	s := store.NewOutputStore(dir)

	path, err := s.ResolveDeckPath("deck.pptx")
	if err != nil {
		t.Fatalf("ResolveDeckPath: %v", err)
	}
	if path != filepath.Join(dir, "deck.pptx") {
		t.Errorf("path = %q", path)
	}
}

func TestResolveDeckPath_ExplicitDirUsedAsIs(t *testing.T) {
	out := t.TempDir()
	target := filepath.Join(t.TempDir(), "sub", "deck.pptx")
	s := store.NewOutputStore(out)

	path, err := s.ResolveDeckPath(target)
	if err != nil {
		t.Fatalf("ResolveDeckPath: %v", err)
	}
	if path != target {
		t.Errorf("path = %q, want %q", path, target)
	}
	if _, err := os.Stat(filepath.Dir(target)); err != nil {
		t.Errorf("parent dir not created: %v", err)
	}
}

func TestResolveDeckPath_CollisionGetsSuffix(t *testing.T) {
	dir := t.TempDir()
	s := store.NewOutputStore(dir)

	first := filepath.Join(dir, "deck.pptx")
	if err := os.WriteFile(first, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	path, err := s.ResolveDeckPath("deck.pptx")
	if err != nil {
		t.Fatalf("ResolveDeckPath: %v", err)
	}
	if path == first {
		t.Fatal("collision not avoided")
	}
	if !strings.HasPrefix(filepath.Base(path), "deck_") || !strings.HasSuffix(path, ".pptx") {
		t.Errorf("suffixed path = %q", path)
	}
}

func TestWriteFile_Whole(t *testing.T) {
	dir := t.TempDir()
	s := store.NewOutputStore(dir)
	path := filepath.Join(dir, "out.bin")

	if err := s.WriteFile(path, []byte("payload")); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil || string(b) != "payload" {
		t.Fatalf("read back %q, err %v", b, err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind")
	}
}
