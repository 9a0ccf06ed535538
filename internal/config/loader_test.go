package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mgk2100/ppt-generator/internal/config"
	"github.com/mgk2100/ppt-generator/internal/domain"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, "deck.yaml", `
cover:
  title: 분기 보고
  report_type: 보고
slides:
  - type: content
    title: 개요
    content: ["첫째", "둘째"]
  - type: chart
    chart_type: pie
    categories: [A, B]
    series:
      - name: 점유율
        values: [60, 40]
settings:
  show_page_numbers: false
`)
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Cover == nil || cfg.Cover.Title != "분기 보고" {
		t.Fatalf("cover = %+v", cfg.Cover)
	}
	if len(cfg.Slides) != 2 {
		t.Fatalf("got %d slides, want 2", len(cfg.Slides))
	}
	if cfg.Slides[1].ChartType != "pie" || len(cfg.Slides[1].Series) != 1 {
		t.Errorf("chart slide = %+v", cfg.Slides[1])
	}
	if cfg.Settings.PageNumbers() {
		t.Error("show_page_numbers: false not honored")
	}
}

func TestLoad_JSON(t *testing.T) {
	path := writeConfig(t, "deck.json", `{
  "cover": {"title": "JSON Deck"},
  "slides": [{"type": "summary", "points": ["done"], "highlight": "ship it"}]
}`)
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Slides[0].Highlight != "ship it" {
		t.Errorf("highlight = %q", cfg.Slides[0].Highlight)
	}
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "deck.yaml", `
cover: {}
slides:
  - title: 타입 없음
`)
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Cover.Title != "제목 없음" {
		t.Errorf("cover title default = %q", cfg.Cover.Title)
	}
	if cfg.Cover.ReportType != "정보공유" {
		t.Errorf("report type default = %q", cfg.Cover.ReportType)
	}
	if cfg.Slides[0].Type != "content" {
		t.Errorf("slide type default = %q", cfg.Slides[0].Type)
	}
	if !cfg.Settings.PageNumbers() {
		t.Error("page numbers must default on")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("want error for missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "bad.yaml", "slides: [}")
	if _, err := config.Load(path); err == nil {
		t.Fatal("want error for invalid yaml")
	}
}

func TestLoad_ColorForms(t *testing.T) {
	path := writeConfig(t, "deck.yaml", `
slides:
  - type: architecture
    components:
      - name: triple
        color: [10, 20, 30]
      - name: hexa
        color: "#0A141E"
      - name: role
        color: primary
`)
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	comps := cfg.Slides[0].Components
	if comps[0].Color.RGB == nil || *comps[0].Color.RGB != (domain.Color{R: 10, G: 20, B: 30}) {
		t.Errorf("triple color = %+v", comps[0].Color)
	}
	if comps[1].Color.RGB == nil || *comps[1].Color.RGB != (domain.Color{R: 10, G: 20, B: 30}) {
		t.Errorf("hex color = %+v", comps[1].Color)
	}
	if comps[2].Color.Role != "primary" {
		t.Errorf("role color = %+v", comps[2].Color)
	}
}

func TestLoad_FlowStepShorthand(t *testing.T) {
	path := writeConfig(t, "deck.yaml", `
slides:
  - type: flowchart
    steps:
      - 수집
      - title: 처리
        shape: diamond
`)
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	steps := cfg.Slides[0].Steps
	if steps[0].DisplayTitle() != "수집" {
		t.Errorf("scalar step title = %q", steps[0].DisplayTitle())
	}
	if steps[1].Shape != "diamond" {
		t.Errorf("map step shape = %q", steps[1].Shape)
	}
}

func TestLoad_ContentItemShorthand(t *testing.T) {
	path := writeConfig(t, "deck.yaml", `
slides:
  - type: content
    content:
      - 요약 한 줄
      - text: 핵심 결론
        level: 1
        emphasis: true
`)
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	items := cfg.Slides[0].Content
	if items[0].Text != "요약 한 줄" || items[0].Level != 0 || items[0].Emphasis {
		t.Errorf("scalar item = %+v", items[0])
	}
	if items[1].Text != "핵심 결론" || items[1].Level != 1 || !items[1].Emphasis {
		t.Errorf("map item = %+v", items[1])
	}
}

func TestUnknownTypes_FirstSeenOrder(t *testing.T) {
	cfg := &domain.DeckConfig{Slides: []domain.SlideConfig{
		{Type: "content"},
		{Type: "hologram"},
		{Type: "chart"},
		{Type: "hologram"},
		{Type: "teleport"},
	}}
	got := config.UnknownTypes(cfg)
	if len(got) != 2 || got[0] != "hologram" || got[1] != "teleport" {
		t.Fatalf("UnknownTypes = %v", got)
	}
}
