package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mgk2100/ppt-generator/internal/domain"
)

// KnownSlideTypes lists every slide type with a builder.
var KnownSlideTypes = map[string]bool{
	"section":       true,
	"content":       true,
	"content_boxed": true,
	"content_icons": true,
	"comparison":    true,
	"text":          true,
	"table":         true,
	"cards":         true,
	"architecture":  true,
	"flowchart":     true,
	"summary":       true,
	"image":         true,
	"timeline":      true,
	"stats":         true,
	"two_column":    true,
	"chart":         true,
	"org_chart":     true,
	"tree":          true,
}

// Load reads a deck configuration from a YAML or JSON file. JSON documents
// are valid YAML, so both formats go through one decoder.
func Load(path string) (*domain.DeckConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg domain.DeckConfig
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

// UnknownTypes returns the distinct unrecognized slide types, in first-seen
// order, so the caller can surface them before the dispatcher skips them.
func UnknownTypes(cfg *domain.DeckConfig) []string {
	var unknown []string
	seen := make(map[string]bool)
	for _, s := range cfg.Slides {
		t := s.Type
		if t == "" {
			t = "content"
		}
		if !KnownSlideTypes[t] && !seen[t] {
			unknown = append(unknown, t)
			seen[t] = true
		}
	}
	return unknown
}

func applyDefaults(cfg *domain.DeckConfig) {
	if cfg.Cover != nil {
		if cfg.Cover.Title == "" {
			cfg.Cover.Title = "제목 없음"
		}
		if cfg.Cover.ReportType == "" {
			cfg.Cover.ReportType = "정보공유"
		}
	}
	for i := range cfg.Slides {
		s := &cfg.Slides[i]
		if s.Type == "" {
			s.Type = "content"
		}
	}
}
