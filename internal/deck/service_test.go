package deck_test

import (
	"bytes"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/mgk2100/ppt-generator/internal/deck"
	"github.com/mgk2100/ppt-generator/internal/domain"
	"github.com/mgk2100/ppt-generator/internal/store"
	"github.com/mgk2100/ppt-generator/internal/theme"
)

func newService(t *testing.T, warn *bytes.Buffer) *deck.Service {
	t.Helper()
	return deck.New(theme.Defaults(), store.NewOutputStore(t.TempDir()), warn)
}

func generate(t *testing.T, cfg *domain.DeckConfig) (string, *bytes.Buffer) {
	t.Helper()
	var warn bytes.Buffer
	svc := newService(t, &warn)
	path, err := svc.Generate(cfg, "")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return path, &warn
}

func openDeck(t *testing.T, path string) *ppt.Presentation {
	t.Helper()
	pres, err := ppt.Open(path)
	if err != nil {
		t.Fatalf("Open %s: %v", path, err)
	}
	return pres
}

func countShapes(sl *ppt.Slide) (autos, lines, texts, tables int) {
	for _, sh := range sl.GetShapes() {
		switch sh.(type) {
		case *ppt.AutoShape:
			autos++
		case *ppt.LineShape:
			lines++
		case *ppt.RichTextShape:
			texts++
		case *ppt.TableShape:
			tables++
		}
	}
	return
}

func TestGenerate_CoverAndArchitecture(t *testing.T) {
	cfg := &domain.DeckConfig{
		Cover: &domain.CoverConfig{Title: "Q1 Review", ReportType: "보고"},
		Slides: []domain.SlideConfig{
			{
				Type:  "architecture",
				Title: "System",
				Components: []domain.Component{
					{ID: "a", Name: "A", X: 0, Y: 0, Width: 2, Height: 1},
					{ID: "b", Name: "B", X: 5, Y: 0, Width: 2, Height: 1},
				},
				Connections: []domain.Connection{{From: "a", To: "b"}},
			},
		},
	}

	path, _ := generate(t, cfg)
	pres := openDeck(t, path)
	if pres.GetSlideCount() != 2 {
		t.Fatalf("got %d slides, want 2", pres.GetSlideCount())
	}

	cover, _ := pres.GetSlide(0)
	if !strings.Contains(cover.ExtractText(), "Q1 Review") {
		t.Error("cover slide missing title text")
	}

	arch, _ := pres.GetSlide(1)
	autos, lines, _, _ := countShapes(arch)
	if autos != 2 {
		t.Errorf("architecture slide has %d boxes, want 2", autos)
	}
	// Aligned boxes connect with a single straight arrow segment.
	if lines != 1 {
		t.Errorf("architecture slide has %d line segments, want 1", lines)
	}
}

func TestGenerate_MisalignedComponents_ElbowSegments(t *testing.T) {
	cfg := &domain.DeckConfig{
		Slides: []domain.SlideConfig{
			{
				Type: "architecture",
				Components: []domain.Component{
					{ID: "a", Name: "A", X: 0, Y: 0, Width: 2, Height: 1},
					{ID: "b", Name: "B", X: 5, Y: 3, Width: 2, Height: 1},
				},
				Connections: []domain.Connection{{From: "a", To: "b"}},
			},
		},
	}

	path, _ := generate(t, cfg)
	pres := openDeck(t, path)
	sl, _ := pres.GetSlide(0)
	_, lines, _, _ := countShapes(sl)
	if lines != 3 {
		t.Errorf("got %d line segments, want 3 elbow segments", lines)
	}
}

func TestGenerate_UnknownSlideTypeWarnsAndSkips(t *testing.T) {
	cfg := &domain.DeckConfig{
		Slides: []domain.SlideConfig{
			{Type: "content", Title: "Known", Content: []domain.ContentItem{{Text: "item"}}},
			{Type: "hologram", Title: "Unknown"},
		},
	}

	path, warn := generate(t, cfg)
	if !strings.Contains(warn.String(), "hologram") {
		t.Errorf("warning does not name the unknown type: %q", warn.String())
	}
	pres := openDeck(t, path)
	if pres.GetSlideCount() != 1 {
		t.Errorf("got %d slides, want 1 with the unknown slide skipped", pres.GetSlideCount())
	}
}

func TestGenerate_UnknownConnectionSkipped(t *testing.T) {
	cfg := &domain.DeckConfig{
		Slides: []domain.SlideConfig{
			{
				Type: "architecture",
				Components: []domain.Component{
					{ID: "a", Name: "A", X: 0, Y: 0, Width: 2, Height: 1},
				},
				Connections: []domain.Connection{{From: "a", To: "ghost"}},
			},
		},
	}

	path, _ := generate(t, cfg)
	pres := openDeck(t, path)
	sl, _ := pres.GetSlide(0)
	_, lines, _, _ := countShapes(sl)
	if lines != 0 {
		t.Errorf("got %d line segments for a dangling connection, want 0", lines)
	}
}

func TestGenerate_TableSlide(t *testing.T) {
	cfg := &domain.DeckConfig{
		Slides: []domain.SlideConfig{
			{
				Type:    "table",
				Title:   "Results",
				Headers: []string{"Name", "Score"},
				Rows:    [][]string{{"alpha", "10"}, {"beta", "20"}},
			},
		},
	}

	path, _ := generate(t, cfg)
	pres := openDeck(t, path)
	sl, _ := pres.GetSlide(0)
	found := false
	for _, sh := range sl.GetShapes() {
		ts, ok := sh.(*ppt.TableShape)
		if !ok {
			continue
		}
		found = true
		if ts.GetNumRows() != 3 {
			t.Errorf("table has %d rows, want 3 with header", ts.GetNumRows())
		}
		if ts.GetNumCols() != 2 {
			t.Errorf("table has %d cols, want 2", ts.GetNumCols())
		}
	}
	if !found {
		t.Fatal("no table shape on the slide")
	}
}

func TestGenerate_ChartSlide(t *testing.T) {
	cfg := &domain.DeckConfig{
		Slides: []domain.SlideConfig{
			{
				Type:       "chart",
				Title:      "Quarterly",
				ChartType:  "pie",
				Categories: []string{"A", "B"},
				Series:     []domain.Series{{Name: "Share", Values: []float64{60, 40}}},
			},
		},
	}

	path, _ := generate(t, cfg)
	pres := openDeck(t, path)
	sl, _ := pres.GetSlide(0)
	found := false
	for _, sh := range sl.GetShapes() {
		if _, ok := sh.(*ppt.ChartShape); ok {
			found = true
		}
	}
	if !found {
		t.Fatal("no chart shape on the slide")
	}
}

func TestGenerate_TimelineCapsMilestones(t *testing.T) {
	ms := make([]domain.Milestone, 8)
	for i := range ms {
		ms[i] = domain.Milestone{Date: strconv.Itoa(i+1) + "월", Title: "단계"}
	}
	cfg := &domain.DeckConfig{
		Slides: []domain.SlideConfig{{Type: "timeline", Title: "일정", Milestones: ms}},
	}

	path, _ := generate(t, cfg)
	pres := openDeck(t, path)
	sl, _ := pres.GetSlide(0)
	_, lines, _, _ := countShapes(sl)
	// Six visible boxes leave five connector arrows.
	if lines != 5 {
		t.Errorf("got %d connector arrows, want 5 with the milestone cap", lines)
	}
}

func TestGenerate_AllBuildersSmoke(t *testing.T) {
	bTrue := true
	cfg := &domain.DeckConfig{
		Cover: &domain.CoverConfig{Title: "전체 점검", ReportType: "정보공유"},
		Slides: []domain.SlideConfig{
			{Type: "section", Number: "01", Title: "도입", Subtitle: "배경"},
			{Type: "content", Title: "목록", Content: []domain.ContentItem{{Text: "하나"}, {Text: "둘", Level: 1}}},
			{Type: "content_boxed", Title: "박스", Sections: []domain.BoxedSection{{Title: "그룹", Items: []string{"항목"}}}},
			{Type: "content_icons", Title: "아이콘", Items: []domain.IconItem{{Icon: "★", Title: "제목", Description: "설명"}}},
			{Type: "comparison", Title: "비교", LeftItems: []string{"좌"}, RightItems: []string{"우"}},
			{Type: "text", Title: "자유", TextBlocks: []domain.TextBlock{{Text: "본문"}}},
			{Type: "cards", Title: "카드", Cards: []domain.Card{{Title: "카드", Content: "내용"}, {Title: "둘", Content: "내용"}}},
			{Type: "flowchart", Title: "흐름", Steps: []domain.FlowStep{{Title: "수집"}, {Title: "처리"}}},
			{Type: "timeline", Title: "일정", Milestones: []domain.Milestone{{Date: "1월", Title: "착수"}, {Date: "3월", Title: "완료", Status: "current"}}},
			{Type: "stats", Title: "수치", Stats: []domain.Stat{{Label: "성능", Value: "99", Unit: "%"}}},
			{Type: "two_column", Title: "두 열", LeftContent: domain.ColumnContent{Items: []string{"왼쪽"}}, RightContent: domain.ColumnContent{Type: "text", Text: "오른쪽"}},
			{Type: "tree", Title: "구조", TreeStructure: []domain.Node{{Name: "root", Children: []domain.Node{{Name: "pkg", Description: "코드"}}}}},
			{Type: "org_chart", Title: "조직", OrgData: domain.Node{Name: "센터장", Children: []domain.Node{{Name: "팀장"}}}},
			{Type: "summary", Title: "정리", Points: []string{"끝"}, Highlight: "핵심"},
		},
		Settings: domain.Settings{ShowPageNumbers: &bTrue},
	}

	path, warn := generate(t, cfg)
	if warn.Len() != 0 {
		t.Errorf("unexpected warnings: %s", warn.String())
	}
	pres := openDeck(t, path)
	if pres.GetSlideCount() != len(cfg.Slides)+1 {
		t.Errorf("got %d slides, want %d", pres.GetSlideCount(), len(cfg.Slides)+1)
	}
}

func TestGenerate_NamedOutput(t *testing.T) {
	var warn bytes.Buffer
	svc := newService(t, &warn)
	path, err := svc.Generate(&domain.DeckConfig{
		Cover: &domain.CoverConfig{Title: "이름 지정"},
	}, "weekly.pptx")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if filepath.Base(path) != "weekly.pptx" {
		t.Errorf("path = %q, want basename weekly.pptx", path)
	}
}

func TestGenerate_DefaultName(t *testing.T) {
	path, _ := generate(t, &domain.DeckConfig{Cover: &domain.CoverConfig{Title: "기본"}})
	base := filepath.Base(path)
	if !strings.HasPrefix(base, "presentation_") || !strings.HasSuffix(base, ".pptx") {
		t.Errorf("default name = %q", base)
	}
}
