package deck

import (
	"bytes"
	"fmt"
	"io"

	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/mgk2100/ppt-generator/internal/config"
	"github.com/mgk2100/ppt-generator/internal/domain"
	"github.com/mgk2100/ppt-generator/internal/geometry"
	"github.com/mgk2100/ppt-generator/internal/theme"
)

// Layout names resolved from a template file. All three must exist when a
// template is used.
const (
	layoutCover         = "제목 슬라이드"
	layoutContent       = "제목 및 내용"
	layoutContentNoPage = "제목 및 내용 (페이지 번호 삭제)"
)

// fixedAuthor is stamped on the cover and into the document properties.
const fixedAuthor = "미래융합설계센터 알고리즘개발팀 강민규 선임"

var reportTypeLines = map[string]string{
	"의사결정": "■ 의사결정    □ 보고    □ 정보공유",
	"보고":   "□ 의사결정    ■ 보고    □ 정보공유",
	"정보공유": "□ 의사결정    □ 보고    ■ 정보공유",
}

// FileStore writes finished decks to disk.
type FileStore interface {
	ResolveDeckPath(name string) (string, error)
	WriteFile(path string, data []byte) error
}

// Service turns deck configurations into .pptx files.
type Service struct {
	theme *theme.Theme
	store FileStore
	warn  io.Writer
}

var _ domain.DeckService = (*Service)(nil)

// New returns a deck service. Warnings about skipped slides go to warn.
func New(t *theme.Theme, store FileStore, warn io.Writer) *Service {
	if warn == nil {
		warn = io.Discard
	}
	return &Service{theme: t, store: store, warn: warn}
}

// render carries the per-generation state shared by the slide builders.
type render struct {
	pres        *ppt.Presentation
	th          *theme.Theme
	cardStyle   string
	pageNumbers bool
	template    bool
	warn        io.Writer
	firstUsed   bool
	page        int
}

// Generate builds the deck and writes it under the output store. The
// returned path is the file actually written, which may carry a uniquifying
// suffix.
func (s *Service) Generate(cfg *domain.DeckConfig, outName string) (string, error) {
	r, err := s.newRender(cfg.Settings)
	if err != nil {
		return "", err
	}

	if cfg.Cover != nil {
		if err := r.addCoverSlide(cfg.Cover); err != nil {
			return "", err
		}
	}

	for i := range cfg.Slides {
		sc := &cfg.Slides[i]
		if err := r.addSlide(sc); err != nil {
			return "", fmt.Errorf("slide %d (%s): %w", i+1, sc.Type, err)
		}
	}

	props := r.pres.GetDocumentProperties()
	if cfg.Cover != nil {
		props.Title = cfg.Cover.Title
	}
	props.Creator = fixedAuthor

	var buf bytes.Buffer
	if err := r.pres.WriteTo(&buf); err != nil {
		return "", fmt.Errorf("serialize deck: %w", err)
	}

	path, err := s.store.ResolveDeckPath(outName)
	if err != nil {
		return "", err
	}
	if err := s.store.WriteFile(path, buf.Bytes()); err != nil {
		return "", fmt.Errorf("write deck: %w", err)
	}
	return path, nil
}

func (s *Service) newRender(set domain.Settings) (*render, error) {
	r := &render{
		th:          s.theme,
		cardStyle:   s.theme.CardStyle,
		pageNumbers: set.PageNumbers(),
		warn:        s.warn,
	}
	if set.CardStyle != "" {
		r.cardStyle = set.CardStyle
	}

	if set.Template != "" {
		pres, err := ppt.OpenTemplate(set.Template)
		if err != nil {
			return nil, fmt.Errorf("open template %s: %w", set.Template, err)
		}
		for _, name := range []string{layoutCover, layoutContent, layoutContentNoPage} {
			if _, err := pres.GetLayoutByName(name); err != nil {
				return nil, fmt.Errorf("template %s: missing layout %q", set.Template, name)
			}
		}
		r.pres = pres
		r.template = true
		return r, nil
	}

	r.pres = ppt.New()
	// The coordinate system below assumes the 10.83 x 7.5 inch canvas the
	// company template uses. Match it when starting from a blank deck.
	r.pres.GetLayout().SetCustomLayout(inch(10.83), inch(7.5))
	return r, nil
}

// addSlide dispatches one slide entry to its builder. Unknown types are
// reported and skipped.
func (r *render) addSlide(sc *domain.SlideConfig) error {
	switch sc.Type {
	case "section":
		return r.addSectionSlide(sc)
	case "content":
		return r.addContentSlide(sc)
	case "content_boxed":
		return r.addContentBoxedSlide(sc)
	case "content_icons":
		return r.addContentIconsSlide(sc)
	case "comparison":
		return r.addComparisonSlide(sc)
	case "text":
		return r.addTextSlide(sc)
	case "table":
		return r.addTableSlide(sc)
	case "cards":
		return r.addCardsSlide(sc)
	case "architecture":
		return r.addArchitectureSlide(sc)
	case "flowchart":
		return r.addFlowchartSlide(sc)
	case "summary":
		return r.addSummarySlide(sc)
	case "image":
		return r.addImageSlide(sc)
	case "timeline":
		return r.addTimelineSlide(sc)
	case "stats":
		return r.addStatsSlide(sc)
	case "two_column":
		return r.addTwoColumnSlide(sc)
	case "chart":
		return r.addChartSlide(sc)
	case "org_chart":
		return r.addOrgChartSlide(sc)
	case "tree":
		return r.addTreeSlide(sc)
	default:
		if !config.KnownSlideTypes[sc.Type] {
			fmt.Fprintf(r.warn, "warning: skipping unknown slide type %q\n", sc.Type)
			return nil
		}
		return fmt.Errorf("no builder for slide type %q", sc.Type)
	}
}

// newSlide appends a slide using the named layout. Without a template the
// canvas is blank and the layout name only selects footer behavior.
func (r *render) newSlide(layout string) (*ppt.Slide, error) {
	r.page++
	if r.template {
		sl, err := r.pres.AddSlideWithLayout(layout)
		if err != nil {
			return nil, fmt.Errorf("layout %q: %w", layout, err)
		}
		return sl, nil
	}
	if !r.firstUsed {
		r.firstUsed = true
		return r.pres.GetActiveSlide(), nil
	}
	return r.pres.CreateSlide(), nil
}

func (r *render) contentLayout() string {
	if r.pageNumbers {
		return layoutContent
	}
	return layoutContentNoPage
}

// contentSlide appends a body slide and draws its title row.
func (r *render) contentSlide(title string) (*ppt.Slide, error) {
	sl, err := r.newSlide(r.contentLayout())
	if err != nil {
		return nil, err
	}
	r.slideTitle(sl, title)
	r.pageFooter(sl)
	return sl, nil
}

func (r *render) slideTitle(sl *ppt.Slide, title string) {
	if title == "" {
		return
	}
	lay := r.th.Layout
	rect := geometry.Rect{X: lay.MarginLeft, Y: 0.3, W: lay.ContentWidth, H: lay.TitleHeight}
	f := theme.Font{Name: theme.FontTitle, Size: 24, Bold: true}
	r.textbox(sl, rect, title, f, r.th.Color("black"))
}

// pageFooter draws the slide number on blank-canvas decks. Template decks
// inherit the footer from the layout.
func (r *render) pageFooter(sl *ppt.Slide) {
	if r.template || !r.pageNumbers {
		return
	}
	f := theme.Font{Name: theme.FontBody, Size: 10}
	sh := r.textbox(sl, geometry.Rect{X: 9.3, Y: 7.1, W: 0.5, H: 0.3}, fmt.Sprintf("%d", r.page), f, rgb(128, 128, 128))
	alignRight(sh.GetActiveParagraph())
}
