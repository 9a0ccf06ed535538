package deck

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	ppt "github.com/VantageDataChat/GoPPT"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/mgk2100/ppt-generator/internal/domain"
	"github.com/mgk2100/ppt-generator/internal/geometry"
	"github.com/mgk2100/ppt-generator/internal/theme"
)

// addImageSlide centers a picture under the title with an optional caption.
// A missing or unreadable image file is reported and the slide is still
// built, so one bad path never sinks the whole deck.
func (r *render) addImageSlide(sc *domain.SlideConfig) error {
	sl, err := r.contentSlide(sc.Title)
	if err != nil {
		return err
	}

	if sc.ImagePath != "" {
		if err := r.placeImage(sl, sc); err != nil {
			fmt.Fprintf(r.warn, "warning: image %s: %v\n", sc.ImagePath, err)
		}
	}

	if sc.Caption != "" {
		caption := sl.CreateRichTextShape()
		placeText(caption, geometry.Rect{X: 0.4, Y: 6.3, W: 10.0, H: 0.5})
		caption.SetWordWrap(true)
		run := caption.CreateTextRun(sc.Caption)
		run.GetFont().SetName(theme.FontBody).SetSize(11).SetItalic(true).SetColor(pptColor(rgb(96, 96, 96)))
		alignCenter(caption.GetActiveParagraph())
	}
	return nil
}

func (r *render) placeImage(sl *ppt.Slide, sc *domain.SlideConfig) error {
	w, h := sc.ImageWidth, sc.ImageHeight
	if w == 0 && h == 0 {
		w = 8.0
	}
	if w == 0 || h == 0 {
		aw, ah, err := imageAspect(sc.ImagePath)
		if err != nil {
			return err
		}
		if w == 0 {
			w = h * aw / ah
		} else {
			h = w * ah / aw
		}
	}

	left := 1.4
	if sc.ImageWidth != 0 || sc.ImageHeight == 0 {
		left = (10.8 - w) / 2
	}

	img := sl.CreateDrawingShape()
	if err := img.SetImageFromFile(sc.ImagePath); err != nil {
		return err
	}
	img.SetOffsetX(inch(left)).SetOffsetY(inch(1.3)).SetWidth(inch(w)).SetHeight(inch(h))
	return nil
}

// imageAspect reads only the image header to get its pixel dimensions.
func imageAspect(path string) (float64, float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("decode image header: %w", err)
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return 0, 0, fmt.Errorf("image has zero dimension")
	}
	return float64(cfg.Width), float64(cfg.Height), nil
}
