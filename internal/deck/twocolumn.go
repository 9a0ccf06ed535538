package deck

import (
	"fmt"
	"os"

	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/mgk2100/ppt-generator/internal/domain"
	"github.com/mgk2100/ppt-generator/internal/geometry"
	"github.com/mgk2100/ppt-generator/internal/theme"
)

var columnRatios = map[string][2]float64{
	"50:50": {0.5, 0.5},
	"40:60": {0.4, 0.6},
	"60:40": {0.6, 0.4},
	"30:70": {0.3, 0.7},
	"70:30": {0.7, 0.3},
}

// addTwoColumnSlide splits the body into two columns at the configured
// ratio, each rendered independently as bullets, numbered items, free text,
// or an image.
func (r *render) addTwoColumnSlide(sc *domain.SlideConfig) error {
	sl, err := r.contentSlide(sc.Title)
	if err != nil {
		return err
	}

	ratio, ok := columnRatios[sc.ColumnRatio]
	if !ok {
		ratio = columnRatios["50:50"]
	}

	const (
		totalWidth    = 9.8
		gap           = 0.3
		leftX         = 0.5
		contentY      = 1.2
		contentHeight = 5.5
	)
	leftWidth := totalWidth*ratio[0] - gap/2
	rightWidth := totalWidth*ratio[1] - gap/2

	r.columnContent(sl, sc.LeftContent, leftX, contentY, leftWidth, contentHeight)
	r.columnContent(sl, sc.RightContent, leftX+leftWidth+gap, contentY, rightWidth, contentHeight)
	return nil
}

func (r *render) columnContent(sl *ppt.Slide, content domain.ColumnContent, x, y, width, height float64) {
	currentY := y

	if content.Title != "" {
		r.shape(sl, autoRect, geometry.Rect{X: x, Y: currentY, W: width, H: 0.45}, r.th.Color("primary"))
		r.textbox(sl, geometry.Rect{X: x + 0.1, Y: currentY + 0.08, W: width - 0.2, H: 0.35},
			content.Title, theme.Font{Name: theme.FontBody, Size: 14, Bold: true}, r.th.Color("white"))
		currentY += 0.55
	}

	if content.Background {
		fill := rgb(250, 250, 250)
		if content.BgColor != "" && r.th.HasColor(content.BgColor) {
			fill = r.th.Color(content.BgColor)
		} else if content.BgColor == "" {
			fill = r.th.Color("light")
		}
		r.shape(sl, autoRect, geometry.Rect{X: x, Y: currentY, W: width, H: height - (currentY - y)}, fill)
	}

	remaining := height - (currentY - y)
	itemFont := theme.Font{Name: theme.FontBody, Size: 12}
	black := r.th.Color("black")

	switch content.Type {
	case "text":
		r.textbox(sl, geometry.Rect{X: x + 0.1, Y: currentY + 0.1, W: width - 0.2, H: remaining - 0.2},
			content.Text, itemFont, black)
	case "image":
		if content.ImagePath == "" {
			return
		}
		if _, err := os.Stat(content.ImagePath); err != nil {
			return
		}
		img := sl.CreateDrawingShape()
		if err := img.SetImageFromFile(content.ImagePath); err != nil {
			r.shape(sl, autoRect, geometry.Rect{X: x + 0.1, Y: currentY + 0.1, W: width - 0.2, H: remaining - 0.2},
				rgb(240, 240, 240))
			return
		}
		imgW := width - 0.2
		imgH := remaining - 0.2
		if aw, ah, err := imageAspect(content.ImagePath); err == nil {
			imgH = imgW * ah / aw
		}
		img.SetOffsetX(inch(x + 0.1)).SetOffsetY(inch(currentY + 0.1)).SetWidth(inch(imgW)).SetHeight(inch(imgH))
	case "numbered":
		for i, item := range content.Items {
			r.textbox(sl, geometry.Rect{X: x + 0.1, Y: currentY + float64(i)*0.55, W: width - 0.2, H: 0.5},
				fmt.Sprintf("%d. %s", i+1, item), itemFont, black)
		}
	default: // bullets
		for i, item := range content.Items {
			r.textbox(sl, geometry.Rect{X: x + 0.1, Y: currentY + float64(i)*0.55, W: width - 0.2, H: 0.5},
				"• "+item, itemFont, black)
		}
	}
}
