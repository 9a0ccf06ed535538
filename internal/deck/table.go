package deck

import (
	"fmt"

	"github.com/mgk2100/ppt-generator/internal/domain"
	"github.com/mgk2100/ppt-generator/internal/theme"
)

// addTableSlide builds a data table with a primary-colored header row and
// zebra-striped body. Highlighted rows get a yellow tint. Column widths are
// always equal; the writer has no per-column grid control.
func (r *render) addTableSlide(sc *domain.SlideConfig) error {
	sl, err := r.contentSlide(sc.Title)
	if err != nil {
		return err
	}
	cols := len(sc.Headers)
	if cols == 0 {
		return nil
	}

	highlight := make(map[int]bool, len(sc.HighlightRows))
	for _, idx := range sc.HighlightRows {
		highlight[idx] = true
	}

	table := sl.CreateTableShape(len(sc.Rows)+1, cols)
	table.SetPosition(inch(0.4), inch(1.2))
	table.SetWidth(inch(10.0))
	table.SetHeight(inch(0.45 * float64(len(sc.Rows)+1)))

	headerFont := theme.Font{Name: theme.FontBody, Size: 12, Bold: true}
	white := r.th.Color("white")
	for c, h := range sc.Headers {
		cell := table.GetCell(0, c)
		cell.SetFill(solidFill(r.th.Color("primary")))
		p := cell.GetParagraphs()[0]
		alignCenter(p)
		styleRun(p.CreateTextRun(h), headerFont, white)
	}

	bodyFont := theme.Font{Name: theme.FontBody, Size: 11}
	black := r.th.Color("black")
	for ri, row := range sc.Rows {
		fill := white
		if ri%2 == 0 {
			fill = rgb(248, 248, 248)
		}
		if highlight[ri] {
			fill = rgb(255, 255, 200)
		}
		for c := 0; c < cols; c++ {
			cell := table.GetCell(ri+1, c)
			cell.SetFill(solidFill(fill))
			var text string
			if c < len(row) {
				text = row[c]
			}
			p := cell.GetParagraphs()[0]
			alignCenter(p)
			styleRun(p.CreateTextRun(text), bodyFont, black)
		}
	}

	if len(sc.ColWidths) > 0 {
		fmt.Fprintf(r.warn, "warning: table col_widths are not supported, using equal columns\n")
	}
	return nil
}
