package deck

import (
	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/mgk2100/ppt-generator/internal/domain"
)

// chartSeriesColors is the fill rotation applied to chart series.
var chartSeriesColors = []string{"primary", "secondary", "accent", "success", "warning", "danger"}

// addChartSlide builds a native chart from the configured categories and
// series. Pie and doughnut charts never show a legend; everything else shows
// one at the configured position unless disabled.
func (r *render) addChartSlide(sc *domain.SlideConfig) error {
	sl, err := r.contentSlide(sc.Title)
	if err != nil {
		return err
	}
	if len(sc.Series) == 0 {
		return nil
	}

	series := make([]*ppt.ChartSeries, len(sc.Series))
	for i, s := range sc.Series {
		name := s.Name
		if name == "" {
			name = "Series"
		}
		series[i] = ppt.NewChartSeriesOrdered(name, sc.Categories, s.Values).
			SetFillColor(pptColor(r.th.Color(chartSeriesColors[i%len(chartSeriesColors)])))
	}

	chart := sl.CreateChartShape()
	chart.SetPosition(inch(0.5), inch(1.3))
	chart.SetSize(inch(9.8), inch(5.5))
	chart.GetPlotArea().SetType(buildChartType(sc.ChartType, series))

	if sc.ChartTitle != "" {
		chart.GetTitle().SetText(sc.ChartTitle).SetVisible(true)
	} else {
		chart.GetTitle().SetVisible(false)
	}

	legend := chart.GetLegend()
	showLegend := sc.ShowLegend == nil || *sc.ShowLegend
	if showLegend && sc.ChartType != "pie" && sc.ChartType != "doughnut" {
		legend.Visible = true
		switch sc.LegendPosition {
		case "top":
			legend.Position = ppt.LegendTop
		case "left":
			legend.Position = ppt.LegendLeft
		case "right":
			legend.Position = ppt.LegendRight
		default:
			legend.Position = ppt.LegendBottom
		}
	} else {
		legend.Visible = false
	}
	return nil
}

// buildChartType maps a configuration chart type onto writer chart geometry.
// Unknown types fall back to a clustered column chart.
func buildChartType(name string, series []*ppt.ChartSeries) ppt.ChartType {
	switch name {
	case "bar":
		c := ppt.NewBarChart()
		c.BarDirection = ppt.BarDirectionHorizontal
		addBarSeries(c, series)
		return c
	case "bar_stacked":
		c := ppt.NewBarChart().SetBarGrouping(ppt.BarGroupingStacked)
		c.BarDirection = ppt.BarDirectionHorizontal
		addBarSeries(c, series)
		return c
	case "column_stacked":
		c := ppt.NewBarChart().SetBarGrouping(ppt.BarGroupingStacked)
		addBarSeries(c, series)
		return c
	case "line", "line_markers":
		c := ppt.NewLineChart()
		for _, s := range series {
			if name == "line_markers" {
				s.Marker = &ppt.SeriesMarker{Symbol: ppt.MarkerCircle, Size: 5}
			}
			c.AddSeries(s)
		}
		return c
	case "pie":
		c := ppt.NewPieChart()
		for _, s := range series {
			c.AddSeries(s)
		}
		return c
	case "doughnut":
		c := ppt.NewDoughnutChart()
		for _, s := range series {
			c.AddSeries(s)
		}
		return c
	case "area", "area_stacked":
		c := ppt.NewAreaChart()
		for _, s := range series {
			c.AddSeries(s)
		}
		return c
	case "radar", "radar_filled":
		c := ppt.NewRadarChart()
		for _, s := range series {
			c.AddSeries(s)
		}
		return c
	default: // column
		c := ppt.NewBarChart()
		addBarSeries(c, series)
		return c
	}
}

func addBarSeries(c *ppt.BarChart, series []*ppt.ChartSeries) {
	for _, s := range series {
		c.AddSeries(s)
	}
}
