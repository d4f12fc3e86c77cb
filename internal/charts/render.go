package charts

import (
	"fmt"
	"html/template"
	"io"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Size is the pixel size of a rendered chart.
type Size struct {
	Width  int
	Height int
}

// DefaultSize is used when a caller passes a zero Size.
var DefaultSize = Size{Width: 900, Height: 450}

func (s Size) orDefault() Size {
	if s.Width <= 0 || s.Height <= 0 {
		return DefaultSize
	}
	return s
}

// palette is the qualitative color sequence used for slices and series.
var palette = []string{
	"636efa", "ef553b", "00cc96", "ab63fa", "ffa15a",
	"19d3f3", "ff6692", "b6e880", "ff97ff", "fecb52",
}

func paletteColor(i int) drawing.Color {
	return drawing.ColorFromHex(palette[i%len(palette)])
}

// pointStyle returns a style that renders points only (no connecting line)
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		StrokeColor: col,
		DotWidth:    5,
		DotColor:    col,
	}
}

// RenderProportionSVG writes c as an SVG pie chart.
func RenderProportionSVG(w io.Writer, c ProportionChart, size Size) error {
	size = size.orDefault()
	if c.Empty() {
		return renderPlaceholder(w, c.Title, size)
	}

	values := make([]chart.Value, 0, len(c.Slices))
	for i, s := range c.Slices {
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (%d)", s.Label, s.Value),
			Value: float64(s.Value),
			Style: chart.Style{
				FillColor:   paletteColor(i),
				StrokeColor: drawing.ColorWhite,
			},
		})
	}

	pie := chart.PieChart{
		Title:  c.Title,
		Width:  size.Width,
		Height: size.Height,
		Values: values,
	}

	if err := pie.Render(chart.SVG, w); err != nil {
		return fmt.Errorf("rendering proportion chart %q: %w", c.Title, err)
	}
	return nil
}

// RenderScatterSVG writes c as an SVG scatter chart with a legend of
// booster categories.
func RenderScatterSVG(w io.Writer, c ScatterChart, size Size) error {
	size = size.orDefault()
	if c.Empty() {
		return renderPlaceholder(w, c.Title, size)
	}

	minX, maxX := math.Inf(1), math.Inf(-1)
	series := make([]chart.Series, 0, len(c.Series))
	for i, s := range c.Series {
		xs := make([]float64, 0, len(s.Points))
		ys := make([]float64, 0, len(s.Points))
		for _, p := range s.Points {
			xs = append(xs, p.PayloadMassKg)
			ys = append(ys, float64(p.Class))
			minX = math.Min(minX, p.PayloadMassKg)
			maxX = math.Max(maxX, p.PayloadMassKg)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: ys,
			Style:   pointStyle(paletteColor(i)),
		})
	}

	graph := chart.Chart{
		Title:      c.Title,
		Width:      size.Width,
		Height:     size.Height,
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 48}},
		XAxis: chart.XAxis{
			Name:  c.XLabel,
			Range: paddedRange(minX, maxX),
		},
		YAxis: chart.YAxis{
			Name:  c.YLabel,
			Range: &chart.ContinuousRange{Min: -0.25, Max: 1.25},
			Ticks: []chart.Tick{
				{Value: 0, Label: "0"},
				{Value: 1, Label: "1"},
			},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(chart.SVG, w); err != nil {
		return fmt.Errorf("rendering scatter chart %q: %w", c.Title, err)
	}
	return nil
}

// paddedRange widens [lo, hi] by 5% on each side; a zero-width range is
// widened by 500 kg so single-payload charts still have an x axis.
func paddedRange(lo, hi float64) *chart.ContinuousRange {
	pad := (hi - lo) * 0.05
	if pad == 0 {
		pad = 500
	}
	return &chart.ContinuousRange{Min: lo - pad, Max: hi + pad}
}

var placeholderTemplate = template.Must(template.New("placeholder").Parse(
	`<svg xmlns="http://www.w3.org/2000/svg" width="{{.Width}}" height="{{.Height}}" viewBox="0 0 {{.Width}} {{.Height}}">` +
		`<rect width="100%" height="100%" fill="#ffffff"/>` +
		`<text x="50%" y="32" text-anchor="middle" font-family="sans-serif" font-size="16" fill="#333333">{{.Title}}</text>` +
		`<text x="50%" y="50%" text-anchor="middle" font-family="sans-serif" font-size="14" fill="#999999">No launches match the current selection</text>` +
		`</svg>`))

// renderPlaceholder writes the SVG used for charts with no data.
func renderPlaceholder(w io.Writer, title string, size Size) error {
	err := placeholderTemplate.Execute(w, struct {
		Title  string
		Width  int
		Height int
	}{Title: title, Width: size.Width, Height: size.Height})
	if err != nil {
		return fmt.Errorf("rendering empty chart %q: %w", title, err)
	}
	return nil
}
