package charts

import (
	"errors"
	"fmt"
	"math"

	"spacexdash/internal/launches"
)

// ErrInvalidRange is returned by PayloadRange.Validate.
var ErrInvalidRange = errors.New("invalid payload range")

// PayloadRange is an inclusive payload mass interval in kilograms.
type PayloadRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// FullRange spans every payload in ds.
func FullRange(ds *launches.Dataset) PayloadRange {
	return PayloadRange{Low: ds.MinPayload(), High: ds.MaxPayload()}
}

func (r PayloadRange) Validate() error {
	if math.IsNaN(r.Low) || math.IsNaN(r.High) || math.IsInf(r.Low, 0) || math.IsInf(r.High, 0) {
		return fmt.Errorf("%w: bounds must be finite", ErrInvalidRange)
	}
	if r.Low > r.High {
		return fmt.Errorf("%w: low %g is greater than high %g", ErrInvalidRange, r.Low, r.High)
	}
	return nil
}

// Contains reports whether low <= payload <= high.
func (r PayloadRange) Contains(payload float64) bool {
	return r.Low <= payload && payload <= r.High
}

// Point is one launch on the scatter chart.
type Point struct {
	PayloadMassKg float64 `json:"x"`
	Class         int     `json:"y"`
	Site          string  `json:"site"`
}

// ScatterSeries holds the points of one booster version category.
type ScatterSeries struct {
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

// ScatterChart is a scatter chart specification of payload mass against
// outcome class, one series per booster version category.
type ScatterChart struct {
	Title  string          `json:"title"`
	XLabel string          `json:"xLabel"`
	YLabel string          `json:"yLabel"`
	Color  string          `json:"colorBy"`
	Series []ScatterSeries `json:"series"`
}

// Len is the number of points across all series.
func (c ScatterChart) Len() int {
	n := 0
	for _, s := range c.Series {
		n += len(s.Points)
	}
	return n
}

// Points returns every point, series by series.
func (c ScatterChart) Points() []Point {
	points := make([]Point, 0, c.Len())
	for _, s := range c.Series {
		points = append(points, s.Points...)
	}
	return points
}

// Empty reports whether the chart has no points.
func (c ScatterChart) Empty() bool {
	return c.Len() == 0
}

// PayloadScatter builds the payload/outcome scatter chart for launches whose
// payload lies in rng and, unless site is AllSites, that launched from site.
// Series are ordered by first appearance of their booster category.
func PayloadScatter(ds *launches.Dataset, site string, rng PayloadRange) ScatterChart {
	title := "Correlation between Payload & Success for all Sites"
	if site != launches.AllSites {
		title = fmt.Sprintf("Correlation between Payload & Success for site %s", site)
	}

	chart := ScatterChart{
		Title:  title,
		XLabel: launches.ColumnPayloadMass,
		YLabel: launches.ColumnClass,
		Color:  launches.ColumnBoosterVersion,
		Series: []ScatterSeries{},
	}

	index := make(map[string]int)
	ds.Each(func(r launches.LaunchRecord) {
		if !rng.Contains(r.PayloadMassKg) {
			return
		}
		if site != launches.AllSites && r.Site != site {
			return
		}

		i, ok := index[r.BoosterVersionCategory]
		if !ok {
			i = len(chart.Series)
			index[r.BoosterVersionCategory] = i
			chart.Series = append(chart.Series, ScatterSeries{Name: r.BoosterVersionCategory})
		}
		chart.Series[i].Points = append(chart.Series[i].Points, Point{
			PayloadMassKg: r.PayloadMassKg,
			Class:         r.Class,
			Site:          r.Site,
		})
	})

	return chart
}
