// Package dashboard wires the launch charts to the page controls.
package dashboard

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"spacexdash/internal/charts"
	"spacexdash/internal/launches"
	"spacexdash/internal/reactive"
	"spacexdash/internal/webui"
)

// Callback IDs.
const (
	SiteProportionCallback = "site-proportion"
	PayloadScatterCallback = "payload-scatter"
)

// ErrInvalidInput marks control values the charts cannot be built from.
var ErrInvalidInput = errors.New("invalid input")

// Figure is a chart specification together with its SVG rendering.
type Figure struct {
	Spec any    `json:"figure"`
	SVG  string `json:"svg"`
}

// Dashboard owns the dataset and the callback registry.
type Dashboard struct {
	Dataset  *launches.Dataset
	Registry *reactive.Registry
	Size     charts.Size
}

// New registers the proportion and scatter callbacks for ds.
func New(ds *launches.Dataset, size charts.Size) (*Dashboard, error) {
	d := &Dashboard{
		Dataset:  ds,
		Registry: reactive.NewRegistry(webui.SiteDropdownID, webui.PayloadSliderID),
		Size:     size,
	}

	callbacks := []reactive.Callback{
		{
			ID:     SiteProportionCallback,
			Inputs: []string{webui.SiteDropdownID},
			Output: webui.SuccessPieChartID,
			Run:    d.runSiteProportion,
		},
		{
			ID:     PayloadScatterCallback,
			Inputs: []string{webui.SiteDropdownID, webui.PayloadSliderID},
			Output: webui.PayloadScatterChartID,
			Run:    d.runPayloadScatter,
		},
	}
	for _, cb := range callbacks {
		if err := d.Registry.Register(cb); err != nil {
			return nil, fmt.Errorf("registering %s: %w", cb.ID, err)
		}
	}

	return d, nil
}

// Update runs the callbacks affected by a change of control changed.
func (d *Dashboard) Update(ctx context.Context, changed string, in reactive.Values) (reactive.Result, error) {
	return d.Registry.Dispatch(ctx, changed, in)
}

// ProportionFigure builds and renders the success proportion chart.
func (d *Dashboard) ProportionFigure(site string) (Figure, error) {
	spec := charts.SiteProportion(d.Dataset, site)

	var buf bytes.Buffer
	if err := charts.RenderProportionSVG(&buf, spec, d.Size); err != nil {
		return Figure{}, err
	}
	return Figure{Spec: spec, SVG: buf.String()}, nil
}

// ScatterFigure builds and renders the payload scatter chart.
func (d *Dashboard) ScatterFigure(site string, rng charts.PayloadRange) (Figure, error) {
	if err := rng.Validate(); err != nil {
		return Figure{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	spec := charts.PayloadScatter(d.Dataset, site, rng)

	var buf bytes.Buffer
	if err := charts.RenderScatterSVG(&buf, spec, d.Size); err != nil {
		return Figure{}, err
	}
	return Figure{Spec: spec, SVG: buf.String()}, nil
}

func (d *Dashboard) runSiteProportion(_ context.Context, in reactive.Values) (any, error) {
	site, err := in.String(webui.SiteDropdownID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return d.ProportionFigure(site)
}

func (d *Dashboard) runPayloadScatter(_ context.Context, in reactive.Values) (any, error) {
	site, err := in.String(webui.SiteDropdownID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	pair, err := in.Float64Pair(webui.PayloadSliderID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return d.ScatterFigure(site, charts.PayloadRange{Low: pair[0], High: pair[1]})
}
