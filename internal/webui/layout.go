package webui

import (
	"strconv"

	"spacexdash/internal/launches"
)

// Element IDs shared by the page, the client script and the callbacks.
const (
	SiteDropdownID        = "site-dropdown"
	PayloadSliderID       = "payload-slider"
	SuccessPieChartID     = "success-pie-chart"
	PayloadScatterChartID = "success-payload-scatter-chart"
)

// Payload slider bounds in kilograms.
const (
	SliderMin       = 0
	SliderMax       = 10000
	SliderStep      = 1000
	sliderMarkEvery = 2500
)

// Option is one dropdown entry.
type Option struct {
	Label    string `json:"label"`
	Value    string `json:"value"`
	Disabled bool   `json:"disabled,omitempty"`
}

// Dropdown is a single-choice selector.
type Dropdown struct {
	ID      string   `json:"id"`
	Options []Option `json:"options"`
	Value   string   `json:"value"`
}

// Mark is a labelled slider position.
type Mark struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// RangeSlider selects a [low, high] interval.
type RangeSlider struct {
	ID    string     `json:"id"`
	Label string     `json:"label"`
	Min   float64    `json:"min"`
	Max   float64    `json:"max"`
	Step  float64    `json:"step"`
	Marks []Mark     `json:"marks"`
	Value [2]float64 `json:"value"`
}

// Layout is the static view tree of the dashboard: a heading, the two
// controls and the two chart regions.
type Layout struct {
	Title         string      `json:"title"`
	SiteDropdown  Dropdown    `json:"siteDropdown"`
	PayloadSlider RangeSlider `json:"payloadSlider"`
	Outputs       []string    `json:"outputs"`
}

// NewLayout builds the layout for ds. The dropdown lists every site found in
// the data and the slider defaults to the dataset's payload bounds.
func NewLayout(ds *launches.Dataset) Layout {
	options := []Option{
		{Label: "Select a Launch Site here", Value: "placeholder", Disabled: true},
		{Label: "All Sites", Value: launches.AllSites},
	}
	for _, site := range ds.Sites() {
		options = append(options, Option{Label: site, Value: site})
	}

	var marks []Mark
	for v := SliderMin; v <= SliderMax; v += sliderMarkEvery {
		marks = append(marks, Mark{Value: float64(v), Label: strconv.Itoa(v)})
	}

	return Layout{
		Title: "SpaceX Launch Records Dashboard",
		SiteDropdown: Dropdown{
			ID:      SiteDropdownID,
			Options: options,
			Value:   launches.AllSites,
		},
		PayloadSlider: RangeSlider{
			ID:    PayloadSliderID,
			Label: "Payload range (Kg):",
			Min:   SliderMin,
			Max:   SliderMax,
			Step:  SliderStep,
			Marks: marks,
			Value: [2]float64{ds.MinPayload(), ds.MaxPayload()},
		},
		Outputs: []string{SuccessPieChartID, PayloadScatterChartID},
	}
}
