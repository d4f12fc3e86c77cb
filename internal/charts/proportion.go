package charts

import (
	"fmt"
	"sort"
	"strconv"

	"spacexdash/internal/launches"
)

// Slice is one category of a proportion chart.
type Slice struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// ProportionChart is a pie chart specification.
type ProportionChart struct {
	Title   string  `json:"title"`
	GroupBy string  `json:"groupBy"`
	Slices  []Slice `json:"slices"`
}

// Empty reports whether the chart has no slices.
func (c ProportionChart) Empty() bool {
	return len(c.Slices) == 0
}

// Total is the sum of all slice values.
func (c ProportionChart) Total() int {
	total := 0
	for _, s := range c.Slices {
		total += s.Value
	}
	return total
}

// SiteProportion builds the success proportion chart for site.
//
// For AllSites it counts successful launches per site. For a single site it
// counts that site's launches per outcome class. A site with no launches
// yields a chart with no slices.
func SiteProportion(ds *launches.Dataset, site string) ProportionChart {
	if site == launches.AllSites {
		counts := newOrderedCounter()
		ds.Each(func(r launches.LaunchRecord) {
			if r.Succeeded() {
				counts.add(r.Site)
			}
		})
		return ProportionChart{
			Title:   "Total Success Launches by Site",
			GroupBy: launches.ColumnLaunchSite,
			Slices:  counts.slices(),
		}
	}

	counts := newOrderedCounter()
	ds.Each(func(r launches.LaunchRecord) {
		if r.Site == site {
			counts.add(strconv.Itoa(r.Class))
		}
	})
	return ProportionChart{
		Title:   fmt.Sprintf("Total Success Launches for site %s", site),
		GroupBy: launches.ColumnClass,
		Slices:  counts.slices(),
	}
}

// orderedCounter counts keys, remembering the order they were first seen.
type orderedCounter struct {
	order  []string
	counts map[string]int
}

func newOrderedCounter() *orderedCounter {
	return &orderedCounter{counts: make(map[string]int)}
}

func (c *orderedCounter) add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// slices returns the counts, largest first; ties keep first-seen order.
func (c *orderedCounter) slices() []Slice {
	out := make([]Slice, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, Slice{Label: key, Value: c.counts[key]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value > out[j].Value
	})
	return out
}
