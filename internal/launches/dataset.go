package launches

import (
	"time"
)

// Dataset is the launch table loaded at startup. It is never mutated after
// construction, so it is safe to share between goroutines.
type Dataset struct {
	records    []LaunchRecord
	sites      []string
	minPayload float64
	maxPayload float64
	source     string
	loadedAt   time.Time
}

// Summary describes a Dataset without its rows.
type Summary struct {
	Source     string    `json:"source"`
	LoadedAt   time.Time `json:"loadedAt"`
	Records    int       `json:"records"`
	Sites      []string  `json:"sites"`
	MinPayload float64   `json:"minPayloadKg"`
	MaxPayload float64   `json:"maxPayloadKg"`
}

// NewDataset builds a Dataset from records, computing the payload bounds and
// the distinct sites in order of first appearance. The records slice is copied.
func NewDataset(records []LaunchRecord, source string) *Dataset {
	ds := &Dataset{
		records:  append([]LaunchRecord(nil), records...),
		sites:    []string{},
		source:   source,
		loadedAt: time.Now(),
	}

	seen := make(map[string]bool)
	for i, r := range ds.records {
		if i == 0 || r.PayloadMassKg < ds.minPayload {
			ds.minPayload = r.PayloadMassKg
		}
		if i == 0 || r.PayloadMassKg > ds.maxPayload {
			ds.maxPayload = r.PayloadMassKg
		}
		if !seen[r.Site] {
			seen[r.Site] = true
			ds.sites = append(ds.sites, r.Site)
		}
	}

	return ds
}

// Records returns a copy of the rows in file order.
func (ds *Dataset) Records() []LaunchRecord {
	return append([]LaunchRecord(nil), ds.records...)
}

// Each calls fn for every row in file order.
func (ds *Dataset) Each(fn func(LaunchRecord)) {
	for _, r := range ds.records {
		fn(r)
	}
}

// Len returns the number of rows.
func (ds *Dataset) Len() int {
	return len(ds.records)
}

// Sites returns the distinct launch sites in order of first appearance.
func (ds *Dataset) Sites() []string {
	return append([]string(nil), ds.sites...)
}

// MinPayload is the smallest payload mass in the table, 0 when empty.
func (ds *Dataset) MinPayload() float64 {
	return ds.minPayload
}

// MaxPayload is the largest payload mass in the table, 0 when empty.
func (ds *Dataset) MaxPayload() float64 {
	return ds.maxPayload
}

func (ds *Dataset) Source() string {
	return ds.source
}

func (ds *Dataset) LoadedAt() time.Time {
	return ds.loadedAt
}

func (ds *Dataset) Summary() Summary {
	return Summary{
		Source:     ds.source,
		LoadedAt:   ds.loadedAt,
		Records:    len(ds.records),
		Sites:      ds.Sites(),
		MinPayload: ds.minPayload,
		MaxPayload: ds.maxPayload,
	}
}
