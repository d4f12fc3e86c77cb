package launches

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDataset(t *testing.T) {
	records := []LaunchRecord{
		{Site: "B", PayloadMassKg: 300, Class: 1, BoosterVersionCategory: "FT"},
		{Site: "A", PayloadMassKg: 100, Class: 0, BoosterVersionCategory: "v1.0"},
		{Site: "B", PayloadMassKg: 700, Class: 0, BoosterVersionCategory: "B4"},
	}

	ds := NewDataset(records, "memory")

	assert.Equal(t, 3, ds.Len())
	assert.Equal(t, 100.0, ds.MinPayload())
	assert.Equal(t, 700.0, ds.MaxPayload())
	assert.Equal(t, []string{"B", "A"}, ds.Sites())

	summary := ds.Summary()
	assert.Equal(t, "memory", summary.Source)
	assert.Equal(t, 3, summary.Records)
	assert.Equal(t, []string{"B", "A"}, summary.Sites)
	assert.False(t, summary.LoadedAt.IsZero())
}

func TestDatasetIsolatedFromCallers(t *testing.T) {
	records := []LaunchRecord{{Site: "A", PayloadMassKg: 1, Class: 1, BoosterVersionCategory: "FT"}}
	ds := NewDataset(records, "memory")

	records[0].Site = "mutated"
	assert.Equal(t, "A", ds.Records()[0].Site)

	got := ds.Records()
	got[0].Site = "mutated again"
	assert.Equal(t, "A", ds.Records()[0].Site)

	sites := ds.Sites()
	sites[0] = "mutated"
	assert.Equal(t, []string{"A"}, ds.Sites())
}

func TestEach(t *testing.T) {
	ds := NewDataset([]LaunchRecord{
		{Site: "A", PayloadMassKg: 1},
		{Site: "B", PayloadMassKg: 2},
	}, "memory")

	var visited []string
	ds.Each(func(r LaunchRecord) {
		visited = append(visited, r.Site)
	})

	assert.Equal(t, []string{"A", "B"}, visited)
}
