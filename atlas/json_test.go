package atlas_test

import (
	"testing"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/atlaskit/atlas"
	"github.com/vkngwrapper/atlaskit/atlasutils"
)

func reportPage(t *testing.T) *atlas.Page[int] {
	t.Helper()

	page, err := atlas.New[int](nil, atlas.Splat(4), atlas.CreateOptions{})
	require.NoError(t, err)

	slot, err := page.Insert(1, atlas.Splat(2))
	require.NoError(t, err)
	require.Equal(t, atlas.NewSlot(atlas.Zero), slot)

	slot, err = page.Insert(2, atlas.Splat(1))
	require.NoError(t, err)
	require.Equal(t, atlas.NewSlot(atlas.Extent{X: 2}), slot)

	page.Remove(2)
	return page
}

const detailedMapJSON = `{
	"Dimensions": {"X": 4, "Y": 4, "Z": 4},
	"Granularity": {"X": 1, "Y": 1, "Z": 1},
	"TotalVolume": 64,
	"LiveEntries": 1,
	"DeadEntries": 1,
	"Entries": [
		{"Handle": "1", "State": "Live", "Position": {"X": 0, "Y": 0, "Z": 0}, "Size": {"X": 2, "Y": 2, "Z": 2}},
		{"Handle": "2", "State": "Dead", "Position": {"X": 2, "Y": 0, "Z": 0}, "Size": {"X": 1, "Y": 1, "Z": 1}}
	]
}`

const totalJSON = `{
	"PageCount": 1,
	"PageVolume": 64,
	"FreeVolume": 56,
	"LiveCount": 1,
	"LiveVolume": 8,
	"DeadCount": 1,
	"DeadVolume": 1,
	"LiveVolumeMin": 8,
	"LiveVolumeMax": 8,
	"DeadVolumeMin": 1,
	"DeadVolumeMax": 1
}`

func TestPrintDetailedMap(t *testing.T) {
	page := reportPage(t)

	writer := jwriter.NewWriter()
	page.PrintDetailedMap(&writer)
	require.NoError(t, writer.Error())

	require.JSONEq(t, detailedMapJSON, string(writer.Bytes()))
}

func TestBuildStatsString(t *testing.T) {
	page := reportPage(t)

	require.JSONEq(t, `{"Total": `+totalJSON+`}`, page.BuildStatsString(false))
	require.JSONEq(t, `{"Total": `+totalJSON+`, "DetailedMap": `+detailedMapJSON+`}`, page.BuildStatsString(true))
}

func TestBuildStatsStringEmptyPage(t *testing.T) {
	page, err := atlas.New[int](nil, atlas.Extent{X: 2, Y: 3, Z: 4}, atlas.CreateOptions{})
	require.NoError(t, err)

	require.JSONEq(t, `{"Total": {
		"PageCount": 1,
		"PageVolume": 24,
		"FreeVolume": 24,
		"LiveCount": 0,
		"LiveVolume": 0,
		"DeadCount": 0,
		"DeadVolume": 0
	}}`, page.BuildStatsString(false))
}

func TestPageStatistics(t *testing.T) {
	page := reportPage(t)

	var stats atlasutils.Statistics
	page.AddStatistics(&stats)
	require.Equal(t, atlasutils.Statistics{
		PageCount:  1,
		LiveCount:  1,
		DeadCount:  1,
		PageVolume: 64,
		LiveVolume: 8,
		DeadVolume: 1,
	}, stats)
	require.Equal(t, 56, stats.FreeVolume())

	var detailed atlasutils.DetailedStatistics
	detailed.Clear()
	page.AddDetailedStatistics(&detailed)
	page.AddDetailedStatistics(&detailed)
	require.Equal(t, 2, detailed.PageCount)
	require.Equal(t, 2, detailed.LiveCount)
	require.Equal(t, 16, detailed.LiveVolume)
	require.Equal(t, 8, detailed.LiveVolumeMin)
	require.Equal(t, 8, detailed.LiveVolumeMax)
	require.Equal(t, 1, detailed.DeadVolumeMin)
	require.Equal(t, 1, detailed.DeadVolumeMax)
}
