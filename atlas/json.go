package atlas

import (
	"fmt"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/atlaskit/atlasutils"
)

func writeExtent(writer *jwriter.Writer, extent Extent) {
	obj := writer.Object()
	defer obj.End()

	obj.Name("X").Int(int(extent.X))
	obj.Name("Y").Int(int(extent.Y))
	obj.Name("Z").Int(int(extent.Z))
}

// PrintDetailedMap writes a json object describing the page and every live and dead entry in it
func (p *Page[H]) PrintDetailedMap(writer *jwriter.Writer) {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	objState := writer.Object()
	defer objState.End()

	writeExtent(objState.Name("Dimensions"), p.dim)
	writeExtent(objState.Name("Granularity"), p.granularity)
	objState.Name("TotalVolume").Int(int(p.dim.Volume()))
	objState.Name("LiveEntries").Int(p.live.count())
	objState.Name("DeadEntries").Int(p.dead.count())

	arrayState := objState.Name("Entries").Array()
	defer arrayState.End()

	_ = p.visitAllEntries(func(handle H, entry Entry, live bool) error {
		obj := arrayState.Object()
		defer obj.End()

		obj.Name("Handle").String(fmt.Sprintf("%+v", handle))
		if live {
			obj.Name("State").String("Live")
		} else {
			obj.Name("State").String("Dead")
		}
		writeExtent(obj.Name("Position"), entry.Position)
		writeExtent(obj.Name("Size"), entry.Size)

		return nil
	})
}

func printStatistics(json *jwriter.ObjectState, stats *atlasutils.DetailedStatistics) {
	json.Name("PageCount").Int(stats.PageCount)
	json.Name("PageVolume").Int(stats.PageVolume)
	json.Name("FreeVolume").Int(stats.FreeVolume())
	json.Name("LiveCount").Int(stats.LiveCount)
	json.Name("LiveVolume").Int(stats.LiveVolume)
	json.Name("DeadCount").Int(stats.DeadCount)
	json.Name("DeadVolume").Int(stats.DeadVolume)

	if stats.LiveCount > 0 {
		json.Name("LiveVolumeMin").Int(stats.LiveVolumeMin)
		json.Name("LiveVolumeMax").Int(stats.LiveVolumeMax)
	}

	if stats.DeadCount > 0 {
		json.Name("DeadVolumeMin").Int(stats.DeadVolumeMin)
		json.Name("DeadVolumeMax").Int(stats.DeadVolumeMax)
	}
}

// BuildStatsString returns a json document summarizing the page. If detailed is true, the
// document also contains the output of PrintDetailedMap under the "DetailedMap" key.
func (p *Page[H]) BuildStatsString(detailed bool) string {
	var stats atlasutils.DetailedStatistics
	stats.Clear()
	p.AddDetailedStatistics(&stats)

	writer := jwriter.NewWriter()
	objState := writer.Object()

	totalState := objState.Name("Total").Object()
	printStatistics(&totalState, &stats)
	totalState.End()

	if detailed {
		p.PrintDetailedMap(objState.Name("DetailedMap"))
	}

	objState.End()

	return string(writer.Bytes())
}
