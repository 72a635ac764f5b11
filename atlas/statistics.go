package atlas

import "github.com/vkngwrapper/atlaskit/atlasutils"

// AddStatistics sums this page's entry counts and volumes into the statistics currently present
// in the provided atlasutils.Statistics object.
func (p *Page[H]) AddStatistics(stats *atlasutils.Statistics) {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	stats.PageCount++
	stats.PageVolume += int(p.dim.Volume())
	stats.LiveCount += p.live.count()
	stats.DeadCount += p.dead.count()

	p.live.ascend(func(rec *record[H]) bool {
		stats.LiveVolume += int(rec.entry.Size.Volume())
		return true
	})
	p.dead.ascend(func(rec *record[H]) bool {
		stats.DeadVolume += int(rec.entry.Size.Volume())
		return true
	})
}

// AddDetailedStatistics sums this page's statistics, including per-entry volume extremes, into
// the statistics currently present in the provided atlasutils.DetailedStatistics object.
func (p *Page[H]) AddDetailedStatistics(stats *atlasutils.DetailedStatistics) {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	stats.PageCount++
	stats.PageVolume += int(p.dim.Volume())

	_ = p.visitAllEntries(func(handle H, entry Entry, live bool) error {
		if live {
			stats.AddLiveEntry(int(entry.Size.Volume()))
		} else {
			stats.AddDeadEntry(int(entry.Size.Volume()))
		}
		return nil
	})
}
