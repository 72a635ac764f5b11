package atlasutils

import "math"

// Statistics holds entry counts and volumes summed over one or more atlas pages. Volumes are
// measured in cells (the product of an extent's three components).
type Statistics struct {
	PageCount  int
	LiveCount  int
	DeadCount  int
	PageVolume int
	LiveVolume int
	DeadVolume int
}

func (s *Statistics) Clear() {
	s.PageCount = 0
	s.LiveCount = 0
	s.DeadCount = 0
	s.PageVolume = 0
	s.LiveVolume = 0
	s.DeadVolume = 0
}

func (s *Statistics) AddStatistics(other *Statistics) {
	s.PageCount += other.PageCount
	s.LiveCount += other.LiveCount
	s.DeadCount += other.DeadCount
	s.PageVolume += other.PageVolume
	s.LiveVolume += other.LiveVolume
	s.DeadVolume += other.DeadVolume
}

// FreeVolume is the page volume not covered by live entries. Dead entries count as free, since
// any placement may evict them.
func (s *Statistics) FreeVolume() int {
	return s.PageVolume - s.LiveVolume
}

type DetailedStatistics struct {
	Statistics
	LiveVolumeMin int
	LiveVolumeMax int
	DeadVolumeMin int
	DeadVolumeMax int
}

func (s *DetailedStatistics) Clear() {
	s.Statistics.Clear()
	s.LiveVolumeMin = math.MaxInt
	s.LiveVolumeMax = 0
	s.DeadVolumeMin = math.MaxInt
	s.DeadVolumeMax = 0
}

func (s *DetailedStatistics) AddLiveEntry(volume int) {
	s.LiveCount++
	s.LiveVolume += volume

	if volume < s.LiveVolumeMin {
		s.LiveVolumeMin = volume
	}

	if volume > s.LiveVolumeMax {
		s.LiveVolumeMax = volume
	}
}

func (s *DetailedStatistics) AddDeadEntry(volume int) {
	s.DeadCount++
	s.DeadVolume += volume

	if volume < s.DeadVolumeMin {
		s.DeadVolumeMin = volume
	}

	if volume > s.DeadVolumeMax {
		s.DeadVolumeMax = volume
	}
}

func (s *DetailedStatistics) AddDetailedStatistics(other *DetailedStatistics) {
	s.Statistics.AddStatistics(&other.Statistics)

	if other.LiveVolumeMin < s.LiveVolumeMin {
		s.LiveVolumeMin = other.LiveVolumeMin
	}

	if other.LiveVolumeMax > s.LiveVolumeMax {
		s.LiveVolumeMax = other.LiveVolumeMax
	}

	if other.DeadVolumeMin < s.DeadVolumeMin {
		s.DeadVolumeMin = other.DeadVolumeMin
	}

	if other.DeadVolumeMax > s.DeadVolumeMax {
		s.DeadVolumeMax = other.DeadVolumeMax
	}
}
