package atlas

// placement is the winning result of a placement search, ready to be committed
type placement[H comparable] struct {
	position   Extent
	cost       uint64
	casualties []H
}

type axisOverlap struct {
	x, y, z bool
}

func (o axisOverlap) all() bool {
	return o.x && o.y && o.z
}

// overlapAxes tests the half-open boxes [lhs, rhs) and [otherLhs, otherRhs) for overlap on each
// axis separately
func overlapAxes(lhs, rhs, otherLhs, otherRhs Extent) axisOverlap {
	return axisOverlap{
		x: lhs.X < otherRhs.X && rhs.X > otherLhs.X,
		y: lhs.Y < otherRhs.Y && rhs.Y > otherLhs.Y,
		z: lhs.Z < otherRhs.Z && rhs.Z > otherLhs.Z,
	}
}

// candidates returns the points worth trying as the origin of a new region: the page origin,
// plus the three corners reached by stepping along each axis from every live and dead entry.
// Dead entries contribute so that space they occupy stays reachable once they are evicted.
// Duplicates are left in; they only cost a redundant measurement.
func (p *Page[H]) candidates() []Extent {
	points := make([]Extent, 0, 1+3*(p.live.count()+p.dead.count()))
	points = append(points, Zero)

	advance := func(rec *record[H]) bool {
		position, size := rec.entry.Position, rec.entry.Size
		points = append(points,
			position.Add(size.Mul(AxisX)),
			position.Add(size.Mul(AxisY)),
			position.Add(size.Mul(AxisZ)),
		)
		return true
	}

	p.live.ascend(advance)
	p.dead.ascend(advance)

	return points
}

// measure evaluates a region of the given size placed at position. It returns false if the
// region leaves the page or overlaps a live entry. Otherwise it returns the region's cost, the
// summed distance from each far face to the nearest live neighbor or page edge along that axis,
// and the dead entries the region would evict.
func (p *Page[H]) measure(position, size Extent) (uint64, []H, bool) {
	if !size.fitsWithin(position, p.dim) {
		return 0, nil, false
	}

	lhs := position
	rhs := position.Add(size)
	distance := p.dim.Sub(rhs)
	blocked := false

	p.live.ascend(func(rec *record[H]) bool {
		otherLhs := rec.entry.Position
		otherRhs := rec.entry.Max()

		intersects := overlapAxes(lhs, rhs, otherLhs, otherRhs)
		if intersects.all() {
			blocked = true
			return false
		}

		// A neighbor that shares the other two axes bounds how far this region could grow
		if intersects.y && intersects.z && otherLhs.X > rhs.X {
			if gap := otherLhs.X - rhs.X; gap < distance.X {
				distance.X = gap
			}
		}

		if intersects.x && intersects.z && otherLhs.Y > rhs.Y {
			if gap := otherLhs.Y - rhs.Y; gap < distance.Y {
				distance.Y = gap
			}
		}

		if intersects.x && intersects.y && otherLhs.Z > rhs.Z {
			if gap := otherLhs.Z - rhs.Z; gap < distance.Z {
				distance.Z = gap
			}
		}

		return true
	})

	if blocked {
		return 0, nil, false
	}

	var casualties []H
	p.dead.ascend(func(rec *record[H]) bool {
		if overlapAxes(lhs, rhs, rec.entry.Position, rec.entry.Max()).all() {
			casualties = append(casualties, rec.handle)
		}
		return true
	})

	cost := uint64(distance.X) + uint64(distance.Y) + uint64(distance.Z)
	return cost, casualties, true
}

// findPlacement measures every candidate and keeps the one that evicts the fewest dead entries,
// breaking ties by the lowest cost. Earlier candidates win exact ties.
func (p *Page[H]) findPlacement(size Extent) (placement[H], bool) {
	var best placement[H]
	found := false

	if !size.LessEqual(p.dim) {
		return best, false
	}

	for _, candidate := range p.candidates() {
		cost, casualties, ok := p.measure(candidate, size)
		if !ok {
			continue
		}

		if !found ||
			len(casualties) < len(best.casualties) ||
			len(casualties) == len(best.casualties) && cost < best.cost {
			best = placement[H]{
				position:   candidate,
				cost:       cost,
				casualties: casualties,
			}
			found = true
		}
	}

	return best, found
}
