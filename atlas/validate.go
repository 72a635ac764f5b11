package atlas

import (
	"github.com/pkg/errors"
)

// Validate performs internal consistency checks on the page: both entry sets agree with their
// ordered indices, no handle is both live and dead, every entry lies inside the page with a
// size aligned to the granularity, and no two live entries overlap. The overlap check is
// quadratic in the number of live entries, so this should generally be reserved for tests and
// diagnostics.
func (p *Page[H]) Validate() error {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	return p.validate()
}

func (p *Page[H]) validate() error {
	if p.dim.AnyZero() {
		return errors.Errorf("page dimensions %s have a zero component", p.dim)
	}

	err := p.validateGeneration(&p.live, "live")
	if err != nil {
		return err
	}

	err = p.validateGeneration(&p.dead, "dead")
	if err != nil {
		return err
	}

	p.live.ascend(func(rec *record[H]) bool {
		if p.dead.has(rec.handle) {
			err = errors.Errorf("handle %v is both live and dead", rec.handle)
		}
		return err == nil
	})
	if err != nil {
		return err
	}

	var checked []*record[H]
	p.live.ascend(func(rec *record[H]) bool {
		for _, other := range checked {
			if overlapAxes(rec.entry.Position, rec.entry.Max(), other.entry.Position, other.entry.Max()).all() {
				err = errors.Errorf("live handle %v at %s overlaps live handle %v at %s",
					rec.handle, rec.entry.Position, other.handle, other.entry.Position)
				return false
			}
		}
		checked = append(checked, rec)
		return true
	})

	return err
}

func (p *Page[H]) validateGeneration(g *generation[H], name string) error {
	if g.byHandle.Count() != g.ordered.Len() {
		return errors.Errorf("the %s set holds %d handles, but its ordered index holds %d records",
			name, g.byHandle.Count(), g.ordered.Len())
	}

	var err error
	var lastSeq uint64
	g.ascend(func(rec *record[H]) bool {
		indexed, ok := g.byHandle.Get(rec.handle)
		if !ok || indexed != rec {
			err = errors.Errorf("%s handle %v is in the ordered index but not in the handle map", name, rec.handle)
			return false
		}

		if rec.seq <= lastSeq || rec.seq > p.sequence {
			err = errors.Errorf("%s handle %v has sequence %d, which is out of order", name, rec.handle, rec.seq)
			return false
		}
		lastSeq = rec.seq

		size := rec.entry.Size
		if size.AnyZero() {
			err = errors.Errorf("%s handle %v has a zero-sized entry %s", name, rec.handle, size)
			return false
		}

		if size.X%p.granularity.X != 0 || size.Y%p.granularity.Y != 0 || size.Z%p.granularity.Z != 0 {
			err = errors.Errorf("%s handle %v has size %s, which is not a multiple of the granularity %s",
				name, rec.handle, size, p.granularity)
			return false
		}

		if !size.fitsWithin(rec.entry.Position, p.dim) {
			err = errors.Errorf("%s handle %v at %s with size %s extends past the page dimensions %s",
				name, rec.handle, rec.entry.Position, size, p.dim)
			return false
		}

		return true
	})

	return err
}
