// Package atlas packs variably sized boxes into a fixed-size 3D volume (an atlas page).
//
// Each region is identified by a caller-provided handle. Removing a handle does not free its
// space right away: the entry is demoted to a dead set and keeps its position, so that inserting
// the same handle again with the same size revives it in place. Dead entries never block a new
// placement; when a new region overlaps them they are evicted for good.
package atlas

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/atlaskit/atlasutils"
	"github.com/vkngwrapper/atlaskit/internal/utils"
	"golang.org/x/exp/slog"
)

// Page is a single atlas volume. H may be any comparable type; see the handle package for
// ready-made handle sources.
//
// A Page is not safe for concurrent use unless it was created with CreateSynchronized.
type Page[H comparable] struct {
	logger      *slog.Logger
	mutex       utils.OptionalRWMutex
	createFlags CreateFlags

	dim         Extent
	granularity Extent
	sequence    uint64

	live generation[H]
	dead generation[H]
}

// unlockedPage lets atlasutils.DebugValidate run against a page whose lock is already held
type unlockedPage[H comparable] struct {
	page *Page[H]
}

func (v unlockedPage[H]) Validate() error {
	return v.page.validate()
}

func (p *Page[H]) nextSequence() uint64 {
	p.sequence++
	return p.sequence
}

// Dimensions returns the size the page was created with
func (p *Page[H]) Dimensions() Extent { return p.dim }

// Granularity returns the per-axis rounding applied to requested sizes
func (p *Page[H]) Granularity() Extent { return p.granularity }

// Flags returns the flags the page was created with
func (p *Page[H]) Flags() CreateFlags { return p.createFlags }

// LiveCount returns the number of entries currently in use
func (p *Page[H]) LiveCount() int {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	return p.live.count()
}

// DeadCount returns the number of removed entries that are still retained for revival
func (p *Page[H]) DeadCount() int {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	return p.dead.count()
}

// IsEmpty will return true if this page has no live entries. Dead entries may still be present.
func (p *Page[H]) IsEmpty() bool {
	return p.LiveCount() == 0
}

// IsDead returns true if the handle was removed but its entry has not yet been evicted or purged
func (p *Page[H]) IsDead(handle H) bool {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	return p.dead.has(handle)
}

// Get returns the live entry for handle, if any
func (p *Page[H]) Get(handle H) (Entry, bool) {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	rec, ok := p.live.get(handle)
	if !ok {
		return Entry{}, false
	}
	return rec.entry, true
}

// Insert requests space for handle.
//
// If the handle is live, its current position is returned as SlotExisting. If it was removed and
// its dead entry has not been evicted, it is revived at its previous position, also as
// SlotExisting. Otherwise a new position is searched for: on success the entry is committed,
// any dead entries it overlaps are evicted, and SlotNew is returned. SlotNoFit indicates that
// there is no room and nothing was changed.
//
// size must be positive on every axis. It is rounded up to the page granularity before use, so
// the size stored in the page's Entry may be larger than requested. A live handle must always be
// requested with the same size; asking for a different one returns an error marked with
// atlasutils.ErrSizeMismatch and leaves the page untouched.
func (p *Page[H]) Insert(handle H, size Extent) (Slot, error) {
	p.logger.Debug("Page::Insert")

	if size.AnyZero() {
		return NoFit(), errors.Wrapf(atlasutils.ErrInvalidSize, "requested size was %s", size)
	}

	p.mutex.Lock()
	defer p.mutex.Unlock()

	atlasutils.DebugValidate(unlockedPage[H]{page: p})

	rounded, ok := p.roundUpSize(size)

	if rec, isLive := p.live.get(handle); isLive {
		// A stored size always fits in 32 bits, so a size that overflowed while rounding cannot match it
		if !ok || rec.entry.Size != rounded {
			return NoFit(), errors.Wrapf(atlasutils.ErrSizeMismatch,
				"handle %v is live with size %s but was requested with size %s", handle, rec.entry.Size, size)
		}

		return Existing(rec.entry.Position), nil
	}

	if !ok {
		p.logger.Debug("  Page::Insert NO FIT", slog.String("Size", size.String()))
		return NoFit(), nil
	}

	if rec, isDead := p.dead.delete(handle); isDead {
		if rec.entry.Size == rounded {
			rec.seq = p.nextSequence()
			p.live.put(rec)

			p.logger.Debug("  Page::Insert revived dead entry", slog.String("Position", rec.entry.Position.String()))
			return Existing(rec.entry.Position), nil
		}

		// The handle's size changed while it was dead, so its old reservation is of no further use
		p.logger.Debug("  Page::Insert discarded dead entry",
			slog.String("OldSize", rec.entry.Size.String()),
			slog.String("Size", rounded.String()),
		)
	}

	best, found := p.findPlacement(rounded)
	if !found {
		p.logger.Debug("  Page::Insert NO FIT", slog.String("Size", rounded.String()))
		return NoFit(), nil
	}

	p.live.put(&record[H]{
		handle: handle,
		entry:  Entry{Size: rounded, Position: best.position},
		seq:    p.nextSequence(),
	})

	for _, casualty := range best.casualties {
		p.dead.delete(casualty)
	}

	if len(best.casualties) > 0 {
		p.logger.Debug("  Page::Insert evicted dead entries", slog.Int("Count", len(best.casualties)))
	}

	return NewSlot(best.position), nil
}

// Remove marks handle as dead. Its entry keeps its position in case the handle is inserted
// again, but it no longer blocks other placements. Removing a handle that is not live does nothing.
func (p *Page[H]) Remove(handle H) {
	p.logger.Debug("Page::Remove")

	p.mutex.Lock()
	defer p.mutex.Unlock()

	atlasutils.DebugValidate(unlockedPage[H]{page: p})

	rec, ok := p.live.delete(handle)
	if !ok {
		return
	}

	rec.seq = p.nextSequence()
	p.dead.put(rec)
}

// Purge removes handle from the page without keeping it in reserve
func (p *Page[H]) Purge(handle H) {
	p.logger.Debug("Page::Purge")

	p.mutex.Lock()
	defer p.mutex.Unlock()

	atlasutils.DebugValidate(unlockedPage[H]{page: p})

	p.live.delete(handle)
	p.dead.delete(handle)
}

// RemoveAll marks every live handle as dead
func (p *Page[H]) RemoveAll() {
	p.logger.Debug("Page::RemoveAll")

	p.mutex.Lock()
	defer p.mutex.Unlock()

	atlasutils.DebugValidate(unlockedPage[H]{page: p})

	demoted := make([]*record[H], 0, p.live.count())
	p.live.ascend(func(rec *record[H]) bool {
		demoted = append(demoted, rec)
		return true
	})
	p.live.clear()

	for _, rec := range demoted {
		rec.seq = p.nextSequence()
		p.dead.put(rec)
	}
}

// PurgeAll instantly removes every live and dead entry
func (p *Page[H]) PurgeAll() {
	p.logger.Debug("Page::PurgeAll")

	p.mutex.Lock()
	defer p.mutex.Unlock()

	atlasutils.DebugValidate(unlockedPage[H]{page: p})

	p.live.clear()
	p.dead.clear()
}

// VisitAllEntries will call the provided callback once for each live entry and then once for each
// dead entry, in the order they entered their current set. Visiting stops at the first error,
// which is returned. The callback must not call back into the page.
func (p *Page[H]) VisitAllEntries(visit func(handle H, entry Entry, live bool) error) error {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	return p.visitAllEntries(visit)
}

func (p *Page[H]) visitAllEntries(visit func(handle H, entry Entry, live bool) error) error {
	var err error
	p.live.ascend(func(rec *record[H]) bool {
		err = visit(rec.handle, rec.entry, true)
		return err == nil
	})
	if err != nil {
		return err
	}

	p.dead.ascend(func(rec *record[H]) bool {
		err = visit(rec.handle, rec.entry, false)
		return err == nil
	})
	return err
}
