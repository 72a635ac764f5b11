package atlas

import (
	"math"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/atlaskit/atlasutils"
	"github.com/vkngwrapper/atlaskit/internal/utils"
	"golang.org/x/exp/slog"
)

// CreateFlags indicate specific page behaviors to activate or deactivate
type CreateFlags int32

const (
	// CreateSynchronized makes every method on the page take an internal lock. Pages are not
	// synchronized by default: the consumer must guarantee they are used from only one goroutine
	// at a time or are synchronized by some other mechanism.
	CreateSynchronized CreateFlags = 1 << iota
)

var createFlagsMapping = map[CreateFlags]string{
	CreateSynchronized: "CreateSynchronized",
}

func (f CreateFlags) String() string {
	if f == 0 {
		return "None"
	}

	var names []string
	for flag := CreateFlags(1); flag != 0 && flag <= f; flag <<= 1 {
		if f&flag == 0 {
			continue
		}

		name, known := createFlagsMapping[flag]
		if !known {
			name = "Unknown"
		}
		names = append(names, name)
	}

	return strings.Join(names, "|")
}

// CreateOptions contains optional settings when creating a page
type CreateOptions struct {
	// Flags indicates specific page behaviors to activate or deactivate
	Flags CreateFlags

	// Granularity, if provided, rounds every requested size up to a multiple of the given value
	// on each axis. Each nonzero component must be a power of two; zero components are treated
	// as 1. Block-compressed texture atlases usually want Extent{X: 4, Y: 4, Z: 1}.
	//
	// Positions are derived from the origin and from the sizes of other entries, so with a
	// granularity in place every position is aligned to it as well.
	Granularity Extent

	// InitialCapacity is a hint for how many entries each of the live and dead sets will hold.
	InitialCapacity int
}

// New creates a new Page covering the volume [0, dim) on every axis
//
// logger - Receives debug traces for page operations. If nil, slog.Default() is used
//
// dim - The size of the page. Every component must be positive.
//
// options - Optional parameters: it is valid to leave all the fields blank
func New[H comparable](logger *slog.Logger, dim Extent, options CreateOptions) (*Page[H], error) {
	if dim.AnyZero() {
		return nil, errors.Wrapf(atlasutils.ErrInvalidDimensions, "page dimensions were %s", dim)
	}

	granularity, err := normalizeGranularity(options.Granularity)
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = slog.Default()
	}

	capacity := options.InitialCapacity
	if capacity <= 0 {
		capacity = defaultInitialCapacity
	}

	page := &Page[H]{
		logger:      logger,
		mutex:       utils.OptionalRWMutex{UseMutex: options.Flags&CreateSynchronized != 0},
		createFlags: options.Flags,
		dim:         dim,
		granularity: granularity,
		live:        newGeneration[H](capacity),
		dead:        newGeneration[H](capacity),
	}

	logger.Debug("Page::New",
		slog.String("Dimensions", dim.String()),
		slog.String("Granularity", granularity.String()),
		slog.String("Flags", options.Flags.String()),
	)

	return page, nil
}

func normalizeGranularity(granularity Extent) (Extent, error) {
	if granularity.X == 0 {
		granularity.X = 1
	}
	if granularity.Y == 0 {
		granularity.Y = 1
	}
	if granularity.Z == 0 {
		granularity.Z = 1
	}

	err := atlasutils.CheckPow2(granularity.X, "granularity.X")
	if err != nil {
		return granularity, err
	}
	err = atlasutils.CheckPow2(granularity.Y, "granularity.Y")
	if err != nil {
		return granularity, err
	}
	err = atlasutils.CheckPow2(granularity.Z, "granularity.Z")
	if err != nil {
		return granularity, err
	}

	return granularity, nil
}

// roundUpSize applies the page granularity to a requested size. It returns false if the rounded
// size no longer fits in 32 bits, which can only happen for sizes far larger than any page.
func (p *Page[H]) roundUpSize(size Extent) (Extent, bool) {
	atlasutils.DebugCheckPow2(p.granularity.X, "granularity.X")
	atlasutils.DebugCheckPow2(p.granularity.Y, "granularity.Y")
	atlasutils.DebugCheckPow2(p.granularity.Z, "granularity.Z")

	x := atlasutils.AlignUp(int(size.X), uint(p.granularity.X))
	y := atlasutils.AlignUp(int(size.Y), uint(p.granularity.Y))
	z := atlasutils.AlignUp(int(size.Z), uint(p.granularity.Z))

	if uint64(x) > math.MaxUint32 || uint64(y) > math.MaxUint32 || uint64(z) > math.MaxUint32 {
		return size, false
	}

	return Extent{X: uint32(x), Y: uint32(y), Z: uint32(z)}, true
}
