package atlas

// Entry is the placement record for a single handle
type Entry struct {
	Size     Extent
	Position Extent
}

// Max returns the exclusive far corner of the entry's box
func (e Entry) Max() Extent {
	return e.Position.Add(e.Size)
}

// SlotKind indicates how an Insert call was resolved
type SlotKind uint32

const (
	// SlotNoFit indicates that there was no room for the requested region. Nothing in the page
	// was changed.
	SlotNoFit SlotKind = iota
	// SlotNew indicates that a new position was computed for the handle and committed to the page.
	// The caller will usually need to upload the handle's content to this position.
	SlotNew
	// SlotExisting indicates that the handle already had a position, either because it was live
	// or because it was revived from the dead entries before being evicted. The content at that
	// position is still valid.
	SlotExisting
)

var slotKindMapping = map[SlotKind]string{
	SlotNoFit:    "NoFit",
	SlotNew:      "New",
	SlotExisting: "Existing",
}

func (k SlotKind) String() string {
	name, known := slotKindMapping[k]
	if !known {
		return "Unknown"
	}
	return name
}

// Slot is the result of an Insert call. Position is only meaningful when Kind is SlotNew or
// SlotExisting.
type Slot struct {
	Kind     SlotKind
	Position Extent
}

// NoFit returns a Slot of kind SlotNoFit
func NoFit() Slot {
	return Slot{Kind: SlotNoFit}
}

// NewSlot returns a Slot of kind SlotNew at the provided position
func NewSlot(position Extent) Slot {
	return Slot{Kind: SlotNew, Position: position}
}

// Existing returns a Slot of kind SlotExisting at the provided position
func Existing(position Extent) Slot {
	return Slot{Kind: SlotExisting, Position: position}
}

// Fits returns true if the slot carries a position
func (s Slot) Fits() bool {
	return s.Kind != SlotNoFit
}

func (s Slot) String() string {
	if s.Kind == SlotNoFit {
		return s.Kind.String()
	}
	return s.Kind.String() + s.Position.String()
}
