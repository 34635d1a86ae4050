package layout

import "github.com/brawlkit/brawlkit/internal/buf"

// Platform identifies one of the four supported save-format variants.
type Platform string

const (
	PS2  Platform = "ps2"
	PS3  Platform = "ps3"
	Wii  Platform = "wii"
	X360 Platform = "x360"
)

// StatsOffsets locates the battle-statistics block. All offsets are relative
// to the start of the save instance; any field may be Unset when the position
// is unknown for the platform.
type StatsOffsets struct {
	RankingPoints  int // 24-bit counter, platform endian
	CreaturePoints int // 24-bit counter, platform endian
	Battles        int
	Wins           int
	Losses         int
	SphereAttacks  int
	DoubleStands   int
	ModeStory      int
	ModeArcade     int
	ModeSurvival   int
	OpponentWins   int // base of a 16 x 1-byte array
	AttributeUsage int // base of a 6 x (1 value byte + 1 pad byte) array
}

// Profile is the immutable layout description for one platform. Offsets are
// relative to the start of a save instance; multi-slot platforms repeat the
// whole instance every SaveSize bytes.
type Profile struct {
	// SaveSize is the byte length of one save instance. Zero means the file
	// holds a single save and slot indexes are forced to 0.
	SaveSize int

	// Base is the start of the creature record table.
	Base int

	// CardBase is the card-flag region start minus CardIDBase, so that
	// CardBase + cardID lands on the flag byte. It is negative on platforms
	// whose flag region starts before file offset CardIDBase.
	CardBase int

	PlayerName int
	Styling    int
	Decks      [DeckCount]int

	// DeckNameBack is subtracted from each deck offset to locate that
	// deck's name region. Unset means the platform stores no deck names.
	DeckNameBack int

	// Order is the byte order of 16- and 24-bit fields.
	Order buf.Order

	// Stats is nil on platforms without a battle-statistics block.
	Stats *StatsOffsets
}

// MultiSlot reports whether the file multiplexes several save instances.
func (p Profile) MultiSlot() bool { return p.SaveSize > 0 }

// HasDeckNames reports whether the platform stores deck name regions.
func (p Profile) HasDeckNames() bool { return p.DeckNameBack != Unset }
