// Package layout houses the static per-platform layout tables for the save
// format. The goal is to keep every reverse-engineered constant in one place,
// as data rather than branching logic, so a corrected offset never requires a
// change to codec code.
package layout

const (
	// CreatureStride is the byte distance between two creature records with
	// the same attribute. Each creature owns one record per attribute:
	//   record = Base + creatureID*CreatureStride + attributeID*AttributeStride
	CreatureStride = 120

	// AttributeStride is the byte distance between a creature's records for
	// adjacent attributes (CreatureStride / AttributeCount).
	AttributeStride = 20

	// CreatureRecordSize is the number of bytes a single creature record
	// occupies. The trailing bytes of the 20-byte stride are unused.
	CreatureRecordSize = 14

	// AttributeCount is the number of elemental attributes.
	AttributeCount = 6

	// CreatureCount is the number of creature rows in the table.
	CreatureCount = 30
)

// Creature record field sub-offsets. All fields are single bytes except
// Power, which is a platform-endian uint16.
const (
	CreatureIDOffset        = 0x00 // creature id echo (1 byte)
	CreatureAttrOffset      = 0x01 // attribute id echo (1 byte)
	CreaturePowerOffset     = 0x02 // power (2 bytes, platform endian)
	CreatureSpeedOffset     = 0x04
	CreatureDefenseOffset   = 0x05
	CreatureAccelOffset     = 0x06
	CreatureEnduranceOffset = 0x07
	CreatureJumpOffset      = 0x08
	CreatureLevelOffset     = 0x09
	// 0x0A..0x0D reserved, always observed as zero
)

const (
	// CardIDBase is the lowest absolute card id. Card ids in the game data
	// are absolute (gate and ability cards share one id space starting
	// here), so a card-flag region that starts early in the file yields a
	// negative CardBase (region start minus CardIDBase) in the profile.
	CardIDBase = 10232

	// CardCount is the number of tracked card-flag bytes.
	CardCount = 500
)

// Deck block geometry. A deck is 36 bytes: three 2-byte creature slots, six
// pad bytes, three 2-byte gate-card slots, six pad bytes, three 2-byte
// ability-card slots, six pad bytes.
const (
	DeckSize          = 36
	DeckSlotSize      = 2
	DeckSlotsPerGroup = 3
	DeckGroupSize     = 12 // three slots plus six pad bytes

	DeckCreatureGroupOffset = 0x00
	DeckGateGroupOffset     = 0x0C
	DeckAbilityGroupOffset  = 0x18

	// EmptySlot marks an unused 2-byte deck slot on disk.
	EmptySlot = 0xFFFF

	// PadByte fills the six bytes after each slot group.
	PadByte = 0xFF

	// DeckCount is the number of decks per save.
	DeckCount = 2
)

// Name regions store one ASCII byte followed by one zero byte per character
// (UTF-16LE for the printable ASCII range), null-terminated on read.
const (
	PlayerNameChars = 8
	DeckNameChars   = 10
	NameStride      = 2
)

const (
	// StylingSize is the byte length of the avatar styling block.
	StylingSize = 45

	// SlotMax is the highest save-slot index on multi-save platforms.
	SlotMax = 3

	// OpponentCount is the length of the per-opponent win-count array.
	OpponentCount = 16
)

// Unset marks an offset that is not configured for a platform. Dependent
// reads yield zero values and dependent writes are skipped.
const Unset = -1
