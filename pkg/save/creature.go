package save

import (
	"fmt"

	"github.com/brawlkit/brawlkit/internal/buf"
	"github.com/brawlkit/brawlkit/internal/layout"
)

// CreatureEntry is the decoded form of one 14-byte creature record. A
// creature owns one record per attribute.
type CreatureEntry struct {
	ID        uint8  `json:"id"`
	Attribute uint8  `json:"attribute"`
	Power     uint16 `json:"power"`

	Speed        uint8 `json:"speed"`
	Defense      uint8 `json:"defense"`
	Acceleration uint8 `json:"acceleration"`
	Endurance    uint8 `json:"endurance"`
	Jump         uint8 `json:"jump"`
	Level        uint8 `json:"level"`
}

// creatureOffset computes the absolute record offset for (creatureID,
// attributeID), rejecting ids outside the table.
func creatureOffset(ctx *Context, creatureID, attributeID int) (int, error) {
	if creatureID < 0 || creatureID >= layout.CreatureCount {
		return 0, fmt.Errorf("%w: creature id %d outside table", ErrOutOfRange, creatureID)
	}
	if attributeID < 0 || attributeID >= layout.AttributeCount {
		return 0, fmt.Errorf("%w: attribute id %d outside table", ErrOutOfRange, attributeID)
	}
	row, ok := buf.MulOverflowSafe(creatureID, layout.CreatureStride)
	if !ok {
		return 0, fmt.Errorf("%w: creature id %d", ErrOutOfRange, creatureID)
	}
	return ctx.Base + row + attributeID*layout.AttributeStride, nil
}

// ReadCreatureEntry decodes the record for (creatureID, attributeID). Only
// the 2-byte power field is endian-sensitive; every other field is a single
// byte.
func ReadCreatureEntry(b []byte, ctx *Context, creatureID, attributeID int) (CreatureEntry, error) {
	off, err := creatureOffset(ctx, creatureID, attributeID)
	if err != nil {
		return CreatureEntry{}, err
	}
	if err := checkRange(b, off, layout.CreatureRecordSize); err != nil {
		return CreatureEntry{}, fmt.Errorf("creature %d/%d: %w", creatureID, attributeID, err)
	}
	return CreatureEntry{
		ID:           b[off+layout.CreatureIDOffset],
		Attribute:    b[off+layout.CreatureAttrOffset],
		Power:        buf.U16(b, off+layout.CreaturePowerOffset, ctx.Order),
		Speed:        b[off+layout.CreatureSpeedOffset],
		Defense:      b[off+layout.CreatureDefenseOffset],
		Acceleration: b[off+layout.CreatureAccelOffset],
		Endurance:    b[off+layout.CreatureEnduranceOffset],
		Jump:         b[off+layout.CreatureJumpOffset],
		Level:        b[off+layout.CreatureLevelOffset],
	}, nil
}

// WriteCreatureEntry encodes e into the record for (creatureID, attributeID).
//
// The id and attribute byte slots are filled from the creatureID and
// attributeID arguments, not from e.ID and e.Attribute, so a record can never
// disagree with the address it was written to. The reserved tail of the
// record is zeroed.
func WriteCreatureEntry(b []byte, ctx *Context, creatureID, attributeID int, e CreatureEntry) error {
	off, err := creatureOffset(ctx, creatureID, attributeID)
	if err != nil {
		return err
	}
	if err := checkRange(b, off, layout.CreatureRecordSize); err != nil {
		return fmt.Errorf("creature %d/%d: %w", creatureID, attributeID, err)
	}
	b[off+layout.CreatureIDOffset] = uint8(creatureID)
	b[off+layout.CreatureAttrOffset] = uint8(attributeID)
	buf.PutU16(b, off+layout.CreaturePowerOffset, e.Power, ctx.Order)
	b[off+layout.CreatureSpeedOffset] = e.Speed
	b[off+layout.CreatureDefenseOffset] = e.Defense
	b[off+layout.CreatureAccelOffset] = e.Acceleration
	b[off+layout.CreatureEnduranceOffset] = e.Endurance
	b[off+layout.CreatureJumpOffset] = e.Jump
	b[off+layout.CreatureLevelOffset] = e.Level
	for i := layout.CreatureLevelOffset + 1; i < layout.CreatureRecordSize; i++ {
		b[off+i] = 0
	}
	return nil
}
