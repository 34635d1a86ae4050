package save

import (
	"fmt"

	"github.com/brawlkit/brawlkit/internal/buf"
	"github.com/brawlkit/brawlkit/internal/layout"
)

// CreatureRef identifies one creature/attribute pairing in a deck slot.
type CreatureRef struct {
	Creature  int `json:"creature"`
	Attribute int `json:"attribute"`
}

// Deck is the decoded form of one 36-byte deck block. Nil slots are empty;
// the on-disk 0xFFFF sentinel never leaks out of this codec. Card slots hold
// absolute card ids.
type Deck struct {
	Creatures    [layout.DeckSlotsPerGroup]*CreatureRef `json:"creatures"`
	GateCards    [layout.DeckSlotsPerGroup]*int         `json:"gate_cards"`
	AbilityCards [layout.DeckSlotsPerGroup]*int         `json:"ability_cards"`
}

func deckOffset(ctx *Context, deckIndex int) (int, error) {
	if deckIndex < 0 || deckIndex >= layout.DeckCount {
		return 0, fmt.Errorf("%w: %d", ErrInvalidDeckIndex, deckIndex)
	}
	return ctx.Decks[deckIndex], nil
}

// ReadDeck decodes the deck at deckIndex.
//
// Creature slots pack 6*creature+attribute into a uint16; card slots store
// the id relative to the shared card-id base. 0xFFFF marks an empty slot.
func ReadDeck(b []byte, ctx *Context, deckIndex int) (Deck, error) {
	off, err := deckOffset(ctx, deckIndex)
	if err != nil {
		return Deck{}, err
	}
	if err := checkRange(b, off, layout.DeckSize); err != nil {
		return Deck{}, fmt.Errorf("deck %d: %w", deckIndex, err)
	}
	var d Deck
	for i := 0; i < layout.DeckSlotsPerGroup; i++ {
		v := buf.U16(b, off+layout.DeckCreatureGroupOffset+i*layout.DeckSlotSize, ctx.Order)
		if v != layout.EmptySlot {
			d.Creatures[i] = &CreatureRef{
				Creature:  int(v) / layout.AttributeCount,
				Attribute: int(v) % layout.AttributeCount,
			}
		}
		if v := buf.U16(b, off+layout.DeckGateGroupOffset+i*layout.DeckSlotSize, ctx.Order); v != layout.EmptySlot {
			id := int(v) + layout.CardIDBase
			d.GateCards[i] = &id
		}
		if v := buf.U16(b, off+layout.DeckAbilityGroupOffset+i*layout.DeckSlotSize, ctx.Order); v != layout.EmptySlot {
			id := int(v) + layout.CardIDBase
			d.AbilityCards[i] = &id
		}
	}
	return d, nil
}

// WriteDeck encodes d into the deck block at deckIndex. Empty slots write the
// 0xFFFF sentinel, and the six pad bytes after each slot group are filled
// with 0xFF unconditionally, overwriting whatever was stored there.
func WriteDeck(b []byte, ctx *Context, deckIndex int, d Deck) error {
	off, err := deckOffset(ctx, deckIndex)
	if err != nil {
		return err
	}
	if err := checkRange(b, off, layout.DeckSize); err != nil {
		return fmt.Errorf("deck %d: %w", deckIndex, err)
	}
	for i := 0; i < layout.DeckSlotsPerGroup; i++ {
		v := uint16(layout.EmptySlot)
		if c := d.Creatures[i]; c != nil {
			v = uint16(c.Creature*layout.AttributeCount + c.Attribute)
		}
		buf.PutU16(b, off+layout.DeckCreatureGroupOffset+i*layout.DeckSlotSize, v, ctx.Order)

		v = layout.EmptySlot
		if id := d.GateCards[i]; id != nil {
			v = uint16(*id - layout.CardIDBase)
		}
		buf.PutU16(b, off+layout.DeckGateGroupOffset+i*layout.DeckSlotSize, v, ctx.Order)

		v = layout.EmptySlot
		if id := d.AbilityCards[i]; id != nil {
			v = uint16(*id - layout.CardIDBase)
		}
		buf.PutU16(b, off+layout.DeckAbilityGroupOffset+i*layout.DeckSlotSize, v, ctx.Order)
	}
	for _, group := range []int{
		layout.DeckCreatureGroupOffset,
		layout.DeckGateGroupOffset,
		layout.DeckAbilityGroupOffset,
	} {
		pad := off + group + layout.DeckSlotsPerGroup*layout.DeckSlotSize
		for i := 0; i < layout.DeckGroupSize-layout.DeckSlotsPerGroup*layout.DeckSlotSize; i++ {
			b[pad+i] = layout.PadByte
		}
	}
	return nil
}
