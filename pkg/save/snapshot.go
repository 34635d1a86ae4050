package save

import (
	"fmt"

	"github.com/brawlkit/brawlkit/internal/layout"
)

// Snapshot is a whole-save decode of everything the platform supports.
// Features the platform does not store (deck names, stats) are omitted
// rather than reported as errors.
type Snapshot struct {
	Platform layout.Platform `json:"platform"`
	Slot     int             `json:"slot"`

	PlayerName string           `json:"player_name"`
	Styling    map[string]uint8 `json:"styling"`

	Creatures []CreatureEntry `json:"creatures"`
	// UnlockedCards lists the absolute ids of unlocked cards.
	UnlockedCards []int `json:"unlocked_cards"`

	Decks     [layout.DeckCount]Deck    `json:"decks"`
	DeckNames *[layout.DeckCount]string `json:"deck_names,omitempty"`
	Stats     *Stats                    `json:"stats,omitempty"`
}

// TakeSnapshot decodes the full save instance described by ctx.
func TakeSnapshot(b []byte, ctx *Context) (*Snapshot, error) {
	snap := &Snapshot{Platform: ctx.Platform, Slot: ctx.Slot}

	var err error
	if snap.PlayerName, err = ReadPlayerName(b, ctx); err != nil {
		return nil, err
	}
	if snap.Styling, err = ReadStyling(b, ctx); err != nil {
		return nil, err
	}

	snap.Creatures = make([]CreatureEntry, 0, layout.CreatureCount*layout.AttributeCount)
	for c := 0; c < layout.CreatureCount; c++ {
		for a := 0; a < layout.AttributeCount; a++ {
			e, err := ReadCreatureEntry(b, ctx, c, a)
			if err != nil {
				return nil, err
			}
			snap.Creatures = append(snap.Creatures, e)
		}
	}

	for id := layout.CardIDBase; id < layout.CardIDBase+layout.CardCount; id++ {
		unlocked, err := ReadCardFlag(b, ctx, id)
		if err != nil {
			return nil, err
		}
		if unlocked {
			snap.UnlockedCards = append(snap.UnlockedCards, id)
		}
	}

	for i := 0; i < layout.DeckCount; i++ {
		if snap.Decks[i], err = ReadDeck(b, ctx, i); err != nil {
			return nil, err
		}
	}
	if ctx.DeckNames != nil {
		var names [layout.DeckCount]string
		for i := 0; i < layout.DeckCount; i++ {
			if names[i], err = ReadDeckName(b, ctx, i); err != nil {
				return nil, err
			}
		}
		snap.DeckNames = &names
	}
	if ctx.Stats != nil {
		stats, err := ReadStats(b, ctx)
		if err != nil {
			return nil, fmt.Errorf("snapshot: %w", err)
		}
		snap.Stats = &stats
	}
	return snap, nil
}
