package layout

import (
	"fmt"

	"github.com/brawlkit/brawlkit/internal/buf"
)

// profiles is the built-in layout table. PS2 offsets were confirmed against
// retail memory-card saves. PS3 offsets were confirmed against a decrypted
// save directory. Most Wii and Xbox 360 offsets were derived from partial
// dumps and are NOT confirmed against real hardware saves; they stay here as
// data so a correction (or a LoadOverrides document) never touches codec
// logic.
var profiles = map[Platform]Profile{
	PS2: {
		SaveSize:     0x20000,
		Base:         0x22C0,
		CardBase:     0x980, // flags at 0x3178 for card 10232
		PlayerName:   0x2160,
		Styling:      0x2180,
		Decks:        [DeckCount]int{0x21C0, 0x21E4},
		DeckNameBack: 0x120,
		Order:        buf.Little,
		Stats: &StatsOffsets{
			RankingPoints:  0x3400,
			CreaturePoints: 0x3403,
			Battles:        0x3406,
			Wins:           0x3407,
			Losses:         0x3408,
			SphereAttacks:  0x3409,
			DoubleStands:   0x340A,
			ModeStory:      0x340B,
			ModeArcade:     0x340C,
			ModeSurvival:   0x340D,
			OpponentWins:   0x3410,
			AttributeUsage: 0x3420,
		},
	},
	PS3: {
		SaveSize:     0, // one save per file, the container directory multiplexes
		Base:         0x8A0,
		CardBase:     0x208, // flags at 0x2A00
		PlayerName:   0x740,
		Styling:      0x760,
		Decks:        [DeckCount]int{0x7A0, 0x7C4},
		DeckNameBack: Unset, // the PS3 build never exposes deck naming
		Order:        buf.Big,
		Stats: &StatsOffsets{
			RankingPoints:  0x2C80,
			CreaturePoints: 0x2C83,
			Battles:        0x2C86,
			Wins:           0x2C87,
			Losses:         0x2C88,
			SphereAttacks:  0x2C89,
			DoubleStands:   0x2C8A,
			ModeStory:      0x2C8B,
			ModeArcade:     0x2C8C,
			ModeSurvival:   0x2C8D,
			OpponentWins:   0x2C90,
			AttributeUsage: 0x2CA0,
		},
	},
	Wii: {
		SaveSize:   0x6000,
		Base:       0x20,
		CardBase:   -0x17F8, // PROVISIONAL: flag region assumed at 0x1000
		PlayerName: 0xF00,
		Styling:    0xF20,
		Decks:      [DeckCount]int{0xF60, 0xF84},
		// ASSUMED back-offset; deck-name support on Wii is best effort.
		DeckNameBack: 0xE0,
		Order:        buf.Big,
		Stats:        nil, // no stats block found in Wii dumps
	},
	X360: {
		SaveSize:   0x8000,
		Base:       0x1010,
		CardBase:   0x218, // flags at 0x2A10
		PlayerName: 0xE50,
		Styling:    0xE70,
		Decks:      [DeckCount]int{0xEA0, 0xEC4},
		// ASSUMED back-offset; deck-name support on X360 is best effort.
		DeckNameBack: 0x140,
		Order:        buf.Big,
		Stats: &StatsOffsets{
			RankingPoints:  0x2C40,
			CreaturePoints: 0x2C43,
			Battles:        0x2C46,
			Wins:           0x2C47,
			Losses:         0x2C48,
			SphereAttacks:  Unset, // position unknown on X360
			DoubleStands:   0x2C4A,
			ModeStory:      0x2C4B,
			ModeArcade:     0x2C4C,
			ModeSurvival:   0x2C4D,
			OpponentWins:   0x2C50,
			AttributeUsage: Unset, // not located in X360 dumps
		},
	},
}

// Lookup returns the built-in profile for the platform.
func Lookup(p Platform) (Profile, error) {
	prof, ok := profiles[p]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownPlatform, p)
	}
	return prof, nil
}

// Profiles returns a copy of the built-in profile table, suitable as the
// starting point for override patching.
func Profiles() map[Platform]Profile {
	out := make(map[Platform]Profile, len(profiles))
	for k, v := range profiles {
		if v.Stats != nil {
			s := *v.Stats
			v.Stats = &s
		}
		out[k] = v
	}
	return out
}

// Platforms lists the known platform identifiers in stable order.
func Platforms() []Platform {
	return []Platform{PS2, PS3, Wii, X360}
}
