package layout

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ProfileOverride is a partial correction for one platform. Only fields that
// appear in the document are applied; every field uses a pointer so that an
// explicit zero (or -1 for "unset") is distinguishable from absence.
type ProfileOverride struct {
	SaveSize     *int   `yaml:"save_size"`
	Base         *int   `yaml:"base"`
	CardBase     *int   `yaml:"card_base"`
	PlayerName   *int   `yaml:"player_name"`
	Styling      *int   `yaml:"styling"`
	Decks        *[]int `yaml:"decks"`
	DeckNameBack *int   `yaml:"deck_name_back"`

	Stats *StatsOverride `yaml:"stats"`
}

// StatsOverride corrects individual stats sub-offsets.
type StatsOverride struct {
	RankingPoints  *int `yaml:"ranking_points"`
	CreaturePoints *int `yaml:"creature_points"`
	Battles        *int `yaml:"battles"`
	Wins           *int `yaml:"wins"`
	Losses         *int `yaml:"losses"`
	SphereAttacks  *int `yaml:"sphere_attacks"`
	DoubleStands   *int `yaml:"double_stands"`
	ModeStory      *int `yaml:"mode_story"`
	ModeArcade     *int `yaml:"mode_arcade"`
	ModeSurvival   *int `yaml:"mode_survival"`
	OpponentWins   *int `yaml:"opponent_wins"`
	AttributeUsage *int `yaml:"attribute_usage"`
}

// Overrides is a parsed layout-correction document. Several of the built-in
// constants are provisional reverse-engineering results; shipping corrections
// as a document keeps them out of compiled code.
type Overrides struct {
	Profiles map[Platform]ProfileOverride `yaml:"profiles"`
	Styling  []StylingField               `yaml:"styling"`
}

// LoadOverrides parses a YAML override document.
func LoadOverrides(r io.Reader) (*Overrides, error) {
	var o Overrides
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&o); err != nil {
		return nil, fmt.Errorf("layout: parse overrides: %w", err)
	}
	for p := range o.Profiles {
		if _, ok := profiles[p]; !ok {
			return nil, fmt.Errorf("%w: profile %q", ErrUnknownPlatform, p)
		}
	}
	for _, f := range o.Styling {
		if f.Key == "" {
			return nil, fmt.Errorf("%w: styling field with empty key", ErrBadOverride)
		}
		if f.Offset < 0 || f.Offset >= StylingSize {
			return nil, fmt.Errorf("%w: styling field %q offset %d outside block",
				ErrBadOverride, f.Key, f.Offset)
		}
	}
	return &o, nil
}

// Apply patches a copy of the built-in table with the parsed corrections and
// returns it. The built-in table itself is never mutated.
func (o *Overrides) Apply() (map[Platform]Profile, error) {
	out := Profiles()
	if o == nil {
		return out, nil
	}
	for p, ov := range o.Profiles {
		prof := out[p]
		setInt(&prof.SaveSize, ov.SaveSize)
		setInt(&prof.Base, ov.Base)
		setInt(&prof.CardBase, ov.CardBase)
		setInt(&prof.PlayerName, ov.PlayerName)
		setInt(&prof.Styling, ov.Styling)
		setInt(&prof.DeckNameBack, ov.DeckNameBack)
		if ov.Decks != nil {
			if len(*ov.Decks) != DeckCount {
				return nil, fmt.Errorf("%w: %s decks needs exactly %d offsets",
					ErrBadOverride, p, DeckCount)
			}
			copy(prof.Decks[:], *ov.Decks)
		}
		if ov.Stats != nil {
			if prof.Stats == nil {
				prof.Stats = &StatsOffsets{
					RankingPoints: Unset, CreaturePoints: Unset,
					Battles: Unset, Wins: Unset, Losses: Unset,
					SphereAttacks: Unset, DoubleStands: Unset,
					ModeStory: Unset, ModeArcade: Unset, ModeSurvival: Unset,
					OpponentWins: Unset, AttributeUsage: Unset,
				}
			}
			s := ov.Stats
			setInt(&prof.Stats.RankingPoints, s.RankingPoints)
			setInt(&prof.Stats.CreaturePoints, s.CreaturePoints)
			setInt(&prof.Stats.Battles, s.Battles)
			setInt(&prof.Stats.Wins, s.Wins)
			setInt(&prof.Stats.Losses, s.Losses)
			setInt(&prof.Stats.SphereAttacks, s.SphereAttacks)
			setInt(&prof.Stats.DoubleStands, s.DoubleStands)
			setInt(&prof.Stats.ModeStory, s.ModeStory)
			setInt(&prof.Stats.ModeArcade, s.ModeArcade)
			setInt(&prof.Stats.ModeSurvival, s.ModeSurvival)
			setInt(&prof.Stats.OpponentWins, s.OpponentWins)
			setInt(&prof.Stats.AttributeUsage, s.AttributeUsage)
		}
		out[p] = prof
	}
	return out, nil
}

// StylingFields returns the override styling descriptors, or the defaults
// when the document carries none.
func (o *Overrides) StylingFields() []StylingField {
	if o == nil || len(o.Styling) == 0 {
		return DefaultStylingFields
	}
	return o.Styling
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}
