package save

import (
	"fmt"

	"github.com/brawlkit/brawlkit/internal/buf"
	"github.com/brawlkit/brawlkit/internal/layout"
)

// Stats is the decoded battle-statistics block. The two point counters are
// 24-bit on disk; everything else is a single byte per value. OpponentWins
// and AttributeUsage are nil when the platform does not configure their base
// offsets.
type Stats struct {
	RankingPoints  int `json:"ranking_points"`
	CreaturePoints int `json:"creature_points"`

	Battles       int `json:"battles"`
	Wins          int `json:"wins"`
	Losses        int `json:"losses"`
	SphereAttacks int `json:"sphere_attacks"`
	DoubleStands  int `json:"double_stands"`
	ModeStory     int `json:"mode_story"`
	ModeArcade    int `json:"mode_arcade"`
	ModeSurvival  int `json:"mode_survival"`

	OpponentWins   []int `json:"opponent_wins,omitempty"`
	AttributeUsage []int `json:"attribute_usage,omitempty"`
}

// ReadStats decodes the statistics block. Platforms without one fail with
// ErrStatsUnsupported. Counters whose position is not configured read as 0;
// the optional arrays are decoded only when their base offsets are
// configured.
func ReadStats(b []byte, ctx *Context) (Stats, error) {
	so := ctx.Stats
	if so == nil {
		return Stats{}, fmt.Errorf("%w (%s)", ErrStatsUnsupported, ctx.Platform)
	}
	var s Stats
	var err error
	if s.RankingPoints, err = readU24At(b, so.RankingPoints, ctx.Order); err != nil {
		return Stats{}, fmt.Errorf("ranking points: %w", err)
	}
	if s.CreaturePoints, err = readU24At(b, so.CreaturePoints, ctx.Order); err != nil {
		return Stats{}, fmt.Errorf("creature points: %w", err)
	}
	counters := []struct {
		name string
		off  int
		dst  *int
	}{
		{"battles", so.Battles, &s.Battles},
		{"wins", so.Wins, &s.Wins},
		{"losses", so.Losses, &s.Losses},
		{"sphere attacks", so.SphereAttacks, &s.SphereAttacks},
		{"double stands", so.DoubleStands, &s.DoubleStands},
		{"mode story", so.ModeStory, &s.ModeStory},
		{"mode arcade", so.ModeArcade, &s.ModeArcade},
		{"mode survival", so.ModeSurvival, &s.ModeSurvival},
	}
	for _, c := range counters {
		if c.off == layout.Unset {
			continue
		}
		if err := checkRange(b, c.off, 1); err != nil {
			return Stats{}, fmt.Errorf("%s: %w", c.name, err)
		}
		*c.dst = int(b[c.off])
	}
	if so.OpponentWins != layout.Unset {
		if err := checkRange(b, so.OpponentWins, layout.OpponentCount); err != nil {
			return Stats{}, fmt.Errorf("opponent wins: %w", err)
		}
		s.OpponentWins = make([]int, layout.OpponentCount)
		for i := range s.OpponentWins {
			s.OpponentWins[i] = int(b[so.OpponentWins+i])
		}
	}
	if so.AttributeUsage != layout.Unset {
		if err := checkRange(b, so.AttributeUsage, layout.AttributeCount*2); err != nil {
			return Stats{}, fmt.Errorf("attribute usage: %w", err)
		}
		s.AttributeUsage = make([]int, layout.AttributeCount)
		for i := range s.AttributeUsage {
			s.AttributeUsage[i] = int(b[so.AttributeUsage+i*2])
		}
	}
	return s, nil
}

// WriteStats encodes s. Byte-sized counters are clamped to [0, 255], the
// 24-bit point counters are masked to 24 bits. All target ranges are
// validated before the first byte is stored, so a bounds failure leaves the
// buffer untouched.
func WriteStats(b []byte, ctx *Context, s Stats) error {
	so := ctx.Stats
	if so == nil {
		return fmt.Errorf("%w (%s)", ErrStatsUnsupported, ctx.Platform)
	}

	type target struct {
		name string
		off  int
		n    int
	}
	targets := []target{
		{"ranking points", so.RankingPoints, 3},
		{"creature points", so.CreaturePoints, 3},
		{"battles", so.Battles, 1},
		{"wins", so.Wins, 1},
		{"losses", so.Losses, 1},
		{"sphere attacks", so.SphereAttacks, 1},
		{"double stands", so.DoubleStands, 1},
		{"mode story", so.ModeStory, 1},
		{"mode arcade", so.ModeArcade, 1},
		{"mode survival", so.ModeSurvival, 1},
		{"opponent wins", so.OpponentWins, layout.OpponentCount},
		{"attribute usage", so.AttributeUsage, layout.AttributeCount * 2},
	}
	for _, t := range targets {
		if t.off == layout.Unset {
			continue
		}
		if err := checkRange(b, t.off, t.n); err != nil {
			return fmt.Errorf("%s: %w", t.name, err)
		}
	}

	if so.RankingPoints != layout.Unset {
		buf.PutU24(b, so.RankingPoints, uint32(s.RankingPoints), ctx.Order)
	}
	if so.CreaturePoints != layout.Unset {
		buf.PutU24(b, so.CreaturePoints, uint32(s.CreaturePoints), ctx.Order)
	}
	counters := []struct {
		off int
		v   int
	}{
		{so.Battles, s.Battles},
		{so.Wins, s.Wins},
		{so.Losses, s.Losses},
		{so.SphereAttacks, s.SphereAttacks},
		{so.DoubleStands, s.DoubleStands},
		{so.ModeStory, s.ModeStory},
		{so.ModeArcade, s.ModeArcade},
		{so.ModeSurvival, s.ModeSurvival},
	}
	for _, c := range counters {
		if c.off != layout.Unset {
			b[c.off] = clampByte(c.v)
		}
	}
	if so.OpponentWins != layout.Unset {
		for i := 0; i < layout.OpponentCount; i++ {
			v := 0
			if i < len(s.OpponentWins) {
				v = s.OpponentWins[i]
			}
			b[so.OpponentWins+i] = clampByte(v)
		}
	}
	if so.AttributeUsage != layout.Unset {
		for i := 0; i < layout.AttributeCount; i++ {
			v := 0
			if i < len(s.AttributeUsage) {
				v = s.AttributeUsage[i]
			}
			b[so.AttributeUsage+i*2] = clampByte(v)
			b[so.AttributeUsage+i*2+1] = 0
		}
	}
	return nil
}

func readU24At(b []byte, off int, o buf.Order) (int, error) {
	if off == layout.Unset {
		return 0, nil
	}
	if err := checkRange(b, off, 3); err != nil {
		return 0, err
	}
	return int(buf.U24(b, off, o)), nil
}

// clampByte clamps to [0, 255]; negatives clamp to 0.
func clampByte(v int) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}
