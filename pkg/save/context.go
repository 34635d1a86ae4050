package save

import (
	"github.com/brawlkit/brawlkit/internal/buf"
	"github.com/brawlkit/brawlkit/internal/layout"
)

// Context is the resolved, absolute-offset view of the save layout for one
// (platform, slot) pair. It is immutable once built and may be cached and
// reused across any number of codec calls.
type Context struct {
	Platform layout.Platform
	Slot     int // after clamping
	Order    buf.Order

	// Absolute offsets, already shifted for the slot.
	Base       int
	CardBase   int
	PlayerName int
	Styling    int
	Decks      [layout.DeckCount]int

	// DeckNames is nil on platforms without deck name regions.
	DeckNames *[layout.DeckCount]int

	// Stats is nil on platforms without a statistics block. Configured
	// sub-offsets are absolute; Unset sub-offsets stay Unset.
	Stats *layout.StatsOffsets

	// StylingFields is the descriptor list driving the styling codec.
	StylingFields []layout.StylingField
}

// Resolve builds a Context from the built-in layout table.
//
// Slot handling follows the platform: single-save platforms force slot 0,
// multi-save platforms clamp the index into [0, 3]. Resolution is pure and
// deterministic for identical inputs.
func Resolve(platform layout.Platform, slot int) (*Context, error) {
	return ResolveIn(nil, nil, platform, slot)
}

// ResolveIn builds a Context from a caller-supplied profile table and styling
// descriptor list, typically the output of layout.LoadOverrides. A nil table
// or nil field list falls back to the built-in defaults.
func ResolveIn(profiles map[layout.Platform]layout.Profile, fields []layout.StylingField,
	platform layout.Platform, slot int) (*Context, error) {

	var prof layout.Profile
	if profiles == nil {
		var err error
		prof, err = layout.Lookup(platform)
		if err != nil {
			return nil, err
		}
	} else {
		var ok bool
		prof, ok = profiles[platform]
		if !ok {
			return nil, layout.ErrUnknownPlatform
		}
	}
	if fields == nil {
		fields = layout.DefaultStylingFields
	}

	if !prof.MultiSlot() {
		slot = 0
	} else if slot < 0 {
		slot = 0
	} else if slot > layout.SlotMax {
		slot = layout.SlotMax
	}
	shift := prof.SaveSize * slot

	ctx := &Context{
		Platform:      platform,
		Slot:          slot,
		Order:         prof.Order,
		Base:          prof.Base + shift,
		CardBase:      prof.CardBase + shift,
		PlayerName:    prof.PlayerName + shift,
		Styling:       prof.Styling + shift,
		StylingFields: fields,
	}
	for i, d := range prof.Decks {
		ctx.Decks[i] = d + shift
	}
	if prof.HasDeckNames() {
		var names [layout.DeckCount]int
		for i, d := range ctx.Decks {
			names[i] = d - prof.DeckNameBack
		}
		ctx.DeckNames = &names
	}
	if prof.Stats != nil {
		s := *prof.Stats
		shiftOffset(&s.RankingPoints, shift)
		shiftOffset(&s.CreaturePoints, shift)
		shiftOffset(&s.Battles, shift)
		shiftOffset(&s.Wins, shift)
		shiftOffset(&s.Losses, shift)
		shiftOffset(&s.SphereAttacks, shift)
		shiftOffset(&s.DoubleStands, shift)
		shiftOffset(&s.ModeStory, shift)
		shiftOffset(&s.ModeArcade, shift)
		shiftOffset(&s.ModeSurvival, shift)
		shiftOffset(&s.OpponentWins, shift)
		shiftOffset(&s.AttributeUsage, shift)
		ctx.Stats = &s
	}
	return ctx, nil
}

// shiftOffset adds the slot shift to a configured offset, leaving Unset alone.
func shiftOffset(off *int, shift int) {
	if *off != layout.Unset {
		*off += shift
	}
}
