package layout

import (
	"errors"
	"testing"
)

func TestLookupKnownPlatforms(t *testing.T) {
	for _, p := range Platforms() {
		prof, err := Lookup(p)
		if err != nil {
			t.Fatalf("Lookup(%s): %v", p, err)
		}
		if prof.Base < 0 {
			t.Fatalf("%s: creature base must be non-negative, got %d", p, prof.Base)
		}
		if prof.Decks[1] != prof.Decks[0]+DeckSize {
			t.Fatalf("%s: decks are expected adjacent: %#x, %#x", p, prof.Decks[0], prof.Decks[1])
		}
	}
}

func TestLookupUnknownPlatform(t *testing.T) {
	_, err := Lookup("dreamcast")
	if !errors.Is(err, ErrUnknownPlatform) {
		t.Fatalf("Lookup(dreamcast) = %v, want ErrUnknownPlatform", err)
	}
}

func TestSingleSavePlatform(t *testing.T) {
	prof, err := Lookup(PS3)
	if err != nil {
		t.Fatalf("Lookup(ps3): %v", err)
	}
	if prof.MultiSlot() {
		t.Fatalf("ps3 must be a single-save platform")
	}
	if prof.HasDeckNames() {
		t.Fatalf("ps3 must not advertise deck names")
	}
}

func TestNegativeCardBase(t *testing.T) {
	prof, err := Lookup(Wii)
	if err != nil {
		t.Fatalf("Lookup(wii): %v", err)
	}
	if prof.CardBase >= 0 {
		t.Fatalf("wii card base expected negative, got %#x", prof.CardBase)
	}
	// The first card id must still land at a valid positive file offset.
	if prof.CardBase+CardIDBase < 0 {
		t.Fatalf("wii flag region start resolves negative: %d", prof.CardBase+CardIDBase)
	}
}

func TestProfilesReturnsDeepCopy(t *testing.T) {
	a := Profiles()
	a[PS2].Stats.Battles = 0x9999
	b := Profiles()
	if b[PS2].Stats.Battles == 0x9999 {
		t.Fatalf("Profiles must deep-copy the stats block")
	}
}

func TestDefaultStylingFieldsInsideBlock(t *testing.T) {
	seen := map[string]bool{}
	for _, f := range DefaultStylingFields {
		if f.Offset < 0 || f.Offset >= StylingSize {
			t.Fatalf("styling field %q offset %d outside block", f.Key, f.Offset)
		}
		if seen[f.Key] {
			t.Fatalf("duplicate styling key %q", f.Key)
		}
		seen[f.Key] = true
	}
}
