package save

import "fmt"

// ReadCardFlag reports whether the card with the given absolute id is
// unlocked. The flag byte lives at ctx.CardBase + cardID; on platforms with a
// negative card base the sum is range-checked before access, so an id that
// resolves below offset zero fails with ErrOutOfRange instead of wrapping.
func ReadCardFlag(b []byte, ctx *Context, cardID int) (bool, error) {
	off := ctx.CardBase + cardID
	if err := checkRange(b, off, 1); err != nil {
		return false, fmt.Errorf("card %d: %w", cardID, err)
	}
	return b[off] != 0, nil
}

// WriteCardFlag sets or clears the unlock flag for the card.
func WriteCardFlag(b []byte, ctx *Context, cardID int, unlocked bool) error {
	off := ctx.CardBase + cardID
	if err := checkRange(b, off, 1); err != nil {
		return fmt.Errorf("card %d: %w", cardID, err)
	}
	if unlocked {
		b[off] = 1
	} else {
		b[off] = 0
	}
	return nil
}
