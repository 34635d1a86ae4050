package save

import (
	"fmt"

	"golang.org/x/text/encoding/unicode"

	"github.com/brawlkit/brawlkit/internal/layout"
)

// Name regions store UCS-2 text restricted to printable ASCII: one character
// byte followed by one zero byte per position, regardless of the platform's
// word order. Reads stop at the first zero character byte.

// ReadPlayerName decodes the player name (up to 8 characters).
func ReadPlayerName(b []byte, ctx *Context) (string, error) {
	name, err := readNameAt(b, ctx.PlayerName, layout.PlayerNameChars)
	if err != nil {
		return "", fmt.Errorf("player name: %w", err)
	}
	return name, nil
}

// WritePlayerName encodes name into the player-name region. The input is
// truncated to 8 characters; characters outside [0x20, 0x7E] are replaced
// with '?'. Positions past the end of the name are zero-filled, which also
// acts as the terminator.
func WritePlayerName(b []byte, ctx *Context, name string) error {
	if err := writeNameAt(b, ctx.PlayerName, layout.PlayerNameChars, name); err != nil {
		return fmt.Errorf("player name: %w", err)
	}
	return nil
}

// ReadDeckName decodes the name of the deck at deckIndex (up to 10
// characters). Platforms without deck name regions fail with
// ErrDeckNameUnsupported.
func ReadDeckName(b []byte, ctx *Context, deckIndex int) (string, error) {
	off, err := deckNameOffset(ctx, deckIndex)
	if err != nil {
		return "", err
	}
	name, err := readNameAt(b, off, layout.DeckNameChars)
	if err != nil {
		return "", fmt.Errorf("deck %d name: %w", deckIndex, err)
	}
	return name, nil
}

// WriteDeckName encodes name into the deck-name region, with the same
// truncation and substitution rules as WritePlayerName but 10 characters.
func WriteDeckName(b []byte, ctx *Context, deckIndex int, name string) error {
	off, err := deckNameOffset(ctx, deckIndex)
	if err != nil {
		return err
	}
	if err := writeNameAt(b, off, layout.DeckNameChars, name); err != nil {
		return fmt.Errorf("deck %d name: %w", deckIndex, err)
	}
	return nil
}

func deckNameOffset(ctx *Context, deckIndex int) (int, error) {
	if deckIndex < 0 || deckIndex >= layout.DeckCount {
		return 0, fmt.Errorf("%w: %d", ErrInvalidDeckIndex, deckIndex)
	}
	if ctx.DeckNames == nil {
		return 0, fmt.Errorf("%w (%s)", ErrDeckNameUnsupported, ctx.Platform)
	}
	return ctx.DeckNames[deckIndex], nil
}

// readNameAt collects the character byte of each 2-byte stride, stopping at
// the first zero byte.
func readNameAt(b []byte, off, maxChars int) (string, error) {
	if err := checkRange(b, off, maxChars*layout.NameStride); err != nil {
		return "", err
	}
	chars := make([]byte, 0, maxChars)
	for i := 0; i < maxChars; i++ {
		c := b[off+i*layout.NameStride]
		if c == 0 {
			break
		}
		chars = append(chars, c)
	}
	return string(chars), nil
}

// writeNameAt sanitizes name to printable ASCII, encodes it as UTF-16LE
// (which for ASCII is exactly the char + zero-pad stride the format uses),
// and zero-fills the remainder of the region.
func writeNameAt(b []byte, off, maxChars int, name string) error {
	if err := checkRange(b, off, maxChars*layout.NameStride); err != nil {
		return err
	}
	sanitized := make([]byte, 0, maxChars)
	for _, r := range name {
		if len(sanitized) == maxChars {
			break
		}
		if r < 0x20 || r > 0x7E {
			r = '?'
		}
		sanitized = append(sanitized, byte(r))
	}
	enc := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()
	encoded, err := enc.Bytes(sanitized)
	if err != nil {
		return fmt.Errorf("encode name: %w", err)
	}
	n := copy(b[off:], encoded)
	for ; n < maxChars*layout.NameStride; n++ {
		b[off+n] = 0
	}
	return nil
}
