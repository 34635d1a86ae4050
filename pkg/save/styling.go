package save

import (
	"fmt"

	"github.com/brawlkit/brawlkit/internal/layout"
)

// ReadStyling decodes the avatar styling block into a key → byte map driven
// by the context's field descriptor list. The whole 45-byte block is
// bounds-checked up front.
func ReadStyling(b []byte, ctx *Context) (map[string]uint8, error) {
	if err := checkRange(b, ctx.Styling, layout.StylingSize); err != nil {
		return nil, fmt.Errorf("styling: %w", err)
	}
	out := make(map[string]uint8, len(ctx.StylingFields))
	for _, f := range ctx.StylingFields {
		out[f.Key] = b[ctx.Styling+f.Offset]
	}
	return out, nil
}

// WriteStyling stores the supplied values. For each descriptor whose key
// appears in values, the value byte is written (masked to 8 bits) and the
// following pad byte is zeroed when it still falls inside the block. Keys
// absent from values leave their bytes untouched.
func WriteStyling(b []byte, ctx *Context, values map[string]int) error {
	if err := checkRange(b, ctx.Styling, layout.StylingSize); err != nil {
		return fmt.Errorf("styling: %w", err)
	}
	for _, f := range ctx.StylingFields {
		v, ok := values[f.Key]
		if !ok {
			continue
		}
		b[ctx.Styling+f.Offset] = byte(v & 0xFF)
		if f.Offset+1 < layout.StylingSize {
			b[ctx.Styling+f.Offset+1] = 0
		}
	}
	return nil
}
