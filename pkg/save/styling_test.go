package save

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brawlkit/brawlkit/internal/layout"
)

func TestStylingRoundTrip(t *testing.T) {
	b, ctx := newSaveBuf(t, layout.PS2, 0)
	require.NoError(t, WriteStyling(b, ctx, map[string]int{
		"hair": 4,
		"skin": 2,
	}))
	got, err := ReadStyling(b, ctx)
	require.NoError(t, err)
	require.Equal(t, uint8(4), got["hair"])
	require.Equal(t, uint8(2), got["skin"])
	require.Equal(t, uint8(0), got["face"])
}

func TestStylingUnspecifiedKeysUntouched(t *testing.T) {
	b, ctx := newSaveBuf(t, layout.PS2, 0)
	require.NoError(t, WriteStyling(b, ctx, map[string]int{"face": 1, "emblem": 3}))
	require.NoError(t, WriteStyling(b, ctx, map[string]int{"face": 9}))

	got, err := ReadStyling(b, ctx)
	require.NoError(t, err)
	require.Equal(t, uint8(9), got["face"])
	require.Equal(t, uint8(3), got["emblem"])
}

func TestStylingMasksTo8Bits(t *testing.T) {
	b, ctx := newSaveBuf(t, layout.PS2, 0)
	require.NoError(t, WriteStyling(b, ctx, map[string]int{"hair": 0x1FE}))
	got, err := ReadStyling(b, ctx)
	require.NoError(t, err)
	require.Equal(t, uint8(0xFE), got["hair"])
}

func TestStylingZeroesPadByte(t *testing.T) {
	b, ctx := newSaveBuf(t, layout.PS2, 0)
	off := ctx.Styling
	b[off+1] = 0xAA // stale pad after the "hair" byte
	require.NoError(t, WriteStyling(b, ctx, map[string]int{"hair": 1}))
	require.Equal(t, byte(0), b[off+1])
}

func TestStylingCustomDescriptors(t *testing.T) {
	ctx, err := ResolveIn(nil, []layout.StylingField{{Key: "badge", Offset: 44}}, layout.PS2, 0)
	require.NoError(t, err)
	b := make([]byte, ctx.Styling+layout.StylingSize)

	require.NoError(t, WriteStyling(b, ctx, map[string]int{"badge": 5}))
	got, err := ReadStyling(b, ctx)
	require.NoError(t, err)
	require.Equal(t, map[string]uint8{"badge": 5}, got)

	// Offset 44 is the last byte of the block; its pad byte falls outside
	// and must not be written.
	require.Equal(t, byte(5), b[ctx.Styling+44])
}

func TestStylingBounds(t *testing.T) {
	ctx, err := Resolve(layout.PS2, 0)
	require.NoError(t, err)
	short := make([]byte, ctx.Styling+10) // block extends past the buffer
	_, err = ReadStyling(short, ctx)
	require.ErrorIs(t, err, ErrOutOfRange)
	err = WriteStyling(short, ctx, map[string]int{"hair": 1})
	require.ErrorIs(t, err, ErrOutOfRange)
}
