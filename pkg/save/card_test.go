package save

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brawlkit/brawlkit/internal/layout"
)

func TestCardFlagRoundTrip(t *testing.T) {
	b, ctx := newSaveBuf(t, layout.PS2, 0)
	id := layout.CardIDBase + 42

	unlocked, err := ReadCardFlag(b, ctx, id)
	require.NoError(t, err)
	require.False(t, unlocked)

	require.NoError(t, WriteCardFlag(b, ctx, id, true))
	unlocked, err = ReadCardFlag(b, ctx, id)
	require.NoError(t, err)
	require.True(t, unlocked)

	require.NoError(t, WriteCardFlag(b, ctx, id, false))
	unlocked, err = ReadCardFlag(b, ctx, id)
	require.NoError(t, err)
	require.False(t, unlocked)
}

func TestCardFlagNonzeroMeansUnlocked(t *testing.T) {
	b, ctx := newSaveBuf(t, layout.PS2, 0)
	id := layout.CardIDBase
	b[ctx.CardBase+id] = 0x7F

	unlocked, err := ReadCardFlag(b, ctx, id)
	require.NoError(t, err)
	require.True(t, unlocked)
}

func TestCardFlagNegativeResolvedOffset(t *testing.T) {
	// The Wii card base is negative; an id small enough to resolve below
	// offset zero must fail cleanly rather than wrap around.
	b, ctx := newSaveBuf(t, layout.Wii, 0)
	require.Negative(t, ctx.CardBase)

	_, err := ReadCardFlag(b, ctx, 0)
	require.ErrorIs(t, err, ErrOutOfRange)
	err = WriteCardFlag(b, ctx, 0, true)
	require.ErrorIs(t, err, ErrOutOfRange)

	// The real id range still resolves to a valid positive offset.
	require.NoError(t, WriteCardFlag(b, ctx, layout.CardIDBase, true))
	unlocked, err := ReadCardFlag(b, ctx, layout.CardIDBase)
	require.NoError(t, err)
	require.True(t, unlocked)
}

func TestCardFlagBeyondBuffer(t *testing.T) {
	b, ctx := newSaveBuf(t, layout.PS2, 0)
	_, err := ReadCardFlag(b, ctx, len(b))
	require.ErrorIs(t, err, ErrOutOfRange)
}
