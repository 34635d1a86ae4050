package save

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brawlkit/brawlkit/internal/layout"
)

func TestPlayerNameRoundTrip(t *testing.T) {
	for _, p := range layout.Platforms() {
		b, ctx := newSaveBuf(t, p, 0)
		require.NoError(t, WritePlayerName(b, ctx, "DAN"))
		name, err := ReadPlayerName(b, ctx)
		require.NoError(t, err)
		require.Equal(t, "DAN", name, p)
	}
}

func TestPlayerNameStrideLayout(t *testing.T) {
	b, ctx := newSaveBuf(t, layout.PS2, 0)
	require.NoError(t, WritePlayerName(b, ctx, "AB"))
	off := ctx.PlayerName
	require.Equal(t, []byte{'A', 0, 'B', 0, 0, 0}, b[off:off+6])
}

func TestPlayerNameTruncation(t *testing.T) {
	b, ctx := newSaveBuf(t, layout.PS2, 0)
	require.NoError(t, WritePlayerName(b, ctx, "ABCDEFGHIJ"))
	name, err := ReadPlayerName(b, ctx)
	require.NoError(t, err)
	require.Equal(t, "ABCDEFGH", name)
}

func TestPlayerNameSubstitution(t *testing.T) {
	b, ctx := newSaveBuf(t, layout.PS2, 0)
	require.NoError(t, WritePlayerName(b, ctx, "A\x01C"))
	name, err := ReadPlayerName(b, ctx)
	require.NoError(t, err)
	require.Equal(t, "A?C", name)
}

func TestPlayerNameShorterOverwrite(t *testing.T) {
	b, ctx := newSaveBuf(t, layout.PS2, 0)
	require.NoError(t, WritePlayerName(b, ctx, "LONGNAME"))
	require.NoError(t, WritePlayerName(b, ctx, "JO"))
	name, err := ReadPlayerName(b, ctx)
	require.NoError(t, err)
	require.Equal(t, "JO", name)
}

func TestDeckNameRoundTrip(t *testing.T) {
	b, ctx := newSaveBuf(t, layout.PS2, 2)
	require.NoError(t, WriteDeckName(b, ctx, 1, "STRIKETEAM"))
	name, err := ReadDeckName(b, ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "STRIKETEAM", name)

	// Ten characters max.
	require.NoError(t, WriteDeckName(b, ctx, 0, "ABCDEFGHIJK"))
	name, err = ReadDeckName(b, ctx, 0)
	require.NoError(t, err)
	require.Equal(t, "ABCDEFGHIJ", name)
}

func TestDeckNameUnsupportedPlatform(t *testing.T) {
	b, ctx := newSaveBuf(t, layout.PS3, 0)
	_, err := ReadDeckName(b, ctx, 0)
	require.ErrorIs(t, err, ErrDeckNameUnsupported)
	require.NotErrorIs(t, err, ErrOutOfRange)

	err = WriteDeckName(b, ctx, 0, "X")
	require.ErrorIs(t, err, ErrDeckNameUnsupported)
}

func TestDeckNameInvalidIndex(t *testing.T) {
	b, ctx := newSaveBuf(t, layout.PS2, 0)
	_, err := ReadDeckName(b, ctx, 2)
	require.ErrorIs(t, err, ErrInvalidDeckIndex)
	_, err = ReadDeckName(b, ctx, -1)
	require.ErrorIs(t, err, ErrInvalidDeckIndex)
}
