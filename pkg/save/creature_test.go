package save

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brawlkit/brawlkit/internal/layout"
)

func TestCreatureRoundTrip(t *testing.T) {
	for _, p := range layout.Platforms() {
		b, ctx := newSaveBuf(t, p, 1)
		in := CreatureEntry{
			Power:        0x0304,
			Speed:        11,
			Defense:      22,
			Acceleration: 33,
			Endurance:    44,
			Jump:         55,
			Level:        9,
		}
		require.NoError(t, WriteCreatureEntry(b, ctx, 7, 2, in))

		out, err := ReadCreatureEntry(b, ctx, 7, 2)
		require.NoError(t, err)
		require.Equal(t, uint8(7), out.ID, p)
		require.Equal(t, uint8(2), out.Attribute, p)
		require.Equal(t, in.Power, out.Power, p)
		require.Equal(t, in.Speed, out.Speed, p)
		require.Equal(t, in.Level, out.Level, p)
	}
}

func TestCreatureWriteUsesLookupKeys(t *testing.T) {
	b, ctx := newSaveBuf(t, layout.PS2, 0)
	// Payload carries a conflicting id/attribute pair; the address keys win.
	in := CreatureEntry{ID: 99, Attribute: 5, Power: 1}
	require.NoError(t, WriteCreatureEntry(b, ctx, 3, 1, in))

	out, err := ReadCreatureEntry(b, ctx, 3, 1)
	require.NoError(t, err)
	require.Equal(t, uint8(3), out.ID)
	require.Equal(t, uint8(1), out.Attribute)
}

func TestCreaturePowerEndianness(t *testing.T) {
	b, ctx := newSaveBuf(t, layout.PS2, 0) // little endian platform
	require.NoError(t, WriteCreatureEntry(b, ctx, 0, 0, CreatureEntry{Power: 0x0102}))
	off := ctx.Base + layout.CreaturePowerOffset
	require.Equal(t, byte(0x02), b[off])
	require.Equal(t, byte(0x01), b[off+1])

	b, ctx = newSaveBuf(t, layout.Wii, 0) // big endian platform
	require.NoError(t, WriteCreatureEntry(b, ctx, 0, 0, CreatureEntry{Power: 0x0102}))
	off = ctx.Base + layout.CreaturePowerOffset
	require.Equal(t, byte(0x01), b[off])
	require.Equal(t, byte(0x02), b[off+1])
}

func TestCreatureWriteZeroesReservedTail(t *testing.T) {
	b, ctx := newSaveBuf(t, layout.PS2, 0)
	off := ctx.Base // record for (0, 0)
	for i := 0; i < layout.CreatureRecordSize; i++ {
		b[off+i] = 0xAA
	}
	require.NoError(t, WriteCreatureEntry(b, ctx, 0, 0, CreatureEntry{}))
	for i := layout.CreatureLevelOffset + 1; i < layout.CreatureRecordSize; i++ {
		require.Equal(t, byte(0), b[off+i], "reserved byte %d", i)
	}
}

func TestCreatureIDValidation(t *testing.T) {
	b, ctx := newSaveBuf(t, layout.PS2, 0)
	_, err := ReadCreatureEntry(b, ctx, layout.CreatureCount, 0)
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = ReadCreatureEntry(b, ctx, 0, layout.AttributeCount)
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = ReadCreatureEntry(b, ctx, -1, 0)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestCreatureBoundsLeaveBufferUntouched(t *testing.T) {
	ctx, err := Resolve(layout.PS2, 3)
	require.NoError(t, err)
	short := make([]byte, 64) // far too small for slot 3 offsets
	snapshot := bytes.Clone(short)

	err = WriteCreatureEntry(short, ctx, 0, 0, CreatureEntry{Power: 7})
	require.ErrorIs(t, err, ErrOutOfRange)
	require.Equal(t, snapshot, short)
}
