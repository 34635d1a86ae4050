package save

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brawlkit/brawlkit/internal/layout"
)

func TestSnapshotPS2(t *testing.T) {
	b, ctx := newSaveBuf(t, layout.PS2, 1)
	require.NoError(t, WritePlayerName(b, ctx, "MARU"))
	require.NoError(t, WriteStyling(b, ctx, map[string]int{"hair": 2}))
	require.NoError(t, WriteCreatureEntry(b, ctx, 4, 3, CreatureEntry{Power: 500, Level: 7}))
	require.NoError(t, WriteCardFlag(b, ctx, 10300, true))
	require.NoError(t, WriteDeck(b, ctx, 0, Deck{GateCards: [3]*int{intp(10300)}}))
	require.NoError(t, WriteDeckName(b, ctx, 0, "ALPHA"))
	require.NoError(t, WriteStats(b, ctx, Stats{Battles: 12}))

	snap, err := TakeSnapshot(b, ctx)
	require.NoError(t, err)
	require.Equal(t, "MARU", snap.PlayerName)
	require.Equal(t, uint8(2), snap.Styling["hair"])
	require.Len(t, snap.Creatures, layout.CreatureCount*layout.AttributeCount)
	require.Equal(t, []int{10300}, snap.UnlockedCards)
	require.NotNil(t, snap.Decks[0].GateCards[0])
	require.Equal(t, 10300, *snap.Decks[0].GateCards[0])
	require.NotNil(t, snap.DeckNames)
	require.Equal(t, "ALPHA", snap.DeckNames[0])
	require.NotNil(t, snap.Stats)
	require.Equal(t, 12, snap.Stats.Battles)

	entry := snap.Creatures[4*layout.AttributeCount+3]
	require.Equal(t, uint16(500), entry.Power)
	require.Equal(t, uint8(7), entry.Level)
}

func TestSnapshotOmitsUnsupportedFeatures(t *testing.T) {
	b, ctx := newSaveBuf(t, layout.Wii, 0)
	snap, err := TakeSnapshot(b, ctx)
	require.NoError(t, err)
	require.Nil(t, snap.Stats) // no stats block on Wii
	require.NotNil(t, snap.DeckNames)

	b, ctx = newSaveBuf(t, layout.PS3, 0)
	snap, err = TakeSnapshot(b, ctx)
	require.NoError(t, err)
	require.Nil(t, snap.DeckNames) // no deck names on PS3
	require.NotNil(t, snap.Stats)
}

func TestSnapshotPropagatesBoundsErrors(t *testing.T) {
	ctx, err := Resolve(layout.PS2, 0)
	require.NoError(t, err)
	_, err = TakeSnapshot(make([]byte, 16), ctx)
	require.ErrorIs(t, err, ErrOutOfRange)
}
