// Package save implements the codec for the game's fixed-layout binary
// saves across the PS2, PS3, Wii, and Xbox 360 builds.
//
// # Overview
//
// Every entity in a save (creature records, card unlock flags, player name,
// avatar styling, decks, deck names, battle statistics) lives at a statically
// known offset for a given platform and save slot. A Context resolves those
// offsets once per (platform, slot) pair; the field codecs then perform
// bounds-checked, bit-exact reads and writes directly against a caller-owned
// byte buffer.
//
// # Usage
//
//	ctx, err := save.Resolve(layout.PS2, 1)
//	if err != nil { ... }
//	name, err := save.ReadPlayerName(buf, ctx)
//	deck, err := save.ReadDeck(buf, ctx, 0)
//
// The package performs no I/O and never retains the buffer across calls.
// Callers own the buffer for the duration of an edit session; concurrent
// codec calls against the same buffer need external synchronization.
//
// Failed writes never partially mutate the buffer: every codec validates all
// target ranges before the first store.
package save
