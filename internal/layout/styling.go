package layout

// StylingField names one byte inside the avatar styling block. Each field
// occupies one value byte; the byte after it is pad and is zeroed on write
// while it stays inside the block.
type StylingField struct {
	Key    string
	Offset int // relative to the styling block start
}

// DefaultStylingFields is the descriptor list shared by all platforms. The
// keys follow the in-game customization menu order.
var DefaultStylingFields = []StylingField{
	{Key: "hair", Offset: 0x00},
	{Key: "hair-color", Offset: 0x02},
	{Key: "face", Offset: 0x04},
	{Key: "eyes", Offset: 0x06},
	{Key: "eye-color", Offset: 0x08},
	{Key: "skin", Offset: 0x0A},
	{Key: "top", Offset: 0x0C},
	{Key: "top-color", Offset: 0x0E},
	{Key: "bottoms", Offset: 0x10},
	{Key: "shoes", Offset: 0x12},
	{Key: "accessory", Offset: 0x14},
	{Key: "emblem", Offset: 0x16},
}
