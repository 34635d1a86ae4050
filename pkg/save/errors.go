package save

import (
	"errors"
	"fmt"

	"github.com/brawlkit/brawlkit/internal/buf"
	"github.com/brawlkit/brawlkit/internal/layout"
)

var (
	// ErrUnknownPlatform indicates a platform key absent from the layout table.
	ErrUnknownPlatform = layout.ErrUnknownPlatform
	// ErrOutOfRange indicates a computed offset or length that exceeds the buffer.
	ErrOutOfRange = errors.New("save: offset out of range")
	// ErrInvalidDeckIndex indicates a deck index outside the per-save deck table.
	ErrInvalidDeckIndex = errors.New("save: invalid deck index")
	// ErrDeckNameUnsupported indicates the platform stores no deck name regions.
	ErrDeckNameUnsupported = errors.New("save: deck names not supported on this platform")
	// ErrStatsUnsupported indicates the platform stores no battle-statistics block.
	ErrStatsUnsupported = errors.New("save: stats block not supported on this platform")
)

// checkRange enforces the buffer invariant: off must be non-negative and
// off+n must not exceed len(b). Signed arithmetic matters here because
// resolved card-flag offsets can go negative on some platforms.
func checkRange(b []byte, off, n int) error {
	if buf.Has(b, off, n) {
		return nil
	}
	return fmt.Errorf("%w: need %d bytes at %d, buffer is %d", ErrOutOfRange, n, off, len(b))
}
