package layout

import "errors"

var (
	// ErrUnknownPlatform indicates a platform key absent from the table.
	ErrUnknownPlatform = errors.New("layout: unknown platform")
	// ErrBadOverride indicates an override document that cannot be applied.
	ErrBadOverride = errors.New("layout: invalid override")
)
