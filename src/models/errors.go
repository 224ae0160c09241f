package models

import "fmt"

var (
	// ErrInvalidTicker is returned when the upstream provider explicitly
	// reports a symbol as unrecognized (unmatched quote or null
	// expirations). The message doubles as the user-facing error text.
	ErrInvalidTicker = fmt.Errorf("Invalid ticker")
)
