// Package controller renders search results and diagnostics.
package controller

import "context"

// UI defines how matched lines and failures reach the user.
// Implementations decide where the output goes.
type UI interface {
	// DisplayMatches writes each line followed by a newline, in order.
	DisplayMatches(ctx context.Context, lines []string) error
	// DisplayError writes a single diagnostic line describing err.
	DisplayError(ctx context.Context, err error)
}
