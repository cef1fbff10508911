// Package clipboard wraps the system clipboard for the yank action.
package clipboard

import "github.com/atotto/clipboard"

// Copy places s on the system clipboard. Failures are non-fatal; callers
// should surface err to the status bar rather than treat it as fatal.
func Copy(s string) error {
	return clipboard.WriteAll(s)
}
