package move

import (
	"errors"

	"github.com/relokit/relokit/reloc/directory"
)

var (
	// ErrWorldBusy indicates the scheduler refused stop-the-world. Nothing
	// was mutated; the caller may retry.
	ErrWorldBusy = errors.New("move: could not stop the world")

	// ErrNotTracked indicates the source address has no directory entry.
	// Alias of the directory sentinel so callers can test either.
	ErrNotTracked = directory.ErrNotTracked

	// ErrEscapePatch indicates the escape patch pass failed.
	ErrEscapePatch = errors.New("move: escape patch failed")

	// ErrThreadPatch indicates at least one thread's register snapshot could
	// not be read or rewritten. Escape slots patched before the failure are
	// NOT rolled back.
	ErrThreadPatch = errors.New("move: thread register patch failed")

	// ErrCopy indicates the bulk byte copy failed.
	ErrCopy = errors.New("move: bulk copy failed")
)
