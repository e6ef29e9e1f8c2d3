package relokit

import (
	"github.com/relokit/relokit/pkg/types"
	"github.com/relokit/relokit/reloc/move"
)

// Re-export commonly used types so users only need to import pkg/relokit.

// Core types.
type (
	Addr       = types.Addr
	Memory     = types.Memory
	MoveReport = types.MoveReport
	Policy     = types.Policy
)

// DefaultPolicy returns the policy applied when Options.Policy is nil.
var DefaultPolicy = types.DefaultPolicy

// Error kinds, re-exported for errors.Is checks at the facade.
var (
	ErrWorldBusy   = move.ErrWorldBusy
	ErrNotTracked  = move.ErrNotTracked
	ErrEscapePatch = move.ErrEscapePatch
	ErrThreadPatch = move.ErrThreadPatch
)
