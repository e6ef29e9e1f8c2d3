// Package move sequences one relocation: stop the world, look up the
// allocation, patch escapes, patch thread registers, copy the bytes, re-key
// the directory, start the world.
//
// The whole sequence runs synchronously on the calling thread inside the
// stop-the-world bracket, with no suspension point, so every other thread
// observes the move as atomic, with one documented exception. If the
// thread register pass fails after the escape pass already ran, the abort
// path does not roll the rewritten escape slots back: the directory and the
// allocation bytes still describe the old location while some escape slots
// already point at the new one. That asymmetry is a known hazard of the
// design, preserved and pinned by tests rather than silently repaired.
//
// On every path past a successful StopWorld, StartWorld runs exactly once
// before Move returns. No failure leaves the system stopped.
package move
