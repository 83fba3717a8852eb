package design

import (
	"errors"

	"github.com/uilab/go-fast/framework/elements"
)

// ── Disambiguation outcomes ───────────────────────────────────────────────────

// ErrInvalidOutcome reports a disambiguation policy that produced a value
// outside the closed outcome set (including the zero Outcome). This is a
// programmer error in the policy; the registration attempt fails fast rather
// than guessing.
var ErrInvalidOutcome = errors.New("design: invalid disambiguation outcome")

type outcomeKind int

const (
	outcomeInvalid outcomeKind = iota
	outcomeRename
	outcomeSkipDefine
	outcomeIgnore
)

// Outcome is the closed result set of a disambiguation policy. Construct one
// only through Rename, SkipDefine, or Ignore; the zero value is invalid.
//
//	// FAST: ElementDisambiguation | string
type Outcome struct {
	kind outcomeKind
	name string
}

// Rename directs the pipeline to retry the registration under an alternate
// tag name.
func Rename(name string) Outcome {
	return Outcome{kind: outcomeRename, name: name}
}

// SkipDefine treats the duplicate as already satisfied: no platform
// definition will happen, but the registration's configuration callback
// still runs.
//
//	// FAST: ElementDisambiguation.definitionCallbackOnly
func SkipDefine() Outcome {
	return Outcome{kind: outcomeSkipDefine}
}

// Ignore drops the registration attempt entirely — no definition entry, no
// callback, no registry writes.
//
//	// FAST: ElementDisambiguation.ignoreDuplicate
func Ignore() Outcome {
	return Outcome{kind: outcomeIgnore}
}

// ── Policies ──────────────────────────────────────────────────────────────────

// DisambiguationPolicy decides what to do when tag already has a registrant.
// It is invoked repeatedly until the attempted name is free or it yields a
// terminal outcome. It must be pure: same inputs, same outcome.
type DisambiguationPolicy func(tag string, attempted, existing *elements.Type) Outcome

// SkipOnCollision is the default policy: every collision is treated as "use
// what's there, but still run the new registration's configuration". This
// makes re-registering the same logical component idempotent.
func SkipOnCollision(tag string, attempted, existing *elements.Type) Outcome {
	return SkipDefine()
}

// IgnoreOnCollision drops every colliding registration attempt.
func IgnoreOnCollision(tag string, attempted, existing *elements.Type) Outcome {
	return Ignore()
}

// RenameWithSuffix renames colliding registrations by appending suffix,
// repeatedly if the renamed tag is also taken ("x" → "x-2" → "x-2-2" …).
func RenameWithSuffix(suffix string) DisambiguationPolicy {
	return func(tag string, attempted, existing *elements.Type) Outcome {
		return Rename(tag + suffix)
	}
}
