// Package reconcile decides how an externally edited line is folded back into
// the host buffer.
package reconcile

import "github.com/g960059/promptedit/internal/model"

// Reconcile maps the outcome of an external edit onto exactly one buffer
// primitive. Pure and deterministic: the same inputs always yield the same
// primitive, and nothing is mutated.
//
// The host applies at most one primitive per trigger, so a minimal diff
// anchored at an interior cursor position is not representable; whenever both
// sides are non-empty the whole line is replaced. The cursor offset therefore
// never influences the emitted primitive, which also makes an out-of-range
// offset harmless.
func Reconcile(newContent, current string, cursor int) model.Primitive {
	switch {
	case newContent == "" && current == "":
		return model.NoOp()
	case newContent == "":
		return model.KillRange(0, len(current))
	case current == "":
		return model.InsertAt(0, newContent)
	default:
		return model.ReplaceRange(0, len(current), newContent)
	}
}
