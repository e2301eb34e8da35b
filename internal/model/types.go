package model

// PrimitiveKind identifies one buffer-editing command understood by the host
// line editor.
type PrimitiveKind string

const (
	PrimitiveNoOp         PrimitiveKind = "noop"
	PrimitiveInsertAt     PrimitiveKind = "insert_at"
	PrimitiveKillRange    PrimitiveKind = "kill_range"
	PrimitiveReplaceRange PrimitiveKind = "replace_range"
)

// Primitive is one atomic editing instruction. The core emits exactly one per
// transaction; applying it to the buffer belongs to the host.
type Primitive struct {
	Kind PrimitiveKind
	From int
	To   int
	Text string
}

func NoOp() Primitive {
	return Primitive{Kind: PrimitiveNoOp}
}

func InsertAt(pos int, text string) Primitive {
	if pos < 0 {
		pos = 0
	}
	return Primitive{Kind: PrimitiveInsertAt, From: pos, To: pos, Text: text}
}

func KillRange(from, to int) Primitive {
	from, to = orderRange(from, to)
	return Primitive{Kind: PrimitiveKillRange, From: from, To: to}
}

func ReplaceRange(from, to int, text string) Primitive {
	from, to = orderRange(from, to)
	return Primitive{Kind: PrimitiveReplaceRange, From: from, To: to, Text: text}
}

func orderRange(from, to int) (int, int) {
	if from < 0 {
		from = 0
	}
	if to < 0 {
		to = 0
	}
	if to < from {
		from, to = to, from
	}
	return from, to
}

// Transaction bundles the inputs and outcome of one editing round trip.
// Edited is nil when the external edit was abandoned or failed.
type Transaction struct {
	Current string
	Cursor  int
	Edited  *string
}

// ClampOffset clamps a byte offset into [0, length].
func ClampOffset(off, length int) int {
	if length < 0 {
		length = 0
	}
	if off < 0 {
		return 0
	}
	if off > length {
		return length
	}
	return off
}
