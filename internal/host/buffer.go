// Package host carries a reference single-line buffer that understands the
// editing primitives the reconciler emits. Real line editors bring their own
// buffer; this one backs the demo binary and the round-trip tests.
package host

import "github.com/g960059/promptedit/internal/model"

type Buffer struct {
	text   string
	cursor int
}

func NewBuffer(text string, cursor int) *Buffer {
	return &Buffer{text: text, cursor: model.ClampOffset(cursor, len(text))}
}

func (b *Buffer) Line() string { return b.text }
func (b *Buffer) Pos() int     { return b.cursor }

func (b *Buffer) SetLine(text string, cursor int) {
	b.text = text
	b.cursor = model.ClampOffset(cursor, len(text))
}

// Apply applies one primitive atomically. Out-of-range coordinates clamp into
// the current line rather than failing.
func (b *Buffer) Apply(p model.Primitive) {
	switch p.Kind {
	case model.PrimitiveInsertAt:
		at := model.ClampOffset(p.From, len(b.text))
		b.text = b.text[:at] + p.Text + b.text[at:]
		b.cursor = at + len(p.Text)
	case model.PrimitiveKillRange:
		from := model.ClampOffset(p.From, len(b.text))
		to := model.ClampOffset(p.To, len(b.text))
		b.text = b.text[:from] + b.text[to:]
		b.cursor = from
	case model.PrimitiveReplaceRange:
		from := model.ClampOffset(p.From, len(b.text))
		to := model.ClampOffset(p.To, len(b.text))
		b.text = b.text[:from] + p.Text + b.text[to:]
		b.cursor = from + len(p.Text)
	}
}
