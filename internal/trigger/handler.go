// Package trigger adapts a host line-editor event into one editing
// transaction: run the external editor, then hand the host a single primitive
// to apply.
package trigger

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/g960059/promptedit/internal/model"
	"github.com/g960059/promptedit/internal/reconcile"
)

// Host is the capability the line editor grants at trigger time: read the
// current buffer text and cursor offset. Applying the returned primitive
// stays with the host.
type Host interface {
	Line() string
	Pos() int
}

// SessionRunner runs one external-editor round trip. *editor.Session
// satisfies it.
type SessionRunner interface {
	Run(ctx context.Context, initial string) (content string, cleared bool, err error)
}

type Handler struct {
	session SessionRunner
	logger  *slog.Logger
}

func NewHandler(session SessionRunner) *Handler {
	return &Handler{
		session: session,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func NewHandlerWithLogger(session SessionRunner, logger *slog.Logger) *Handler {
	h := NewHandler(session)
	if logger != nil {
		h.logger = logger
	}
	return h
}

// Handle runs one editing transaction and returns the single primitive the
// host should apply. Every session failure degrades to NoOp so the user's
// original line survives; a line editor has no good channel for a visible
// error.
func (h *Handler) Handle(ctx context.Context, host Host) model.Primitive {
	tx := model.Transaction{Current: host.Line(), Cursor: host.Pos()}

	content, cleared, err := h.session.Run(ctx, tx.Current)
	if err != nil {
		h.logger.Debug("external edit failed, keeping line", "error", err)
		return model.NoOp()
	}

	edited := content
	if cleared {
		edited = ""
	}
	tx.Edited = &edited

	if *tx.Edited == "" {
		return reconcile.Reconcile("", tx.Current, tx.Cursor)
	}
	if strings.TrimSpace(*tx.Edited) == strings.TrimSpace(tx.Current) {
		// Round-tripped unchanged; skip the redundant redraw.
		return model.NoOp()
	}
	return reconcile.Reconcile(*tx.Edited, tx.Current, tx.Cursor)
}
