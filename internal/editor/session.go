// Package editor owns the external-editor subprocess lifecycle: it shuttles
// the current line through a uniquely named scratch file, blocks on the
// configured program, and reads the result back.
package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/shlex"
	"github.com/google/uuid"

	"github.com/g960059/promptedit/internal/config"
)

var (
	ErrEmptyCommand = errors.New("editor command is empty")
	ErrWriteFailed  = errors.New("write scratch file")
	ErrSpawnFailed  = errors.New("spawn editor")
	ErrNonZeroExit  = errors.New("editor exited with non-zero status")
	ErrReadFailed   = errors.New("read scratch file")
)

// Spawner runs an external program and blocks until it exits. A non-zero exit
// status is reported as an *exec.ExitError.
type Spawner interface {
	Spawn(ctx context.Context, name string, args ...string) error
}

// OSSpawner passes the calling process's terminal through to the child so
// full-screen editors can take over the screen.
type OSSpawner struct{}

func (OSSpawner) Spawn(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

type Session struct {
	cfg     config.Config
	spawner Spawner
	logger  *slog.Logger
}

func NewSession(cfg config.Config) *Session {
	return &Session{
		cfg:     cfg,
		spawner: OSSpawner{},
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func NewSessionWithSpawner(cfg config.Config, spawner Spawner) *Session {
	s := NewSession(cfg)
	if spawner != nil {
		s.spawner = spawner
	}
	return s
}

// SetLogger routes the session's diagnostic output. A nil logger restores the
// default discard behavior.
func (s *Session) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s.logger = logger
}

// Run writes initial to a fresh scratch file, blocks on the external editor,
// and returns the edited content. cleared reports that the user deliberately
// emptied the file (content is "" in that case). Exactly one trailing newline
// sequence is stripped from non-empty results; everything else is preserved
// byte-for-byte. The scratch file is removed on every exit path.
func (s *Session) Run(ctx context.Context, initial string) (content string, cleared bool, err error) {
	argv, err := shlex.Split(s.cfg.EditorCommand)
	if err != nil {
		return "", false, fmt.Errorf("%w: tokenize %q: %v", ErrSpawnFailed, s.cfg.EditorCommand, err)
	}
	if len(argv) == 0 {
		return "", false, fmt.Errorf("%w: %q", ErrEmptyCommand, s.cfg.EditorCommand)
	}

	path := filepath.Join(s.cfg.ScratchDir, fmt.Sprintf("%s-%s.md", s.cfg.ScratchPrefix, uuid.NewString()))
	if err := os.WriteFile(path, []byte(initial), 0o600); err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	defer s.removeScratch(path)

	args := append(argv[1:len(argv):len(argv)], path)
	if err := s.spawner.Spawn(ctx, argv[0], args...); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", false, fmt.Errorf("%w: %v", ErrNonZeroExit, exitErr)
		}
		return "", false, fmt.Errorf("%w: %v", ErrSpawnFailed, err)
	}

	edited, err := os.ReadFile(path)
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}

	result := string(edited)
	if strings.TrimSpace(result) == "" {
		return "", true, nil
	}
	return trimTrailingNewline(result), false, nil
}

// removeScratch is best-effort: a leftover scratch file cannot corrupt the
// returned content, so removal failure is logged and swallowed.
func (s *Session) removeScratch(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.logger.Debug("remove scratch file", "path", path, "error", err)
	}
}

func trimTrailingNewline(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
