package config

import (
	"os"
	"strings"
)

const (
	defaultEditor = "vi"

	// ScratchPrefix default; scratch files are named <prefix>-<uuid>.md.
	defaultScratchPrefix = "promptedit-prompt"
)

type Config struct {
	// EditorCommand is the external editor invocation, shell-style
	// ("code --wait" resolves to program plus leading arguments).
	EditorCommand string
	ScratchDir    string
	ScratchPrefix string
}

func DefaultConfig() Config {
	return Config{
		EditorCommand: defaultEditorCommand(),
		ScratchDir:    os.TempDir(),
		ScratchPrefix: defaultScratchPrefix,
	}
}

// defaultEditorCommand is the only place the process environment is consulted;
// everything downstream receives the resolved Config.
func defaultEditorCommand() string {
	for _, key := range []string{"PROMPTEDIT_EDITOR", "VISUAL", "EDITOR"} {
		if v := os.Getenv(key); strings.TrimSpace(v) != "" {
			return v
		}
	}
	return defaultEditor
}
