// Command promptedit-demo is a minimal host stand-in: it reads one line,
// opens it in the configured external editor, applies the resulting buffer
// primitive, and prints the reconciled line.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/g960059/promptedit/internal/config"
	"github.com/g960059/promptedit/internal/editor"
	"github.com/g960059/promptedit/internal/host"
	"github.com/g960059/promptedit/internal/trigger"
)

func main() {
	os.Exit(run(context.Background(), config.DefaultConfig(), os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, cfg config.Config, in io.Reader, out, errOut io.Writer) int {
	fmt.Fprint(out, "> ")
	sc := bufio.NewScanner(in)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			fmt.Fprintf(errOut, "read line: %v\n", err)
		}
		return 1
	}
	line := sc.Text()

	buf := host.NewBuffer(line, len(line))
	h := trigger.NewHandler(editor.NewSession(cfg))
	buf.Apply(h.Handle(ctx, buf))

	fmt.Fprintln(out, buf.Line())
	return 0
}
