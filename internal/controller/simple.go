package controller

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	m "minigrep.dev/pkg/minigrep/internal/model"
)

const (
	parseErrorPrefix = "Problem parsing arguments: "
	appErrorPrefix   = "Application error: "
)

// SimpleUI implements UI on the output and error streams of a cobra command.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayMatches prints the matched lines to the command's output stream.
func (s *SimpleUI) DisplayMatches(ctx context.Context, lines []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w := bufio.NewWriter(s.cmd.OutOrStdout())

	for _, line := range lines {
		if _, err := w.WriteString(line); err != nil {
			return m.NewError(m.KindOutputWrite, "write matches", err)
		}

		if err := w.WriteByte('\n'); err != nil {
			return m.NewError(m.KindOutputWrite, "write matches", err)
		}
	}

	if err := w.Flush(); err != nil {
		return m.NewError(m.KindOutputWrite, "write matches", err)
	}

	return nil
}

// DisplayError prints err to the command's error stream, prefixed according
// to whether the arguments or the search itself failed.
func (s *SimpleUI) DisplayError(_ context.Context, err error) {
	if err == nil {
		return
	}

	_, _ = fmt.Fprintln(s.cmd.ErrOrStderr(), FormatDiagnostic(err))
}

// lineBreaks escapes characters that would split a diagnostic, such as a
// newline inside a file name.
var lineBreaks = strings.NewReplacer("\r", `\r`, "\n", `\n`)

// FormatDiagnostic renders err as the one-line message shown on failure.
func FormatDiagnostic(err error) string {
	msg := lineBreaks.Replace(err.Error())

	if m.IsKind(err, m.KindMissingArgument) {
		return parseErrorPrefix + msg
	}

	return appErrorPrefix + msg
}
