// Package domain holds the line matcher and the runner that drives a search.
package domain

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"unicode/utf8"

	"minigrep.dev/pkg/minigrep/internal/adapter"
	"minigrep.dev/pkg/minigrep/internal/controller"
	m "minigrep.dev/pkg/minigrep/internal/model"
)

var errInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// Runner loads the configured source file, filters its lines and hands the
// matches to the UI.
type Runner interface {
	Run(ctx context.Context, settings m.Settings) error
}

type runner struct {
	fsAdapter adapter.SourceFSAdapter
	ui        controller.UI
}

// NewRunner constructs a Runner backed by the provided filesystem adapter
// and UI.
func NewRunner(fsAdapter adapter.SourceFSAdapter, ui controller.UI) Runner {
	return &runner{
		fsAdapter: fsAdapter,
		ui:        ui,
	}
}

func (r *runner) Run(ctx context.Context, settings m.Settings) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	contents, err := r.readSource(settings.SourcePath)
	if err != nil {
		return err
	}

	lines := r.search(settings, contents)
	slog.Debug("search finished",
		"path", settings.SourcePath,
		"case_sensitive", settings.CaseSensitive,
		"bytes", len(contents),
		"matches", len(lines),
	)

	if err := r.ui.DisplayMatches(ctx, lines); err != nil {
		var appErr *m.Error
		if errors.As(err, &appErr) {
			return err
		}

		return m.NewError(m.KindOutputWrite, "write matches", err)
	}

	return nil
}

func (r *runner) readSource(path m.Path) (string, error) {
	f, err := r.fsAdapter.Open(path)
	if err != nil {
		return "", m.NewError(m.KindFileOpen, "", err)
	}

	defer func() {
		_ = f.Close()
	}()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", m.NewError(m.KindFileRead, "", err)
	}

	if !utf8.Valid(data) {
		return "", m.NewError(m.KindFileRead, "", errInvalidUTF8)
	}

	return string(data), nil
}

func (r *runner) search(settings m.Settings, contents string) []string {
	if settings.CaseSensitive {
		return Search(settings.Query, contents)
	}

	return SearchCaseInsensitive(settings.Query, contents)
}
