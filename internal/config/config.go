// Package config assembles search settings from the command line and the
// process environment.
package config

import (
	"iter"
	"log/slog"
	"os"
	"slices"

	m "minigrep.dev/pkg/minigrep/internal/model"
)

// CaseInsensitiveEnv names the variable whose presence, with any value,
// turns off case-sensitive matching.
const CaseInsensitiveEnv = "CASE_INSENSITIVE"

const (
	msgNotEnoughArguments = "not enough arguments"
	msgNoQuery            = "Didn't get a query string"
	msgNoFileName         = "Didn't get a file name"
)

// LookupEnvFunc has the shape of os.LookupEnv.
type LookupEnvFunc func(key string) (string, bool)

// OSEnv reads the real process environment.
var OSEnv LookupEnvFunc = os.LookupEnv

// Build validates args, laid out as [program, query, path, ...], and derives
// the settings for one search. Arguments after the path are ignored.
func Build(args []string, env LookupEnvFunc) (m.Settings, error) {
	if len(args) < 3 {
		return m.Settings{}, m.NewError(m.KindMissingArgument, msgNotEnoughArguments, nil)
	}

	return FromSeq(slices.Values(args), env)
}

// FromSeq pulls the program name, the query and the path from args one at a
// time. Elements after the path are never pulled.
func FromSeq(args iter.Seq[string], env LookupEnvFunc) (m.Settings, error) {
	next, stop := iter.Pull(args)
	defer stop()

	// program name
	next()

	query, ok := next()
	if !ok {
		return m.Settings{}, m.NewError(m.KindMissingArgument, msgNoQuery, nil)
	}

	path, ok := next()
	if !ok {
		return m.Settings{}, m.NewError(m.KindMissingArgument, msgNoFileName, nil)
	}

	settings := m.Settings{
		Query:         query,
		SourcePath:    m.Path(path),
		CaseSensitive: caseSensitive(env),
	}

	slog.Debug("settings built",
		"query", settings.Query,
		"path", settings.SourcePath,
		"case_sensitive", settings.CaseSensitive,
	)

	return settings, nil
}

func caseSensitive(env LookupEnvFunc) bool {
	if env == nil {
		env = OSEnv
	}

	_, present := env(CaseInsensitiveEnv)

	return !present
}
