// Package model holds the data types shared by the minigrep packages.
package model

// Path represents a file system path.
type Path string

// Settings is the validated configuration of a single search.
//
// CaseSensitive is derived once when the settings are built and is never
// changed afterwards.
type Settings struct {
	Query         string
	SourcePath    Path
	CaseSensitive bool
}
