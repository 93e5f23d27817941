package domain

import (
	"iter"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lines yields the lines of contents without their terminators. A "\r"
// directly before "\n" is dropped as well; a lone "\r" is kept. A trailing
// "\n" does not produce an extra empty line.
func Lines(contents string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range strings.Lines(contents) {
			if trimmed, ok := strings.CutSuffix(line, "\n"); ok {
				line = strings.TrimSuffix(trimmed, "\r")
			}

			if !yield(line) {
				return
			}
		}
	}
}

// Search returns every line of contents that contains query, in input order.
// The returned lines are substrings of contents.
func Search(query, contents string) []string {
	var results []string

	for line := range Lines(contents) {
		if strings.Contains(line, query) {
			results = append(results, line)
		}
	}

	return results
}

// SearchCaseInsensitive is Search with both query and lines lowercased using
// the Unicode default lowercase mapping. The returned lines keep their
// original case.
//
// The mapping is applied per character: the final-sigma rule would lower a
// word-final Σ in a line to ς while a lone Σ query becomes σ.
func SearchCaseInsensitive(query, contents string) []string {
	lower := cases.Lower(language.Und, cases.HandleFinalSigma(false))
	query = lower.String(query)

	var results []string

	for line := range Lines(contents) {
		if strings.Contains(lower.String(line), query) {
			results = append(results, line)
		}
	}

	return results
}
