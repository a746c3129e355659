// Package output implements the emission policy for the *_map commands.
//
// Every map command walks the parsed sections in source order and hands
// key/value pairs to a MapWriter, which decides per entry whether to print
// "key=value", the key alone, the value alone (deduplicated), or nothing.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/bogen85/xrandr-utils/internal/errors"
)

// MapFlags selects the projection for a map command.
// Keys and Values are mutually exclusive.
type MapFlags struct {
	Filtered bool // suppress entries whose value is empty after trimming
	Keys     bool // print keys only
	Values   bool // print deduplicated values only (implies Filtered)
}

// Validate rejects flag combinations before any output is produced.
func (f MapFlags) Validate() error {
	if f.Keys && f.Values {
		return errors.New(errors.ErrValidate,
			"--keys and --values cannot be used together",
			"Use --keys for a name list, or --values for a deduplicated value list, but not both.")
	}
	return nil
}

// MapWriter applies the map emission policy to successive key/value pairs.
// The value-deduplication set is scoped to one writer, i.e. one command
// invocation.
type MapWriter struct {
	w     io.Writer
	flags MapFlags
	seen  map[string]struct{}
}

// NewMapWriter creates a writer for one map command invocation.
func NewMapWriter(w io.Writer, flags MapFlags) *MapWriter {
	return &MapWriter{
		w:     w,
		flags: flags,
		seen:  make(map[string]struct{}),
	}
}

// Emit prints one entry according to the configured projection.
// Empty values are suppressed entirely in filtered and values modes.
// In values mode each distinct value prints once, in first-occurrence
// order; a value only counts as seen once it has actually been printed.
func (m *MapWriter) Emit(key, value string) {
	if (m.flags.Filtered || m.flags.Values) && strings.TrimSpace(value) == "" {
		return
	}

	switch {
	case m.flags.Keys:
		fmt.Fprintln(m.w, key)
	case m.flags.Values:
		if _, dup := m.seen[value]; dup {
			return
		}
		m.seen[value] = struct{}{}
		fmt.Fprintln(m.w, value)
	default:
		fmt.Fprintf(m.w, "%s=%s\n", key, value)
	}
}

// EscapeMultiline flattens a multi-line value onto one map line by
// escaping backslashes and newlines.
func EscapeMultiline(text string) string {
	text = strings.ReplaceAll(text, `\`, `\\`)
	return strings.ReplaceAll(text, "\n", `\n`)
}
