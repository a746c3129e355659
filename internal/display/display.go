// Package display parses the verbose output of xrandr into per-display
// sections and extracts labeled fields from them.
//
// The verbose output is line oriented: each display starts with a header
// line ("DP-1 connected primary 1920x1080+0+0 ...") followed by indented
// detail lines (modes, properties, the EDID hex block). A section owns
// every line from its header up to, but not including, the next header.
package display

import (
	"bufio"
	"strings"
)

// State is the connection state reported on a display's header line.
type State int

const (
	Connected State = iota
	Disconnected
)

// String returns the state word as it appears in xrandr output.
func (s State) String() string {
	switch s {
	case Connected:
		return "connected"
	case Disconnected:
		return "disconnected"
	default:
		return "unknown"
	}
}

// Section holds one display's slice of the verbose output.
// Lines always starts with the header line.
type Section struct {
	Name     string
	State    State
	Primary  bool
	Geometry string // empty when the header carried no geometry token
	Lines    []string
}

// header is the ephemeral parse result of a single header line. It is
// consumed immediately to seed a Section.
type header struct {
	name     string
	state    State
	primary  bool
	geometry string
}

// parseHeader reports whether line is a display header and, if so, returns
// its parsed fields. A header is "<name> connected|disconnected ..." with
// the state word matched case-sensitively. Among the remaining tokens the
// literal "primary" sets the primary flag and the first geometry-shaped
// token becomes the geometry; everything else is ignored so that new flags
// in future xrandr versions don't break parsing.
func parseHeader(line string) (header, bool) {
	tokens := strings.Fields(line)
	if len(tokens) < 2 {
		return header{}, false
	}

	h := header{name: tokens[0]}
	switch tokens[1] {
	case "connected":
		h.state = Connected
	case "disconnected":
		h.state = Disconnected
	default:
		return header{}, false
	}

	for _, token := range tokens[2:] {
		if token == "primary" {
			h.primary = true
		} else if h.geometry == "" && IsGeometry(token) {
			h.geometry = token
		}
	}

	return h, true
}

// ParseSections splits verbose xrandr output into ordered per-display
// sections. Lines before the first header carry no display context and are
// dropped. The full input is segmented in one pass; a section closes only
// when the next header (or end of input) is seen.
func ParseSections(verbose string) []Section {
	var sections []Section
	var current *Section

	scanner := bufio.NewScanner(strings.NewReader(verbose))
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)

	for scanner.Scan() {
		line := scanner.Text()

		if h, ok := parseHeader(line); ok {
			if current != nil {
				sections = append(sections, *current)
			}
			current = &Section{
				Name:     h.name,
				State:    h.state,
				Primary:  h.primary,
				Geometry: h.geometry,
				Lines:    []string{line},
			}
		} else if current != nil {
			current.Lines = append(current.Lines, line)
		}
	}

	if current != nil {
		sections = append(sections, *current)
	}

	return sections
}

// Find returns the first section with the given name. Duplicate names in
// the source shadow later sections: lookups are first-match-wins.
func Find(sections []Section, name string) (*Section, bool) {
	for i := range sections {
		if sections[i].Name == name {
			return &sections[i], true
		}
	}
	return nil, false
}

// Names returns section names in source order, optionally restricted to
// connected displays.
func Names(sections []Section, connectedOnly bool) []string {
	var names []string
	for _, section := range sections {
		if connectedOnly && section.State != Connected {
			continue
		}
		names = append(names, section.Name)
	}
	return names
}
