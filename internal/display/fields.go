package display

import "strings"

// ExtractEDIDHex scans a section's lines for the EDID property block and
// returns the concatenated hex digits. Capture starts after a line whose
// trimmed form begins with "EDID:" and ends at the first blank line or the
// first line containing anything other than hex digits and whitespace.
// Termination is final: nothing past the terminating line is scanned.
func ExtractEDIDHex(section *Section) (string, bool) {
	capture := false
	var hex strings.Builder

	for _, line := range section.Lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "EDID:") {
			capture = true
			continue
		}
		if !capture {
			continue
		}
		if trimmed == "" || !isHexLine(trimmed) {
			break
		}
		for i := 0; i < len(trimmed); i++ {
			if isHexDigit(trimmed[i]) {
				hex.WriteByte(trimmed[i])
			}
		}
	}

	if hex.Len() == 0 {
		return "", false
	}
	return hex.String(), true
}

// isHexLine reports whether the line consists solely of hex digits and
// whitespace.
func isHexLine(line string) bool {
	for i := 0; i < len(line); i++ {
		b := line[i]
		if !isHexDigit(b) && !isSpace(b) {
			return false
		}
	}
	return true
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// ExtractConnectorID returns the value of the first CONNECTOR_ID property
// line that carries a non-empty value. Lines whose value is empty do not
// stop the scan.
func ExtractConnectorID(section *Section) (string, bool) {
	for _, line := range section.Lines {
		trimmed := strings.TrimSpace(line)
		rest, ok := strings.CutPrefix(trimmed, "CONNECTOR_ID:")
		if !ok {
			continue
		}
		if value := strings.TrimSpace(rest); value != "" {
			return value, true
		}
	}
	return "", false
}

// serialStrategy is one labeled extraction rule for serial numbers.
// Strategies run in declaration order; each scans the whole report before
// the next is tried, so the order is the observable fallback priority.
type serialStrategy struct {
	label   string
	extract func(line string) (string, bool)
}

var serialStrategies = []serialStrategy{
	{"Display Product Serial Number:", quotedValue},
	{"Serial Number:", afterColon},
	{"Alphanumeric Data String:", quotedValue},
}

// ExtractSerial pulls a serial number out of an edid-decode report.
// Three labeled rules are tried in fixed priority order; within a rule the
// first line yielding a non-empty value wins.
func ExtractSerial(report string) (string, bool) {
	for _, strategy := range serialStrategies {
		for _, line := range strings.Split(report, "\n") {
			if !strings.Contains(line, strategy.label) {
				continue
			}
			if value, ok := strategy.extract(line); ok {
				return value, true
			}
		}
	}
	return "", false
}

// quotedValue extracts the first '...'-quoted substring, trimmed.
func quotedValue(line string) (string, bool) {
	start := strings.IndexByte(line, '\'')
	if start < 0 {
		return "", false
	}
	end := strings.IndexByte(line[start+1:], '\'')
	if end < 0 {
		return "", false
	}
	value := strings.TrimSpace(line[start+1 : start+1+end])
	if value == "" {
		return "", false
	}
	return value, true
}

// afterColon extracts everything after the first ':' on the line, trimmed.
func afterColon(line string) (string, bool) {
	idx := strings.IndexByte(line, ':')
	if idx < 0 {
		return "", false
	}
	value := strings.TrimSpace(line[idx+1:])
	if value == "" {
		return "", false
	}
	return value, true
}
