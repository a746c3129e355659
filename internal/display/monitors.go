package display

import "strings"

// ParseMonitorMap parses the output of xrandr --listmonitors into a map
// from display name to monitor index.
//
// A leading "Monitors: N" line is a header and skipped; a first line that
// doesn't start with "Monitors:" is treated as data. Each remaining
// non-blank line looks like:
//
//	0: +*eDP-1 1920/309x1080/173+0+0  eDP-1
//
// The first field is the index (truncated at the first ':'), the last
// field is the display name. Duplicate names overwrite: last line wins.
func ParseMonitorMap(listing string) map[string]string {
	monitors := make(map[string]string)

	for i, line := range strings.Split(listing, "\n") {
		if i == 0 && strings.HasPrefix(line, "Monitors:") {
			continue
		}
		line = strings.TrimRight(line, " \t\r")
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		index := fields[0]
		if colon := strings.IndexByte(index, ':'); colon >= 0 {
			index = index[:colon]
		}
		name := fields[len(fields)-1]
		monitors[name] = index
	}

	return monitors
}
