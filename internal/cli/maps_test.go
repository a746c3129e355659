package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bogen85/xrandr-utils/internal/display"
	"github.com/bogen85/xrandr-utils/internal/output"
)

func mapWriter(flags output.MapFlags) (*bytes.Buffer, *output.MapWriter) {
	var buf bytes.Buffer
	return &buf, output.NewMapWriter(&buf, flags)
}

func TestEmitConnectedMap(t *testing.T) {
	sections := fixtureSections(t)

	buf, w := mapWriter(output.MapFlags{})
	emitConnectedMap(w, sections)
	assert.Equal(t,
		"HDMI-1=connected\nDP-1=connected\nLVDS-1=connected\nDP-2=disconnected\nVGA-1=disconnected\n",
		buf.String())
}

func TestEmitConnectedMapValues(t *testing.T) {
	sections := fixtureSections(t)

	// Values mode deduplicates in first-occurrence order.
	buf, w := mapWriter(output.MapFlags{Values: true})
	emitConnectedMap(w, sections)
	assert.Equal(t, "connected\ndisconnected\n", buf.String())
}

func TestEmitConnectorMap(t *testing.T) {
	sections := fixtureSections(t)

	tests := []struct {
		name  string
		flags output.MapFlags
		want  string
	}{
		{
			name:  "default includes empty values",
			flags: output.MapFlags{},
			want:  "HDMI-1=95\nDP-1=96\nLVDS-1=98\nDP-2=97\nVGA-1=\n",
		},
		{
			name:  "filtered drops displays without a connector id",
			flags: output.MapFlags{Filtered: true},
			want:  "HDMI-1=95\nDP-1=96\nLVDS-1=98\nDP-2=97\n",
		},
		{
			name:  "keys lists every display name",
			flags: output.MapFlags{Keys: true},
			want:  "HDMI-1\nDP-1\nLVDS-1\nDP-2\nVGA-1\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, w := mapWriter(tt.flags)
			emitConnectorMap(w, sections)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestEmitGeometryMap(t *testing.T) {
	sections := fixtureSections(t)

	// Disconnected displays and connected displays without a mode are
	// skipped entirely, and the primary display gets a marker prefix.
	buf, w := mapWriter(output.MapFlags{})
	emitGeometryMap(w, sections)
	assert.Equal(t,
		"HDMI-1=primary,1920x1080+0+0\nDP-1=1280x1024+1920+0\n",
		buf.String())
}

func TestEmitGeometryMapKeys(t *testing.T) {
	sections := fixtureSections(t)

	buf, w := mapWriter(output.MapFlags{Keys: true})
	emitGeometryMap(w, sections)
	assert.Equal(t, "HDMI-1\nDP-1\n", buf.String())
}

func TestEmitSectionMapEscapesNewlines(t *testing.T) {
	sections := fixtureSections(t)

	buf, w := mapWriter(output.MapFlags{})
	emitSectionMap(w, sections)

	out := buf.String()
	assert.Contains(t, out, `VGA-1=VGA-1 disconnected`)
	// Each display occupies exactly one output line.
	assert.Equal(t, len(sections), bytes.Count(buf.Bytes(), []byte("\n")))
	assert.Contains(t, out, `\n`)
}

func TestEmitSerialMap(t *testing.T) {
	sections := fixtureSections(t)

	serials := map[string]string{"HDMI-1": "ABC123", "DP-1": "ABC123"}
	lookup := func(section *display.Section) string {
		return serials[section.Name]
	}

	buf, w := mapWriter(output.MapFlags{})
	emitSerialMap(w, sections, lookup)
	assert.Equal(t,
		"HDMI-1=ABC123\nDP-1=ABC123\nLVDS-1=\nDP-2=\nVGA-1=\n",
		buf.String())

	// Duplicate serials collapse in values mode.
	buf, w = mapWriter(output.MapFlags{Values: true})
	emitSerialMap(w, sections, lookup)
	assert.Equal(t, "ABC123\n", buf.String())
}

func TestEmitMonitorMap(t *testing.T) {
	sections := fixtureSections(t)

	monitors := map[string]string{"HDMI-1": "0", "DP-1": "1"}

	buf, w := mapWriter(output.MapFlags{Filtered: true})
	emitMonitorMap(w, sections, monitors)
	assert.Equal(t, "HDMI-1=0\nDP-1=1\n", buf.String())
}
