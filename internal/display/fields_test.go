package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sectionWithLines(lines ...string) *Section {
	return &Section{Name: "X", State: Connected, Lines: lines}
}

func TestExtractEDIDHex(t *testing.T) {
	section := sectionWithLines(
		"X connected",
		"EDID:",
		"  00ffffff",
		"  00112233",
		"",
		"CONNECTOR_ID: 5",
	)

	hex, ok := ExtractEDIDHex(section)
	require.True(t, ok)
	assert.Equal(t, "00ffffff00112233", hex)

	connector, ok := ExtractConnectorID(section)
	require.True(t, ok)
	assert.Equal(t, "5", connector)
}

func TestExtractEDIDHex_Cases(t *testing.T) {
	tests := []struct {
		name   string
		lines  []string
		want   string
		wantOK bool
	}{
		{
			name:  "no EDID label",
			lines: []string{"X connected", "  00ffffff"},
		},
		{
			name:  "label but no hex lines",
			lines: []string{"EDID:", "", "00ffffff"},
		},
		{
			name:   "non-hex line terminates capture for good",
			lines:  []string{"EDID:", "  00ff", "  Identifier: 0x42", "  aabb"},
			want:   "00ff",
			wantOK: true,
		},
		{
			name:   "whitespace inside hex lines is stripped",
			lines:  []string{"EDID:", "\t00 ff ff ff", "  aa bb"},
			want:   "00ffffffaabb",
			wantOK: true,
		},
		{
			name:   "uppercase hex accepted",
			lines:  []string{"EDID:", "  00FFAB"},
			want:   "00FFAB",
			wantOK: true,
		},
		{
			name:  "label is case sensitive",
			lines: []string{"edid:", "  00ff"},
		},
		{
			name:   "label with trailing text still starts capture",
			lines:  []string{"EDID: (hex)", "  00ff"},
			want:   "00ff",
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hex, ok := ExtractEDIDHex(sectionWithLines(tt.lines...))
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, hex)
		})
	}
}

func TestExtractConnectorID(t *testing.T) {
	tests := []struct {
		name   string
		lines  []string
		want   string
		wantOK bool
	}{
		{
			name:   "value after prefix",
			lines:  []string{"\tCONNECTOR_ID: 77"},
			want:   "77",
			wantOK: true,
		},
		{
			name:   "empty value does not stop the scan",
			lines:  []string{"CONNECTOR_ID:", "CONNECTOR_ID:   ", "CONNECTOR_ID: 9"},
			want:   "9",
			wantOK: true,
		},
		{
			name:  "all matches empty",
			lines: []string{"CONNECTOR_ID:", "CONNECTOR_ID:  "},
		},
		{
			name:  "absent",
			lines: []string{"X connected", "\tIdentifier: 0x42"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractConnectorID(sectionWithLines(tt.lines...))
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractSerial_PriorityOrder(t *testing.T) {
	// The quoted product-serial label wins regardless of line order.
	report := "    Serial Number: ABC123\n    Display Product Serial Number: 'XYZ999'\n"

	serial, ok := ExtractSerial(report)
	require.True(t, ok)
	assert.Equal(t, "XYZ999", serial)

	reversed := "    Display Product Serial Number: 'XYZ999'\n    Serial Number: ABC123\n"
	serial, ok = ExtractSerial(reversed)
	require.True(t, ok)
	assert.Equal(t, "XYZ999", serial)
}

func TestExtractSerial(t *testing.T) {
	tests := []struct {
		name   string
		report string
		want   string
		wantOK bool
	}{
		{
			name:   "plain serial number line",
			report: "  Vendor: ACME\n  Serial Number: 12345\n",
			want:   "12345",
			wantOK: true,
		},
		{
			name:   "alphanumeric data string fallback",
			report: "  Alphanumeric Data String: ' SN-42 '\n",
			want:   "SN-42",
			wantOK: true,
		},
		{
			// The product-serial line itself contains "Serial Number:", so
			// once the quoted strategy rejects the empty quotes, the
			// colon strategy picks the quotes up verbatim.
			name:   "empty quotes fall back to colon strategy on same line",
			report: "  Display Product Serial Number: ''\n  Serial Number: 777\n",
			want:   "''",
			wantOK: true,
		},
		{
			name:   "valueless labels fall through to data string",
			report: "  Display Product Serial Number:\n  Alphanumeric Data String: 'AN1'\n",
			want:   "AN1",
			wantOK: true,
		},
		{
			name:   "quoted value is trimmed",
			report: "  Display Product Serial Number: '  ABC  '\n",
			want:   "ABC",
			wantOK: true,
		},
		{
			name:   "first matching line wins within a strategy",
			report: "  Serial Number: one\n  Serial Number: two\n",
			want:   "one",
			wantOK: true,
		},
		{
			name:   "no serial anywhere",
			report: "  Vendor: ACME\n  Model: Display\n",
		},
		{
			name:   "empty report",
			report: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractSerial(tt.report)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
