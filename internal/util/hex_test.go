package util

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []byte
		wantErr string
	}{
		{
			name:  "plain pairs",
			input: "00ff10",
			want:  []byte{0x00, 0xff, 0x10},
		},
		{
			name:  "embedded whitespace",
			input: " 00 ff\t10\n20 ",
			want:  []byte{0x00, 0xff, 0x10, 0x20},
		},
		{
			name:  "mixed case",
			input: "aAbBcC",
			want:  []byte{0xaa, 0xbb, 0xcc},
		},
		{
			name:  "empty input",
			input: "",
			want:  []byte{},
		},
		{
			name:  "whitespace only",
			input: " \t\n",
			want:  []byte{},
		},
		{
			name:    "odd length",
			input:   "00f",
			wantErr: "hex length is not even",
		},
		{
			name:    "invalid pair names the pair",
			input:   "00zx",
			wantErr: "invalid hex pair: zx",
		},
		{
			name:    "odd length after stripping whitespace",
			input:   "0 0 f",
			wantErr: "hex length is not even",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeHex(tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeHex_RoundTrip(t *testing.T) {
	inputs := [][]byte{
		{},
		{0x00},
		{0x00, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x00},
		{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef},
	}

	for _, bytes := range inputs {
		decoded, err := DecodeHex(fmt.Sprintf("%x", bytes))
		require.NoError(t, err)
		assert.Equal(t, bytes, decoded)
	}
}
