package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bogen85/xrandr-utils/internal/errors"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr string
	}{
		{
			name: "valid config",
			cfg: &Config{
				Xrandr:     "xrandr",
				EdidDecode: "edid-decode",
				Layouts: map[string]Layout{
					"work":   {Primary: "DP-1", Secondary: "DP-2"},
					"laptop": {Primary: "eDP-1"},
				},
			},
		},
		{
			name: "no layouts",
			cfg:  DefaultConfig(),
		},
		{
			name: "layout without primary",
			cfg: &Config{
				Layouts: map[string]Layout{"broken": {Secondary: "DP-1"}},
			},
			wantErr: "no primary display",
		},
		{
			name: "primary equals secondary",
			cfg: &Config{
				Layouts: map[string]Layout{"mirror": {Primary: "DP-1", Secondary: "DP-1"}},
			},
			wantErr: "same display",
		},
		{
			name: "reserved layout name",
			cfg: &Config{
				Layouts: map[string]Layout{"display_names": {Primary: "DP-1"}},
			},
			wantErr: "shadows a built-in command",
		},
		{
			name: "layout name with whitespace",
			cfg: &Config{
				Layouts: map[string]Layout{"two words": {Primary: "DP-1"}},
			},
			wantErr: "Invalid layout name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrValidate))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestIsReservedName(t *testing.T) {
	assert.True(t, IsReservedName("display_edid"))
	assert.True(t, IsReservedName("version"))
	assert.False(t, IsReservedName("work"))
}
