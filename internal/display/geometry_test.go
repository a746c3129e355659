package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsGeometry(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"standard geometry", "1920x1080+0+0", true},
		{"negative offsets", "2560x1440-100-200", true},
		{"mixed signs", "1280x1024+50-50", true},
		{"huge digit runs", "99999999999999x88888888888888+77777777777+1", true},
		{"single digit everywhere", "1x1+0+0", true},
		{"empty", "", false},
		{"mode without offsets", "1920x1080", false},
		{"one offset only", "1920x1080+0", false},
		{"missing width", "x1080+0+0", false},
		{"missing height", "1920x+0+0", false},
		{"sign without digits", "1920x1080++0", false},
		{"trailing sign", "1920x1080+0+", false},
		{"trailing garbage", "1920x1080+0+0x", false},
		{"leading garbage", "a1920x1080+0+0", false},
		{"letters in run", "19a0x1080+0+0", false},
		{"rate token", "60.00", false},
		{"refresh suffix", "1920x1080+0+0*", false},
		{"space inside", "1920x1080 +0+0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsGeometry(tt.token))
		})
	}
}
