package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScreenSize(t *testing.T) {
	tests := []struct {
		in      string
		w, h    float64
		wantErr bool
	}{
		{in: "1920x1080", w: 1920, h: 1080},
		{in: " 1440X900 ", w: 1440, h: 900},
		{in: "1512.5x982", w: 1512.5, h: 982},
		{in: "1920", wantErr: true},
		{in: "widex900", wantErr: true},
		{in: "0x900", wantErr: true},
		{in: "1440x-1", wantErr: true},
		{in: "infx900", wantErr: true},
		{in: "1440x+Inf", wantErr: true},
		{in: "nanx900", wantErr: true},
		{in: "1440xNaN", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			screen, err := parseScreenSize(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.w, screen.Frame.Width(), 1e-9)
			assert.InDelta(t, tt.h, screen.Frame.Height(), 1e-9)
		})
	}
}
