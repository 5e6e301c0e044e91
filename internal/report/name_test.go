package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestArtifactName(t *testing.T) {
	tests := []struct {
		name   string
		author string
		now    time.Time
		want   string
	}{
		{"with author", "flavio", time.Date(2025, 2, 14, 12, 0, 0, 0, time.UTC), "flavio-hours-2025-jan-feb_calc.csv"},
		{"without author", "", time.Date(2025, 2, 14, 12, 0, 0, 0, time.UTC), "hours-2025-jan-feb_calc.csv"},
		{"january wraps to december", "flavio", time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), "flavio-hours-2025-dec-jan_calc.csv"},
		{"month end does not overflow", "flavio", time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), "flavio-hours-2025-feb-mar_calc.csv"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ArtifactName(tt.author, tt.now))
		})
	}
}
