package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsGitVersionAtLeast(t *testing.T) {
	tests := []struct {
		name       string
		output     string
		minVersion string
		want       bool
	}{
		{"newer", "git version 2.43.0", "2.28", true},
		{"equal", "git version 2.28.0", "2.28", true},
		{"older", "git version 2.17.1", "2.28", false},
		{"apple suffix", "git version 2.39.3 (Apple Git-146)", "2.28", true},
		{"windows suffix", "git version 2.44.0.windows.1", "2.28", true},
		{"garbage", "command not found", "2.28", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsGitVersionAtLeast(tt.output, tt.minVersion))
		})
	}
}
