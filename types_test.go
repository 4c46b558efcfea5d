package cppext

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectHost(t *testing.T) {
	host := DetectHost()

	assert.Equal(t, runtime.GOOS, host.OS)
	assert.Empty(t, host.ToolsetVersion)
}

func TestToolsetAtLeast(t *testing.T) {
	tests := []struct {
		version string
		want    bool
	}{
		{"14.20", true},
		{"14.29", true},
		{"15.0", true},
		{"14.16", false},
		{"13.99", false},
		{"14", false},
		{"", false},
		{"garbage", false},
		{"a.b", false},
	}

	for _, tc := range tests {
		t.Run(tc.version, func(t *testing.T) {
			assert.Equal(t, tc.want, toolsetAtLeast(tc.version, 14, 20))
		})
	}
}
