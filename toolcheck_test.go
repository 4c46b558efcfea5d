package cppext

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// installFakeTool drops an executable with the given name into a fresh
// directory and prepends it to PATH.
func installFakeTool(t *testing.T, name string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake tool installation relies on unix permission bits")
	}

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("#!/bin/sh\nexit 0\n"), 0o755))
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func TestCheckToolAvailable(t *testing.T) {
	installFakeTool(t, "fake-cxx")

	assert.NoError(t, CheckToolAvailable("fake-cxx"))
	assert.Error(t, CheckToolAvailable("definitely-not-a-tool"))
}

func TestCheckRequiredTools(t *testing.T) {
	installFakeTool(t, "fake-cxx")

	tests := []struct {
		name         string
		requirements []ToolRequirement
		wantErr      bool
	}{
		{
			name: "primary found",
			requirements: []ToolRequirement{
				{Name: "fake-cxx", Purpose: "C++ compiler"},
			},
		},
		{
			name: "alternative found",
			requirements: []ToolRequirement{
				{Name: "missing-cxx", Alternatives: []string{"fake-cxx"}, Purpose: "C++ compiler"},
			},
		},
		{
			name: "optional missing",
			requirements: []ToolRequirement{
				{Name: "missing-python", Optional: true, Purpose: "Binding generator"},
			},
		},
		{
			name: "required missing",
			requirements: []ToolRequirement{
				{Name: "missing-cxx", Purpose: "C++ compiler"},
			},
			wantErr: true,
		},
		{
			name: "multiple missing are reported together",
			requirements: []ToolRequirement{
				{Name: "missing-cxx", Purpose: "C++ compiler"},
				{Name: "missing-ar"},
			},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckRequiredTools(tc.requirements)

			if tc.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "missing-cxx")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
