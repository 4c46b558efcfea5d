package cppext

import (
	"fmt"
	"os/exec"
	"strings"
)

// ToolChecker is an optional interface for drivers that require external
// tools.
//
// Drivers can implement this interface to declare their toolchain
// dependencies and verify that required tools are available before a
// build is attempted. This is opt-in: drivers that don't implement it
// work exactly as before.
//
// # Consumer Usage
//
// Check tools before building:
//
//	if checker, ok := driver.(ToolChecker); ok {
//	    if err := checker.CheckTools(); err != nil {
//	        return fmt.Errorf("build tools missing: %w", err)
//	    }
//	}
type ToolChecker interface {
	// RequiredTools returns the list of tools this driver needs.
	RequiredTools() []ToolRequirement

	// CheckTools verifies that all required tools are available.
	//
	// Returns nil if all required tools are found, or an error describing
	// which tools are missing. Optional tools don't cause errors if missing.
	CheckTools() error
}

// ToolRequirement describes a toolchain dependency.
//
// A requirement is satisfied when the primary tool or any alternative is
// found in PATH. Optional tools never fail the check.
type ToolRequirement struct {
	// Name is the primary tool binary name (e.g., "g++", "python3").
	Name string

	// Alternatives are alternative tool names that can satisfy this
	// requirement. Example: []string{"clang++", "c++"}
	Alternatives []string

	// Optional indicates this tool won't cause an error if missing.
	Optional bool

	// Purpose is a human-readable description of why the tool is needed.
	Purpose string
}

// CheckToolAvailable checks if a tool is available in the system PATH.
func CheckToolAvailable(tool string) error {
	if _, err := exec.LookPath(tool); err != nil {
		return fmt.Errorf("%s not found in PATH", tool)
	}
	return nil
}

// CheckRequiredTools verifies all required tools are available.
//
// The primary tool name is checked first, then each alternative in order.
// All missing required tools are reported in a single error.
func CheckRequiredTools(requirements []ToolRequirement) error {
	var missingTools []string

	for _, req := range requirements {
		found := CheckToolAvailable(req.Name) == nil

		if !found {
			for _, alt := range req.Alternatives {
				if CheckToolAvailable(alt) == nil {
					found = true
					break
				}
			}
		}

		if !found && !req.Optional {
			if req.Purpose != "" {
				missingTools = append(missingTools, fmt.Sprintf("%s (%s)", req.Name, req.Purpose))
			} else {
				missingTools = append(missingTools, req.Name)
			}
		}
	}

	if len(missingTools) == 0 {
		return nil
	}

	if len(missingTools) == 1 {
		return fmt.Errorf("%s not found in PATH", missingTools[0])
	}

	return fmt.Errorf("missing required tools: %s", strings.Join(missingTools, ", "))
}
