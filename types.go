package cppext

import (
	"runtime"
	"strconv"
	"strings"
)

// ToolchainFamily identifies the broad category of compiler and linker
// behavior a driver belongs to.
type ToolchainFamily string

const (
	// FamilyUnix covers gcc-compatible toolchains (gcc, clang). No
	// exception-handling flags are required by default.
	FamilyUnix ToolchainFamily = "unix"

	// FamilyMSVC covers msvc-like toolchains, which require explicit
	// exception-handling flags (/EHsc).
	FamilyMSVC ToolchainFamily = "msvc"
)

// HostInfo describes the host the build runs on. Immutable for the
// duration of a build invocation.
type HostInfo struct {
	// OS is the host operating system tag (runtime.GOOS values).
	OS string

	// ToolsetVersion is the compiler toolset version, e.g. "14.29" for an
	// msvc-like toolchain. It decides the quoting format of the embedded
	// version macro on that family. May be empty for unix-like toolchains.
	ToolsetVersion string
}

// DetectHost returns the HostInfo for the current process environment.
// The toolset version is taken from the CPPEXT_TOOLSET environment
// variable by the CLI; library callers fill it in themselves.
func DetectHost() HostInfo {
	return HostInfo{OS: runtime.GOOS}
}

// toolsetAtLeast reports whether version ("major.minor") is at or above
// the given threshold. Unparseable versions count as below.
func toolsetAtLeast(version string, major, minor int) bool {
	parts := strings.Split(version, ".")
	if len(parts) < 2 {
		return false
	}

	gotMajor, err := strconv.Atoi(parts[0])
	if err != nil {
		return false
	}
	gotMinor, err := strconv.Atoi(parts[1])
	if err != nil {
		return false
	}

	if gotMajor != major {
		return gotMajor > major
	}
	return gotMinor >= minor
}

// BuildConfig contains configuration for the build process.
//
// Source paths define where files are located:
//   - ProjectDir: Root directory containing the manifest, sources and lib/
//   - DestPath: Optional destination directory for built modules
//
// Build behavior:
//   - Env: Environment variables set during compiler invocations
//   - Verbose: Echo every compiler command into the result output
//   - StopOnFailure: Stop after the first failed module build
type BuildConfig struct {
	ProjectDir    string            // Root directory of the extension project
	DestPath      string            // Destination for built modules (optional)
	Env           map[string]string // Environment variables for compiler invocations
	Verbose       bool              // Enable verbose output
	StopOnFailure bool              // Stop after the first failed module build
}

// BuildResult contains the output and status of building one module.
type BuildResult struct {
	Success   bool     // True if the module compiled and linked successfully
	Output    []string // Lines of output from the compiler invocations
	Artifacts []string // Paths to built module files (.so)
	Error     error    // Error if the build failed, nil otherwise
}
