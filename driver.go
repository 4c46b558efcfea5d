package cppext

import "context"

// Driver defines the interface to a compiler toolchain.
//
// A driver hides the concrete command line of one toolchain behind four
// operations the build configuration needs: a family identifier used for
// flag-table selection, a trial compilation used for flag probing, access
// to the toolchain's mutable default flag set, and the real compile-and-link
// step for a finished build target.
//
// # Driver Lifecycle
//
//  1. Family() / DefaultFlags() - flag resolution consults these
//  2. Compile() - probing calls this with one candidate flag at a time
//  3. Build() - the orchestrator hands every assembled target here
//
// # Thread Safety
//
// Driver implementations are used by a single build invocation at a time;
// DefaultFlags returns state owned by that invocation and must not be
// shared across concurrent builds.
type Driver interface {
	// Name returns the human-readable name of this driver.
	//
	// The name is used in error messages and logs. Examples: "Gcc", "Clang".
	Name() string

	// Family returns the toolchain family this driver belongs to.
	//
	// The family decides which base flag table applies and how the
	// embedded version macro is quoted.
	Family() ToolchainFamily

	// Compile performs a compile-only invocation of one translation unit
	// with the given extra flags appended.
	//
	// A non-nil error means the toolchain rejected the invocation. No
	// artifact is kept; probing uses this to test flag acceptance.
	Compile(ctx context.Context, source string, extraFlags []string) error

	// DefaultFlags returns the driver's mutable default compile flag set.
	//
	// The set is owned by the current build invocation. Flag resolution
	// removes known-incompatible legacy flags from it in place.
	DefaultFlags() *FlagSet

	// Build compiles and links one finished build target.
	//
	// The target's argument lists are complete at this point and must not
	// be mutated. Returns:
	//   - BuildResult with Success=true and Artifacts list on success
	//   - BuildResult with Success=false and Error on failure
	Build(ctx context.Context, config *BuildConfig, target *BuildTarget) (*BuildResult, error)
}
