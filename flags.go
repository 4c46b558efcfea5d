package cppext

import (
	"context"
	"fmt"
)

// legacyStrictPrototypes is inherited by some drivers from C-oriented
// default flag sets and is invalid for C++ translation units.
const legacyStrictPrototypes = "-Wstrict-prototypes"

// visibilityHidden is the optional symbol-visibility hardening flag probed
// for gcc-compatible toolchains.
const visibilityHidden = "-fvisibility=hidden"

// msvcUnquotedToolset is the first msvc-like toolset whose argument
// handling accepts the plain quoted define; older toolsets need the
// backslash-escaped form.
var msvcUnquotedToolset = [2]int{14, 20}

// FlagPolicy resolves the platform- and toolchain-specific compile and
// link flags for one build invocation.
//
// A FlagPolicy is a per-invocation value: its flag tables are built fresh
// on every Resolve call and are never shared between builds, so repeated
// resolution yields the same flag set without duplication.
//
// # Resolution Steps
//
//  1. Base flag tables keyed by toolchain family (/EHsc for msvc-like,
//     nothing for unix-like).
//  2. macOS hosts add the libc++ runtime selection and minimum OS version
//     to the unix-like tables, for both compile and link arguments.
//  3. The VERSION_INFO macro is injected with family-specific quoting:
//     unix-like always uses the plain quoted define, msvc-like switches
//     on the toolset version threshold.
//  4. unix-like additionally receives the selected language-standard flag
//     and, if supported, the symbol-visibility hardening flag.
//  5. The known-incompatible -Wstrict-prototypes flag is removed from the
//     driver's default flag set if present; absence is a no-op.
type FlagPolicy struct {
	// Version is the build-invocation-supplied version string embedded as
	// the VERSION_INFO compile-time macro.
	Version string
}

// Resolve returns the final compile and link argument lists for the given
// driver and host.
//
// Returns ErrToolchainUnsupported if no candidate language-standard flag
// is accepted by a unix-like toolchain.
func (p *FlagPolicy) Resolve(ctx context.Context, driver Driver, host HostInfo) (compileArgs, linkArgs []string, err error) {
	family := driver.Family()

	if family == FamilyMSVC {
		compileArgs = append(compileArgs, "/EHsc")
	}

	if family == FamilyUnix && host.OS == "darwin" {
		darwinFlags := []string{"-stdlib=libc++", "-mmacosx-version-min=10.7"}
		compileArgs = append(compileArgs, darwinFlags...)
		linkArgs = append(linkArgs, darwinFlags...)
	}

	switch family {
	case FamilyUnix:
		compileArgs = append(compileArgs, versionMacro(family, host, p.Version))

		standard, stdErr := SelectStandard(ctx, driver)
		if stdErr != nil {
			return nil, nil, stdErr
		}
		compileArgs = append(compileArgs, standard)

		if TestFlag(ctx, driver, visibilityHidden) {
			compileArgs = append(compileArgs, visibilityHidden)
		}
	case FamilyMSVC:
		compileArgs = append(compileArgs, versionMacro(family, host, p.Version))
	}

	if defaults := driver.DefaultFlags(); defaults != nil && defaults.Contains(legacyStrictPrototypes) {
		defaults.Remove(legacyStrictPrototypes)
	}

	return compileArgs, linkArgs, nil
}

// versionMacro formats the VERSION_INFO define for the given family and
// host. msvc-like toolsets below the threshold need backslash-escaped
// quotes; everything else takes the plain quoted form.
func versionMacro(family ToolchainFamily, host HostInfo, version string) string {
	if family == FamilyMSVC && !toolsetAtLeast(host.ToolsetVersion, msvcUnquotedToolset[0], msvcUnquotedToolset[1]) {
		return fmt.Sprintf(`/DVERSION_INFO=\"%s\"`, version)
	}
	return fmt.Sprintf(`-DVERSION_INFO="%s"`, version)
}
