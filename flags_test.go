package cppext

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countOf(args []string, flag string) int {
	n := 0
	for _, arg := range args {
		if arg == flag {
			n++
		}
	}
	return n
}

func TestResolveFlagsMSVC(t *testing.T) {
	tests := []struct {
		name      string
		toolset   string
		wantMacro string
	}{
		{
			name:      "old toolset uses escaped quoting",
			toolset:   "14.16",
			wantMacro: `/DVERSION_INFO=\"1.2.3\"`,
		},
		{
			name:      "unknown toolset uses escaped quoting",
			toolset:   "",
			wantMacro: `/DVERSION_INFO=\"1.2.3\"`,
		},
		{
			name:      "threshold toolset uses plain quoting",
			toolset:   "14.20",
			wantMacro: `-DVERSION_INFO="1.2.3"`,
		},
		{
			name:      "newer toolset uses plain quoting",
			toolset:   "15.0",
			wantMacro: `-DVERSION_INFO="1.2.3"`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			driver := newFakeDriver(FamilyMSVC)
			policy := FlagPolicy{Version: "1.2.3"}

			compileArgs, linkArgs, err := policy.Resolve(context.Background(),
				driver, HostInfo{OS: "windows", ToolsetVersion: tc.toolset})

			require.NoError(t, err)
			assert.Equal(t, []string{"/EHsc", tc.wantMacro}, compileArgs)
			assert.Empty(t, linkArgs)
			assert.Empty(t, driver.probed, "msvc-like family is never probed")
		})
	}
}

func TestResolveFlagsUnix(t *testing.T) {
	driver := newFakeDriver(FamilyUnix, "-std=c++14", "-fvisibility=hidden")
	policy := FlagPolicy{Version: "0.6.1"}

	compileArgs, linkArgs, err := policy.Resolve(context.Background(),
		driver, HostInfo{OS: "linux"})

	require.NoError(t, err)
	assert.Equal(t, []string{`-DVERSION_INFO="0.6.1"`, "-std=c++14", "-fvisibility=hidden"}, compileArgs)
	assert.Empty(t, linkArgs)
}

func TestResolveFlagsUnixMacroAlwaysPlain(t *testing.T) {
	// The toolset threshold only matters for msvc-like toolchains.
	driver := newFakeDriver(FamilyUnix, "-std=c++14")
	policy := FlagPolicy{Version: "0.6.1"}

	compileArgs, _, err := policy.Resolve(context.Background(),
		driver, HostInfo{OS: "linux", ToolsetVersion: "1.0"})

	require.NoError(t, err)
	assert.Contains(t, compileArgs, `-DVERSION_INFO="0.6.1"`)
}

func TestResolveFlagsUnixWithoutVisibilitySupport(t *testing.T) {
	driver := newFakeDriver(FamilyUnix, "-std=c++11")
	policy := FlagPolicy{Version: "0.6.1"}

	compileArgs, _, err := policy.Resolve(context.Background(),
		driver, HostInfo{OS: "linux"})

	require.NoError(t, err)
	assert.NotContains(t, compileArgs, "-fvisibility=hidden")
	assert.Contains(t, compileArgs, "-std=c++11")
}

func TestResolveFlagsUnsupportedToolchain(t *testing.T) {
	driver := newFakeDriver(FamilyUnix)
	policy := FlagPolicy{Version: "0.6.1"}

	_, _, err := policy.Resolve(context.Background(), driver, HostInfo{OS: "linux"})

	require.ErrorIs(t, err, ErrToolchainUnsupported)
}

func TestResolveFlagsDarwin(t *testing.T) {
	driver := newFakeDriver(FamilyUnix, "-std=c++14")
	policy := FlagPolicy{Version: "0.6.1"}
	host := HostInfo{OS: "darwin"}

	compileArgs, linkArgs, err := policy.Resolve(context.Background(), driver, host)
	require.NoError(t, err)

	for _, flag := range []string{"-stdlib=libc++", "-mmacosx-version-min=10.7"} {
		assert.Equal(t, 1, countOf(compileArgs, flag), "compile args must carry %s exactly once", flag)
		assert.Equal(t, 1, countOf(linkArgs, flag), "link args must carry %s exactly once", flag)
	}

	// Resolution is per-invocation: repeating it yields the same flag set
	// without duplication.
	again, againLink, err := policy.Resolve(context.Background(), driver, host)
	require.NoError(t, err)
	assert.Equal(t, compileArgs, again)
	assert.Equal(t, linkArgs, againLink)
}

func TestResolveFlagsRemovesLegacyFlag(t *testing.T) {
	driver := newFakeDriver(FamilyUnix, "-std=c++14")
	driver.defaults = NewFlagSet("-O2", "-Wstrict-prototypes")
	policy := FlagPolicy{Version: "0.6.1"}

	_, _, err := policy.Resolve(context.Background(), driver, HostInfo{OS: "linux"})

	require.NoError(t, err)
	assert.False(t, driver.defaults.Contains("-Wstrict-prototypes"))
	assert.True(t, driver.defaults.Contains("-O2"), "other default flags stay untouched")
}

func TestResolveFlagsLegacyFlagAbsent(t *testing.T) {
	driver := newFakeDriver(FamilyUnix, "-std=c++14")
	driver.defaults = NewFlagSet("-O2")
	policy := FlagPolicy{Version: "0.6.1"}

	_, _, err := policy.Resolve(context.Background(), driver, HostInfo{OS: "linux"})

	require.NoError(t, err)
	assert.Equal(t, []string{"-O2"}, driver.defaults.Slice(), "absent legacy flag removal is a no-op")
}

func TestResolveFlagsNilDefaults(t *testing.T) {
	driver := newFakeDriver(FamilyMSVC)
	driver.defaults = nil
	policy := FlagPolicy{Version: "0.6.1"}

	_, _, err := policy.Resolve(context.Background(), driver, HostInfo{OS: "windows"})

	require.NoError(t, err, "drivers without a default flag set are fine")
}
