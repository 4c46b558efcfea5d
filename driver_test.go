package cppext

import (
	"context"
	"errors"
)

// fakeDriver scripts flag acceptance so probe-driven code can be tested
// without a real toolchain.
type fakeDriver struct {
	family   ToolchainFamily
	accepted map[string]bool
	defaults *FlagSet

	probed   []string // candidate flags passed to Compile, in order
	sources  []string // translation units passed to Compile
	built    []*BuildTarget
	buildErr error
}

func newFakeDriver(family ToolchainFamily, accepted ...string) *fakeDriver {
	m := make(map[string]bool, len(accepted))
	for _, flag := range accepted {
		m[flag] = true
	}
	return &fakeDriver{family: family, accepted: m, defaults: NewFlagSet()}
}

func (d *fakeDriver) Name() string {
	return "Fake"
}

func (d *fakeDriver) Family() ToolchainFamily {
	return d.family
}

func (d *fakeDriver) DefaultFlags() *FlagSet {
	return d.defaults
}

func (d *fakeDriver) Compile(_ context.Context, source string, extraFlags []string) error {
	d.sources = append(d.sources, source)

	var flag string
	if len(extraFlags) > 0 {
		flag = extraFlags[len(extraFlags)-1]
	}
	d.probed = append(d.probed, flag)

	if d.accepted[flag] {
		return nil
	}
	return errors.New("unrecognized command-line option")
}

func (d *fakeDriver) Build(_ context.Context, _ *BuildConfig, target *BuildTarget) (*BuildResult, error) {
	d.built = append(d.built, target)

	if d.buildErr != nil {
		return &BuildResult{Success: false, Error: d.buildErr}, d.buildErr
	}
	return &BuildResult{Success: true, Artifacts: []string{target.Name + ".so"}}, nil
}
