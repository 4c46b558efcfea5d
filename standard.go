package cppext

import "context"

// standardCandidates are the language-standard flags tried during
// selection, newest first.
var standardCandidates = []string{"-std=c++14", "-std=c++11"}

// SelectStandard returns the newest language-standard flag the toolchain
// accepts.
//
// Candidates are probed newest-to-oldest and the first accepted flag is
// returned without testing the rest. If no candidate is supported the
// build cannot proceed and ErrToolchainUnsupported is returned.
func SelectStandard(ctx context.Context, driver Driver) (string, error) {
	for _, flag := range standardCandidates {
		if TestFlag(ctx, driver, flag) {
			return flag, nil
		}
	}
	return "", ErrToolchainUnsupported
}
