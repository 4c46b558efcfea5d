package cppext

import (
	"context"
	"os"
)

// probeSource is the minimal translation unit compiled during flag probes.
const probeSource = "int main (int argc, char **argv) { return 0; }\n"

// TestFlag reports whether the toolchain behind driver accepts a single
// candidate compiler flag.
//
// A minimal translation unit is written to a fresh temporary file and
// compiled once with the candidate flag appended. A compile failure is the
// expected negative outcome and maps to false; any other failure during
// the probe (temporary file creation, toolchain startup) also yields
// false. Nothing here is treated as fatal.
//
// The temporary file is removed on every exit path, including probe
// failure.
func TestFlag(ctx context.Context, driver Driver, flag string) bool {
	file, err := os.CreateTemp("", "cppext-probe-*.cpp")
	if err != nil {
		return false
	}
	name := file.Name()
	defer os.Remove(name)

	_, writeErr := file.WriteString(probeSource)
	if closeErr := file.Close(); writeErr != nil || closeErr != nil {
		return false
	}

	return driver.Compile(ctx, name, []string{flag}) == nil
}
