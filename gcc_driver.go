package cppext

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// GccDriver drives a gcc-compatible C++ compiler (g++, clang++).
//
// Probing invocations compile the translation unit to a discarded object
// file. Build invocations follow the usual two-phase shape: compile every
// source to an object under build/, then link the objects into a shared
// module named <target>.so. Python loads extension modules with the .so
// suffix on both Linux and macOS, so the driver does not emit .dylib.
type GccDriver struct {
	// CXX is the compiler binary. Defaults to $CXX, then a platform pick.
	CXX string

	defaults *FlagSet
}

// NewGccDriver creates a driver for the host's gcc-compatible compiler.
// The default flag set is seeded from $CXXFLAGS, which is where legacy
// C-oriented flags like -Wstrict-prototypes tend to leak in from.
func NewGccDriver() *GccDriver {
	return &GccDriver{
		CXX:      defaultCompiler(),
		defaults: NewFlagSet(strings.Fields(os.Getenv("CXXFLAGS"))...),
	}
}

// Name returns the driver name
func (d *GccDriver) Name() string {
	return "Gcc"
}

// Family returns the toolchain family
func (d *GccDriver) Family() ToolchainFamily {
	return FamilyUnix
}

// DefaultFlags returns the mutable default compile flag set
func (d *GccDriver) DefaultFlags() *FlagSet {
	return d.defaults
}

// RequiredTools returns the tools needed for gcc-compatible builds
func (d *GccDriver) RequiredTools() []ToolRequirement {
	return []ToolRequirement{
		{
			Name:         "g++",
			Alternatives: []string{"clang++", "c++"},
			Purpose:      "C++ compiler for the extension module",
		},
		{
			Name:         "python3",
			Alternatives: []string{"python"},
			Optional:     true,
			Purpose:      "Binding generator include lookup",
		},
	}
}

// CheckTools verifies that a C++ compiler is available
func (d *GccDriver) CheckTools() error {
	return CheckRequiredTools(d.RequiredTools())
}

// Compile performs a compile-only invocation of one translation unit with
// the extra flags appended. The object output is discarded.
func (d *GccDriver) Compile(ctx context.Context, source string, extraFlags []string) error {
	args := d.defaults.Slice()
	args = append(args, "-c", source, "-o", os.DevNull)
	args = append(args, extraFlags...)

	cmd := exec.CommandContext(ctx, d.CXX, args...) //nolint:gosec // compiler binary comes from trusted build configuration
	return cmd.Run()
}

// Build compiles and links one finished build target.
func (d *GccDriver) Build(ctx context.Context, config *BuildConfig, target *BuildTarget) (*BuildResult, error) {
	result := &BuildResult{
		Success: false,
		Output:  []string{},
	}

	if len(target.Sources) == 0 {
		result.Error = ErrNoSources
		return result, ErrNoSources
	}

	includes, err := target.ResolveIncludes()
	if err != nil {
		result.Error = err
		return result, err
	}

	objects, err := d.compileSources(ctx, config, target, includes, result)
	if err != nil {
		result.Error = err
		return result, err
	}

	artifact, err := d.linkModule(ctx, config, target, objects, result)
	if err != nil {
		result.Error = err
		return result, err
	}

	installed, err := installArtifacts(config, []string{artifact})
	if err != nil {
		result.Error = err
		return result, err
	}

	result.Artifacts = installed
	result.Success = true
	return result, nil
}

// Clean removes the object directory and built module for a target.
func (d *GccDriver) Clean(_ context.Context, config *BuildConfig, target *BuildTarget) error {
	if err := os.RemoveAll(filepath.Join(config.ProjectDir, "build", target.Name)); err != nil {
		return err
	}

	artifact := filepath.Join(config.ProjectDir, target.Name+moduleSuffix())
	if _, err := os.Stat(artifact); os.IsNotExist(err) {
		return nil // Nothing to clean
	}
	return os.Remove(artifact)
}

// compileSources compiles every source file to an object under
// build/<target>/ and returns the object paths.
func (d *GccDriver) compileSources(ctx context.Context, config *BuildConfig, target *BuildTarget, includes []string, result *BuildResult) ([]string, error) {
	objDir := filepath.Join(config.ProjectDir, "build", target.Name)
	if err := os.MkdirAll(objDir, 0o755); err != nil {
		return nil, err
	}

	var objects []string
	for _, source := range target.Sources {
		sourcePath := source
		if !filepath.IsAbs(sourcePath) {
			sourcePath = filepath.Join(config.ProjectDir, source)
		}

		object := filepath.Join(objDir, objectName(source))

		args := d.defaults.Slice()
		for _, dir := range includes {
			args = append(args, "-I"+dir)
		}
		args = append(args, target.CompileArgs...)
		args = append(args, "-fPIC", "-c", sourcePath, "-o", object)

		if err := d.run(ctx, config, args, result); err != nil {
			return nil, BuildError(d.Name(), result.Output, err)
		}

		objects = append(objects, object)
	}

	return objects, nil
}

// linkModule links the objects into the shared extension module.
func (d *GccDriver) linkModule(ctx context.Context, config *BuildConfig, target *BuildTarget, objects []string, result *BuildResult) (string, error) {
	artifact := filepath.Join(config.ProjectDir, target.Name+moduleSuffix())

	args := []string{"-shared", "-o", artifact}
	args = append(args, objects...)
	args = append(args, target.LinkArgs...)

	if runtime.GOOS == "darwin" {
		args = append(args, "-undefined", "dynamic_lookup")
	}

	if err := d.run(ctx, config, args, result); err != nil {
		return "", BuildError(d.Name(), result.Output, err)
	}

	return artifact, nil
}

// run executes one compiler invocation, capturing combined output into
// the result.
func (d *GccDriver) run(ctx context.Context, config *BuildConfig, args []string, result *BuildResult) error {
	cmd := exec.CommandContext(ctx, d.CXX, args...) //nolint:gosec // compiler binary comes from trusted build configuration
	cmd.Dir = config.ProjectDir

	cmd.Env = os.Environ()
	for key, value := range config.Env {
		cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", key, value))
	}

	output, err := cmd.CombinedOutput()
	if lines := strings.TrimSpace(string(output)); lines != "" {
		result.Output = append(result.Output, strings.Split(lines, "\n")...)
	}

	if config.Verbose {
		result.Output = append(result.Output,
			fmt.Sprintf("Running: %s %s", d.CXX, strings.Join(args, " ")))
	}

	return err
}

// objectName derives the object filename for a source file.
func objectName(source string) string {
	base := filepath.Base(source)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".o"
}

// moduleSuffix returns the shared-module filename suffix for the host.
func moduleSuffix() string {
	if runtime.GOOS == "windows" {
		return ".dll"
	}
	// Python recognizes only .so, including on macOS.
	return ".so"
}

// defaultCompiler picks the compiler binary for the host.
func defaultCompiler() string {
	if cxx := os.Getenv("CXX"); cxx != "" {
		return cxx
	}

	switch runtime.GOOS {
	case "darwin", "freebsd":
		return "clang++"
	default:
		return "g++"
	}
}
