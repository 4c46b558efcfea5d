// Package cppext provides build configuration for native C++ extension modules.
//
// The package turns a single declarative manifest into finished build-target
// descriptions: it probes the active compiler for flag support, selects the
// best supported language standard, resolves platform-specific compile and
// link flags, extracts bundled third-party source archives into a vendored
// tree, and assembles include paths and dependency files for each module.
// The finished targets are handed to a compiler driver for actual
// compilation and linking.
//
// # Basic Usage
//
// Load the manifest, pick a driver and assemble the targets:
//
//	manifest, err := cppext.LoadManifest("extension.yaml")
//	if err != nil {
//	    return err
//	}
//
//	driver := cppext.NewGccDriver()
//	orch := cppext.NewOrchestrator(manifest, driver, cppext.DetectHost())
//
//	targets, err := orch.AssembleTargets(ctx)
//	if err != nil {
//	    return err
//	}
//
//	config := &cppext.BuildConfig{ProjectDir: ".", Verbose: true}
//	results, err := orch.BuildAll(ctx, config)
//
// # Architecture
//
// The orchestrator composes four small pieces:
//
//	Orchestrator
//	├── ArchiveBundle    (vendored source extraction, idempotent)
//	├── FlagPolicy       (per-invocation platform flag resolution)
//	│   ├── SelectStandard (newest supported -std= flag)
//	│   └── TestFlag       (trial compilation of a single flag)
//	└── Driver           (toolchain abstraction: gcc-compatible or msvc-like)
//
// Flag probing and archive extraction are both idempotent: repeating either
// operation produces the same flag set or directory tree without error or
// duplication.
//
// # Requirements
//
// Requires Go 1.25 or later.
//
// # Platform Support
//
// Full support on Linux and macOS with gcc-compatible toolchains. The
// msvc-like flag tables are produced for Windows builds but the bundled
// driver only speaks the gcc command line.
package cppext
