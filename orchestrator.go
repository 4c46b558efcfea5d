package cppext

import (
	"context"
	"io/fs"
	"path/filepath"
)

// Orchestrator assembles finished build-target descriptions from the
// declarative manifest and hands them to a compiler driver.
//
// # Assembly Order
//
//  1. Ensure the vendored bundle is extracted.
//  2. Resolve compile and link flags once for the active toolchain
//     (standard selection and hardening probes happen here).
//  3. For each declared module, compute the ordered include directory
//     list and the dependency file list, then attach the resolved flags.
//
// # Thread Safety
//
// An Orchestrator belongs to a single build invocation. The driver's flag
// state it mutates during resolution is owned by that invocation.
type Orchestrator struct {
	manifest *Manifest
	driver   Driver
	host     HostInfo

	// binding holds the binding generator's include locations. Lazy by
	// default: the generator is only queried when a driver consumes the
	// include list.
	binding []IncludePath
}

// NewOrchestrator creates an orchestrator for one build invocation.
func NewOrchestrator(manifest *Manifest, driver Driver, host HostInfo) *Orchestrator {
	return &Orchestrator{
		manifest: manifest,
		driver:   driver,
		host:     host,
		binding:  BindingIncludes("python3"),
	}
}

// SetBindingIncludes replaces the binding generator include locations.
// Used when the generator lives behind a different interpreter, and by
// tests.
func (o *Orchestrator) SetBindingIncludes(includes []IncludePath) {
	o.binding = includes
}

// AssembleTargets produces one finished BuildTarget per declared module.
//
// The vendored bundle is extracted first; ErrArchiveMissing aborts the
// build. Flag resolution runs once and the resulting argument lists are
// attached to every target; ErrToolchainUnsupported aborts the build.
func (o *Orchestrator) AssembleTargets(ctx context.Context) ([]*BuildTarget, error) {
	if err := o.manifest.Bundle().EnsureExtracted(); err != nil {
		return nil, err
	}

	policy := FlagPolicy{Version: o.manifest.Version}
	compileArgs, linkArgs, err := policy.Resolve(ctx, o.driver, o.host)
	if err != nil {
		return nil, err
	}

	targets := make([]*BuildTarget, 0, len(o.manifest.Modules))
	for _, module := range o.manifest.Modules {
		fixed := o.manifest.includeRoots(module)

		includes := make([]IncludePath, 0, len(o.binding)+len(fixed))
		includes = append(includes, o.binding...)
		for _, dir := range fixed {
			includes = append(includes, FixedInclude(dir))
		}

		targets = append(targets, &BuildTarget{
			Name:        module.Name,
			Sources:     append([]string{}, module.Sources...),
			IncludeDirs: includes,
			DependFiles: collectDependFiles(fixed),
			CompileArgs: append([]string{}, compileArgs...),
			LinkArgs:    append([]string{}, linkArgs...),
		})
	}

	return targets, nil
}

// BuildAll assembles every target and hands each to the driver in
// sequence.
//
// Processing is fully sequential. If config.StopOnFailure is set,
// processing stops after the first failed module; otherwise all modules
// are attempted and the first error is returned alongside the full result
// list. Context cancellation stops processing immediately.
func (o *Orchestrator) BuildAll(ctx context.Context, config *BuildConfig) ([]*BuildResult, error) {
	targets, err := o.AssembleTargets(ctx)
	if err != nil {
		return nil, err
	}

	var results []*BuildResult
	var firstError error

	for _, target := range targets {
		if ctxErr := ctx.Err(); ctxErr != nil {
			if firstError == nil {
				firstError = ctxErr
			}
			results = append(results, &BuildResult{Success: false, Error: ctxErr})
			break
		}

		result, err := o.driver.Build(ctx, config, target)
		if err != nil {
			if firstError == nil {
				firstError = err
			}
			if result == nil {
				result = &BuildResult{Success: false, Error: err}
			}
		}

		results = append(results, result)

		if !result.Success && config.StopOnFailure {
			break
		}
	}

	return results, firstError
}

// collectDependFiles recursively walks the fixed include directories and
// returns every entry that is not itself a directory. The list is used
// purely for build-staleness tracking, not compilation. Directories that
// do not exist yet contribute nothing.
func collectDependFiles(dirs []string) []string {
	var files []string

	for _, dir := range dirs {
		_ = filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return nil //nolint:nilerr // unreadable entries are simply not tracked
			}
			if !entry.IsDir() {
				files = append(files, path)
			}
			return nil
		})
	}

	return files
}
