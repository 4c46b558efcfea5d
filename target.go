package cppext

// BuildTarget is the complete description of one compiled extension
// module: sources, include paths, dependency files and final compile and
// link arguments.
//
// A target is constructed once per module by the orchestrator. Its
// argument lists are populated exactly once, after which the target is
// handed to the compiler driver and never mutated again.
type BuildTarget struct {
	Name        string        // Module name, also the artifact base name
	Sources     []string      // Translation units, relative to the project root
	IncludeDirs []IncludePath // Ordered include directories, some lazily resolved
	DependFiles []string      // Files tracked for build staleness, not compiled
	CompileArgs []string      // Final extra compile arguments
	LinkArgs    []string      // Final extra link arguments
}

// ResolveIncludes materializes the include directory list in order,
// invoking lazy resolvers. This is the consumption point for the binding
// generator's include locations.
func (t *BuildTarget) ResolveIncludes() ([]string, error) {
	dirs := make([]string, 0, len(t.IncludeDirs))
	for _, include := range t.IncludeDirs {
		dir, err := include.Resolve()
		if err != nil {
			return nil, err
		}
		dirs = append(dirs, dir)
	}
	return dirs, nil
}
