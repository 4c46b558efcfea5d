package cppext

import (
	"os/exec"
	"strings"

	"go.trai.ch/zerr"
)

// IncludePath is one entry in a build target's include directory list.
//
// Most entries are fixed vendored paths known at configuration time. The
// binding generator's include directories are different: the generator may
// not be installed yet when the build description is declared, so those
// entries carry a resolver that is invoked only at the moment the include
// list is actually consumed.
type IncludePath struct {
	path    string
	resolve func() (string, error)
}

// FixedInclude returns an IncludePath for a directory known up front.
func FixedInclude(path string) IncludePath {
	return IncludePath{path: path}
}

// LazyInclude returns an IncludePath whose directory is produced by
// resolve when the include list is consumed.
func LazyInclude(resolve func() (string, error)) IncludePath {
	return IncludePath{resolve: resolve}
}

// Resolve returns the include directory, invoking the resolver for lazy
// entries.
func (p IncludePath) Resolve() (string, error) {
	if p.resolve != nil {
		return p.resolve()
	}
	return p.path, nil
}

// Lazy reports whether the entry is resolved at consumption time.
func (p IncludePath) Lazy() bool {
	return p.resolve != nil
}

// BindingIncludes returns the binding generator's system-wide and
// user-local include directories, each resolved lazily through the given
// interpreter. The generator is only queried when a driver consumes the
// include list, so declaring a build before the generator is installed
// works.
func BindingIncludes(interpreter string) []IncludePath {
	return []IncludePath{
		LazyInclude(func() (string, error) { return queryBindingInclude(interpreter, false) }),
		LazyInclude(func() (string, error) { return queryBindingInclude(interpreter, true) }),
	}
}

func queryBindingInclude(interpreter string, user bool) (string, error) {
	script := "import pybind11; print(pybind11.get_include())"
	if user {
		script = "import pybind11; print(pybind11.get_include(True))"
	}

	out, err := exec.Command(interpreter, "-c", script).Output()
	if err != nil {
		return "", zerr.Wrap(err, "binding generator include lookup failed")
	}

	return strings.TrimSpace(string(out)), nil
}
