package cppext

import (
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Manifest is the declarative description of a native extension build.
//
// One manifest describes the whole build: the version string embedded
// into every module, the bundled archive that provides the vendored
// sources, the vendored include roots, and the modules to compile.
//
// # Example
//
//	name: pycopulib
//	version: 0.6.1
//	vendor:
//	  dir: lib
//	  archive: boost*.tar.gz
//	  dest: lib/boost
//	  includes:
//	    - lib/boost
//	    - lib/eigen
//	    - lib/eigen/unsupported
//	    - lib/vinecopulib/include
//	    - lib/wdm/include
//	modules:
//	  - name: pycopulib
//	    sources:
//	      - src/main.cpp
type Manifest struct {
	Name    string       `yaml:"name"`
	Version string       `yaml:"version"`
	Vendor  VendorSpec   `yaml:"vendor"`
	Modules []ModuleSpec `yaml:"modules"`

	// dir is the directory holding the manifest file. Relative vendor and
	// include paths are interpreted against it.
	dir string
}

// VendorSpec describes the bundled archive and the vendored include roots.
type VendorSpec struct {
	Dir      string   `yaml:"dir"`      // directory holding the bundled archive
	Archive  string   `yaml:"archive"`  // archive filename glob
	Dest     string   `yaml:"dest"`     // extraction destination
	Includes []string `yaml:"includes"` // vendored include roots, in order
}

// ModuleSpec describes one extension module to compile.
type ModuleSpec struct {
	Name     string   `yaml:"name"`
	Sources  []string `yaml:"sources"`
	Includes []string `yaml:"includes"` // extra include roots for this module
}

// defaultVendorIncludes are the vendored library roots assumed when the
// manifest leaves the include list empty: the numerics library, its
// unsupported extensions, the statistical-modeling headers and the
// dependence-measure headers.
var defaultVendorIncludes = []string{
	"lib/boost",
	"lib/eigen",
	"lib/eigen/unsupported",
	"lib/vinecopulib/include",
	"lib/wdm/include",
}

// LoadManifest reads and parses the extension manifest at path, filling
// unset vendor fields with the bundled-library defaults.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.Wrap(err, ErrManifestRead.Error())
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, zerr.Wrap(err, ErrManifestParse.Error())
	}

	manifest.dir = filepath.Dir(path)
	manifest.applyDefaults()
	if err := manifest.validate(); err != nil {
		return nil, err
	}

	return &manifest, nil
}

// Dir returns the directory the manifest was loaded from, which anchors
// every relative path it declares. Empty for manifests built in code.
func (m *Manifest) Dir() string {
	return m.dir
}

// resolvePath anchors a manifest-relative path at the manifest directory.
func (m *Manifest) resolvePath(rel string) string {
	if filepath.IsAbs(rel) || m.dir == "" {
		return rel
	}
	return filepath.Join(m.dir, rel)
}

func (m *Manifest) applyDefaults() {
	if m.Vendor.Dir == "" {
		m.Vendor.Dir = "lib"
	}
	if m.Vendor.Archive == "" {
		m.Vendor.Archive = "boost*.tar.gz"
	}
	if m.Vendor.Dest == "" {
		m.Vendor.Dest = "lib/boost"
	}
	if len(m.Vendor.Includes) == 0 {
		m.Vendor.Includes = append([]string{}, defaultVendorIncludes...)
	}
}

func (m *Manifest) validate() error {
	if len(m.Modules) == 0 {
		return zerr.With(ErrNoModules, "manifest", m.Name)
	}
	for _, module := range m.Modules {
		if len(module.Sources) == 0 {
			return zerr.With(ErrNoSources, "module", module.Name)
		}
	}
	return nil
}

// Bundle returns the archive bundle declared by the manifest, with paths
// anchored at the manifest directory.
func (m *Manifest) Bundle() *ArchiveBundle {
	return &ArchiveBundle{
		Dir:     m.resolvePath(m.Vendor.Dir),
		Pattern: m.Vendor.Archive,
		Dest:    m.resolvePath(m.Vendor.Dest),
	}
}

// includeRoots returns the fixed include roots for one module, vendored
// roots first, anchored at the manifest directory and deduplicated.
func (m *Manifest) includeRoots(module ModuleSpec) []string {
	var roots []string
	for _, dir := range m.Vendor.Includes {
		roots = append(roots, m.resolvePath(dir))
	}
	for _, dir := range module.Includes {
		roots = append(roots, m.resolvePath(dir))
	}
	return uniqueStrings(roots)
}
