package cppext

import "go.trai.ch/zerr"

var (
	// ErrToolchainUnsupported is returned when no candidate language-standard
	// flag is accepted by the active compiler. This is fatal: the build
	// cannot proceed without at least C++11 support.
	ErrToolchainUnsupported = zerr.New("unsupported compiler, at least C++11 support is needed")

	// ErrArchiveMissing is returned when no bundled archive matches the
	// vendored source pattern. Fatal: the build cannot proceed without the
	// vendored sources.
	ErrArchiveMissing = zerr.New("no bundled archive matches pattern")

	// ErrUnsafeArchivePath is returned when an archive entry would escape
	// the destination directory.
	ErrUnsafeArchivePath = zerr.New("archive entry escapes destination directory")

	// ErrManifestRead is returned when the extension manifest cannot be read.
	ErrManifestRead = zerr.New("failed to read extension manifest")

	// ErrManifestParse is returned when the extension manifest is not valid YAML.
	ErrManifestParse = zerr.New("failed to parse extension manifest")

	// ErrNoModules is returned when the manifest declares no extension modules.
	ErrNoModules = zerr.New("manifest declares no extension modules")

	// ErrNoSources is returned when an extension module declares no source files.
	ErrNoSources = zerr.New("extension module declares no source files")
)
