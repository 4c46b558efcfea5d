package cppext

import (
	"archive/tar"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// ArchiveBundle describes one bundled third-party source archive and the
// vendored directory tree it expands into.
//
// The archive is located by globbing Pattern inside Dir. Extraction is
// idempotent: once Dest exists the bundle is treated as pre-existing
// vendored source and never re-extracted.
type ArchiveBundle struct {
	Dir     string // directory searched for the archive
	Pattern string // archive filename glob, e.g. "boost*.tar.gz"
	Dest    string // destination directory for the extracted tree
}

// EnsureExtracted materializes the bundle into Dest if it is not already
// present.
//
// If Dest exists the call is a no-op. Otherwise exactly one archive is
// expected to match Dir/Pattern; zero matches fail with ErrArchiveMissing.
// When several files match, the first in directory-listing order is used.
func (b *ArchiveBundle) EnsureExtracted() error {
	if info, err := os.Stat(b.Dest); err == nil && info.IsDir() {
		return nil
	}

	pattern := filepath.Join(b.Dir, b.Pattern)
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return zerr.Wrap(err, "invalid archive pattern")
	}
	if len(matches) == 0 {
		return zerr.With(ErrArchiveMissing, "pattern", pattern)
	}

	return extractTarGz(matches[0], b.Dest)
}

// extractTarGz expands a gzip-compressed tar archive into dest. The
// archive handles are released on every exit path, including extraction
// failure.
func extractTarGz(archivePath, dest string) error {
	file, err := os.Open(archivePath)
	if err != nil {
		return zerr.Wrap(err, "failed to open archive")
	}
	defer file.Close()

	gz, err := gzip.NewReader(file)
	if err != nil {
		return zerr.Wrap(err, "failed to read archive compression header")
	}
	defer gz.Close()

	reader := tar.NewReader(gz)
	for {
		header, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return zerr.Wrap(err, "failed to read archive entry")
		}

		target, err := vendoredPath(dest, header.Name)
		if err != nil {
			return err
		}

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0o755); err != nil {
				return zerr.Wrap(err, "failed to create vendored directory")
			}
		case tar.TypeReg:
			if err := writeVendoredFile(target, reader, header.FileInfo().Mode()); err != nil {
				return err
			}
		case tar.TypeSymlink:
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return zerr.Wrap(err, "failed to create vendored directory")
			}
			if err := os.Symlink(header.Linkname, target); err != nil {
				return zerr.Wrap(err, "failed to create vendored symlink")
			}
		default:
			// Device nodes and other special entries are not part of
			// source archives; skip them.
		}
	}

	return nil
}

// vendoredPath joins an archive entry name onto dest and rejects entries
// that would escape the destination directory.
func vendoredPath(dest, name string) (string, error) {
	target := filepath.Join(dest, filepath.FromSlash(name))
	clean := filepath.Clean(target)

	base := filepath.Clean(dest)
	if clean != base && !strings.HasPrefix(clean, base+string(os.PathSeparator)) {
		return "", zerr.With(ErrUnsafeArchivePath, "entry", name)
	}

	return clean, nil
}

func writeVendoredFile(target string, reader io.Reader, mode os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return zerr.Wrap(err, "failed to create vendored directory")
	}

	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode.Perm())
	if err != nil {
		return zerr.Wrap(err, "failed to create vendored file")
	}

	if _, err := io.Copy(out, reader); err != nil { //nolint:gosec // bundled archives are trusted build inputs
		out.Close()
		return zerr.Wrap(err, "failed to write vendored file")
	}

	return out.Close()
}
