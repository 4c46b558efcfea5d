package cppext

import (
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// DependDigest returns a stable digest over a target's dependency files,
// used purely for build-staleness tracking.
//
// Paths are hashed in sorted order together with their contents, so the
// digest is independent of walk order and changes whenever a tracked file
// changes. Files that disappear between the walk and the digest still
// contribute their path, so removal is detected too.
func DependDigest(files []string) string {
	sorted := append([]string{}, files...)
	sort.Strings(sorted)

	digest := xxhash.New()
	for _, path := range sorted {
		_, _ = digest.WriteString(path)
		_, _ = digest.Write([]byte{0})

		if file, err := os.Open(path); err == nil {
			_, _ = io.Copy(digest, file)
			file.Close()
		}

		_, _ = digest.Write([]byte{0})
	}

	return strconv.FormatUint(digest.Sum64(), 16)
}
