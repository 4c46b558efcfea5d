package cppext

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// BuildError creates a standardized build error with output context.
//
// The driver name, the underlying error and the captured compiler output
// are folded into one message so failures are debuggable from the error
// alone.
func BuildError(driver string, output []string, err error) error {
	outputStr := strings.Join(output, "\n")

	var prefix string
	if err != nil {
		prefix = fmt.Sprintf("%s build failed: %v", driver, err)
	} else {
		prefix = fmt.Sprintf("%s build failed", driver)
	}

	if outputStr != "" {
		return fmt.Errorf("%s\n\nBuild output:\n%s", prefix, outputStr)
	}

	return fmt.Errorf("%s", prefix)
}

// installArtifacts copies built modules into config.DestPath and returns
// the installed paths. Without a destination the artifacts stay where the
// driver wrote them.
func installArtifacts(config *BuildConfig, built []string) ([]string, error) {
	if config.DestPath == "" {
		return built, nil
	}

	dest := config.DestPath
	if !filepath.IsAbs(dest) && config.ProjectDir != "" {
		dest = filepath.Join(config.ProjectDir, dest)
	}

	var installed []string
	for _, artifact := range built {
		target := filepath.Join(dest, filepath.Base(artifact))
		if err := copyFile(artifact, target); err != nil {
			return nil, err
		}
		installed = append(installed, target)
	}

	return installed, nil
}

func copyFile(srcPath, destPath string) error {
	info, err := os.Stat(srcPath)
	if err != nil {
		return err
	}

	if mkErr := os.MkdirAll(filepath.Dir(destPath), 0o755); mkErr != nil {
		return mkErr
	}

	in, err := os.Open(srcPath)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode())
	if err != nil {
		return err
	}

	if _, err = io.Copy(out, in); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}

func uniqueStrings(values []string) []string {
	seen := make(map[string]struct{})
	var result []string

	for _, value := range values {
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		result = append(result, value)
	}

	return result
}
