package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	cppext "github.com/contriboss/cpp-extension-go"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	var (
		manifestPath string
		destPath     string
		toolset      string
		verbose      bool
		keepGoing    bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build every extension module declared in the manifest",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))

			manifest, err := cppext.LoadManifest(manifestPath)
			if err != nil {
				return err
			}

			driver := cppext.NewGccDriver()
			if err := driver.CheckTools(); err != nil {
				return fmt.Errorf("build tools missing: %w", err)
			}

			host := cppext.DetectHost()
			if toolset != "" {
				host.ToolsetVersion = toolset
			}

			config := &cppext.BuildConfig{
				ProjectDir:    filepath.Dir(manifestPath),
				DestPath:      destPath,
				Verbose:       verbose,
				StopOnFailure: !keepGoing,
			}

			orch := cppext.NewOrchestrator(manifest, driver, host)
			results, err := orch.BuildAll(cmd.Context(), config)

			out := cmd.OutOrStdout()
			for _, result := range results {
				if verbose {
					for _, line := range result.Output {
						_, _ = fmt.Fprintln(out, line)
					}
				}
				for _, artifact := range result.Artifacts {
					log.Info("built extension module", "artifact", artifact)
				}
			}

			if err != nil {
				return err
			}

			log.Info("build complete", "modules", len(results))
			return nil
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "extension.yaml", "Path to the extension manifest")
	cmd.Flags().StringVarP(&destPath, "dest", "d", "", "Destination directory for built modules")
	cmd.Flags().StringVar(&toolset, "toolset", os.Getenv("CPPEXT_TOOLSET"), "Toolset version for version-macro quoting")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Echo compiler invocations and output")
	cmd.Flags().BoolVarP(&keepGoing, "keep-going", "k", false, "Continue building remaining modules after a failure")

	return cmd
}
