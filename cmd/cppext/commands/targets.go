package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cppext "github.com/contriboss/cpp-extension-go"
)

func (c *CLI) newTargetsCmd() *cobra.Command {
	var (
		manifestPath string
		toolset      string
	)

	cmd := &cobra.Command{
		Use:   "targets",
		Short: "Assemble and print the build-target descriptions without compiling",
		RunE: func(cmd *cobra.Command, _ []string) error {
			manifest, err := cppext.LoadManifest(manifestPath)
			if err != nil {
				return err
			}

			host := cppext.DetectHost()
			if toolset != "" {
				host.ToolsetVersion = toolset
			}

			orch := cppext.NewOrchestrator(manifest, cppext.NewGccDriver(), host)
			targets, err := orch.AssembleTargets(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, target := range targets {
				_, _ = fmt.Fprintf(out, "target %s\n", target.Name)
				_, _ = fmt.Fprintf(out, "  sources:      %v\n", target.Sources)
				_, _ = fmt.Fprintf(out, "  compile args: %v\n", target.CompileArgs)
				_, _ = fmt.Fprintf(out, "  link args:    %v\n", target.LinkArgs)
				_, _ = fmt.Fprintf(out, "  depend files: %d (digest %s)\n",
					len(target.DependFiles), cppext.DependDigest(target.DependFiles))

				for _, include := range target.IncludeDirs {
					dir, err := include.Resolve()
					if err != nil {
						dir = fmt.Sprintf("<unresolved: %v>", err)
					}
					_, _ = fmt.Fprintf(out, "  include:      %s\n", dir)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "extension.yaml", "Path to the extension manifest")
	cmd.Flags().StringVar(&toolset, "toolset", os.Getenv("CPPEXT_TOOLSET"), "Toolset version for version-macro quoting")

	return cmd
}
