package cmd

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/nestkit/create-module/internal/version"
)

// NewRootCmd creates the create-module command working on the OS filesystem.
func NewRootCmd() *cobra.Command {
	return newRootCmd(afero.NewOsFs())
}

func newRootCmd(fsys afero.Fs) *cobra.Command {
	flags := &rootFlags{}
	info := version.Get()

	rootCmd := &cobra.Command{
		Use:   "create-module <module-name>",
		Short: "Scaffold a layered NestJS module",
		Long: `create-module generates a NestJS module split into application, domain,
infrastructure and presentation layers, then registers it in app.module.ts.

The module is written to the first existing container directory under the
source directory (features or modules by default). With --add-tsconfig-path
generated files import each other through an @/<module> alias, which is
added to tsconfig.json.`,
		Example: `  # Generate src/modules/users
  create-module users

  # Use a different entity name and the @/billing alias
  create-module billing --entity invoice --add-tsconfig-path

  # Preview without writing
  create-module orders --dry-run`,
		Version:       info.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return usageError(err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, fsys, flags, args[0])
		},
	}

	rootCmd.SetVersionTemplate(info.String() + "\n")
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})
	flags.register(rootCmd.Flags())

	return rootCmd
}
