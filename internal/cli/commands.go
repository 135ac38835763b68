package cli

import "github.com/spf13/cobra"

func (a *application) newRootCmd(build BuildInfo) *cobra.Command {
	root := &cobra.Command{
		Use:     "meow [flags] <INPUT>",
		Short:   "A flexible file processing tool",
		Long:    "meow reads INPUT and transforms it according to the configured mode.",
		Version: build.String(),
		Args:    cobra.ExactArgs(1),

		PersistentPreRunE: a.setup,
		RunE:              a.runProcess,

		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.PersistentFlags().StringVarP(&a.inv.ConfigPath, "config", "c", "", "Sets a custom config file")
	root.PersistentFlags().CountVarP(&a.inv.Verbose, "verbose", "v", "Sets the level of verbosity (repeatable)")

	root.AddCommand(a.newTestCmd())
	root.AddCommand(a.newConfigCmd())

	return root
}

func (a *application) newTestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test [flags] <INPUT>",
		Short: "Controls testing features",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runTests,
	}

	cmd.Flags().BoolVarP(&a.inv.Debug, "debug", "d", false, "Print debug information")
	return cmd
}

func (a *application) newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config <INPUT>",
		Short: "Show current configuration",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runConfig,
	}
}
