package app

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/bethropolis/dir-tree/internal/config"
)

// NewRootCommand creates and returns the root cobra command for dir-tree
func NewRootCommand(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dir-tree [dir]",
		Short: "Print the filtered file tree of a directory",
		Long: `dir-tree lists a directory as a tree, honouring the .gitignore files
found at every level, and can print the contents of the listed files.

Without a directory argument the directory is asked for when stdin is a
terminal, otherwise the working directory is scanned.`,
		Version:      version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         runRoot,
	}

	config.RegisterFlags(cmd.Flags())
	return cmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultConfigFile
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return err
	}
	if err := cfg.ApplyFlags(cmd.Flags()); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if len(args) == 1 {
		cfg.RootDir = args[0]
	}
	cfg.ResolveColors(os.Stderr)

	a, err := New(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	runErr := a.Run(cmd.Context())
	if err := a.Close(); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}
