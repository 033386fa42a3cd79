package root

import (
	"github.com/jlh28145/ADB-Bug-Report-Generator/cmd/adbreport/collect"
	"github.com/jlh28145/ADB-Bug-Report-Generator/cmd/adbreport/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for adbreport.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "adbreport",
		Short: "CLI: collect diagnostic artifacts from an attached Android device into a timestamped incident report",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help when no subcommand is provided.
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Subcommands
	cmd.AddCommand(version.VersionCmd)
	cmd.AddCommand(collect.Cmd)

	return cmd
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}
