package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chriso345/decorum/display"
	"github.com/chriso345/decorum/user"
)

// NewDescribeCommand creates the describe command, which outlines the User type.
func NewDescribeCommand(root *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "Describe the members and policies of the User type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), display.Describe(user.Type(), root.Config.Color))
			return err
		},
	}
}

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the decorum version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), display.Version("decorum", Version))
			return err
		},
	}
}
