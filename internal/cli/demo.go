package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/chriso345/decorum/core"
	"github.com/chriso345/decorum/internal/logging"
	"github.com/chriso345/decorum/user"
)

// DemoOptions are the values the demo user is built from.
type DemoOptions struct {
	Username     string
	Email        string
	AddressLine1 string
	AddressLine2 string
	Country      string
}

// NewDemoCommand creates the demo command: build a user, fill in the
// address, call the deprecated address() and print the record.
func NewDemoCommand(root *RootOptions) *cobra.Command {
	opts := &DemoOptions{}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Build an example user and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Username, "username", "uut", "user name (required, non-empty)")
	cmd.Flags().StringVar(&opts.Email, "email", "example@example.com", "email address (required, non-empty)")
	cmd.Flags().StringVar(&opts.AddressLine1, "line1", "1, New Avenue", "first address line")
	cmd.Flags().StringVar(&opts.AddressLine2, "line2", "Bahcelievler, Istanbul", "second address line")
	cmd.Flags().StringVar(&opts.Country, "country", "", "country")

	return cmd
}

func runDemo(cmd *cobra.Command, root *RootOptions, opts *DemoOptions) error {
	out := cmd.OutOrStdout()
	notifier := core.LogNotifier{Logger: logging.ConsoleTo(out)}

	t, err := user.Define(core.WithNotifier(notifier))
	if err != nil {
		return err
	}
	u, err := user.NewOf(t, opts.Username, opts.Email)
	if err != nil {
		return err
	}
	root.Logger.Debug("user created", zap.String("type", t.Name()), zap.Bool("frozen", t.IsFrozen()))

	u.SetAddressLine1(opts.AddressLine1)
	u.SetAddressLine2(opts.AddressLine2)
	u.SetCountry(opts.Country)
	u.Address()

	return writeRecord(out, root.Config.Output, u)
}
