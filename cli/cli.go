package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"lovedays/counter"
	"lovedays/debug"
	"lovedays/tui"
)

func newRootCommand(opts *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lovedays",
		Short: "Count the days until a date or since a date",
		Long: `
lovedays counts down to a chosen date or up from one, refreshing every second.
Without a command it opens the full-screen interface.
`,
		Args:              cobra.NoArgs,
		SilenceErrors:     true,
		SilenceUsage:      true,
		DisableAutoGenTag: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runUI(opts)
		},
	}

	opts.AddFlags(cmd.PersistentFlags())
	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.AddCommand(
		newCounterCommand(opts, counter.Countdown),
		newCounterCommand(opts, counter.Elapsed),
		newLanguagesCommand(opts),
	)
	return cmd
}

func runUI(opts *GlobalOptions) error {
	loc, err := opts.Localizer()
	if err != nil {
		return err
	}
	accent, err := tui.ResolveAccent(opts.Accent)
	if err != nil {
		return errors.Wrap(err, "--accent")
	}
	return opts.launch(tui.Options{
		Localizer: loc,
		Styles:    tui.NewStyles(accent),
		Clock:     opts.clock,
	})
}

func newCounterCommand(opts *GlobalOptions, mode counter.Mode) *cobra.Command {
	use, short := "until DATE", "Print the time left until DATE (YYYY-MM-DD)"
	if mode == counter.Elapsed {
		use, short = "since DATE", "Print the time passed since DATE (YYYY-MM-DD)"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := counter.ParseDate(args[0])
			if err != nil {
				return err
			}
			loc, err := opts.Localizer()
			if err != nil {
				return err
			}

			b, ok := counter.Compute(mode, date, opts.clock.Now())
			debug.Log("%v %v: %+v ok=%v", mode, date, b, ok)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), tui.StatusLine(loc, mode, b, ok))
			return err
		},
	}
}

func newLanguagesCommand(opts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the available display languages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loc, err := opts.Localizer()
			if err != nil {
				return err
			}
			catalog := loc.Catalog()
			for _, code := range catalog.Codes() {
				t, _ := catalog.Table(code)
				marker := " "
				if code == loc.Language() {
					marker = "*"
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s  %s\n", marker, code, t.Name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// RunCLI parses args and runs the selected command. Without a command the
// interface is launched.
func RunCLI(args []string) error {
	cmd := newRootCommand(newGlobalOptions())
	cmd.SetArgs(args)
	return cmd.Execute()
}
