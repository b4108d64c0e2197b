// Command perfmode switches the keyboard backlight, fan profile and thermal
// policy of ASUS laptops through the asus-nb-wmi or faustus sysfs files.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// errUsageShown is returned after the usage text is printed. It maps to
// exit status 1 without an error message.
var errUsageShown = errors.New("usage shown")

func main() {
	log := newLogger(os.Stderr, zerolog.WarnLevel)
	c := newController("/", osProber{}, log)
	os.Exit(execute(c, os.Args, os.Stdout, os.Stderr))
}

// The operator flags use a single dash with long names (-fan, -thermal),
// so argv is parsed before cobra runs and the command gets no arguments.
// This keeps cobra's hidden completion commands out of the grammar.
func newRootCmd(c *controller, name string, o Operator, op Operation) *cobra.Command {
	return &cobra.Command{
		Use:                name + " -option arg",
		Short:              "Manage performance mode of your asus laptop",
		Args:               cobra.NoArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if o == OpHelp {
				printUsage(cmd.OutOrStdout())
				return errUsageShown
			}
			c.log.Debug().Str("operator", o.String()).Str("operation", op.String()).Msg("parsed command")
			msg, err := c.run(o, op)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
}

// execute runs the tool against argv and returns the process exit status.
func execute(c *controller, argv []string, stdout, stderr io.Writer) int {
	name := "perfmode"
	err := func() error {
		o, op, err := parseArgs(argv)
		if err != nil {
			c.log.Debug().Strs("argv", argv).Msg("rejected arguments")
			return err
		}
		cmd := newRootCmd(c, name, o, op)
		cmd.SetArgs([]string{})
		cmd.SetOut(stdout)
		cmd.SetErr(stderr)
		return cmd.Execute()
	}()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsageShown):
		return 1
	}
	fmt.Fprintf(stderr, "%s: %s\n", name, err)
	return 1
}
