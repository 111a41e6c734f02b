package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/libcredit/pkg/license"
)

// licenseCommand creates the license command.
func (c *CLI) licenseCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "license <url>...",
		Short: "Print the short name of license URLs",
		Example: `  credit license http://creativecommons.org/licenses/by-sa/3.0/
  credit license --strict https://creativecommons.org/publicdomain/zero/1.0/`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			unknown := 0
			for _, u := range args {
				name := license.Name(u)
				if !license.Known(u) {
					unknown++
				}
				if len(args) == 1 {
					fmt.Fprintln(c.stdout, name)
					continue
				}
				fmt.Fprintf(c.stdout, "%s\t%s\n", u, name)
			}
			if strict && unknown > 0 {
				return fmt.Errorf("%d unrecognized license URL(s)", unknown)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail when a URL is not a recognized license")

	return cmd
}
