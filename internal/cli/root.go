package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/libcredit/pkg/buildinfo"
	"github.com/matzehuels/libcredit/pkg/observability"
)

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var (
		verbose    bool
		configFile string
	)

	root := &cobra.Command{
		Use:          "credit",
		Short:        "Credit extracts attribution and license lines from RDF metadata",
		Long:         `Credit reads RDF metadata about a work (a graph file or the meta tags of a web page), resolves its title, creators, license and sources, and renders a credit line as text, HTML, JSON or a Graphviz diagram.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := LogInfo
			if verbose {
				level = LogDebug
				observability.NewLogHooks(c.Logger).Register()
			}
			c.SetLogLevel(level)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger.With("cmd", cmd.Name())))

			path, explicit := configFile, configFile != ""
			if !explicit {
				var err error
				if path, err = configPath(); err != nil {
					return nil
				}
			}
			cfg, err := loadConfig(path, explicit)
			if err != nil {
				return err
			}
			c.Config = cfg
			c.Logger.Debug("loaded config", "path", path)
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/libcredit/config.toml)")

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.fetchCommand())
	root.AddCommand(c.licenseCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}
