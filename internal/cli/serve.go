package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/libcredit/pkg/fetch"
	"github.com/matzehuels/libcredit/pkg/server"
)

// serveCommand creates the serve command running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		redis   string
		noFetch bool
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the credit HTTP API",
		Long: `Serve runs the HTTP API:

  GET  /healthz
  GET  /v1/license?url=...
  POST /v1/credit?format=...&input=...
  GET  /v1/credit/page?url=...

With --redis (or redis_addr in the config file) pages and rendered credits
are cached in Redis and shared between instances.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if redis != "" {
				c.Config.RedisAddr = redis
			}
			ctx := cmd.Context()
			runner, err := c.newRunner(ctx, noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			var fetcher *fetch.Client
			if !noFetch {
				fetcher = c.newFetcher(runner)
			}
			s := server.New(runner, fetcher, loggerFromContext(ctx))
			s.Defaults = c.baseOptions(ctx)
			s.Defaults.Logger = nil

			switch {
			case noCache:
				printWarning("Caching disabled")
			case c.Config.RedisAddr != "":
				printKeyValue("cache", "redis "+c.Config.RedisAddr)
			default:
				dir, _ := cacheDir()
				printKeyValue("cache", dir)
			}
			printInfo("Listening on %s", StyleLink.Render("http://"+displayAddr(addr)))
			return s.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&redis, "redis", "", "Redis address or URL for a shared cache")
	cmd.Flags().BoolVar(&noFetch, "no-fetch", false, "disable /v1/credit/page")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
