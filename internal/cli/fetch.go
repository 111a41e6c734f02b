package cli

import (
	"bytes"
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apierrors "github.com/matzehuels/libcredit/pkg/errors"
	creditio "github.com/matzehuels/libcredit/pkg/io"
	"github.com/matzehuels/libcredit/pkg/pipeline"
)

// fetchCommand creates the fetch command, which renders the credit found in
// a web page's metadata.
func (c *CLI) fetchCommand() *cobra.Command {
	var (
		flags   creditFlags
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "fetch <url>",
		Short: "Render the credit described by a web page",
		Long: `Fetch downloads a page and reads the Open Graph, Twitter, Dublin Core,
ccREL and Flickr meta tags, license links and title it carries. Pages are
cached; use --refresh to download again.`,
		Example: `  credit fetch https://www.flickr.com/photos/someone/123/
  credit fetch https://example.org/photo -f json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := apierrors.ValidateURL(args[0]); err != nil {
				return err
			}
			opts := c.baseOptions(cmd.Context())
			if err := flags.apply(cmd, &opts); err != nil {
				return err
			}
			opts.Format = creditio.FormatHTML
			opts.Base = args[0]
			return c.runFetch(cmd.Context(), args[0], refresh, opts, &flags)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the page cache")

	return cmd
}

func (c *CLI) runFetch(ctx context.Context, url string, refresh bool, opts pipeline.Options, flags *creditFlags) error {
	runner, err := c.newRunner(ctx, flags.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	spin := newSpinnerWithContext(ctx, "Fetching "+url)
	spin.Start()
	prog := newProgress(loggerFromContext(ctx))
	page, err := c.newFetcher(runner).Page(ctx, url, refresh)
	spin.Stop()
	if err != nil {
		return fmt.Errorf("fetch %s: %w", url, err)
	}
	prog.done(fmt.Sprintf("Fetched %d bytes", len(page)))

	res, err := runner.Execute(ctx, bytes.NewReader(page), opts)
	if err != nil {
		return err
	}
	return c.writeResult(res, opts.Outputs, flags.output)
}
