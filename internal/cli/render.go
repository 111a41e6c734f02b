package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	creditio "github.com/matzehuels/libcredit/pkg/io"
	"github.com/matzehuels/libcredit/pkg/pipeline"
)

// outputExt maps outputs to file extensions.
var outputExt = map[string]string{
	pipeline.OutputText: ".txt",
	pipeline.OutputHTML: ".html",
	pipeline.OutputJSON: ".json",
	pipeline.OutputDOT:  ".dot",
	pipeline.OutputSVG:  ".svg",
}

// creditFlags holds the flags shared by render and fetch.
type creditFlags struct {
	formats  string            // comma-separated outputs
	output   string            // output file (single format) or base path (multiple)
	subject  string            // subject IRI or "_:label"
	depth    int               // rendered source levels
	maxDepth int               // resolved source levels
	lang     string            // catalog language
	markup   map[string]string // markup element overrides
	links    bool              // diagram node hyperlinks
	noCache  bool
}

func (f *creditFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.formats, "format", "f", "", "output format(s): text (default), html, json, dot, svg (comma-separated)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (single format) or base path (multiple); default stdout")
	cmd.Flags().StringVarP(&f.subject, "subject", "s", "", "subject IRI or _:label (default: the document's dc:source)")
	cmd.Flags().IntVarP(&f.depth, "depth", "d", 1, "source levels to render")
	cmd.Flags().IntVar(&f.maxDepth, "max-depth", 0, "source levels to resolve (default 16)")
	cmd.Flags().StringVarP(&f.lang, "lang", "l", "", "message language, e.g. sv")
	cmd.Flags().StringToStringVar(&f.markup, "markup", nil, "HTML element overrides, e.g. root=figcaption,title_class=t")
	cmd.Flags().BoolVar(&f.links, "links", false, "add title links to dot/svg nodes")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")
}

// apply merges the flags that were set into opts.
func (f *creditFlags) apply(cmd *cobra.Command, opts *pipeline.Options) error {
	opts.Outputs = parseFormats(f.formats)
	opts.Subject = f.subject
	if cmd.Flags().Changed("depth") {
		opts.SourceDepth = &f.depth
	}
	if cmd.Flags().Changed("max-depth") {
		opts.MaxDepth = f.maxDepth
	}
	if cmd.Flags().Changed("lang") {
		opts.Language = f.lang
	}
	if len(f.markup) > 0 {
		cfg, err := opts.Markup.With(f.markup)
		if err != nil {
			return err
		}
		opts.Markup = cfg
	}
	opts.Diagram.Links = f.links
	opts.Diagram.Labels = true
	return nil
}

// parseFormats parses the --format flag into a slice of outputs.
// If empty, defaults to ["text"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.DefaultOutput}
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, strings.ToLower(f))
		}
	}
	return out
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		flags creditFlags
		input string
		base  string
	)

	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Render the credit of a graph file",
		Long: `Render reads a graph (JSON triples, N-Triples, YAML or an HTML page) and
prints the credit of its subject. Without a file, or with "-", the graph is
read from standard input.

The input format is taken from --input or the file extension.`,
		Example: `  credit render photo.yaml
  credit render photo.nt --lang sv --depth 2
  curl -s https://example.org/photo | credit render - --input html --base https://example.org/photo
  credit render photo.json -f html,svg -o credit`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			opts := c.baseOptions(cmd.Context())
			if err := flags.apply(cmd, &opts); err != nil {
				return err
			}
			opts.Base = base

			format, err := inputFormat(path, input)
			if err != nil {
				return err
			}
			opts.Format = format
			return c.runRender(cmd.Context(), cmd.InOrStdin(), path, opts, &flags)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&input, "input", "i", "", "input format: json, nt, yaml, html (default: from extension)")
	cmd.Flags().StringVar(&base, "base", "", "document base IRI (page URL for html input)")

	return cmd
}

// inputFormat resolves the input format from the flag or the file name.
// Standard input defaults to JSON.
func inputFormat(path, flag string) (string, error) {
	if flag != "" {
		return strings.ToLower(flag), nil
	}
	if path == "-" {
		return pipeline.DefaultFormat, nil
	}
	if f, ok := creditio.FormatFromPath(path); ok {
		return f, nil
	}
	return "", fmt.Errorf("cannot infer input format of %s; use --input (%s)", path, strings.Join(creditio.Formats, ", "))
}

func (c *CLI) runRender(ctx context.Context, stdin io.Reader, path string, opts pipeline.Options, flags *creditFlags) error {
	src := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		src = f
	}

	runner, err := c.newRunner(ctx, flags.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	res, err := runner.Execute(ctx, src, opts)
	if err != nil {
		return err
	}
	return c.writeResult(res, opts.Outputs, flags.output)
}

// writeResult prints artifacts to stdout or writes them to files. With
// several outputs and a path, each file gets its format's extension.
func (c *CLI) writeResult(res *pipeline.Result, outputs []string, output string) error {
	if output == "" {
		for i, o := range outputs {
			if i > 0 {
				fmt.Fprintln(c.stdout)
			}
			data := res.Artifacts[o]
			if _, err := c.stdout.Write(data); err != nil {
				return err
			}
			if len(data) > 0 && data[len(data)-1] != '\n' {
				fmt.Fprintln(c.stdout)
			}
		}
		return nil
	}

	for _, o := range outputs {
		path := output
		if len(outputs) > 1 {
			path = basePath(output) + outputExt[o]
		}
		if err := writeFile(path, res.Artifacts[o]); err != nil {
			return err
		}
		printFile(path)
	}
	printStats(res.Stats.RecordCount, res.Stats.TripleCount, res.CacheInfo.RenderHit)
	return nil
}

// basePath strips a known output extension from output.
func basePath(output string) string {
	ext := filepath.Ext(output)
	for _, known := range outputExt {
		if strings.EqualFold(ext, known) {
			return strings.TrimSuffix(output, ext)
		}
	}
	return output
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
