package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/libcredit/pkg/credit"
	apierrors "github.com/matzehuels/libcredit/pkg/errors"
	"github.com/matzehuels/libcredit/pkg/i18n"
	"github.com/matzehuels/libcredit/pkg/render/diagram"
	"github.com/matzehuels/libcredit/pkg/render/markup"
	"github.com/matzehuels/libcredit/pkg/render/object"
	"github.com/matzehuels/libcredit/pkg/render/text"
)

// Render produces one output for c. A nil tr renders untranslated
// messages.
func Render(ctx context.Context, c *credit.Credit, output string, tr i18n.Translator, opts Options) ([]byte, error) {
	fopts := []credit.FormatOption{
		credit.WithSourceDepth(opts.Depth()),
		credit.WithTranslator(tr),
	}
	format := func(f credit.Formatter) error {
		if err := credit.Format(c, f, fopts...); err != nil {
			return apierrors.Wrap(apierrors.ErrCodeInvalidTemplate, err, "cannot format credit")
		}
		return nil
	}

	switch output {
	case OutputText:
		f := text.New()
		if err := format(f); err != nil {
			return nil, err
		}
		return []byte(f.Text()), nil

	case OutputHTML:
		f := markup.NewHTML(opts.Markup)
		if err := format(f); err != nil {
			return nil, err
		}
		s, err := f.HTML()
		if err != nil {
			return nil, fmt.Errorf("render html: %w", err)
		}
		return []byte(s), nil

	case OutputJSON:
		f := object.New()
		if err := format(f); err != nil {
			return nil, err
		}
		return f.JSON()

	case OutputDOT, OutputSVG:
		f := diagram.New(opts.Diagram)
		if err := format(f); err != nil {
			return nil, err
		}
		if output == OutputDOT {
			return []byte(f.DOT()), nil
		}
		svg, err := diagram.RenderSVGContext(ctx, f.DOT())
		if err != nil {
			return nil, apierrors.Wrap(apierrors.ErrCodeInternal, err, "cannot render svg")
		}
		return svg, nil

	default:
		return nil, ValidateOutput(output)
	}
}
