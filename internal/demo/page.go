package demo

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/collate"
	"github.com/vango-dev/collate/internal/errors"
	"github.com/vango-dev/collate/pkg/render"
	"github.com/vango-dev/collate/pkg/vdom"
)

var greetings = map[string]string{
	"en": "Hello",
	"de": "Hallo",
	"fr": "Bonjour",
	"es": "Hola",
}

// Probe renders the ambient A, B and C values as a JSON object.
func Probe() *vdom.VNode {
	return vdom.Comp(vdom.Func(func() *vdom.VNode {
		data, err := json.Marshal(map[string]string{
			"a": A.Use(),
			"b": B.Use(),
			"c": C.Use(),
		})
		if err != nil {
			return vdom.Text(err.Error())
		}
		return vdom.Div(vdom.Class("probe"), string(data))
	}))
}

// Greeting greets the ambient User in the ambient Locale.
func Greeting() *vdom.VNode {
	return vdom.Comp(vdom.Func(func() *vdom.VNode {
		locale := Locale.Use()
		hello, ok := greetings[locale]
		if !ok {
			hello = greetings["en"]
		}
		return vdom.P(vdom.Class("greeting"), vdom.Lang(locale), hello+", "+User.Use())
	}))
}

// Page renders the greeting and the probe inside stack.
func Page(stack collate.Collator[Props], props Props) *vdom.VNode {
	return stack.Build()(props, vdom.Main(Greeting(), Probe()))
}

// Options controls RenderHTML.
type Options struct {
	Layers []string
	Props  Props

	// Fragment skips the document shell.
	Fragment bool

	Title  string
	Lang   string
	Pretty bool

	Logger *slog.Logger
	Tracer trace.Tracer
}

// RenderHTML composes opts.Layers and writes the rendered page to w.
func RenderHTML(ctx context.Context, w io.Writer, opts Options) (render.Stats, error) {
	stack, err := Stack(opts.Layers)
	if err != nil {
		return render.Stats{}, err
	}

	renderer := render.NewRenderer(render.RendererConfig{
		Pretty: opts.Pretty,
		Logger: opts.Logger,
		Tracer: opts.Tracer,
	})
	body := Page(stack, opts.Props)

	if opts.Fragment {
		err = renderer.RenderContext(ctx, w, body)
	} else {
		lang := opts.Lang
		if opts.Props.Locale != "" {
			lang = opts.Props.Locale
		}
		err = renderer.RenderPageContext(ctx, w, render.PageData{
			Body:  body,
			Title: opts.Title,
			Lang:  lang,
			Meta:  []render.MetaTag{{Name: "generator", Content: "collate"}},
		})
	}
	if err != nil {
		return renderer.Stats(), errors.FromError(err, errors.CodeRenderFailed)
	}
	return renderer.Stats(), nil
}
