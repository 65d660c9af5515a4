package collate_test

import (
	"fmt"

	"github.com/vango-dev/collate"
	"github.com/vango-dev/collate/pkg/render"
	"github.com/vango-dev/collate/pkg/scope"
	"github.com/vango-dev/collate/pkg/vdom"
)

type appProps struct {
	Theme  string
	Locale string
}

var (
	themeContext  = scope.CreateContext("light")
	localeContext = scope.CreateContext("en")
)

func Example() {
	Provider := collate.New[appProps]().
		Add(func(p appProps, children *vdom.VNode) *vdom.VNode {
			return themeContext.Provider(p.Theme, children)
		}).
		Add(func(p appProps, children *vdom.VNode) *vdom.VNode {
			return localeContext.Provider(p.Locale, children)
		}).
		Build()

	badge := vdom.Comp(vdom.Func(func() *vdom.VNode {
		return vdom.Span(vdom.Class("theme-"+themeContext.Use()), localeContext.Use())
	}))

	html, err := render.NewRenderer(render.RendererConfig{}).
		RenderToString(Provider(appProps{Theme: "dark", Locale: "de"}, badge))
	if err != nil {
		panic(err)
	}
	fmt.Println(html)
	// Output: <span class="theme-dark">de</span>
}

func ExampleCollator_Add() {
	layer := func(tag string) collate.RenderFunc[struct{}] {
		return func(_ struct{}, children *vdom.VNode) *vdom.VNode {
			return vdom.CustomElement(tag, children)
		}
	}

	base := collate.New[struct{}]().Add(layer("outer"))
	left := base.Add(layer("left")).Build()
	right := base.Add(layer("right")).Build()

	r := render.NewRenderer(render.RendererConfig{})
	for _, c := range []collate.Component[struct{}]{left, right} {
		html, _ := r.RenderToString(c(struct{}{}, "x"))
		fmt.Println(html)
	}
	// Output:
	// <outer><left>x</left></outer>
	// <outer><right>x</right></outer>
}
