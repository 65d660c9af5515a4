package demo

import (
	"fmt"
	"strings"

	"github.com/vango-dev/collate"
	"github.com/vango-dev/collate/internal/errors"
	"github.com/vango-dev/collate/pkg/scope"
	"github.com/vango-dev/collate/pkg/vdom"
)

// Contexts provided by the demo layers.
var (
	A = scope.CreateContext("")
	B = scope.CreateContext("")
	C = scope.CreateContext("")

	Theme  = scope.CreateContext("light")
	Locale = scope.CreateContext("en")
	User   = scope.CreateContext("guest")
)

// Props feeds every layer of the demo stack.
type Props struct {
	A      string `json:"a"`
	B      string `json:"b"`
	C      string `json:"c"`
	Theme  string `json:"theme"`
	Locale string `json:"locale"`
	User   string `json:"user"`
}

// DefaultProps returns the props used when nothing overrides them.
func DefaultProps() Props {
	return Props{A: "a", B: "b", C: "c", Theme: "light", Locale: "en", User: "guest"}
}

// PropsFromMap overrides DefaultProps with the non-empty values of m.
// Keys are the lower-case field names; unknown keys are ignored.
func PropsFromMap(m map[string]string) Props {
	p := DefaultProps()
	for k, v := range m {
		if v == "" {
			continue
		}
		switch strings.ToLower(k) {
		case "a":
			p.A = v
		case "b":
			p.B = v
		case "c":
			p.C = v
		case "theme":
			p.Theme = v
		case "locale":
			p.Locale = v
		case "user":
			p.User = v
		}
	}
	return p
}

// Layer is a named provider layer.
type Layer struct {
	Name        string
	Description string
	Render      collate.RenderFunc[Props]
}

var registry = []Layer{
	{
		Name:        "theme",
		Description: "provides Theme and wraps children in a themed div",
		Render: func(p Props, children *vdom.VNode) *vdom.VNode {
			return Theme.Provider(p.Theme,
				vdom.Div(vdom.Class("theme-"+p.Theme), vdom.Data("theme", p.Theme), children))
		},
	},
	{
		Name:        "locale",
		Description: "provides Locale",
		Render: func(p Props, children *vdom.VNode) *vdom.VNode {
			return Locale.Provider(p.Locale, children)
		},
	},
	{
		Name:        "user",
		Description: "provides User",
		Render: func(p Props, children *vdom.VNode) *vdom.VNode {
			return User.Provider(p.User, children)
		},
	},
	{
		Name:        "c",
		Description: "provides C",
		Render: func(p Props, children *vdom.VNode) *vdom.VNode {
			return C.Provider(p.C, children)
		},
	},
	{
		Name:        "b",
		Description: "provides B",
		Render: func(p Props, children *vdom.VNode) *vdom.VNode {
			return B.Provider(p.B, children)
		},
	},
	{
		Name:        "a",
		Description: "provides A joined with the ambient B",
		Render: func(p Props, children *vdom.VNode) *vdom.VNode {
			// B is read when this node renders, not when the layer runs.
			return vdom.Comp(vdom.Func(func() *vdom.VNode {
				return A.Provider(p.A+B.Use(), children)
			}))
		},
	},
}

// Layers returns every registered layer in default stacking order,
// outermost first.
func Layers() []Layer {
	out := make([]Layer, len(registry))
	copy(out, registry)
	return out
}

// LayerNames returns the names of Layers.
func LayerNames() []string {
	names := make([]string, len(registry))
	for i, l := range registry {
		names[i] = l.Name
	}
	return names
}

// Lookup finds a layer by name.
func Lookup(name string) (Layer, bool) {
	for _, l := range registry {
		if l.Name == name {
			return l, true
		}
	}
	return Layer{}, false
}

// Stack composes the named layers, outermost first. No names means every
// registered layer.
func Stack(names []string) (collate.Collator[Props], error) {
	if len(names) == 0 {
		names = LayerNames()
	}

	stack := collate.New[Props]()
	for _, name := range names {
		layer, ok := Lookup(strings.TrimSpace(name))
		if !ok {
			return collate.Collator[Props]{}, errors.New(errors.CodeUnknownLayer).
				WithDetail(fmt.Sprintf("No layer named %q.", name)).
				WithSuggestion("Available layers: " + strings.Join(LayerNames(), ", "))
		}
		stack = stack.Add(layer.Render)
	}
	return stack, nil
}

// SplitNames parses a comma separated layer list, dropping blanks.
func SplitNames(s string) []string {
	var names []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, part)
		}
	}
	return names
}
