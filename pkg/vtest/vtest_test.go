package vtest_test

import (
	"testing"

	"github.com/vango-dev/collate/pkg/scope"
	"github.com/vango-dev/collate/pkg/vdom"
	"github.com/vango-dev/collate/pkg/vtest"
)

func TestRenderAndRerender(t *testing.T) {
	greeting := scope.CreateContext("hello")
	probe := vdom.Comp(vdom.Func(func() *vdom.VNode {
		return vdom.P(greeting.Use())
	}))

	screen := vtest.Render(t, greeting.Provider("hi", probe))
	if got := screen.HTML(); got != "<p>hi</p>" {
		t.Errorf("HTML() = %q, want <p>hi</p>", got)
	}

	screen.Rerender(probe)
	if got := screen.HTML(); got != "<p>hello</p>" {
		t.Errorf("HTML() after rerender = %q, want <p>hello</p>", got)
	}
}

func TestRenderRunsComponentsOnce(t *testing.T) {
	renders := 0
	counted := func() *vdom.VNode {
		return vdom.Comp(vdom.Func(func() *vdom.VNode {
			renders++
			return vdom.Div(vdom.Comp(vdom.Func(func() *vdom.VNode {
				renders++
				return vdom.Span("x")
			})))
		}))
	}

	screen := vtest.Render(t, counted())
	if renders != 2 {
		t.Errorf("components ran %d times, want 2", renders)
	}

	if got := screen.FirstChild(); got != "<div><span>x</span></div>" {
		t.Errorf("FirstChild() = %q", got)
	}
	if got := screen.HTML(); got != "<div><span>x</span></div>" {
		t.Errorf("HTML() = %q", got)
	}
	if renders != 2 {
		t.Errorf("reading output re-ran components: %d renders, want 2", renders)
	}

	screen.Rerender(counted())
	if renders != 4 {
		t.Errorf("after Rerender components ran %d times, want 4", renders)
	}
}

func TestFirstChild(t *testing.T) {
	screen := vtest.Render(t, vdom.Fragment(vdom.Fragment(vdom.Div("first")), vdom.Span("second")))
	if got := screen.FirstChild(); got != "<div>first</div>" {
		t.Errorf("FirstChild() = %q, want <div>first</div>", got)
	}
	if got := len(screen.Nodes()); got != 2 {
		t.Errorf("Nodes() len = %d, want 2", got)
	}

	screen.Rerender(vdom.Fragment())
	if got := screen.FirstChild(); got != "" {
		t.Errorf("FirstChild() of empty tree = %q, want empty", got)
	}
	if got := screen.HTML(); got != "" {
		t.Errorf("HTML() of empty tree = %q, want empty", got)
	}
}

func TestExpectHelpers(t *testing.T) {
	node := vdom.Div(vdom.Class("card"), "Welcome Admin")
	vtest.ExpectContains(t, node, "Welcome Admin")
	vtest.ExpectNotContains(t, node, "Login")
	vtest.ExpectHTML(t, node, `<div class="card">Welcome Admin</div>`)
}

func TestRenderToStringError(t *testing.T) {
	if got := vtest.RenderToString(&vdom.VNode{Kind: vdom.VKind(42)}); got != "" {
		t.Errorf("RenderToString() on error = %q, want empty", got)
	}
}
