package vtest

import (
	"strings"
	"testing"

	"github.com/vango-dev/collate/pkg/render"
	"github.com/vango-dev/collate/pkg/vdom"
)

// Screen holds the output of the latest render of a mounted tree.
type Screen struct {
	t        testing.TB
	renderer *render.Renderer
	html     string
	nodes    []*vdom.VNode
}

// Render mounts node and renders it. Rendering errors fail the test.
//
// Example:
//
//	screen := vtest.Render(t, Provider(Props{Theme: "dark"}, Page()))
//	if got := screen.FirstChild(); got != `<main class="dark"></main>` {
//	    t.Errorf("got %s", got)
//	}
func Render(t testing.TB, node *vdom.VNode) *Screen {
	t.Helper()
	s := &Screen{
		t:        t,
		renderer: render.NewRenderer(render.RendererConfig{}),
	}
	s.Rerender(node)
	return s
}

// Rerender replaces the mounted tree with node and renders it again.
// Every render is a fresh pass: no scope state survives from the previous
// one. Each component runs once per pass; HTML, Nodes and FirstChild all
// read that pass's output.
func (s *Screen) Rerender(node *vdom.VNode) {
	s.t.Helper()
	s.nodes = render.Resolve(node)
	html, err := s.renderer.RenderToString(vdom.Fragment(s.nodes))
	if err != nil {
		s.t.Fatalf("vtest: render failed: %v", err)
	}
	s.html = html
}

// HTML returns the full rendered output.
func (s *Screen) HTML() string {
	return s.html
}

// Nodes returns the top-level nodes of the latest render, with components
// expanded and fragments flattened.
func (s *Screen) Nodes() []*vdom.VNode {
	return s.nodes
}

// FirstChild returns the HTML of the first top-level node, or "" when the
// tree rendered nothing.
func (s *Screen) FirstChild() string {
	s.t.Helper()
	if len(s.nodes) == 0 {
		return ""
	}
	html, err := s.renderer.RenderToString(s.nodes[0])
	if err != nil {
		s.t.Fatalf("vtest: render first child failed: %v", err)
	}
	return html
}

// RenderToString renders a VNode and returns the HTML string, or "" when
// rendering fails.
func RenderToString(node *vdom.VNode) string {
	r := render.NewRenderer(render.RendererConfig{})
	html, err := r.RenderToString(node)
	if err != nil {
		return ""
	}
	return html
}

// ExpectContains asserts that rendered output contains expected substring.
func ExpectContains(t testing.TB, node *vdom.VNode, expected string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that rendered output does not contain substring.
func ExpectNotContains(t testing.TB, node *vdom.VNode, unexpected string) {
	t.Helper()
	html := RenderToString(node)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectHTML asserts that node renders to exactly want.
func ExpectHTML(t testing.TB, node *vdom.VNode, want string) {
	t.Helper()
	if got := RenderToString(node); got != want {
		t.Errorf("rendered output mismatch\n got: %s\nwant: %s", truncate(got, 500), truncate(want, 500))
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
