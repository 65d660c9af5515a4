package demo

import (
	"bytes"
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vango-dev/collate/internal/errors"
	"github.com/vango-dev/collate/pkg/vtest"
)

// =============================================================================
// Props and Layers
// =============================================================================

func TestPropsFromMap(t *testing.T) {
	got := PropsFromMap(map[string]string{"A": "1", "theme": "dark", "user": "", "other": "x"})
	want := Props{A: "1", B: "b", C: "c", Theme: "dark", Locale: "en", User: "guest"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("PropsFromMap() mismatch (-want +got):\n%s", diff)
	}
}

func TestLayerNames(t *testing.T) {
	want := []string{"theme", "locale", "user", "c", "b", "a"}
	if diff := cmp.Diff(want, LayerNames()); diff != "" {
		t.Errorf("LayerNames() mismatch (-want +got):\n%s", diff)
	}
	if _, ok := Lookup("nope"); ok {
		t.Error("Lookup(nope) should fail")
	}
}

func TestSplitNames(t *testing.T) {
	if diff := cmp.Diff([]string{"c", "b", "a"}, SplitNames(" c, b,,a ")); diff != "" {
		t.Errorf("SplitNames() mismatch (-want +got):\n%s", diff)
	}
	if got := SplitNames(""); got != nil {
		t.Errorf("SplitNames(\"\") = %v, want nil", got)
	}
}

func TestStack(t *testing.T) {
	stack, err := Stack(nil)
	if err != nil {
		t.Fatalf("Stack(nil) error: %v", err)
	}
	if stack.Len() != len(LayerNames()) {
		t.Errorf("default stack has %d layers, want %d", stack.Len(), len(LayerNames()))
	}

	_, err = Stack([]string{"c", "bogus"})
	if !stderrors.Is(err, errors.New(errors.CodeUnknownLayer)) {
		t.Fatalf("Stack(bogus) error = %v, want unknown layer", err)
	}
	if !strings.Contains(err.Error(), "bogus") {
		t.Errorf("error should name the layer: %v", err)
	}
}

// =============================================================================
// Rendering
// =============================================================================

func TestPageProviders(t *testing.T) {
	stack, err := Stack([]string{"c", "b", "a"})
	if err != nil {
		t.Fatal(err)
	}

	screen := vtest.Render(t, Page(stack, DefaultProps()))
	want := `<main><p class="greeting" lang="en">Hello, guest</p>` +
		`<div class="probe">{&quot;a&quot;:&quot;ab&quot;,&quot;b&quot;:&quot;b&quot;,&quot;c&quot;:&quot;c&quot;}</div></main>`
	if diff := cmp.Diff(want, screen.FirstChild()); diff != "" {
		t.Errorf("FirstChild() mismatch (-want +got):\n%s", diff)
	}

	screen.Rerender(Page(stack, Props{A: "1", B: "2", C: "3"}))
	if !strings.Contains(screen.HTML(), `{&quot;a&quot;:&quot;12&quot;,&quot;b&quot;:&quot;2&quot;,&quot;c&quot;:&quot;3&quot;}`) {
		t.Errorf("rerender did not update providers: %s", screen.HTML())
	}
}

func TestPageWithoutBLayer(t *testing.T) {
	stack, err := Stack([]string{"a"})
	if err != nil {
		t.Fatal(err)
	}
	vtest.ExpectContains(t, Page(stack, DefaultProps()),
		`{&quot;a&quot;:&quot;a&quot;,&quot;b&quot;:&quot;&quot;,&quot;c&quot;:&quot;&quot;}`)
}

func TestGreeting(t *testing.T) {
	stack, err := Stack([]string{"theme", "locale", "user"})
	if err != nil {
		t.Fatal(err)
	}
	props := PropsFromMap(map[string]string{"theme": "dark", "locale": "de", "user": "ada"})

	node := Page(stack, props)
	vtest.ExpectContains(t, node, `<div class="theme-dark" data-theme="dark">`)
	vtest.ExpectContains(t, node, `<p class="greeting" lang="de">Hallo, ada</p>`)

	props.Locale = "xx"
	vtest.ExpectContains(t, Page(stack, props), `lang="xx">Hello, ada</p>`)
}

func TestRenderHTML(t *testing.T) {
	t.Run("document", func(t *testing.T) {
		var buf bytes.Buffer
		stats, err := RenderHTML(context.Background(), &buf, Options{
			Props: PropsFromMap(map[string]string{"locale": "fr"}),
			Title: "Demo",
			Lang:  "en",
		})
		if err != nil {
			t.Fatalf("RenderHTML() error: %v", err)
		}
		html := buf.String()
		for _, want := range []string{
			"<!DOCTYPE html>",
			`<html lang="fr">`,
			"<title>Demo</title>",
			`<meta name="generator" content="collate">`,
			"Bonjour, guest",
		} {
			if !strings.Contains(html, want) {
				t.Errorf("missing %q in:\n%s", want, html)
			}
		}
		if stats.Components == 0 || stats.Elements == 0 {
			t.Errorf("expected non-zero stats, got %+v", stats)
		}
	})

	t.Run("fragment", func(t *testing.T) {
		var buf bytes.Buffer
		if _, err := RenderHTML(context.Background(), &buf, Options{
			Layers:   []string{"c", "b", "a"},
			Props:    DefaultProps(),
			Fragment: true,
		}); err != nil {
			t.Fatalf("RenderHTML() error: %v", err)
		}
		if strings.Contains(buf.String(), "<html") {
			t.Errorf("fragment should not include the document shell: %s", buf.String())
		}
		if !strings.HasPrefix(buf.String(), "<main>") {
			t.Errorf("fragment = %s", buf.String())
		}
	})

	t.Run("unknown layer", func(t *testing.T) {
		_, err := RenderHTML(context.Background(), &bytes.Buffer{}, Options{Layers: []string{"zzz"}})
		if !stderrors.Is(err, errors.New(errors.CodeUnknownLayer)) {
			t.Errorf("RenderHTML() error = %v", err)
		}
	})

	t.Run("write error", func(t *testing.T) {
		_, err := RenderHTML(context.Background(), failingWriter{}, Options{Fragment: true})
		if !stderrors.Is(err, errors.New(errors.CodeRenderFailed)) {
			t.Errorf("RenderHTML() error = %v, want render failed", err)
		}
	})
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, stderrors.New("disk full") }
