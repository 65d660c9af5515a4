package render

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/vango-dev/collate/pkg/scope"
	"github.com/vango-dev/collate/pkg/vdom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables pretty-printed HTML output with indentation.
	// Should only be used in development as it increases output size.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string

	// Logger receives debug-level render summaries.
	// Defaults to slog.Default().
	Logger *slog.Logger

	// Tracer creates a "render" span per RenderContext call.
	// Defaults to a no-op tracer.
	Tracer trace.Tracer
}

// Stats counts the nodes emitted by the last render pass.
type Stats struct {
	Elements   int
	Components int
	MaxDepth   int
}

// Renderer handles server-side rendering of VNode trees to HTML.
//
// A Renderer is not safe for concurrent use; create one per request.
type Renderer struct {
	config RendererConfig
	logger *slog.Logger
	tracer trace.Tracer
	stats  Stats
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	tracer := config.Tracer
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("collate/render")
	}
	return &Renderer{
		config: config,
		logger: logger.With("component", "render"),
		tracer: tracer,
	}
}

// RenderToString renders a VNode tree to an HTML string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a VNode tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	return r.RenderContext(context.Background(), w, node)
}

// RenderContext streams a VNode tree to w inside a "render" span.
//
// Each call is an independent render pass: component scopes are created
// under a fresh pass root (parented to the caller's current scope, if any)
// and disposed when the pass completes. Panics raised by components are
// not recovered.
func (r *Renderer) RenderContext(ctx context.Context, w io.Writer, node *vdom.VNode) error {
	_, span := r.tracer.Start(ctx, "render")
	defer span.End()

	r.stats = Stats{}
	start := time.Now()

	pass := scope.NewOwner(scope.Current())
	defer pass.Dispose()

	var err error
	scope.WithOwner(pass, func() {
		err = r.renderNode(w, node, 0)
	})

	span.SetAttributes(
		attribute.Int("render.elements", r.stats.Elements),
		attribute.Int("render.components", r.stats.Components),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	r.logger.Debug("render complete",
		"elements", r.stats.Elements,
		"components", r.stats.Components,
		"max_depth", r.stats.MaxDepth,
		"duration", time.Since(start),
	)
	return nil
}

// Stats returns the node counts of the most recent render pass.
func (r *Renderer) Stats() Stats {
	return r.stats
}

// renderNode dispatches rendering based on node kind.
func (r *Renderer) renderNode(w io.Writer, node *vdom.VNode, depth int) error {
	if node == nil {
		return nil
	}
	if depth > r.stats.MaxDepth {
		r.stats.MaxDepth = depth
	}

	switch node.Kind {
	case vdom.KindElement:
		return r.renderElement(w, node, depth)
	case vdom.KindText:
		return r.renderText(w, node)
	case vdom.KindFragment:
		return r.renderFragment(w, node, depth)
	case vdom.KindComponent:
		return r.renderComponent(w, node, depth)
	case vdom.KindRaw:
		return r.renderRaw(w, node)
	default:
		return fmt.Errorf("render: unknown node kind: %d", node.Kind)
	}
}

// renderElement renders an HTML element with its attributes and children.
func (r *Renderer) renderElement(w io.Writer, node *vdom.VNode, depth int) error {
	tag := node.Tag
	r.stats.Elements++

	if r.config.Pretty && depth > 0 {
		if err := r.writeIndent(w, depth); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "<%s", tag); err != nil {
		return err
	}
	if err := r.renderAttributes(w, node); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	if isVoidElement(tag) {
		return r.writeNewline(w)
	}

	hasBlockChildren := len(node.Children) > 0 && !isInlineElement(tag)
	if hasBlockChildren {
		if err := r.writeNewline(w); err != nil {
			return err
		}
	}

	for _, child := range node.Children {
		if err := r.renderNode(w, child, depth+1); err != nil {
			return err
		}
	}

	if r.config.Pretty && hasBlockChildren {
		if err := r.writeIndent(w, depth); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "</%s>", tag); err != nil {
		return err
	}
	return r.writeNewline(w)
}

// renderText renders a text node with HTML escaping.
func (r *Renderer) renderText(w io.Writer, node *vdom.VNode) error {
	_, err := io.WriteString(w, escapeHTML(node.Text))
	return err
}

// renderFragment renders a fragment's children without a wrapper element.
func (r *Renderer) renderFragment(w io.Writer, node *vdom.VNode, depth int) error {
	for _, child := range node.Children {
		if err := r.renderNode(w, child, depth); err != nil {
			return err
		}
	}
	return nil
}

// renderComponent renders a component inside a new child scope. Its output
// is rendered inside the same scope, so values a component stores on its
// scope are visible to everything it renders and nothing else.
func (r *Renderer) renderComponent(w io.Writer, node *vdom.VNode, depth int) error {
	if node.Comp == nil {
		return nil
	}
	r.stats.Components++

	owner := scope.NewOwner(scope.Current())
	var err error
	scope.WithOwner(owner, func() {
		err = r.renderNode(w, node.Comp.Render(), depth)
	})
	return err
}

// renderRaw renders raw HTML without escaping.
func (r *Renderer) renderRaw(w io.Writer, node *vdom.VNode) error {
	_, err := io.WriteString(w, node.Text)
	return err
}

// renderAttributes renders all attributes for an element in key order.
func (r *Renderer) renderAttributes(w io.Writer, node *vdom.VNode) error {
	if len(node.Props) == 0 {
		return nil
	}

	keys := make([]string, 0, len(node.Props))
	for key := range node.Props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := node.Props[key]

		// Internal props
		if strings.HasPrefix(key, "_") || key == "key" {
			continue
		}
		if isFunc(value) {
			continue
		}

		name := key
		switch key {
		case "className":
			name = "class"
		case "htmlFor":
			name = "for"
		}

		if isBooleanAttr(name) {
			if b, ok := value.(bool); ok {
				if b {
					if _, err := fmt.Fprintf(w, " %s", name); err != nil {
						return err
					}
				}
				continue
			}
		}

		if s := attrToString(value); s != "" {
			if _, err := fmt.Fprintf(w, ` %s="%s"`, name, escapeAttr(s)); err != nil {
				return err
			}
		}
	}
	return nil
}

// isFunc reports whether value is a function; functions are never
// serialized as attributes.
func isFunc(value any) bool {
	if value == nil {
		return false
	}
	return strings.HasPrefix(fmt.Sprintf("%T", value), "func")
}

// attrToString converts an attribute value to a string.
func attrToString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case int:
		return fmt.Sprintf("%d", v)
	case int64:
		return fmt.Sprintf("%d", v)
	case float64:
		return fmt.Sprintf("%g", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// writeIndent writes indentation for pretty printing.
func (r *Renderer) writeIndent(w io.Writer, depth int) error {
	for i := 0; i < depth; i++ {
		if _, err := io.WriteString(w, r.config.Indent); err != nil {
			return err
		}
	}
	return nil
}

// writeNewline ends a line in pretty mode and is a no-op otherwise.
func (r *Renderer) writeNewline(w io.Writer) error {
	if !r.config.Pretty {
		return nil
	}
	_, err := io.WriteString(w, "\n")
	return err
}
