package render

import (
	"context"
	"fmt"
	"io"

	"github.com/vango-dev/collate/pkg/vdom"
)

// PageData contains all data needed to render a complete HTML document.
type PageData struct {
	// Body is the root VNode for the page content
	Body *vdom.VNode

	// Title is the page title
	Title string

	// Meta contains name/content meta tags for the page
	Meta []MetaTag

	// StyleSheets contains paths to external stylesheets
	StyleSheets []string

	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name    string
	Content string
}

// RenderPage renders a complete HTML document to the given writer.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	return r.RenderPageContext(context.Background(), w, page)
}

// RenderPageContext is RenderPage with a parent context for tracing.
func (r *Renderer) RenderPageContext(ctx context.Context, w io.Writer, page PageData) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	if _, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html lang=\"%s\">\n", escapeAttr(lang)); err != nil {
		return err
	}
	if err := r.renderHead(w, page); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "<body>\n"); err != nil {
		return err
	}
	if err := r.RenderContext(ctx, w, page.Body); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n</body>\n</html>\n")
	return err
}

func (r *Renderer) renderHead(w io.Writer, page PageData) error {
	if _, err := io.WriteString(w, "<head>\n<meta charset=\"utf-8\">\n"); err != nil {
		return err
	}
	if page.Title != "" {
		if _, err := fmt.Fprintf(w, "<title>%s</title>\n", escapeHTML(page.Title)); err != nil {
			return err
		}
	}
	for _, m := range page.Meta {
		if m.Name == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, "<meta name=\"%s\" content=\"%s\">\n", escapeAttr(m.Name), escapeAttr(m.Content)); err != nil {
			return err
		}
	}
	for _, href := range page.StyleSheets {
		if _, err := fmt.Fprintf(w, "<link rel=\"stylesheet\" href=\"%s\">\n", escapeAttr(href)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</head>\n")
	return err
}
