package render

import "github.com/vango-dev/collate/pkg/vdom"

func isVoidElement(tag string) bool {
	return vdom.IsVoidElement(tag)
}

// inlineElements don't get newlines around their children in pretty output.
var inlineElements = map[string]bool{
	"a":      true,
	"b":      true,
	"br":     true,
	"code":   true,
	"em":     true,
	"i":      true,
	"small":  true,
	"span":   true,
	"strong": true,
	"title":  true,
	"button": true,
	"li":     true,
	"h1":     true,
	"h2":     true,
	"p":      true,
	"pre":    true,
}

func isInlineElement(tag string) bool {
	return inlineElements[tag]
}

// booleanAttrs are rendered as a bare name when true and omitted when false.
var booleanAttrs = map[string]bool{
	"async":    true,
	"checked":  true,
	"defer":    true,
	"disabled": true,
	"hidden":   true,
	"open":     true,
	"readonly": true,
	"required": true,
	"selected": true,
}

func isBooleanAttr(name string) bool {
	return booleanAttrs[name]
}
