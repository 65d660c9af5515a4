package vdom

import "strings"

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute.
func StyleAttr(style string) Attr { return attr("style", style) }

// Data creates a data-* attribute.
// Example: Data("theme", "dark") → data-theme="dark"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Lang sets the lang attribute.
func Lang(lang string) Attr { return attr("lang", lang) }

// Href sets the href attribute.
func Href(url string) Attr { return attr("href", url) }

// Charset sets the charset attribute.
func Charset(charset string) Attr { return attr("charset", charset) }

// Name sets the name attribute.
func Name(name string) Attr { return attr("name", name) }

// Content sets the content attribute (meta tags).
func Content(content string) Attr { return attr("content", content) }

// Disabled sets the disabled boolean attribute.
func Disabled(disabled bool) Attr { return attr("disabled", disabled) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return attr("aria-label", label) }
