package render

import "testing"

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"a & b", "a &amp; b"},
		{`<a href="x">`, "&lt;a href=&quot;x&quot;&gt;"},
		{"it's", "it&#39;s"},
		{"line\nbreak", "line\nbreak"},
	}
	for _, tt := range tests {
		if got := escapeHTML(tt.in); got != tt.want {
			t.Errorf("escapeHTML(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEscapeAttr(t *testing.T) {
	if got := escapeAttr("a\n\tb\r"); got != "a&#10;&#9;b&#13;" {
		t.Errorf("escapeAttr whitespace = %q", got)
	}
	if got := escapeAttr(`"'<>&`); got != "&quot;&#39;&lt;&gt;&amp;" {
		t.Errorf("escapeAttr specials = %q", got)
	}
}
