package sanitize

import (
	"strings"
	"testing"
)

func TestText(t *testing.T) {
	s := New()
	tests := []struct {
		in   string
		want string
	}{
		{"Ana", "Ana"},
		{"  Ana  ", "Ana"},
		{"<b>Ana</b>", "Ana"},
		{"<script>alert(1)</script>", ""},
		{"   <i> </i>  ", ""},
		{"Tom & Jerry", "Tom & Jerry"},
		{"olá, tudo bem?", "olá, tudo bem?"},
		{"&lt;script&gt;alert(1)&lt;/script&gt;", ""},
		{"&lt;img src=x onerror=alert(1)&gt;", ""},
		{"&amp;lt;b&amp;gt;Ana&amp;lt;/b&amp;gt;", "Ana"},
	}
	for _, tt := range tests {
		if got := s.Text(tt.in); got != tt.want {
			t.Errorf("Text(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTextNeverReturnsEscapedMarkup(t *testing.T) {
	s := New()
	inputs := []string{
		"&lt;script&gt;alert(1)&lt;/script&gt;",
		"&lt;img src=x onerror=alert(1)&gt;",
		"oi &lt;a href=&quot;javascript:x&quot;&gt;clique&lt;/a&gt;",
		"&amp;amp;lt;script&amp;amp;gt;x&amp;amp;lt;/script&amp;amp;gt;",
	}
	for _, in := range inputs {
		if got := s.Text(in); strings.Contains(got, "<") {
			t.Errorf("Text(%q) = %q, still contains markup", in, got)
		}
	}
}
