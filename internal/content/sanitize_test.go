package content

import (
	"strings"
	"testing"
)

func TestSanitizeStripsScripts(t *testing.T) {
	in := `<p>hello</p><script>alert("xss")</script>`
	out := Sanitize(in)
	if strings.Contains(out, "script") || strings.Contains(out, "alert") {
		t.Fatalf("script survived sanitization: %q", out)
	}
	if !strings.Contains(out, "<p>hello</p>") {
		t.Fatalf("paragraph dropped: %q", out)
	}
}

func TestSanitizeKeepsEditorMarks(t *testing.T) {
	in := `<h2>Tiêu đề</h2><p><strong>bold</strong> <em>italic</em> <mark>hi</mark></p><ul><li>a</li></ul><hr>`
	out := Sanitize(in)
	for _, want := range []string{"<h2>", "<strong>", "<em>", "<mark>", "<li>", "<hr"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q to survive, got %q", want, out)
		}
	}
}

func TestSanitizeStripsEventHandlers(t *testing.T) {
	in := `<img src="https://cdn.test/a.png" onerror="alert(1)"><a href="javascript:alert(1)">x</a>`
	out := Sanitize(in)
	if strings.Contains(out, "onerror") || strings.Contains(out, "javascript:") {
		t.Fatalf("unsafe attribute survived: %q", out)
	}
	if !strings.Contains(out, `src="https://cdn.test/a.png"`) {
		t.Fatalf("image source dropped: %q", out)
	}
}

func TestSanitizeKeepsTextAlign(t *testing.T) {
	in := `<p style="text-align: center">x</p><p style="color: red">y</p>`
	out := Sanitize(in)
	if !strings.Contains(out, "text-align") {
		t.Fatalf("alignment dropped: %q", out)
	}
	if strings.Contains(out, "color") {
		t.Fatalf("non-alignment style survived: %q", out)
	}
}

func TestSanitizeEmpty(t *testing.T) {
	if out := Sanitize(""); out != "" {
		t.Fatalf("expected empty output, got %q", out)
	}
}
