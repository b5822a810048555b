package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize_RemovesScript(t *testing.T) {
	s := NewContentSanitizer()

	got := s.Sanitize(`Hello <script>alert("x")</script>world`)
	assert.NotContains(t, got, "<script>")
	assert.Contains(t, got, "Hello")
	assert.Contains(t, got, "world")
}

func TestSanitize_KeepsInlineMarkup(t *testing.T) {
	s := NewContentSanitizer()

	in := "<p>Some <strong>bold</strong> and <em>italic</em> text</p>"
	assert.Equal(t, in, s.Sanitize(in))
}

func TestSanitize_DropsEventHandlers(t *testing.T) {
	s := NewContentSanitizer()

	got := s.Sanitize(`<p onclick="steal()">click me</p>`)
	assert.NotContains(t, got, "onclick")
	assert.Contains(t, got, "click me")
}

func TestSanitize_Idempotent(t *testing.T) {
	s := NewContentSanitizer()

	in := `<p>text</p><iframe src="https://evil.example"></iframe>`
	once := s.Sanitize(in)
	assert.Equal(t, once, s.Sanitize(once))
}

func TestStripTags(t *testing.T) {
	s := NewContentSanitizer()

	got := s.StripTags("<p>plain <strong>words</strong> only</p>")
	assert.Equal(t, "plain words only", got)
}
