// Package security sanitizes user-authored post content before it is stored
// or previewed. Posts are written in lightweight markdown but may carry
// embedded HTML; an allowlist policy keeps harmless inline markup and drops
// script, iframe, style and event-handler attributes.
package security

import (
	"github.com/microcosm-cc/bluemonday"
)

type ContentSanitizer interface {
	// Sanitize returns content safe to store and render. Idempotent.
	Sanitize(raw string) string
	// StripTags removes every HTML tag, leaving plain text. Used when
	// building excerpts.
	StripTags(raw string) string
}

type contentSanitizer struct {
	store *bluemonday.Policy
	strip *bluemonday.Policy
}

func NewContentSanitizer() ContentSanitizer {
	return &contentSanitizer{
		store: bluemonday.UGCPolicy(),
		strip: bluemonday.StrictPolicy(),
	}
}

func (s *contentSanitizer) Sanitize(raw string) string {
	return s.store.Sanitize(raw)
}

func (s *contentSanitizer) StripTags(raw string) string {
	return s.strip.Sanitize(raw)
}
