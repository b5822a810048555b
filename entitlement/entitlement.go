// Package entitlement holds the access decisions for premium content. Every
// function is pure and total: callers re-evaluate against the latest user and
// post snapshots on each check, there is no state here.
package entitlement

import (
	"strings"

	"premium-blog-api/models"
)

// ExcerptMarker is appended to a preview that had to be truncated.
const ExcerptMarker = "..."

// CanRead reports whether the viewer may see the full content of a post.
// Free posts are readable by anyone, including anonymous viewers.
func CanRead(user *models.User, post *models.Post) bool {
	if post.Visibility == models.VisibilityFree {
		return true
	}
	return user.IsEntitled()
}

// CanAuthorPremium reports whether the user may mark a post premium. Used to
// clamp the requested visibility server-side before persistence.
func CanAuthorPremium(user *models.User) bool {
	return user.IsEntitled()
}

// CanMutate reports whether the actor owns the post. Ownership is the only
// thing that grants edit and delete rights.
func CanMutate(user *models.User, post *models.Post) bool {
	return user != nil && user.ID == post.AuthorID
}

var markupReplacer = strings.NewReplacer("#", "", "*", "", "`", "", "\n", " ")

// Excerpt returns a bounded plain-text preview of post content: markdown
// control characters are stripped, newlines collapse to spaces, and text
// longer than maxLength runes is cut with ExcerptMarker appended. Content
// that fits is returned verbatim with no marker.
func Excerpt(content string, maxLength int) string {
	if maxLength < 0 {
		maxLength = 0
	}
	plain := markupReplacer.Replace(content)
	runes := []rune(plain)
	if len(runes) <= maxLength {
		return plain
	}
	return string(runes[:maxLength]) + ExcerptMarker
}
