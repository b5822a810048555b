package services

import (
	"errors"
	"strings"
	"time"

	"premium-blog-api/entitlement"
	"premium-blog-api/models"
	"premium-blog-api/repositories"
	"premium-blog-api/security"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// excerptLength bounds the preview shown for premium posts a viewer cannot
// read in full.
const excerptLength = 300

// GateMetrics records entitlement decisions worth watching. Nil disables
// recording.
type GateMetrics interface {
	RecordPremiumDenial()
	RecordVisibilityCoercion()
}

type PostService interface {
	Create(req models.CreatePostRequest, author *models.User) (*models.Post, error)
	Update(id string, req models.UpdatePostRequest, actor *models.User) (*models.Post, error)
	Delete(id string, actor *models.User) error
	// GetForViewer returns the reader projection of a post: full content for
	// viewers who pass the read gate, a bounded excerpt otherwise.
	GetForViewer(id string, viewer *models.User) (*models.PostView, error)
	ListByAuthor(authorID string, params models.PostListParams) ([]models.Post, int64, error)
	ListAccessible(viewer *models.User, params models.PostListParams) ([]models.PostView, int64, error)
	Search(query string, viewer *models.User, params models.PostListParams) ([]models.PostView, int64, error)
}

type postService struct {
	postRepo  repositories.PostRepository
	sanitizer security.ContentSanitizer
	metrics   GateMetrics
}

func NewPostService(postRepo repositories.PostRepository, sanitizer security.ContentSanitizer, metrics GateMetrics) PostService {
	return &postService{
		postRepo:  postRepo,
		sanitizer: sanitizer,
		metrics:   metrics,
	}
}

func (s *postService) Create(req models.CreatePostRequest, author *models.User) (*models.Post, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, models.NewValidationError("title", "must not be empty")
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, models.NewValidationError("content", "must not be empty")
	}

	post := &models.Post{
		ID:         uuid.NewString(),
		AuthorID:   author.ID,
		Title:      title,
		Content:    s.sanitizer.Sanitize(content),
		CoverImage: req.CoverImage,
		Visibility: s.clampVisibility(req.Visibility, author),
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}

	return s.getPost(post.ID)
}

func (s *postService) Update(id string, req models.UpdatePostRequest, actor *models.User) (*models.Post, error) {
	post, err := s.getPost(id)
	if err != nil {
		return nil, err
	}

	if !entitlement.CanMutate(actor, post) {
		return nil, models.ErrForbidden
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, models.NewValidationError("title", "must not be empty")
		}
		post.Title = title
	}

	if req.Content != nil {
		content := strings.TrimSpace(*req.Content)
		if content == "" {
			return nil, models.NewValidationError("content", "must not be empty")
		}
		post.Content = s.sanitizer.Sanitize(content)
	}

	if req.CoverImage != nil {
		post.CoverImage = req.CoverImage
	}

	if req.Visibility != nil {
		// Re-clamped against the actor's current entitlement, same rule as
		// create. Existing premium posts keep their tag when untouched.
		post.Visibility = s.clampVisibility(*req.Visibility, actor)
	}

	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}

	return s.getPost(id)
}

func (s *postService) Delete(id string, actor *models.User) error {
	post, err := s.getPost(id)
	if err != nil {
		return err
	}

	if !entitlement.CanMutate(actor, post) {
		return models.ErrForbidden
	}

	return s.postRepo.Delete(id)
}

func (s *postService) GetForViewer(id string, viewer *models.User) (*models.PostView, error) {
	post, err := s.getPost(id)
	if err != nil {
		return nil, err
	}

	view := toPostView(post)
	if entitlement.CanRead(viewer, post) {
		view.Content = post.Content
	} else {
		// Full content never leaves the server for gated viewers.
		view.Locked = true
		view.Excerpt = s.excerpt(post.Content)
		if s.metrics != nil {
			s.metrics.RecordPremiumDenial()
		}
	}

	return view, nil
}

func (s *postService) ListByAuthor(authorID string, params models.PostListParams) ([]models.Post, int64, error) {
	return s.postRepo.ListByAuthor(authorID, params)
}

func (s *postService) ListAccessible(viewer *models.User, params models.PostListParams) ([]models.PostView, int64, error) {
	posts, total, err := s.postRepo.ListVisible(viewer.IsEntitled(), params)
	if err != nil {
		return nil, 0, err
	}

	views := make([]models.PostView, 0, len(posts))
	for i := range posts {
		post := &posts[i]
		// The query already filters, but the gate is re-checked here so the
		// repository never has to be trusted with the decision alone.
		if !entitlement.CanRead(viewer, post) {
			continue
		}
		view := toPostView(post)
		view.Excerpt = s.excerpt(post.Content)
		views = append(views, *view)
	}

	return views, total, nil
}

func (s *postService) Search(query string, viewer *models.User, params models.PostListParams) ([]models.PostView, int64, error) {
	params.Query = strings.TrimSpace(query)
	return s.ListAccessible(viewer, params)
}

// excerpt builds the plain-text preview for gated viewers. Stored content
// may still carry the HTML tags UGCPolicy allows, so tags are stripped first
// and cannot be cut mid-tag by the truncation.
func (s *postService) excerpt(content string) string {
	return entitlement.Excerpt(s.sanitizer.StripTags(content), excerptLength)
}

// clampVisibility applies the coercion rule: a premium request from a
// non-entitled author is downgraded to free rather than rejected, so the
// write still goes through.
func (s *postService) clampVisibility(requested models.Visibility, author *models.User) models.Visibility {
	if requested == "" {
		return models.VisibilityFree
	}
	if requested == models.VisibilityPremium && !entitlement.CanAuthorPremium(author) {
		if s.metrics != nil {
			s.metrics.RecordVisibilityCoercion()
		}
		return models.VisibilityFree
	}
	return requested
}

func (s *postService) getPost(id string) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return post, nil
}

func toPostView(post *models.Post) *models.PostView {
	return &models.PostView{
		ID:         post.ID,
		AuthorID:   post.AuthorID,
		AuthorName: post.Author.Username,
		Title:      post.Title,
		CoverImage: post.CoverImage,
		Visibility: post.Visibility,
		CreatedAt:  post.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  post.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
