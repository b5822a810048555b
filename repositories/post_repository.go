package repositories

import (
	"strings"

	"premium-blog-api/models"

	"gorm.io/gorm"
)

type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id string) (*models.Post, error)
	Update(post *models.Post) error
	Delete(id string) error
	ListByAuthor(authorID string, params models.PostListParams) ([]models.Post, int64, error)
	// ListVisible returns posts a viewer may read, filtered in the query so
	// premium content is never fetched for viewers who cannot read it.
	ListVisible(includePremium bool, params models.PostListParams) ([]models.Post, int64, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

func (r *postRepository) GetByID(id string) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("Author").First(&post, "id = ?", id).Error
	return &post, err
}

func (r *postRepository) Update(post *models.Post) error {
	return r.db.Save(post).Error
}

func (r *postRepository) Delete(id string) error {
	return r.db.Delete(&models.Post{}, "id = ?", id).Error
}

func (r *postRepository) ListByAuthor(authorID string, params models.PostListParams) ([]models.Post, int64, error) {
	query := r.db.Model(&models.Post{}).Preload("Author").
		Where("author_id = ?", authorID)

	return paginate(query, params)
}

func (r *postRepository) ListVisible(includePremium bool, params models.PostListParams) ([]models.Post, int64, error) {
	query := r.db.Model(&models.Post{}).Preload("Author")

	if !includePremium {
		query = query.Where("visibility = ?", models.VisibilityFree)
	}

	if params.Query != "" {
		like := "%" + escapeLike(params.Query) + "%"
		query = query.Where("title ILIKE ? OR content ILIKE ?", like, like)
	}

	return paginate(query, params)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralizes LIKE metacharacters so a search term matches
// literally. "100%" must not match "1000".
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func paginate(query *gorm.DB, params models.PostListParams) ([]models.Post, int64, error) {
	var posts []models.Post
	var total int64

	query.Count(&total)

	params = params.Normalized()
	offset := (params.Page - 1) * params.Limit
	err := query.Order("created_at desc").Offset(offset).Limit(params.Limit).Find(&posts).Error

	return posts, total, err
}
