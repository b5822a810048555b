package models

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CreatePostRequest struct {
	Title      string     `json:"title" binding:"required,min=1,max=255"`
	Content    string     `json:"content" binding:"required"`
	CoverImage *string    `json:"cover_image"`
	Visibility Visibility `json:"visibility" binding:"omitempty,oneof=free premium"`
}

type UpdatePostRequest struct {
	Title      *string     `json:"title" binding:"omitempty,min=1,max=255"`
	Content    *string     `json:"content"`
	CoverImage *string     `json:"cover_image"`
	Visibility *Visibility `json:"visibility" binding:"omitempty,oneof=free premium"`
}

type PostListParams struct {
	Query string `form:"q"`
	Page  int    `form:"page,default=1"`
	Limit int    `form:"limit,default=10"`
}

// Normalized clamps page and limit so explicit zero or negative values
// cannot produce empty pages or a zero divisor in pagination math.
func (p PostListParams) Normalized() PostListParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
	return p
}

// PostView is the reader-facing projection of a post. For premium posts the
// viewer is not entitled to, Content is withheld and Excerpt carries a bounded
// preview instead; the full text never leaves the server.
type PostView struct {
	ID         string     `json:"id"`
	AuthorID   string     `json:"author_id"`
	AuthorName string     `json:"author_name"`
	Title      string     `json:"title"`
	Content    string     `json:"content,omitempty"`
	Excerpt    string     `json:"excerpt,omitempty"`
	CoverImage *string    `json:"cover_image,omitempty"`
	Visibility Visibility `json:"visibility"`
	Locked     bool       `json:"locked"`
	CreatedAt  string     `json:"created_at"`
	UpdatedAt  string     `json:"updated_at"`
}

type CheckoutRequest struct {
	SuccessURL string `json:"success_url" binding:"required,url"`
	CancelURL  string `json:"cancel_url" binding:"required,url"`
}

type CheckoutResponse struct {
	URL string `json:"url"`
}

// SubscriptionWebhookEvent is the payload the billing provider posts when a
// subscription changes state.
type SubscriptionWebhookEvent struct {
	UserID            string  `json:"user_id" validate:"required,uuid4"`
	Status            string  `json:"status" validate:"required,oneof=none active past_due canceled incomplete"`
	PriceRef          *string `json:"price_id"`
	ProductName       *string `json:"product_name"`
	CurrentPeriodEnd  *int64  `json:"current_period_end"`
	CancelAtPeriodEnd bool    `json:"cancel_at_period_end"`
}
