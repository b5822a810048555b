package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"premium-blog-api/billing"
	"premium-blog-api/models"

	"gorm.io/gorm"
)

// fakeStore backs UserRepository and SubscriptionRepository in memory,
// attaching subscriptions to users the way Preload does.
type fakeStore struct {
	users map[string]*models.User
	subs  map[string]*models.Subscription
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users: make(map[string]*models.User),
		subs:  make(map[string]*models.Subscription),
	}
}

func (f *fakeStore) Create(user *models.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeStore) GetByID(id string) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	snapshot := *user
	if sub, ok := f.subs[id]; ok {
		subCopy := *sub
		snapshot.Subscription = &subCopy
	} else {
		snapshot.Subscription = nil
	}
	return &snapshot, nil
}

func (f *fakeStore) GetByEmail(email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return f.GetByID(user.ID)
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStore) SetPremiumFlag(id string, premium bool) error {
	user, ok := f.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.PremiumFlag = premium
	return nil
}

func (f *fakeStore) GetByUserID(userID string) (*models.Subscription, error) {
	sub, ok := f.subs[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return sub, nil
}

func (f *fakeStore) Upsert(sub *models.Subscription) error {
	f.subs[sub.UserID] = sub
	return nil
}

func (f *fakeStore) DeleteByUserID(userID string) error {
	delete(f.subs, userID)
	return nil
}

type fakePostRepo struct {
	posts map[string]*models.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[string]*models.Post)}
}

func (f *fakePostRepo) Create(post *models.Post) error {
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt
	f.posts[post.ID] = post
	return nil
}

func (f *fakePostRepo) GetByID(id string) (*models.Post, error) {
	post, ok := f.posts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	snapshot := *post
	return &snapshot, nil
}

func (f *fakePostRepo) Update(post *models.Post) error {
	post.UpdatedAt = time.Now()
	f.posts[post.ID] = post
	return nil
}

func (f *fakePostRepo) Delete(id string) error {
	delete(f.posts, id)
	return nil
}

func (f *fakePostRepo) ListByAuthor(authorID string, params models.PostListParams) ([]models.Post, int64, error) {
	var out []models.Post
	for _, post := range f.posts {
		if post.AuthorID == authorID {
			out = append(out, *post)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakePostRepo) ListVisible(includePremium bool, params models.PostListParams) ([]models.Post, int64, error) {
	var out []models.Post
	for _, post := range f.posts {
		if !includePremium && post.Visibility != models.VisibilityFree {
			continue
		}
		if params.Query != "" {
			q := strings.ToLower(params.Query)
			if !strings.Contains(strings.ToLower(post.Title), q) &&
				!strings.Contains(strings.ToLower(post.Content), q) {
				continue
			}
		}
		out = append(out, *post)
	}
	return out, int64(len(out)), nil
}

type fakeProvider struct {
	sub   *billing.Subscription
	err   error
	calls int
}

func (f *fakeProvider) GetActiveSubscription(customerRef string) (*billing.Subscription, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.sub, nil
}

type fakeCheckout struct {
	session *billing.CheckoutSession
	err     error
	lastReq billing.CreateCheckoutRequest
}

func (f *fakeCheckout) CreateCheckoutSession(req billing.CreateCheckoutRequest) (*billing.CheckoutSession, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.session, nil
}

type fakeCache struct {
	values map[string][]byte
	flags  map[string]bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: make(map[string][]byte), flags: make(map[string]bool)}
}

func (f *fakeCache) Get(ctx context.Context, key string, result any) (bool, error) {
	data, ok := f.values[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, result); err != nil {
		return false, err
	}
	return true, nil
}

func (f *fakeCache) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.values[key] = data
	return nil
}

func (f *fakeCache) Invalidate(ctx context.Context, key string) error {
	delete(f.values, key)
	return nil
}

func (f *fakeCache) SetFlag(ctx context.Context, key string, expiration time.Duration) error {
	f.flags[key] = true
	return nil
}

func (f *fakeCache) HasFlag(ctx context.Context, key string) (bool, error) {
	return f.flags[key], nil
}

type fakeMetrics struct {
	denials   int
	coercions int
}

func (f *fakeMetrics) RecordPremiumDenial()      { f.denials++ }
func (f *fakeMetrics) RecordVisibilityCoercion() { f.coercions++ }

var errProviderDown = errors.New("provider down")
