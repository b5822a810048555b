package services

import (
	"context"
	"fmt"
	"time"

	"premium-blog-api/billing"
	"premium-blog-api/config"
	"premium-blog-api/models"
	"premium-blog-api/repositories"
)

// CheckoutProvider is the checkout slice of the billing client.
type CheckoutProvider interface {
	CreateCheckoutSession(req billing.CreateCheckoutRequest) (*billing.CheckoutSession, error)
}

type BillingService interface {
	// Checkout opens a provider checkout session and returns the opaque
	// redirect URL. Subscription state only changes later, once the provider
	// reports back through the webhook or a refresh.
	Checkout(user *models.User, req models.CheckoutRequest) (*models.CheckoutResponse, error)
	// ApplyWebhook upserts the subscription mirror from a provider event.
	ApplyWebhook(event models.SubscriptionWebhookEvent) error
}

type billingService struct {
	subRepo  repositories.SubscriptionRepository
	checkout CheckoutProvider
	cfg      config.BillingConfig
	cache    SnapshotCache
}

func NewBillingService(subRepo repositories.SubscriptionRepository, checkout CheckoutProvider, cfg config.BillingConfig, cache SnapshotCache) BillingService {
	return &billingService{
		subRepo:  subRepo,
		checkout: checkout,
		cfg:      cfg,
		cache:    cache,
	}
}

func (s *billingService) Checkout(user *models.User, req models.CheckoutRequest) (*models.CheckoutResponse, error) {
	session, err := s.checkout.CreateCheckoutSession(billing.CreateCheckoutRequest{
		CustomerRef: user.ID,
		PriceRef:    s.cfg.PriceRef,
		Mode:        "subscription",
		SuccessURL:  req.SuccessURL,
		CancelURL:   req.CancelURL,
	})
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", models.ErrUpstreamUnavailable)
	}

	return &models.CheckoutResponse{URL: session.URL}, nil
}

func (s *billingService) ApplyWebhook(event models.SubscriptionWebhookEvent) error {
	sub := &models.Subscription{
		UserID:            event.UserID,
		Status:            models.SubscriptionStatus(event.Status),
		PriceRef:          event.PriceRef,
		ProductName:       event.ProductName,
		CancelAtPeriodEnd: event.CancelAtPeriodEnd,
	}
	if event.CurrentPeriodEnd != nil {
		end := time.Unix(*event.CurrentPeriodEnd, 0)
		sub.CurrentPeriodEnd = &end
	}

	if err := s.subRepo.Upsert(sub); err != nil {
		return err
	}

	// The stale snapshot must not outlive the state change.
	if s.cache != nil {
		_ = s.cache.Invalidate(context.Background(), snapshotKey(event.UserID))
	}

	return nil
}
