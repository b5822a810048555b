package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"premium-blog-api/billing"
	"premium-blog-api/models"
	"premium-blog-api/repositories"

	"gorm.io/gorm"
)

const snapshotTTL = 5 * time.Minute

// BillingProvider is the subscription lookup the account service needs from
// the billing client.
type BillingProvider interface {
	GetActiveSubscription(customerRef string) (*billing.Subscription, error)
}

// AccountService owns the user entitlement snapshot: the user row plus the
// subscription mirror, assembled as one unit and replaced wholesale. Other
// services only ever read the snapshot.
type AccountService interface {
	CurrentUser(userID string) (*models.User, error)
	// Refresh re-fetches subscription state from the billing provider. When
	// the provider is unreachable the prior snapshot is returned untouched
	// together with ErrUpstreamUnavailable; callers may retry later.
	Refresh(userID string) (*models.User, error)
	// ElevateToPremium sets the persisted premium flag. Administrative (or
	// demo) path only; nothing in the normal post flows reaches it.
	ElevateToPremium(userID string) (*models.User, error)
}

type accountService struct {
	userRepo repositories.UserRepository
	subRepo  repositories.SubscriptionRepository
	provider BillingProvider
	cache    SnapshotCache
}

func NewAccountService(userRepo repositories.UserRepository, subRepo repositories.SubscriptionRepository, provider BillingProvider, cache SnapshotCache) AccountService {
	return &accountService{
		userRepo: userRepo,
		subRepo:  subRepo,
		provider: provider,
		cache:    cache,
	}
}

func snapshotKey(userID string) string {
	return "user:snapshot:" + userID
}

func (s *accountService) CurrentUser(userID string) (*models.User, error) {
	if s.cache != nil {
		var cached models.User
		if hit, err := s.cache.Get(context.Background(), snapshotKey(userID), &cached); err == nil && hit {
			return &cached, nil
		}
	}

	user, err := s.loadSnapshot(userID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		// Best effort; a failed cache write never fails the request.
		_ = s.cache.Set(context.Background(), snapshotKey(userID), user, snapshotTTL)
	}

	return user, nil
}

func (s *accountService) Refresh(userID string) (*models.User, error) {
	prior, err := s.loadSnapshot(userID)
	if err != nil {
		return nil, err
	}

	providerSub, err := s.provider.GetActiveSubscription(userID)
	if err != nil {
		// Fail-soft: the last known-good snapshot stays in place.
		return prior, fmt.Errorf("refresh subscription: %w", models.ErrUpstreamUnavailable)
	}

	if providerSub == nil {
		if err := s.subRepo.DeleteByUserID(userID); err != nil {
			return nil, err
		}
	} else {
		if err := s.subRepo.Upsert(subscriptionFromProvider(userID, providerSub)); err != nil {
			return nil, err
		}
	}

	s.invalidateSnapshot(userID)
	return s.CurrentUser(userID)
}

func (s *accountService) ElevateToPremium(userID string) (*models.User, error) {
	if _, err := s.loadSnapshot(userID); err != nil {
		return nil, err
	}

	if err := s.userRepo.SetPremiumFlag(userID, true); err != nil {
		return nil, err
	}

	s.invalidateSnapshot(userID)
	return s.CurrentUser(userID)
}

func (s *accountService) loadSnapshot(userID string) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *accountService) invalidateSnapshot(userID string) {
	if s.cache != nil {
		_ = s.cache.Invalidate(context.Background(), snapshotKey(userID))
	}
}

func subscriptionFromProvider(userID string, p *billing.Subscription) *models.Subscription {
	sub := &models.Subscription{
		UserID:            userID,
		Status:            models.SubscriptionStatus(p.Status),
		PriceRef:          p.PriceRef,
		ProductName:       p.ProductName,
		CancelAtPeriodEnd: p.CancelAtPeriodEnd,
	}
	if p.CurrentPeriodEnd != nil {
		end := time.Unix(*p.CurrentPeriodEnd, 0)
		sub.CurrentPeriodEnd = &end
	}
	return sub
}
