package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"premium-blog-api/billing"
	"premium-blog-api/config"
	"premium-blog-api/models"
)

func billingTestConfig() config.BillingConfig {
	return config.BillingConfig{
		APIURL:        "https://billing.test",
		APIKey:        "k",
		WebhookSecret: "hush",
		PriceRef:      "price_blog_premium_monthly",
	}
}

func TestCheckout_ReturnsRedirectURL(t *testing.T) {
	checkout := &fakeCheckout{session: &billing.CheckoutSession{ID: "cs_1", URL: "https://pay.example/cs_1"}}
	svc := NewBillingService(newFakeStore(), checkout, billingTestConfig(), nil)

	resp, err := svc.Checkout(&models.User{ID: "u1"}, models.CheckoutRequest{
		SuccessURL: "https://blog.example/success",
		CancelURL:  "https://blog.example/subscription",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://pay.example/cs_1", resp.URL)
	assert.Equal(t, "u1", checkout.lastReq.CustomerRef)
	assert.Equal(t, "price_blog_premium_monthly", checkout.lastReq.PriceRef)
	assert.Equal(t, "subscription", checkout.lastReq.Mode)
}

func TestCheckout_ProviderDown(t *testing.T) {
	svc := NewBillingService(newFakeStore(), &fakeCheckout{err: errProviderDown}, billingTestConfig(), nil)

	_, err := svc.Checkout(&models.User{ID: "u1"}, models.CheckoutRequest{
		SuccessURL: "https://blog.example/success",
		CancelURL:  "https://blog.example/subscription",
	})
	assert.ErrorIs(t, err, models.ErrUpstreamUnavailable)
}

func TestApplyWebhook_UpsertsMirrorRow(t *testing.T) {
	store := newFakeStore()
	cache := newFakeCache()
	svc := NewBillingService(store, &fakeCheckout{}, billingTestConfig(), cache)

	// Seed a stale snapshot so invalidation is observable.
	cache.values[snapshotKey("u1")] = []byte("{}")

	priceRef := "price_123"
	end := int64(1750000000)
	err := svc.ApplyWebhook(models.SubscriptionWebhookEvent{
		UserID:           "u1",
		Status:           "active",
		PriceRef:         &priceRef,
		CurrentPeriodEnd: &end,
	})
	require.NoError(t, err)

	sub, err := store.GetByUserID("u1")
	require.NoError(t, err)
	assert.Equal(t, models.SubscriptionActive, sub.Status)
	assert.Equal(t, "price_123", *sub.PriceRef)
	require.NotNil(t, sub.CurrentPeriodEnd)
	assert.Equal(t, end, sub.CurrentPeriodEnd.Unix())

	_, stale := cache.values[snapshotKey("u1")]
	assert.False(t, stale)
}

func TestApplyWebhook_LastWriteWins(t *testing.T) {
	store := newFakeStore()
	svc := NewBillingService(store, &fakeCheckout{}, billingTestConfig(), nil)

	require.NoError(t, svc.ApplyWebhook(models.SubscriptionWebhookEvent{UserID: "u1", Status: "active"}))
	require.NoError(t, svc.ApplyWebhook(models.SubscriptionWebhookEvent{UserID: "u1", Status: "canceled"}))

	sub, err := store.GetByUserID("u1")
	require.NoError(t, err)
	assert.Equal(t, models.SubscriptionCanceled, sub.Status)
}
