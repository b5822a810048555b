package config

type BillingConfig struct {
	APIURL        string
	APIKey        string
	WebhookSecret string
	PriceRef      string
}

func LoadBillingConfig() BillingConfig {
	return BillingConfig{
		APIURL:        getEnv("BILLING_API_URL", "https://billing.example.com/v1"),
		APIKey:        getEnv("BILLING_API_KEY", ""),
		WebhookSecret: getEnv("BILLING_WEBHOOK_SECRET", ""),
		PriceRef:      getEnv("BILLING_PRICE_REF", "price_blog_premium_monthly"),
	}
}
