package billing

// Subscription is the provider's view of a customer subscription. Timestamps
// arrive as unix seconds; CurrentPeriodEnd may be absent for subscriptions
// without a fixed period.
type Subscription struct {
	CustomerRef       string  `json:"customer_ref"`
	Status            string  `json:"status"`
	PriceRef          *string `json:"price_id"`
	ProductName       *string `json:"product_name"`
	CurrentPeriodEnd  *int64  `json:"current_period_end"`
	CancelAtPeriodEnd bool    `json:"cancel_at_period_end"`
}

type CreateCheckoutRequest struct {
	CustomerRef string `json:"customer_ref"`
	PriceRef    string `json:"price_id"`
	Mode        string `json:"mode"`
	SuccessURL  string `json:"success_url"`
	CancelURL   string `json:"cancel_url"`
}

type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}
