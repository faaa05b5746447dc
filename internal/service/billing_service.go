package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"chatbuilder/backend/internal/billing"
	app_errors "chatbuilder/backend/internal/errors"
)

const renewalDateLayout = "January 2, 2006"

// BillingClient is the subset of the billing service API used here.
type BillingClient interface {
	GetSubscriptions(ctx context.Context, accessToken string) ([]billing.Subscription, error)
	GetProducts(ctx context.Context, accessToken string) ([]billing.Product, error)
	UpdateSubscription(ctx context.Context, accessToken, subscriptionID string, cancelAtPeriodEnd bool) error
	CreateCheckoutSession(ctx context.Context, accessToken, priceID, redirectURL string) (string, error)
}

// SubscriptionDetails is what the account menu shows about the plan.
type SubscriptionDetails struct {
	PlanName       *string `json:"plan_name"`
	SubscriptionID *string `json:"subscription_id"`
	CanUpgrade     bool    `json:"can_upgrade"`
	RenewalDate    *string `json:"renewal_date"`
	IsCancelled    bool    `json:"is_cancelled"`
}

type BillingService struct {
	client  BillingClient
	siteURL string
}

func NewBillingService(client BillingClient, siteURL string) *BillingService {
	return &BillingService{client: client, siteURL: siteURL}
}

// GetSubscriptionDetails summarizes the active subscription. Failures are
// logged and leave the affected fields empty.
func (s *BillingService) GetSubscriptionDetails(ctx context.Context, accessToken string) SubscriptionDetails {
	var details SubscriptionDetails
	currentPrice := int64(-1)

	subs, err := s.client.GetSubscriptions(ctx, accessToken)
	if err != nil {
		slog.Error("Error fetching subscriptions", "error", err)
	} else if active := findActive(subs); active != nil {
		id := active.ID
		details.SubscriptionID = &id
		if active.Product != nil && active.Product.Name != "" {
			name := active.Product.Name
			details.PlanName = &name
		} else {
			slog.Warn("Active subscription found but product name is missing", "subscription_id", id)
		}
		if active.Price != nil && active.Price.UnitAmount != nil {
			currentPrice = *active.Price.UnitAmount
		}
		details.RenewalDate = formatRenewalDate(active.CurrentPeriodEnd)
		details.IsCancelled = active.CancelAtPeriodEnd
	}

	products, err := s.client.GetProducts(ctx, accessToken)
	if err != nil {
		slog.Error("Error fetching products", "error", err)
		return details
	}
	// Without a paid plan any priced product counts as an upgrade.
	floor := currentPrice
	if floor < 0 {
		floor = 0
	}
	details.CanUpgrade = hasPriceAbove(products, floor)
	return details
}

// CancelSubscription ends the subscription with the current period.
func (s *BillingService) CancelSubscription(ctx context.Context, accessToken, subscriptionID string) error {
	return s.setCancelAtPeriodEnd(ctx, accessToken, subscriptionID, true)
}

// ReactivateSubscription undoes a pending cancellation.
func (s *BillingService) ReactivateSubscription(ctx context.Context, accessToken, subscriptionID string) error {
	return s.setCancelAtPeriodEnd(ctx, accessToken, subscriptionID, false)
}

// CreateCheckout opens a checkout session for priceID and returns its URL.
func (s *BillingService) CreateCheckout(ctx context.Context, accessToken, priceID string) (string, error) {
	if strings.TrimSpace(priceID) == "" {
		return "", fmt.Errorf("%w: price id is required", app_errors.ErrValidation)
	}
	checkoutURL, err := s.client.CreateCheckoutSession(ctx, accessToken, priceID, s.checkoutRedirect())
	if err != nil {
		slog.Error("Failed to create checkout session", "price_id", priceID, "error", err)
		return "", fmt.Errorf("%w: failed to create checkout session", app_errors.ErrUpstream)
	}
	return checkoutURL, nil
}

func (s *BillingService) setCancelAtPeriodEnd(ctx context.Context, accessToken, subscriptionID string, cancel bool) error {
	if strings.TrimSpace(subscriptionID) == "" {
		return fmt.Errorf("%w: subscription id is required", app_errors.ErrValidation)
	}
	if err := s.client.UpdateSubscription(ctx, accessToken, subscriptionID, cancel); err != nil {
		slog.Error("Error updating subscription", "subscription_id", subscriptionID, "cancel_at_period_end", cancel, "error", err)
		return fmt.Errorf("%w: %v", app_errors.ErrUpstream, err)
	}
	slog.Info("Updated subscription", "subscription_id", subscriptionID, "cancel_at_period_end", cancel)
	return nil
}

func (s *BillingService) checkoutRedirect() string {
	origin := s.siteURL
	if u, err := url.Parse(s.siteURL); err == nil && u.Scheme != "" && u.Host != "" {
		origin = u.Scheme + "://" + u.Host
	}
	return strings.TrimRight(origin, "/") + "/?checkout=success"
}

func findActive(subs []billing.Subscription) *billing.Subscription {
	for i := range subs {
		if subs[i].Status == "active" {
			return &subs[i]
		}
	}
	return nil
}

func hasPriceAbove(products []billing.Product, amount int64) bool {
	for _, p := range products {
		for _, price := range p.Prices {
			if price.UnitAmount != nil && *price.UnitAmount > amount {
				return true
			}
		}
	}
	return false
}

func formatRenewalDate(value string) *string {
	if value == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		slog.Warn("Invalid renewal date received", "value", value)
		return nil
	}
	formatted := t.UTC().Format(renewalDateLayout)
	return &formatted
}
