// Package pricing computes monetary amounts from entity data. Every function
// is pure: callers resolve and existence-check entities first, the engine only
// does arithmetic. All amounts are decimals to keep money exact.
package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"stash-api/internal/domain/options"
	"stash-api/internal/domain/plans"
	"stash-api/internal/domain/subscriptions"
)

// ErrUnknownPriceType means an Option row carries a price type outside the
// known set. That is a data-integrity fault, not user input: it is never
// defaulted, it fails the request.
var ErrUnknownPriceType = errors.New("unknown price type")

// OptionPrice computes the price of an option attachment.
//
//	FIXED:    unitPrice regardless of quantity
//	PER_USER: unitPrice x quantity (quantity = seats)
//	PER_GB:   unitPrice x quantity (quantity = gigabytes)
//
// Quantity is validated positive before it gets here.
func OptionPrice(priceType options.PriceType, unitPrice decimal.Decimal, quantity int) (decimal.Decimal, error) {
	switch priceType {
	case options.PriceTypeFixed:
		return unitPrice, nil
	case options.PriceTypePerUser, options.PriceTypePerGb:
		return unitPrice.Mul(decimal.NewFromInt(int64(quantity))), nil
	}
	return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrUnknownPriceType, priceType)
}

// Quote is the priced-out cost of a plan at a given storage size.
type Quote struct {
	PlanID       uint            `json:"planId"`
	PlanName     string          `json:"planName"`
	StorageSize  int             `json:"storageSize"`
	BasePrice    decimal.Decimal `json:"basePrice"`
	StoragePrice decimal.Decimal `json:"storagePrice"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
}

// PlanQuote computes base + storage pricing for a plan. The caller has already
// confirmed the plan exists.
func PlanQuote(plan *plans.Plan, storageSize int) Quote {
	storagePrice := plan.PricePerGb.Mul(decimal.NewFromInt(int64(storageSize)))
	return Quote{
		PlanID:       plan.ID,
		PlanName:     plan.Name,
		StorageSize:  storageSize,
		BasePrice:    plan.BasePrice,
		StoragePrice: storagePrice,
		TotalPrice:   plan.BasePrice.Add(storagePrice),
	}
}

// BreakdownOption is one attached option's share of a breakdown. TotalPrice is
// the snapshot stored on the attachment row, not a recomputation.
type BreakdownOption struct {
	OptionID   uint            `json:"optionId"`
	OptionName string          `json:"optionName"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

// Breakdown itemizes a subscription's total into base, storage and per-option
// components.
type Breakdown struct {
	PlanID       uint              `json:"planId"`
	PlanName     string            `json:"planName"`
	StorageSize  int               `json:"storageSize"`
	BasePrice    decimal.Decimal   `json:"basePrice"`
	StoragePrice decimal.Decimal   `json:"storagePrice"`
	Options      []BreakdownOption `json:"options"`
	TotalPrice   decimal.Decimal   `json:"totalPrice"`
}

// SubscriptionBreakdown aggregates a subscription's cost. Option entries use
// the snapshot price written at attach/update time, which preserves historical
// pricing even after an option's unit price changes. subOpts must carry their
// Option association.
func SubscriptionBreakdown(sub *subscriptions.Subscription, plan *plans.Plan, subOpts []subscriptions.SubscriptionOption) Breakdown {
	quote := PlanQuote(plan, sub.StorageSize)

	entries := make([]BreakdownOption, 0, len(subOpts))
	optionsTotal := decimal.Zero
	for _, subOpt := range subOpts {
		entry := BreakdownOption{
			OptionID:   subOpt.OptionID,
			Quantity:   subOpt.Quantity,
			TotalPrice: subOpt.Price,
		}
		if subOpt.Option != nil {
			entry.OptionName = subOpt.Option.Name
			entry.UnitPrice = subOpt.Option.UnitPrice
		}
		entries = append(entries, entry)
		optionsTotal = optionsTotal.Add(subOpt.Price)
	}

	return Breakdown{
		PlanID:       quote.PlanID,
		PlanName:     quote.PlanName,
		StorageSize:  quote.StorageSize,
		BasePrice:    quote.BasePrice,
		StoragePrice: quote.StoragePrice,
		Options:      entries,
		TotalPrice:   quote.TotalPrice.Add(optionsTotal),
	}
}
