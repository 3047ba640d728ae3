package plans

import (
	"time"

	"github.com/shopspring/decimal"
)

// Plan is a subscription tier: a fixed base price plus a per-GB storage price.
// Plans are reference data seeded administratively and never updated in-band.
type Plan struct {
	ID          uint            `gorm:"primaryKey"                  json:"id"`
	Name        string          `gorm:"not null"                    json:"name"`
	BasePrice   decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"basePrice"`
	PricePerGb  decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"pricePerGb"`
	Description *string         `json:"description"`
	CreatedAt   time.Time       `json:"createdAt"`
}
