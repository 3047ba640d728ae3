package options

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceType selects the pricing strategy for an option. It is a closed set;
// anything outside it is a data-integrity fault, not a default case.
type PriceType string

const (
	PriceTypeFixed   PriceType = "FIXED"
	PriceTypePerUser PriceType = "PER_USER"
	PriceTypePerGb   PriceType = "PER_GB"
)

func (t PriceType) Valid() bool {
	switch t {
	case PriceTypeFixed, PriceTypePerUser, PriceTypePerGb:
		return true
	}
	return false
}

// Option is an add-on attachable to a subscription. Reference data, seeded
// administratively.
type Option struct {
	ID          uint            `gorm:"primaryKey"                          json:"id"`
	Name        string          `gorm:"not null;uniqueIndex:idx_options_name" json:"name"`
	Description *string         `json:"description"`
	PriceType   PriceType       `gorm:"type:varchar(16);not null"           json:"priceType"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(12,2);not null"         json:"unitPrice"`
	CreatedAt   time.Time       `json:"createdAt"`
}
