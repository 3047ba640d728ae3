package subscriptions

import (
	"time"

	"github.com/shopspring/decimal"

	"stash-api/internal/domain/options"
	"stash-api/internal/domain/plans"
	"stash-api/internal/domain/users"
)

const StatusPending = "pending"

// Subscription enrolls a user in a plan with a chosen storage size.
type Subscription struct {
	ID          uint       `gorm:"primaryKey"          json:"id"`
	UserID      uint        `gorm:"not null"          json:"userId"`
	User        *users.User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	PlanID      uint        `gorm:"not null"          json:"planId"`
	Plan        *plans.Plan `gorm:"foreignKey:PlanID" json:"plan,omitempty"`
	StorageSize int        `gorm:"not null"            json:"storageSize"`
	Status      string     `gorm:"not null;default:'pending'" json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// SubscriptionOption attaches an option to a subscription. Price is a
// snapshot computed when the row is written; reads never recompute it, so
// later unit-price changes on the option leave existing rows untouched.
// The (subscription_id, option_id) pair is unique; the database constraint is
// the arbiter under concurrent attaches.
type SubscriptionOption struct {
	ID             uint            `gorm:"primaryKey"                                       json:"id"`
	SubscriptionID uint            `gorm:"not null;uniqueIndex:idx_subscription_options_pair" json:"subscriptionId"`
	Subscription   *Subscription   `gorm:"foreignKey:SubscriptionID;constraint:OnDelete:CASCADE" json:"-"`
	OptionID       uint            `gorm:"not null;uniqueIndex:idx_subscription_options_pair" json:"optionId"`
	Option         *options.Option `gorm:"foreignKey:OptionID"                              json:"option,omitempty"`
	Quantity       int             `gorm:"not null"                                         json:"quantity"`
	Price          decimal.Decimal `gorm:"type:numeric(12,2);not null"                      json:"price"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}
