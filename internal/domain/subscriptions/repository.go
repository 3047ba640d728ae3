package subscriptions

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(sub *Subscription) error {
	return r.db.Create(sub).Error
}

// FindByID returns (nil, nil) when the subscription does not exist.
func (r *Repository) FindByID(id uint) (*Subscription, error) {
	var sub Subscription
	if err := r.db.First(&sub, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

// FindByIDWithDetails preloads the owning user and plan.
func (r *Repository) FindByIDWithDetails(id uint) (*Subscription, error) {
	var sub Subscription
	err := r.db.Preload("User").Preload("Plan").First(&sub, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

// List returns all subscriptions with user and plan, newest first. Debug use.
func (r *Repository) List() ([]Subscription, error) {
	var subs []Subscription
	err := r.db.Preload("User").Preload("Plan").
		Order("created_at DESC").
		Find(&subs).Error
	return subs, err
}

type OptionRepository struct {
	db *gorm.DB
}

func NewOptionRepository(db *gorm.DB) *OptionRepository {
	return &OptionRepository{db: db}
}

// Create inserts the attachment row. A duplicate (subscription, option) pair
// surfaces as gorm.ErrDuplicatedKey via the driver's error translation.
func (r *OptionRepository) Create(subOpt *SubscriptionOption) error {
	return r.db.Create(subOpt).Error
}

// ListBySubscription returns the subscription's attachments with option
// details, in attach order.
func (r *OptionRepository) ListBySubscription(subscriptionID uint) ([]SubscriptionOption, error) {
	var subOpts []SubscriptionOption
	err := r.db.Preload("Option").
		Where("subscription_id = ?", subscriptionID).
		Order("id ASC").
		Find(&subOpts).Error
	return subOpts, err
}

// FindByPair resolves an attachment by its (subscription, option) pair,
// preloading the option. Returns (nil, nil) when absent.
func (r *OptionRepository) FindByPair(subscriptionID, optionID uint) (*SubscriptionOption, error) {
	var subOpt SubscriptionOption
	err := r.db.Preload("Option").
		Where("subscription_id = ? AND option_id = ?", subscriptionID, optionID).
		First(&subOpt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &subOpt, nil
}

func (r *OptionRepository) UpdateQuantityAndPrice(id uint, quantity int, price decimal.Decimal) error {
	return r.db.Model(&SubscriptionOption{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"quantity": quantity, "price": price}).Error
}

func (r *OptionRepository) Delete(id uint) error {
	return r.db.Delete(&SubscriptionOption{}, id).Error
}
