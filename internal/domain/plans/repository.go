package plans

import (
	"errors"

	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns all plans, cheapest first.
func (r *Repository) List() ([]Plan, error) {
	var plans []Plan
	err := r.db.Order("base_price ASC").Find(&plans).Error
	return plans, err
}

// FindByID returns (nil, nil) when the plan does not exist.
func (r *Repository) FindByID(id uint) (*Plan, error) {
	var plan Plan
	if err := r.db.First(&plan, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}
