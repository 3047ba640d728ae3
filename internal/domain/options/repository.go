package options

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

func (r *Repository) List() ([]Option, error) {
	var opts []Option
	err := r.db.Order("id ASC").Find(&opts).Error
	return opts, err
}

// FindByID returns (nil, nil) when the option does not exist.
func (r *Repository) FindByID(id uint) (*Option, error) {
	var opt Option
	if err := r.db.First(&opt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &opt, nil
}
