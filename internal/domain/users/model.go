package users

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey"                          json:"id"`
	Name      string    `gorm:"not null"                            json:"name"`
	Email     string    `gorm:"not null;uniqueIndex:idx_users_email" json:"email"`
	Phone     *string   `json:"phone"`
	Company   *string   `json:"company"`
	CreatedAt time.Time `json:"createdAt"`
}
