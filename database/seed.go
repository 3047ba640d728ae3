package database

import (
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"stash-api/internal/domain/options"
	"stash-api/internal/domain/plans"
	"stash-api/internal/domain/subscriptions"
	"stash-api/internal/domain/users"
)

// Seed loads the reference plans and options plus one sample user and
// subscription for development. Safe to run repeatedly: rows are matched by
// their natural keys before insert.
func Seed(db *gorm.DB) error {
	seedPlans := []plans.Plan{
		{
			Name:        "個人",
			BasePrice:   decimal.NewFromInt(500),
			PricePerGb:  decimal.NewFromInt(50),
			Description: strPtr("個人ユーザー向けの基本プラン"),
		},
		{
			Name:        "ビジネス",
			BasePrice:   decimal.NewFromInt(1500),
			PricePerGb:  decimal.NewFromInt(30),
			Description: strPtr("小規模チーム向けプラン"),
		},
		{
			Name:        "エンタープライズ",
			BasePrice:   decimal.NewFromInt(5000),
			PricePerGb:  decimal.NewFromInt(20),
			Description: strPtr("大規模組織向けプラン"),
		},
	}
	for i := range seedPlans {
		if err := db.Where("name = ?", seedPlans[i].Name).
			FirstOrCreate(&seedPlans[i]).Error; err != nil {
			return err
		}
	}

	seedOptions := []options.Option{
		{
			Name:        "PC同期クライアント",
			Description: strPtr("PCとのファイル自動同期"),
			PriceType:   options.PriceTypePerUser,
			UnitPrice:   decimal.NewFromInt(100),
		},
		{
			Name:        "セキュリティ",
			Description: strPtr("SSO・証跡保護"),
			PriceType:   options.PriceTypeFixed,
			UnitPrice:   decimal.NewFromInt(5000),
		},
		{
			Name:        "バックアップ",
			Description: strPtr("30日間のファイル履歴保存"),
			PriceType:   options.PriceTypePerGb,
			UnitPrice:   decimal.NewFromInt(10),
		},
	}
	for i := range seedOptions {
		if err := db.Where("name = ?", seedOptions[i].Name).
			FirstOrCreate(&seedOptions[i]).Error; err != nil {
			return err
		}
	}

	sampleUser := users.User{
		Name:    "John Doe",
		Email:   "john@example.com",
		Phone:   strPtr("03-1234-5678"),
		Company: strPtr("Example Corp"),
	}
	if err := db.Where("email = ?", sampleUser.Email).
		FirstOrCreate(&sampleUser).Error; err != nil {
		return err
	}

	sampleSub := subscriptions.Subscription{
		UserID:      sampleUser.ID,
		PlanID:      seedPlans[1].ID,
		StorageSize: 100,
		Status:      subscriptions.StatusPending,
	}
	if err := db.Where("user_id = ? AND plan_id = ?", sampleSub.UserID, sampleSub.PlanID).
		FirstOrCreate(&sampleSub).Error; err != nil {
		return err
	}

	log.Println("Seeding completed successfully")
	return nil
}

func strPtr(s string) *string {
	return &s
}
