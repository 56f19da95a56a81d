package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Password  string    `gorm:"not null;column:password" json:"-"`
	FirstName string    `gorm:"not null;column:first_name" json:"first_name"`
	LastName  string    `gorm:"not null;column:last_name" json:"last_name"`
	AvatarKey string    `gorm:"column:avatar_key" json:"avatar_key"`
	AvatarURL string    `gorm:"column:avatar_url" json:"avatar_url"`

	StripeCustomerID       string     `gorm:"column:stripe_customer_id" json:"-"`
	StripeSubscriptionID   string     `gorm:"column:stripe_subscription_id" json:"-"`
	StripePriceID          string     `gorm:"column:stripe_price_id" json:"-"`
	StripeCurrentPeriodEnd *time.Time `gorm:"column:stripe_current_period_end" json:"stripe_current_period_end,omitempty"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (User) TableName() string { return "user" }

// HasActiveSubscription reports whether the user's paid period extends past now.
func (u *User) HasActiveSubscription(now time.Time) bool {
	if u == nil || u.StripeCurrentPeriodEnd == nil {
		return false
	}
	return u.StripeCurrentPeriodEnd.After(now)
}
