package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type DietaryPreferences struct {
	ID     uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"uniqueIndex;not null" json:"user_id"`
	User   *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`

	IsVegetarian bool `gorm:"not null;default:false" json:"is_vegetarian"`
	IsVegan      bool `gorm:"not null;default:false" json:"is_vegan"`
	IsGlutenFree bool `gorm:"not null;default:false" json:"is_gluten_free"`
	IsDairyFree  bool `gorm:"not null;default:false" json:"is_dairy_free"`
	IsKeto       bool `gorm:"not null;default:false" json:"is_keto"`
	IsPaleo      bool `gorm:"not null;default:false" json:"is_paleo"`
	IsLowCarb    bool `gorm:"not null;default:false" json:"is_low_carb"`

	Allergies          datatypes.JSON `gorm:"type:jsonb" json:"allergies"`
	DislikedFoods      datatypes.JSON `gorm:"type:jsonb" json:"disliked_foods"`
	CuisinePreferences datatypes.JSON `gorm:"type:jsonb" json:"cuisine_preferences"`

	MaxPrepTime     *int `gorm:"column:max_prep_time" json:"max_prep_time,omitempty"`
	CalorieTarget   *int `gorm:"column:calorie_target" json:"calorie_target,omitempty"`
	ServingsPerMeal int  `gorm:"not null;default:2" json:"servings_per_meal"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (DietaryPreferences) TableName() string { return "dietary_preferences" }
