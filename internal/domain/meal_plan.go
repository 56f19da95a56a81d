package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MealPlan struct {
	ID     uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"index;not null" json:"user_id"`
	User   *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`

	Name      string    `gorm:"not null;column:name" json:"name"`
	StartDate time.Time `gorm:"not null;column:start_date" json:"start_date"`
	EndDate   time.Time `gorm:"not null;column:end_date" json:"end_date"`

	Items []MealPlanItem `gorm:"foreignKey:MealPlanID;references:ID" json:"items"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (MealPlan) TableName() string { return "meal_plan" }

type MealPlanItem struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	MealPlanID uuid.UUID `gorm:"index;not null" json:"meal_plan_id"`
	RecipeID   uuid.UUID `gorm:"index;not null" json:"recipe_id"`
	Recipe     *Recipe   `gorm:"constraint:OnDelete:CASCADE;foreignKey:RecipeID;references:ID" json:"recipe,omitempty"`

	Date     time.Time `gorm:"not null;column:date" json:"date"`
	MealType string    `gorm:"not null;column:meal_type" json:"meal_type"`
	Servings int       `gorm:"not null;default:1" json:"servings"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (MealPlanItem) TableName() string { return "meal_plan_item" }
