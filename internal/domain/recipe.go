package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RecipeIngredient is one line of a recipe's ingredient list. Stored inside
// the recipe's jsonb `ingredients` column, never as its own row.
type RecipeIngredient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
	Notes  string  `json:"notes,omitempty"`
}

type RecipeInstruction struct {
	Step        int    `json:"step"`
	Description string `json:"description"`
}

type Recipe struct {
	ID     uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"index;not null" json:"user_id"`
	User   *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`

	Name        string `gorm:"not null;column:name" json:"name"`
	Description string `gorm:"column:description" json:"description"`

	PrepTime  int `gorm:"column:prep_time" json:"prep_time"`
	CookTime  int `gorm:"column:cook_time" json:"cook_time"`
	TotalTime int `gorm:"column:total_time" json:"total_time"`
	Servings  int `gorm:"not null;default:2" json:"servings"`

	Ingredients  datatypes.JSON `gorm:"type:jsonb;not null" json:"ingredients"`
	Instructions datatypes.JSON `gorm:"type:jsonb;not null" json:"instructions"`

	Calories int `gorm:"column:calories" json:"calories"`
	Protein  int `gorm:"column:protein" json:"protein"`
	Carbs    int `gorm:"column:carbs" json:"carbs"`
	Fat      int `gorm:"column:fat" json:"fat"`
	Fiber    int `gorm:"column:fiber" json:"fiber"`
	Sugar    int `gorm:"column:sugar" json:"sugar"`
	Sodium   int `gorm:"column:sodium" json:"sodium"`

	Cuisine       string         `gorm:"column:cuisine" json:"cuisine"`
	MealType      datatypes.JSON `gorm:"type:jsonb" json:"meal_type"`
	DietTags      datatypes.JSON `gorm:"type:jsonb" json:"diet_tags"`
	IsAIGenerated bool           `gorm:"not null;default:false;column:is_ai_generated" json:"is_ai_generated"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Recipe) TableName() string { return "recipe" }
