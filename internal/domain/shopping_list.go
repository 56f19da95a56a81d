package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShoppingList struct {
	ID     uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"index;not null" json:"user_id"`
	User   *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`

	Name      string    `gorm:"not null;column:name" json:"name"`
	StartDate time.Time `gorm:"not null;column:start_date" json:"start_date"`
	EndDate   time.Time `gorm:"not null;column:end_date" json:"end_date"`

	Items []ShoppingListItem `gorm:"foreignKey:ShoppingListID;references:ID" json:"items"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (ShoppingList) TableName() string { return "shopping_list" }

type ShoppingListItem struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ShoppingListID uuid.UUID `gorm:"index;not null" json:"shopping_list_id"`

	Name      string  `gorm:"not null;column:name" json:"name"`
	Amount    float64 `gorm:"not null;column:amount" json:"amount"`
	Unit      string  `gorm:"not null;column:unit" json:"unit"`
	Category  string  `gorm:"not null;column:category" json:"category"`
	IsChecked bool    `gorm:"not null;default:false;column:is_checked" json:"is_checked"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (ShoppingListItem) TableName() string { return "shopping_list_item" }
