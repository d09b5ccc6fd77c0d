package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string     `gorm:"type:varchar(100);uniqueIndex:idx_categories_name;not null"`
	Description string     `gorm:"type:text"`
	ImageURL    string     `gorm:"type:varchar(500)"`
	ParentID    *uuid.UUID `gorm:"type:uuid;index"`
	Active      bool       `gorm:"not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Parent *CategoryModel `gorm:"foreignKey:ParentID"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ProductModel mirrors the 'products' table. Images and specifications are jsonb columns.
type ProductModel struct {
	ID             uuid.UUID                             `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name           string                                `gorm:"type:varchar(200);not null"`
	Description    string                                `gorm:"type:text"`
	Price          decimal.Decimal                       `gorm:"type:numeric(12,2);not null"`
	StockQuantity  int                                   `gorm:"not null;check:chk_products_stock_non_negative,stock_quantity >= 0"`
	Brand          string                                `gorm:"type:varchar(100);index"`
	Model          string                                `gorm:"type:varchar(100)"`
	Type           string                                `gorm:"type:varchar(30);not null;index"`
	ImageURLs      datatypes.JSONSlice[string]           `gorm:"column:image_urls;type:jsonb"`
	Specifications datatypes.JSONType[map[string]string] `gorm:"type:jsonb"`
	CategoryID     *uuid.UUID                            `gorm:"type:uuid;index"`
	Active         bool                                  `gorm:"not null;index"`
	Featured       bool                                  `gorm:"not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
