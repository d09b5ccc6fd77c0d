package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table. Monetary columns are numeric(12,2).
type OrderModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderNumber       string          `gorm:"type:varchar(40);uniqueIndex:idx_orders_order_number;not null"`
	UserID            uuid.UUID       `gorm:"type:uuid;not null;index"`
	Subtotal          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Tax               decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ShippingCost      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Total             decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status            string          `gorm:"type:varchar(20);not null;index"`
	PaymentStatus     string          `gorm:"type:varchar(20);not null;index"`
	PaymentMethod     string          `gorm:"type:varchar(30);not null"`
	ShippingAddressID uuid.UUID       `gorm:"type:uuid;not null"`
	BillingAddressID  uuid.UUID       `gorm:"type:uuid;not null"`
	TrackingNumber    string          `gorm:"type:varchar(100)"`
	Notes             string          `gorm:"type:text"`
	CreatedAt         time.Time       `gorm:"index"`
	UpdatedAt         time.Time
	ShippedAt         *time.Time
	DeliveredAt       *time.Time

	User            *UserModel       `gorm:"foreignKey:UserID"`
	ShippingAddress *AddressModel    `gorm:"foreignKey:ShippingAddressID"`
	BillingAddress  *AddressModel    `gorm:"foreignKey:BillingAddressID"`
	Items           []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. Name and price are copies taken at purchase time.
type OrderItemModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity    int             `gorm:"not null"`
	Subtotal    decimal.Decimal `gorm:"type:numeric(12,2);not null"`

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
