package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfilment state of an order. Administrators may set any status from any other.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

// OrderStatuses lists every declared status in lifecycle order.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// ParseOrderStatus parses a status name case-insensitively.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	status := OrderStatus(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range OrderStatuses {
		if status == known {
			return status, true
		}
	}

	return "", false
}

// PaymentStatus tracks settlement. Only PAID orders count toward revenue.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusFailed   PaymentStatus = "FAILED"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

// PaymentMethod is how the customer intends to pay.
type PaymentMethod string

const (
	PaymentMethodCreditCard     PaymentMethod = "CREDIT_CARD"
	PaymentMethodDebitCard      PaymentMethod = "DEBIT_CARD"
	PaymentMethodUPI            PaymentMethod = "UPI"
	PaymentMethodNetBanking     PaymentMethod = "NET_BANKING"
	PaymentMethodCashOnDelivery PaymentMethod = "CASH_ON_DELIVERY"
)

// ParsePaymentMethod parses a payment method name case-insensitively.
func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	method := PaymentMethod(strings.ToUpper(strings.TrimSpace(s)))
	switch method {
	case PaymentMethodCreditCard, PaymentMethodDebitCard, PaymentMethodUPI, PaymentMethodNetBanking, PaymentMethodCashOnDelivery:
		return method, true
	default:
		return "", false
	}
}

// Order is the immutable record of a purchase. After creation only the status, tracking number,
// notes and the shipped/delivered stamps change.
type Order struct {
	ID                uuid.UUID
	OrderNumber       string // Human-readable unique number, ORD-<millis>-<suffix>.
	UserID            uuid.UUID
	User              *User // Loaded owner, used by admin views.
	Items             []*OrderItem
	Subtotal          decimal.Decimal
	Tax               decimal.Decimal
	ShippingCost      decimal.Decimal
	Total             decimal.Decimal // Subtotal + Tax + ShippingCost, fixed at creation.
	Status            OrderStatus
	PaymentStatus     PaymentStatus
	PaymentMethod     PaymentMethod
	ShippingAddressID uuid.UUID
	BillingAddressID  uuid.UUID
	ShippingAddress   *Address
	BillingAddress    *Address
	TrackingNumber    string
	Notes             string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	ShippedAt         *time.Time
	DeliveredAt       *time.Time
}

// ApplyStatus moves the order to status and stamps shippedAt/deliveredAt the first time the
// order enters SHIPPED or DELIVERED. Existing stamps are kept.
func (o *Order) ApplyStatus(status OrderStatus, now time.Time) {
	o.Status = status
	switch status {
	case OrderStatusShipped:
		if o.ShippedAt == nil {
			stamp := now
			o.ShippedAt = &stamp
		}
	case OrderStatusDelivered:
		if o.DeliveredAt == nil {
			stamp := now
			o.DeliveredAt = &stamp
		}
	}
}

// IsPaid reports whether the order counts toward revenue.
func (o *Order) IsPaid() bool {
	return o.PaymentStatus == PaymentStatusPaid
}

// OrderItem is a snapshot of one purchased product line.
type OrderItem struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	ProductID   uuid.UUID
	ProductName string          // Name at purchase time.
	Price       decimal.Decimal // Unit price frozen at purchase time.
	Quantity    int
	Subtotal    decimal.Decimal // Price × Quantity.
}
