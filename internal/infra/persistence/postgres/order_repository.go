package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/analytics"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

var orderSortColumns = sortColumns{
	columns: map[string]string{
		"createdAt":   "orders.created_at",
		"orderNumber": "orders.order_number",
		"total":       "orders.total",
		"status":      "orders.status",
	},
	fallback: "createdAt",
	tieBreak: "orders.id",
}

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// CreateOrder inserts the order header and its items. Inside an outer transaction GORM runs the
// nested transaction as a savepoint, so a duplicate order number only undoes this attempt.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(orderM).Error; err != nil {
			return err
		}
		if len(orderM.Items) == 0 {
			return nil
		}
		for i := range orderM.Items {
			orderM.Items[i].OrderID = orderM.ID
		}

		return tx.Omit(clause.Associations).Create(&orderM.Items).Error
	})
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrOrderNumberConflict
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WrapMessage("order references a missing row")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i, item := range order.Items {
		item.ID = orderM.Items[i].ID
		item.OrderID = orderM.ID
	}

	return nil
}

// FindOrderByID loads an order with items, addresses and owner.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return repo.findOne(repo.withDetails(repo.db.WithContext(ctx)).Where("orders.id = ?", id))
}

// FindOrderByIDForUpdate locks the order row until the surrounding transaction ends.
func (repo *orderRepository) FindOrderByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return repo.findOne(repo.withDetails(repo.db.WithContext(ctx)).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("orders.id = ?", id))
}

// FindOrderByNumber loads an order by its order number.
func (repo *orderRepository) FindOrderByNumber(ctx context.Context, orderNumber string) (*entity.Order, error) {
	return repo.findOne(repo.withDetails(repo.db.WithContext(ctx)).Where("orders.order_number = ?", orderNumber))
}

// ListOrders returns one page of orders matching filter.
func (repo *orderRepository) ListOrders(ctx context.Context, filter repository.OrderFilter, page entity.PageRequest) (*entity.Page[*entity.Order], error) {
	query := repo.db.WithContext(ctx).Model(&model.OrderModel{})
	if filter.UserID != nil {
		query = query.Where("orders.user_id = ?", *filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("orders.status = ?", string(filter.Status))
	}
	if filter.Keyword != "" {
		pattern := containsPattern(filter.Keyword)
		customers := repo.db.Session(&gorm.Session{NewDB: true}).
			Model(&model.UserModel{}).
			Select("id").
			Where("LOWER(email) LIKE ? OR LOWER(first_name || ' ' || last_name) LIKE ?", pattern, pattern)
		query = query.Where("(LOWER(orders.order_number) LIKE ? OR orders.user_id IN (?))", pattern, customers)
	}

	rows, total, err := findPage[model.OrderModel](query, page, orderSortColumns, "Items", "User")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, len(rows))
	for i, m := range rows {
		orders[i] = toOrderDomain(m)
	}

	return entity.NewPage(orders, total, page), nil
}

// UpdateOrderFulfilment saves the mutable fulfilment columns of an order.
func (repo *orderRepository) UpdateOrderFulfilment(ctx context.Context, order *entity.Order) error {
	orderM := &model.OrderModel{
		Status:         string(order.Status),
		TrackingNumber: order.TrackingNumber,
		Notes:          order.Notes,
		ShippedAt:      order.ShippedAt,
		DeliveredAt:    order.DeliveredAt,
		UpdatedAt:      time.Now(),
	}

	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{ID: order.ID}).
		Select("status", "tracking_number", "notes", "shipped_at", "delivered_at", "updated_at").
		Updates(orderM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// CountOrders returns the number of orders.
func (repo *orderRepository) CountOrders(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.OrderModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count orders")
	}

	return count, nil
}

// CountOrdersByStatus returns order counts keyed by status.
func (repo *orderRepository) CountOrdersByStatus(ctx context.Context) (map[entity.OrderStatus]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count orders by status")
	}

	counts := make(map[entity.OrderStatus]int64, len(rows))
	for _, row := range rows {
		counts[entity.OrderStatus(row.Status)] = row.Count
	}

	return counts, nil
}

// SumPaidRevenue sums totals of PAID orders.
func (repo *orderRepository) SumPaidRevenue(ctx context.Context) (decimal.Decimal, error) {
	var revenue decimal.Decimal

	row := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("COALESCE(SUM(total), 0)").
		Where("payment_status = ?", string(entity.PaymentStatusPaid)).
		Row()
	if err := row.Scan(&revenue); err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to sum paid revenue")
	}

	return revenue, nil
}

// FindOrderSnapshotsSince returns lightweight rows of orders created at or after since.
func (repo *orderRepository) FindOrderSnapshotsSince(ctx context.Context, since time.Time) ([]analytics.OrderSnapshot, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Select("id", "status", "payment_status", "total", "created_at").
		Where("created_at >= ?", since).
		Order("created_at ASC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load recent orders")
	}

	snapshots := make([]analytics.OrderSnapshot, len(orderModels))
	for i, m := range orderModels {
		snapshots[i] = analytics.OrderSnapshot{
			ID:            m.ID,
			Status:        entity.OrderStatus(m.Status),
			PaymentStatus: entity.PaymentStatus(m.PaymentStatus),
			Total:         m.Total,
			CreatedAt:     m.CreatedAt,
		}
	}

	return snapshots, nil
}

// FindPaidSaleLines returns one row per item of every PAID order with its product's category.
func (repo *orderRepository) FindPaidSaleLines(ctx context.Context) ([]analytics.SaleLine, error) {
	var rows []struct {
		ProductID    uuid.UUID
		ProductName  string
		CategoryName string
		Quantity     int
		Subtotal     decimal.Decimal
	}

	if err := repo.db.WithContext(ctx).
		Table("order_items").
		Select("order_items.product_id, order_items.product_name, COALESCE(categories.name, '') AS category_name, order_items.quantity, order_items.subtotal").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("LEFT JOIN products ON products.id = order_items.product_id").
		Joins("LEFT JOIN categories ON categories.id = products.category_id").
		Where("orders.payment_status = ?", string(entity.PaymentStatusPaid)).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load paid sale lines")
	}

	lines := make([]analytics.SaleLine, len(rows))
	for i, row := range rows {
		lines[i] = analytics.SaleLine{
			ProductID:    row.ProductID,
			ProductName:  row.ProductName,
			CategoryName: row.CategoryName,
			Quantity:     row.Quantity,
			Subtotal:     row.Subtotal,
		}
	}

	return lines, nil
}

// withDetails preloads everything an order view renders. Reads go to the primary so an order is
// visible right after it was placed or updated.
func (repo *orderRepository) withDetails(db *gorm.DB) *gorm.DB {
	return db.
		Clauses(dbresolver.Write).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.product_name ASC, order_items.id ASC")
		}).
		Preload("User").
		Preload("ShippingAddress").
		Preload("BillingAddress")
}

func (repo *orderRepository) findOne(query *gorm.DB) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := query.First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return toOrderDomain(&orderM), nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]*entity.OrderItem, len(data.Items))
	for i := range data.Items {
		itemM := &data.Items[i]
		items[i] = &entity.OrderItem{
			ID:          itemM.ID,
			OrderID:     itemM.OrderID,
			ProductID:   itemM.ProductID,
			ProductName: itemM.ProductName,
			Price:       itemM.Price,
			Quantity:    itemM.Quantity,
			Subtotal:    itemM.Subtotal,
		}
	}

	return &entity.Order{
		ID:                data.ID,
		OrderNumber:       data.OrderNumber,
		UserID:            data.UserID,
		User:              toUserDomain(data.User),
		Items:             items,
		Subtotal:          data.Subtotal,
		Tax:               data.Tax,
		ShippingCost:      data.ShippingCost,
		Total:             data.Total,
		Status:            entity.OrderStatus(data.Status),
		PaymentStatus:     entity.PaymentStatus(data.PaymentStatus),
		PaymentMethod:     entity.PaymentMethod(data.PaymentMethod),
		ShippingAddressID: data.ShippingAddressID,
		BillingAddressID:  data.BillingAddressID,
		ShippingAddress:   toAddressDomain(data.ShippingAddress),
		BillingAddress:    toAddressDomain(data.BillingAddress),
		TrackingNumber:    data.TrackingNumber,
		Notes:             data.Notes,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
		ShippedAt:         data.ShippedAt,
		DeliveredAt:       data.DeliveredAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]model.OrderItemModel, len(data.Items))
	for i, item := range data.Items {
		items[i] = model.OrderItemModel{
			ID:          item.ID,
			OrderID:     item.OrderID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Price:       item.Price,
			Quantity:    item.Quantity,
			Subtotal:    item.Subtotal,
		}
	}

	return &model.OrderModel{
		ID:                data.ID,
		OrderNumber:       data.OrderNumber,
		UserID:            data.UserID,
		Subtotal:          data.Subtotal,
		Tax:               data.Tax,
		ShippingCost:      data.ShippingCost,
		Total:             data.Total,
		Status:            string(data.Status),
		PaymentStatus:     string(data.PaymentStatus),
		PaymentMethod:     string(data.PaymentMethod),
		ShippingAddressID: data.ShippingAddressID,
		BillingAddressID:  data.BillingAddressID,
		TrackingNumber:    data.TrackingNumber,
		Notes:             data.Notes,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
		ShippedAt:         data.ShippedAt,
		DeliveredAt:       data.DeliveredAt,
		Items:             items,
	}
}
