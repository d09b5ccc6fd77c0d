package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{
		db: db,
	}
}

// CreateCart persists an empty cart for a user.
func (repo *cartRepository) CreateCart(ctx context.Context, cart *entity.Cart) error {
	cartM := &model.CartModel{
		ID:     cart.ID,
		UserID: cart.UserID,
	}

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(cartM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("user already has a cart")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("cart owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cart")
	}

	cart.ID = cartM.ID
	cart.CreatedAt = cartM.CreatedAt
	cart.UpdatedAt = cartM.UpdatedAt

	return nil
}

// FindCartByUserID loads the user's cart with items and products. Reads go to the primary so a
// cart mutated moments ago is returned as written.
func (repo *cartRepository) FindCartByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	var cartM model.CartModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_items.created_at ASC, cart_items.id ASC")
		}).
		Preload("Items.Product").
		Where("user_id = ?", userID).
		First(&cartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by user")
	}

	return toCartDomain(&cartM), nil
}

// AddItemQuantity inserts a (cart, product) line or atomically increments its quantity.
func (repo *cartRepository) AddItemQuantity(ctx context.Context, cartID, productID uuid.UUID, quantity int) error {
	itemM := &model.CartItemModel{
		CartID:    cartID,
		ProductID: productID,
		Quantity:  quantity,
	}

	if err := repo.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity":   gorm.Expr("cart_items.quantity + EXCLUDED.quantity"),
				"updated_at": gorm.Expr("EXCLUDED.updated_at"),
			}),
		}).
		Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WrapMessage("cart item references a missing product")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add cart item")
	}

	return repo.touch(ctx, cartID)
}

// UpdateItemQuantity sets the quantity of a line owned by cartID.
func (repo *cartRepository) UpdateItemQuantity(ctx context.Context, cartID, itemID uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("id = ? AND cart_id = ?", itemID, cartID).
		Updates(map[string]any{
			"quantity":   quantity,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update cart item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return repo.touch(ctx, cartID)
}

// DeleteItem removes a line owned by cartID.
func (repo *cartRepository) DeleteItem(ctx context.Context, cartID, itemID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND cart_id = ?", itemID, cartID).
		Delete(&model.CartItemModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete cart item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return repo.touch(ctx, cartID)
}

// ClearItems removes every line of the cart.
func (repo *cartRepository) ClearItems(ctx context.Context, cartID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&model.CartItemModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear cart")
	}

	return repo.touch(ctx, cartID)
}

func (repo *cartRepository) touch(ctx context.Context, cartID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.CartModel{}).
		Where("id = ?", cartID).
		Update("updated_at", time.Now()).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to touch cart")
	}

	return nil
}

// --- Mapper Functions ---

func toCartDomain(data *model.CartModel) *entity.Cart {
	if data == nil {
		return nil
	}

	items := make([]*entity.CartItem, len(data.Items))
	for i := range data.Items {
		itemM := &data.Items[i]
		items[i] = &entity.CartItem{
			ID:        itemM.ID,
			CartID:    itemM.CartID,
			ProductID: itemM.ProductID,
			Product:   toProductDomain(itemM.Product),
			Quantity:  itemM.Quantity,
			CreatedAt: itemM.CreatedAt,
			UpdatedAt: itemM.UpdatedAt,
		}
	}

	return &entity.Cart{
		ID:        data.ID,
		UserID:    data.UserID,
		Items:     items,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
