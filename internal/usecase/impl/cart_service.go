package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type cartService struct {
	txManager repository.TransactionManager
	cartRepo  repository.CartRepository
	logger    *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	CartRepo  repository.CartRepository
	Logger    *slog.Logger
}

// NewCartService creates the cart service.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		txManager: params.TxManager,
		cartRepo:  params.CartRepo,
		logger:    params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart returns the user's cart, creating it on first access.
func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	cart, err := srv.cartRepo.FindCartByUserID(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, repository.ErrCartNotFound) {
		return nil, errors.Wrap(err, "failed to find cart")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		_, err := ensureCart(ctx, repoFactory.NewCartRepository(), userID)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cart")
	}
	srv.log(ctx).Info("Cart created on first access", slog.Any("userID", userID))

	return srv.reload(ctx, userID)
}

// AddToCart adds units of an active product. A product already in the cart has its quantity
// increased; stock must cover the resulting quantity.
func (srv *cartService) AddToCart(ctx context.Context, userID uuid.UUID, input *usecase.AddToCartInput) (*entity.Cart, error) {
	if input.Quantity <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be positive")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.NewCartRepository()

		product, err := repoFactory.NewProductRepository().FindProductByID(ctx, input.ProductID)
		if err != nil {
			return translateProductError(err)
		}
		if !product.Active {
			return domainerrors.ErrProductUnavailable.WrapMessage(product.Name)
		}

		cart, err := ensureCart(ctx, cartRepo, userID)
		if err != nil {
			return err
		}

		resulting := input.Quantity
		for _, item := range cart.Items {
			if item.ProductID == product.ID {
				resulting += item.Quantity

				break
			}
		}
		if !product.HasStock(resulting) {
			return domainerrors.ErrInsufficientStock.WrapMessage(product.Name)
		}

		return cartRepo.AddItemQuantity(ctx, cart.ID, product.ID, input.Quantity)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to add to cart")
	}
	srv.log(ctx).Debug("Added to cart", slog.Any("userID", userID), slog.Any("productID", input.ProductID), slog.Int("quantity", input.Quantity))

	return srv.reload(ctx, userID)
}

// UpdateCartItem sets a line's quantity, removing the line when quantity is zero or less.
func (srv *cartService) UpdateCartItem(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*entity.Cart, error) {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.NewCartRepository()

		cart, item, err := findOwnedItem(ctx, cartRepo, userID, itemID)
		if err != nil {
			return err
		}

		if quantity <= 0 {
			return translateCartItemError(cartRepo.DeleteItem(ctx, cart.ID, item.ID))
		}
		if item.Product != nil && !item.Product.HasStock(quantity) {
			return domainerrors.ErrInsufficientStock.WrapMessage(item.Product.Name)
		}

		return translateCartItemError(cartRepo.UpdateItemQuantity(ctx, cart.ID, item.ID, quantity))
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update cart item")
	}

	return srv.reload(ctx, userID)
}

func (srv *cartService) RemoveCartItem(ctx context.Context, userID, itemID uuid.UUID) (*entity.Cart, error) {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.NewCartRepository()

		cart, item, err := findOwnedItem(ctx, cartRepo, userID, itemID)
		if err != nil {
			return err
		}

		return translateCartItemError(cartRepo.DeleteItem(ctx, cart.ID, item.ID))
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to remove cart item")
	}

	return srv.reload(ctx, userID)
}

func (srv *cartService) ClearCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.NewCartRepository()

		cart, err := ensureCart(ctx, cartRepo, userID)
		if err != nil {
			return err
		}

		return cartRepo.ClearItems(ctx, cart.ID)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to clear cart")
	}
	srv.log(ctx).Debug("Cart cleared", slog.Any("userID", userID))

	return srv.reload(ctx, userID)
}

func (srv *cartService) reload(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	cart, err := srv.cartRepo.FindCartByUserID(ctx, userID)
	if err != nil {
		return nil, translateCartError(err)
	}

	return cart, nil
}

// ensureCart loads the user's cart, creating an empty one when missing.
func ensureCart(ctx context.Context, cartRepo repository.CartRepository, userID uuid.UUID) (*entity.Cart, error) {
	cart, err := cartRepo.FindCartByUserID(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, repository.ErrCartNotFound) {
		return nil, errors.Wrap(err, "failed to find cart")
	}

	cart = &entity.Cart{UserID: userID}
	if err := cartRepo.CreateCart(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "failed to create cart")
	}

	return cart, nil
}

// findOwnedItem resolves a cart line through the caller's own cart, so lines of other carts
// are reported as missing.
func findOwnedItem(ctx context.Context, cartRepo repository.CartRepository, userID, itemID uuid.UUID) (*entity.Cart, *entity.CartItem, error) {
	cart, err := cartRepo.FindCartByUserID(ctx, userID)
	if err != nil {
		return nil, nil, translateCartError(err)
	}

	item, ok := cart.FindItem(itemID)
	if !ok {
		return nil, nil, domainerrors.ErrCartItemNotFound.WrapMessage("item is not in the cart")
	}

	return cart, item, nil
}

func translateCartError(err error) error {
	if errors.Is(err, repository.ErrCartNotFound) {
		return domainerrors.ErrCartNotFound.WrapMessage(err.Error())
	}

	return errors.Wrap(err, "failed to find cart")
}

func translateCartItemError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrCartItemNotFound) {
		return domainerrors.ErrCartItemNotFound.WrapMessage(err.Error())
	}

	return err
}
