package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/pricing"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type orderService struct {
	txManager   repository.TransactionManager
	orderRepo   repository.OrderRepository
	publisher   service.EventPublisher
	qrService   service.QRCodeService
	rules       pricing.Rules
	maxAttempts int
	now         func() time.Time
	orderNumber func(time.Time) string
	logger      *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Publisher service.EventPublisher
	QRService service.QRCodeService
	Config    *config.Config
	Logger    *slog.Logger
}

// NewOrderService creates the checkout service. It fails when the configured pricing is invalid.
func NewOrderService(params OrderServiceParams) (usecase.OrderUsecase, error) {
	rules, err := pricingRulesFromConfig(params.Config)
	if err != nil {
		return nil, err
	}

	return &orderService{
		txManager:   params.TxManager,
		orderRepo:   params.OrderRepo,
		publisher:   params.Publisher,
		qrService:   params.QRService,
		rules:       rules,
		maxAttempts: orderNumberRetries(params.Config),
		now:         time.Now,
		orderNumber: newOrderNumber,
		logger:      params.Logger,
	}, nil
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder turns the user's cart into an order. The shipping address, the order and the
// emptied cart are committed together or not at all.
func (srv *orderService) CreateOrder(ctx context.Context, userID uuid.UUID, input *usecase.CreateOrderInput) (*entity.Order, error) {
	method, ok := entity.ParsePaymentMethod(input.PaymentMethod)
	if !ok {
		return nil, domainerrors.ErrInvalidPaymentMethod.WrapMessage(input.PaymentMethod)
	}
	if err := validateAddressInput(&input.ShippingAddress); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Creating order", slog.Any("userID", userID))

	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.NewCartRepository()

		if _, err := repoFactory.NewUserRepository().FindByID(ctx, userID); err != nil {
			return translateUserError(err)
		}

		cart, err := cartRepo.FindCartByUserID(ctx, userID)
		if err != nil {
			return translateCartError(err)
		}
		if cart.IsEmpty() {
			return domainerrors.ErrEmptyCart.WrapMessage("cannot place an order")
		}

		address := &entity.Address{
			UserID:     userID,
			Street:     strings.TrimSpace(input.ShippingAddress.Street),
			City:       strings.TrimSpace(input.ShippingAddress.City),
			State:      strings.TrimSpace(input.ShippingAddress.State),
			PostalCode: strings.TrimSpace(input.ShippingAddress.PostalCode),
			Country:    strings.TrimSpace(input.ShippingAddress.Country),
			Type:       entity.AddressTypeShipping,
			IsDefault:  false,
		}
		if err := repoFactory.NewAddressRepository().CreateAddress(ctx, address); err != nil {
			return errors.Wrap(err, "failed to save shipping address")
		}

		order, err = srv.assemble(userID, cart, address, method, input)
		if err != nil {
			return err
		}

		if err := srv.insertWithOrderNumber(ctx, repoFactory.NewOrderRepository(), order); err != nil {
			return err
		}

		return cartRepo.ClearItems(ctx, cart.ID)
	})
	if err != nil {
		srv.log(ctx).Warn("Order creation failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create order")
	}
	srv.log(ctx).Info("Order created", slog.Any("orderID", order.ID), slog.String("orderNumber", order.OrderNumber))

	// The order is committed and the cart cleared; a failed reload falls back to the assembled order.
	created, err := srv.orderRepo.FindOrderByID(ctx, order.ID)
	if err != nil {
		srv.log(ctx).Warn("Failed to reload created order", slog.Any("orderID", order.ID), slog.Any("error", err))
		created = order
	}

	publishOrderEvent(ctx, srv.publisher, srv.log(ctx), service.EventOrderPlaced, created, "")

	return created, nil
}

// assemble prices the cart and snapshots every line into an order item.
func (srv *orderService) assemble(
	userID uuid.UUID,
	cart *entity.Cart,
	address *entity.Address,
	method entity.PaymentMethod,
	input *usecase.CreateOrderInput,
) (*entity.Order, error) {
	lines := make([]pricing.Line, 0, len(cart.Items))
	items := make([]*entity.OrderItem, 0, len(cart.Items))
	for _, cartItem := range cart.Items {
		if cartItem.Product == nil {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("cart line without product")
		}

		line := pricing.Line{UnitPrice: cartItem.Product.Price, Quantity: cartItem.Quantity}
		lines = append(lines, line)
		items = append(items, &entity.OrderItem{
			ProductID:   cartItem.ProductID,
			ProductName: cartItem.Product.Name,
			Price:       cartItem.Product.Price,
			Quantity:    cartItem.Quantity,
			Subtotal:    line.Subtotal(),
		})
	}

	quote := srv.rules.Quote(lines, input.ShippingMethod)

	return &entity.Order{
		UserID:            userID,
		Items:             items,
		Subtotal:          quote.Subtotal,
		Tax:               quote.Tax,
		ShippingCost:      quote.ShippingCost,
		Total:             quote.Total,
		Status:            entity.OrderStatusPending,
		PaymentStatus:     entity.PaymentStatusPending,
		PaymentMethod:     method,
		ShippingAddressID: address.ID,
		BillingAddressID:  address.ID,
		Notes:             input.Notes,
	}, nil
}

// insertWithOrderNumber allocates an order number and inserts the order, drawing a new number
// whenever the previous one is already taken.
func (srv *orderService) insertWithOrderNumber(ctx context.Context, orderRepo repository.OrderRepository, order *entity.Order) error {
	for attempt := 1; attempt <= srv.maxAttempts; attempt++ {
		order.OrderNumber = srv.orderNumber(srv.now())

		err := orderRepo.CreateOrder(ctx, order)
		if err == nil {
			return nil
		}
		if !errors.Is(err, repository.ErrOrderNumberConflict) {
			return errors.Wrap(err, "failed to insert order")
		}
		srv.log(ctx).Warn("Order number collision",
			slog.String("orderNumber", order.OrderNumber),
			slog.Int("attempt", attempt),
		)
	}

	return domainerrors.ErrOrderNumberExhausted.WrapMessage("order number retries exhausted")
}

func (srv *orderService) ListUserOrders(ctx context.Context, userID uuid.UUID, page entity.PageRequest) (*entity.Page[*entity.Order], error) {
	orders, err := srv.orderRepo.ListOrders(ctx, repository.OrderFilter{UserID: &userID}, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user orders")
	}

	return orders, nil
}

func (srv *orderService) GetUserOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindOrderByID(ctx, orderID)

	return ownedOrder(order, err, userID)
}

func (srv *orderService) GetUserOrderByNumber(ctx context.Context, userID uuid.UUID, orderNumber string) (*entity.Order, error) {
	order, err := srv.orderRepo.FindOrderByNumber(ctx, strings.TrimSpace(orderNumber))

	return ownedOrder(order, err, userID)
}

func (srv *orderService) GetReceiptQR(ctx context.Context, userID, orderID uuid.UUID) ([]byte, error) {
	order, err := srv.GetUserOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateOrderReceiptQR(order.OrderNumber)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render receipt QR code")
	}

	return png, nil
}

// ownedOrder hides orders of other users behind the same not-found error as missing ones.
func ownedOrder(order *entity.Order, err error, userID uuid.UUID) (*entity.Order, error) {
	if err != nil {
		return nil, translateOrderError(err)
	}
	if order.UserID != userID {
		return nil, domainerrors.ErrOrderNotFound.WrapMessage("order belongs to another user")
	}

	return order, nil
}

func validateAddressInput(address *usecase.AddressInput) error {
	required := []struct {
		field string
		value string
	}{
		{"street", address.Street},
		{"city", address.City},
		{"state", address.State},
		{"postalCode", address.PostalCode},
		{"country", address.Country},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return domainerrors.ErrValidationFailed.WithDetails("shippingAddress." + r.field + " is required")
		}
	}

	return nil
}

func translateOrderError(err error) error {
	if errors.Is(err, repository.ErrOrderNotFound) {
		return domainerrors.ErrOrderNotFound.WrapMessage(err.Error())
	}

	return errors.Wrap(err, "failed to find order")
}

func translateUserError(err error) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound.WrapMessage(err.Error())
	}

	return errors.Wrap(err, "failed to find user")
}
