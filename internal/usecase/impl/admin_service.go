package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/analytics"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

type adminService struct {
	txManager   repository.TransactionManager
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	publisher   service.EventPublisher
	location    *time.Location
	now         func() time.Time
	logger      *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	OrderRepo   repository.OrderRepository
	ProductRepo repository.ProductRepository
	UserRepo    repository.UserRepository
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAdminService creates the admin console service. It fails when store.timeZone is not a
// known IANA zone.
func NewAdminService(params AdminServiceParams) (usecase.AdminUsecase, error) {
	loc, err := storeLocation(params.Config)
	if err != nil {
		return nil, err
	}

	return &adminService{
		txManager:   params.TxManager,
		orderRepo:   params.OrderRepo,
		productRepo: params.ProductRepo,
		userRepo:    params.UserRepo,
		publisher:   params.Publisher,
		location:    loc,
		now:         time.Now,
		logger:      params.Logger,
	}, nil
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func requireAdmin(actor usecase.Actor) error {
	if !actor.IsAdmin() {
		return domainerrors.ErrForbidden.WrapMessage("administrator role required")
	}

	return nil
}

// GetDashboardStats loads the inputs of the dashboard concurrently and aggregates them.
func (srv *adminService) GetDashboardStats(ctx context.Context, actor usecase.Actor) (*analytics.DashboardStats, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	now := srv.now()
	in := analytics.Input{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		in.TotalProducts, err = srv.productRepo.CountProducts(gctx)

		return errors.Wrap(err, "count products")
	})
	g.Go(func() (err error) {
		in.TotalUsers, err = srv.userRepo.Count(gctx)

		return errors.Wrap(err, "count users")
	})
	g.Go(func() (err error) {
		in.TotalOrders, err = srv.orderRepo.CountOrders(gctx)

		return errors.Wrap(err, "count orders")
	})
	g.Go(func() (err error) {
		in.TotalRevenue, err = srv.orderRepo.SumPaidRevenue(gctx)

		return errors.Wrap(err, "sum revenue")
	})
	g.Go(func() (err error) {
		in.StatusCounts, err = srv.orderRepo.CountOrdersByStatus(gctx)

		return errors.Wrap(err, "count orders by status")
	})
	g.Go(func() (err error) {
		in.RecentOrders, err = srv.orderRepo.FindOrderSnapshotsSince(gctx, analytics.WindowStart(now, srv.location))

		return errors.Wrap(err, "load recent orders")
	})
	g.Go(func() (err error) {
		in.PaidSales, err = srv.orderRepo.FindPaidSaleLines(gctx)

		return errors.Wrap(err, "load paid sales")
	})
	if err := g.Wait(); err != nil {
		srv.log(ctx).Error("Failed to load dashboard inputs", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load dashboard statistics")
	}

	return analytics.Aggregate(now, srv.location, in), nil
}

func (srv *adminService) ListOrders(ctx context.Context, actor usecase.Actor, page entity.PageRequest) (*entity.Page[*entity.Order], error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	return srv.listOrders(ctx, repository.OrderFilter{}, page)
}

func (srv *adminService) ListOrdersByStatus(ctx context.Context, actor usecase.Actor, status string, page entity.PageRequest) (*entity.Page[*entity.Order], error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	parsed, ok := entity.ParseOrderStatus(status)
	if !ok {
		return nil, domainerrors.ErrInvalidOrderStatus.WrapMessage(status)
	}

	return srv.listOrders(ctx, repository.OrderFilter{Status: parsed}, page)
}

// SearchOrders matches the keyword against order numbers and customer names and emails.
func (srv *adminService) SearchOrders(ctx context.Context, actor usecase.Actor, keyword string, page entity.PageRequest) (*entity.Page[*entity.Order], error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	return srv.listOrders(ctx, repository.OrderFilter{Keyword: strings.TrimSpace(keyword)}, page)
}

func (srv *adminService) listOrders(ctx context.Context, filter repository.OrderFilter, page entity.PageRequest) (*entity.Page[*entity.Order], error) {
	orders, err := srv.orderRepo.ListOrders(ctx, filter, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

func (srv *adminService) GetOrder(ctx context.Context, actor usecase.Actor, orderID uuid.UUID) (*entity.Order, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	order, err := srv.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, translateOrderError(err)
	}

	return order, nil
}

// UpdateOrderStatus moves an order to any status under a row lock. Shipping and delivery times
// are stamped on first entry; tracking number and notes change only when provided.
func (srv *adminService) UpdateOrderStatus(
	ctx context.Context,
	actor usecase.Actor,
	orderID uuid.UUID,
	input *usecase.UpdateOrderStatusInput,
) (*entity.Order, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	status, ok := entity.ParseOrderStatus(input.Status)
	if !ok {
		return nil, domainerrors.ErrInvalidOrderStatus.WrapMessage(input.Status)
	}

	var (
		previous entity.OrderStatus
		order    *entity.Order
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		var err error
		order, err = orderRepo.FindOrderByIDForUpdate(ctx, orderID)
		if err != nil {
			return translateOrderError(err)
		}

		previous = order.Status
		order.ApplyStatus(status, srv.now())
		if input.TrackingNumber != nil {
			order.TrackingNumber = *input.TrackingNumber
		}
		if input.Notes != nil {
			order.Notes = *input.Notes
		}

		return orderRepo.UpdateOrderFulfilment(ctx, order)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update order status")
	}
	srv.log(ctx).Info("Order status updated",
		slog.Any("orderID", orderID),
		slog.String("from", string(previous)),
		slog.String("to", string(status)),
		slog.Any("actor", actor.UserID),
	)

	// The update is committed; a failed reload falls back to the locked copy.
	updated, err := srv.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		srv.log(ctx).Warn("Failed to reload updated order", slog.Any("orderID", orderID), slog.Any("error", err))
		updated = order
	}

	publishOrderEvent(ctx, srv.publisher, srv.log(ctx), service.EventOrderStatusChanged, updated, previous)

	return updated, nil
}

// ListUsers pages through accounts together with how many orders each placed.
func (srv *adminService) ListUsers(ctx context.Context, actor usecase.Actor, page entity.PageRequest) (*entity.Page[*entity.UserSummary], error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	users, err := srv.userRepo.ListSummaries(ctx, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}
