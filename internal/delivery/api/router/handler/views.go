package handler

import (
	"time"

	"storefront/internal/domain/analytics"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// money renders amounts with exactly two fractional digits.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

type UserView struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"createdAt"`
}

func newUserView(u *entity.User) UserView {
	return UserView{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      u.Role.String(),
		Enabled:   u.Enabled,
		CreatedAt: u.CreatedAt,
	}
}

type UserSummaryView struct {
	UserView
	TotalOrders int64 `json:"totalOrders"`
}

func newUserSummaryView(s *entity.UserSummary) UserSummaryView {
	return UserSummaryView{UserView: newUserView(s.User), TotalOrders: s.TotalOrders}
}

type AuthView struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	TokenType    string    `json:"tokenType"`
	User         *UserView `json:"user,omitempty"`
}

func newAuthView(out *usecase.AuthOutput) AuthView {
	view := AuthView{
		AccessToken:  out.AccessToken,
		RefreshToken: out.RefreshToken,
		TokenType:    "Bearer",
	}
	if out.User != nil {
		user := newUserView(out.User)
		view.User = &user
	}

	return view
}

type ProductView struct {
	ID             uuid.UUID         `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Price          string            `json:"price"`
	StockQuantity  int               `json:"stockQuantity"`
	InStock        bool              `json:"inStock"`
	Brand          string            `json:"brand"`
	Model          string            `json:"model"`
	Type           string            `json:"type"`
	ImageURLs      []string          `json:"imageUrls"`
	Specifications map[string]string `json:"specifications"`
	CategoryID     *uuid.UUID        `json:"categoryId,omitempty"`
	CategoryName   string            `json:"categoryName,omitempty"`
	Active         bool              `json:"active"`
	Featured       bool              `json:"featured"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

func newProductView(p *entity.Product) ProductView {
	view := ProductView{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Price:          money(p.Price),
		StockQuantity:  p.StockQuantity,
		InStock:        p.StockQuantity > 0,
		Brand:          p.Brand,
		Model:          p.Model,
		Type:           string(p.Type),
		ImageURLs:      p.ImageURLs,
		Specifications: p.Specifications,
		CategoryID:     p.CategoryID,
		Active:         p.Active,
		Featured:       p.Featured,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	if view.ImageURLs == nil {
		view.ImageURLs = []string{}
	}
	if view.Specifications == nil {
		view.Specifications = map[string]string{}
	}
	if p.Category != nil {
		view.CategoryName = p.Category.Name
	}

	return view
}

func newProductViews(products []*entity.Product) []ProductView {
	views := make([]ProductView, len(products))
	for i, p := range products {
		views[i] = newProductView(p)
	}

	return views
}

type CategoryView struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	ImageURL    string     `json:"imageUrl,omitempty"`
	ParentID    *uuid.UUID `json:"parentId,omitempty"`
	Active      bool       `json:"active"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func newCategoryView(c *entity.Category) CategoryView {
	return CategoryView{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		ImageURL:    c.ImageURL,
		ParentID:    c.ParentID,
		Active:      c.Active,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func newCategoryViews(categories []*entity.Category) []CategoryView {
	views := make([]CategoryView, len(categories))
	for i, c := range categories {
		views[i] = newCategoryView(c)
	}

	return views
}

type CategoryNodeView struct {
	CategoryView
	Children []CategoryNodeView `json:"children"`
}

func newCategoryTree(nodes []*entity.CategoryNode) []CategoryNodeView {
	views := make([]CategoryNodeView, len(nodes))
	for i, n := range nodes {
		views[i] = CategoryNodeView{
			CategoryView: newCategoryView(n.Category),
			Children:     newCategoryTree(n.Children),
		}
	}

	return views
}

type CartItemView struct {
	ID            uuid.UUID `json:"id"`
	ProductID     uuid.UUID `json:"productId"`
	ProductName   string    `json:"productName"`
	ProductImage  string    `json:"productImage,omitempty"`
	Price         string    `json:"price"`
	Quantity      int       `json:"quantity"`
	Subtotal      string    `json:"subtotal"`
	StockQuantity int       `json:"stockQuantity"`
}

type CartView struct {
	ID        uuid.UUID      `json:"id"`
	UserID    uuid.UUID      `json:"userId"`
	Items     []CartItemView `json:"items"`
	Total     string         `json:"total"`
	ItemCount int            `json:"itemCount"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

func newCartView(c *entity.Cart) CartView {
	items := make([]CartItemView, 0, len(c.Items))
	for _, item := range c.Items {
		view := CartItemView{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Subtotal:  money(item.Subtotal()),
			Price:     money(decimal.Zero),
		}
		if p := item.Product; p != nil {
			view.ProductName = p.Name
			view.Price = money(p.Price)
			view.StockQuantity = p.StockQuantity
			if len(p.ImageURLs) > 0 {
				view.ProductImage = p.ImageURLs[0]
			}
		}
		items = append(items, view)
	}

	return CartView{
		ID:        c.ID,
		UserID:    c.UserID,
		Items:     items,
		Total:     money(c.Total()),
		ItemCount: c.ItemCount(),
		UpdatedAt: c.UpdatedAt,
	}
}

type AddressView struct {
	ID         uuid.UUID `json:"id"`
	Street     string    `json:"street"`
	City       string    `json:"city"`
	State      string    `json:"state"`
	PostalCode string    `json:"postalCode"`
	Country    string    `json:"country"`
	Type       string    `json:"type"`
}

func newAddressView(a *entity.Address) *AddressView {
	if a == nil {
		return nil
	}

	return &AddressView{
		ID:         a.ID,
		Street:     a.Street,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
		Type:       string(a.Type),
	}
}

type OrderItemView struct {
	ID          uuid.UUID `json:"id"`
	ProductID   uuid.UUID `json:"productId"`
	ProductName string    `json:"productName"`
	Price       string    `json:"price"`
	Quantity    int       `json:"quantity"`
	Subtotal    string    `json:"subtotal"`
}

type OrderView struct {
	ID              uuid.UUID       `json:"id"`
	OrderNumber     string          `json:"orderNumber"`
	UserID          uuid.UUID       `json:"userId"`
	CustomerName    string          `json:"customerName,omitempty"`
	CustomerEmail   string          `json:"customerEmail,omitempty"`
	Items           []OrderItemView `json:"items"`
	Subtotal        string          `json:"subtotal"`
	Tax             string          `json:"tax"`
	ShippingCost    string          `json:"shippingCost"`
	Total           string          `json:"total"`
	Status          string          `json:"status"`
	PaymentStatus   string          `json:"paymentStatus"`
	PaymentMethod   string          `json:"paymentMethod"`
	ShippingAddress *AddressView    `json:"shippingAddress,omitempty"`
	BillingAddress  *AddressView    `json:"billingAddress,omitempty"`
	TrackingNumber  string          `json:"trackingNumber,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
	ShippedAt       *time.Time      `json:"shippedAt,omitempty"`
	DeliveredAt     *time.Time      `json:"deliveredAt,omitempty"`
}

func newOrderView(o *entity.Order) OrderView {
	items := make([]OrderItemView, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemView{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Price:       money(item.Price),
			Quantity:    item.Quantity,
			Subtotal:    money(item.Subtotal),
		}
	}

	view := OrderView{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		UserID:          o.UserID,
		Items:           items,
		Subtotal:        money(o.Subtotal),
		Tax:             money(o.Tax),
		ShippingCost:    money(o.ShippingCost),
		Total:           money(o.Total),
		Status:          string(o.Status),
		PaymentStatus:   string(o.PaymentStatus),
		PaymentMethod:   string(o.PaymentMethod),
		ShippingAddress: newAddressView(o.ShippingAddress),
		BillingAddress:  newAddressView(o.BillingAddress),
		TrackingNumber:  o.TrackingNumber,
		Notes:           o.Notes,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
		ShippedAt:       o.ShippedAt,
		DeliveredAt:     o.DeliveredAt,
	}
	if o.User != nil {
		view.CustomerName = o.User.FullName()
		view.CustomerEmail = o.User.Email
	}

	return view
}

type DailySalesView struct {
	Date    string `json:"date"`
	Label   string `json:"label"`
	Orders  int64  `json:"orders"`
	Revenue string `json:"revenue"`
}

type ProductSalesView struct {
	ProductID    uuid.UUID `json:"productId"`
	ProductName  string    `json:"productName"`
	QuantitySold int64     `json:"quantitySold"`
	TotalRevenue string    `json:"totalRevenue"`
}

type DashboardStatsView struct {
	TotalProducts    int64              `json:"totalProducts"`
	TotalOrders      int64              `json:"totalOrders"`
	TotalUsers       int64              `json:"totalUsers"`
	TotalRevenue     string             `json:"totalRevenue"`
	OrdersToday      int64              `json:"ordersToday"`
	RevenueToday     string             `json:"revenueToday"`
	OrdersThisMonth  int64              `json:"ordersThisMonth"`
	RevenueThisMonth string             `json:"revenueThisMonth"`
	OrdersByStatus   map[string]int64   `json:"ordersByStatus"`
	DailySales       []DailySalesView   `json:"dailySales"`
	TopProducts      []ProductSalesView `json:"topProducts"`
	SalesByCategory  map[string]string  `json:"salesByCategory"`
}

func newDashboardStatsView(s *analytics.DashboardStats) DashboardStatsView {
	view := DashboardStatsView{
		TotalProducts:    s.TotalProducts,
		TotalOrders:      s.TotalOrders,
		TotalUsers:       s.TotalUsers,
		TotalRevenue:     money(s.TotalRevenue),
		OrdersToday:      s.OrdersToday,
		RevenueToday:     money(s.RevenueToday),
		OrdersThisMonth:  s.OrdersThisMonth,
		RevenueThisMonth: money(s.RevenueThisMonth),
		OrdersByStatus:   make(map[string]int64, len(entity.OrderStatuses)),
		DailySales:       make([]DailySalesView, len(s.DailySales)),
		TopProducts:      make([]ProductSalesView, len(s.TopProducts)),
		SalesByCategory:  make(map[string]string, len(s.SalesByCategory)),
	}
	for _, status := range entity.OrderStatuses {
		view.OrdersByStatus[string(status)] = s.OrdersByStatus[status]
	}
	for i, d := range s.DailySales {
		view.DailySales[i] = DailySalesView{
			Date:    d.Date.Format(dateLayout),
			Label:   d.Label,
			Orders:  d.Orders,
			Revenue: money(d.Revenue),
		}
	}
	for i, p := range s.TopProducts {
		view.TopProducts[i] = ProductSalesView{
			ProductID:    p.ProductID,
			ProductName:  p.ProductName,
			QuantitySold: p.QuantitySold,
			TotalRevenue: money(p.TotalRevenue),
		}
	}
	for name, revenue := range s.SalesByCategory {
		view.SalesByCategory[name] = money(revenue)
	}

	return view
}
