// Package analytics rolls order history up into dashboard statistics.
//
// Aggregate is pure: callers load snapshots from storage and pass the clock and location
// explicitly, so results are reproducible for a given input.
package analytics

import (
	"cmp"
	"slices"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// TrendDays is the number of daily points in the sales trend, today included.
	TrendDays = 7
	// TopProductsLimit is the number of best sellers reported.
	TopProductsLimit = 5
	// UncategorizedKey buckets revenue of products without a category.
	UncategorizedKey = "Uncategorized"
	// DayLabelLayout renders trend labels such as "Jan 02".
	DayLabelLayout = "Jan 02"

	secondsPerDay = 24 * 60 * 60
)

// OrderSnapshot is the slice of an order the time-window rollups need.
type OrderSnapshot struct {
	ID            uuid.UUID
	Status        entity.OrderStatus
	PaymentStatus entity.PaymentStatus
	Total         decimal.Decimal
	CreatedAt     time.Time
}

// SaleLine is one order item of a PAID order, joined with its product's current category.
type SaleLine struct {
	ProductID    uuid.UUID
	ProductName  string
	CategoryName string // Empty when the product has no category.
	Quantity     int
	Subtotal     decimal.Decimal
}

// Input carries everything Aggregate reads.
type Input struct {
	TotalProducts int64
	TotalUsers    int64
	TotalOrders   int64
	TotalRevenue  decimal.Decimal              // Sum of totals over PAID orders.
	StatusCounts  map[entity.OrderStatus]int64 // Order counts per status; missing keys mean zero.
	RecentOrders  []OrderSnapshot              // Orders created at or after WindowStart.
	PaidSales     []SaleLine                   // Items of every PAID order.
}

// DailySales is one point of the trend.
type DailySales struct {
	Date    time.Time // First instant of the day in the store time zone.
	Label   string
	Orders  int64
	Revenue decimal.Decimal
}

// ProductSales is a best-seller row.
type ProductSales struct {
	ProductID    uuid.UUID
	ProductName  string
	QuantitySold int64
	TotalRevenue decimal.Decimal
}

// DashboardStats is the admin dashboard payload.
type DashboardStats struct {
	TotalProducts    int64
	TotalOrders      int64
	TotalUsers       int64
	TotalRevenue     decimal.Decimal
	OrdersToday      int64
	RevenueToday     decimal.Decimal
	OrdersThisMonth  int64
	RevenueThisMonth decimal.Decimal
	OrdersByStatus   map[entity.OrderStatus]int64
	DailySales       []DailySales
	TopProducts      []ProductSales
	SalesByCategory  map[string]decimal.Decimal
}

// StartOfDay returns the first instant of t's calendar day in loc. That is local midnight,
// unless a DST transition skips midnight, in which case the day starts at the transition.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, loc)
	if sameDate(midnight, y, m, d) {
		return midnight
	}

	start, _ := time.Date(y, m, d, 12, 0, 0, 0, loc).ZoneBounds()

	return start
}

// StartOfMonth returns the first instant of t's month in loc.
func StartOfMonth(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)

	return StartOfDay(time.Date(local.Year(), local.Month(), 1, 12, 0, 0, 0, loc), loc)
}

// WindowStart is the earliest creation time RecentOrders must cover: the start of the month
// or the first trend day, whichever is earlier.
func WindowStart(now time.Time, loc *time.Location) time.Time {
	local := now.In(loc)
	trendStart := StartOfDay(time.Date(local.Year(), local.Month(), local.Day()-(TrendDays-1), 12, 0, 0, 0, loc), loc)
	monthStart := StartOfMonth(now, loc)
	if trendStart.Before(monthStart) {
		return trendStart
	}

	return monthStart
}

// Aggregate computes dashboard statistics as of now, using loc for calendar boundaries.
func Aggregate(now time.Time, loc *time.Location, in Input) *DashboardStats {
	if loc == nil {
		loc = time.UTC
	}

	stats := &DashboardStats{
		TotalProducts:    in.TotalProducts,
		TotalOrders:      in.TotalOrders,
		TotalUsers:       in.TotalUsers,
		TotalRevenue:     in.TotalRevenue,
		RevenueToday:     decimal.Zero,
		RevenueThisMonth: decimal.Zero,
		OrdersByStatus:   make(map[entity.OrderStatus]int64, len(entity.OrderStatuses)),
	}

	for _, status := range entity.OrderStatuses {
		stats.OrdersByStatus[status] = in.StatusCounts[status]
	}

	year, month, day := now.In(loc).Date()
	today := dayNumber(now, loc)

	stats.DailySales = make([]DailySales, TrendDays)
	for i := range TrendDays {
		noon := time.Date(year, month, day-(TrendDays-1)+i, 12, 0, 0, 0, loc)
		stats.DailySales[i] = DailySales{
			Date:    StartOfDay(noon, loc),
			Label:   noon.Format(DayLabelLayout),
			Revenue: decimal.Zero,
		}
	}

	for _, order := range in.RecentOrders {
		created := order.CreatedAt.In(loc)
		n := dayNumber(created, loc)
		if n > today {
			continue
		}
		paid := order.PaymentStatus == entity.PaymentStatusPaid

		if n == today {
			stats.OrdersToday++
			if paid {
				stats.RevenueToday = stats.RevenueToday.Add(order.Total)
			}
		}
		if created.Year() == year && created.Month() == month {
			stats.OrdersThisMonth++
			if paid {
				stats.RevenueThisMonth = stats.RevenueThisMonth.Add(order.Total)
			}
		}
		if offset := n - today + TrendDays - 1; offset >= 0 {
			point := &stats.DailySales[offset]
			point.Orders++
			if paid {
				point.Revenue = point.Revenue.Add(order.Total)
			}
		}
	}

	stats.TopProducts = topProducts(in.PaidSales, TopProductsLimit)
	stats.SalesByCategory = salesByCategory(in.PaidSales)

	return stats
}

// dayNumber numbers t's calendar day in loc as days since the Unix epoch. Local dates are
// compared instead of instants so DST transitions never merge or split a day.
func dayNumber(t time.Time, loc *time.Location) int {
	y, m, d := t.In(loc).Date()

	return int(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / secondsPerDay)
}

func sameDate(t time.Time, year int, month time.Month, day int) bool {
	y, m, d := t.Date()

	return y == year && m == month && d == day
}

func topProducts(lines []SaleLine, limit int) []ProductSales {
	byProduct := make(map[uuid.UUID]*ProductSales)
	for _, line := range lines {
		row, ok := byProduct[line.ProductID]
		if !ok {
			row = &ProductSales{
				ProductID:    line.ProductID,
				ProductName:  line.ProductName,
				TotalRevenue: decimal.Zero,
			}
			byProduct[line.ProductID] = row
		}
		row.QuantitySold += int64(line.Quantity)
		row.TotalRevenue = row.TotalRevenue.Add(line.Subtotal)
	}

	rows := make([]ProductSales, 0, len(byProduct))
	for _, row := range byProduct {
		rows = append(rows, *row)
	}

	// quantity desc, then product id asc
	slices.SortFunc(rows, func(a, b ProductSales) int {
		if c := cmp.Compare(b.QuantitySold, a.QuantitySold); c != 0 {
			return c
		}

		return cmp.Compare(a.ProductID.String(), b.ProductID.String())
	})

	if len(rows) > limit {
		rows = rows[:limit]
	}

	return rows
}

func salesByCategory(lines []SaleLine) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal)
	for _, line := range lines {
		key := line.CategoryName
		if key == "" {
			key = UncategorizedKey
		}
		out[key] = out[key].Add(line.Subtotal)
	}

	return out
}
