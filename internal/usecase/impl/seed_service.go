package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type seedCategory struct {
	name        string
	description string
}

type seedProduct struct {
	name        string
	description string
	price       string
	stock       int
	category    string
	brand       string
	model       string
	productType entity.ProductType
	imageURL    string
	featured    bool
}

var demoCategories = []seedCategory{
	{"Servers", "Enterprise and rack servers"},
	{"Desktop Computers", "High-performance desktop systems"},
	{"Laptops", "Business and gaming laptops"},
	{"Components", "Computer parts and components"},
}

var demoProducts = []seedProduct{
	{"Dell PowerEdge R750 Server", "2U rack server with dual Intel Xeon processors, 128GB RAM, 4TB storage", "4999.99", 15, "Servers", "Dell", "PowerEdge R750", entity.ProductTypeServer, "https://images.unsplash.com/photo-1558494949-ef010cbdcc31?w=500", true},
	{"HP ProLiant DL380 Gen10", "Enterprise server with Intel Xeon Gold, 64GB RAM, RAID storage", "3799.99", 20, "Servers", "HP", "ProLiant DL380 Gen10", entity.ProductTypeServer, "https://images.unsplash.com/photo-1597872200969-2b65d56bd16b?w=500", true},
	{"Dell Precision 7920 Tower", "High-performance workstation with Intel Xeon processors, NVIDIA Quadro graphics", "3299.99", 25, "Desktop Computers", "Dell", "Precision 7920", entity.ProductTypeWorkstation, "https://images.unsplash.com/photo-1587202372634-32705e3bf49c?w=500", true},
	{"HP Z8 G4 Workstation", "Dual Intel Xeon processors, 256GB RAM, professional graphics", "5499.99", 12, "Desktop Computers", "HP", "Z8 G4", entity.ProductTypeWorkstation, "https://images.unsplash.com/photo-1593640408182-31c70c8268f5?w=500", false},
	{"Lenovo ThinkPad P15 Mobile Workstation", "15.6\" 4K display, Intel Core i9, NVIDIA Quadro RTX, 64GB RAM", "3899.99", 30, "Laptops", "Lenovo", "ThinkPad P15", entity.ProductTypeLaptop, "https://images.unsplash.com/photo-1588872657578-7efd1f1555ed?w=500", true},
	{"Dell XPS 15 Laptop", "15.6\" OLED display, Intel Core i7, 32GB RAM, 1TB SSD", "2299.99", 50, "Laptops", "Dell", "XPS 15", entity.ProductTypeLaptop, "https://images.unsplash.com/photo-1593642632823-8f785ba67e45?w=500", true},
	{"Intel Xeon Gold 6248R Processor", "24-Core processor, 3.0 GHz base frequency, 35.75MB cache", "2899.99", 100, "Components", "Intel", "Xeon Gold 6248R", entity.ProductTypeComponent, "https://images.unsplash.com/photo-1555617981-dac3880eac6e?w=500", false},
	{"Supermicro X12DPi-N6 Motherboard", "Dual LGA4189 socket, 8-channel DDR4, PCIe 4.0 support", "899.99", 45, "Components", "Supermicro", "X12DPi-N6", entity.ProductTypeComponent, "https://images.unsplash.com/photo-1591799264318-7e6ef8ddb7ea?w=500", false},
	{"Samsung 128GB DDR4 ECC RAM", "Server memory module, 2933MHz, error correction", "599.99", 200, "Components", "Samsung", "M393A8G40AB2-CVF", entity.ProductTypeComponent, "https://images.unsplash.com/photo-1541923183345-a90b523dc963?w=500", false},
	{"NVIDIA RTX A6000 Graphics Card", "48GB GDDR6, professional visualization and AI computing", "4999.99", 8, "Components", "NVIDIA", "RTX A6000", entity.ProductTypeComponent, "https://images.unsplash.com/photo-1587202372775-e229f172b9d7?w=500", true},
	{"HPE ProLiant ML350 Gen10 Tower Server", "Tower server with Intel Xeon, expandable storage, redundant power", "2799.99", 18, "Servers", "HPE", "ProLiant ML350 Gen10", entity.ProductTypeServer, "https://images.unsplash.com/photo-1560259324-0b07b8c2e9e3?w=500", false},
	{"Lenovo ThinkStation P620 Workstation", "AMD Threadripper PRO processor, up to 1TB RAM, PCIe 4.0", "6299.99", 10, "Desktop Computers", "Lenovo", "ThinkStation P620", entity.ProductTypeWorkstation, "https://images.unsplash.com/photo-1587202372583-49330a15584d?w=500", true},
}

type seedService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// SeedServiceParams holds dependencies for SeedService, injected by Fx.
type SeedServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewSeedService creates the demo catalog loader.
func NewSeedService(params SeedServiceParams) usecase.SeedUsecase {
	return &seedService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

// SeedCatalog inserts the demo categories and products when neither table has rows.
func (srv *seedService) SeedCatalog(ctx context.Context) (*usecase.SeedResult, error) {
	log := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	result := &usecase.SeedResult{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()
		categoryRepo := repoFactory.NewCategoryRepository()

		products, err := productRepo.CountProducts(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to count products")
		}
		categories, err := categoryRepo.FindCategories(ctx, false)
		if err != nil {
			return errors.Wrap(err, "failed to list categories")
		}
		if products > 0 || len(categories) > 0 {
			result.Skipped = true

			return nil
		}

		byName := make(map[string]*entity.Category, len(demoCategories))
		for _, seed := range demoCategories {
			category := &entity.Category{Name: seed.name, Description: seed.description, Active: true}
			if err := categoryRepo.CreateCategory(ctx, category); err != nil {
				return errors.Wrapf(err, "failed to seed category %s", seed.name)
			}
			byName[seed.name] = category
			result.Categories++
		}

		for _, seed := range demoProducts {
			product := &entity.Product{
				Name:           seed.name,
				Description:    seed.description,
				Price:          decimal.RequireFromString(seed.price),
				StockQuantity:  seed.stock,
				Brand:          seed.brand,
				Model:          seed.model,
				Type:           seed.productType,
				ImageURLs:      []string{seed.imageURL},
				Specifications: map[string]string{},
				Active:         true,
				Featured:       seed.featured,
			}
			if category, ok := byName[seed.category]; ok {
				product.CategoryID = &category.ID
			}
			if err := productRepo.CreateProduct(ctx, product); err != nil {
				return errors.Wrapf(err, "failed to seed product %s", seed.name)
			}
			result.Products++
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to seed catalog")
	}

	if result.Skipped {
		log.Info("Catalog already populated, skipping seed")
	} else {
		log.Info("Catalog seeded", slog.Int("categories", result.Categories), slog.Int("products", result.Products))
	}

	return result, nil
}
