package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "github.com/chloegtg3005/moneyTrusted/internal/errors"
	"github.com/chloegtg3005/moneyTrusted/internal/logger"
	"github.com/chloegtg3005/moneyTrusted/internal/models"
)

// catalogService handles the product catalog.
type catalogService struct {
	db *gorm.DB
}

// NewCatalogService creates a new CatalogServicer.
func NewCatalogService(db *gorm.DB) CatalogServicer {
	return &catalogService{db: db}
}

// ListProducts returns the full catalog ordered by price.
func (s *catalogService) ListProducts() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Order("price ASC").Find(&products).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return products, nil
}

// GetProductByID retrieves a product by ID.
func (s *catalogService) GetProductByID(id string) (*models.Product, error) {
	var product models.Product
	if err := s.db.Where("id = ?", id).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &product, nil
}

// defaultPackages is the initial catalog. All packages run a 30-day cycle.
var defaultPackages = []models.Product{
	{Name: "Paket A", Price: 100000, DailyIncome: 3000, CycleDays: 30},
	{Name: "Paket B", Price: 150000, DailyIncome: 4700, CycleDays: 30},
	{Name: "Paket C", Price: 200000, DailyIncome: 6500, CycleDays: 30},
	{Name: "Paket D", Price: 250000, DailyIncome: 8200, CycleDays: 30},
	{Name: "Paket E", Price: 300000, DailyIncome: 10000, CycleDays: 30},
	{Name: "Paket F", Price: 350000, DailyIncome: 11700, CycleDays: 30},
	{Name: "Paket G", Price: 500000, DailyIncome: 17000, CycleDays: 30},
	{Name: "Paket H", Price: 1000000, DailyIncome: 35000, CycleDays: 30},
	{Name: "Paket I", Price: 1500000, DailyIncome: 53000, CycleDays: 30},
	{Name: "Paket J", Price: 2000000, DailyIncome: 72000, CycleDays: 30},
	{Name: "Paket K", Price: 3000000, DailyIncome: 110000, CycleDays: 30},
}

// SeedDefaults inserts the default catalog when the products table is empty.
// TotalIncome is derived from DailyIncome and CycleDays.
func (s *catalogService) SeedDefaults() error {
	var count int64
	if err := s.db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil
	}

	products := make([]models.Product, len(defaultPackages))
	copy(products, defaultPackages)
	for i := range products {
		products[i].TotalIncome = products[i].DailyIncome * int64(products[i].CycleDays)
	}

	if err := s.db.Create(&products).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	logger.Get().Infof("Seeded %d catalog products", len(products))
	return nil
}
