package shop

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/studio-service/internal/domain"
	orderRepo "github.com/m04kA/studio-service/internal/infra/storage/order"
	productRepo "github.com/m04kA/studio-service/internal/infra/storage/product"
	"github.com/m04kA/studio-service/internal/service/shop/models"
	"github.com/m04kA/studio-service/pkg/ptr"
)

// Service витрина магазина: категории, товары, заказы
type Service struct {
	productRepo ProductRepository
	orderRepo   OrderRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса магазина
func NewService(productRepo ProductRepository, orderRepo OrderRepository, logger Logger) *Service {
	return &Service{
		productRepo: productRepo,
		orderRepo:   orderRepo,
		logger:      logger,
	}
}

// ListCategories возвращает категории товаров
func (s *Service) ListCategories(ctx context.Context) ([]models.CategoryResponse, error) {
	categories, err := s.productRepo.ListCategories(ctx)
	if err != nil {
		s.logger.Error("ListCategories: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCategories - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCategories(categories), nil
}

// ListProducts возвращает страницу активных товаров
func (s *Service) ListProducts(ctx context.Context, req *models.ListProductsRequest) (*models.ProductListResponse, error) {
	s.logger.Info("ListProducts: category=%v, featured=%v, page=%d", req.CategorySlug, req.Featured, req.Page)

	page := domain.NewPage(req.Page, req.PageSize)
	filter := domain.ProductsFilter{
		CategorySlug: req.CategorySlug,
		Featured:     req.Featured,
		Limit:        page.Limit(),
		Offset:       page.Offset(),
	}

	count, err := s.productRepo.Count(ctx, filter)
	if err != nil {
		s.logger.Error("ListProducts: failed to count products: %v", err)
		return nil, fmt.Errorf("%w: ListProducts - count: %v", ErrInternal, err)
	}

	products, err := s.productRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListProducts: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListProducts - repository error: %v", ErrInternal, err)
	}

	return &models.ProductListResponse{
		Count:   count,
		Results: models.FromDomainProducts(products),
	}, nil
}

// FeaturedProducts возвращает рекомендуемые товары (не больше FeaturedProductsLimit)
func (s *Service) FeaturedProducts(ctx context.Context) ([]models.ProductResponse, error) {
	products, err := s.productRepo.List(ctx, domain.ProductsFilter{
		Featured: ptr.Ptr(true),
		Limit:    domain.FeaturedProductsLimit,
	})
	if err != nil {
		s.logger.Error("FeaturedProducts: repository error: %v", err)
		return nil, fmt.Errorf("%w: FeaturedProducts - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainProducts(products), nil
}

// GetProduct возвращает карточку активного товара
func (s *Service) GetProduct(ctx context.Context, slug string) (*models.ProductDetailResponse, error) {
	product, err := s.productRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, productRepo.ErrProductNotFound) {
			s.logger.Warn("GetProduct: product slug=%s not found", slug)
			return nil, ErrProductNotFound
		}
		s.logger.Error("GetProduct: repository error for slug=%s: %v", slug, err)
		return nil, fmt.Errorf("%w: GetProduct - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainProductDetail(product), nil
}

// GetOrder возвращает заказ по номеру
func (s *Service) GetOrder(ctx context.Context, number string) (*models.OrderResponse, error) {
	order, err := s.orderRepo.GetByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, orderRepo.ErrOrderNotFound) {
			s.logger.Warn("GetOrder: order number=%s not found", number)
			return nil, ErrOrderNotFound
		}
		s.logger.Error("GetOrder: repository error for number=%s: %v", number, err)
		return nil, fmt.Errorf("%w: GetOrder - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainOrder(order), nil
}
