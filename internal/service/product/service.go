package product

import (
	"context"
	"io"
	"log"

	"storefront-demo/internal/catalog"
	"storefront-demo/internal/domain"
)

type productRepo interface {
	ListAll(ctx context.Context) ([]domain.Product, error)
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}

// Service fronts the in-memory catalog. When a repository is configured it is the source the
// catalog loads from and new products are written through to it.
type Service struct {
	catalog *catalog.Catalog
	repo    productRepo
	logger  *log.Logger
}

func New(cat *catalog.Catalog, repo productRepo, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{catalog: cat, repo: repo, logger: logger}
}

// Load replaces the catalog with the repository contents. An empty table keeps the current list.
func (s *Service) Load(ctx context.Context) (int, error) {
	if s.repo == nil {
		return len(s.catalog.List()), nil
	}
	products, err := s.repo.ListAll(ctx)
	if err != nil {
		return 0, err
	}
	if len(products) == 0 {
		s.logger.Printf("product service: repository empty, keeping %d built-in products", len(s.catalog.List()))
		return len(s.catalog.List()), nil
	}
	s.catalog.Replace(products)
	return len(products), nil
}

func (s *Service) List(_ context.Context) ([]domain.Product, error) {
	return s.catalog.List(), nil
}

func (s *Service) Get(_ context.Context, id string) (*domain.Product, error) {
	return s.catalog.Get(id)
}

// Create adds a product on behalf of a store manager. Nothing changes when validation or
// the repository write fails.
func (s *Service) Create(ctx context.Context, role domain.Role, in catalog.CreateInput) (*domain.Product, error) {
	if !role.CanManageStore() {
		return nil, domain.ErrForbidden
	}
	p, err := s.catalog.Build(in)
	if err != nil {
		return nil, err
	}
	if s.repo != nil {
		if _, err := s.repo.Upsert(ctx, p); err != nil {
			return nil, err
		}
	}
	s.catalog.Prepend(p)
	s.logger.Printf("product service: created id=%s name=%q role=%s", p.ID, p.Name, role)
	return &p, nil
}

func (s *Service) Search(_ context.Context, query, category string) ([]domain.Product, error) {
	return catalog.SearchProducts(s.catalog.List(), query, category), nil
}

func (s *Service) Recommend(_ context.Context, opts catalog.RecommendOptions) ([]domain.Product, error) {
	return catalog.GetRecommendedProducts(s.catalog.List(), opts), nil
}
