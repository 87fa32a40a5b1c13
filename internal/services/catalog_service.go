package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/MohammedKaif278/A1KababCorner/internal/domain"
	"github.com/MohammedKaif278/A1KababCorner/internal/repositories"
)

// CategoryAll is the sentinel category meaning "no filter".
const CategoryAll = "all"

var (
	// ErrCatalogLoad indicates the catalog resource could not be fetched or decoded.
	ErrCatalogLoad = errors.New("catalog service: load failed")
	// ErrCatalogProductNotFound indicates the requested product is not in the catalog.
	ErrCatalogProductNotFound = errors.New("catalog service: product not found")

	errCatalogRepositoryRequired = errors.New("catalog service: repository is required")
	errCatalogSourceRequired     = errors.New("catalog service: source is required")
)

// CatalogServiceDeps bundles constructor inputs for the catalog service.
type CatalogServiceDeps struct {
	Repository repositories.CatalogRepository
	Source     repositories.CatalogSource
	Logger     func(context.Context, string, map[string]any)
}

type catalogService struct {
	repo   repositories.CatalogRepository
	source repositories.CatalogSource
	logger func(context.Context, string, map[string]any)
}

// searchFolder performs Unicode case folding for query matching.
var searchFolder = cases.Fold()

// NewCatalogService constructs the catalog service with the supplied dependencies.
func NewCatalogService(deps CatalogServiceDeps) (CatalogService, error) {
	if deps.Repository == nil {
		return nil, errCatalogRepositoryRequired
	}
	if deps.Source == nil {
		return nil, errCatalogSourceRequired
	}
	logger := deps.Logger
	if logger == nil {
		logger = func(context.Context, string, map[string]any) {}
	}
	return &catalogService{
		repo:   deps.Repository,
		source: deps.Source,
		logger: logger,
	}, nil
}

func (s *catalogService) Load(ctx context.Context) ([]domain.Product, error) {
	entries, err := s.source.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogLoad, err)
	}

	products := make([]domain.Product, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	dropped := 0
	for _, entry := range entries {
		product, ok := decodeProductEntry(entry)
		if !ok {
			dropped++
			continue
		}
		// First occurrence wins for duplicate ids.
		if _, dup := seen[product.ID]; dup {
			dropped++
			continue
		}
		seen[product.ID] = struct{}{}
		products = append(products, product)
	}

	if err := s.repo.ReplaceAll(ctx, products); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogLoad, err)
	}

	if dropped > 0 {
		s.logger(ctx, "catalog.entries_dropped", map[string]any{
			"dropped": dropped,
			"loaded":  len(products),
		})
	}
	return products, nil
}

func (s *catalogService) Products(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *catalogService) Product(ctx context.Context, id string) (domain.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Product{}, ErrCatalogProductNotFound
	}
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return domain.Product{}, ErrCatalogProductNotFound
		}
		return domain.Product{}, err
	}
	return product, nil
}

func (s *catalogService) Search(ctx context.Context, query string) ([]domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	query = searchFolder.String(strings.TrimSpace(query))
	if query == "" {
		return products, nil
	}

	matched := make([]domain.Product, 0, len(products))
	for _, product := range products {
		if strings.Contains(searchFolder.String(product.Title), query) ||
			strings.Contains(searchFolder.String(product.Description), query) ||
			strings.Contains(searchFolder.String(product.Category), query) {
			matched = append(matched, product)
		}
	}
	return matched, nil
}

func (s *catalogService) FilterByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	category = strings.TrimSpace(category)
	if category == "" || category == CategoryAll {
		return products, nil
	}

	matched := make([]domain.Product, 0, len(products))
	for _, product := range products {
		if product.Category == category {
			matched = append(matched, product)
		}
	}
	return matched, nil
}

// rawProduct mirrors one catalog JSON record before validation. The id field
// appears as either a number or a string in the wild.
type rawProduct struct {
	ID          any          `json:"id"`
	Title       string       `json:"title"`
	Price       *json.Number `json:"price"`
	Image       string       `json:"image"`
	Category    string       `json:"category"`
	Description string       `json:"description"`
}

// decodeProductEntry validates one raw catalog record. Entries missing id,
// title, price, or image are dropped, as are prices that cannot be parsed.
func decodeProductEntry(entry json.RawMessage) (domain.Product, bool) {
	decoder := json.NewDecoder(bytes.NewReader(entry))
	decoder.UseNumber()

	var raw rawProduct
	if err := decoder.Decode(&raw); err != nil {
		return domain.Product{}, false
	}

	id := normalizeID(raw.ID)
	title := strings.TrimSpace(raw.Title)
	image := strings.TrimSpace(raw.Image)
	if id == "" || title == "" || image == "" || raw.Price == nil {
		return domain.Product{}, false
	}

	price, err := domain.ParsePrice(raw.Price.String())
	if err != nil {
		return domain.Product{}, false
	}

	return domain.Product{
		ID:          id,
		Title:       title,
		Price:       price,
		Image:       image,
		Category:    strings.TrimSpace(raw.Category),
		Description: strings.TrimSpace(raw.Description),
	}, true
}

func normalizeID(value any) string {
	switch v := value.(type) {
	case json.Number:
		return v.String()
	case string:
		return strings.TrimSpace(v)
	default:
		return ""
	}
}
