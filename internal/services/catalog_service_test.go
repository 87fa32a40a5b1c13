package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/MohammedKaif278/A1KababCorner/internal/domain"
	"github.com/MohammedKaif278/A1KababCorner/internal/repositories/memory"
)

type stubCatalogSource struct {
	entries []json.RawMessage
	err     error
}

func (s *stubCatalogSource) Fetch(context.Context) ([]json.RawMessage, error) {
	return s.entries, s.err
}

func rawEntries(t *testing.T, literals ...string) []json.RawMessage {
	t.Helper()
	entries := make([]json.RawMessage, 0, len(literals))
	for _, literal := range literals {
		entries = append(entries, json.RawMessage(literal))
	}
	return entries
}

func newTestCatalog(t *testing.T, source *stubCatalogSource) CatalogService {
	t.Helper()
	svc, err := NewCatalogService(CatalogServiceDeps{
		Repository: memory.NewCatalogRepository(),
		Source:     source,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return svc
}

func TestNewCatalogService(t *testing.T) {
	t.Run("requires repository", func(t *testing.T) {
		if _, err := NewCatalogService(CatalogServiceDeps{Source: &stubCatalogSource{}}); err == nil {
			t.Fatalf("expected error when repository missing")
		}
	})
	t.Run("requires source", func(t *testing.T) {
		if _, err := NewCatalogService(CatalogServiceDeps{Repository: memory.NewCatalogRepository()}); err == nil {
			t.Fatalf("expected error when source missing")
		}
	})
}

func TestCatalogLoadDropsInvalidEntries(t *testing.T) {
	ctx := context.Background()
	source := &stubCatalogSource{entries: rawEntries(t,
		`{"id":1,"title":"Chicken Tikka","price":199.5,"image":"a.jpg","category":"tandoori","description":"spicy"}`,
		`{"id":2,"title":"No image","price":10}`,
		`{"id":3,"price":10,"image":"c.jpg"}`,
		`{"title":"No id","price":10,"image":"d.jpg"}`,
		`{"id":5,"title":"No price","image":"e.jpg"}`,
		`{"id":6,"title":"Bad price","price":"cheap","image":"f.jpg"}`,
		`{"id":7,"title":"Negative","price":-5,"image":"g.jpg"}`,
		`"not an object"`,
		`{"id":"8","title":"String id","price":"42.10","image":"h.jpg"}`,
	)}

	svc := newTestCatalog(t, source)
	products, err := svc.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(products) != 2 {
		t.Fatalf("expected 2 surviving products, got %d: %#v", len(products), products)
	}
	if products[0].ID != "1" || products[0].Price != 19950 {
		t.Fatalf("unexpected first product %#v", products[0])
	}
	if products[1].ID != "8" || products[1].Price != 4210 {
		t.Fatalf("unexpected second product %#v", products[1])
	}
}

func TestCatalogLoadDropsDuplicateIDs(t *testing.T) {
	source := &stubCatalogSource{entries: rawEntries(t,
		`{"id":1,"title":"First","price":10,"image":"a.jpg"}`,
		`{"id":1,"title":"Second","price":20,"image":"b.jpg"}`,
	)}

	svc := newTestCatalog(t, source)
	products, err := svc.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(products) != 1 || products[0].Title != "First" {
		t.Fatalf("expected first occurrence to win, got %#v", products)
	}
}

func TestCatalogLoadTotalFailure(t *testing.T) {
	source := &stubCatalogSource{err: errors.New("connection refused")}
	svc := newTestCatalog(t, source)

	if _, err := svc.Load(context.Background()); !errors.Is(err, ErrCatalogLoad) {
		t.Fatalf("expected ErrCatalogLoad, got %v", err)
	}

	// A failed load leaves an empty, usable catalog.
	products, err := svc.Products(context.Background())
	if err != nil {
		t.Fatalf("products: %v", err)
	}
	if len(products) != 0 {
		t.Fatalf("expected empty catalog after failed load, got %d", len(products))
	}
}

func TestCatalogProductLookup(t *testing.T) {
	ctx := context.Background()
	source := &stubCatalogSource{entries: rawEntries(t,
		`{"id":1,"title":"Chicken Tikka","price":199.5,"image":"a.jpg"}`,
	)}
	svc := newTestCatalog(t, source)
	if _, err := svc.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}

	product, err := svc.Product(ctx, "1")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if product.Title != "Chicken Tikka" {
		t.Fatalf("unexpected product %#v", product)
	}

	if _, err := svc.Product(ctx, "404"); !errors.Is(err, ErrCatalogProductNotFound) {
		t.Fatalf("expected ErrCatalogProductNotFound, got %v", err)
	}
	if _, err := svc.Product(ctx, "  "); !errors.Is(err, ErrCatalogProductNotFound) {
		t.Fatalf("expected ErrCatalogProductNotFound for blank id, got %v", err)
	}
}

func TestCatalogSearch(t *testing.T) {
	ctx := context.Background()
	source := &stubCatalogSource{entries: rawEntries(t,
		`{"id":1,"title":"Chicken Tikka","price":199.5,"image":"a.jpg","category":"tandoori","description":"spicy"}`,
		`{"id":2,"title":"Paneer Roll","price":120,"image":"b.jpg","category":"rolls","description":"mild and creamy"}`,
		`{"id":3,"title":"Mutton Seekh","price":250,"image":"c.jpg","category":"tandoori","description":"charcoal grilled"}`,
	)}
	svc := newTestCatalog(t, source)
	if _, err := svc.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}

	cases := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{name: "title match case-insensitive", query: "CHICKEN", wantIDs: []string{"1"}},
		{name: "description match", query: "creamy", wantIDs: []string{"2"}},
		{name: "category match", query: "tandoo", wantIDs: []string{"1", "3"}},
		{name: "no match", query: "pizza", wantIDs: []string{}},
		{name: "empty query returns everything", query: "  ", wantIDs: []string{"1", "2", "3"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.Search(ctx, tc.query)
			if err != nil {
				t.Fatalf("search: %v", err)
			}
			ids := make([]string, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			if len(ids) != len(tc.wantIDs) {
				t.Fatalf("search(%q) = %v, want %v", tc.query, ids, tc.wantIDs)
			}
			for i := range ids {
				if ids[i] != tc.wantIDs[i] {
					t.Fatalf("search(%q) = %v, want %v", tc.query, ids, tc.wantIDs)
				}
			}
		})
	}
}

func TestCatalogFilterByCategory(t *testing.T) {
	ctx := context.Background()
	source := &stubCatalogSource{entries: rawEntries(t,
		`{"id":1,"title":"Chicken Tikka","price":199.5,"image":"a.jpg","category":"tandoori"}`,
		`{"id":2,"title":"Paneer Roll","price":120,"image":"b.jpg","category":"rolls"}`,
	)}
	svc := newTestCatalog(t, source)
	if _, err := svc.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}

	tandoori, err := svc.FilterByCategory(ctx, "tandoori")
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(tandoori) != 1 || tandoori[0].ID != "1" {
		t.Fatalf("unexpected filter result %#v", tandoori)
	}

	all, err := svc.FilterByCategory(ctx, CategoryAll)
	if err != nil {
		t.Fatalf("filter all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected the all sentinel to disable filtering, got %d", len(all))
	}

	var results []domain.Product
	results, err = svc.FilterByCategory(ctx, "desserts")
	if err != nil {
		t.Fatalf("filter absent category: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected no products for unknown category, got %d", len(results))
	}
}
