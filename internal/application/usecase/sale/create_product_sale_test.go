// Package sale contains phone sale and product sale use cases.
package sale

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/repairdesk/backend/internal/application/adapter"
	"github.com/repairdesk/backend/internal/domain/entity"
	domainerror "github.com/repairdesk/backend/internal/domain/error"
)

type fakeProductRepo struct {
	products map[uuid.UUID]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	repo := &fakeProductRepo{products: make(map[uuid.UUID]*entity.Product)}
	for _, p := range products {
		repo.products[p.ID] = p
	}
	return repo
}

func (r *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domainerror.ErrProductNotFound
	}
	return p, nil
}

func (r *fakeProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) Update(_ context.Context, id uuid.UUID, _ adapter.ProductPatch) (*entity.Product, error) {
	return r.FindByID(context.Background(), id)
}

func (r *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.products, id)
	return nil
}

type fakeProductSaleRepo struct {
	sales     []*entity.ProductSale
	createErr error
}

func (r *fakeProductSaleRepo) Create(_ context.Context, sale *entity.ProductSale) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.sales = append(r.sales, sale)
	return nil
}

func (r *fakeProductSaleRepo) FindByFilter(_ context.Context, _ adapter.SaleFilter) ([]*entity.ProductSale, error) {
	return r.sales, nil
}

func (r *fakeProductSaleRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

type fakeSummaryCache struct {
	invalidations int
}

func (c *fakeSummaryCache) Get(_ context.Context, _ string, _ interface{}) (bool, error) {
	return false, nil
}

func (c *fakeSummaryCache) Set(_ context.Context, _ string, _ interface{}, _ time.Duration) error {
	return nil
}

func (c *fakeSummaryCache) Invalidate(_ context.Context) error {
	c.invalidations++
	return nil
}

func TestCreateProductSaleUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	temperedGlass := func() *entity.Product {
		return entity.NewProduct("Tempered Glass", "", decimal.NewFromInt(20), decimal.NewFromInt(50), 10)
	}

	t.Run("snapshots the product name and prices onto the sale", func(t *testing.T) {
		product := temperedGlass()
		saleRepo := &fakeProductSaleRepo{}
		uc := NewCreateProductSaleUseCase(newFakeProductRepo(product), saleRepo, nil)

		out, err := uc.Execute(ctx, CreateProductSaleInput{
			ProductID:    product.ID,
			CustomerName: "Ali Veli",
			Quantity:     2,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Sale.ProductName != "Tempered Glass" {
			t.Errorf("expected snapshotted name, got %q", out.Sale.ProductName)
		}
		if !out.Sale.UnitPrice.Equal(decimal.NewFromInt(50)) || !out.Sale.UnitCost.Equal(decimal.NewFromInt(20)) {
			t.Errorf("expected snapshotted prices 50/20, got %s/%s", out.Sale.UnitPrice, out.Sale.UnitCost)
		}
		if !out.Sale.TotalPrice().Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected total price 100, got %s", out.Sale.TotalPrice())
		}
		if !out.Sale.TotalProfit().Equal(decimal.NewFromInt(60)) {
			t.Errorf("expected total profit 60, got %s", out.Sale.TotalProfit())
		}
		if len(saleRepo.sales) != 1 {
			t.Errorf("expected 1 sale persisted, got %d", len(saleRepo.sales))
		}
	})

	t.Run("non-positive quantity is rejected before any lookup", func(t *testing.T) {
		uc := NewCreateProductSaleUseCase(newFakeProductRepo(), &fakeProductSaleRepo{}, nil)

		for _, qty := range []int{0, -3} {
			_, err := uc.Execute(ctx, CreateProductSaleInput{ProductID: uuid.New(), Quantity: qty})
			if !errors.Is(err, domainerror.ErrNonPositiveQuantity) {
				t.Errorf("quantity %d: expected ErrNonPositiveQuantity, got %v", qty, err)
			}
		}
	})

	t.Run("unknown product surfaces not found", func(t *testing.T) {
		uc := NewCreateProductSaleUseCase(newFakeProductRepo(), &fakeProductSaleRepo{}, nil)

		_, err := uc.Execute(ctx, CreateProductSaleInput{ProductID: uuid.New(), Quantity: 1})
		if !errors.Is(err, domainerror.ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("persistence failures surface to the caller", func(t *testing.T) {
		product := temperedGlass()
		saleRepo := &fakeProductSaleRepo{createErr: errors.New("constraint violation")}
		uc := NewCreateProductSaleUseCase(newFakeProductRepo(product), saleRepo, nil)

		_, err := uc.Execute(ctx, CreateProductSaleInput{ProductID: product.ID, Quantity: 1})
		if err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("a new sale drops cached summaries", func(t *testing.T) {
		product := temperedGlass()
		summaryCache := &fakeSummaryCache{}
		uc := NewCreateProductSaleUseCase(newFakeProductRepo(product), &fakeProductSaleRepo{}, summaryCache)

		if _, err := uc.Execute(ctx, CreateProductSaleInput{ProductID: product.ID, Quantity: 1}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if summaryCache.invalidations != 1 {
			t.Errorf("expected 1 cache invalidation, got %d", summaryCache.invalidations)
		}
	})

	t.Run("a rejected sale leaves cached summaries alone", func(t *testing.T) {
		summaryCache := &fakeSummaryCache{}
		uc := NewCreateProductSaleUseCase(newFakeProductRepo(), &fakeProductSaleRepo{}, summaryCache)

		if _, err := uc.Execute(ctx, CreateProductSaleInput{ProductID: uuid.New(), Quantity: 0}); err == nil {
			t.Fatal("expected an error")
		}

		if summaryCache.invalidations != 0 {
			t.Errorf("expected no cache invalidations, got %d", summaryCache.invalidations)
		}
	})
}
