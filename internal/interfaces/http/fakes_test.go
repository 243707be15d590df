package http_test

import (
	"context"
	"sync"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// catalogStore catálogo en memoria para los tests de rutas.
type catalogStore struct {
	mu         sync.Mutex
	categories map[string]entity.GoodCategory
	goods      map[string]entity.Good
	images     []entity.GoodImage
}

func newCatalogStore() *catalogStore {
	return &catalogStore{
		categories: map[string]entity.GoodCategory{},
		goods:      map[string]entity.Good{},
	}
}

type categoryRepo struct{ s *catalogStore }

func (r categoryRepo) Create(_ context.Context, c *entity.GoodCategory) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.categories[c.ID] = *c
	return nil
}

func (r categoryRepo) GetByID(_ context.Context, id string) (*entity.GoodCategory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r categoryRepo) Exists(_ context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.categories[id]
	return ok, nil
}

func (r categoryRepo) Update(_ context.Context, c *entity.GoodCategory) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.categories[c.ID] = *c
	return nil
}

func (r categoryRepo) List(_ context.Context, _, _ int) ([]*entity.GoodCategory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.GoodCategory
	for _, c := range r.s.categories {
		c := c
		out = append(out, &c)
	}
	return out, nil
}

func (r categoryRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.categories, id)
	return nil
}

type goodRepo struct{ s *catalogStore }

func (r goodRepo) load(g entity.Good) *entity.Good {
	g.Images = nil
	for _, img := range r.s.images {
		if img.GoodID == g.ID {
			g.Images = append(g.Images, img)
		}
	}
	return &g
}

func (r goodRepo) Create(_ context.Context, g *entity.Good) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored := *g
	stored.Images = nil
	r.s.goods[g.ID] = stored
	return nil
}

func (r goodRepo) GetByID(_ context.Context, id string) (*entity.Good, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	g, ok := r.s.goods[id]
	if !ok {
		return nil, nil
	}
	return r.load(g), nil
}

func (r goodRepo) Exists(_ context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.goods[id]
	return ok, nil
}

func (r goodRepo) Update(_ context.Context, g *entity.Good) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored := *g
	stored.Images = nil
	r.s.goods[g.ID] = stored
	return nil
}

func (r goodRepo) List(_ context.Context, f repository.GoodFilter) ([]*entity.Good, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Good
	for _, g := range r.s.goods {
		if f.SellerID != "" && g.SellerID != f.SellerID {
			continue
		}
		if f.CategoryID != "" && g.CategoryID != f.CategoryID {
			continue
		}
		out = append(out, r.load(g))
	}
	return out, nil
}

func (r goodRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.goods, id)
	return nil
}

type imageRepo struct{ s *catalogStore }

func (r imageRepo) Create(_ context.Context, img *entity.GoodImage) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.images = append(r.s.images, *img)
	return nil
}

func (r imageRepo) ListByGood(_ context.Context, goodID string) ([]entity.GoodImage, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []entity.GoodImage
	for _, img := range r.s.images {
		if img.GoodID == goodID {
			out = append(out, img)
		}
	}
	return out, nil
}

// catalogTx ejecuta fn sin transacción real; los tests de rutas no cubren rollback.
type catalogTx struct{ s *catalogStore }

func (t catalogTx) RunCatalog(_ context.Context, fn func(repository.GoodRepository, repository.GoodImageRepository) error) error {
	return fn(goodRepo{t.s}, imageRepo{t.s})
}

func (t catalogTx) RunCheckout(context.Context, func(repository.CheckoutRepository, repository.BasketRepository) error) error {
	panic("no usado en estos tests")
}

func (t catalogTx) RunSettlement(context.Context, func(repository.TransactionRepository, repository.CheckoutRepository) error) error {
	panic("no usado en estos tests")
}
