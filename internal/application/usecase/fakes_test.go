package usecase_test

import (
	"context"
	"errors"
	"sort"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var errImageStore = errors.New("almacenamiento de imágenes caído")

// memStore persistencia en memoria para los tests de casos de uso.
type memStore struct {
	categories   map[string]entity.GoodCategory
	goods        map[string]entity.Good
	images       []entity.GoodImage
	payments     map[string]entity.PaymentMethod
	deliveries   map[string]entity.DeliveryMethod
	recipients   map[string]entity.Recipient
	basket       map[string]entity.BasketItem
	checkouts    map[string]entity.Checkout
	items        []entity.CheckoutItem
	transactions map[string]entity.Transaction

	// failImageAfter > 0 hace fallar la creación de imágenes después de N inserciones.
	failImageAfter int
}

func newMemStore() *memStore {
	return &memStore{
		categories:   map[string]entity.GoodCategory{},
		goods:        map[string]entity.Good{},
		payments:     map[string]entity.PaymentMethod{},
		deliveries:   map[string]entity.DeliveryMethod{},
		recipients:   map[string]entity.Recipient{},
		basket:       map[string]entity.BasketItem{},
		checkouts:    map[string]entity.Checkout{},
		transactions: map[string]entity.Transaction{},
	}
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s *memStore) snapshot() *memStore {
	return &memStore{
		categories:     cloneMap(s.categories),
		goods:          cloneMap(s.goods),
		images:         append([]entity.GoodImage(nil), s.images...),
		payments:       cloneMap(s.payments),
		deliveries:     cloneMap(s.deliveries),
		recipients:     cloneMap(s.recipients),
		basket:         cloneMap(s.basket),
		checkouts:      cloneMap(s.checkouts),
		items:          append([]entity.CheckoutItem(nil), s.items...),
		transactions:   cloneMap(s.transactions),
		failImageAfter: s.failImageAfter,
	}
}

// memTx TxRunner que restaura el estado si fn falla.
type memTx struct{ s *memStore }

func (t memTx) run(fn func() error) error {
	snap := t.s.snapshot()
	if err := fn(); err != nil {
		*t.s = *snap
		return err
	}
	return nil
}

func (t memTx) RunCatalog(ctx context.Context, fn func(repository.GoodRepository, repository.GoodImageRepository) error) error {
	return t.run(func() error { return fn(goodRepo{t.s}, imageRepo{t.s}) })
}

func (t memTx) RunCheckout(ctx context.Context, fn func(repository.CheckoutRepository, repository.BasketRepository) error) error {
	return t.run(func() error { return fn(checkoutRepo{t.s}, basketRepo{t.s}) })
}

func (t memTx) RunSettlement(ctx context.Context, fn func(repository.TransactionRepository, repository.CheckoutRepository) error) error {
	return t.run(func() error { return fn(transactionRepo{t.s}, checkoutRepo{t.s}) })
}

// concurrentTx simula otra petición del mismo usuario que agrega una línea a la cesta
// mientras el checkout está en curso: antes de leer la cesta (before) o justo después (after).
type concurrentTx struct {
	memTx
	line   entity.BasketItem
	before bool
}

func (t concurrentTx) RunCheckout(ctx context.Context, fn func(repository.CheckoutRepository, repository.BasketRepository) error) error {
	if t.before {
		t.s.basket[t.line.ID] = t.line
		return t.memTx.RunCheckout(ctx, fn)
	}
	return t.run(func() error {
		return fn(checkoutRepo{t.s}, lateInsertBasket{basketRepo: basketRepo{t.s}, line: t.line})
	})
}

// lateInsertBasket inserta la línea después de devolver la lectura de la cesta.
type lateInsertBasket struct {
	basketRepo
	line entity.BasketItem
}

func (r lateInsertBasket) ListByUserForUpdate(ctx context.Context, userID string) ([]*entity.BasketItem, error) {
	lines, err := r.basketRepo.ListByUserForUpdate(ctx, userID)
	r.s.basket[r.line.ID] = r.line
	return lines, err
}

// ── categorías ───────────────────────────────────────────────────────────────

type categoryRepo struct{ s *memStore }

func (r categoryRepo) Create(_ context.Context, c *entity.GoodCategory) error {
	r.s.categories[c.ID] = *c
	return nil
}

func (r categoryRepo) GetByID(_ context.Context, id string) (*entity.GoodCategory, error) {
	c, ok := r.s.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r categoryRepo) Exists(_ context.Context, id string) (bool, error) {
	_, ok := r.s.categories[id]
	return ok, nil
}

func (r categoryRepo) Update(_ context.Context, c *entity.GoodCategory) error {
	r.s.categories[c.ID] = *c
	return nil
}

func (r categoryRepo) List(_ context.Context, _, _ int) ([]*entity.GoodCategory, error) {
	var out []*entity.GoodCategory
	for _, c := range r.s.categories {
		c := c
		out = append(out, &c)
	}
	return out, nil
}

func (r categoryRepo) Delete(_ context.Context, id string) error {
	delete(r.s.categories, id)
	return nil
}

// ── bienes e imágenes ────────────────────────────────────────────────────────

type goodRepo struct{ s *memStore }

func (r goodRepo) withImages(g entity.Good) *entity.Good {
	g.Images = nil
	for _, img := range r.s.images {
		if img.GoodID == g.ID {
			g.Images = append(g.Images, img)
		}
	}
	return &g
}

func (r goodRepo) Create(_ context.Context, g *entity.Good) error {
	stored := *g
	stored.Images = nil
	r.s.goods[g.ID] = stored
	return nil
}

func (r goodRepo) GetByID(_ context.Context, id string) (*entity.Good, error) {
	g, ok := r.s.goods[id]
	if !ok {
		return nil, nil
	}
	return r.withImages(g), nil
}

func (r goodRepo) Exists(_ context.Context, id string) (bool, error) {
	_, ok := r.s.goods[id]
	return ok, nil
}

func (r goodRepo) Update(_ context.Context, g *entity.Good) error {
	stored := *g
	stored.Images = nil
	r.s.goods[g.ID] = stored
	return nil
}

func (r goodRepo) List(_ context.Context, f repository.GoodFilter) ([]*entity.Good, error) {
	var out []*entity.Good
	for _, g := range r.s.goods {
		if f.SellerID != "" && g.SellerID != f.SellerID {
			continue
		}
		if f.CategoryID != "" && g.CategoryID != f.CategoryID {
			continue
		}
		out = append(out, r.withImages(g))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r goodRepo) Delete(_ context.Context, id string) error {
	delete(r.s.goods, id)
	return nil
}

type imageRepo struct{ s *memStore }

func (r imageRepo) Create(_ context.Context, img *entity.GoodImage) error {
	if r.s.failImageAfter > 0 && len(r.s.images) >= r.s.failImageAfter {
		return errImageStore
	}
	r.s.images = append(r.s.images, *img)
	return nil
}

func (r imageRepo) ListByGood(_ context.Context, goodID string) ([]entity.GoodImage, error) {
	var out []entity.GoodImage
	for _, img := range r.s.images {
		if img.GoodID == goodID {
			out = append(out, img)
		}
	}
	return out, nil
}

// ── métodos ──────────────────────────────────────────────────────────────────

type paymentRepo struct{ s *memStore }

func (r paymentRepo) Create(_ context.Context, m *entity.PaymentMethod) error {
	r.s.payments[m.ID] = *m
	return nil
}

func (r paymentRepo) GetByID(_ context.Context, id string) (*entity.PaymentMethod, error) {
	m, ok := r.s.payments[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r paymentRepo) Exists(_ context.Context, id string) (bool, error) {
	_, ok := r.s.payments[id]
	return ok, nil
}

func (r paymentRepo) Update(_ context.Context, m *entity.PaymentMethod) error {
	r.s.payments[m.ID] = *m
	return nil
}

func (r paymentRepo) List(_ context.Context) ([]*entity.PaymentMethod, error) {
	var out []*entity.PaymentMethod
	for _, m := range r.s.payments {
		m := m
		out = append(out, &m)
	}
	return out, nil
}

func (r paymentRepo) Delete(_ context.Context, id string) error {
	delete(r.s.payments, id)
	return nil
}

type deliveryRepo struct{ s *memStore }

func (r deliveryRepo) Create(_ context.Context, m *entity.DeliveryMethod) error {
	r.s.deliveries[m.ID] = *m
	return nil
}

func (r deliveryRepo) GetByID(_ context.Context, id string) (*entity.DeliveryMethod, error) {
	m, ok := r.s.deliveries[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r deliveryRepo) Exists(_ context.Context, id string) (bool, error) {
	_, ok := r.s.deliveries[id]
	return ok, nil
}

func (r deliveryRepo) Update(_ context.Context, m *entity.DeliveryMethod) error {
	r.s.deliveries[m.ID] = *m
	return nil
}

func (r deliveryRepo) List(_ context.Context) ([]*entity.DeliveryMethod, error) {
	var out []*entity.DeliveryMethod
	for _, m := range r.s.deliveries {
		m := m
		out = append(out, &m)
	}
	return out, nil
}

func (r deliveryRepo) Delete(_ context.Context, id string) error {
	delete(r.s.deliveries, id)
	return nil
}

// ── destinatarios ────────────────────────────────────────────────────────────

type recipientRepo struct{ s *memStore }

func (r recipientRepo) Create(_ context.Context, rc *entity.Recipient) error {
	r.s.recipients[rc.ID] = *rc
	return nil
}

func (r recipientRepo) GetByID(_ context.Context, id string) (*entity.Recipient, error) {
	rc, ok := r.s.recipients[id]
	if !ok {
		return nil, nil
	}
	return &rc, nil
}

func (r recipientRepo) Exists(_ context.Context, id string) (bool, error) {
	_, ok := r.s.recipients[id]
	return ok, nil
}

func (r recipientRepo) Update(_ context.Context, rc *entity.Recipient) error {
	r.s.recipients[rc.ID] = *rc
	return nil
}

func (r recipientRepo) ListByUser(_ context.Context, userID string) ([]*entity.Recipient, error) {
	var out []*entity.Recipient
	for _, rc := range r.s.recipients {
		if userID != "" && rc.UserID != userID {
			continue
		}
		rc := rc
		out = append(out, &rc)
	}
	return out, nil
}

func (r recipientRepo) Delete(_ context.Context, id string) error {
	delete(r.s.recipients, id)
	return nil
}

// ── cesta ────────────────────────────────────────────────────────────────────

type basketRepo struct{ s *memStore }

func (r basketRepo) load(it entity.BasketItem) *entity.BasketItem {
	if g, ok := r.s.goods[it.GoodID]; ok {
		it.Good = &g
	}
	return &it
}

func (r basketRepo) Create(_ context.Context, it *entity.BasketItem) error {
	stored := *it
	stored.Good = nil
	r.s.basket[it.ID] = stored
	return nil
}

func (r basketRepo) GetByID(_ context.Context, id string) (*entity.BasketItem, error) {
	it, ok := r.s.basket[id]
	if !ok {
		return nil, nil
	}
	return r.load(it), nil
}

func (r basketRepo) GetByUserAndGood(_ context.Context, userID, goodID string) (*entity.BasketItem, error) {
	for _, it := range r.s.basket {
		if it.UserID == userID && it.GoodID == goodID {
			return r.load(it), nil
		}
	}
	return nil, nil
}

func (r basketRepo) UpdateCount(_ context.Context, id string, count int) error {
	it := r.s.basket[id]
	it.Count = count
	r.s.basket[id] = it
	return nil
}

func (r basketRepo) ListByUser(_ context.Context, userID string) ([]*entity.BasketItem, error) {
	var out []*entity.BasketItem
	for _, it := range r.s.basket {
		if it.UserID == userID {
			out = append(out, r.load(it))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].GoodID < out[j].GoodID })
	return out, nil
}

func (r basketRepo) Delete(_ context.Context, id string) error {
	delete(r.s.basket, id)
	return nil
}

func (r basketRepo) ListByUserForUpdate(ctx context.Context, userID string) ([]*entity.BasketItem, error) {
	return r.ListByUser(ctx, userID)
}

// ── checkouts y transacciones ────────────────────────────────────────────────

type checkoutRepo struct{ s *memStore }

func (r checkoutRepo) Create(_ context.Context, c *entity.Checkout) error {
	stored := *c
	stored.Items = nil
	r.s.checkouts[c.ID] = stored
	return nil
}

func (r checkoutRepo) CreateItem(_ context.Context, it *entity.CheckoutItem) error {
	r.s.items = append(r.s.items, *it)
	return nil
}

func (r checkoutRepo) GetByID(_ context.Context, id string) (*entity.Checkout, error) {
	c, ok := r.s.checkouts[id]
	if !ok {
		return nil, nil
	}
	for _, it := range r.s.items {
		if it.CheckoutID == id {
			c.Items = append(c.Items, it)
		}
	}
	return &c, nil
}

func (r checkoutRepo) Exists(_ context.Context, id string) (bool, error) {
	_, ok := r.s.checkouts[id]
	return ok, nil
}

func (r checkoutRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Checkout, error) {
	var out []*entity.Checkout
	for id, c := range r.s.checkouts {
		if userID != "" && c.UserID != userID {
			continue
		}
		full, _ := r.GetByID(ctx, id)
		out = append(out, full)
	}
	return out, nil
}

func (r checkoutRepo) UpdateStatus(_ context.Context, id, status string, isPaid bool) error {
	c := r.s.checkouts[id]
	c.Status = status
	c.IsPaid = isPaid
	r.s.checkouts[id] = c
	return nil
}

type transactionRepo struct{ s *memStore }

func (r transactionRepo) Create(_ context.Context, t *entity.Transaction) error {
	r.s.transactions[t.ID] = *t
	return nil
}

func (r transactionRepo) GetByID(_ context.Context, id string) (*entity.Transaction, error) {
	t, ok := r.s.transactions[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r transactionRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Transaction, error) {
	return r.GetByID(ctx, id)
}

func (r transactionRepo) ListByCheckout(_ context.Context, checkoutID string) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, t := range r.s.transactions {
		if t.CheckoutID == checkoutID {
			t := t
			out = append(out, &t)
		}
	}
	return out, nil
}

func (r transactionRepo) UpdateStatus(_ context.Context, id, status string) error {
	t := r.s.transactions[id]
	t.Status = status
	r.s.transactions[id] = t
	return nil
}

var (
	_ repository.CategoryRepository       = categoryRepo{}
	_ repository.GoodRepository           = goodRepo{}
	_ repository.GoodImageRepository      = imageRepo{}
	_ repository.PaymentMethodRepository  = paymentRepo{}
	_ repository.DeliveryMethodRepository = deliveryRepo{}
	_ repository.RecipientRepository      = recipientRepo{}
	_ repository.BasketRepository         = basketRepo{}
	_ repository.CheckoutRepository       = checkoutRepo{}
	_ repository.TransactionRepository    = transactionRepo{}
)
