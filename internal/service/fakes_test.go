package service_test

import (
	"context"
	"errors"
	"maps"
	"slices"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/zionbm/zion/internal/apperr"
	"github.com/zionbm/zion/internal/model"
	"github.com/zionbm/zion/internal/repository"
	"github.com/zionbm/zion/internal/storage/db"
)

// errCheckViolation stands in for the store rejecting a negative quantity.
var errCheckViolation = errors.New(`new row violates check constraint "products_quantity_check"`)

// memStore backs the fake repositories. fakeDB.WithTx snapshots it before
// running the closure and restores the snapshot on error, so rollback
// behavior is observable in tests without a real database.
type memStore struct {
	nextID       int64
	products     map[int64]model.Product
	orders       map[int64]model.Order
	orderIDs     []int64
	items        map[int64]model.OrderItem
	itemIDs      []int64
	customers    map[int64]model.Customer
	customerIDs  []int64
	transactions []model.Transaction
	outbox       []repository.CreateOutboxMsgParams
}

func newMemStore() *memStore {
	return &memStore{
		products:  make(map[int64]model.Product),
		orders:    make(map[int64]model.Order),
		items:     make(map[int64]model.OrderItem),
		customers: make(map[int64]model.Customer),
	}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *memStore) clone() *memStore {
	return &memStore{
		nextID:       s.nextID,
		products:     maps.Clone(s.products),
		orders:       maps.Clone(s.orders),
		orderIDs:     slices.Clone(s.orderIDs),
		items:        maps.Clone(s.items),
		itemIDs:      slices.Clone(s.itemIDs),
		customers:    maps.Clone(s.customers),
		customerIDs:  slices.Clone(s.customerIDs),
		transactions: slices.Clone(s.transactions),
		outbox:       slices.Clone(s.outbox),
	}
}

func (s *memStore) addProduct(p model.Product) int64 {
	p.ID = s.id()
	s.products[p.ID] = p
	return p.ID
}

func (s *memStore) orderItems(orderID int64) []model.OrderItem {
	var items []model.OrderItem
	for _, id := range s.itemIDs {
		if item := s.items[id]; item.OrderID == orderID {
			items = append(items, item)
		}
	}
	return items
}

type fakeDB struct {
	store *memStore
}

var _ db.DB = (*fakeDB)(nil)

func (f *fakeDB) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	panic("not used by fakes")
}

func (f *fakeDB) Query(context.Context, string, ...any) (pgx.Rows, error) {
	panic("not used by fakes")
}

func (f *fakeDB) QueryRow(context.Context, string, ...any) pgx.Row {
	panic("not used by fakes")
}

func (f *fakeDB) CopyFrom(context.Context, pgx.Identifier, []string, pgx.CopyFromSource) (int64, error) {
	panic("not used by fakes")
}

func (f *fakeDB) SendBatch(context.Context, *pgx.Batch) pgx.BatchResults {
	panic("not used by fakes")
}

func (f *fakeDB) WithTx(_ context.Context, txFunc func(db.DB) error) error {
	snapshot := f.store.clone()
	if err := txFunc(f); err != nil {
		*f.store = *snapshot
		return err
	}
	return nil
}

type fakeProductRepo struct {
	store *memStore
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func (r *fakeProductRepo) WithDB(db.DB) repository.ProductRepository { return r }

func (r *fakeProductRepo) Create(_ context.Context, params repository.CreateProductParams) (int64, error) {
	return r.store.addProduct(model.Product{
		Name:        params.Name,
		Sku:         params.Sku,
		Description: params.Description,
		Price:       params.Price,
		CostPrice:   params.CostPrice,
		Quantity:    params.Quantity,
		MinQuantity: params.MinQuantity,
		CategoryID:  params.CategoryID,
		SupplierID:  params.SupplierID,
	}), nil
}

func (r *fakeProductRepo) Get(_ context.Context, id int64) (model.Product, error) {
	p, ok := r.store.products[id]
	if !ok {
		return model.Product{}, apperr.ErrProductNotFound
	}
	return p, nil
}

func (r *fakeProductRepo) ListAll(context.Context) ([]model.Product, error) {
	ids := slices.Sorted(maps.Keys(r.store.products))
	products := make([]model.Product, 0, len(ids))
	for _, id := range ids {
		products = append(products, r.store.products[id])
	}
	return products, nil
}

func (r *fakeProductRepo) Search(ctx context.Context, query string) ([]model.Product, error) {
	all, _ := r.ListAll(ctx)
	var matched []model.Product
	q := strings.ToLower(query)
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Sku), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func (r *fakeProductRepo) Update(_ context.Context, id int64, params repository.UpdateProductParams) error {
	p, ok := r.store.products[id]
	if !ok {
		return apperr.ErrProductNotFound
	}
	if params.Name != nil {
		p.Name = *params.Name
	}
	if params.Description != nil {
		p.Description = *params.Description
	}
	if params.Price != nil {
		p.Price = *params.Price
	}
	if params.CostPrice != nil {
		p.CostPrice = *params.CostPrice
	}
	if params.MinQuantity != nil {
		p.MinQuantity = *params.MinQuantity
	}
	if params.CategoryID != nil {
		p.CategoryID = params.CategoryID
	}
	if params.SupplierID != nil {
		p.SupplierID = params.SupplierID
	}
	r.store.products[id] = p
	return nil
}

func (r *fakeProductRepo) AdjustStock(_ context.Context, id int64, delta int) error {
	p, ok := r.store.products[id]
	if !ok {
		return apperr.ErrProductNotFound
	}
	// Mirrors the CHECK (quantity >= 0) constraint.
	if p.Quantity+delta < 0 {
		return errCheckViolation
	}
	p.Quantity += delta
	r.store.products[id] = p
	return nil
}

func (r *fakeProductRepo) ListLowStock(ctx context.Context) ([]model.Product, error) {
	all, _ := r.ListAll(ctx)
	var low []model.Product
	for _, p := range all {
		if p.LowStock() {
			low = append(low, p)
		}
	}
	return low, nil
}

type fakeOrderRepo struct {
	store *memStore
}

var _ repository.OrderRepository = (*fakeOrderRepo)(nil)

func (r *fakeOrderRepo) WithDB(db.DB) repository.OrderRepository { return r }

func (r *fakeOrderRepo) Create(_ context.Context, params repository.CreateOrderParams) (int64, error) {
	o := model.Order{
		ID:         r.store.id(),
		CustomerID: params.CustomerID,
		Status:     model.OrderStatusPending,
		Notes:      params.Notes,
	}
	r.store.orders[o.ID] = o
	r.store.orderIDs = append(r.store.orderIDs, o.ID)
	return o.ID, nil
}

func (r *fakeOrderRepo) Get(_ context.Context, id int64) (model.Order, error) {
	o, ok := r.store.orders[id]
	if !ok {
		return model.Order{}, apperr.ErrOrderNotFound
	}
	return o, nil
}

func (r *fakeOrderRepo) GetDetails(ctx context.Context, id int64) (model.Order, error) {
	o, err := r.Get(ctx, id)
	if err != nil {
		return model.Order{}, err
	}
	o.Items = r.store.orderItems(id)
	return o, nil
}

func (r *fakeOrderRepo) ListAll(context.Context) ([]model.Order, error) {
	orders := make([]model.Order, 0, len(r.store.orderIDs))
	for _, id := range r.store.orderIDs {
		orders = append(orders, r.store.orders[id])
	}
	return orders, nil
}

func (r *fakeOrderRepo) ListByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	all, _ := r.ListAll(ctx)
	var matched []model.Order
	for _, o := range all {
		if o.Status == status {
			matched = append(matched, o)
		}
	}
	return matched, nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, id int64, status model.OrderStatus) error {
	o, ok := r.store.orders[id]
	if !ok {
		return apperr.ErrOrderNotFound
	}
	o.Status = status
	r.store.orders[id] = o
	return nil
}

func (r *fakeOrderRepo) CreateItem(_ context.Context, params repository.CreateOrderItemParams) (int64, error) {
	item := model.OrderItem{
		ID:        r.store.id(),
		OrderID:   params.OrderID,
		ProductID: params.ProductID,
		Quantity:  params.Quantity,
		UnitPrice: params.UnitPrice,
	}
	r.store.items[item.ID] = item
	r.store.itemIDs = append(r.store.itemIDs, item.ID)
	return item.ID, nil
}

func (r *fakeOrderRepo) ListItems(_ context.Context, orderID int64) ([]model.OrderItem, error) {
	return r.store.orderItems(orderID), nil
}

func (r *fakeOrderRepo) RecomputeTotal(_ context.Context, id int64) error {
	o, ok := r.store.orders[id]
	if !ok {
		return apperr.ErrOrderNotFound
	}
	var total float64
	for _, item := range r.store.orderItems(id) {
		total += float64(item.Quantity) * item.UnitPrice
	}
	o.TotalAmount = total
	r.store.orders[id] = o
	return nil
}

type fakeCustomerRepo struct {
	store *memStore
}

var _ repository.CustomerRepository = (*fakeCustomerRepo)(nil)

func (r *fakeCustomerRepo) WithDB(db.DB) repository.CustomerRepository { return r }

func (r *fakeCustomerRepo) Create(_ context.Context, params repository.CreateCustomerParams) (int64, error) {
	c := model.Customer{
		ID:      r.store.id(),
		Name:    params.Name,
		Email:   params.Email,
		Phone:   params.Phone,
		Address: params.Address,
	}
	r.store.customers[c.ID] = c
	r.store.customerIDs = append(r.store.customerIDs, c.ID)
	return c.ID, nil
}

func (r *fakeCustomerRepo) Get(_ context.Context, id int64) (model.Customer, error) {
	c, ok := r.store.customers[id]
	if !ok {
		return model.Customer{}, apperr.ErrCustomerNotFound
	}
	return c, nil
}

func (r *fakeCustomerRepo) ListAll(context.Context) ([]model.Customer, error) {
	customers := make([]model.Customer, 0, len(r.store.customerIDs))
	for _, id := range r.store.customerIDs {
		customers = append(customers, r.store.customers[id])
	}
	return customers, nil
}

func (r *fakeCustomerRepo) Search(ctx context.Context, query string) ([]model.Customer, error) {
	all, _ := r.ListAll(ctx)
	var matched []model.Customer
	q := strings.ToLower(query)
	for _, c := range all {
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Email), q) {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, id int64, params repository.UpdateCustomerParams) error {
	c, ok := r.store.customers[id]
	if !ok {
		return apperr.ErrCustomerNotFound
	}
	if params.Name != nil {
		c.Name = *params.Name
	}
	if params.Email != nil {
		c.Email = *params.Email
	}
	if params.Phone != nil {
		c.Phone = *params.Phone
	}
	if params.Address != nil {
		c.Address = *params.Address
	}
	r.store.customers[id] = c
	return nil
}

func (r *fakeCustomerRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.store.customers[id]; !ok {
		return apperr.ErrCustomerNotFound
	}
	delete(r.store.customers, id)
	r.store.customerIDs = slices.DeleteFunc(r.store.customerIDs, func(i int64) bool { return i == id })
	return nil
}

type fakeTransactionRepo struct {
	store *memStore
}

var _ repository.TransactionRepository = (*fakeTransactionRepo)(nil)

func (r *fakeTransactionRepo) WithDB(db.DB) repository.TransactionRepository { return r }

func (r *fakeTransactionRepo) Create(_ context.Context, params repository.CreateTransactionParams) (int64, error) {
	t := model.Transaction{
		ID:            r.store.id(),
		OrderID:       params.OrderID,
		Type:          params.Type,
		Amount:        params.Amount,
		PaymentMethod: params.PaymentMethod,
		Notes:         params.Notes,
	}
	r.store.transactions = append(r.store.transactions, t)
	return t.ID, nil
}

func (r *fakeTransactionRepo) ListAll(context.Context) ([]model.Transaction, error) {
	return slices.Clone(r.store.transactions), nil
}

func (r *fakeTransactionRepo) SumByType(context.Context, repository.SumByTypeParams) (map[string]float64, error) {
	totals := make(map[string]float64)
	for _, t := range r.store.transactions {
		totals[t.Type] += t.Amount
	}
	return totals, nil
}

func (r *fakeTransactionRepo) TotalOrderCost(context.Context) (float64, error) {
	var total float64
	for _, id := range r.store.itemIDs {
		item := r.store.items[id]
		if r.store.orders[item.OrderID].Status == model.OrderStatusCancelled {
			continue
		}
		total += float64(item.Quantity) * r.store.products[item.ProductID].CostPrice
	}
	return total, nil
}

type fakeOutboxRepo struct {
	store *memStore
}

var _ repository.OutboxMsgRepository = (*fakeOutboxRepo)(nil)

func (r *fakeOutboxRepo) WithDB(db.DB) repository.OutboxMsgRepository { return r }

func (r *fakeOutboxRepo) CreateOutboxMsg(_ context.Context, params repository.CreateOutboxMsgParams) error {
	r.store.outbox = append(r.store.outbox, params)
	return nil
}

func (r *fakeOutboxRepo) ListUnprocessedOutboxMsgs(context.Context, repository.ListUnprocessedOutboxMsgsParams) ([]repository.ListUnprocessedOutboxMsgsResult, error) {
	return nil, nil
}

func (r *fakeOutboxRepo) BulkUpdateOutboxMsgs(context.Context, repository.BulkUpdateOutboxMsgsParams) error {
	return nil
}
