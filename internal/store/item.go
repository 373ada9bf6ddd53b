package store

import (
	"context"
	"database/sql"
	"sync"

	"github.com/dvarga/shoplist/internal/model"
)

// ItemStore provides CRUD access to shopping items plus a live
// subscription that re-emits the full item set after every committed
// mutation. It is the single writer-serializing authority: all mutation
// goes through its methods, and SQLite serializes the actual writes.
type ItemStore struct {
	db *sql.DB

	mu   sync.Mutex
	subs map[*Subscription]struct{}
}

// NewItemStore creates an ItemStore over db.
func NewItemStore(db *sql.DB) *ItemStore {
	return &ItemStore{
		db:   db,
		subs: make(map[*Subscription]struct{}),
	}
}

func scanItem(scanner interface{ Scan(...any) error }) (*model.ShoppingItem, error) {
	var item model.ShoppingItem
	var bought int

	err := scanner.Scan(
		&item.ID, &item.Name, &item.Description, &item.EstimatedPriceHUF,
		&item.Category, &bought, &item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	item.IsBought = bought != 0
	return &item, nil
}

const itemCols = `id, name, description, estimated_price_huf, category, is_bought, created_at`

// GetByID returns the item with the given id, or nil if no such item
// exists. Point lookup only, no side effects.
func (s *ItemStore) GetByID(ctx context.Context, id int64) (*model.ShoppingItem, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+itemCols+` FROM shopping_items WHERE id = ?`, id)
	item, err := scanItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("get item", err)
	}
	return item, nil
}

// List returns every item in insertion order.
func (s *ItemStore) List(ctx context.Context) ([]model.ShoppingItem, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+itemCols+` FROM shopping_items ORDER BY id ASC`)
	if err != nil {
		return nil, storageErr("list items", err)
	}
	defer rows.Close()

	return collectItems(rows)
}

// ListByCategory returns the items in the given category, insertion order.
func (s *ItemStore) ListByCategory(ctx context.Context, category string) ([]model.ShoppingItem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+itemCols+` FROM shopping_items WHERE category = ? ORDER BY id ASC`,
		category,
	)
	if err != nil {
		return nil, storageErr("list items by category", err)
	}
	defer rows.Close()

	return collectItems(rows)
}

func collectItems(rows *sql.Rows) ([]model.ShoppingItem, error) {
	var items []model.ShoppingItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, storageErr("scan item", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate items", err)
	}
	return items, nil
}

// Insert persists a new item and returns it with the assigned id.
// Business validation (non-empty name, known category) belongs to the
// caller; the schema only enforces structural integrity.
func (s *ItemStore) Insert(name, description string, priceHUF int64, category string, isBought bool) (*model.ShoppingItem, error) {
	result, err := s.db.Exec(
		`INSERT INTO shopping_items (name, description, estimated_price_huf, category, is_bought) VALUES (?, ?, ?, ?, ?)`,
		name, description, priceHUF, category, boolToInt(isBought),
	)
	if err != nil {
		return nil, storageErr("insert item", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, storageErr("last insert id", err)
	}

	s.notify()
	return s.GetByID(context.Background(), id)
}

// Update overwrites the full row for id. Returns ErrNotFound when no
// such row exists.
func (s *ItemStore) Update(id int64, name, description string, priceHUF int64, category string, isBought bool) (*model.ShoppingItem, error) {
	result, err := s.db.Exec(
		`UPDATE shopping_items SET name = ?, description = ?, estimated_price_huf = ?, category = ?, is_bought = ? WHERE id = ?`,
		name, description, priceHUF, category, boolToInt(isBought), id,
	)
	if err != nil {
		return nil, storageErr("update item", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return nil, storageErr("rows affected", err)
	}
	if n == 0 {
		return nil, ErrNotFound
	}

	s.notify()
	return s.GetByID(context.Background(), id)
}

// DeleteByID removes the item with the given id. Deleting a nonexistent
// id is a no-op, not an error.
func (s *ItemStore) DeleteByID(id int64) error {
	_, err := s.db.Exec(`DELETE FROM shopping_items WHERE id = ?`, id)
	if err != nil {
		return storageErr("delete item", err)
	}

	s.notify()
	return nil
}

// DeleteAll removes every item unconditionally.
func (s *ItemStore) DeleteAll() error {
	_, err := s.db.Exec(`DELETE FROM shopping_items`)
	if err != nil {
		return storageErr("delete all items", err)
	}

	s.notify()
	return nil
}

// ToggleBought flips the purchased flag for id and returns the updated
// item, or nil if no such item exists.
func (s *ItemStore) ToggleBought(id int64) (*model.ShoppingItem, error) {
	item, err := s.GetByID(context.Background(), id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	_, err = s.db.Exec(
		`UPDATE shopping_items SET is_bought = ? WHERE id = ?`,
		boolToInt(!item.IsBought), id,
	)
	if err != nil {
		return nil, storageErr("toggle bought", err)
	}

	s.notify()
	return s.GetByID(context.Background(), id)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
