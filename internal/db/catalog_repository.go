package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/fitsim/internal/attr"
	"github.com/udisondev/fitsim/internal/data"
)

// CatalogRepository хранит каталог предметов в PostgreSQL и реализует data.Catalog.
type CatalogRepository struct {
	db *pgxpool.Pool
}

// NewCatalogRepository создаёт новый CatalogRepository.
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

var _ data.Catalog = (*CatalogRepository)(nil)

// Lookup loads an item with its attribute table by case-insensitive name.
// Returns nil, nil if the item does not exist.
func (r *CatalogRepository) Lookup(ctx context.Context, name string) (*data.Item, error) {
	query := `
		SELECT i.name, i.category_id, a.attribute_id, a.value
		FROM catalog_items i
		LEFT JOIN catalog_item_attributes a ON a.item_id = i.id
		WHERE i.name_key = $1
	`

	rows, err := r.db.Query(ctx, query, data.NormalizeName(name))
	if err != nil {
		return nil, fmt.Errorf("querying catalog item %q: %w", name, err)
	}
	defer rows.Close()

	var it *data.Item
	for rows.Next() {
		var (
			itemName   string
			categoryID int32
			key        *int32
			value      *float64
		)
		if err := rows.Scan(&itemName, &categoryID, &key, &value); err != nil {
			return nil, fmt.Errorf("scanning catalog row for %q: %w", name, err)
		}
		if it == nil {
			it = &data.Item{Name: itemName, CategoryID: categoryID, Attributes: make(map[attr.Key]float64, 16)}
		}
		// LEFT JOIN: an item without attributes yields one row of NULLs.
		if key != nil && value != nil {
			it.Attributes[attr.Key(*key)] = *value
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating catalog rows for %q: %w", name, err)
	}

	return it, nil
}

// SaveAll upserts items in a single transaction. Each item's attribute table
// is replaced as a whole.
func (r *CatalogRepository) SaveAll(ctx context.Context, items []*data.Item) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && err.Error() != "tx is closed" {
			slog.Error("rollback failed", "items", len(items), "error", err)
		}
	}()

	for _, it := range items {
		if err := r.saveTx(ctx, tx, it); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (r *CatalogRepository) saveTx(ctx context.Context, tx pgx.Tx, it *data.Item) error {
	var id int64
	err := tx.QueryRow(ctx, `
		INSERT INTO catalog_items (name, name_key, category_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (name_key) DO UPDATE
		SET name = EXCLUDED.name, category_id = EXCLUDED.category_id, updated_at = now()
		RETURNING id`,
		it.Name, data.NormalizeName(it.Name), it.CategoryID,
	).Scan(&id)
	if err != nil {
		return fmt.Errorf("upserting catalog item %q: %w", it.Name, err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM catalog_item_attributes WHERE item_id = $1`, id); err != nil {
		return fmt.Errorf("deleting old attributes of %q: %w", it.Name, err)
	}
	if len(it.Attributes) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(it.Attributes))
	for k, v := range it.Attributes {
		rows = append(rows, []any{id, int32(k), v})
	}
	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"catalog_item_attributes"},
		[]string{"item_id", "attribute_id", "value"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("inserting attributes of %q: %w", it.Name, err)
	}
	return nil
}

// Count returns the number of catalog items.
func (r *CatalogRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM catalog_items`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting catalog items: %w", err)
	}
	return n, nil
}
