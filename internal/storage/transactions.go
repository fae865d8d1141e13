package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashflow-app/cashflow/internal/common"
	"github.com/cashflow-app/cashflow/internal/model"
	"github.com/cashflow-app/cashflow/internal/storage/query"
)

// transactionColumns whitelists the fields a predicate or sort key may
// reference on the transaction entity. The store guarantees equality and
// range support on type and date.
var transactionColumns = map[string]string{
	"type":        "t.type",
	"date":        "t.date",
	"note":        "t.note",
	"category_id": "t.category_id",
}

const transactionSelect = `
	SELECT t.id, t.amount, t.type, t.date, t.note,
	       c.id, c.name, c.icon, c.color, c.created_at
	FROM transactions t
	LEFT JOIN categories c ON t.category_id = c.id`

// GetTransactions returns all transactions ordered by date descending.
func (s *SQLiteStorage) GetTransactions(ctx context.Context) ([]model.Transaction, error) {
	return s.QueryTransactions(ctx, nil, []query.SortKey{query.Desc("date")})
}

// QueryTransactions runs a general predicate query over transactions.
func (s *SQLiteStorage) QueryTransactions(ctx context.Context, pred *query.Predicate, sort []query.SortKey) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	where, args, err := pred.SQL(transactionColumns)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}
	orderBy, err := query.OrderBy(sort, transactionColumns)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	q := transactionSelect
	if where != "" {
		q += " WHERE " + where
	}
	if orderBy != "" {
		q += " ORDER BY " + orderBy
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, storageErr("failed to query transactions", err)
	}
	defer func() { _ = rows.Close() }()

	var transactions []model.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *txn)
	}

	if err := rows.Err(); err != nil {
		return nil, storageErr("error iterating transactions", err)
	}

	slog.Debug("retrieved transactions", "count", len(transactions))
	return transactions, nil
}

// GetTransactionsByDateRange returns transactions with start <= date <= end,
// most recent first. Both bounds are inclusive.
func (s *SQLiteStorage) GetTransactionsByDateRange(ctx context.Context, start, end time.Time) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateDateRange(start, end); err != nil {
		return nil, err
	}

	pred := query.And(query.Gte("date", start), query.Lte("date", end))
	return s.QueryTransactions(ctx, pred, []query.SortKey{query.Desc("date")})
}

// GetTransactionByID retrieves a single transaction by ID.
func (s *SQLiteStorage) GetTransactionByID(ctx context.Context, id string) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, transactionSelect+" WHERE t.id = ?", id)
	txn, err := scanTransaction(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: transaction %s", common.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return txn, nil
}

// CreateTransaction persists a new transaction with a fresh id. The amount
// must be a positive magnitude and the type one of income/expense; a zero
// date defaults to the current time. An empty categoryID records the
// transaction as uncategorized.
func (s *SQLiteStorage) CreateTransaction(ctx context.Context, amount decimal.Decimal, txType model.TransactionType, date time.Time, note string, categoryID string) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	if err := validateType(txType); err != nil {
		return nil, err
	}

	if date.IsZero() {
		date = time.Now()
	}

	txn := &model.Transaction{
		ID:     uuid.NewString(),
		Amount: amount,
		Type:   txType,
		Date:   date,
		Note:   note,
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO transactions (id, amount, type, date, note, category_id)
		VALUES (?, ?, ?, ?, ?, ?)`,
		txn.ID, txn.Amount.String(), string(txn.Type), txn.Date, txn.Note, nullableID(categoryID),
	)
	if err != nil {
		return nil, storageErr("failed to create transaction", err)
	}

	// Re-read so the returned entity carries the resolved category.
	created, err := s.GetTransactionByID(ctx, txn.ID)
	if err != nil {
		return nil, err
	}

	slog.Info("created transaction",
		"id", created.ID,
		"type", created.Type,
		"amount", created.Amount.String())
	return created, nil
}

// UpdateTransaction persists mutations already applied to the entity. It
// fails with common.ErrNotFound when the transaction was deleted underneath,
// rather than silently recreating it.
func (s *SQLiteStorage) UpdateTransaction(ctx context.Context, txn *model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if txn == nil {
		return fmt.Errorf("%w: transaction cannot be nil", common.ErrValidation)
	}
	if err := validateString(txn.ID, "transaction ID"); err != nil {
		return err
	}
	if err := validateAmount(txn.Amount); err != nil {
		return err
	}
	if err := validateType(txn.Type); err != nil {
		return err
	}

	var categoryID string
	if txn.Category != nil {
		categoryID = txn.Category.ID
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE transactions SET amount = ?, type = ?, date = ?, note = ?, category_id = ?
		WHERE id = ?`,
		txn.Amount.String(), string(txn.Type), txn.Date, txn.Note, nullableID(categoryID), txn.ID,
	)
	if err != nil {
		return storageErr("failed to update transaction", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return storageErr("failed to check update result", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: transaction %s", common.ErrNotFound, txn.ID)
	}

	slog.Debug("updated transaction", "id", txn.ID)
	return nil
}

// DeleteTransaction removes the transaction. Deleting an already-deleted
// transaction returns common.ErrNotFound; delete flows treat that as a
// successful no-op.
func (s *SQLiteStorage) DeleteTransaction(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return storageErr("failed to delete transaction", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return storageErr("failed to check delete result", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: transaction %s", common.ErrNotFound, id)
	}

	slog.Info("deleted transaction", "id", id)
	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanTransaction reads one joined transaction row. A dangling or absent
// category reference resolves to a nil Category, never an error.
func scanTransaction(row rowScanner) (*model.Transaction, error) {
	var txn model.Transaction
	var amount string
	var txType string
	var catID, catName, catIcon, catColor sql.NullString
	var catCreatedAt sql.NullTime

	err := row.Scan(
		&txn.ID, &amount, &txType, &txn.Date, &txn.Note,
		&catID, &catName, &catIcon, &catColor, &catCreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, storageErr("failed to scan transaction", err)
	}

	txn.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return nil, storageErr("failed to parse stored amount", err)
	}
	txn.Type = model.TransactionType(txType)

	if catID.Valid {
		txn.Category = &model.Category{
			ID:        catID.String,
			Name:      catName.String,
			Icon:      catIcon.String,
			Color:     catColor.String,
			CreatedAt: catCreatedAt.Time,
		}
	}

	return &txn, nil
}

// nullableID converts an empty id string to a SQL NULL.
func nullableID(id string) any {
	if id == "" {
		return nil
	}
	return id
}
