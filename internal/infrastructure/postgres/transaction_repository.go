package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo adaptador del libro de ventas sobre PostgreSQL.
type TransactionRepo struct {
	q Querier
}

func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

const txColumns = `id, amount, currency, foreign_amount, foreign_currency, exchange_rate,
	payment_method, type, timestamp, branch_id, account_id, customer_id, staff_id`

// Create registra el asiento de la venta. Inmutable: no existe Update.
func (r *TransactionRepo) Create(t *entity.Transaction) error {
	query := `
		INSERT INTO transactions (` + txColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.Amount, t.Currency, t.ForeignAmount, t.ForeignCurrency, t.ExchangeRate,
		t.PaymentMethod, t.Type, t.Timestamp, t.BranchID, t.AccountID, t.CustomerID, t.StaffID,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID obtiene un asiento; nil si no existe.
func (r *TransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	var t entity.Transaction
	err := r.q.QueryRow(context.Background(),
		`SELECT `+txColumns+` FROM transactions WHERE id = $1`, id).Scan(
		&t.ID, &t.Amount, &t.Currency, &t.ForeignAmount, &t.ForeignCurrency, &t.ExchangeRate,
		&t.PaymentMethod, &t.Type, &t.Timestamp, &t.BranchID, &t.AccountID, &t.CustomerID, &t.StaffID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return &t, nil
}

// List lista los asientos más recientes primero, paginado.
func (r *TransactionRepo) List(limit, offset int) ([]*entity.Transaction, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.q.Query(context.Background(),
		`SELECT `+txColumns+` FROM transactions ORDER BY timestamp DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		if err := rows.Scan(&t.ID, &t.Amount, &t.Currency, &t.ForeignAmount, &t.ForeignCurrency,
			&t.ExchangeRate, &t.PaymentMethod, &t.Type, &t.Timestamp, &t.BranchID,
			&t.AccountID, &t.CustomerID, &t.StaffID); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Delete corrección administrativa: elimina el asiento. No repone existencias.
func (r *TransactionRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM transactions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}
