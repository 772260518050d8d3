package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"banchi/internal/core"

	_ "modernc.org/sqlite"
)

// SQLiteRepository implements Store over a local SQLite file.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// dbErr maps driver failures onto the domain error kinds.
func dbErr(verb string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", verb, core.ErrNotFound)
	}
	return fmt.Errorf("%s: %w: %w", verb, core.ErrStoreUnavailable, err)
}

func (r *SQLiteRepository) CreateTransaction(ctx context.Context, tx core.Transaction) (core.Transaction, error) {
	tx.CreatedAt = time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO transactions (day, month, year, type, description, category, quantity, unit_price_satang, total_satang, owner, payment_method, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		tx.Day, tx.Month, tx.Year, tx.Type, tx.Description, tx.Category,
		tx.Quantity, tx.UnitPrice.Satang, tx.Total.Satang, tx.Owner, tx.PaymentMethod, tx.CreatedAt)
	if err != nil {
		return core.Transaction{}, dbErr("create transaction", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return core.Transaction{}, dbErr("create transaction id", err)
	}
	tx.ID = id

	slog.InfoContext(ctx, "Transaction saved",
		"id", tx.ID,
		"type", tx.Type,
		"total_satang", tx.Total.Satang,
		"owner", tx.Owner)
	return tx, nil
}

const transactionColumns = `id, day, month, year, type, description, category, quantity, unit_price_satang, total_satang, owner, payment_method, created_at`

func scanTransaction(row interface{ Scan(...any) error }) (core.Transaction, error) {
	var tx core.Transaction
	err := row.Scan(&tx.ID, &tx.Day, &tx.Month, &tx.Year, &tx.Type, &tx.Description,
		&tx.Category, &tx.Quantity, &tx.UnitPrice.Satang, &tx.Total.Satang,
		&tx.Owner, &tx.PaymentMethod, &tx.CreatedAt)
	return tx, err
}

func (r *SQLiteRepository) GetTransaction(ctx context.Context, id int64) (core.Transaction, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE id = ?`, id)
	tx, err := scanTransaction(row)
	if err != nil {
		return core.Transaction{}, dbErr("get transaction", err)
	}
	return tx, nil
}

func (r *SQLiteRepository) UpdateTransaction(ctx context.Context, tx core.Transaction) (core.Transaction, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE transactions
		SET day = ?, month = ?, year = ?, type = ?, description = ?, category = ?,
		    quantity = ?, unit_price_satang = ?, total_satang = ?, owner = ?, payment_method = ?
		WHERE id = ?`,
		tx.Day, tx.Month, tx.Year, tx.Type, tx.Description, tx.Category,
		tx.Quantity, tx.UnitPrice.Satang, tx.Total.Satang, tx.Owner, tx.PaymentMethod, tx.ID)
	if err != nil {
		return core.Transaction{}, dbErr("update transaction", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return core.Transaction{}, dbErr("update transaction rows", err)
	}
	if n == 0 {
		return core.Transaction{}, fmt.Errorf("update transaction %d: %w", tx.ID, core.ErrNotFound)
	}
	return r.GetTransaction(ctx, tx.ID)
}

func (r *SQLiteRepository) DeleteTransaction(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return dbErr("delete transaction", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return dbErr("delete transaction rows", err)
	}
	if n == 0 {
		return fmt.Errorf("delete transaction %d: %w", id, core.ErrNotFound)
	}
	return nil
}

func (r *SQLiteRepository) ListTransactions(ctx context.Context, f core.FilterOptions) ([]core.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE 1=1`
	var args []any
	if f.Month != 0 {
		query += ` AND month = ?`
		args = append(args, f.Month)
	}
	if f.Year != 0 {
		query += ` AND year = ?`
		args = append(args, f.Year)
	}
	if f.Owner != "" && f.Owner != core.FilterAll {
		query += ` AND owner = ?`
		args = append(args, f.Owner)
	}
	if f.Type != "" && string(f.Type) != core.FilterAll {
		query += ` AND type = ?`
		args = append(args, f.Type)
	}
	if f.Category != "" && string(f.Category) != core.FilterAll {
		query += ` AND category = ?`
		args = append(args, f.Category)
	}
	switch f.SortBy {
	case core.SortPriceDesc:
		query += ` ORDER BY total_satang DESC, id ASC`
	default:
		query += ` ORDER BY created_at DESC`
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbErr("list transactions", err)
	}
	defer rows.Close()

	var out []core.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, dbErr("scan transaction", err)
		}
		out = append(out, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, dbErr("list transactions", err)
	}
	return out, nil
}

func (r *SQLiteRepository) UpsertBudget(ctx context.Context, b core.Budget) (core.Budget, error) {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO budgets (owner, category, monthly_limit_satang, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(owner, category) DO UPDATE SET
			monthly_limit_satang = excluded.monthly_limit_satang,
			updated_at = excluded.updated_at`,
		b.Owner, b.Category, b.MonthlyLimit.Satang, now, now)
	if err != nil {
		return core.Budget{}, dbErr("upsert budget", err)
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, owner, category, monthly_limit_satang, created_at, updated_at
		FROM budgets WHERE owner = ? AND category = ?`, b.Owner, b.Category)
	var out core.Budget
	if err := row.Scan(&out.ID, &out.Owner, &out.Category, &out.MonthlyLimit.Satang, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return core.Budget{}, dbErr("read budget", err)
	}
	return out, nil
}

func (r *SQLiteRepository) ListBudgets(ctx context.Context, owner core.Owner) ([]core.Budget, error) {
	query := `SELECT id, owner, category, monthly_limit_satang, created_at, updated_at FROM budgets`
	var args []any
	if owner != "" && owner != core.FilterAll {
		query += ` WHERE owner = ?`
		args = append(args, owner)
	}
	query += ` ORDER BY category`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbErr("list budgets", err)
	}
	defer rows.Close()

	var out []core.Budget
	for rows.Next() {
		var b core.Budget
		if err := rows.Scan(&b.ID, &b.Owner, &b.Category, &b.MonthlyLimit.Satang, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, dbErr("scan budget", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, dbErr("list budgets", err)
	}
	return out, nil
}

func (r *SQLiteRepository) DeleteBudget(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM budgets WHERE id = ?`, id)
	if err != nil {
		return dbErr("delete budget", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return dbErr("delete budget rows", err)
	}
	if n == 0 {
		return fmt.Errorf("delete budget %d: %w", id, core.ErrNotFound)
	}
	return nil
}

const installmentColumns = `id, owner, title, total_amount_satang, monthly_amount_satang, total_months, paid_months, start_month, start_year, status, note, created_at, updated_at`

func scanInstallment(row interface{ Scan(...any) error }) (core.Installment, error) {
	var p core.Installment
	err := row.Scan(&p.ID, &p.Owner, &p.Title, &p.TotalAmount.Satang, &p.MonthlyAmount.Satang,
		&p.TotalMonths, &p.PaidMonths, &p.StartMonth, &p.StartYear, &p.Status, &p.Note,
		&p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *SQLiteRepository) CreateInstallment(ctx context.Context, p core.Installment) (core.Installment, error) {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO installments (owner, title, total_amount_satang, monthly_amount_satang, total_months, paid_months, start_month, start_year, status, note, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Owner, p.Title, p.TotalAmount.Satang, p.MonthlyAmount.Satang, p.TotalMonths,
		p.PaidMonths, p.StartMonth, p.StartYear, p.Status, p.Note, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return core.Installment{}, dbErr("create installment", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return core.Installment{}, dbErr("create installment id", err)
	}
	p.ID = id
	return p, nil
}

func (r *SQLiteRepository) GetInstallment(ctx context.Context, id int64) (core.Installment, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+installmentColumns+` FROM installments WHERE id = ?`, id)
	p, err := scanInstallment(row)
	if err != nil {
		return core.Installment{}, dbErr("get installment", err)
	}
	return p, nil
}

func (r *SQLiteRepository) UpdateInstallment(ctx context.Context, p core.Installment) (core.Installment, error) {
	p.UpdatedAt = time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `
		UPDATE installments
		SET owner = ?, title = ?, total_amount_satang = ?, monthly_amount_satang = ?,
		    total_months = ?, paid_months = ?, start_month = ?, start_year = ?,
		    status = ?, note = ?, updated_at = ?
		WHERE id = ?`,
		p.Owner, p.Title, p.TotalAmount.Satang, p.MonthlyAmount.Satang, p.TotalMonths,
		p.PaidMonths, p.StartMonth, p.StartYear, p.Status, p.Note, p.UpdatedAt, p.ID)
	if err != nil {
		return core.Installment{}, dbErr("update installment", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return core.Installment{}, dbErr("update installment rows", err)
	}
	if n == 0 {
		return core.Installment{}, fmt.Errorf("update installment %d: %w", p.ID, core.ErrNotFound)
	}
	return p, nil
}

func (r *SQLiteRepository) ListInstallments(ctx context.Context, owner core.Owner, status core.InstallmentStatus) ([]core.Installment, error) {
	query := `SELECT ` + installmentColumns + ` FROM installments WHERE 1=1`
	var args []any
	if owner != "" && owner != core.FilterAll {
		query += ` AND owner = ?`
		args = append(args, owner)
	}
	if status != "" && string(status) != core.FilterAll {
		query += ` AND status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbErr("list installments", err)
	}
	defer rows.Close()

	var out []core.Installment
	for rows.Next() {
		p, err := scanInstallment(rows)
		if err != nil {
			return nil, dbErr("scan installment", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, dbErr("list installments", err)
	}
	return out, nil
}

const billColumns = `id, owner, amount_satang, due_month, due_year, status, transaction_id, note, created_at, updated_at`

func scanBill(row interface{ Scan(...any) error }) (core.CreditCardBill, error) {
	var b core.CreditCardBill
	err := row.Scan(&b.ID, &b.Owner, &b.Amount.Satang, &b.DueMonth, &b.DueYear,
		&b.Status, &b.TransactionID, &b.Note, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

func (r *SQLiteRepository) CreateBill(ctx context.Context, b core.CreditCardBill) (core.CreditCardBill, error) {
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO credit_card_bills (owner, amount_satang, due_month, due_year, status, transaction_id, note, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.Owner, b.Amount.Satang, b.DueMonth, b.DueYear, b.Status, b.TransactionID, b.Note, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		return core.CreditCardBill{}, dbErr("create bill", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return core.CreditCardBill{}, dbErr("create bill id", err)
	}
	b.ID = id

	slog.InfoContext(ctx, "Credit card bill recorded",
		"id", b.ID,
		"owner", b.Owner,
		"due_month", b.DueMonth,
		"due_year", b.DueYear,
		"amount_satang", b.Amount.Satang)
	return b, nil
}

func (r *SQLiteRepository) GetBill(ctx context.Context, id int64) (core.CreditCardBill, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+billColumns+` FROM credit_card_bills WHERE id = ?`, id)
	b, err := scanBill(row)
	if err != nil {
		return core.CreditCardBill{}, dbErr("get bill", err)
	}
	return b, nil
}

func (r *SQLiteRepository) UpdateBill(ctx context.Context, b core.CreditCardBill) (core.CreditCardBill, error) {
	b.UpdatedAt = time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `
		UPDATE credit_card_bills
		SET owner = ?, amount_satang = ?, due_month = ?, due_year = ?, status = ?,
		    transaction_id = ?, note = ?, updated_at = ?
		WHERE id = ?`,
		b.Owner, b.Amount.Satang, b.DueMonth, b.DueYear, b.Status, b.TransactionID, b.Note, b.UpdatedAt, b.ID)
	if err != nil {
		return core.CreditCardBill{}, dbErr("update bill", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return core.CreditCardBill{}, dbErr("update bill rows", err)
	}
	if n == 0 {
		return core.CreditCardBill{}, fmt.Errorf("update bill %d: %w", b.ID, core.ErrNotFound)
	}
	return b, nil
}

func (r *SQLiteRepository) ListBills(ctx context.Context, month, year int, owner core.Owner, status core.BillStatus) ([]core.CreditCardBill, error) {
	query := `SELECT ` + billColumns + ` FROM credit_card_bills WHERE 1=1`
	var args []any
	if month != 0 {
		query += ` AND due_month = ?`
		args = append(args, month)
	}
	if year != 0 {
		query += ` AND due_year = ?`
		args = append(args, year)
	}
	if owner != "" && owner != core.FilterAll {
		query += ` AND owner = ?`
		args = append(args, owner)
	}
	if status != "" && string(status) != core.FilterAll {
		query += ` AND status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY due_year DESC, due_month DESC, created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbErr("list bills", err)
	}
	defer rows.Close()

	var out []core.CreditCardBill
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, dbErr("scan bill", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, dbErr("list bills", err)
	}
	return out, nil
}

const templateColumns = `id, owner, name, type, category, description, quantity, unit_price_satang, payment_method, created_at`

func (r *SQLiteRepository) CreateTemplate(ctx context.Context, t core.RecurringTemplate) (core.RecurringTemplate, error) {
	t.CreatedAt = time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO recurring_templates (owner, name, type, category, description, quantity, unit_price_satang, payment_method, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.Owner, t.Name, t.Type, t.Category, t.Description, t.Quantity, t.UnitPrice.Satang, t.PaymentMethod, t.CreatedAt)
	if err != nil {
		return core.RecurringTemplate{}, dbErr("create template", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return core.RecurringTemplate{}, dbErr("create template id", err)
	}
	t.ID = id
	return t, nil
}

func scanTemplate(row interface{ Scan(...any) error }) (core.RecurringTemplate, error) {
	var t core.RecurringTemplate
	err := row.Scan(&t.ID, &t.Owner, &t.Name, &t.Type, &t.Category, &t.Description,
		&t.Quantity, &t.UnitPrice.Satang, &t.PaymentMethod, &t.CreatedAt)
	return t, err
}

func (r *SQLiteRepository) GetTemplate(ctx context.Context, id int64) (core.RecurringTemplate, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+templateColumns+` FROM recurring_templates WHERE id = ?`, id)
	t, err := scanTemplate(row)
	if err != nil {
		return core.RecurringTemplate{}, dbErr("get template", err)
	}
	return t, nil
}

func (r *SQLiteRepository) DeleteTemplate(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM recurring_templates WHERE id = ?`, id)
	if err != nil {
		return dbErr("delete template", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return dbErr("delete template rows", err)
	}
	if n == 0 {
		return fmt.Errorf("delete template %d: %w", id, core.ErrNotFound)
	}
	return nil
}

func (r *SQLiteRepository) ListTemplates(ctx context.Context, owner core.Owner) ([]core.RecurringTemplate, error) {
	query := `SELECT ` + templateColumns + ` FROM recurring_templates`
	var args []any
	if owner != "" && owner != core.FilterAll {
		query += ` WHERE owner = ?`
		args = append(args, owner)
	}
	query += ` ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbErr("list templates", err)
	}
	defer rows.Close()

	var out []core.RecurringTemplate
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, dbErr("scan template", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, dbErr("list templates", err)
	}
	return out, nil
}
