package pgx

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/KapilPandit0408/gibots"
)

const accountColumns = `id, firstname, lastname, email, password_hash, mobile, address`

func (a *Adapter) Insert(ctx context.Context, account *gibots.Account) error {
	query := `INSERT INTO public.accounts (firstname, lastname, email, password_hash, mobile, address)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`

	err := a.pool.QueryRow(ctx, query,
		account.FirstName, account.LastName, account.Email,
		account.PasswordHash, account.Mobile, account.Address,
	).Scan(&account.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return gibots.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (a *Adapter) FindByID(ctx context.Context, id string) (*gibots.Account, error) {
	q := `SELECT ` + accountColumns + ` FROM public.accounts WHERE id = $1`
	return a.scanAccount(a.pool.QueryRow(ctx, q, id))
}

func (a *Adapter) FindByEmail(ctx context.Context, email string) (*gibots.Account, error) {
	q := `SELECT ` + accountColumns + ` FROM public.accounts WHERE email = $1`
	return a.scanAccount(a.pool.QueryRow(ctx, q, email))
}

func (a *Adapter) UpdateByID(ctx context.Context, id string, fields gibots.UpdateInput) (*gibots.Account, error) {
	q := `UPDATE public.accounts SET firstname = $1, lastname = $2, email = $3, address = $4
		WHERE id = $5 RETURNING ` + accountColumns

	account, err := a.scanAccount(a.pool.QueryRow(ctx, q,
		fields.FirstName, fields.LastName, fields.Email, fields.Address, id))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, gibots.ErrEmailTaken
		}
		return nil, err
	}
	return account, nil
}

func (a *Adapter) FindPage(ctx context.Context, f gibots.Filter, skip, limit int) ([]*gibots.Account, error) {
	q := `SELECT ` + accountColumns + ` FROM public.accounts ` +
		patternClause + ` ORDER BY created_at, id LIMIT $2 OFFSET $3`

	rows, err := a.pool.Query(ctx, q, f.Pattern, limit, skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := []*gibots.Account{}
	for rows.Next() {
		account := &gibots.Account{}
		if err := rows.Scan(
			&account.ID, &account.FirstName, &account.LastName, &account.Email,
			&account.PasswordHash, &account.Mobile, &account.Address,
		); err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, rows.Err()
}

func (a *Adapter) Count(ctx context.Context, f gibots.Filter) (int, error) {
	q := `SELECT count(*) FROM public.accounts ` + patternClause

	var count int
	if err := a.pool.QueryRow(ctx, q, f.Pattern).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// patternClause applies Filter.Pattern as a case-insensitive, unanchored
// regex OR across the four searchable columns. The pattern arrives with its
// metacharacters already escaped, so ~* amounts to a literal substring match.
const patternClause = `WHERE ($1 = '' OR firstname ~* $1 OR lastname ~* $1 OR email ~* $1 OR mobile ~* $1)`

func (a *Adapter) scanAccount(row pgx.Row) (*gibots.Account, error) {
	account := &gibots.Account{}
	err := row.Scan(
		&account.ID, &account.FirstName, &account.LastName, &account.Email,
		&account.PasswordHash, &account.Mobile, &account.Address,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, gibots.ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
