package account

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

type PostgresRepository struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

const (
	listAccountsQuery = `
		SELECT "accountId", "firstName", "lastName", email, "phoneNumber", address, city, state, country, "dateCreated"
		FROM customer_accounts
		ORDER BY "dateCreated" DESC
	`
	getAccountByIDQuery = `
		SELECT "accountId", "firstName", "lastName", email, "phoneNumber", address, city, state, country, "dateCreated"
		FROM customer_accounts
		WHERE "accountId" = $1
	`
	getAccountByEmailQuery = `
		SELECT "accountId", "firstName", "lastName", email, "phoneNumber", address, city, state, country, "dateCreated"
		FROM customer_accounts
		WHERE email = $1
	`
	insertAccountQuery = `
		INSERT INTO customer_accounts ("accountId", "firstName", "lastName", email, "phoneNumber", address, city, state, country, "dateCreated")
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	updateAccountQuery = `
		UPDATE customer_accounts
		SET "firstName" = $1,
			"lastName" = $2,
			email = $3,
			"phoneNumber" = $4,
			address = $5,
			city = $6,
			state = $7,
			country = $8
		WHERE "accountId" = $9
	`
	deleteAccountQuery = `DELETE FROM customer_accounts WHERE "accountId" = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(acc Account) (Account, error) {
	_, err := r.db.Exec(
		insertAccountQuery,
		acc.ID,
		acc.FirstName,
		acc.LastName,
		acc.Email,
		nullable(acc.PhoneNumber),
		nullable(acc.Address),
		nullable(acc.City),
		nullable(acc.State),
		nullable(acc.Country),
		acc.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return Account{}, &DuplicateEmailError{Email: acc.Email}
		}
		return Account{}, err
	}

	return acc, nil
}

func (r *PostgresRepository) GetByID(id string) (Account, error) {
	row := r.db.QueryRow(getAccountByIDQuery, id)
	acc, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Account{}, &NotFoundError{ID: id}
		}
		return Account{}, err
	}

	return acc, nil
}

func (r *PostgresRepository) GetByEmail(email string) (Account, error) {
	row := r.db.QueryRow(getAccountByEmailQuery, email)
	acc, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Account{}, ErrNotFound
		}
		return Account{}, err
	}

	return acc, nil
}

func (r *PostgresRepository) List() ([]Account, error) {
	rows, err := r.db.Query(listAccountsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := make([]Account, 0)
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return accounts, nil
}

func (r *PostgresRepository) Update(acc Account) (Account, error) {
	result, err := r.db.Exec(
		updateAccountQuery,
		acc.FirstName,
		acc.LastName,
		acc.Email,
		nullable(acc.PhoneNumber),
		nullable(acc.Address),
		nullable(acc.City),
		nullable(acc.State),
		nullable(acc.Country),
		acc.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return Account{}, &DuplicateEmailError{Email: acc.Email}
		}
		return Account{}, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return Account{}, err
	}
	if affected == 0 {
		return Account{}, &NotFoundError{ID: acc.ID}
	}

	return r.GetByID(acc.ID)
}

func (r *PostgresRepository) Delete(id string) error {
	result, err := r.db.Exec(deleteAccountQuery, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return &NotFoundError{ID: id}
	}

	return nil
}

func scanAccount(scanner rowScanner) (Account, error) {
	acc := Account{}
	var phone, address, city, state, country sql.NullString

	if err := scanner.Scan(
		&acc.ID,
		&acc.FirstName,
		&acc.LastName,
		&acc.Email,
		&phone,
		&address,
		&city,
		&state,
		&country,
		&acc.CreatedAt,
	); err != nil {
		return Account{}, err
	}

	acc.PhoneNumber = phone.String
	acc.Address = address.String
	acc.City = city.String
	acc.State = state.String
	acc.Country = country.String

	return acc, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// isUniqueViolation reports whether err is the database rejecting a write
// because of the unique email constraint (SQLSTATE 23505). The constraint is
// the ultimate authority for uniqueness; the service-level pre-check is only
// a fast path.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
