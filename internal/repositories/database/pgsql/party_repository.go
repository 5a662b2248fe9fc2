package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/karkhana/factory_ledger_app/internal/apperrors"
	"github.com/karkhana/factory_ledger_app/internal/core/domain"
	portsrepo "github.com/karkhana/factory_ledger_app/internal/core/ports/repositories"
	"github.com/karkhana/factory_ledger_app/internal/models"
	"github.com/karkhana/factory_ledger_app/internal/utils/mapping"
)

type PgxPartyRepository struct {
	BaseRepository
}

// newPgxPartyRepository creates the supplier/customer repository.
func newPgxPartyRepository(pool *pgxpool.Pool) portsrepo.PartyRepository {
	return &PgxPartyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PartyRepository = (*PgxPartyRepository)(nil)

// SaveSupplier inserts a new supplier.
func (r *PgxPartyRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	m := mapping.ToModelSupplier(supplier)
	query := `
		INSERT INTO suppliers (supplier_id, name, gstin, contact_person, phone, email, address, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.SupplierID, m.Name, nullable(m.GSTIN), nullable(m.ContactPerson),
		nullable(m.Phone), nullable(m.Email), nullable(m.Address), m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: supplier %s already exists", apperrors.ErrDuplicate, m.SupplierID)
		}
		return fmt.Errorf("failed to save supplier %s: %w", m.SupplierID, err)
	}
	return nil
}

func scanSupplier(row pgx.Row) (*domain.Supplier, error) {
	var m models.Supplier
	var gstin, contact, phone, email, address sql.NullString
	err := row.Scan(
		&m.SupplierID, &m.Name, &gstin, &contact, &phone, &email, &address, &m.IsActive,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan supplier: %w", err)
	}
	m.GSTIN = gstin.String
	m.ContactPerson = contact.String
	m.Phone = phone.String
	m.Email = email.String
	m.Address = address.String
	s := mapping.ToDomainSupplier(m)
	return &s, nil
}

// FindSupplierByID retrieves a supplier by its ID.
func (r *PgxPartyRepository) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	query := `
		SELECT supplier_id, name, gstin, contact_person, phone, email, address, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM suppliers WHERE supplier_id = $1;
	`
	return scanSupplier(r.Pool.QueryRow(ctx, query, supplierID))
}

// ListSuppliers retrieves a paginated list of suppliers by name.
func (r *PgxPartyRepository) ListSuppliers(ctx context.Context, limit, offset int) ([]domain.Supplier, error) {
	query := `
		SELECT supplier_id, name, gstin, contact_person, phone, email, address, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM suppliers ORDER BY name LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	defer rows.Close()

	var suppliers []domain.Supplier
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, err
		}
		suppliers = append(suppliers, *s)
	}
	return suppliers, rows.Err()
}

// UpdateSupplier updates an existing supplier.
func (r *PgxPartyRepository) UpdateSupplier(ctx context.Context, supplier domain.Supplier) error {
	m := mapping.ToModelSupplier(supplier)
	query := `
		UPDATE suppliers
		SET name = $2, gstin = $3, contact_person = $4, phone = $5, email = $6, address = $7, is_active = $8,
			last_updated_at = $9, last_updated_by = $10
		WHERE supplier_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.SupplierID, m.Name, nullable(m.GSTIN), nullable(m.ContactPerson),
		nullable(m.Phone), nullable(m.Email), nullable(m.Address), m.IsActive,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update supplier %s: %w", m.SupplierID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SaveCustomer inserts a new customer.
func (r *PgxPartyRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)
	query := `
		INSERT INTO customers (customer_id, name, gstin, contact_person, phone, email, address, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CustomerID, m.Name, nullable(m.GSTIN), nullable(m.ContactPerson),
		nullable(m.Phone), nullable(m.Email), nullable(m.Address), m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: customer %s already exists", apperrors.ErrDuplicate, m.CustomerID)
		}
		return fmt.Errorf("failed to save customer %s: %w", m.CustomerID, err)
	}
	return nil
}

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var m models.Customer
	var gstin, contact, phone, email, address sql.NullString
	err := row.Scan(
		&m.CustomerID, &m.Name, &gstin, &contact, &phone, &email, &address, &m.IsActive,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan customer: %w", err)
	}
	m.GSTIN = gstin.String
	m.ContactPerson = contact.String
	m.Phone = phone.String
	m.Email = email.String
	m.Address = address.String
	c := mapping.ToDomainCustomer(m)
	return &c, nil
}

// FindCustomerByID retrieves a customer by its ID.
func (r *PgxPartyRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	query := `
		SELECT customer_id, name, gstin, contact_person, phone, email, address, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM customers WHERE customer_id = $1;
	`
	return scanCustomer(r.Pool.QueryRow(ctx, query, customerID))
}

// ListCustomers retrieves a paginated list of customers by name.
func (r *PgxPartyRepository) ListCustomers(ctx context.Context, limit, offset int) ([]domain.Customer, error) {
	query := `
		SELECT customer_id, name, gstin, contact_person, phone, email, address, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM customers ORDER BY name LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, *c)
	}
	return customers, rows.Err()
}

// UpdateCustomer updates an existing customer.
func (r *PgxPartyRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)
	query := `
		UPDATE customers
		SET name = $2, gstin = $3, contact_person = $4, phone = $5, email = $6, address = $7, is_active = $8,
			last_updated_at = $9, last_updated_by = $10
		WHERE customer_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.CustomerID, m.Name, nullable(m.GSTIN), nullable(m.ContactPerson),
		nullable(m.Phone), nullable(m.Email), nullable(m.Address), m.IsActive,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update customer %s: %w", m.CustomerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
