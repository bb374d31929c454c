package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"

	apperrors "github.com/syemed/intake/internal/errors"
	"github.com/syemed/intake/internal/model"
	"github.com/syemed/intake/pkg/db/transactor"
)

const pgUniqueViolationCode = "23505"

// ErrDuplicateTaxID is raised when an insert collides with an already
// registered CUIT/DNI. The check-then-insert done by the form is not
// transactional, so the unique index is the authoritative barrier.
var ErrDuplicateTaxID = apperrors.NewBusinessErr("cuit_dni", "Ya existe un cliente registrado con ese CUIT/DNI")

type CustomerRepository interface {
	FindByID(context.Context, int64) (*model.Customer, error)
	FindCandidates(ctx context.Context, query string, customerType string) ([]model.Customer, error)
	ExistsByTaxID(context.Context, string) (bool, error)
	Create(context.Context, model.Customer) (model.Customer, error)
}

const customerColumns = `id, tipo, nombre_fantasia, razon_social, nombre_apellido, cuit_dni,
telefono, direccion, email, contacto_nombre, comerciales_asignados, visible_todos, activo`

type postgresCustomerRepository struct {
	trx transactor.PgxTransactor
}

func NewPostgresCustomerRepository(trx transactor.PgxTransactor) CustomerRepository {
	return &postgresCustomerRepository{trx: trx}
}

func (r *postgresCustomerRepository) FindByID(ctx context.Context, id int64) (*model.Customer, error) {
	q := "SELECT " + customerColumns + " FROM clientes WHERE id = $1"
	row := r.trx.Executor(ctx).QueryRow(ctx, q, id)

	c, err := r.scanRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// FindCandidates returns the active customers whose searchable text or
// normalized CUIT/DNI contains the query. Scoring and ordering happen in
// the service, the database only narrows the candidate set.
func (r *postgresCustomerRepository) FindCandidates(ctx context.Context, query string, customerType string) ([]model.Customer, error) {
	q := `SELECT ` + customerColumns + `
		  FROM clientes
		  WHERE activo
			AND ($1 = '' OR tipo = $1)
			AND (busqueda_texto LIKE '%' || $2 || '%'
				 OR ($3 <> '' AND regexp_replace(cuit_dni, '[^0-9]', '', 'g') LIKE '%' || $3 || '%'))`

	lowered := model.LowerTrim(query)
	normalized := model.NormalizeTaxID(query)

	rows, err := r.trx.Executor(ctx).Query(ctx, q, customerType, lowered, normalized)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]model.Customer, 0)
	for rows.Next() {
		c, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *postgresCustomerRepository) ExistsByTaxID(ctx context.Context, normalizedTaxID string) (bool, error) {
	q := "SELECT EXISTS(SELECT 1 FROM clientes WHERE regexp_replace(cuit_dni, '[^0-9]', '', 'g') = $1)"

	var exists bool
	if err := r.trx.Executor(ctx).QueryRow(ctx, q, normalizedTaxID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *postgresCustomerRepository) Create(ctx context.Context, c model.Customer) (model.Customer, error) {
	q := `INSERT INTO clientes(tipo, nombre_fantasia, razon_social, nombre_apellido, cuit_dni, telefono,
							   direccion, email, contacto_nombre, comerciales_asignados, visible_todos, activo)
		  VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		  RETURNING id`

	var agents pgtype.TextArray
	if err := agents.Set(c.AssignedAgents); err != nil {
		return model.Customer{}, err
	}

	row := r.trx.Executor(ctx).QueryRow(ctx, q,
		c.Type, c.TradeName, c.LegalName, c.FullName, c.TaxID, c.Phone,
		c.Address, c.Email, c.ContactName, &agents, c.VisibleToAll, c.Active,
	)

	if err := row.Scan(&c.ID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode {
			return model.Customer{}, ErrDuplicateTaxID
		}
		return model.Customer{}, err
	}
	return c, nil
}

func (r *postgresCustomerRepository) scanRow(row pgx.Row) (model.Customer, error) {
	var c model.Customer
	var agents pgtype.TextArray

	err := row.Scan(
		&c.ID, &c.Type, &c.TradeName, &c.LegalName, &c.FullName, &c.TaxID,
		&c.Phone, &c.Address, &c.Email, &c.ContactName, &agents, &c.VisibleToAll, &c.Active,
	)
	if err != nil {
		return model.Customer{}, err
	}

	if err := agents.AssignTo(&c.AssignedAgents); err != nil {
		return model.Customer{}, err
	}
	return c, nil
}
