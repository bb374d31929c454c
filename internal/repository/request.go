package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/syemed/intake/internal/model"
	"github.com/syemed/intake/pkg/db/transactor"
)

type RequestRepository interface {
	Create(context.Context, *model.ServiceRequest) error
	SetSummaryURL(ctx context.Context, requestID int64, url string) error
	FindByID(context.Context, int64) (*model.ServiceRequest, error)
	FindAll(context.Context) ([]model.ServiceRequest, error)
}

type postgresRequestRepository struct {
	trx transactor.PgxTransactor
}

func NewPostgresRequestRepository(trx transactor.PgxTransactor) RequestRepository {
	return &postgresRequestRepository{trx: trx}
}

// Create persists the request header, its equipment rows and attachment
// rows through the executor bound to ctx. Run it inside WithinTransaction:
// either the whole solicitud lands or none of it does. Equipment rows get
// their OST from the database sequence at insert time.
func (r *postgresRequestRepository) Create(ctx context.Context, req *model.ServiceRequest) error {
	ex := r.trx.Executor(ctx)

	q := `INSERT INTO solicitudes(email_solicitante, quien_completa, area_solicitante, solicitante,
								  nivel_urgencia, logistica_cargo, equipo_corresponde_a, motivo_solicitud, estado)
		  VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)
		  RETURNING id, fecha_solicitud`

	err := ex.QueryRow(ctx, q,
		req.SubmitterEmail, req.RequesterType, req.RequestingArea, req.RequesterName,
		req.UrgencyLevel, req.Logistics, req.EquipmentOwner, req.Reason, req.Status,
	).Scan(&req.ID, &req.SubmittedAt)
	if err != nil {
		return err
	}

	equipmentIDs := make(map[int]int64, len(req.Equipment))
	for i := range req.Equipment {
		eq := &req.Equipment[i]
		eq.RequestID = req.ID

		q := `INSERT INTO equipos(solicitud_id, numero_equipo, tipo_equipo, marca, modelo, numero_serie,
								  en_garantia, fecha_compra, cliente, remito, accesorios, prioridad, observacion_ingreso)
			  VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			  RETURNING id, ost, fecha_ingreso`

		err := ex.QueryRow(ctx, q,
			eq.RequestID, eq.Ordinal, eq.Type, eq.Brand, eq.Model, eq.SerialNumber,
			eq.UnderWarranty, eq.PurchaseDate, eq.ClientLabel, eq.DeliveryNote, eq.Accessories, eq.Priority, eq.IntakeNote,
		).Scan(&eq.ID, &eq.ServiceOrder, &eq.ReceivedAt)
		if err != nil {
			return err
		}
		equipmentIDs[eq.Ordinal] = eq.ID
	}

	for i := range req.Attachments {
		at := &req.Attachments[i]
		at.RequestID = req.ID
		if at.EquipmentID == nil && at.EquipmentOrdinal > 0 {
			if id, ok := equipmentIDs[at.EquipmentOrdinal]; ok {
				at.EquipmentID = &id
			}
		}

		q := `INSERT INTO archivos_adjuntos(solicitud_id, equipo_id, nombre_archivo, url, tipo_archivo, tamano_bytes, categoria)
			  VALUES($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id, fecha_subida`

		err := ex.QueryRow(ctx, q,
			at.RequestID, at.EquipmentID, at.FileName, at.URL, at.FileType, at.SizeBytes, at.Category,
		).Scan(&at.ID, &at.UploadedAt)
		if err != nil {
			return err
		}
	}

	return nil
}

func (r *postgresRequestRepository) SetSummaryURL(ctx context.Context, requestID int64, url string) error {
	q := "UPDATE solicitudes SET pdf_url = $1 WHERE id = $2"
	if _, err := r.trx.Executor(ctx).Exec(ctx, q, url, requestID); err != nil {
		return err
	}
	return nil
}

const requestColumns = `id, fecha_solicitud, email_solicitante, quien_completa, area_solicitante,
solicitante, nivel_urgencia, logistica_cargo, equipo_corresponde_a, motivo_solicitud, estado, pdf_url`

const equipmentColumns = `id, solicitud_id, numero_equipo, ost, tipo_equipo, marca, modelo, numero_serie,
en_garantia, fecha_compra, cliente, remito, accesorios, prioridad, observacion_ingreso, fecha_ingreso`

func (r *postgresRequestRepository) FindByID(ctx context.Context, id int64) (*model.ServiceRequest, error) {
	ex := r.trx.Executor(ctx)

	var req model.ServiceRequest
	q := "SELECT " + requestColumns + " FROM solicitudes WHERE id = $1"
	err := ex.QueryRow(ctx, q, id).Scan(
		&req.ID, &req.SubmittedAt, &req.SubmitterEmail, &req.RequesterType, &req.RequestingArea,
		&req.RequesterName, &req.UrgencyLevel, &req.Logistics, &req.EquipmentOwner, &req.Reason, &req.Status, &req.SummaryURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	q = "SELECT " + equipmentColumns + " FROM equipos WHERE solicitud_id = $1 ORDER BY numero_equipo"
	rows, err := ex.Query(ctx, q, id)
	if err != nil {
		return nil, err
	}
	req.Equipment, err = scanEquipment(rows)
	if err != nil {
		return nil, err
	}

	q = `SELECT id, solicitud_id, equipo_id, nombre_archivo, url, tipo_archivo, tamano_bytes, categoria, fecha_subida
		 FROM archivos_adjuntos WHERE solicitud_id = $1 ORDER BY id`
	rows, err = ex.Query(ctx, q, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	req.Attachments = make([]model.Attachment, 0)
	for rows.Next() {
		var at model.Attachment
		err := rows.Scan(&at.ID, &at.RequestID, &at.EquipmentID, &at.FileName, &at.URL, &at.FileType, &at.SizeBytes, &at.Category, &at.UploadedAt)
		if err != nil {
			return nil, err
		}
		req.Attachments = append(req.Attachments, at)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &req, nil
}

// FindAll loads every request header with its equipment rows, newest
// first. Attachments are left out, the listing and the export don't show
// them.
func (r *postgresRequestRepository) FindAll(ctx context.Context) ([]model.ServiceRequest, error) {
	ex := r.trx.Executor(ctx)

	q := "SELECT " + requestColumns + " FROM solicitudes ORDER BY id DESC"
	rows, err := ex.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]model.ServiceRequest, 0)
	index := make(map[int64]int)
	ids := make([]int64, 0)
	for rows.Next() {
		var req model.ServiceRequest
		err := rows.Scan(
			&req.ID, &req.SubmittedAt, &req.SubmitterEmail, &req.RequesterType, &req.RequestingArea,
			&req.RequesterName, &req.UrgencyLevel, &req.Logistics, &req.EquipmentOwner, &req.Reason, &req.Status, &req.SummaryURL,
		)
		if err != nil {
			return nil, err
		}
		req.Equipment = make([]model.Equipment, 0)
		index[req.ID] = len(requests)
		ids = append(ids, req.ID)
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return requests, nil
	}

	q = "SELECT " + equipmentColumns + " FROM equipos WHERE solicitud_id = ANY($1) ORDER BY solicitud_id, numero_equipo"
	rows, err = ex.Query(ctx, q, ids)
	if err != nil {
		return nil, err
	}
	equipment, err := scanEquipment(rows)
	if err != nil {
		return nil, err
	}

	for _, eq := range equipment {
		if i, ok := index[eq.RequestID]; ok {
			requests[i].Equipment = append(requests[i].Equipment, eq)
		}
	}
	return requests, nil
}

func scanEquipment(rows pgx.Rows) ([]model.Equipment, error) {
	defer rows.Close()

	equipment := make([]model.Equipment, 0)
	for rows.Next() {
		var eq model.Equipment
		err := rows.Scan(
			&eq.ID, &eq.RequestID, &eq.Ordinal, &eq.ServiceOrder, &eq.Type, &eq.Brand, &eq.Model, &eq.SerialNumber,
			&eq.UnderWarranty, &eq.PurchaseDate, &eq.ClientLabel, &eq.DeliveryNote, &eq.Accessories, &eq.Priority, &eq.IntakeNote, &eq.ReceivedAt,
		)
		if err != nil {
			return nil, err
		}
		equipment = append(equipment, eq)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return equipment, nil
}
