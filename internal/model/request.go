package model

import (
	"time"
)

// RequestStatus is the workflow state of a solicitud.
type RequestStatus string

const (
	// RequestStatusPending is the state every new solicitud starts in
	RequestStatusPending RequestStatus = "Pendiente"
)

// AttachmentCategory tags what an uploaded file documents.
type AttachmentCategory string

const (
	// AttachmentCategoryGeneral is an uncategorized attachment
	AttachmentCategoryGeneral AttachmentCategory = "general"
	// AttachmentCategoryInvoice is a purchase invoice backing a warranty claim
	AttachmentCategoryInvoice AttachmentCategory = "factura"
	// AttachmentCategoryFailure is photo or video evidence of the reported failure
	AttachmentCategoryFailure AttachmentCategory = "falla"
)

// Submission is the intake form payload exactly as the form posts it.
// Field keys match the original form state, so validation errors point
// at the widget that must be corrected.
type Submission struct {
	Email          string   `json:"email"`
	RequesterType  string   `json:"quien_completa"`
	RequestingArea string   `json:"area_solicitante"`
	RequesterName  string   `json:"solicitante"`
	UrgencyLevel   int      `json:"nivel_urgencia"`
	Logistics      []string `json:"logistica_cargo"`
	CaseComments   string   `json:"comentarios_caso"`
	EquipmentOwner string   `json:"equipo_corresponde_a"`

	TradeName        string `json:"nombre_fantasia"`
	LegalName        string `json:"razon_social"`
	TaxID            string `json:"cuit"`
	ContactName      string `json:"contacto_nombre"`
	ContactPhone     string `json:"contacto_telefono"`
	AssignedAgent    string `json:"comercial_syemed"`
	TechnicalContact string `json:"contacto_tecnico"`
	EquipmentTenure  string `json:"equipo_propiedad"`

	PatientName     string `json:"nombre_apellido_paciente"`
	PatientPhone    string `json:"telefono_paciente"`
	EquipmentOrigin string `json:"equipo_origen"`
	DeliveredBy     string `json:"quien_entrego"`

	Reason             string   `json:"motivo_solicitud"`
	RentalChangeReason string   `json:"motivo_cambio_alquiler"`
	IssueTags          []string `json:"fallas_problemas"`
	IssueDetail        string   `json:"detalle_fallo"`

	RentalEndDate        string `json:"fin_contrato"`
	RentalEndHasFailure  string `json:"equipo_falla"`
	RentalEndFailureKind string `json:"tipo_falla"`
	RentalEndOtherReason string `json:"motivo_baja_otro"`

	CustomerID *int64 `json:"cliente_id"`

	Equipment []EquipmentInput `json:"equipos"`
}

// EquipmentInput is one equipment block of the submission.
type EquipmentInput struct {
	Type          string     `json:"tipo_equipo"`
	Brand         string     `json:"marca"`
	Model         string     `json:"modelo"`
	SerialNumber  string     `json:"numero_serie"`
	UnderWarranty bool       `json:"en_garantia"`
	PurchaseDate  *time.Time `json:"fecha_compra"`
	DeliveryNote  string     `json:"remito"`
	Accessories   string     `json:"accesorios"`
	Priority      string     `json:"prioridad"`
}

// ValidEquipment filters out blocks the user never filled in
// (type missing or still on the selector placeholder).
func (s *Submission) ValidEquipment() []EquipmentInput {
	valid := make([]EquipmentInput, 0, len(s.Equipment))
	for _, eq := range s.Equipment {
		if eq.Type != "" && eq.Type != PlaceholderEquipmentType {
			valid = append(valid, eq)
		}
	}
	return valid
}

// ServiceRequest is a persisted solicitudes row.
type ServiceRequest struct {
	ID             int64         `json:"id"`
	SubmittedAt    time.Time     `json:"fecha_solicitud"`
	SubmitterEmail string        `json:"email_solicitante"`
	RequesterType  string        `json:"quien_completa"`
	RequestingArea string        `json:"area_solicitante"`
	RequesterName  string        `json:"solicitante"`
	UrgencyLevel   int           `json:"nivel_urgencia"`
	Logistics      string        `json:"logistica_cargo"`
	EquipmentOwner string        `json:"equipo_corresponde_a"`
	Reason         string        `json:"motivo_solicitud"`
	Status         RequestStatus `json:"estado"`
	SummaryURL     *string       `json:"pdf_url"`

	Equipment   []Equipment  `json:"equipos,omitempty"`
	Attachments []Attachment `json:"archivos,omitempty"`
}

// ServiceOrders lists the OST numbers of the request's equipment rows.
func (r *ServiceRequest) ServiceOrders() []int64 {
	orders := make([]int64, 0, len(r.Equipment))
	for _, eq := range r.Equipment {
		orders = append(orders, eq.ServiceOrder)
	}
	return orders
}

// Equipment is a persisted equipos row. ServiceOrder (ost) is assigned by
// the database sequence at insert time and never reused.
type Equipment struct {
	ID            int64      `json:"id"`
	RequestID     int64      `json:"solicitud_id"`
	Ordinal       int        `json:"numero_equipo"`
	ServiceOrder  int64      `json:"ost"`
	Type          string     `json:"tipo_equipo"`
	Brand         string     `json:"marca"`
	Model         string     `json:"modelo"`
	SerialNumber  string     `json:"numero_serie"`
	UnderWarranty bool       `json:"en_garantia"`
	PurchaseDate  *time.Time `json:"fecha_compra"`
	ClientLabel   string     `json:"cliente"`
	DeliveryNote  *string    `json:"remito"`
	Accessories   *string    `json:"accesorios"`
	Priority      *string    `json:"prioridad"`
	IntakeNote    *string    `json:"observacion_ingreso"`
	ReceivedAt    time.Time  `json:"fecha_ingreso"`
}

// Attachment is a persisted archivos_adjuntos row. EquipmentOrdinal links
// a not-yet-persisted attachment to its equipment block; the insert swaps
// it for the generated equipment id.
type Attachment struct {
	ID               int64              `json:"id"`
	RequestID        int64              `json:"solicitud_id"`
	EquipmentID      *int64             `json:"equipo_id"`
	EquipmentOrdinal int                `json:"-"`
	FileName         string             `json:"nombre_archivo"`
	URL              string             `json:"url"`
	FileType         string             `json:"tipo_archivo"`
	SizeBytes        int64              `json:"tamano_bytes"`
	UploadedAt       time.Time          `json:"fecha_subida"`
	Category         AttachmentCategory `json:"categoria"`
}

// SubmissionReceipt is what the submitter gets back. Warnings carry
// best-effort step failures (PDF, upload, email) that did not void the
// already-persisted request.
type SubmissionReceipt struct {
	RequestID     int64    `json:"solicitud_id"`
	ServiceOrders []int64  `json:"osts"`
	SummaryURL    string   `json:"pdf_url,omitempty"`
	Warnings      []string `json:"advertencias,omitempty"`
}
