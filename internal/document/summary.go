package document

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/syemed/intake/internal/model"
)

// SummaryFileName names the generated summary after the request and the
// submission day, the same name the email attachment carries.
func SummaryFileName(requestID int64, at time.Time) string {
	return fmt.Sprintf("Solicitud_ST_%d_%s.pdf", requestID, at.Format("20060102"))
}

type labeledValue struct {
	label string
	value string
}

// RenderSummary lays out the intake summary handed to the workshop and
// attached to the confirmation email. The request carries the persisted
// identifiers, the submission the party details that are not columns of
// solicitudes.
func RenderSummary(req *model.ServiceRequest, sub *model.Submission) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Solicitud de Servicio Técnico #%d", req.ID), true)
	pdf.SetAutoPageBreak(true, 15)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	title := fmt.Sprintf("Solicitud de Servicio Técnico - Caso #%d", req.ID)
	if orders := req.ServiceOrders(); len(orders) > 0 {
		title = fmt.Sprintf("Solicitud de Servicio Técnico - OST #%d", orders[0])
	}

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, tr(title), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Fecha de solicitud: %s", req.SubmittedAt.Format("02/01/2006 15:04"))), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	writeSection(pdf, tr, "Datos del Solicitante", requesterDetails(req, sub))
	writeSection(pdf, tr, "Motivo de la Solicitud", reasonDetails(req, sub))
	writeEquipmentTable(pdf, tr, req.Equipment)

	if comments := strings.TrimSpace(sub.CaseComments); comments != "" {
		pdf.Ln(2)
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 8, tr("Comentarios del Caso"), "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 5, tr(comments), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render summary pdf - %w", err)
	}
	return buf.Bytes(), nil
}

func requesterDetails(req *model.ServiceRequest, sub *model.Submission) []labeledValue {
	details := []labeledValue{
		{"Email", req.SubmitterEmail},
		{"Quien completa", req.RequesterType},
		{"Área solicitante", req.RequestingArea},
		{"Solicitante", req.RequesterName},
		{"El equipo corresponde a", req.EquipmentOwner},
		{"Nombre de Fantasía", sub.TradeName},
		{"Razón Social", sub.LegalName},
		{"CUIT", sub.TaxID},
		{"Nombre de contacto", sub.ContactName},
		{"Teléfono de contacto", sub.ContactPhone},
		{"Comercial Syemed", placeholderless(sub.AssignedAgent, model.PlaceholderAgent)},
		{"Contacto técnico", sub.TechnicalContact},
		{"Nombre y Apellido", sub.PatientName},
		{"Teléfono (Paciente)", sub.PatientPhone},
		{"Origen del equipo", sub.EquipmentOrigin},
		{"Quién entregó el equipo", sub.DeliveredBy},
	}

	if req.UrgencyLevel > 0 {
		details = append(details, labeledValue{"Nivel de urgencia", fmt.Sprintf("%d", req.UrgencyLevel)})
	}
	if req.Logistics != "" {
		details = append(details, labeledValue{"Logística a cargo de", req.Logistics})
	}
	return details
}

func reasonDetails(req *model.ServiceRequest, sub *model.Submission) []labeledValue {
	details := []labeledValue{
		{"Motivo", req.Reason},
		{"Motivo del cambio de alquiler", sub.RentalChangeReason},
		{"Fin de contrato", sub.RentalEndDate},
	}
	for _, tag := range sub.IssueTags {
		details = append(details, labeledValue{"Falla reportada", tag})
	}
	details = append(details, labeledValue{"Detalle", sub.IssueDetail})
	return details
}

func placeholderless(value string, placeholder string) string {
	if value == placeholder {
		return ""
	}
	return value
}

func writeSection(pdf *gofpdf.Fpdf, tr func(string) string, title string, details []labeledValue) {
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, tr(title), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)

	for _, d := range details {
		if strings.TrimSpace(d.value) == "" {
			continue
		}
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(55, 6, tr(d.label+":"), "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 6, tr(d.value), "", "L", false)
	}
	pdf.Ln(3)
}

func writeEquipmentTable(pdf *gofpdf.Fpdf, tr func(string) string, equipment []model.Equipment) {
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, tr("Equipos Registrados"), "", 1, "L", false, 0, "")

	headers := []string{"Nº", "OST", "Tipo", "Marca", "Modelo", "Nº Serie", "Garantía"}
	widths := []float64{10, 20, 42, 30, 30, 38, 20}

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, eq := range equipment {
		warranty := "No"
		if eq.UnderWarranty {
			warranty = "Sí"
		}

		cells := []string{
			fmt.Sprintf("%d", eq.Ordinal),
			fmt.Sprintf("%d", eq.ServiceOrder),
			eq.Type,
			eq.Brand,
			eq.Model,
			eq.SerialNumber,
			warranty,
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 7, tr(c), "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}
}
