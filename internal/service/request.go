package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/syemed/intake/internal/document"
	"github.com/syemed/intake/internal/mail"
	"github.com/syemed/intake/internal/model"
	"github.com/syemed/intake/internal/report"
	"github.com/syemed/intake/internal/repository"
	"github.com/syemed/intake/internal/security"
	"github.com/syemed/intake/internal/storage"
	"github.com/syemed/intake/internal/validation"
	"github.com/syemed/intake/pkg/db/transactor"
)

// Upload is one file posted with the submission, already read into memory.
// EquipmentOrdinal links the file to an equipment block when the form part
// carried one, zero means unlinked.
type Upload struct {
	FieldName        string
	FileName         string
	ContentType      string
	Content          []byte
	Category         model.AttachmentCategory
	EquipmentOrdinal int
}

// uploadRules restricts what each attachment category may contain.
var uploadRules = map[model.AttachmentCategory][]security.FileCategory{
	model.AttachmentCategoryFailure: {security.FileCategoryImage, security.FileCategoryVideo},
	model.AttachmentCategoryInvoice: {security.FileCategoryDocument, security.FileCategoryImage},
	model.AttachmentCategoryGeneral: {security.FileCategoryImage, security.FileCategoryVideo, security.FileCategoryDocument},
}

type RequestService interface {
	Submit(ctx context.Context, sub *model.Submission, files []Upload, at time.Time) (*model.SubmissionReceipt, error)
	FindByID(ctx context.Context, id int64) (*model.ServiceRequest, error)
	Export(ctx context.Context) ([]byte, error)
}

type requestService struct {
	transactor  transactor.Transactor
	requestRepo repository.RequestRepository
	objectStore storage.ObjectStore
	mailer      mail.Mailer
	mailCopyTo  string
	logger      *logrus.Logger
}

func NewRequestService(
	transactor transactor.Transactor,
	requestRepo repository.RequestRepository,
	objectStore storage.ObjectStore,
	mailer mail.Mailer,
	mailCopyTo string,
	logger *logrus.Logger,
) RequestService {
	return &requestService{
		transactor:  transactor,
		requestRepo: requestRepo,
		objectStore: objectStore,
		mailer:      mailer,
		mailCopyTo:  mailCopyTo,
		logger:      logger,
	}
}

// Submit validates the submission, persists it atomically and then runs the
// best-effort follow-ups. Once the transaction commits the caller always
// gets a receipt, follow-up failures only add warnings to it.
func (s *requestService) Submit(ctx context.Context, sub *model.Submission, files []Upload, at time.Time) (*model.SubmissionReceipt, error) {
	violations := validation.ValidateSubmission(sub)
	violations = append(violations, validateUploads(files)...)
	if len(violations) > 0 {
		return nil, validation.NewPayloadError(violations...)
	}

	sanitizeSubmission(sub)
	sub.Reason = effectiveReason(sub)
	req := buildRequest(sub, at)

	attachments, warnings := s.uploadAttachments(ctx, files, at)
	req.Attachments = attachments

	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		return s.requestRepo.Create(ctx, req)
	})
	if err != nil {
		return nil, err
	}

	summaryURL, postWarnings := s.finalizeSubmission(ctx, req, sub, at)
	warnings = append(warnings, postWarnings...)

	return &model.SubmissionReceipt{
		RequestID:     req.ID,
		ServiceOrders: req.ServiceOrders(),
		SummaryURL:    summaryURL,
		Warnings:      warnings,
	}, nil
}

func (s *requestService) FindByID(ctx context.Context, id int64) (*model.ServiceRequest, error) {
	return s.requestRepo.FindByID(ctx, id)
}

// Export renders every stored solicitud into an xlsx workbook.
func (s *requestService) Export(ctx context.Context) ([]byte, error) {
	requests, err := s.requestRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return report.RequestsWorkbook(requests)
}

// uploadAttachments stores the files before the transaction starts. A failed
// upload drops that attachment with a warning, the submission still goes on.
func (s *requestService) uploadAttachments(ctx context.Context, files []Upload, at time.Time) ([]model.Attachment, []string) {
	attachments := make([]model.Attachment, 0, len(files))
	var warnings []string

	for _, f := range files {
		key := storage.ObjectName(storage.Folder(f.Category), at, f.FileName)
		url, err := s.objectStore.Upload(ctx, storage.Object{
			Key:         key,
			ContentType: f.ContentType,
			Body:        bytes.NewReader(f.Content),
			Size:        int64(len(f.Content)),
		})
		if err != nil {
			s.logger.Warnf("failed to upload attachment %s - %v", f.FileName, err)
			warnings = append(warnings, fmt.Sprintf("No se pudo subir el archivo %s", f.FileName))
			continue
		}

		attachments = append(attachments, model.Attachment{
			EquipmentOrdinal: f.EquipmentOrdinal,
			FileName:         f.FileName,
			URL:              url,
			FileType:         strings.TrimPrefix(security.FileExt(f.FileName), "."),
			SizeBytes:        int64(len(f.Content)),
			UploadedAt:       at,
			Category:         f.Category,
		})
	}
	return attachments, warnings
}

// finalizeSubmission runs the post-commit steps: summary PDF, its upload
// and the confirmation email. None of them can void the stored request.
func (s *requestService) finalizeSubmission(ctx context.Context, req *model.ServiceRequest, sub *model.Submission, at time.Time) (string, []string) {
	var warnings []string

	summary, err := document.RenderSummary(req, sub)
	if err != nil {
		s.logger.Warnf("failed to render summary for request %d - %v", req.ID, err)
		warnings = append(warnings, "No se pudo generar el PDF de resumen")
	}

	var summaryURL string
	summaryName := document.SummaryFileName(req.ID, at)
	if len(summary) > 0 {
		url, err := s.objectStore.Upload(ctx, storage.Object{
			Key:         storage.SummaryObjectName(summaryName),
			ContentType: "application/pdf",
			Body:        bytes.NewReader(summary),
			Size:        int64(len(summary)),
		})
		if err != nil {
			s.logger.Warnf("failed to upload summary for request %d - %v", req.ID, err)
			warnings = append(warnings, "No se pudo subir el PDF de resumen")
		} else if err := s.requestRepo.SetSummaryURL(ctx, req.ID, url); err != nil {
			s.logger.Warnf("failed to store summary url for request %d - %v", req.ID, err)
			warnings = append(warnings, "No se pudo guardar el enlace del PDF de resumen")
		} else {
			summaryURL = url
			req.SummaryURL = &url
		}
	}

	if err := s.mailer.Send(ctx, mail.ReceiptMessage(req, s.mailCopyTo, summaryName, summary)); err != nil {
		s.logger.Warnf("failed to send confirmation email for request %d - %v", req.ID, err)
		warnings = append(warnings, "No se pudo enviar el correo de confirmación")
	}

	return summaryURL, warnings
}

func validateUploads(files []Upload) []validation.RuleViolation {
	var violations []validation.RuleViolation
	for _, f := range files {
		allowed, ok := uploadRules[f.Category]
		if !ok {
			allowed = uploadRules[model.AttachmentCategoryGeneral]
		}

		if err := security.ValidateFile(f.FileName, int64(len(f.Content)), f.ContentType, allowed...); err != nil {
			violations = append(violations, validation.RuleViolation{Field: f.FieldName, Message: err.Error()})
		}
	}
	return violations
}

// sanitizeSubmission cleans the free-text fields in place before anything
// is derived from them. Validation runs on the raw values first, so the
// error messages refer to what the user actually typed.
func sanitizeSubmission(sub *model.Submission) {
	if email, ok := security.SanitizeEmail(sub.Email); ok {
		sub.Email = email
	}

	sub.TradeName = security.SanitizeText(sub.TradeName)
	sub.LegalName = security.SanitizeText(sub.LegalName)
	sub.TaxID = security.SanitizeText(sub.TaxID)
	sub.ContactName = security.SanitizeText(sub.ContactName)
	sub.ContactPhone = security.SanitizeText(sub.ContactPhone)
	sub.TechnicalContact = security.SanitizeText(sub.TechnicalContact)
	sub.PatientName = security.SanitizeText(sub.PatientName)
	sub.PatientPhone = security.SanitizeText(sub.PatientPhone)
	sub.EquipmentOrigin = security.SanitizeText(sub.EquipmentOrigin)
	sub.DeliveredBy = security.SanitizeText(sub.DeliveredBy)
	sub.CaseComments = security.SanitizeText(sub.CaseComments)
	sub.IssueDetail = security.SanitizeText(sub.IssueDetail)
	sub.RentalChangeReason = security.SanitizeText(sub.RentalChangeReason)
	sub.RentalEndOtherReason = security.SanitizeText(sub.RentalEndOtherReason)

	for i := range sub.Equipment {
		sub.Equipment[i].SerialNumber = security.SanitizeSerial(sub.Equipment[i].SerialNumber)
		sub.Equipment[i].DeliveryNote = security.SanitizeText(sub.Equipment[i].DeliveryNote)
		sub.Equipment[i].Accessories = security.SanitizeText(sub.Equipment[i].Accessories)
	}
}

func buildRequest(sub *model.Submission, at time.Time) *model.ServiceRequest {
	req := &model.ServiceRequest{
		SubmittedAt:    at,
		SubmitterEmail: sub.Email,
		RequesterType:  sub.RequesterType,
		RequestingArea: sub.RequestingArea,
		RequesterName:  sub.RequesterName,
		UrgencyLevel:   sub.UrgencyLevel,
		Logistics:      strings.Join(sub.Logistics, ", "),
		EquipmentOwner: sub.EquipmentOwner,
		Reason:         sub.Reason,
		Status:         model.RequestStatusPending,
	}

	label := clientLabel(sub)
	note := optional(intakeNote(sub))

	for i, in := range sub.ValidEquipment() {
		req.Equipment = append(req.Equipment, model.Equipment{
			Ordinal:       i + 1,
			Type:          in.Type,
			Brand:         in.Brand,
			Model:         in.Model,
			SerialNumber:  in.SerialNumber,
			UnderWarranty: in.UnderWarranty,
			PurchaseDate:  in.PurchaseDate,
			ClientLabel:   label,
			DeliveryNote:  optional(in.DeliveryNote),
			Accessories:   optional(in.Accessories),
			Priority:      optional(strings.TrimSpace(in.Priority)),
			IntakeNote:    note,
			ReceivedAt:    at,
		})
	}
	return req
}

// effectiveReason fixes the motivo for stock and demo-return intakes, the
// two categories the form never asks a reason for.
func effectiveReason(sub *model.Submission) string {
	if sub.RequesterType != model.RequesterStaff {
		return sub.Reason
	}

	switch sub.EquipmentOwner {
	case model.OwnerStock:
		return model.ReasonStockEquipment
	case model.OwnerDemoReturn:
		return model.ReasonDemoReturn
	default:
		return sub.Reason
	}
}

// clientLabel resolves the cliente stamped on every equipment row. Rented
// equipment always belongs to Syemed no matter who reports the failure.
func clientLabel(sub *model.Submission) string {
	if sub.EquipmentTenure == model.TenureRented {
		return "Syemed"
	}

	category, _ := validation.EffectiveCategory(sub)
	switch category {
	case validation.CategoryDistributor, validation.CategoryInstitution:
		if name := strings.TrimSpace(sub.TradeName); name != "" {
			return name
		}
		return strings.TrimSpace(sub.LegalName)
	case validation.CategoryPatient:
		return strings.TrimSpace(sub.PatientName)
	default:
		return "Syemed"
	}
}

// intakeNote assembles observacion_ingreso from the reason details.
func intakeNote(sub *model.Submission) string {
	if sub.Reason == model.ReasonRentalChange {
		return strings.TrimSpace(sub.RentalChangeReason)
	}

	if sub.Reason == model.ReasonStockEquipment || sub.Reason == model.ReasonRentalEnd {
		return ""
	}

	note := strings.Join(sub.IssueTags, ", ")
	if detail := strings.TrimSpace(sub.IssueDetail); detail != "" {
		if note != "" {
			note += " | " + detail
		} else {
			note = detail
		}
	}
	return note
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
