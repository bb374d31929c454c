package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/syemed/intake/internal/model"
)

// RuleViolation points at one submission field that blocks intake.
// Messages are user-facing and in Spanish, like the form itself.
type RuleViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Category is the effective requester category once the staff on-behalf
// indirection is resolved. A single rule table keyed by Category serves
// both direct submissions and staff submissions on behalf of a party.
type Category string

const (
	CategoryDistributor Category = "Distribuidor"
	CategoryInstitution Category = "Institución"
	CategoryPatient     Category = "Paciente/Particular"
	CategoryStock       Category = "Equipo de Stock"
	CategoryDemoReturn  Category = "Baja de demo"
	CategoryNone        Category = ""
)

// EffectiveCategory resolves quien_completa, and for internal staff the
// second-level equipo_corresponde_a, into one category plus an on-behalf
// flag.
func EffectiveCategory(s *model.Submission) (Category, bool) {
	if s.RequesterType == model.RequesterStaff {
		switch s.EquipmentOwner {
		case model.OwnerDistributor:
			return CategoryDistributor, true
		case model.OwnerInstitution:
			return CategoryInstitution, true
		case model.OwnerPatient:
			return CategoryPatient, true
		case model.OwnerStock:
			return CategoryStock, true
		case model.OwnerDemoReturn:
			return CategoryDemoReturn, true
		}
		return CategoryNone, true
	}

	switch s.RequesterType {
	case model.RequesterDistributor:
		return CategoryDistributor, false
	case model.RequesterInstitution:
		return CategoryInstitution, false
	case model.RequesterPatient:
		return CategoryPatient, false
	}
	return CategoryNone, false
}

// requirement is one required field of a category. The label pair exists
// because on-behalf submissions qualify the party in the message while
// direct ones do not.
type requirement struct {
	field       string
	value       func(*model.Submission) string
	placeholder string
	direct      string
	onBehalf    string
	directOnly  bool
}

var categoryRules = map[Category][]requirement{
	CategoryDistributor: {
		{
			field:    "nombre_fantasia",
			value:    func(s *model.Submission) string { return s.TradeName },
			direct:   "Nombre de Fantasía es obligatorio",
			onBehalf: "Nombre de Fantasía (Distribuidor) es obligatorio",
		},
		{
			field:    "razon_social",
			value:    func(s *model.Submission) string { return s.LegalName },
			direct:   "Razón Social es obligatorio",
			onBehalf: "Razón Social (Distribuidor) es obligatorio",
		},
		{
			field:    "cuit",
			value:    func(s *model.Submission) string { return s.TaxID },
			direct:   "CUIT es obligatorio",
			onBehalf: "CUIT (Distribuidor) es obligatorio",
		},
		{
			field:    "contacto_nombre",
			value:    func(s *model.Submission) string { return s.ContactName },
			direct:   "Nombre de contacto es obligatorio",
			onBehalf: "Nombre de contacto (Distribuidor) es obligatorio",
		},
		{
			field:    "contacto_telefono",
			value:    func(s *model.Submission) string { return s.ContactPhone },
			direct:   "Teléfono de contacto es obligatorio",
			onBehalf: "Teléfono de contacto (Distribuidor) es obligatorio",
		},
		{
			field:       "comercial_syemed",
			value:       func(s *model.Submission) string { return s.AssignedAgent },
			placeholder: model.PlaceholderAgent,
			direct:      "Comercial de contacto en Syemed es obligatorio",
			directOnly:  true,
		},
		{
			field:    "contacto_tecnico",
			value:    func(s *model.Submission) string { return s.TechnicalContact },
			direct:   "Debe indicar si quiere contacto técnico",
			onBehalf: "Debe indicar si quiere contacto técnico (Distribuidor)",
		},
		{
			field:    "motivo_solicitud",
			value:    func(s *model.Submission) string { return s.Reason },
			direct:   "Motivo de la solicitud es obligatorio",
			onBehalf: "Motivo de la solicitud (Distribuidor) es obligatorio",
		},
	},
	CategoryInstitution: {
		{
			field:    "nombre_fantasia",
			value:    func(s *model.Submission) string { return s.TradeName },
			direct:   "Nombre del Hospital/Clínica/Sanatorio es obligatorio",
			onBehalf: "Nombre del Hospital/Clínica (Institución) es obligatorio",
		},
		{
			field:    "razon_social",
			value:    func(s *model.Submission) string { return s.LegalName },
			direct:   "Razón Social es obligatorio",
			onBehalf: "Razón Social (Institución) es obligatorio",
		},
		{
			field:    "contacto_nombre",
			value:    func(s *model.Submission) string { return s.ContactName },
			direct:   "Nombre de contacto es obligatorio",
			onBehalf: "Nombre de contacto (Institución) es obligatorio",
		},
		{
			field:    "contacto_telefono",
			value:    func(s *model.Submission) string { return s.ContactPhone },
			direct:   "Teléfono de contacto es obligatorio",
			onBehalf: "Teléfono de contacto (Institución) es obligatorio",
		},
		{
			field:       "comercial_syemed",
			value:       func(s *model.Submission) string { return s.AssignedAgent },
			placeholder: model.PlaceholderAgent,
			direct:      "Comercial de contacto en Syemed es obligatorio",
			directOnly:  true,
		},
		{
			field:    "contacto_tecnico",
			value:    func(s *model.Submission) string { return s.TechnicalContact },
			direct:   "Debe indicar si quiere contacto técnico",
			onBehalf: "Debe indicar si quiere contacto técnico (Institución)",
		},
		{
			field:    "motivo_solicitud",
			value:    func(s *model.Submission) string { return s.Reason },
			direct:   "Motivo de la solicitud es obligatorio",
			onBehalf: "Motivo de la solicitud (Institución) es obligatorio",
		},
	},
	CategoryPatient: {
		{
			field:    "nombre_apellido_paciente",
			value:    func(s *model.Submission) string { return s.PatientName },
			direct:   "Nombre y Apellido es obligatorio",
			onBehalf: "Nombre y Apellido (Paciente) es obligatorio",
		},
		{
			field:    "telefono_paciente",
			value:    func(s *model.Submission) string { return s.PatientPhone },
			direct:   "Teléfono de contacto es obligatorio",
			onBehalf: "Teléfono (Paciente) es obligatorio",
		},
		{
			field:    "equipo_origen",
			value:    func(s *model.Submission) string { return s.EquipmentOrigin },
			direct:   "Origen del equipo es obligatorio",
			onBehalf: "Origen del equipo (Paciente) es obligatorio",
		},
		{
			field:    "motivo_solicitud",
			value:    func(s *model.Submission) string { return s.Reason },
			direct:   "Motivo de la solicitud es obligatorio",
			onBehalf: "Motivo de la solicitud (Paciente) es obligatorio",
		},
	},
	// Stock and demo-return flows carry no party fields.
	CategoryStock:      {},
	CategoryDemoReturn: {},
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateSubmission accumulates every rule violation of the intake form.
// The submission is valid only when the returned slice is empty.
func ValidateSubmission(s *model.Submission) []RuleViolation {
	violations := make([]RuleViolation, 0)
	add := func(field, message string) {
		violations = append(violations, RuleViolation{Field: field, Message: message})
	}

	if strings.TrimSpace(s.Email) == "" {
		add("email", "El correo electrónico es obligatorio")
	} else if !emailPattern.MatchString(strings.TrimSpace(s.Email)) {
		add("email", "El formato del correo electrónico no es válido")
	}

	if s.RequesterType == "" {
		add("quien_completa", "Debe indicar quién completa la solicitud")
	}

	category, onBehalf := EffectiveCategory(s)

	if onBehalf {
		if s.RequestingArea == "" {
			add("area_solicitante", "Área Solicitante es obligatorio")
		}
		if s.RequesterName == "" || s.RequesterName == model.PlaceholderRequester {
			add("solicitante", "Solicitante es obligatorio")
		}
		if s.EquipmentOwner == "" {
			add("equipo_corresponde_a", "'El equipo corresponde a' es obligatorio")
		}
	}

	for _, req := range categoryRules[category] {
		if req.directOnly && onBehalf {
			continue
		}

		value := strings.TrimSpace(req.value(s))
		if value == "" || (req.placeholder != "" && value == req.placeholder) {
			message := req.direct
			if onBehalf && req.onBehalf != "" {
				message = req.onBehalf
			}
			add(req.field, message)
		}
	}

	validateReason(s, add)
	validateEquipment(s, add)

	return violations
}

// validateReason applies the reason-specific requirements, an independent
// dimension on top of the category rules.
func validateReason(s *model.Submission, add func(field, message string)) {
	switch s.Reason {
	case model.ReasonRentalChange:
		if strings.TrimSpace(s.RentalChangeReason) == "" {
			add("motivo_cambio_alquiler", "Debe especificar el motivo del cambio de alquiler")
		}
	case model.ReasonCriticalFailure:
		if strings.TrimSpace(s.IssueDetail) == "" {
			add("detalle_fallo", "Debe describir la falla crítica que justifica el cambio")
		}
	case model.ReasonTechnicalService, model.ReasonPostSaleService:
		if len(s.IssueTags) == 0 && strings.TrimSpace(s.IssueDetail) == "" {
			add("fallas_problemas", "Debe seleccionar al menos una opción o especificar en 'Otros' el motivo de su solicitud")
		}
	}
}

func validateEquipment(s *model.Submission, add func(field, message string)) {
	valid := s.ValidEquipment()
	if len(valid) == 0 {
		add("equipos", "Debe registrar al menos un equipo")
		return
	}

	for i, eq := range valid {
		ordinal := i + 1
		if eq.Brand == "" || eq.Brand == model.PlaceholderBrand {
			add("equipos", fmt.Sprintf("La marca del equipo %d es obligatoria", ordinal))
		}
		if eq.Model == "" || eq.Model == model.PlaceholderModel {
			add("equipos", fmt.Sprintf("El modelo del equipo %d es obligatorio", ordinal))
		}
		if strings.TrimSpace(eq.SerialNumber) == "" {
			add("equipos", fmt.Sprintf("El número de serie del equipo %d es obligatorio", ordinal))
		}
	}
}
