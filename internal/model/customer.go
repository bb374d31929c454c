package model

import (
	"strings"
	"unicode"
)

// CustomerType discriminates clientes records.
type CustomerType string

const (
	// CustomerTypePatient is an individual patient
	CustomerTypePatient CustomerType = "Paciente"
	// CustomerTypeDistributor is a reselling distributor
	CustomerTypeDistributor CustomerType = "Distribuidor"
	// CustomerTypeInstitution is a hospital or clinic
	CustomerTypeInstitution CustomerType = "Institución"
)

// Customer is a clientes directory entry
type Customer struct {
	ID             int64        `json:"id" bson:"_id,omitempty"`
	Type           CustomerType `json:"tipo_cliente" bson:"tipo_cliente"`
	TradeName      *string      `json:"nombre_fantasia" bson:"nombre_fantasia"`
	LegalName      *string      `json:"razon_social" bson:"razon_social"`
	FullName       *string      `json:"nombre_apellido" bson:"nombre_apellido"`
	TaxID          string       `json:"cuit_dni" bson:"cuit_dni"`
	Phone          string       `json:"telefono" bson:"telefono"`
	Address        string       `json:"direccion" bson:"direccion"`
	Email          string       `json:"email" bson:"email"`
	ContactName    string       `json:"contacto_nombre" bson:"contacto_nombre"`
	AssignedAgents []string     `json:"comercial_asignado" bson:"comercial_asignado"`
	VisibleToAll   bool         `json:"visible_para_todos" bson:"visible_para_todos"`
	Active         bool         `json:"activo" bson:"activo"`
}

// DisplayName returns the name shown in search results: patients by their
// personal name, companies by trade name falling back to legal name.
func (c *Customer) DisplayName() string {
	if c.Type == CustomerTypePatient {
		return deref(c.FullName)
	}
	if name := deref(c.TradeName); name != "" {
		return name
	}
	return deref(c.LegalName)
}

// SearchText builds the denormalized haystack used for substring matching.
// The clientes.busqueda_texto generated column follows the same recipe.
func (c *Customer) SearchText() string {
	parts := make([]string, 0, 6)
	for _, p := range []string{deref(c.TradeName), deref(c.LegalName), deref(c.FullName), c.TaxID, c.Phone, c.Email} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// AssignedTo reports whether agent is in the customer's assigned-agent set.
func (c *Customer) AssignedTo(agent string) bool {
	if agent == "" {
		return false
	}
	for _, a := range c.AssignedAgents {
		if a == agent {
			return true
		}
	}
	return false
}

// LowerTrim normalizes a free-text query for matching.
func LowerTrim(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeTaxID strips everything but digits from a CUIT/DNI. Comparisons
// and storage always use the normalized form.
func NormalizeTaxID(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CustomerMatch is one scored search hit.
type CustomerMatch struct {
	Customer    Customer `json:"cliente"`
	DisplayName string   `json:"nombre_display"`
	Score       int      `json:"relevancia_score"`
}

// NewCustomerInput carries the fields accepted for customer creation.
type NewCustomerInput struct {
	Type        CustomerType `json:"tipo_cliente"`
	TradeName   *string      `json:"nombre_fantasia"`
	LegalName   *string      `json:"razon_social"`
	FullName    *string      `json:"nombre_apellido"`
	TaxID       string       `json:"cuit_dni"`
	Phone       string       `json:"telefono"`
	Address     string       `json:"direccion"`
	Email       string       `json:"email"`
	ContactName string       `json:"contacto_nombre"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
