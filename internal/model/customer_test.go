package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTaxID(t *testing.T) {
	t.Log("formatting characters are stripped")
	{
		assert.Equal(t, "30712345678", NormalizeTaxID("30-71234567-8"))
		assert.Equal(t, "30712345678", NormalizeTaxID(" 30.71234567/8 "))
	}

	t.Log("already normalized values stay untouched")
	{
		assert.Equal(t, "30712345678", NormalizeTaxID(NormalizeTaxID("30-71234567-8")))
	}

	t.Log("values without digits normalize to empty")
	{
		assert.Equal(t, "", NormalizeTaxID("sin datos"))
		assert.Equal(t, "", NormalizeTaxID(""))
	}
}

func TestDisplayName(t *testing.T) {
	tradeName := "Electromedicina Norte"
	legalName := "Electromedicina Norte S.A."
	fullName := "Julieta Paredes"

	t.Log("patients show their personal name")
	{
		c := Customer{Type: CustomerTypePatient, FullName: &fullName, TradeName: &tradeName}
		assert.Equal(t, fullName, c.DisplayName())
	}

	t.Log("companies prefer the trade name")
	{
		c := Customer{Type: CustomerTypeDistributor, TradeName: &tradeName, LegalName: &legalName}
		assert.Equal(t, tradeName, c.DisplayName())
	}

	t.Log("companies without trade name fall back to the legal name")
	{
		c := Customer{Type: CustomerTypeInstitution, LegalName: &legalName}
		assert.Equal(t, legalName, c.DisplayName())
	}

	t.Log("nothing filled in gives an empty name")
	{
		c := Customer{Type: CustomerTypeDistributor}
		assert.Equal(t, "", c.DisplayName())
	}
}

func TestSearchText(t *testing.T) {
	tradeName := "Electromedicina Norte"

	t.Log("haystack joins the filled fields lowered")
	{
		c := Customer{
			TradeName: &tradeName,
			TaxID:     "30712345678",
			Email:     "Ventas@ElectroNorte.com",
		}
		assert.Equal(t, "electromedicina norte 30712345678 ventas@electronorte.com", c.SearchText())
	}

	t.Log("empty fields leave no gaps")
	{
		c := Customer{TaxID: "27334455667"}
		assert.Equal(t, "27334455667", c.SearchText())
	}
}

func TestAssignedTo(t *testing.T) {
	c := Customer{AssignedAgents: []string{"Lucas", "Clara"}}

	assert.True(t, c.AssignedTo("Clara"))
	assert.False(t, c.AssignedTo("Miguel"))
	assert.False(t, c.AssignedTo(""))
}

func TestValidEquipment(t *testing.T) {
	s := Submission{
		Equipment: []EquipmentInput{
			{Type: "CPAP", Brand: "Philips", Model: "DreamStation", SerialNumber: "SN-2001"},
			{Type: PlaceholderEquipmentType},
			{},
		},
	}

	valid := s.ValidEquipment()
	assert.Len(t, valid, 1, "untouched blocks must be dropped")
	assert.Equal(t, "CPAP", valid[0].Type)
}
