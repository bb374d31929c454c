package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/syemed/intake/internal/model"
)

const requestsSheet = "Solicitudes"

var requestsHeader = []string{
	"OST", "Caso", "Fecha", "Email", "Quien completa", "Motivo", "Estado",
	"Tipo de equipo", "Marca", "Modelo", "Nº Serie", "Cliente",
}

// RequestsWorkbook renders the back-office export, one row per equipment
// with its request header alongside.
func RequestsWorkbook(requests []model.ServiceRequest) ([]byte, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", requestsSheet)

	for i, h := range requestsHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(requestsSheet, cell, h); err != nil {
			return nil, err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	lastHeaderCell, err := excelize.CoordinatesToCellName(len(requestsHeader), 1)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(requestsSheet, "A1", lastHeaderCell, headerStyle); err != nil {
		return nil, err
	}

	row := 2
	for _, req := range requests {
		if len(req.Equipment) == 0 {
			if err := writeRow(f, row, requestRow(&req, nil)); err != nil {
				return nil, err
			}
			row++
			continue
		}

		for i := range req.Equipment {
			if err := writeRow(f, row, requestRow(&req, &req.Equipment[i])); err != nil {
				return nil, err
			}
			row++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write requests workbook - %w", err)
	}
	return buf.Bytes(), nil
}

func requestRow(req *model.ServiceRequest, eq *model.Equipment) []any {
	cells := make([]any, 0, len(requestsHeader))
	if eq != nil {
		cells = append(cells, eq.ServiceOrder)
	} else {
		cells = append(cells, "")
	}

	cells = append(cells,
		req.ID,
		req.SubmittedAt.Format("02/01/2006 15:04"),
		req.SubmitterEmail,
		req.RequesterType,
		req.Reason,
		string(req.Status),
	)

	if eq != nil {
		cells = append(cells, eq.Type, eq.Brand, eq.Model, eq.SerialNumber, eq.ClientLabel)
	} else {
		cells = append(cells, "", "", "", "", "")
	}
	return cells
}

func writeRow(f *excelize.File, row int, cells []any) error {
	for i, value := range cells {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(requestsSheet, cell, value); err != nil {
			return err
		}
	}
	return nil
}
