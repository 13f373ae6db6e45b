package lead

import (
	"context"
	"fmt"
	"time"

	"simulador-backend/pkg/money"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Leads"

var exportHeaders = []string{
	"ID", "Data", "Nome", "E-mail", "Telefone", "Imóvel", "ID do imóvel", "Variação",
	"Consentimento", "Renda mensal", "Entrada", "Sistema", "Valor do imóvel",
	"Valor financiado", "Parcela", "Prazo (meses)", "Taxa anual (%)",
}

// Export renders every lead submitted since the given instant into an
// xlsx workbook.
func (u *Usecase) Export(ctx context.Context, since time.Time) ([]byte, error) {
	leads, err := u.repo.ListSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	for col, h := range exportHeaders {
		if err := setCell(f, col+1, 1, h); err != nil {
			return nil, err
		}
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(len(exportHeaders), 1)
	if err != nil {
		return nil, fmt.Errorf("header range: %w", err)
	}
	if err := f.SetCellStyle(exportSheet, "A1", last, style); err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	for row, l := range leads {
		data := []interface{}{
			l.LeadID,
			l.SubmittedAt.Format("2006-01-02 15:04"),
			l.Name,
			l.Email,
			l.Phone,
			l.PropertyName,
			l.PropertyID,
			l.VariationID,
			l.Consent,
			money.Round2(l.MonthlyIncome),
			money.Round2(l.DownPayment),
			l.AmortizationSystem,
			money.Round2(l.PropertyValue),
			money.Round2(l.FinancedAmount),
			money.Round2(l.InstallmentValue),
			l.TermMonths,
			l.AnnualRate,
		}
		for col, v := range data {
			if err := setCell(f, col+1, row+2, v); err != nil {
				return nil, fmt.Errorf("lead %s: %w", l.LeadID, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func setCell(f *excelize.File, col, row int, v interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}
	if err := f.SetCellValue(exportSheet, cell, v); err != nil {
		return fmt.Errorf("set %s: %w", cell, err)
	}
	return nil
}
