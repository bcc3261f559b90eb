package excel

import (
	"fmt"

	"github.com/anuntech/budget-manager/internal/domain/models"
	"github.com/xuri/excelize/v2"
)

const (
	ExpensesSheet = "Expenses"
	SummarySheet  = "Summary"
)

type MonthlyReportGenerator struct{}

func NewMonthlyReportGenerator() *MonthlyReportGenerator {
	return &MonthlyReportGenerator{}
}

func (g *MonthlyReportGenerator) Generate(summary *models.Summary, expenses []models.Expense) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ExpensesSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	rows := [][]any{{"Title", "Category", "Amount", "Month"}}
	for _, expense := range expenses {
		rows = append(rows, []any{expense.Title, expense.Category, expense.Amount, expense.Month})
	}
	if err := writeRows(f, ExpensesSheet, rows); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(ExpensesSheet, "A", "B", 28); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(SummarySheet); err != nil {
		return nil, fmt.Errorf("create summary sheet: %w", err)
	}

	rows = [][]any{
		{"From", summary.From},
		{"To", summary.To},
		{"Budget", summary.BudgetAmount},
		{"Total expenses", summary.TotalExpenses},
		{"Budget left", summary.BudgetLeft},
		{},
		{"Category", "Total"},
	}
	for _, category := range summary.Categories {
		rows = append(rows, []any{category.Category, category.Total})
	}
	if err := writeRows(f, SummarySheet, rows); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(SummarySheet, "A", "A", 28); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("set %s!%s: %w", sheet, cell, err)
			}
		}
	}
	return nil
}
