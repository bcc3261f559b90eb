package excel

import (
	"bytes"
	"testing"

	"github.com/anuntech/budget-manager/internal/domain/models"
	"github.com/xuri/excelize/v2"
)

func TestGenerateMonthlyReport(t *testing.T) {
	expenses := []models.Expense{
		{Title: "Groceries", Category: models.CategoryFood, Amount: 42.5, Month: "2024-05-01"},
		{Title: "Rent", Category: models.CategoryHousing, Amount: 900, Month: "2024-05-01"},
	}
	budgets := []models.Budget{{Amount: 1500, Month: "2024-05-01"}}
	summary := models.Summarize("2024-05-01", "2024-05-01", budgets, expenses)

	data, err := NewMonthlyReportGenerator().Generate(summary, expenses)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(ExpensesSheet)
	if err != nil {
		t.Fatalf("get rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 expense rows, got %d", len(rows))
	}
	if rows[1][0] != "Groceries" || rows[2][1] != models.CategoryHousing {
		t.Fatalf("unexpected expense rows: %v", rows)
	}

	left, err := f.GetCellValue(SummarySheet, "B5")
	if err != nil {
		t.Fatalf("get budget left: %v", err)
	}
	if left != "557.5" {
		t.Fatalf("budget left = %q, want 557.5", left)
	}

	top, _ := f.GetCellValue(SummarySheet, "A8")
	if top != models.CategoryHousing {
		t.Fatalf("first category = %q, want %q", top, models.CategoryHousing)
	}
}

func TestGenerateMonthlyReportWithoutExpenses(t *testing.T) {
	summary := models.Summarize("2024-05-01", "2024-05-01", nil, nil)

	data, err := NewMonthlyReportGenerator().Generate(summary, nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, _ := f.GetRows(ExpensesSheet)
	if len(rows) != 1 {
		t.Fatalf("expected header only, got %d rows", len(rows))
	}
}
