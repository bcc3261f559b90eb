package usecase

import "github.com/anuntech/budget-manager/internal/domain/models"

type GenerateMonthlyReport interface {
	Generate(summary *models.Summary, expenses []models.Expense) ([]byte, error)
}
