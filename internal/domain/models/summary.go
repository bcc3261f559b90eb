package models

import "sort"

type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

type Summary struct {
	From          string          `json:"from"`
	To            string          `json:"to"`
	BudgetAmount  float64         `json:"budgetAmount"`
	TotalExpenses float64         `json:"totalExpenses"`
	BudgetLeft    float64         `json:"budgetLeft"`
	Categories    []CategoryTotal `json:"categories"`
}

// Summarize totals the given records. Callers are expected to have already
// scoped budgets and expenses to one user and to the from..to months.
func Summarize(from, to string, budgets []Budget, expenses []Expense) *Summary {
	summary := &Summary{
		From:       from,
		To:         to,
		Categories: GroupByCategory(expenses),
	}

	for _, budget := range budgets {
		summary.BudgetAmount += budget.Amount
	}

	for _, category := range summary.Categories {
		summary.TotalExpenses += category.Total
	}

	summary.BudgetLeft = summary.BudgetAmount - summary.TotalExpenses

	return summary
}

// GroupByCategory sorts by total descending, then by category name.
func GroupByCategory(expenses []Expense) []CategoryTotal {
	totals := make(map[string]float64)
	for _, expense := range expenses {
		totals[expense.Category] += expense.Amount
	}

	result := make([]CategoryTotal, 0, len(totals))
	for category, total := range totals {
		result = append(result, CategoryTotal{Category: category, Total: total})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Total == result[j].Total {
			return result[i].Category < result[j].Category
		}
		return result[i].Total > result[j].Total
	})

	return result
}
