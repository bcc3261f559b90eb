package models

import (
	"math/rand"
	"testing"
)

func TestSummarize(t *testing.T) {
	budgets := []Budget{{Amount: 1000, Month: "2024-01-01"}, {Amount: 500, Month: "2024-02-01"}}
	expenses := []Expense{
		{Title: "Rent", Category: CategoryHousing, Amount: 800},
		{Title: "Cinema", Category: CategoryEntertainment, Amount: 25},
		{Title: "Market", Category: CategoryFood, Amount: 100},
		{Title: "Bakery", Category: CategoryFood, Amount: 20},
	}

	summary := Summarize("2024-01-01", "2024-02-01", budgets, expenses)

	if summary.BudgetAmount != 1500 || summary.TotalExpenses != 945 || summary.BudgetLeft != 555 {
		t.Fatalf("unexpected totals %+v", summary)
	}

	want := []CategoryTotal{
		{Category: CategoryHousing, Total: 800},
		{Category: CategoryFood, Total: 120},
		{Category: CategoryEntertainment, Total: 25},
	}
	if len(summary.Categories) != len(want) {
		t.Fatalf("categories = %+v", summary.Categories)
	}
	for i := range want {
		if summary.Categories[i] != want[i] {
			t.Fatalf("categories[%d] = %+v, want %+v", i, summary.Categories[i], want[i])
		}
	}
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize("2024-01-01", "2024-01-01", nil, nil)

	if summary.BudgetAmount != 0 || summary.TotalExpenses != 0 || summary.BudgetLeft != 0 {
		t.Fatalf("unexpected totals %+v", summary)
	}
	if summary.Categories == nil || len(summary.Categories) != 0 {
		t.Fatalf("categories = %#v, want empty slice", summary.Categories)
	}
}

func TestSummarizeOverspent(t *testing.T) {
	summary := Summarize("2024-01-01", "2024-01-01", []Budget{{Amount: 50}}, []Expense{{Category: CategoryShopping, Amount: 80}})
	if summary.BudgetLeft != -30 {
		t.Fatalf("budget left = %v, want -30", summary.BudgetLeft)
	}
}

func TestGroupByCategoryTieBreaksByName(t *testing.T) {
	got := GroupByCategory([]Expense{
		{Category: CategoryShopping, Amount: 10},
		{Category: CategoryLoans, Amount: 10},
		{Category: CategoryDonations, Amount: 10},
	})

	want := []string{CategoryDonations, CategoryLoans, CategoryShopping}
	for i, category := range want {
		if got[i].Category != category {
			t.Fatalf("order = %+v, want %v", got, want)
		}
	}
}

func TestTotalExpensesEqualsSumOfCategories(t *testing.T) {
	random := rand.New(rand.NewSource(7))

	for round := 0; round < 200; round++ {
		expenses := make([]Expense, random.Intn(40))
		var direct int64
		for i := range expenses {
			cents := random.Int63n(100000) + 1
			direct += cents
			expenses[i] = Expense{
				Category: ExpenseCategories[random.Intn(len(ExpenseCategories))],
				Amount:   float64(cents) / 100,
			}
		}

		summary := Summarize("2024-01-01", "2024-12-01", nil, expenses)

		var categories float64
		for _, category := range summary.Categories {
			categories += category.Total
		}
		if categories != summary.TotalExpenses {
			t.Fatalf("round %d: categories sum %v != total %v", round, categories, summary.TotalExpenses)
		}
		if diff := summary.TotalExpenses - float64(direct)/100; diff > 1e-6 || diff < -1e-6 {
			t.Fatalf("round %d: total %v, want %v", round, summary.TotalExpenses, float64(direct)/100)
		}
	}
}
