package models

import "slices"

const (
	CategoryFood          = "Food"
	CategoryLoans         = "Loans"
	CategoryHousing       = "Housing/Rent expenses"
	CategoryMedia         = "Media and communication"
	CategoryTravel        = "Travel and vacations"
	CategoryDonations     = "Donations and gifts"
	CategoryEntertainment = "Entertainment and hobbies"
	CategoryShopping      = "Shopping"
	CategoryOther         = "Other"
)

// ExpenseCategories is ordered the way the category picker shows them.
var ExpenseCategories = []string{
	CategoryFood,
	CategoryLoans,
	CategoryHousing,
	CategoryMedia,
	CategoryTravel,
	CategoryDonations,
	CategoryEntertainment,
	CategoryShopping,
	CategoryOther,
}

func IsExpenseCategory(category string) bool {
	return slices.Contains(ExpenseCategories, category)
}
