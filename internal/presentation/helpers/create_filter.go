package helpers

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	presentationProtocols "github.com/anuntech/budget-manager/internal/presentation/protocols"
)

const (
	DateLayout = "2006-01-02"

	// MaxRangeMonths bounds /summary queries.
	MaxRangeMonths = 120
)

type MonthRangeParams struct {
	From string `json:"from" validate:"required,datetime=2006-01-02"`
	To   string `json:"to" validate:"required,datetime=2006-01-02"`
}

// GetMonthRangeByQueries reads from/to, normalizes both to the first of
// their month and checks the range is ordered and bounded.
func GetMonthRangeByQueries(urlQueries url.Values, validate *FormValidator) (*MonthRangeParams, *presentationProtocols.HttpResponse) {
	params := &MonthRangeParams{
		From: urlQueries.Get("from"),
		To:   urlQueries.Get("to"),
	}

	if err := validate.Struct(params); err != nil {
		return nil, CreateResponse(&presentationProtocols.ErrorResponse{
			Error:  validate.ErrorMessages(err),
			Fields: validate.FieldErrors(err),
		}, http.StatusBadRequest)
	}

	from, _ := time.Parse(DateLayout, params.From)
	to, _ := time.Parse(DateLayout, params.To)
	from, to = FirstOfMonth(from), FirstOfMonth(to)

	if to.Before(from) {
		return nil, CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "from must not be after to",
		}, http.StatusBadRequest)
	}

	if MonthsBetween(from, to) >= MaxRangeMonths {
		return nil, CreateResponse(&presentationProtocols.ErrorResponse{
			Error: fmt.Sprintf("range must not exceed %d months", MaxRangeMonths),
		}, http.StatusBadRequest)
	}

	params.From = FormatMonth(from)
	params.To = FormatMonth(to)
	return params, nil
}

// ParseMonth accepts any YYYY-MM-DD date and returns the YYYY-MM-01 key of
// its month.
func ParseMonth(date string) (string, error) {
	parsed, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}
	return FormatMonth(parsed), nil
}

// ParseMonthOrDefault falls back to the month of now when date is empty.
func ParseMonthOrDefault(date string, now time.Time) (string, error) {
	if date == "" {
		return FormatMonth(now), nil
	}
	return ParseMonth(date)
}

func FirstOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func FormatMonth(date time.Time) string {
	return FirstOfMonth(date).Format(DateLayout)
}

// DateRange lists the 5 months before the month of start, the month itself
// and the 5 months after it.
func DateRange(start time.Time) []string {
	first := FirstOfMonth(start)
	dates := make([]string, 0, 11)
	for diff := -5; diff <= 5; diff++ {
		dates = append(dates, first.AddDate(0, diff, 0).Format(DateLayout))
	}
	return dates
}

func MonthsBetween(from time.Time, to time.Time) int {
	yearDiff := to.Year() - from.Year()
	monthDiff := int(to.Month()) - int(from.Month())
	totalMonths := yearDiff*12 + monthDiff
	if totalMonths < 0 {
		return 0
	}
	return totalMonths
}

func BudgetManagerLocation(month string) string {
	return "/budget-manager?date=" + url.QueryEscape(month)
}
