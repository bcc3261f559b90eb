package home

import (
	"net/http"
	"time"

	"github.com/anuntech/budget-manager/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/budget-manager/internal/presentation/protocols"
)

type IndexController struct {
	Now func() time.Time
}

func NewIndexController() *IndexController {
	return &IndexController{Now: time.Now}
}

type IndexResponse struct {
	Title        string   `json:"title"`
	SelectedDate string   `json:"selectedDate"`
	DateRange    []string `json:"dateRange"`
}

func (c *IndexController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	selected := c.Now()

	if date := r.UrlParams.Get("date"); date != "" {
		parsed, err := time.Parse(helpers.DateLayout, date)
		if err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "invalid date, expected YYYY-MM-DD",
			}, http.StatusBadRequest)
		}
		selected = parsed
	}

	return helpers.CreateResponse(&IndexResponse{
		Title:        helpers.TitlePrefix,
		SelectedDate: selected.Format(helpers.DateLayout),
		DateRange:    helpers.DateRange(selected),
	}, http.StatusOK)
}
