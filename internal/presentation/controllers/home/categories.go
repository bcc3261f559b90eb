package home

import (
	"net/http"

	"github.com/anuntech/budget-manager/internal/domain/models"
	"github.com/anuntech/budget-manager/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/budget-manager/internal/presentation/protocols"
)

type GetCategoriesController struct{}

func NewGetCategoriesController() *GetCategoriesController {
	return &GetCategoriesController{}
}

func (c *GetCategoriesController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	return helpers.CreateResponse(models.ExpenseCategories, http.StatusOK)
}
