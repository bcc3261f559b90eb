package auth

import (
	"net/http"

	"github.com/anuntech/budget-manager/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/budget-manager/internal/presentation/protocols"
)

type GetFormController struct {
	Form func() *helpers.Form
}

func NewGetRegisterFormController() *GetFormController {
	return &GetFormController{Form: helpers.RegisterForm}
}

func NewGetLoginFormController() *GetFormController {
	return &GetFormController{Form: helpers.LoginForm}
}

func (c *GetFormController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	return helpers.CreateResponse(c.Form(), http.StatusOK)
}
