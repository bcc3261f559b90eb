package helpers

import (
	"net/http"

	"github.com/anuntech/budget-manager/internal/domain/models"
	presentationProtocols "github.com/anuntech/budget-manager/internal/presentation/protocols"
)

const TitlePrefix = "HEADHOUSE"

type FormField struct {
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Type     string   `json:"type"`
	Required bool     `json:"required"`
	Choices  []string `json:"choices,omitempty"`
	Value    any      `json:"value,omitempty"`
}

type Form struct {
	Title  string      `json:"title"`
	Method string      `json:"method"`
	Action string      `json:"action"`
	Submit string      `json:"submit"`
	Fields []FormField `json:"fields"`
}

func BudgetForm(action string, current float64) *Form {
	return &Form{
		Title:  TitlePrefix + " | BudgetManager - SetBudget",
		Method: http.MethodPost,
		Action: action,
		Submit: "Set Budget",
		Fields: []FormField{
			{Name: "amount", Label: "Amount", Type: "number", Required: true, Value: current},
		},
	}
}

// ExpenseForm prefills values from expense when it is not nil.
func ExpenseForm(title string, action string, expense *models.Expense) *Form {
	fields := []FormField{
		{Name: "title", Label: "Title", Type: "text", Required: true},
		{Name: "category", Label: "Type", Type: "select", Required: true, Choices: models.ExpenseCategories},
		{Name: "amount", Label: "Amount", Type: "number", Required: true},
	}

	if expense != nil {
		fields[0].Value = expense.Title
		fields[1].Value = expense.Category
		fields[2].Value = expense.Amount
	}

	return &Form{
		Title:  TitlePrefix + " | BudgetManager - " + title,
		Method: http.MethodPost,
		Action: action,
		Submit: "Submit Expense",
		Fields: fields,
	}
}

func RegisterForm() *Form {
	return &Form{
		Title:  TitlePrefix + " | Register",
		Method: http.MethodPost,
		Action: "/register",
		Submit: "Register",
		Fields: []FormField{
			{Name: "email", Label: "Email", Type: "email", Required: true},
			{Name: "password", Label: "Password", Type: "password", Required: true},
			{Name: "confirmPassword", Label: "Confirm password", Type: "password", Required: true},
		},
	}
}

func LoginForm() *Form {
	return &Form{
		Title:  TitlePrefix + " | Login",
		Method: http.MethodPost,
		Action: "/login",
		Submit: "Login",
		Fields: []FormField{
			{Name: "email", Label: "Email", Type: "email", Required: true},
			{Name: "password", Label: "Password", Type: "password", Required: true},
		},
	}
}

// CreateFormErrorResponse re-renders form with the validation messages.
func CreateFormErrorResponse(form *Form, validate *FormValidator, err error) *presentationProtocols.HttpResponse {
	return CreateResponse(&presentationProtocols.ErrorResponse{
		Error:  validate.ErrorMessages(err),
		Fields: validate.FieldErrors(err),
		Form:   form,
	}, http.StatusUnprocessableEntity)
}

func CreateInvalidBodyResponse() *presentationProtocols.HttpResponse {
	return CreateResponse(&presentationProtocols.ErrorResponse{
		Error: "invalid body request",
	}, http.StatusBadRequest)
}
