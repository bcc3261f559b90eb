package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/anuntech/budget-manager/internal/domain/models"
	"github.com/anuntech/budget-manager/internal/domain/usecase"
	"github.com/anuntech/budget-manager/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/budget-manager/internal/presentation/protocols"
	"github.com/anuntech/budget-manager/internal/utils"
)

type RegisterController struct {
	CreateUserRepository      usecase.CreateUserRepository
	FindUserByEmailRepository usecase.FindUserByEmailRepository
	Validate                  *helpers.FormValidator
}

func NewRegisterController(createUser usecase.CreateUserRepository, findUserByEmail usecase.FindUserByEmailRepository) *RegisterController {
	return &RegisterController{
		CreateUserRepository:      createUser,
		FindUserByEmailRepository: findUserByEmail,
		Validate:                  helpers.NewFormValidator(),
	}
}

type RegisterBody struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=4,max=20,bcrypt_len"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

func (c *RegisterController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body RegisterBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateInvalidBodyResponse()
	}

	body.Email = strings.ToLower(strings.TrimSpace(body.Email))

	if err := c.Validate.Struct(body); err != nil {
		return helpers.CreateFormErrorResponse(helpers.RegisterForm(), c.Validate, err)
	}

	existing, err := c.FindUserByEmailRepository.Find(body.Email)
	if err != nil {
		slog.Error("Error checking email", "error", err)
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error checking email",
		}, http.StatusInternalServerError)
	}

	if existing != nil {
		return emailTakenResponse()
	}

	hash, err := utils.HashPassword(body.Password)
	if err != nil {
		slog.Error("Error hashing password", "error", err)
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error creating user",
		}, http.StatusInternalServerError)
	}

	user, err := c.CreateUserRepository.Create(&models.User{
		Email:    body.Email,
		Password: hash,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyRegistered) {
			return emailTakenResponse()
		}
		slog.Error("Error creating user", "error", err)
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error creating user",
		}, http.StatusInternalServerError)
	}

	slog.Info("User registered", "userId", user.Id.Hex())

	return helpers.CreateRedirect("/login", user)
}

func emailTakenResponse() *presentationProtocols.HttpResponse {
	return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
		Error:  "email already registered",
		Fields: map[string]string{"email": "email already registered"},
		Form:   helpers.RegisterForm(),
	}, http.StatusConflict)
}
