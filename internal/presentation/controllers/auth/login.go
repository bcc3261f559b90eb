package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/anuntech/budget-manager/internal/domain/models"
	"github.com/anuntech/budget-manager/internal/domain/usecase"
	"github.com/anuntech/budget-manager/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/budget-manager/internal/presentation/protocols"
	"github.com/anuntech/budget-manager/internal/utils"
	"github.com/google/uuid"
)

const invalidCredentials = "invalid email or password"

type SessionTokenEncoder interface {
	EncodeToken(claims *utils.SessionClaims) (string, error)
}

type LoginController struct {
	FindUserByEmailRepository usecase.FindUserByEmailRepository
	CreateSessionRepository   usecase.CreateSessionRepository
	SessionToken              SessionTokenEncoder
	Validate                  *helpers.FormValidator
	SessionTTL                time.Duration
	CookieSecure              bool
	Now                       func() time.Time
}

func NewLoginController(
	findUserByEmail usecase.FindUserByEmailRepository,
	createSession usecase.CreateSessionRepository,
	sessionToken SessionTokenEncoder,
	sessionTTL time.Duration,
	cookieSecure bool,
) *LoginController {
	return &LoginController{
		FindUserByEmailRepository: findUserByEmail,
		CreateSessionRepository:   createSession,
		SessionToken:              sessionToken,
		Validate:                  helpers.NewFormValidator(),
		SessionTTL:                sessionTTL,
		CookieSecure:              cookieSecure,
		Now:                       time.Now,
	}
}

type LoginBody struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (c *LoginController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body LoginBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateInvalidBodyResponse()
	}

	body.Email = strings.ToLower(strings.TrimSpace(body.Email))

	if err := c.Validate.Struct(body); err != nil {
		return helpers.CreateFormErrorResponse(helpers.LoginForm(), c.Validate, err)
	}

	user, err := c.FindUserByEmailRepository.Find(body.Email)
	if err != nil {
		slog.Error("Error finding user by email", "error", err)
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when logging in",
		}, http.StatusInternalServerError)
	}

	if user == nil {
		utils.DummyPasswordCheck(body.Password)
		return invalidCredentialsResponse()
	}

	if !utils.CheckPassword(body.Password, user.Password) {
		return invalidCredentialsResponse()
	}

	now := c.Now()
	session := &models.Session{
		Id:        uuid.NewString(),
		UserId:    user.Id,
		Email:     user.Email,
		CreatedAt: now,
		ExpiresAt: now.Add(c.SessionTTL),
	}

	if err := c.CreateSessionRepository.Create(session); err != nil {
		slog.Error("Error creating session", "userId", user.Id.Hex(), "error", err)
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when logging in",
		}, http.StatusInternalServerError)
	}

	token, err := c.SessionToken.EncodeToken(&utils.SessionClaims{
		SessionId: session.Id,
		Subject:   user.Id.Hex(),
		Email:     user.Email,
		IssuedAt:  now.Unix(),
		ExpiresAt: session.ExpiresAt.Unix(),
	})
	if err != nil {
		slog.Error("Error encoding session token", "userId", user.Id.Hex(), "error", err)
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when logging in",
		}, http.StatusInternalServerError)
	}

	response := helpers.CreateRedirect("/", user)
	response.Cookies = append(response.Cookies, utils.NewSessionCookie(token, session.ExpiresAt, c.CookieSecure))
	return response
}

// Unknown email and wrong password must be indistinguishable.
func invalidCredentialsResponse() *presentationProtocols.HttpResponse {
	return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
		Error: invalidCredentials,
		Form:  helpers.LoginForm(),
	}, http.StatusUnauthorized)
}
