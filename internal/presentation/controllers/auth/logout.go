package auth

import (
	"log/slog"
	"net/http"

	"github.com/anuntech/budget-manager/internal/domain/usecase"
	"github.com/anuntech/budget-manager/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/budget-manager/internal/presentation/protocols"
	"github.com/anuntech/budget-manager/internal/utils"
)

type LogoutController struct {
	DeleteSessionRepository usecase.DeleteSessionRepository
	CookieSecure            bool
}

func NewLogoutController(deleteSession usecase.DeleteSessionRepository, cookieSecure bool) *LogoutController {
	return &LogoutController{
		DeleteSessionRepository: deleteSession,
		CookieSecure:            cookieSecure,
	}
}

func (c *LogoutController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	sessionId := r.Header.Get(helpers.SessionIdHeader)
	if sessionId == "" {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "missing session",
		}, http.StatusUnauthorized)
	}

	if err := c.DeleteSessionRepository.Delete(sessionId); err != nil {
		slog.Error("Error deleting session", "error", err)
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when logging out",
		}, http.StatusInternalServerError)
	}

	response := helpers.CreateRedirect("/login", map[string]string{"message": "You have been logged out."})
	response.Cookies = append(response.Cookies, utils.ExpiredSessionCookie(c.CookieSecure))
	return response
}
