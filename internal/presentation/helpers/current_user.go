package helpers

import (
	"log/slog"
	"net/http"

	"github.com/anuntech/budget-manager/internal/domain/models"
	"github.com/anuntech/budget-manager/internal/domain/usecase"
	presentationProtocols "github.com/anuntech/budget-manager/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Headers written by the session middleware.
const (
	UserIdHeader    = "UserId"
	SessionIdHeader = "SessionId"
)

func FindCurrentUser(r presentationProtocols.HttpRequest, findUserById usecase.FindUserByIdRepository) (*models.User, *presentationProtocols.HttpResponse) {
	userId, err := primitive.ObjectIDFromHex(r.Header.Get(UserIdHeader))
	if err != nil {
		return nil, CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid user id",
		}, http.StatusUnauthorized)
	}

	user, err := findUserById.Find(userId)
	if err != nil {
		slog.Error("Error finding user", "userId", userId.Hex(), "error", err)
		return nil, CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when retrieving user",
		}, http.StatusInternalServerError)
	}

	if user == nil {
		return nil, CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "user not found",
		}, http.StatusUnauthorized)
	}

	return user, nil
}
