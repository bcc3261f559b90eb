package usecase

import "github.com/anuntech/budget-manager/internal/domain/models"

type CreateSessionRepository interface {
	Create(session *models.Session) error
}

type FindSessionRepository interface {
	Find(sessionId string) (*models.Session, error)
}

type DeleteSessionRepository interface {
	Delete(sessionId string) error
}
