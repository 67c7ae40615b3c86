package users

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/market-mock-api/internal/domain"
	"github.com/example/market-mock-api/internal/models"
	"github.com/example/market-mock-api/internal/store"
)

// Service is read-only: users come from fixtures and are never mutated.
type Service struct {
	Store  *store.Store[models.User]
	Logger *zap.Logger
}

func New(s *store.Store[models.User], logger *zap.Logger) *Service {
	return &Service{Store: s, Logger: logger}
}

func (s *Service) List() []models.User {
	s.Logger.Debug("list users")
	return s.Store.FindAll()
}

func (s *Service) Get(id uuid.UUID) (models.User, error) {
	s.Logger.Debug("get user", zap.Stringer("id", id))
	u, ok := s.Store.FindByID(id)
	if !ok {
		return models.User{}, domain.NotFound("User not found with id: %s", id)
	}
	return u, nil
}

// ExistsByID backs the cross-entity check on trade creation.
func (s *Service) ExistsByID(id uuid.UUID) bool { return s.Store.ExistsByID(id) }
