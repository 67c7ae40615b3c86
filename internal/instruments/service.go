package instruments

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/market-mock-api/internal/domain"
	"github.com/example/market-mock-api/internal/events"
	"github.com/example/market-mock-api/internal/models"
	"github.com/example/market-mock-api/internal/store"
)

type Service struct {
	Store  *store.Store[models.Instrument]
	Events events.Publisher
	Logger *zap.Logger
}

func New(s *store.Store[models.Instrument], pub events.Publisher, logger *zap.Logger) *Service {
	return &Service{Store: s, Events: pub, Logger: logger}
}

func (s *Service) List() []models.Instrument {
	s.Logger.Debug("list instruments")
	return s.Store.FindAll()
}

func (s *Service) Get(id uuid.UUID) (models.Instrument, error) {
	s.Logger.Debug("get instrument", zap.Stringer("id", id))
	in, ok := s.Store.FindByID(id)
	if !ok {
		return models.Instrument{}, notFound(id)
	}
	return in, nil
}

// ExistsByID backs the cross-entity check on trade creation.
func (s *Service) ExistsByID(id uuid.UUID) bool { return s.Store.ExistsByID(id) }

func (s *Service) Create(ctx context.Context, req models.InstrumentCreateRequest) (models.Instrument, error) {
	if err := validateCreate(req); err != nil {
		return models.Instrument{}, err
	}
	s.Logger.Info("create instrument", zap.String("symbol", req.Symbol))

	in := models.Instrument{
		ID:     uuid.New(),
		Name:   req.Name,
		Type:   *req.Type,
		Symbol: req.Symbol,
		Price:  *req.Price,
	}
	saved := s.Store.Save(in)
	s.publish(ctx, events.InstrumentCreated, saved.ID, saved)
	return saved, nil
}

// Update merges the supplied fields onto the stored instrument. Absent fields
// keep their current values even though the route is a PUT.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req models.InstrumentUpdateRequest) (models.Instrument, error) {
	s.Logger.Info("update instrument", zap.Stringer("id", id))

	existing, ok := s.Store.FindByID(id)
	if !ok {
		return models.Instrument{}, notFound(id)
	}
	if err := validateUpdate(req); err != nil {
		return models.Instrument{}, err
	}

	saved := s.Store.Save(req.Merge(existing))
	s.publish(ctx, events.InstrumentUpdated, saved.ID, saved)
	return saved, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	s.Logger.Info("delete instrument", zap.Stringer("id", id))

	if !s.Store.ExistsByID(id) {
		return notFound(id)
	}
	s.Store.DeleteByID(id)
	s.publish(ctx, events.InstrumentDeleted, id, nil)
	return nil
}

func (s *Service) publish(ctx context.Context, t events.Type, id uuid.UUID, data any) {
	if err := s.Events.Publish(ctx, events.New(t, id, data)); err != nil {
		s.Logger.Warn("event not published", zap.String("type", string(t)), zap.Error(err))
	}
}

func notFound(id uuid.UUID) error {
	return domain.NotFound("Instrument not found with id: %s", id)
}

func validateCreate(req models.InstrumentCreateRequest) error {
	switch {
	case strings.TrimSpace(req.Name) == "":
		return domain.Malformed("Name is required")
	case req.Type == nil:
		return domain.Malformed("Type is required")
	case !req.Type.Valid():
		return domain.Malformed("Type must be one of %v", domain.InstrumentTypes)
	case strings.TrimSpace(req.Symbol) == "":
		return domain.Malformed("Symbol is required")
	case req.Price == nil:
		return domain.Malformed("Price is required")
	case !req.Price.IsPositive():
		return domain.Invalid("Price must be positive")
	}
	return nil
}

func validateUpdate(req models.InstrumentUpdateRequest) error {
	switch {
	case req.Name != nil && strings.TrimSpace(*req.Name) == "":
		return domain.Malformed("Name must not be blank")
	case req.Type != nil && !req.Type.Valid():
		return domain.Malformed("Type must be one of %v", domain.InstrumentTypes)
	case req.Symbol != nil && strings.TrimSpace(*req.Symbol) == "":
		return domain.Malformed("Symbol must not be blank")
	case req.Price != nil && !req.Price.IsPositive():
		return domain.Invalid("Price must be positive")
	}
	return nil
}
