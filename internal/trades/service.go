package trades

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/market-mock-api/internal/domain"
	"github.com/example/market-mock-api/internal/events"
	"github.com/example/market-mock-api/internal/models"
	"github.com/example/market-mock-api/internal/store"
)

// Registry answers whether an identifier exists in another entity's store.
type Registry interface {
	ExistsByID(id uuid.UUID) bool
}

// Service covers create and read only; trades are immutable once stored.
type Service struct {
	Store       *store.Store[models.Trade]
	Users       Registry
	Instruments Registry
	Events      events.Publisher
	Logger      *zap.Logger
	Now         func() time.Time
}

func New(s *store.Store[models.Trade], users, instruments Registry, pub events.Publisher, logger *zap.Logger) *Service {
	return &Service{
		Store:       s,
		Users:       users,
		Instruments: instruments,
		Events:      pub,
		Logger:      logger,
		Now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) List() []models.Trade {
	s.Logger.Debug("list trades")
	return s.Store.FindAll()
}

func (s *Service) Get(id uuid.UUID) (models.Trade, error) {
	s.Logger.Debug("get trade", zap.Stringer("id", id))
	t, ok := s.Store.FindByID(id)
	if !ok {
		return models.Trade{}, domain.NotFound("Trade not found with id: %s", id)
	}
	return t, nil
}

// Create checks, in order, that the user exists, that the instrument exists
// and that the quantity is positive. The first failing check wins.
func (s *Service) Create(ctx context.Context, req models.TradeCreateRequest) (models.Trade, error) {
	if err := validateShape(req); err != nil {
		return models.Trade{}, err
	}
	s.Logger.Info("create trade",
		zap.Stringer("user_id", *req.UserID),
		zap.Stringer("instrument_id", *req.InstrumentID),
	)

	if !s.Users.ExistsByID(*req.UserID) {
		return models.Trade{}, domain.Invalid("User not found with id: %s", *req.UserID)
	}
	if !s.Instruments.ExistsByID(*req.InstrumentID) {
		return models.Trade{}, domain.Invalid("Instrument not found with id: %s", *req.InstrumentID)
	}
	if *req.Quantity <= 0 {
		return models.Trade{}, domain.Invalid("Quantity must be positive")
	}

	saved := s.Store.Save(models.Trade{
		ID:           uuid.New(),
		UserID:       *req.UserID,
		InstrumentID: *req.InstrumentID,
		Quantity:     *req.Quantity,
		Side:         *req.Side,
		Timestamp:    s.Now(),
	})

	if err := s.Events.Publish(ctx, events.New(events.TradeCreated, saved.ID, saved)); err != nil {
		s.Logger.Warn("event not published", zap.String("type", string(events.TradeCreated)), zap.Error(err))
	}
	return saved, nil
}

func validateShape(req models.TradeCreateRequest) error {
	switch {
	case req.UserID == nil:
		return domain.Malformed("UserID is required")
	case req.InstrumentID == nil:
		return domain.Malformed("InstrumentID is required")
	case req.Quantity == nil:
		return domain.Malformed("Quantity is required")
	case req.Side == nil:
		return domain.Malformed("Side is required")
	case !req.Side.Valid():
		return domain.Malformed("Side must be BUY or SELL")
	}
	return nil
}
