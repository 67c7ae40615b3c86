package instruments

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/example/market-mock-api/internal/domain"
	"github.com/example/market-mock-api/internal/events"
	"github.com/example/market-mock-api/internal/models"
	"github.com/example/market-mock-api/internal/store"
)

var btcID = uuid.MustParse("11111111-aaaa-bbbb-cccc-000000000002")

type recorder struct {
	mu  sync.Mutex
	got []events.Event
	err error
}

func (r *recorder) Publish(_ context.Context, e events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, e)
	return r.err
}

func ptr[T any](v T) *T { return &v }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newService(t *testing.T) (*Service, *recorder) {
	t.Helper()
	st := store.Seed([]models.Instrument{{
		ID:     btcID,
		Name:   "Bitcoin",
		Type:   domain.InstrumentCrypto,
		Symbol: "BTCUSD",
		Price:  dec("43210.55"),
	}})
	rec := &recorder{}
	return New(st, rec, zap.NewNop()), rec
}

func validCreate() models.InstrumentCreateRequest {
	return models.InstrumentCreateRequest{
		Name:   "Ripple",
		Type:   ptr(domain.InstrumentCrypto),
		Symbol: "XRPUSD",
		Price:  ptr(dec("0.65")),
	}
}

func TestCreate(t *testing.T) {
	svc, rec := newService(t)

	got, err := svc.Create(context.Background(), validCreate())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.NotEqual(t, btcID, got.ID)
	assert.Equal(t, "Ripple", got.Name)
	assert.True(t, got.Price.Equal(dec("0.65")))
	assert.Equal(t, 2, svc.Store.Len())

	require.Len(t, rec.got, 1)
	assert.Equal(t, events.InstrumentCreated, rec.got[0].Type)
	assert.Equal(t, got.ID, rec.got[0].EntityID)
}

func TestCreateRejectsNonPositivePrice(t *testing.T) {
	for _, p := range []string{"-10", "0", "0.00"} {
		t.Run(p, func(t *testing.T) {
			svc, rec := newService(t)
			req := validCreate()
			req.Price = ptr(dec(p))

			_, err := svc.Create(context.Background(), req)
			require.Error(t, err)
			assert.True(t, domain.IsInvalid(err))
			assert.Equal(t, "Price must be positive", err.Error())
			assert.Equal(t, 1, svc.Store.Len())
			assert.Empty(t, rec.got)

			seed, err := svc.Get(btcID)
			require.NoError(t, err)
			assert.True(t, seed.Price.Equal(dec("43210.55")))
		})
	}
}

func TestCreateMissingFieldsAreMalformed(t *testing.T) {
	cases := map[string]func(*models.InstrumentCreateRequest){
		"name":     func(r *models.InstrumentCreateRequest) { r.Name = "  " },
		"type":     func(r *models.InstrumentCreateRequest) { r.Type = nil },
		"bad type": func(r *models.InstrumentCreateRequest) { r.Type = ptr(domain.InstrumentType("BOND")) },
		"symbol":   func(r *models.InstrumentCreateRequest) { r.Symbol = "" },
		"price":    func(r *models.InstrumentCreateRequest) { r.Price = nil },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			svc, _ := newService(t)
			req := validCreate()
			mutate(&req)
			_, err := svc.Create(context.Background(), req)
			assert.True(t, domain.IsMalformed(err), "got %v", err)
			assert.Equal(t, 1, svc.Store.Len())
		})
	}
}

func TestGet(t *testing.T) {
	svc, _ := newService(t)

	got, err := svc.Get(btcID)
	require.NoError(t, err)
	assert.Equal(t, "BTCUSD", got.Symbol)

	missing := uuid.MustParse("99999999-aaaa-bbbb-cccc-000000000000")
	_, err = svc.Get(missing)
	assert.True(t, domain.IsNotFound(err))
	assert.Equal(t, "Instrument not found with id: "+missing.String(), err.Error())
}

func TestListEmpty(t *testing.T) {
	svc := New(store.New[models.Instrument](), events.Nop(), zap.NewNop())
	all := svc.List()
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestUpdatePartial(t *testing.T) {
	svc, rec := newService(t)

	got, err := svc.Update(context.Background(), btcID, models.InstrumentUpdateRequest{Price: ptr(dec("45000.00"))})
	require.NoError(t, err)
	assert.Equal(t, btcID, got.ID)
	assert.Equal(t, "Bitcoin", got.Name)
	assert.Equal(t, domain.InstrumentCrypto, got.Type)
	assert.Equal(t, "BTCUSD", got.Symbol)
	assert.True(t, got.Price.Equal(dec("45000")))
	assert.Equal(t, 1, svc.Store.Len())

	stored, _ := svc.Get(btcID)
	assert.Equal(t, got, stored)

	require.Len(t, rec.got, 1)
	assert.Equal(t, events.InstrumentUpdated, rec.got[0].Type)
}

func TestUpdateErrors(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, uuid.New(), models.InstrumentUpdateRequest{Price: ptr(dec("100"))})
	assert.True(t, domain.IsNotFound(err))

	// Lookup happens before validation.
	_, err = svc.Update(ctx, uuid.New(), models.InstrumentUpdateRequest{Price: ptr(dec("-1"))})
	assert.True(t, domain.IsNotFound(err))

	_, err = svc.Update(ctx, btcID, models.InstrumentUpdateRequest{Price: ptr(dec("-1"))})
	assert.True(t, domain.IsInvalid(err))

	_, err = svc.Update(ctx, btcID, models.InstrumentUpdateRequest{Name: ptr("")})
	assert.True(t, domain.IsMalformed(err))

	stored, _ := svc.Get(btcID)
	assert.Equal(t, "Bitcoin", stored.Name)
	assert.True(t, stored.Price.Equal(dec("43210.55")))
}

func TestDelete(t *testing.T) {
	svc, rec := newService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(created.ID)
	assert.True(t, domain.IsNotFound(err))

	err = svc.Delete(ctx, created.ID)
	assert.True(t, domain.IsNotFound(err))

	require.Len(t, rec.got, 2)
	assert.Equal(t, events.InstrumentDeleted, rec.got[1].Type)
}

func TestPublishFailureDoesNotFailMutation(t *testing.T) {
	svc, rec := newService(t)
	rec.err = errors.New("broker down")

	got, err := svc.Create(context.Background(), validCreate())
	require.NoError(t, err)
	assert.True(t, svc.Store.ExistsByID(got.ID))
}
