package fixtures

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/market-mock-api/internal/domain"
)

func TestLoadEmbedded(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)
	require.NotEmpty(t, s.Instruments)
	require.NotEmpty(t, s.Users)
	require.NotEmpty(t, s.Trades)

	btc := s.Instruments[1]
	assert.Equal(t, uuid.MustParse("11111111-aaaa-bbbb-cccc-000000000002"), btc.ID)
	assert.Equal(t, "Bitcoin", btc.Name)
	assert.Equal(t, domain.InstrumentCrypto, btc.Type)
	assert.True(t, btc.Price.Equal(decimal.RequireFromString("43210.55")))

	assert.Equal(t, "john_trader", s.Users[0].Username)

	sides := map[domain.TradeSide]bool{}
	for _, tr := range s.Trades {
		sides[tr.Side] = true
	}
	assert.True(t, sides[domain.SideBuy] && sides[domain.SideSell])
}

func TestEmbeddedTradesReferenceSeededEntities(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)

	users := map[uuid.UUID]bool{}
	for _, u := range s.Users {
		users[u.ID] = true
	}
	instruments := map[uuid.UUID]bool{}
	for _, in := range s.Instruments {
		instruments[in.ID] = true
	}
	for _, tr := range s.Trades {
		assert.True(t, users[tr.UserID], tr.ID)
		assert.True(t, instruments[tr.InstrumentID], tr.ID)
	}
}

func TestLoadFSYAML(t *testing.T) {
	fsys := fstest.MapFS{
		"instruments.yaml": {Data: []byte(`
- id: 11111111-aaaa-bbbb-cccc-000000000001
  name: Gold CFD
  type: CFD
  symbol: XAUUSD
  price: 2031.15
`)},
		"users.yml": {Data: []byte(`
- id: 22222222-aaaa-bbbb-cccc-000000000001
  username: yaml_user
  country: FR
  balance: 10
`)},
		"trades.yaml": {Data: []byte(`
- id: 33333333-aaaa-bbbb-cccc-000000000001
  userId: 22222222-aaaa-bbbb-cccc-000000000001
  instrumentId: 11111111-aaaa-bbbb-cccc-000000000001
  quantity: 3
  side: SELL
  timestamp: "2024-02-01T09:00:00Z"
`)},
	}
	s, err := LoadFS(fsys)
	require.NoError(t, err)
	require.Len(t, s.Instruments, 1)
	assert.Equal(t, domain.InstrumentCFD, s.Instruments[0].Type)
	assert.True(t, s.Instruments[0].Price.Equal(decimal.RequireFromString("2031.15")))
	assert.Equal(t, "yaml_user", s.Users[0].Username)
	assert.Equal(t, domain.SideSell, s.Trades[0].Side)
	assert.Equal(t, time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC), s.Trades[0].Timestamp.UTC())
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	write("instruments.json", `[]`)
	write("users.json", `[]`)
	write("trades.json", `[]`)

	s, err := Load(dir)
	require.NoError(t, err)
	assert.Empty(t, s.Instruments)
}

func TestLoadFailures(t *testing.T) {
	ok := func() fstest.MapFS {
		return fstest.MapFS{
			"instruments.json": {Data: []byte(`[]`)},
			"users.json":       {Data: []byte(`[]`)},
			"trades.json":      {Data: []byte(`[]`)},
		}
	}

	cases := map[string]func(fstest.MapFS){
		"missing file":    func(m fstest.MapFS) { delete(m, "users.json") },
		"bad json":        func(m fstest.MapFS) { m["trades.json"] = &fstest.MapFile{Data: []byte(`[{`)} },
		"unknown type":    func(m fstest.MapFS) { m["instruments.json"] = &fstest.MapFile{Data: []byte(`[{"type":"BOND","price":1}]`)} },
		"unknown field":   func(m fstest.MapFS) { m["users.json"] = &fstest.MapFile{Data: []byte(`[{"nickname":"x"}]`)} },
		"zero price":      func(m fstest.MapFS) { m["instruments.json"] = &fstest.MapFile{Data: []byte(`[{"type":"STOCK","price":0}]`)} },
		"zero quantity":   func(m fstest.MapFS) { m["trades.json"] = &fstest.MapFile{Data: []byte(`[{"side":"BUY","quantity":0}]`)} },
		"missing side":    func(m fstest.MapFS) { m["trades.json"] = &fstest.MapFile{Data: []byte(`[{"quantity":1}]`)} },
		"negative wallet": func(m fstest.MapFS) { m["users.json"] = &fstest.MapFile{Data: []byte(`[{"balance":-1}]`)} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			m := ok()
			mutate(m)
			_, err := LoadFS(m)
			assert.Error(t, err)
		})
	}
}
