// Package fixtures loads the seed collections served by the API.
//
// A fixture set is three files named instruments, users and trades, each a
// list of records in JSON (.json) or YAML (.yaml, .yml). The set compiled into
// the binary is used unless a directory is given.
package fixtures

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"gopkg.in/yaml.v3"

	"github.com/example/market-mock-api/internal/models"
)

//go:embed data/*.json
var embedded embed.FS

type Set struct {
	Instruments []models.Instrument
	Users       []models.User
	Trades      []models.Trade
}

// Load reads the fixture set from dir, or the embedded set when dir is empty.
func Load(dir string) (Set, error) {
	if dir == "" {
		sub, err := fs.Sub(embedded, "data")
		if err != nil {
			return Set{}, err
		}
		return LoadFS(sub)
	}
	return LoadFS(os.DirFS(dir))
}

func LoadFS(fsys fs.FS) (Set, error) {
	var s Set
	if err := decode(fsys, "instruments", &s.Instruments); err != nil {
		return Set{}, err
	}
	if err := decode(fsys, "users", &s.Users); err != nil {
		return Set{}, err
	}
	if err := decode(fsys, "trades", &s.Trades); err != nil {
		return Set{}, err
	}
	if err := s.validate(); err != nil {
		return Set{}, err
	}
	return s, nil
}

func decode(fsys fs.FS, name string, out any) error {
	for _, ext := range []string{".json", ".yaml", ".yml"} {
		file := name + ext
		b, err := fs.ReadFile(fsys, file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", file, err)
		}
		if path.Ext(file) == ".json" {
			dec := json.NewDecoder(bytes.NewReader(b))
			dec.DisallowUnknownFields()
			err = dec.Decode(out)
		} else {
			err = yaml.Unmarshal(b, out)
		}
		if err != nil {
			return fmt.Errorf("parse %s: %w", file, err)
		}
		return nil
	}
	return fmt.Errorf("no fixture file for %s", name)
}

func (s Set) validate() error {
	for i, in := range s.Instruments {
		if !in.Price.IsPositive() {
			return fmt.Errorf("instruments[%d] %s: price must be positive", i, in.ID)
		}
		if !in.Type.Valid() {
			return fmt.Errorf("instruments[%d] %s: invalid type %q", i, in.ID, in.Type)
		}
	}
	for i, u := range s.Users {
		if u.Balance.IsNegative() {
			return fmt.Errorf("users[%d] %s: balance must not be negative", i, u.ID)
		}
	}
	for i, t := range s.Trades {
		if t.Quantity <= 0 {
			return fmt.Errorf("trades[%d] %s: quantity must be positive", i, t.ID)
		}
		if !t.Side.Valid() {
			return fmt.Errorf("trades[%d] %s: invalid side %q", i, t.ID, t.Side)
		}
	}
	return nil
}
