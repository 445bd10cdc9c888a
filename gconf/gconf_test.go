package gconf

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/arca"
	"github.com/iov-one/arca/errors"
	"github.com/iov-one/arca/store"
)

type config struct {
	Name string `json:"name"`
}

func (c *config) Marshal() ([]byte, error) {
	return json.Marshal(c)
}

func (c *config) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, c)
}

func (c *config) Validate() error {
	if c.Name == "" {
		return errors.Wrap(errors.ErrEmpty, "name")
	}
	return nil
}

func TestSaveAndLoad(t *testing.T) {
	db := store.MemStore()

	if err := Save(db, "mypkg", &config{Name: "foo"}); err != nil {
		t.Fatalf("cannot save: %+v", err)
	}

	var got config
	if err := Load(db, "mypkg", &got); err != nil {
		t.Fatalf("cannot load: %+v", err)
	}
	if got.Name != "foo" {
		t.Fatalf("unexpected configuration: %+v", got)
	}
}

func TestSaveInvalid(t *testing.T) {
	db := store.MemStore()
	if err := Save(db, "mypkg", &config{}); !errors.ErrEmpty.Is(err) {
		t.Fatalf("save must validate, got %+v", err)
	}
}

func TestLoadMissing(t *testing.T) {
	db := store.MemStore()
	var got config
	if err := Load(db, "mypkg", &got); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %+v", err)
	}
}

func TestInitConfig(t *testing.T) {
	db := store.MemStore()
	opts := arca.Options{
		"conf": json.RawMessage(`{"mypkg": {"name": "genesis name"}}`),
	}

	var conf config
	if err := InitConfig(db, opts, "mypkg", &conf); err != nil {
		t.Fatalf("cannot initialize: %+v", err)
	}

	var got config
	if err := Load(db, "mypkg", &got); err != nil {
		t.Fatalf("cannot load: %+v", err)
	}
	if got.Name != "genesis name" {
		t.Fatalf("unexpected configuration: %+v", got)
	}
}

func TestInitConfigMissingGenesisEntry(t *testing.T) {
	db := store.MemStore()
	opts := arca.Options{
		"conf": json.RawMessage(`{"otherpkg": {"name": "x"}}`),
	}
	var conf config
	if err := InitConfig(db, opts, "mypkg", &conf); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %+v", err)
	}
}
