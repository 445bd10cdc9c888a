package deposit

import (
	"github.com/iov-one/arca"
	"github.com/iov-one/arca/coin"
	"github.com/iov-one/arca/errors"
	"github.com/iov-one/arca/gconf"
)

// Validate ensures the configuration is self consistent.
func (c *Configuration) Validate() error {
	if err := c.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if len(c.PendingOwner) != 0 {
		if err := c.PendingOwner.Validate(); err != nil {
			return errors.Wrap(err, "pending owner")
		}
	}
	if !coin.IsCC(c.NativeTicker) {
		return errors.Wrapf(errors.ErrCurrency, "invalid native ticker: %s", c.NativeTicker)
	}
	return nil
}

func loadConf(db gconf.Store) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, "deposit", &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return &conf, nil
}

func saveConf(db gconf.Store, conf *Configuration) error {
	return gconf.Save(db, "deposit", conf)
}

// Initializer loads the deposit configuration from the genesis file.
type Initializer struct{}

var _ arca.Initializer = (*Initializer)(nil)

// FromGenesis initializes the extension from the "conf" genesis
// section.
func (Initializer) FromGenesis(opts arca.Options, db arca.KVStore) error {
	return gconf.InitConfig(db, opts, "deposit", &Configuration{})
}
