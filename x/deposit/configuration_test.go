package deposit

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/iov-one/arca"
	"github.com/iov-one/arca/arcatest"
	"github.com/iov-one/arca/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigurationValidate(t *testing.T) {
	owner := arcatest.NewCondition().Address()

	assert.NoError(t, (&Configuration{Owner: owner, NativeTicker: "ARC"}).Validate())
	assert.NoError(t, (&Configuration{
		Owner:        owner,
		PendingOwner: arcatest.NewCondition().Address(),
		NativeTicker: "ARC",
	}).Validate())
	assert.Error(t, (&Configuration{NativeTicker: "ARC"}).Validate())
	assert.Error(t, (&Configuration{Owner: owner}).Validate())
	assert.Error(t, (&Configuration{Owner: owner, NativeTicker: "bad ticker"}).Validate())
}

func TestInitializerFromGenesis(t *testing.T) {
	owner := arcatest.NewCondition().Address()
	opts := arca.Options{
		"conf": json.RawMessage(fmt.Sprintf(`{
			"deposit": {
				"owner": "%s",
				"native_ticker": "ARC"
			}
		}`, owner)),
	}

	db := store.MemStore()
	require.NoError(t, Initializer{}.FromGenesis(opts, db))

	conf, err := loadConf(db)
	require.NoError(t, err)
	assert.Equal(t, owner, conf.Owner)
	assert.Equal(t, "ARC", conf.NativeTicker)
	assert.Empty(t, conf.PendingOwner)
}

func TestInitializerMissingConfiguration(t *testing.T) {
	db := store.MemStore()
	assert.Error(t, Initializer{}.FromGenesis(arca.Options{}, db))
}
