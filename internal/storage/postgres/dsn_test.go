package postgres

import (
	"testing"

	"github.com/GoSim-25-26J-441/mongo-gateway/config"
	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Host:     "pg",
		Port:     5432,
		User:     "postgres",
		Password: "secret",
		Name:     "test_db",
	}

	assert.Equal(t, "host=pg port=5432 user=postgres password=secret dbname=test_db sslmode=disable", DSN(cfg))
}

func TestDSN_QuotesAwkwardValues(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Host:     "pg",
		Port:     5432,
		User:     "postgres",
		Password: `it's a pass\word`,
		Name:     "test_db",
	}

	assert.Equal(t, `host=pg port=5432 user=postgres password='it\'s a pass\\word' dbname=test_db sslmode=disable`, DSN(cfg))

	cfg.Password = ""
	assert.Contains(t, DSN(cfg), "password='' ")
}
