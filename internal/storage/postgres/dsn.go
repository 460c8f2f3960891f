package postgres

import (
	"fmt"
	"strings"

	"github.com/GoSim-25-26J-441/mongo-gateway/config"
)

// DSN renders a libpq keyword/value connection string. Values containing
// spaces, quotes or backslashes are single-quoted and escaped.
func DSN(cfg *config.DatabaseConfig) string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		quote(cfg.Host), cfg.Port, quote(cfg.User), quote(cfg.Password), quote(cfg.Name),
	)
}

func quote(v string) string {
	if v != "" && !strings.ContainsAny(v, ` '\`) {
		return v
	}
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "'" + r.Replace(v) + "'"
}
