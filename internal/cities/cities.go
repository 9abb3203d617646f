// Package cities maps human city names and common abbreviations to the
// RajaOngkir city ids used by the shipping provider. The table is built
// at startup, optionally extended from Redis, and read-only afterwards.
package cities

import (
	"context"
	"strings"

	"siska-gateway/internal/common/database"
	"siska-gateway/internal/common/logger"
)

// builtinTable covers the major Indonesian cities the assistant ships
// with. Keys are lower-case aliases, values are RajaOngkir city ids.
var builtinTable = map[string]string{
	"jakarta":    "152",
	"jkt":        "152",
	"bandung":    "23",
	"bdg":        "23",
	"surabaya":   "444",
	"sby":        "444",
	"semarang":   "399",
	"smg":        "399",
	"yogyakarta": "573",
	"jogja":      "573",
	"medan":      "222",
	"makassar":   "196",
	"palembang":  "320",
	"denpasar":   "114",
	"bali":       "114",
}

// Resolver performs case-insensitive exact lookups. No fuzzy matching:
// an unresolved name is a hard not-found for the request.
type Resolver struct {
	table map[string]string
}

func NewResolver() *Resolver {
	table := make(map[string]string, len(builtinTable))
	for alias, id := range builtinTable {
		table[alias] = id
	}
	return &Resolver{table: table}
}

// Resolve returns the provider city id for name, or false when the city
// is not in the table.
func (r *Resolver) Resolve(name string) (string, bool) {
	id, ok := r.table[strings.ToLower(strings.TrimSpace(name))]
	return id, ok
}

// Len returns the number of known aliases.
func (r *Resolver) Len() int {
	return len(r.table)
}

// Hydrate merges extra aliases from a Redis hash (field = alias, value =
// city id) into the table. Builtin aliases are never overwritten, so a
// stale deployment hash cannot remap the canonical cities. Must be called
// before the resolver is shared with request handlers.
func (r *Resolver) Hydrate(ctx context.Context, rdb *database.RedisClient, key string, log logger.Logger) error {
	entries, err := rdb.HGetAll(ctx, key)
	if err != nil {
		return err
	}

	added := 0
	for alias, id := range entries {
		alias = strings.ToLower(strings.TrimSpace(alias))
		if alias == "" || id == "" {
			continue
		}
		if _, exists := r.table[alias]; exists {
			continue
		}
		r.table[alias] = id
		added++
	}

	log.Info("city alias table hydrated", map[string]interface{}{
		"redisKey": key,
		"added":    added,
		"total":    len(r.table),
	})
	return nil
}
