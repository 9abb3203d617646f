package cities

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siska-gateway/internal/common/config"
	"siska-gateway/internal/common/database"
	"siska-gateway/internal/common/logger"
)

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver()

	tests := []struct {
		name   string
		input  string
		wantID string
		wantOK bool
	}{
		{"canonical name", "jakarta", "152", true},
		{"abbreviation", "jkt", "152", true},
		{"upper case", "JKT", "152", true},
		{"mixed case", "Surabaya", "444", true},
		{"surrounding whitespace", "  bandung ", "23", true},
		{"alias to same id", "bali", "114", true},
		{"unknown city", "atlantis", "", false},
		{"empty string", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := r.Resolve(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestResolver_ResolveIdempotent(t *testing.T) {
	r := NewResolver()

	first, ok := r.Resolve("JKT")
	require.True(t, ok)
	second, ok := r.Resolve("jkt")
	require.True(t, ok)

	assert.Equal(t, "152", first)
	assert.Equal(t, first, second)
}

func TestResolver_MinimumCoverage(t *testing.T) {
	r := NewResolver()
	assert.GreaterOrEqual(t, r.Len(), 12)
}

func TestResolver_Hydrate(t *testing.T) {
	mr := miniredis.RunT(t)
	mr.HSet("siska:cities", "malang", "255")
	mr.HSet("siska:cities", "BOGOR", "78")
	mr.HSet("siska:cities", "jakarta", "999") // must not override builtin
	mr.HSet("siska:cities", "", "1")

	rdb, err := database.NewRedis(config.RedisConfig{Address: mr.Addr()})
	require.NoError(t, err)
	defer rdb.Close()

	r := NewResolver()
	before := r.Len()

	err = r.Hydrate(context.Background(), rdb, "siska:cities", logger.NewTestLogger(t))
	require.NoError(t, err)

	id, ok := r.Resolve("malang")
	assert.True(t, ok)
	assert.Equal(t, "255", id)

	id, ok = r.Resolve("bogor")
	assert.True(t, ok)
	assert.Equal(t, "78", id)

	id, _ = r.Resolve("jakarta")
	assert.Equal(t, "152", id, "builtin alias must win over redis")

	assert.Equal(t, before+2, r.Len())
}

func TestResolver_HydrateMissingKey(t *testing.T) {
	mr := miniredis.RunT(t)

	rdb, err := database.NewRedis(config.RedisConfig{Address: mr.Addr()})
	require.NoError(t, err)
	defer rdb.Close()

	r := NewResolver()
	before := r.Len()

	// HGetAll on a missing key is an empty result, not an error.
	err = r.Hydrate(context.Background(), rdb, "siska:cities", logger.NewTestLogger(t))
	require.NoError(t, err)
	assert.Equal(t, before, r.Len())
}
