package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMigrationURL(t *testing.T) {
	tests := map[string]string{
		"postgres://u:p@localhost:5432/crashes":   "pgx5://u:p@localhost:5432/crashes",
		"postgresql://u:p@localhost:5432/crashes": "pgx5://u:p@localhost:5432/crashes",
		"pgx5://u:p@localhost:5432/crashes":       "pgx5://u:p@localhost:5432/crashes",
		"host=localhost dbname=crashes":           "host=localhost dbname=crashes",
	}
	for in, want := range tests {
		assert.Equal(t, want, MigrationURL(in), in)
	}
}
