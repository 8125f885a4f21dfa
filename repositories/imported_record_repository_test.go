package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateInsertValues(t *testing.T) {
	names, values := generateInsertValues(map[string]any{
		"name":  "Acme",
		"email": "office@acme.com",
		"hours": 2.5,
	})

	// column order is deterministic regardless of map iteration order
	assert.Equal(t, []string{"email", "hours", "name"}, names)
	assert.Equal(t, []any{"office@acme.com", 2.5, "Acme"}, values)
}

func TestGenerateInsertValuesEmpty(t *testing.T) {
	names, values := generateInsertValues(map[string]any{})
	assert.Empty(t, names)
	assert.Empty(t, values)
}
