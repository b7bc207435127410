package db

import (
	"os"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadSchema(t *testing.T) string {
	t.Helper()
	raw, err := os.ReadFile("../../scripts/schema.sql")
	require.NoError(t, err)
	return string(raw)
}

func tableDef(t *testing.T, schema, table string) string {
	t.Helper()
	re := regexp.MustCompile(`(?s)CREATE TABLE IF NOT EXISTS ` + table + ` \((.*?)\);`)
	m := re.FindStringSubmatch(schema)
	require.Len(t, m, 2, "table %s missing from schema", table)
	return m[1]
}

// Deleting a project must leave its logged time in place, so
// time_entries.project_id carries no foreign key that could cascade or
// block the delete.
func TestTimeEntriesSurviveProjectDeletion(t *testing.T) {
	schema := loadSchema(t)

	timeEntries := tableDef(t, schema, "time_entries")
	assert.NotContains(t, timeEntries, "REFERENCES projects")
	assert.Contains(t, timeEntries, "project_id")

	// the constraint machinery works everywhere else
	assert.Contains(t, tableDef(t, schema, "projects"), "REFERENCES clients(id) ON DELETE SET NULL")
	assert.Contains(t, tableDef(t, schema, "time_entries"), "REFERENCES users(id)")
}

// Sessions are the only rows that die with their user.
func TestOnlySessionsCascadeFromUsers(t *testing.T) {
	schema := loadSchema(t)

	assert.Contains(t, tableDef(t, schema, "sessions"), "ON DELETE CASCADE")
	for _, table := range []string{"clients", "projects", "time_entries", "goals", "transactions", "invoices", "files"} {
		assert.NotContains(t, tableDef(t, schema, table), "ON DELETE CASCADE", "table %s", table)
	}
}
