package database

import (
	"testing"

	"entgo.io/ent/dialect/sql/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findFK(t *testing.T, table *schema.Table, column string) *schema.ForeignKey {
	t.Helper()
	for _, fk := range table.ForeignKeys {
		if len(fk.Columns) == 1 && fk.Columns[0].Name == column {
			return fk
		}
	}
	t.Fatalf("no foreign key on %s.%s", table.Name, column)
	return nil
}

func TestSchema_ApplicationIntegrity(t *testing.T) {
	var unique *schema.Index
	for _, idx := range ApplicationsTable.Indexes {
		if idx.Unique {
			unique = idx
		}
	}
	require.NotNil(t, unique, "applications needs a unique index")
	require.Len(t, unique.Columns, 2)
	assert.Equal(t, "job_id", unique.Columns[0].Name)
	assert.Equal(t, "applicant_id", unique.Columns[1].Name)

	jobFK := findFK(t, ApplicationsTable, "job_id")
	assert.Equal(t, schema.Cascade, jobFK.OnDelete)
	assert.Same(t, JobsTable, jobFK.RefTable)
}

func TestSchema_CategoryDeleteNullsJobs(t *testing.T) {
	fk := findFK(t, JobsTable, "category_id")
	assert.Equal(t, schema.SetNull, fk.OnDelete)
	assert.Same(t, JobCategoriesTable, fk.RefTable)
	assert.True(t, fk.Columns[0].Nullable)
}

func TestSchema_EveryForeignKeyIsResolved(t *testing.T) {
	for _, table := range Tables {
		for _, fk := range table.ForeignKeys {
			assert.NotNil(t, fk.RefTable, "%s.%s", table.Name, fk.Symbol)
		}
	}
}

func TestSchema_LocationUniqueness(t *testing.T) {
	assert.True(t, CountriesColumns[1].Unique)
	require.Len(t, StatesTable.Indexes, 1)
	assert.True(t, StatesTable.Indexes[0].Unique)
	require.Len(t, CitiesTable.Indexes, 1)
	assert.True(t, CitiesTable.Indexes[0].Unique)
}
