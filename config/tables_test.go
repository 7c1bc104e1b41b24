package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTablesDefaults(t *testing.T) {
	tables, err := LoadTables("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTables(), tables)
	assert.Equal(t, "tblGrants", tables.Grants)
}

func TestLoadTablesPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grants: Grant Applications\nmeetings: Board Meetings\n"), 0o644))

	tables, err := LoadTables(path)
	require.NoError(t, err)
	assert.Equal(t, "Grant Applications", tables.Grants)
	assert.Equal(t, "Board Meetings", tables.Meetings)
	// Unset entries keep the default names.
	assert.Equal(t, "tblPartners", tables.Partners)
	assert.Equal(t, "tblDocuments", tables.Documents)
	assert.Equal(t, "tblBoardMembers", tables.BoardMembers)
}

func TestLoadTablesRejectsBlankName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`grants: ""`+"\n"), 0o644))

	_, err := LoadTables(path)
	assert.Error(t, err)
}

func TestLoadTablesMissingFile(t *testing.T) {
	_, err := LoadTables(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
