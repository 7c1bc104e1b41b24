package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Tables maps each entity type to its table name in the record-store base.
// The defaults match the standard base layout; a YAML file can override any
// of them for bases created with different table names.
type Tables struct {
	Grants       string `yaml:"grants"`
	Partners     string `yaml:"partners"`
	Meetings     string `yaml:"meetings"`
	Documents    string `yaml:"documents"`
	BoardMembers string `yaml:"board_members"`
}

// DefaultTables returns the standard table names.
func DefaultTables() Tables {
	return Tables{
		Grants:       "tblGrants",
		Partners:     "tblPartners",
		Meetings:     "tblMeetings",
		Documents:    "tblDocuments",
		BoardMembers: "tblBoardMembers",
	}
}

// LoadTables reads the table map from a YAML file, falling back to the
// defaults when no path is configured. Unset entries keep their default.
func LoadTables(path string) (Tables, error) {
	tables := DefaultTables()
	if path == "" {
		return tables, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return tables, fmt.Errorf("failed to read tables file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &tables); err != nil {
		return tables, fmt.Errorf("failed to parse tables file %s: %w", path, err)
	}

	if tables.Grants == "" || tables.Partners == "" || tables.Meetings == "" ||
		tables.Documents == "" || tables.BoardMembers == "" {
		return tables, fmt.Errorf("tables file %s must not blank out a table name", path)
	}
	return tables, nil
}
