package recordstore

import (
	"fmt"
	"strings"
)

// Formula is a boolean filter expression evaluated server-side by the record
// store to select matching rows. Build formulas through the constructors below
// rather than by string concatenation: every value is escaped before it is
// interpolated, so user-supplied filter values cannot break out of the
// expression.
type Formula string

// escapeValue makes a string safe to embed inside a double-quoted formula literal.
func escapeValue(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return s
}

// Eq matches rows whose field equals value exactly.
func Eq(field, value string) Formula {
	return Formula(fmt.Sprintf(`{%s} = "%s"`, field, escapeValue(value)))
}

// EqBool matches rows by a checkbox field's value.
func EqBool(field string, value bool) Formula {
	if value {
		return Formula(fmt.Sprintf(`{%s} = TRUE()`, field))
	}
	return Formula(fmt.Sprintf(`{%s} = FALSE()`, field))
}

// IsAfter matches rows whose date field falls after the given YYYY-MM-DD date.
func IsAfter(field, date string) Formula {
	return Formula(fmt.Sprintf(`IS_AFTER({%s}, "%s")`, field, escapeValue(date)))
}

// FindLower matches rows whose field contains term, case-insensitively.
func FindLower(field, term string) Formula {
	return Formula(fmt.Sprintf(`FIND(LOWER("%s"), LOWER({%s}))`, escapeValue(term), field))
}

// And combines formulas with logical AND. Zero parts yield the empty formula,
// a single part is returned unwrapped.
func And(parts ...Formula) Formula {
	return combine("AND", parts)
}

// Or combines formulas with logical OR.
func Or(parts ...Formula) Formula {
	return combine("OR", parts)
}

func combine(op string, parts []Formula) Formula {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	}
	strs := make([]string, len(parts))
	for i, p := range parts {
		strs[i] = string(p)
	}
	return Formula(fmt.Sprintf("%s(%s)", op, strings.Join(strs, ", ")))
}
