package recordstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEq(t *testing.T) {
	assert.Equal(t, Formula(`{status} = "pending"`), Eq("status", "pending"))
}

func TestEqEscapesValues(t *testing.T) {
	// Values with quotes or backslashes must not break out of the expression.
	assert.Equal(t,
		Formula(`{organizationName} = "Grace \"House\""`),
		Eq("organizationName", `Grace "House"`))
	assert.Equal(t,
		Formula(`{notes} = "a\\b"`),
		Eq("notes", `a\b`))
	assert.Equal(t,
		Formula(`{status} = "\") = 1, TRUE(), (\""`),
		Eq("status", `") = 1, TRUE(), ("`))
}

func TestEqBool(t *testing.T) {
	assert.Equal(t, Formula(`{isActive} = TRUE()`), EqBool("isActive", true))
	assert.Equal(t, Formula(`{isActive} = FALSE()`), EqBool("isActive", false))
}

func TestIsAfter(t *testing.T) {
	assert.Equal(t,
		Formula(`IS_AFTER({meetingDate}, "2026-08-30")`),
		IsAfter("meetingDate", "2026-08-30"))
}

func TestFindLower(t *testing.T) {
	assert.Equal(t,
		Formula(`FIND(LOWER("grace"), LOWER({organizationName}))`),
		FindLower("organizationName", "grace"))
	assert.Equal(t,
		Formula(`FIND(LOWER("\"x\""), LOWER({title}))`),
		FindLower("title", `"x"`))
}

func TestAnd(t *testing.T) {
	assert.Equal(t, Formula(""), And())
	assert.Equal(t, Eq("status", "pending"), And(Eq("status", "pending")))
	assert.Equal(t,
		Formula(`AND({status} = "scheduled", IS_AFTER({meetingDate}, "2026-08-30"))`),
		And(Eq("status", "scheduled"), IsAfter("meetingDate", "2026-08-30")))
}

func TestOr(t *testing.T) {
	assert.Equal(t, Formula(""), Or())
	assert.Equal(t,
		Formula(`OR({status} = "pending", {status} = "approved", {status} = "rejected")`),
		Or(Eq("status", "pending"), Eq("status", "approved"), Eq("status", "rejected")))
}
