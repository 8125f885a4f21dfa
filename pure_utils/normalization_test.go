package pure_utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	examples := []struct {
		in       string
		expected string
	}{
		{"2024-03-15", "2024-03-15"},
		{"2024/03/15", "2024-03-15"},
		{"03/15/2024", "2024-03-15"},
		{"3/5/2024", "2024-03-05"},
		// day > 12 in first position only parses as day-first
		{"15/03/2024", "2024-03-15"},
		{"15-Mar-2024", "2024-03-15"},
		{"March 15, 2024", "2024-03-15"},
		{" 2024-03-15 ", "2024-03-15"},
		{"2024-03-15T10:30:00Z", "2024-03-15"},
		{"not a date", ""},
		{"2024-13-45", ""},
		{"", ""},
	}
	for _, ex := range examples {
		assert.Equal(t, ex.expected, ParseDate(ex.in), "ParseDate(%q)", ex.in)
	}
}

func TestParseDateIsIdempotent(t *testing.T) {
	once := ParseDate("03/15/2024")
	assert.Equal(t, once, ParseDate(once))
}

func TestParseDateTime(t *testing.T) {
	assert.Equal(t, "2024-03-15T10:30:00Z", ParseDateTime("2024-03-15T10:30:00Z"))
	assert.Equal(t, "2024-03-15T10:30:00Z", ParseDateTime("2024-03-15 10:30:00"))
	assert.Equal(t, "2024-03-15T00:00:00Z", ParseDateTime("2024-03-15"))
	assert.Equal(t, "", ParseDateTime("soon"))
}

func TestNormalizePhone(t *testing.T) {
	examples := []struct {
		in       string
		expected string
	}{
		{"5551234567", "(555) 123-4567"},
		{"555-123-4567", "(555) 123-4567"},
		{"(555) 123 4567", "(555) 123-4567"},
		{"555.123.4567", "(555) 123-4567"},
		{"15551234567", "+1 (555) 123-4567"},
		{"+1 555 123 4567", "+1 (555) 123-4567"},
		{"+44 20 7946 0958", "+442079460958"},
		{"12345", "12345"},
		{"", ""},
	}
	for _, ex := range examples {
		assert.Equal(t, ex.expected, NormalizePhone(ex.in), "NormalizePhone(%q)", ex.in)
	}
}

func TestNormalizePhoneIsIdempotent(t *testing.T) {
	once := NormalizePhone("555-123-4567")
	assert.Equal(t, once, NormalizePhone(once))
}

func TestNormalizeUsState(t *testing.T) {
	assert.Equal(t, "CA", NormalizeUsState("California"))
	assert.Equal(t, "CA", NormalizeUsState("california"))
	assert.Equal(t, "CA", NormalizeUsState("ca"))
	assert.Equal(t, "NY", NormalizeUsState(" new york "))
	assert.Equal(t, "DC", NormalizeUsState("District of Columbia"))
	// unknown values pass through untouched
	assert.Equal(t, "Ontario", NormalizeUsState("Ontario"))
	assert.Equal(t, "zz", NormalizeUsState("zz"))
	assert.Equal(t, "", NormalizeUsState("  "))
}

func TestParseNumber(t *testing.T) {
	examples := []struct {
		in       string
		expected float64
	}{
		{"42", 42},
		{"1,250.75", 1250.75},
		{"$1,000", 1000},
		{"€50", 50},
		{"-3.5", -3.5},
		{" 7 ", 7},
	}
	for _, ex := range examples {
		got := ParseNumber(ex.in)
		if assert.NotNil(t, got, "ParseNumber(%q)", ex.in) {
			assert.Equal(t, ex.expected, *got)
		}
	}

	assert.Nil(t, ParseNumber(""))
	assert.Nil(t, ParseNumber("abc"))
	assert.Nil(t, ParseNumber("1.2.3"))
}

func TestParseBool(t *testing.T) {
	for _, in := range []string{"true", "TRUE", "Yes", "1", "y", "on"} {
		assert.True(t, ParseBool(in), "ParseBool(%q)", in)
	}
	for _, in := range []string{"false", "no", "0", "", "maybe"} {
		assert.False(t, ParseBool(in), "ParseBool(%q)", in)
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "john.doe@acme.com", NormalizeEmail(" John.Doe@ACME.com "))
	assert.True(t, IsLikelyEmail("a@b.com"))
	assert.False(t, IsLikelyEmail("not-an-email"))
	assert.False(t, IsLikelyEmail("@b.com"))
	assert.False(t, IsLikelyEmail("a@"))
	assert.False(t, IsLikelyEmail("a@b@c"))
}

func TestSplitEmailList(t *testing.T) {
	assert.Equal(t,
		[]string{"a@x.com", "b@x.com", "c@x.com"},
		SplitEmailList("A@x.com; b@x.com ,c@x.com;"))
	assert.Empty(t, SplitEmailList(" ; , "))
}

func TestCleanString(t *testing.T) {
	assert.Nil(t, CleanString("   "))
	got := CleanString("  hello ")
	if assert.NotNil(t, got) {
		assert.Equal(t, "hello", *got)
	}
}

func TestClosestMatch(t *testing.T) {
	candidates := []string{"Surveillance Report", "Client Meeting", "Evidence Review"}

	match, score, ok := ClosestMatch("surveillance report", candidates)
	assert.True(t, ok)
	assert.Equal(t, "Surveillance Report", match)
	assert.Equal(t, 1.0, score)

	match, _, ok = ClosestMatch("Surveilance Report", candidates)
	assert.True(t, ok)
	assert.Equal(t, "Surveillance Report", match)

	_, _, ok = ClosestMatch("Background Check", candidates)
	assert.False(t, ok)

	_, _, ok = ClosestMatch("", candidates)
	assert.False(t, ok)
	_, _, ok = ClosestMatch("anything", nil)
	assert.False(t, ok)
}

func TestStringWithoutBom(t *testing.T) {
	assert.Equal(t, "name,email", StringWithoutBom("\xef\xbb\xbfname,email"))
	assert.Equal(t, "name,email", StringWithoutBom("name,email"))
}
