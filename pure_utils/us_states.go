package pure_utils

import "strings"

var usStateCodes = map[string]string{
	"alabama": "AL", "alaska": "AK", "arizona": "AZ", "arkansas": "AR",
	"california": "CA", "colorado": "CO", "connecticut": "CT", "delaware": "DE",
	"florida": "FL", "georgia": "GA", "hawaii": "HI", "idaho": "ID",
	"illinois": "IL", "indiana": "IN", "iowa": "IA", "kansas": "KS",
	"kentucky": "KY", "louisiana": "LA", "maine": "ME", "maryland": "MD",
	"massachusetts": "MA", "michigan": "MI", "minnesota": "MN", "mississippi": "MS",
	"missouri": "MO", "montana": "MT", "nebraska": "NE", "nevada": "NV",
	"new hampshire": "NH", "new jersey": "NJ", "new mexico": "NM", "new york": "NY",
	"north carolina": "NC", "north dakota": "ND", "ohio": "OH", "oklahoma": "OK",
	"oregon": "OR", "pennsylvania": "PA", "rhode island": "RI", "south carolina": "SC",
	"south dakota": "SD", "tennessee": "TN", "texas": "TX", "utah": "UT",
	"vermont": "VT", "virginia": "VA", "washington": "WA", "west virginia": "WV",
	"wisconsin": "WI", "wyoming": "WY", "district of columbia": "DC",
	"puerto rico": "PR",
}

var validStateCodes = func() map[string]bool {
	valid := make(map[string]bool, len(usStateCodes))
	for _, code := range usStateCodes {
		valid[code] = true
	}
	return valid
}()

// NormalizeUsState accepts a valid 2-letter code as-is (uppercased) and maps
// full US state names, case-insensitively, to their code. Unknown values are
// returned trimmed but otherwise unchanged: the state field never rejects.
func NormalizeUsState(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}
	if len(trimmed) == 2 {
		upper := strings.ToUpper(trimmed)
		if validStateCodes[upper] {
			return upper
		}
		return trimmed
	}
	if code, ok := usStateCodes[strings.ToLower(trimmed)]; ok {
		return code
	}
	return trimmed
}
