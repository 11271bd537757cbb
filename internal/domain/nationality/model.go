package nationality

import "strings"

// Nationality is an ISO 3166-1 country a player may represent.
type Nationality struct {
	ISOCode string
	Name    string
}

// Subdivision is an ISO 3166-2 region of a nationality.
type Subdivision struct {
	NationCode string
	ISOCode    string
	Name       string
}

func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
