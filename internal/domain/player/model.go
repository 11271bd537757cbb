package player

import (
	"fmt"
	"strings"
)

// Player is a person credited with records, verifications or publications.
type Player struct {
	ID          int64
	Name        string
	Nationality string
	Subdivision string
	Banned      bool
	LinkBanned  bool
}

// NormalizeName trims the surrounding whitespace used inconsistently by
// submitters.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}

func (p Player) Validate() error {
	if NormalizeName(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	if p.Subdivision != "" && p.Nationality == "" {
		return fmt.Errorf("player subdivision requires a nationality")
	}
	return nil
}
