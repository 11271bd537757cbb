package demon

import (
	"fmt"

	"github.com/riskibarqy/demonlist/internal/domain/listerr"
)

// Demon is a ranked achievement entry. Position 0 means the demon holds no
// place on the live list.
type Demon struct {
	ID               int64
	Name             string
	Position         int
	RequiredProgress int
	Video            string
	PublisherID      int64
	VerifierID       int64
	Legacy           bool
}

func (d Demon) Ranked() bool {
	return d.Position > 0
}

// Creator links a player to a demon they helped build.
type Creator struct {
	DemonID  int64
	PlayerID int64
}

// Thresholds splits the ranked list into main, extended and legacy sections.
type Thresholds struct {
	ListSize         int
	ExtendedListSize int
}

func DefaultThresholds() Thresholds {
	return Thresholds{ListSize: 75, ExtendedListSize: 150}
}

func (t Thresholds) Validate() error {
	if t.ListSize <= 0 {
		return fmt.Errorf("list size must be greater than zero")
	}
	if t.ExtendedListSize < t.ListSize {
		return fmt.Errorf("extended list size must be >= list size")
	}
	return nil
}

// IsExtended reports whether position falls after the main list but still
// inside the maintained section.
func (t Thresholds) IsExtended(position int) bool {
	return position > t.ListSize && position <= t.ExtendedListSize
}

func (t Thresholds) IsLegacy(position int) bool {
	return position <= 0 || position > t.ExtendedListSize
}

// ValidateRequirement checks a minimal record progress.
func ValidateRequirement(requirement int) error {
	if requirement < 0 || requirement > 100 {
		return listerr.InvalidRequirement()
	}
	return nil
}

// Ref is the short form used when reporting ambiguous name lookups.
func (d Demon) Ref() listerr.DemonRef {
	return listerr.DemonRef{ID: d.ID, Name: d.Name, Position: d.Position}
}
