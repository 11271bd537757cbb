package memory

import (
	"time"

	"github.com/riskibarqy/demonlist/internal/domain/demon"
	"github.com/riskibarqy/demonlist/internal/domain/history"
	"github.com/riskibarqy/demonlist/internal/domain/nationality"
	"github.com/riskibarqy/demonlist/internal/domain/player"
)

// Seed is the initial content of a Store. Demons are placed in slice order,
// each through an insertion event at SeededAt.
type Seed struct {
	Nationalities []nationality.Nationality
	Subdivisions  []nationality.Subdivision
	Players       []player.Player
	Demons        []demon.Demon
	Thresholds    demon.Thresholds
	SeededAt      time.Time
}

// EffectiveThresholds falls back to the default list sizes when none were
// configured.
func (s Seed) EffectiveThresholds() demon.Thresholds {
	if s.Thresholds == (demon.Thresholds{}) {
		return demon.DefaultThresholds()
	}
	return s.Thresholds
}

func (s Seed) build() *dataset {
	d := newDataset()
	for _, n := range s.Nationalities {
		d.nationalities[n.ISOCode] = n
	}
	for _, sub := range s.Subdivisions {
		d.subdivisions[subdivisionKey(sub.NationCode, sub.ISOCode)] = sub
	}
	for _, p := range s.Players {
		d.players[p.ID] = p
		d.seq.player = max(d.seq.player, p.ID)
	}

	thresholds := s.EffectiveThresholds()
	for i, item := range s.Demons {
		d.seq.demon++
		item.ID = d.seq.demon
		item.Position = i + 1
		item.Legacy = thresholds.IsLegacy(item.Position)
		d.demons[item.ID] = item

		d.seq.event++
		d.events = append(d.events, history.Event{
			ID:          d.seq.event,
			DemonID:     item.ID,
			NewPosition: item.Position,
			At:          s.SeededAt,
		})
	}
	return d
}

// DefaultSeed is the dataset served by the memory driver.
func DefaultSeed(thresholds demon.Thresholds, seededAt time.Time) Seed {
	return Seed{
		Nationalities: []nationality.Nationality{
			{ISOCode: "DE", Name: "Germany"},
			{ISOCode: "US", Name: "United States"},
			{ISOCode: "CA", Name: "Canada"},
			{ISOCode: "ID", Name: "Indonesia"},
		},
		Subdivisions: []nationality.Subdivision{
			{NationCode: "DE", ISOCode: "BY", Name: "Bavaria"},
			{NationCode: "US", ISOCode: "CA", Name: "California"},
			{NationCode: "ID", ISOCode: "JK", Name: "Jakarta"},
		},
		Players: []player.Player{
			{ID: 1, Name: "Riot", Nationality: "US"},
			{ID: 2, Name: "Cyclic", Nationality: "DE", Subdivision: "BY"},
			{ID: 3, Name: "Knobbelboy"},
			{ID: 4, Name: "Zoink"},
			{ID: 5, Name: "Trick", Nationality: "CA"},
		},
		Demons: []demon.Demon{
			{Name: "Tartarus", RequiredProgress: 51, PublisherID: 2, VerifierID: 4, Video: "https://www.youtube.com/watch?v=Ww0K2kxyH7E"},
			{Name: "Kenos", RequiredProgress: 52, PublisherID: 3, VerifierID: 3},
			{Name: "Sonic Wave", RequiredProgress: 55, PublisherID: 2, VerifierID: 2},
			{Name: "Bloodbath", RequiredProgress: 57, PublisherID: 1, VerifierID: 1, Video: "https://www.youtube.com/watch?v=7yIDa9ZgH3A"},
			{Name: "Yatagarasu", RequiredProgress: 54, PublisherID: 5, VerifierID: 5},
		},
		Thresholds: thresholds,
		SeededAt:   seededAt,
	}
}
