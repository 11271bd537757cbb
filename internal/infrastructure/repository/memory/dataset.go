package memory

import (
	"maps"
	"slices"

	"github.com/riskibarqy/demonlist/internal/domain/demon"
	"github.com/riskibarqy/demonlist/internal/domain/history"
	"github.com/riskibarqy/demonlist/internal/domain/nationality"
	"github.com/riskibarqy/demonlist/internal/domain/note"
	"github.com/riskibarqy/demonlist/internal/domain/player"
	"github.com/riskibarqy/demonlist/internal/domain/record"
	"github.com/riskibarqy/demonlist/internal/domain/submitter"
	"github.com/riskibarqy/demonlist/internal/domain/txn"
)

type sequences struct {
	demon     int64
	player    int64
	submitter int64
	record    int64
	note      int64
	event     int64
}

type dataset struct {
	demons        map[int64]demon.Demon
	creators      map[demon.Creator]struct{}
	players       map[int64]player.Player
	nationalities map[string]nationality.Nationality
	subdivisions  map[string]nationality.Subdivision
	submitters    map[int64]submitter.Submitter
	records       map[int64]record.Record
	notes         map[int64]note.Note
	events        []history.Event

	seq sequences
}

func newDataset() *dataset {
	return &dataset{
		demons:        make(map[int64]demon.Demon),
		creators:      make(map[demon.Creator]struct{}),
		players:       make(map[int64]player.Player),
		nationalities: make(map[string]nationality.Nationality),
		subdivisions:  make(map[string]nationality.Subdivision),
		submitters:    make(map[int64]submitter.Submitter),
		records:       make(map[int64]record.Record),
		notes:         make(map[int64]note.Note),
	}
}

// clone copies every table. Entities are plain values so shallow map copies
// are enough.
func (d *dataset) clone() *dataset {
	return &dataset{
		demons:        maps.Clone(d.demons),
		creators:      maps.Clone(d.creators),
		players:       maps.Clone(d.players),
		nationalities: maps.Clone(d.nationalities),
		subdivisions:  maps.Clone(d.subdivisions),
		submitters:    maps.Clone(d.submitters),
		records:       maps.Clone(d.records),
		notes:         maps.Clone(d.notes),
		events:        slices.Clone(d.events),
		seq:           d.seq,
	}
}

func (d *dataset) repositories(readOnly bool) txn.Repositories {
	u := unit{data: d, readOnly: readOnly}
	return txn.Repositories{
		Demons:        &DemonRepository{unit: u},
		Players:       &PlayerRepository{unit: u},
		Nationalities: &NationalityRepository{unit: u},
		Submitters:    &SubmitterRepository{unit: u},
		Records:       &RecordRepository{unit: u},
		Notes:         &NoteRepository{unit: u},
		History:       &HistoryRepository{unit: u},
	}
}

// unit binds repositories to the dataset of one unit of work.
type unit struct {
	data     *dataset
	readOnly bool
}

func (u unit) writable() error {
	if u.readOnly {
		return errReadOnly
	}
	return nil
}

func subdivisionKey(nationCode, isoCode string) string {
	return nationCode + "::" + isoCode
}
