package httpapi

import (
	"time"

	"github.com/riskibarqy/demonlist/internal/domain/demon"
	"github.com/riskibarqy/demonlist/internal/domain/note"
	"github.com/riskibarqy/demonlist/internal/domain/player"
	"github.com/riskibarqy/demonlist/internal/domain/record"
	"github.com/riskibarqy/demonlist/internal/domain/submitter"
	"github.com/riskibarqy/demonlist/internal/domain/video"
	"github.com/riskibarqy/demonlist/internal/usecase"
)

type createDemonRequest struct {
	Name        string  `json:"name" validate:"required,max=150"`
	Position    int     `json:"position" validate:"required,gte=1"`
	Requirement int     `json:"requirement"`
	Video       string  `json:"video" validate:"omitempty,max=200"`
	PublisherID int64   `json:"publisher_id" validate:"required,gt=0"`
	VerifierID  int64   `json:"verifier_id" validate:"required,gt=0"`
	CreatorIDs  []int64 `json:"creator_ids" validate:"omitempty,dive,gt=0"`
}

type moveDemonRequest struct {
	Position int `json:"position" validate:"required,gte=1"`
}

type updateRequirementRequest struct {
	Requirement *int `json:"requirement" validate:"required"`
}

type addCreatorRequest struct {
	PlayerID int64 `json:"player_id" validate:"required,gt=0"`
}

type submitRecordRequest struct {
	Player   string `json:"player" validate:"required,max=100"`
	DemonID  int64  `json:"demon_id" validate:"required,gt=0"`
	Progress int    `json:"progress"`
	Video    string `json:"video" validate:"omitempty,max=200"`
	Note     string `json:"note" validate:"omitempty,max=1000"`
}

type reviewRecordRequest struct {
	submitRecordRequest
	Status string `json:"status" validate:"required,oneof=pending under_consideration approved rejected"`
}

type updateRecordStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending under_consideration approved rejected"`
}

type addNoteRequest struct {
	Content string `json:"content" validate:"max=1000"`
}

type updatePlayerRequest struct {
	Banned      *bool   `json:"banned"`
	LinkBanned  *bool   `json:"link_banned"`
	Nationality *string `json:"nationality" validate:"omitempty,max=2"`
	Subdivision *string `json:"subdivision" validate:"omitempty,max=3"`
}

type updateSubmitterRequest struct {
	Banned *bool `json:"banned" validate:"required"`
}

type playerRefDTO struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Banned bool   `json:"banned"`
}

type playerDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Nationality string `json:"nationality,omitempty"`
	Subdivision string `json:"subdivision,omitempty"`
	Banned      bool   `json:"banned"`
	LinkBanned  bool   `json:"link_banned"`
}

type demonDTO struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Position    int            `json:"position"`
	Requirement int            `json:"requirement"`
	Video       string         `json:"video,omitempty"`
	Legacy      bool           `json:"legacy"`
	Publisher   *playerRefDTO  `json:"publisher,omitempty"`
	Verifier    *playerRefDTO  `json:"verifier,omitempty"`
	Creators    []playerRefDTO `json:"creators,omitempty"`
}

type overviewDemonDTO struct {
	ID        int64  `json:"id"`
	Position  int    `json:"position"`
	Name      string `json:"name"`
	Publisher string `json:"publisher"`
	Video     string `json:"video,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

type overviewDTO struct {
	When   *time.Time         `json:"when,omitempty"`
	Demons []overviewDemonDTO `json:"demons"`
}

type rankedDemonDTO struct {
	Position int    `json:"position"`
	ID       int64  `json:"id"`
	Name     string `json:"name"`
}

type snapshotDTO struct {
	At     *time.Time       `json:"at,omitempty"`
	Demons []rankedDemonDTO `json:"demons"`
}

type noteDTO struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type recordDTO struct {
	ID        int64     `json:"id"`
	DemonID   int64     `json:"demon_id"`
	PlayerID  int64     `json:"player_id"`
	Progress  int       `json:"progress"`
	Video     string    `json:"video,omitempty"`
	VideoHost string    `json:"video_host,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	Notes     []noteDTO `json:"notes,omitempty"`
}

type submitterDTO struct {
	ID     int64 `json:"id"`
	Banned bool  `json:"banned"`
}

func playerRefToDTO(v player.Player) playerRefDTO {
	return playerRefDTO{ID: v.ID, Name: v.Name, Banned: v.Banned}
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{
		ID:          v.ID,
		Name:        v.Name,
		Nationality: v.Nationality,
		Subdivision: v.Subdivision,
		Banned:      v.Banned,
		LinkBanned:  v.LinkBanned,
	}
}

func demonToDTO(v demon.Demon) demonDTO {
	return demonDTO{
		ID:          v.ID,
		Name:        v.Name,
		Position:    v.Position,
		Requirement: v.RequiredProgress,
		Video:       v.Video,
		Legacy:      v.Legacy,
	}
}

// demonDetailToDTO hides the verification video when the verifier is link
// banned.
func demonDetailToDTO(v usecase.DemonDetail) demonDTO {
	out := demonToDTO(v.Demon)
	if v.Verifier.LinkBanned {
		out.Video = ""
	}
	publisher := playerRefToDTO(v.Publisher)
	verifier := playerRefToDTO(v.Verifier)
	out.Publisher = &publisher
	out.Verifier = &verifier
	out.Creators = make([]playerRefDTO, 0, len(v.Creators))
	for _, creator := range v.Creators {
		out.Creators = append(out.Creators, playerRefToDTO(creator))
	}
	return out
}

func overviewToDTO(v usecase.Overview) overviewDTO {
	out := overviewDTO{When: v.When, Demons: make([]overviewDemonDTO, 0, len(v.Demons))}
	for _, item := range v.Demons {
		out.Demons = append(out.Demons, overviewDemonDTO{
			ID:        item.ID,
			Position:  item.Position,
			Name:      item.Name,
			Publisher: item.Publisher,
			Video:     item.Video,
			Thumbnail: item.Thumbnail,
		})
	}
	return out
}

func snapshotToDTO(v usecase.Snapshot) snapshotDTO {
	out := snapshotDTO{At: v.At, Demons: make([]rankedDemonDTO, 0, len(v.Demons))}
	for _, item := range v.Demons {
		out.Demons = append(out.Demons, rankedDemonDTO{
			Position: item.Position,
			ID:       item.Demon.ID,
			Name:     item.Demon.Name,
		})
	}
	return out
}

func noteToDTO(v note.Note) noteDTO {
	return noteDTO{ID: v.ID, Content: v.Content, CreatedAt: v.CreatedAt}
}

func recordToDTO(v record.Record, notes []note.Note) recordDTO {
	out := recordDTO{
		ID:        v.ID,
		DemonID:   v.DemonID,
		PlayerID:  v.PlayerID,
		Progress:  v.Progress,
		Video:     v.Video,
		Status:    string(v.Status),
		CreatedAt: v.CreatedAt,
	}
	if host, ok := video.HostOf(v.Video); ok {
		out.VideoHost = string(host)
	}
	for _, item := range notes {
		out.Notes = append(out.Notes, noteToDTO(item))
	}
	return out
}

func submitterToDTO(v submitter.Submitter) submitterDTO {
	return submitterDTO{ID: v.ID, Banned: v.Banned}
}
