package listerr

import (
	"fmt"
	"strings"

	crerr "github.com/cockroachdb/errors"
)

// Kind enumerates every failure the demonlist can report. The set is closed:
// Code, Message and Reason switch over all kinds and tests assert that none
// falls through to the default branch.
type Kind int

const (
	KindInternalServerError Kind = iota + 1
	KindDatabaseError
	KindDatabaseConnectionError
	KindInvalidInput
	KindUnauthorized

	KindMalformedVideoURL
	KindBannedFromSubmissions
	KindSubmitterNotFound
	KindNoteNotFound
	KindCreatorNotFound
	KindNationalityNotFound
	KindSubdivisionNotFound
	KindPlayerNotFound
	KindPlayerNotFoundName
	KindDemonNotFound
	KindDemonNotFoundName
	KindDemonNotFoundPosition
	KindRecordNotFound
	KindCreatorExists
	KindDuplicateVideo
	KindNoNationSet
	KindInvalidRequirement
	KindInvalidPosition
	KindInvalidProgress
	KindSubmissionExists
	KindPlayerBanned
	KindSubmitLegacy
	KindNon100Extended
	KindInvalidURLScheme
	KindURLAuthenticated
	KindUnsupportedVideoHost
	KindInvalidURLFormat
	KindNotYouTube
	KindDemonNameNotUnique
	KindNoteEmpty
	KindRecordResolved

	kindSentinel
)

// Kinds returns every declared kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, int(kindSentinel)-1)
	for k := KindInternalServerError; k < kindSentinel; k++ {
		out = append(out, k)
	}
	return out
}

// DemonRef is the minimal demon description attached to DemonNameNotUnique.
type DemonRef struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Position int    `json:"position,omitempty"`
}

// Error is the single error type of the demonlist domain. Only the fields
// relevant to Kind are populated.
type Error struct {
	Kind Kind

	ID          int64
	OtherID     int64
	Name        string
	Subdivision string
	Position    int
	Maximal     int
	Requirement int
	Status      string
	Expected    string
	Demons      []DemonRef
	Detail      string

	cause error
}

func (e *Error) Error() string {
	return e.Message()
}

// Unwrap exposes the underlying storage failure for logging. It is never
// rendered to callers.
func (e *Error) Unwrap() error {
	return e.cause
}

// Code is the stable, consumer-facing error code.
func (e *Error) Code() int {
	switch e.Kind {
	case KindInvalidInput:
		return 40000
	case KindMalformedVideoURL:
		return 40001
	case KindUnauthorized:
		return 40100
	case KindBannedFromSubmissions:
		return 40304
	case KindSubmitterNotFound, KindNoteNotFound, KindCreatorNotFound, KindNationalityNotFound,
		KindSubdivisionNotFound, KindPlayerNotFound, KindPlayerNotFoundName, KindDemonNotFound,
		KindDemonNotFoundName, KindDemonNotFoundPosition, KindRecordNotFound:
		return 40401
	case KindCreatorExists:
		return 40905
	case KindDuplicateVideo:
		return 40906
	case KindNoNationSet:
		return 40907
	case KindInvalidRequirement:
		return 42212
	case KindInvalidPosition:
		return 42213
	case KindInvalidProgress:
		return 42215
	case KindSubmissionExists:
		return 42217
	case KindPlayerBanned:
		return 42218
	case KindSubmitLegacy:
		return 42219
	case KindNon100Extended:
		return 42220
	case KindInvalidURLScheme:
		return 42222
	case KindURLAuthenticated:
		return 42223
	case KindUnsupportedVideoHost:
		return 42224
	case KindInvalidURLFormat:
		return 42225
	case KindNotYouTube:
		return 42226
	case KindDemonNameNotUnique:
		return 42228
	case KindNoteEmpty:
		return 42230
	case KindRecordResolved:
		return 42232
	case KindInternalServerError:
		return 50000
	case KindDatabaseError:
		return 50003
	case KindDatabaseConnectionError:
		return 50005
	default:
		return 0
	}
}

// HTTPStatus derives the transport status from the first three code digits.
func (e *Error) HTTPStatus() int {
	code := e.Code()
	if code == 0 {
		return 500
	}
	return code / 100
}

// Message renders the human readable description of the failure.
func (e *Error) Message() string {
	switch e.Kind {
	case KindInternalServerError:
		return "The server encountered an internal error. Please try again later"
	case KindDatabaseError:
		return "The server encountered an error while accessing the database"
	case KindDatabaseConnectionError:
		return "The server could not connect to its database. Please try again later"
	case KindInvalidInput:
		if e.Detail != "" {
			return "Invalid request: " + e.Detail
		}
		return "Invalid request"
	case KindUnauthorized:
		return "The request requires authorization"
	case KindMalformedVideoURL:
		return "Malformed video URL"
	case KindBannedFromSubmissions:
		return "You are banned from submitting records to the demonlist!"
	case KindSubmitterNotFound:
		return fmt.Sprintf("No submitter with id %d found", e.ID)
	case KindNoteNotFound:
		return fmt.Sprintf("No note with id %d found on record with id %d", e.ID, e.OtherID)
	case KindCreatorNotFound:
		return fmt.Sprintf("Player with id %d is no creator of demon with id %d", e.OtherID, e.ID)
	case KindNationalityNotFound:
		return fmt.Sprintf("No nationality with iso code %s found", e.Name)
	case KindSubdivisionNotFound:
		return fmt.Sprintf("No subdivision with code %s found in nation %s", e.Subdivision, e.Name)
	case KindPlayerNotFound:
		return fmt.Sprintf("No player with id %d found", e.ID)
	case KindPlayerNotFoundName:
		return fmt.Sprintf("No player with name %s found", e.Name)
	case KindDemonNotFound:
		return fmt.Sprintf("No demon with id %d found", e.ID)
	case KindDemonNotFoundName:
		return fmt.Sprintf("No demon with name %s found", e.Name)
	case KindDemonNotFoundPosition:
		return fmt.Sprintf("No demon at position %d found", e.Position)
	case KindRecordNotFound:
		return fmt.Sprintf("No record with id %d found", e.ID)
	case KindCreatorExists:
		return "This player is already registered as a creator on this demon"
	case KindDuplicateVideo:
		return fmt.Sprintf("This video is already used by record #%d", e.ID)
	case KindNoNationSet:
		return "Attempt to set subdivision without nation"
	case KindInvalidRequirement:
		return "Record requirement needs to be greater than -1 and smaller than 101"
	case KindInvalidPosition:
		return fmt.Sprintf("Demon position needs to be greater than or equal to 1 and smaller than or equal to %d", e.Maximal)
	case KindInvalidProgress:
		return fmt.Sprintf("Record progress must lie between %d and 100%%!", e.Requirement)
	case KindSubmissionExists:
		return fmt.Sprintf("This record is already %s", strings.ReplaceAll(e.Status, "_", " "))
	case KindPlayerBanned:
		return "The given player is banned and thus cannot have non-rejected records on the list!"
	case KindSubmitLegacy:
		return "You cannot submit records for legacy demons"
	case KindNon100Extended:
		return "Only 100% records can be submitted for the extended section of the list"
	case KindInvalidURLScheme:
		return "Invalid URL scheme. Only 'http' and 'https' are supported"
	case KindURLAuthenticated:
		return "The provided URL contains authentication information. For security reasons it has been rejected"
	case KindUnsupportedVideoHost:
		return "The given video host is not supported. Supported are 'youtube', 'vimeo', 'everyplay', 'twitch' and 'bilibili'"
	case KindInvalidURLFormat:
		return fmt.Sprintf("The given URL does not lead to a video. The URL format for the given host has to be '%s'", e.Expected)
	case KindNotYouTube:
		return "The given URL is no YouTube URL"
	case KindDemonNameNotUnique:
		return "There are multiple demons with the given name"
	case KindNoteEmpty:
		return "Notes mustn't be empty!"
	case KindRecordResolved:
		return fmt.Sprintf("This record is already %s and cannot change its status", e.Status)
	default:
		return "unknown error"
	}
}

// Reason is a short camelCase identifier used in API error envelopes and
// metric labels.
func (e *Error) Reason() string {
	switch e.Kind {
	case KindInternalServerError:
		return "internalError"
	case KindDatabaseError:
		return "databaseError"
	case KindDatabaseConnectionError:
		return "databaseConnectionError"
	case KindInvalidInput:
		return "invalidInput"
	case KindUnauthorized:
		return "unauthorized"
	case KindMalformedVideoURL:
		return "malformedVideoUrl"
	case KindBannedFromSubmissions:
		return "bannedFromSubmissions"
	case KindSubmitterNotFound:
		return "submitterNotFound"
	case KindNoteNotFound:
		return "noteNotFound"
	case KindCreatorNotFound:
		return "creatorNotFound"
	case KindNationalityNotFound:
		return "nationalityNotFound"
	case KindSubdivisionNotFound:
		return "subdivisionNotFound"
	case KindPlayerNotFound, KindPlayerNotFoundName:
		return "playerNotFound"
	case KindDemonNotFound, KindDemonNotFoundName, KindDemonNotFoundPosition:
		return "demonNotFound"
	case KindRecordNotFound:
		return "recordNotFound"
	case KindCreatorExists:
		return "creatorExists"
	case KindDuplicateVideo:
		return "duplicateVideo"
	case KindNoNationSet:
		return "noNationSet"
	case KindInvalidRequirement:
		return "invalidRequirement"
	case KindInvalidPosition:
		return "invalidPosition"
	case KindInvalidProgress:
		return "invalidProgress"
	case KindSubmissionExists:
		return "submissionExists"
	case KindPlayerBanned:
		return "playerBanned"
	case KindSubmitLegacy:
		return "submitLegacy"
	case KindNon100Extended:
		return "non100Extended"
	case KindInvalidURLScheme:
		return "invalidUrlScheme"
	case KindURLAuthenticated:
		return "urlAuthenticated"
	case KindUnsupportedVideoHost:
		return "unsupportedVideoHost"
	case KindInvalidURLFormat:
		return "invalidUrlFormat"
	case KindNotYouTube:
		return "notYouTube"
	case KindDemonNameNotUnique:
		return "demonNameNotUnique"
	case KindNoteEmpty:
		return "noteEmpty"
	case KindRecordResolved:
		return "recordResolved"
	default:
		return "unknown"
	}
}

// Details returns the structured variant data rendered alongside the code.
func (e *Error) Details() map[string]any {
	switch e.Kind {
	case KindInvalidPosition:
		return map[string]any{"maximal": e.Maximal}
	case KindInvalidProgress:
		return map[string]any{"requirement": e.Requirement}
	case KindSubmissionExists:
		return map[string]any{"status": e.Status, "existing": e.ID}
	case KindDuplicateVideo:
		return map[string]any{"id": e.ID}
	case KindInvalidURLFormat:
		return map[string]any{"expected": e.Expected}
	case KindDemonNameNotUnique:
		return map[string]any{"demons": e.Demons}
	default:
		return nil
	}
}

// As extracts the domain error from an error chain.
func As(err error) (*Error, bool) {
	var target *Error
	if crerr.As(err, &target) {
		return target, true
	}
	return nil, false
}

// Is reports whether err carries a domain error of the given kind.
func Is(err error, kind Kind) bool {
	target, ok := As(err)
	return ok && target.Kind == kind
}

// KindOf returns the kind carried by err, or KindInternalServerError for
// errors that never went through the taxonomy.
func KindOf(err error) Kind {
	if target, ok := As(err); ok {
		return target.Kind
	}
	return KindInternalServerError
}
