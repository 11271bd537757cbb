package listerr

import crerr "github.com/cockroachdb/errors"

func newKind(kind Kind) *Error {
	return &Error{Kind: kind}
}

func Internal(cause error) *Error {
	return &Error{Kind: KindInternalServerError, cause: crerr.WithStack(cause)}
}

func Database(cause error) *Error {
	return &Error{Kind: KindDatabaseError, cause: crerr.WithStack(cause)}
}

func DatabaseConnection(cause error) *Error {
	return &Error{Kind: KindDatabaseConnectionError, cause: crerr.WithStack(cause)}
}

func InvalidInput(detail string) *Error {
	return &Error{Kind: KindInvalidInput, Detail: detail}
}

func Unauthorized() *Error { return newKind(KindUnauthorized) }

func MalformedVideoURL() *Error     { return newKind(KindMalformedVideoURL) }
func BannedFromSubmissions() *Error { return newKind(KindBannedFromSubmissions) }

func SubmitterNotFound(id int64) *Error {
	return &Error{Kind: KindSubmitterNotFound, ID: id}
}

func NoteNotFound(noteID, recordID int64) *Error {
	return &Error{Kind: KindNoteNotFound, ID: noteID, OtherID: recordID}
}

func CreatorNotFound(demonID, playerID int64) *Error {
	return &Error{Kind: KindCreatorNotFound, ID: demonID, OtherID: playerID}
}

func NationalityNotFound(isoCode string) *Error {
	return &Error{Kind: KindNationalityNotFound, Name: isoCode}
}

func SubdivisionNotFound(nationCode, subdivisionCode string) *Error {
	return &Error{Kind: KindSubdivisionNotFound, Name: nationCode, Subdivision: subdivisionCode}
}

func PlayerNotFound(id int64) *Error {
	return &Error{Kind: KindPlayerNotFound, ID: id}
}

func PlayerNotFoundName(name string) *Error {
	return &Error{Kind: KindPlayerNotFoundName, Name: name}
}

func DemonNotFound(id int64) *Error {
	return &Error{Kind: KindDemonNotFound, ID: id}
}

func DemonNotFoundName(name string) *Error {
	return &Error{Kind: KindDemonNotFoundName, Name: name}
}

func DemonNotFoundPosition(position int) *Error {
	return &Error{Kind: KindDemonNotFoundPosition, Position: position}
}

func RecordNotFound(id int64) *Error {
	return &Error{Kind: KindRecordNotFound, ID: id}
}

func CreatorExists() *Error { return newKind(KindCreatorExists) }

func DuplicateVideo(recordID int64) *Error {
	return &Error{Kind: KindDuplicateVideo, ID: recordID}
}

func NoNationSet() *Error        { return newKind(KindNoNationSet) }
func InvalidRequirement() *Error { return newKind(KindInvalidRequirement) }

// InvalidPosition carries the maximal position the request could have used.
func InvalidPosition(maximal int) *Error {
	return &Error{Kind: KindInvalidPosition, Maximal: maximal}
}

func InvalidProgress(requirement int) *Error {
	return &Error{Kind: KindInvalidProgress, Requirement: requirement}
}

// SubmissionExists reports the status and id of the record already covering
// the submitted (player, demon) pair.
func SubmissionExists(status string, existing int64) *Error {
	return &Error{Kind: KindSubmissionExists, Status: status, ID: existing}
}

func PlayerBanned() *Error         { return newKind(KindPlayerBanned) }
func SubmitLegacy() *Error         { return newKind(KindSubmitLegacy) }
func Non100Extended() *Error       { return newKind(KindNon100Extended) }
func InvalidURLScheme() *Error     { return newKind(KindInvalidURLScheme) }
func URLAuthenticated() *Error     { return newKind(KindURLAuthenticated) }
func UnsupportedVideoHost() *Error { return newKind(KindUnsupportedVideoHost) }

func InvalidURLFormat(expected string) *Error {
	return &Error{Kind: KindInvalidURLFormat, Expected: expected}
}

func NotYouTube() *Error { return newKind(KindNotYouTube) }

func DemonNameNotUnique(demons []DemonRef) *Error {
	return &Error{Kind: KindDemonNameNotUnique, Demons: append([]DemonRef(nil), demons...)}
}

func NoteEmpty() *Error { return newKind(KindNoteEmpty) }

func RecordResolved(status string) *Error {
	return &Error{Kind: KindRecordResolved, Status: status}
}
