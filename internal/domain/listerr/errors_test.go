package listerr

import (
	"fmt"
	"testing"

	crerr "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryKindHasCodeMessageAndReason(t *testing.T) {
	for _, kind := range Kinds() {
		err := &Error{Kind: kind}
		assert.NotZero(t, err.Code(), "kind %d has no code", kind)
		assert.NotEqual(t, "unknown error", err.Message(), "kind %d has no message", kind)
		assert.NotEqual(t, "unknown", err.Reason(), "kind %d has no reason", kind)
	}
}

func TestCodeContract(t *testing.T) {
	tests := []struct {
		err  *Error
		code int
	}{
		{SubmitterNotFound(1), 40401},
		{NoteNotFound(1, 2), 40401},
		{CreatorNotFound(1, 2), 40401},
		{NationalityNotFound("DE"), 40401},
		{SubdivisionNotFound("DE", "BY"), 40401},
		{PlayerNotFound(1), 40401},
		{DemonNotFound(1), 40401},
		{RecordNotFound(1), 40401},
		{CreatorExists(), 40905},
		{DuplicateVideo(3), 40906},
		{NoNationSet(), 40907},
		{BannedFromSubmissions(), 40304},
		{MalformedVideoURL(), 40001},
		{InvalidRequirement(), 42212},
		{InvalidPosition(10), 42213},
		{InvalidProgress(60), 42215},
		{SubmissionExists("approved", 4), 42217},
		{PlayerBanned(), 42218},
		{SubmitLegacy(), 42219},
		{Non100Extended(), 42220},
		{InvalidURLScheme(), 42222},
		{URLAuthenticated(), 42223},
		{UnsupportedVideoHost(), 42224},
		{InvalidURLFormat("https://vimeo.com/{video_id}"), 42225},
		{NotYouTube(), 42226},
		{DemonNameNotUnique(nil), 42228},
		{NoteEmpty(), 42230},
	}

	for _, tt := range tests {
		t.Run(tt.err.Reason(), func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code())
			assert.Equal(t, tt.code/100, tt.err.HTTPStatus())
		})
	}
}

func TestMessagesCarryVariantData(t *testing.T) {
	assert.Equal(t,
		"Demon position needs to be greater than or equal to 1 and smaller than or equal to 76",
		InvalidPosition(76).Error(),
	)
	assert.Equal(t, "Record progress must lie between 55 and 100%!", InvalidProgress(55).Error())
	assert.Equal(t, "This record is already under consideration", SubmissionExists("under_consideration", 9).Error())
	assert.Equal(t, "This video is already used by record #12", DuplicateVideo(12).Error())
}

func TestAsThroughWrapping(t *testing.T) {
	wrapped := crerr.Wrap(fmt.Errorf("outer: %w", SubmitLegacy()), "submit record")

	got, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, KindSubmitLegacy, got.Kind)
	assert.True(t, Is(wrapped, KindSubmitLegacy))
	assert.False(t, Is(wrapped, KindPlayerBanned))
	assert.Equal(t, KindInternalServerError, KindOf(fmt.Errorf("plain")))
}

func TestStorageCauseIsHiddenFromMessage(t *testing.T) {
	cause := fmt.Errorf("pq: relation \"demons\" does not exist")
	err := Database(cause)

	assert.NotContains(t, err.Error(), "relation")
	assert.ErrorContains(t, crerr.UnwrapOnce(err), "relation")
}
