package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoroteev/go-coachly/internal/models"
)

func validCreateParams() CreateReminderParams {
	return CreateReminderParams{
		UserID:             "user-1",
		Title:              "Content Planning",
		Date:               "2024-01-15",
		Time:               "09:00",
		NotificationMethod: models.NotificationMethodEmail,
		ReminderType:       models.ReminderTypeContentCreation,
	}
}

func TestValidateCreateReminderParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*CreateReminderParams)
		wantErr error
	}{
		{
			name:   "valid",
			mutate: func(*CreateReminderParams) {},
		},
		{
			name:    "empty title",
			mutate:  func(p *CreateReminderParams) { p.Title = "   " },
			wantErr: ErrReminderTitleRequired,
		},
		{
			name:    "malformed date",
			mutate:  func(p *CreateReminderParams) { p.Date = "15/01/2024" },
			wantErr: ErrReminderDateTimeInvalid,
		},
		{
			name:    "missing time",
			mutate:  func(p *CreateReminderParams) { p.Time = "" },
			wantErr: ErrReminderDateTimeInvalid,
		},
		{
			name:    "unknown notification method",
			mutate:  func(p *CreateReminderParams) { p.NotificationMethod = "carrier-pigeon" },
			wantErr: ErrInvalidNotificationMethod,
		},
		{
			name:    "unknown reminder type",
			mutate:  func(p *CreateReminderParams) { p.ReminderType = "someday" },
			wantErr: ErrInvalidReminderType,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			params := validCreateParams()
			tt.mutate(&params)

			err := validateCreateReminderParams(&params)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateCreateReminderParamsTrimsTitle(t *testing.T) {
	t.Parallel()

	params := validCreateParams()
	params.Title = "  Weekly Goal Review  "

	require.NoError(t, validateCreateReminderParams(&params))
	assert.Equal(t, "Weekly Goal Review", params.Title)
}

func TestValidateUpdateReminderParams(t *testing.T) {
	t.Parallel()

	strPtr := func(s string) *string { return &s }
	boolPtr := func(b bool) *bool { return &b }

	t.Run("nil fields pass", func(t *testing.T) {
		t.Parallel()
		params := UpdateReminderParams{ID: "r-1", UserID: "user-1"}
		assert.NoError(t, validateUpdateReminderParams(&params))
	})

	t.Run("completed toggle alone passes", func(t *testing.T) {
		t.Parallel()
		params := UpdateReminderParams{ID: "r-1", UserID: "user-1", Completed: boolPtr(true)}
		assert.NoError(t, validateUpdateReminderParams(&params))
	})

	t.Run("blank title rejected", func(t *testing.T) {
		t.Parallel()
		params := UpdateReminderParams{ID: "r-1", UserID: "user-1", Title: strPtr(" ")}
		assert.ErrorIs(t, validateUpdateReminderParams(&params), ErrReminderTitleRequired)
	})

	t.Run("bad date rejected", func(t *testing.T) {
		t.Parallel()
		params := UpdateReminderParams{ID: "r-1", UserID: "user-1", Date: strPtr("2024-13-40")}
		assert.ErrorIs(t, validateUpdateReminderParams(&params), ErrReminderDateTimeInvalid)
	})

	t.Run("bad time rejected", func(t *testing.T) {
		t.Parallel()
		params := UpdateReminderParams{ID: "r-1", UserID: "user-1", Time: strPtr("25:61")}
		assert.ErrorIs(t, validateUpdateReminderParams(&params), ErrReminderDateTimeInvalid)
	})

	t.Run("unknown method rejected", func(t *testing.T) {
		t.Parallel()
		params := UpdateReminderParams{ID: "r-1", UserID: "user-1", NotificationMethod: strPtr("fax")}
		assert.ErrorIs(t, validateUpdateReminderParams(&params), ErrInvalidNotificationMethod)
	})
}
