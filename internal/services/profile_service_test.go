package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkoroteev/go-coachly/internal/models"
)

func TestProfileCompletion(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, ProfileCompletion(&models.Profile{}))

	assert.Equal(t, 40, ProfileCompletion(&models.Profile{
		FirstName: "Ada",
		LastName:  "Lovelace",
	}))

	assert.Equal(t, 100, ProfileCompletion(&models.Profile{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Age:       "36",
		Gender:    "female",
		Job:       "mathematician",
	}))

	// Email and avatar do not count towards completion.
	assert.Equal(t, 0, ProfileCompletion(&models.Profile{
		Email:     "ada@example.com",
		AvatarURL: "https://example.com/a.png",
	}))
}
