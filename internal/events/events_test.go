package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	src := BookingCreated{
		BookingID:    "b1",
		CourseID:     "c1",
		CourseTitle:  "Go Basics",
		CohortNumber: 4,
		LearnerEmail: "alice@example.com",
		BookedAt:     1750000000,
	}
	body, err := json.Marshal(src)
	require.NoError(t, err)

	got, err := Decode[BookingCreated](body)
	require.NoError(t, err)
	assert.Equal(t, src, got)
}

func TestDecode_Invalid(t *testing.T) {
	_, err := Decode[BookingCancelled]([]byte("{"))
	assert.Error(t, err)
}
