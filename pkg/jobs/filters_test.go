package jobs

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestGeoID(t *testing.T) {
	tests := []struct {
		location string
		want     string
	}{
		{location: "Pune", want: "102179709"},
		{location: "New York, NY", want: "103644278"},
		{location: "Bangalore, India", want: "102713980"},
		{location: "Remote", want: "103644278"},
		{location: "Atlantis", want: ""},
		{location: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			assert.Equal(t, tt.want, GeoID(tt.location))
		})
	}
}

func TestExperienceLevel(t *testing.T) {
	assert.Equal(t, "1", ExperienceLevel(2))
	assert.Equal(t, "2", ExperienceLevel(5))
	assert.Equal(t, "3", ExperienceLevel(10))
	assert.Equal(t, "4", ExperienceLevel(15))
}

func TestCodes(t *testing.T) {
	assert.Equal(t, "F", JobTypeCode("fullTime"))
	assert.Equal(t, "I", JobTypeCode("internship"))
	assert.Equal(t, "", JobTypeCode(""))
	assert.Equal(t, "H", WorkTypeCode("hybrid"))
	assert.Equal(t, "", WorkTypeCode("moon"))
}
