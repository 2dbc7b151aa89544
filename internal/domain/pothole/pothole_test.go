package pothole

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewPothole(t *testing.T) {
	tests := []struct {
		name          string
		streetAddress string
		size          int
		location      Location
		district      string
		hasDamage     bool
		wantErr       string
	}{
		{
			name:          "valid report",
			streetAddress: "221 Baker St",
			size:          5,
			location:      LocationMiddle,
			district:      "North",
		},
		{
			name:          "missing street address",
			streetAddress: "",
			size:          5,
			location:      LocationMiddle,
			district:      "North",
			wantErr:       "street address is required",
		},
		{
			name:          "missing district",
			streetAddress: "221 Baker St",
			size:          5,
			location:      LocationMiddle,
			district:      "",
			wantErr:       "district is required",
		},
		{
			name:          "invalid location",
			streetAddress: "221 Baker St",
			size:          5,
			location:      Location("sidewalk"),
			district:      "North",
			wantErr:       "invalid location: sidewalk",
		},
		{
			name:          "size below range",
			streetAddress: "221 Baker St",
			size:          0,
			location:      LocationCurb,
			district:      "North",
			wantErr:       "size must be between 1 and 10",
		},
		{
			name:          "size above range",
			streetAddress: "221 Baker St",
			size:          11,
			location:      LocationCurb,
			district:      "North",
			wantErr:       "size must be between 1 and 10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPothole(tt.streetAddress, tt.size, tt.location, tt.district, tt.hasDamage)

			if tt.wantErr != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, p)
				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, p)
			assert.Equal(t, uint(0), p.ID())
			assert.Equal(t, tt.streetAddress, p.StreetAddress())
			assert.Equal(t, tt.size, p.Size())
			assert.Equal(t, tt.district, p.District())
			assert.WithinDuration(t, time.Now(), p.ReportedAt(), time.Second)
		})
	}
}

func TestNewPothole_PrioritySetAtReportTime(t *testing.T) {
	plain, err := NewPothole("1 Main St", 5, LocationMiddle, "East", false)
	assert.NoError(t, err)
	assert.Equal(t, 5, plain.Priority())

	withDamage, err := NewPothole("1 Main St", 5, LocationMiddle, "East", true)
	assert.NoError(t, err)
	assert.Equal(t, 7, withDamage.Priority())
}

func TestReconstructPothole(t *testing.T) {
	reported := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	p, err := ReconstructPothole(42, "1 Main St", 8, LocationCurb, "West", 10, reported)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), p.ID())
	assert.Equal(t, 8, p.Size())
	assert.Equal(t, 10, p.Priority())
	assert.Equal(t, reported, p.ReportedAt())

	_, err = ReconstructPothole(0, "1 Main St", 8, LocationCurb, "West", 10, reported)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ID cannot be zero")
}

func TestReconstructPothole_ClampsStoredSize(t *testing.T) {
	reported := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	oversized, err := ReconstructPothole(1, "1 Main St", 99, LocationOther, "West", 10, reported)
	assert.NoError(t, err)
	assert.Equal(t, MaxSize, oversized.Size())

	undersized, err := ReconstructPothole(2, "1 Main St", -4, LocationOther, "West", 1, reported)
	assert.NoError(t, err)
	assert.Equal(t, MinSize, undersized.Size())
}

func TestPothole_SetID(t *testing.T) {
	p, err := NewPothole("1 Main St", 3, LocationMiddle, "East", false)
	assert.NoError(t, err)

	assert.NoError(t, p.SetID(7))
	assert.Equal(t, uint(7), p.ID())

	assert.Error(t, p.SetID(8))
}

func TestNewLocation(t *testing.T) {
	tests := []struct {
		input   string
		want    Location
		wantErr bool
	}{
		{input: "middle", want: LocationMiddle},
		{input: "curb", want: LocationCurb},
		{input: "other", want: LocationOther},
		{input: "shoulder", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l, err := NewLocation(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, l)
		})
	}
}
