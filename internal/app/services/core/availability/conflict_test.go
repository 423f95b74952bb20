package availability

import (
	"plantao-service/internal/app/models"
	"plantao-service/internal/pkg/constvars"
	"plantao-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slot(date, start, end string) models.TimeSlot {
	return models.TimeSlot{DoctorID: "doc-1", Date: date, StartTime: start, EndTime: end, Specialties: []string{"Cardiologia"}}
}

func TestDetectConflict_Scenario(t *testing.T) {
	existing := []models.TimeSlot{slot("2025-06-10", "08:00", "12:00")}

	tests := []struct {
		name      string
		candidate Interval
		want      bool
	}{
		{"overlapping end of existing", Interval{"2025-06-10", "10:00", "14:00"}, true},
		{"starting when existing ends", Interval{"2025-06-10", "12:00", "16:00"}, false},
		{"same interval on the next day", Interval{"2025-06-11", "08:00", "12:00"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectConflict(tt.candidate, existing))
		})
	}
}

func TestOverlaps(t *testing.T) {
	base := Interval{"2025-06-10", "08:00", "12:00"}

	tests := []struct {
		name      string
		candidate Interval
		want      bool
	}{
		{"identical", Interval{"2025-06-10", "08:00", "12:00"}, true},
		{"starts inside", Interval{"2025-06-10", "11:59", "13:00"}, true},
		{"ends inside", Interval{"2025-06-10", "07:00", "08:01"}, true},
		{"contained", Interval{"2025-06-10", "09:00", "10:00"}, true},
		{"contains", Interval{"2025-06-10", "07:00", "13:00"}, true},
		{"strictly before", Interval{"2025-06-10", "06:00", "07:59"}, false},
		{"ends at start", Interval{"2025-06-10", "06:00", "08:00"}, false},
		{"strictly after", Interval{"2025-06-10", "12:01", "18:00"}, false},
		{"different date containing", Interval{"2025-06-09", "00:00", "23:59"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.candidate, base))
		})
	}
}

func TestOverlaps_Symmetric(t *testing.T) {
	clocks := []string{"00:00", "06:00", "08:00", "10:00", "12:00", "14:00", "23:59"}
	var intervals []Interval
	for i := range clocks {
		for j := i + 1; j < len(clocks); j++ {
			intervals = append(intervals, Interval{"2025-06-10", clocks[i], clocks[j]})
		}
	}
	for _, a := range intervals {
		for _, b := range intervals {
			intersects := a.Start < b.End && b.Start < a.End
			assert.Equal(t, intersects, Overlaps(a, b), "%v vs %v", a, b)
			assert.Equal(t, Overlaps(a, b), Overlaps(b, a), "%v vs %v", a, b)
		}
	}
}

func TestValidateCandidate(t *testing.T) {
	dates := []string{"2025-06-10"}
	specialties := []string{"Pediatria"}

	tests := []struct {
		name        string
		dates       []string
		start, end  string
		specialties []string
		wantStatus  int
	}{
		{"valid", dates, "08:00", "12:00", specialties, 0},
		{"no dates", nil, "08:00", "12:00", specialties, constvars.StatusBadRequest},
		{"no specialties", dates, "08:00", "12:00", nil, constvars.StatusBadRequest},
		{"start equals end", dates, "08:00", "08:00", specialties, constvars.StatusBadRequest},
		{"start after end", dates, "13:00", "12:00", specialties, constvars.StatusBadRequest},
		{"unpadded clock", dates, "8:00", "12:00", specialties, constvars.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCandidate(tt.dates, tt.start, tt.end, tt.specialties)
			if tt.wantStatus == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantStatus, exceptions.StatusCodeOf(err))
		})
	}
}

func TestPlan(t *testing.T) {
	existing := []models.TimeSlot{slot("2025-06-12", "07:00", "09:00")}
	dates := uniqueSortedDates([]string{"2025-06-13", "2025-06-11", "2025-06-12", "2025-06-11", "2025-06-10"})

	toCreate, skipped := plan("doc-1", dates, "08:00", "12:00", []string{"Pediatria"}, existing)

	require.Len(t, toCreate, 3)
	require.Len(t, skipped, 1)
	assert.Equal(t, "2025-06-12", skipped[0].Date)
	for i := 1; i < len(toCreate); i++ {
		assert.LessOrEqual(t, toCreate[i-1].Date, toCreate[i].Date)
	}
	for _, created := range toCreate {
		assert.Equal(t, "doc-1", created.DoctorID)
		assert.Equal(t, []string{"Pediatria"}, created.Specialties)
	}
}

func TestSortSlots(t *testing.T) {
	slots := []models.TimeSlot{
		slot("2025-06-11", "08:00", "10:00"),
		slot("2025-06-10", "14:00", "16:00"),
		slot("2025-06-10", "08:00", "10:00"),
	}
	sortSlots(slots)
	assert.Equal(t, "2025-06-10", slots[0].Date)
	assert.Equal(t, "08:00", slots[0].StartTime)
	assert.Equal(t, "14:00", slots[1].StartTime)
	assert.Equal(t, "2025-06-11", slots[2].Date)
}
