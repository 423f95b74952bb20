package availability

import (
	"errors"
	"plantao-service/internal/app/models"
	"plantao-service/internal/pkg/exceptions"
	"plantao-service/internal/pkg/utils"
	"sort"
)

// Interval is a candidate or existing slot on one calendar day. Start and End
// are zero-padded "HH:MM", so string order is time order.
type Interval struct {
	Date  string
	Start string
	End   string
}

func intervalOf(slot models.TimeSlot) Interval {
	return Interval{Date: slot.Date, Start: slot.StartTime, End: slot.EndTime}
}

// Overlaps reports whether a and b share the same date and a starts inside
// [b.Start, b.End), ends inside (b.Start, b.End], or covers b entirely.
func Overlaps(a, b Interval) bool {
	if a.Date != b.Date {
		return false
	}
	startsInside := a.Start >= b.Start && a.Start < b.End
	endsInside := a.End > b.Start && a.End <= b.End
	covers := a.Start <= b.Start && a.End >= b.End
	return startsInside || endsInside || covers
}

// DetectConflict reports whether candidate overlaps any of existing.
func DetectConflict(candidate Interval, existing []models.TimeSlot) bool {
	_, found := findConflict(candidate, existing)
	return found
}

func findConflict(candidate Interval, existing []models.TimeSlot) (models.TimeSlot, bool) {
	for _, slot := range existing {
		if Overlaps(candidate, intervalOf(slot)) {
			return slot, true
		}
	}
	return models.TimeSlot{}, false
}

// ValidateCandidate rejects a submission before any slot is read.
func ValidateCandidate(dates []string, start, end string, specialties []string) error {
	if len(dates) == 0 {
		return exceptions.ErrNoDatesSelected(nil)
	}
	if len(specialties) == 0 {
		return exceptions.ErrNoSpecialtiesSelected(nil)
	}
	return validateTimeRange(start, end)
}

func validateTimeRange(start, end string) error {
	if !utils.IsClock(start) || !utils.IsClock(end) {
		return exceptions.ErrInvalidTimeRange(errors.New("malformed clock"), start, end)
	}
	if start >= end {
		return exceptions.ErrInvalidTimeRange(nil, start, end)
	}
	return nil
}

// uniqueSortedDates drops repeated dates and returns the rest in ascending order.
func uniqueSortedDates(dates []string) []string {
	seen := make(map[string]bool, len(dates))
	unique := make([]string, 0, len(dates))
	for _, date := range dates {
		if seen[date] {
			continue
		}
		seen[date] = true
		unique = append(unique, date)
	}
	sort.Strings(unique)
	return unique
}

// plan splits dates into slots to create and dates to skip. Slots accepted
// earlier in the same batch count as existing for the later ones.
func plan(doctorID string, dates []string, start, end string, specialties []string, existing []models.TimeSlot) ([]models.TimeSlot, []Interval) {
	occupied := append([]models.TimeSlot(nil), existing...)
	var toCreate []models.TimeSlot
	var skipped []Interval

	for _, date := range dates {
		candidate := Interval{Date: date, Start: start, End: end}
		if DetectConflict(candidate, occupied) {
			skipped = append(skipped, candidate)
			continue
		}
		slot := models.TimeSlot{
			DoctorID:    doctorID,
			Date:        date,
			StartTime:   start,
			EndTime:     end,
			Specialties: append([]string(nil), specialties...),
		}
		toCreate = append(toCreate, slot)
		occupied = append(occupied, slot)
	}
	return toCreate, skipped
}

func sortSlots(slots []models.TimeSlot) {
	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].Date != slots[j].Date {
			return slots[i].Date < slots[j].Date
		}
		return slots[i].StartTime < slots[j].StartTime
	})
}
