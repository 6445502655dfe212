// Package availability derives remaining slot capacity per spot and date.
package availability

import "find-my-space/internal/domain/booking"

// OccupyingStatuses is the single set of booking statuses counted against capacity.
// Every availability figure in the service is derived from it.
var OccupyingStatuses = []booking.Status{
	booking.StatusConfirmed,
	booking.StatusEscrow,
	booking.StatusReleased,
	booking.StatusActive,
	booking.StatusCheckedIn,
}

func IsOccupying(s booking.Status) bool {
	for _, o := range OccupyingStatuses {
		if o == s {
			return true
		}
	}
	return false
}

// OccupyingStatusStrings is the form used in SQL filters.
func OccupyingStatusStrings() []string {
	out := make([]string, len(OccupyingStatuses))
	for i, s := range OccupyingStatuses {
		out[i] = s.String()
	}
	return out
}

// Remaining is never negative, even when a spot is oversold.
func Remaining(totalSlots, occupying int) int {
	if r := totalSlots - occupying; r > 0 {
		return r
	}
	return 0
}

type DayAvailability struct {
	Date      booking.Date
	Total     int
	Occupied  int
	Available int
}

// Forecast yields one entry per day starting at from. Days missing from counts are empty.
func Forecast(totalSlots int, from booking.Date, days int, counts map[booking.Date]int) []DayAvailability {
	if days <= 0 {
		return []DayAvailability{}
	}
	out := make([]DayAvailability, 0, days)
	for i := 0; i < days; i++ {
		d := from.AddDays(i)
		occupied := counts[d]
		out = append(out, DayAvailability{
			Date:      d,
			Total:     totalSlots,
			Occupied:  occupied,
			Available: Remaining(totalSlots, occupied),
		})
	}
	return out
}

type Summary struct {
	Spots          int
	TotalSlots     int
	AvailableSlots int
}

// Aggregate sums remaining capacity for one date across spots.
// totals maps spot to total slots, occupied maps spot to occupying bookings.
func Aggregate[K comparable](totals map[K]int, occupied map[K]int) Summary {
	var s Summary
	for id, total := range totals {
		s.Spots++
		s.TotalSlots += total
		s.AvailableSlots += Remaining(total, occupied[id])
	}
	return s
}
