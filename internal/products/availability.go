package products

import "time"

// RentedUntil returns the end of the rental window for a rented item.
// The second return is false when no window applies: the item was never
// rented, or it has no positive duration.
func RentedUntil(rentedAt *time.Time, durationDays int) (time.Time, bool) {
	if rentedAt == nil || durationDays <= 0 {
		return time.Time{}, false
	}
	return rentedAt.Add(time.Duration(durationDays) * 24 * time.Hour), true
}

// IsRented reports whether a rent listing is inside an active rental
// window at the given instant. Availability after the window is derived,
// never written back: once now passes rented_at + duration the item is
// implicitly available again.
func IsRented(rentedAt *time.Time, durationDays int, now time.Time) bool {
	until, ok := RentedUntil(rentedAt, durationDays)
	if !ok {
		return false
	}
	return now.Before(until)
}

// DaysLeft returns the whole days remaining in the rental window,
// rounded up and floored at zero.
func DaysLeft(rentedAt time.Time, durationDays int, now time.Time) int {
	until, ok := RentedUntil(&rentedAt, durationDays)
	if !ok {
		return 0
	}
	remaining := until.Sub(now)
	if remaining <= 0 {
		return 0
	}
	days := int(remaining / (24 * time.Hour))
	if remaining%(24*time.Hour) != 0 {
		days++
	}
	return days
}
