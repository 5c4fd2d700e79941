package services

// Day is one calendar bucket of services sharing an available_date.
// AllBooked flags a day that has offerings but nothing left to book.
type Day struct {
	Date      string    `json:"date"`
	AllBooked bool      `json:"all_booked"`
	Services  []Service `json:"services"`
}

// GroupByDate buckets services by their YYYY-MM-DD date. Buckets appear
// in order of first occurrence and keep the input order of their
// members, so a date-sorted input yields a date-sorted calendar.
func GroupByDate(items []Service) []Day {
	index := make(map[string]int, len(items))
	var days []Day

	for _, s := range items {
		i, ok := index[s.AvailableDate]
		if !ok {
			i = len(days)
			index[s.AvailableDate] = i
			days = append(days, Day{Date: s.AvailableDate})
		}
		days[i].Services = append(days[i].Services, s)
	}

	for i := range days {
		days[i].AllBooked = allBooked(days[i].Services)
	}
	return days
}

func allBooked(items []Service) bool {
	if len(items) == 0 {
		return false
	}
	for _, s := range items {
		if s.IsAvailable {
			return false
		}
	}
	return true
}
