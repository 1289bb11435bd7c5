package chronver

import (
	"fmt"
	"strconv"
)

// maxYear is the largest year the version scheme can express.
const maxYear = 9999

// validateDate checks that year, month, and day name a real Gregorian
// calendar date within the scheme's range.
func validateDate(year, month, day int) *ParseError {
	if year < 0 || year > maxYear {
		return newCalendarError(ComponentYear, strconv.Itoa(year), "year out of range")
	}
	if month < 1 || month > 12 {
		return newCalendarError(ComponentMonth, strconv.Itoa(month), "month out of range")
	}
	if day < 1 || day > daysIn(year, month) {
		return newCalendarError(ComponentDay, strconv.Itoa(day),
			fmt.Sprintf("day out of range for %d.%d", year, month))
	}
	return nil
}

// daysIn returns the number of days in the given month of the given year.
func daysIn(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
