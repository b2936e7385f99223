package chat

import (
	"regexp"
	"strconv"
	"time"

	"github.com/demilade/chopbot/internal/menu"
)

// System command codes. Anything else numeric must be a menu item id.
const (
	cmdCancel        = 0
	cmdPlaceOrder    = 1
	cmdViewCurrent   = 97
	cmdViewHistory   = 98
	cmdCheckout      = 99
	cmdPay           = 100
	cmdCompletePay   = 101
	cmdSchedule      = 102
	cmdViewScheduled = 103
)

var (
	numericRe = regexp.MustCompile(`^\d+$`)
	emailRe   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	dateRe    = regexp.MustCompile(`^\d{2}/\d{2}/\d{4} \d{2}:\d{2}$`)
)

// scheduleLayout is the DD/MM/YYYY HH:MM shape customers type when
// scheduling an order.
const scheduleLayout = "02/01/2006 15:04"

// parseNumeric accepts only bare digit strings: no sign, no decimal
// point, no surrounding whitespace.
func parseNumeric(message string) (int, bool) {
	if !numericRe.MatchString(message) {
		return 0, false
	}
	num, err := strconv.Atoi(message)
	if err != nil {
		return 0, false
	}
	return num, true
}

// isRecognized reports whether the number is a system command code or a
// menu item id.
func isRecognized(num int) bool {
	switch num {
	case cmdCancel, cmdPlaceOrder, cmdViewCurrent, cmdViewHistory, cmdCheckout,
		cmdPay, cmdCompletePay, cmdSchedule, cmdViewScheduled:
		return true
	}
	return num >= 1 && num <= menu.Size()
}

func isValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// isDateShaped reports whether the text looks like DD/MM/YYYY HH:MM.
// Shape only; calendar validity and future-ness are checked by
// parseScheduleTime.
func isDateShaped(s string) bool {
	return dateRe.MatchString(s)
}

// parseScheduleTime parses a DD/MM/YYYY HH:MM string into a local time.
// It returns false for calendar nonsense like 31/02 and for instants
// that are not strictly in the future.
func parseScheduleTime(s string, now time.Time) (time.Time, bool) {
	when, err := time.ParseInLocation(scheduleLayout, s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	if !when.After(now) {
		return time.Time{}, false
	}
	return when, true
}
