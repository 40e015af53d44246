// Package clock maps times of day to the word phrases a clock face
// highlights.
package clock

import "time"

var hours = []string{
	"ONE", "TWO", "THREE", "FOUR", "FIVE", "SIX",
	"SEVEN", "EIGHT", "NINE", "TEN", "ELEVEN", "TWELVE",
}

// Phrase returns the words for the given time at five-minute
// resolution, e.g. "IT IS TWENTY FIVE TO TEN AM". Past the half hour
// the phrase counts down to the next hour. AM or PM follows the
// actual time, not the hour the phrase names.
func Phrase(hour, minute int) []string {
	hour = ((hour % 24) + 24) % 24
	if minute < 0 {
		minute = 0
	}
	m5 := minute / 5 * 5 % 60

	words := []string{"IT", "IS"}
	switch m5 {
	case 5, 55:
		words = append(words, "FIVE")
	case 10, 50:
		words = append(words, "TEN")
	case 15, 45:
		words = append(words, "A", "QUARTER")
	case 20, 40:
		words = append(words, "TWENTY")
	case 25, 35:
		words = append(words, "TWENTY", "FIVE")
	case 30:
		words = append(words, "HALF")
	}
	switch {
	case m5 == 0:
	case m5 <= 30:
		words = append(words, "PAST")
	default:
		words = append(words, "TO")
	}

	display := hour
	if m5 > 30 {
		display++
	}
	h12 := display % 12
	if h12 == 0 {
		h12 = 12
	}
	words = append(words, hours[h12-1])

	if m5 == 0 {
		words = append(words, "OCLOCK")
	}
	if hour < 12 {
		words = append(words, "AM")
	} else {
		words = append(words, "PM")
	}
	return words
}

// PhraseAt is Phrase for a time.Time.
func PhraseAt(t time.Time) []string {
	return Phrase(t.Hour(), t.Minute())
}
