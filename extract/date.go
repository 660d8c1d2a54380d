package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// monthEntry binds one month-name spelling to its month number.
type monthEntry struct {
	name string
	num  int
}

// monthTable lists every recognized month spelling in a fixed order:
// German first, including the ASCII transliteration of März, then the
// English spellings that differ from German. April, August, September, and
// November are spelled the same in both languages.
var monthTable = []monthEntry{
	{"Januar", 1}, {"Februar", 2}, {"März", 3}, {"Maerz", 3}, {"April", 4},
	{"Mai", 5}, {"Juni", 6}, {"Juli", 7}, {"August", 8}, {"September", 9},
	{"Oktober", 10}, {"November", 11}, {"Dezember", 12},
	{"January", 1}, {"February", 2}, {"March", 3}, {"May", 5}, {"June", 6},
	{"July", 7}, {"October", 10}, {"December", 12},
}

// monthNumbers resolves a lower-cased month spelling to its number.
var monthNumbers = func() map[string]int {
	m := make(map[string]int, len(monthTable))
	for _, e := range monthTable {
		m[strings.ToLower(e.name)] = e.num
	}
	return m
}()

// monthAlternation is a regex alternation over every month spelling.
var monthAlternation = func() string {
	names := make([]string, len(monthTable))
	for i, e := range monthTable {
		names[i] = e.name
	}
	return strings.Join(names, "|")
}()

// Date patterns. German dates read "31. Dezember 1999" and English dates
// "December 31, 1999"; each pattern accepts month names from either
// language, and the German form is tried first.
var (
	germanDate  = regexp.MustCompile(`(?i)(\d+)\. (` + monthAlternation + `) (\d+)`)
	englishDate = regexp.MustCompile(`(?i)(` + monthAlternation + `) (\d+), (\d+)`)
)

// NormalizeDate converts a raw date string in German or English form to
// ISO YYYY-MM-DD. When neither form matches anywhere in the string, the
// raw value comes back unchanged with ok set to false.
func NormalizeDate(raw string) (date string, ok bool) {
	if m := germanDate.FindStringSubmatch(raw); m != nil {
		return isoDate(m[3], m[2], m[1]), true
	}
	if m := englishDate.FindStringSubmatch(raw); m != nil {
		return isoDate(m[3], m[1], m[2]), true
	}
	return raw, false
}

// isoDate assembles YYYY-MM-DD from a year string, a matched month
// spelling, and a day string. Month and day are zero-padded to two digits;
// the year is emitted as captured.
func isoDate(year, monthName, day string) string {
	month := monthNumbers[strings.ToLower(monthName)]
	return fmt.Sprintf("%s-%02d-%s", year, month, padDay(day))
}

// padDay zero-pads a day string to two digits.
func padDay(day string) string {
	n, err := strconv.Atoi(day)
	if err != nil {
		return day
	}
	return fmt.Sprintf("%02d", n)
}
