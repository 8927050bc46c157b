package services

import (
	"strconv"
	"time"
)

// nextID returns the millisecond timestamp of now as a decimal string,
// stepping forward while taken reports a clash.
func nextID(now time.Time, taken func(id string) bool) string {
	ms := now.UnixMilli()
	for taken(strconv.FormatInt(ms, 10)) {
		ms++
	}
	return strconv.FormatInt(ms, 10)
}
