package schedule

import "time"

// Overlaps applique le test standard sur intervalles semi-ouverts
// [aStart, aEnd) et [bStart, bEnd).
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}
