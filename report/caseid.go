package report

import "time"

// NewCaseID derives a case identifier from the wall clock, unique down to
// the second: CASE_YYYYMMDD_HHMMSS.
func NewCaseID(now time.Time) string {
	return "CASE_" + now.Format("20060102_150405")
}
