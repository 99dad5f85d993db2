package models

import "time"

// CurrentTimeModel Current time specific model
type CurrentTimeModel struct {
	ReadableTime string `json:"readableTime"`
	Time         int64  `json:"time"`
	// Date is the service calendar day used as "today" for next-visit selection.
	Date string `json:"date"`
}

// NewCurrentTimeModel describes t, which should already be in the service timezone.
func NewCurrentTimeModel(t time.Time) CurrentTimeModel {
	return CurrentTimeModel{
		ReadableTime: t.Format(time.RFC3339),
		Time:         t.UnixNano() / int64(time.Millisecond),
		Date:         t.Format("2006-01-02"),
	}
}
