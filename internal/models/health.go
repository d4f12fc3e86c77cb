package models

import "time"

// HealthModel describes a running server and the dataset it serves
type HealthModel struct {
	Status       string `json:"status"`
	Records      int    `json:"records"`
	Env          string `json:"env"`
	ReadableTime string `json:"readableTime"`
	Time         int64  `json:"time"`
}

// NewHealthModel creates a HealthModel reporting status "ok" at t
func NewHealthModel(t time.Time, records int, env string) HealthModel {
	return HealthModel{
		Status:       "ok",
		Records:      records,
		Env:          env,
		ReadableTime: t.Format(time.RFC3339),
		Time:         t.UnixNano() / int64(time.Millisecond),
	}
}
