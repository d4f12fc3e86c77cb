package models

import (
	"net/http"
	"time"
)

// ResponseVersion is the envelope version of successful responses.
const ResponseVersion = 2

// ResponseModel Base response structure that can be reused
type ResponseModel struct {
	Code        int         `json:"code"`
	CurrentTime int64       `json:"currentTime"`
	Data        interface{} `json:"data"`
	Text        string      `json:"text"`
	Version     int         `json:"version"`
}

// ResponseCurrentTime returns the current time in epoch milliseconds.
func ResponseCurrentTime() int64 {
	return time.Now().UnixNano() / int64(time.Millisecond)
}

func NewResponse(code int, data interface{}, text string) ResponseModel {
	return ResponseModel{
		Code:        code,
		CurrentTime: ResponseCurrentTime(),
		Data:        data,
		Text:        text,
		Version:     ResponseVersion,
	}
}

func NewOKResponse(data interface{}) ResponseModel {
	return NewResponse(http.StatusOK, data, "OK")
}

// NewEntryResponse wraps a single object as {"entry": entry}.
func NewEntryResponse(entry interface{}) ResponseModel {
	data := map[string]interface{}{
		"entry": entry,
	}
	return NewOKResponse(data)
}

// NewListResponse wraps a list as {"list": list}.
func NewListResponse(list interface{}) ResponseModel {
	data := map[string]interface{}{
		"list": list,
	}
	return NewOKResponse(data)
}
