package models

import "time"

// Change is the notification sent when a page document is written. It
// carries only a token; subscribers re-fetch the page themselves.
type Change struct {
	Page  string    `json:"page"`
	Token string    `json:"token"`
	At    time.Time `json:"at"`
}
