package domain

import "context"

// PushMessage is one notification addressed to one device token.
type PushMessage struct {
	Token string `json:"token"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// PushSender delivers a single push message. One failed send must never
// abort the remaining recipients; callers log and move on.
type PushSender interface {
	Send(ctx context.Context, msg *PushMessage) error
}
