package service

import (
	"context"
	"time"
)

const (
	EventUserSignup       = "user.signup"
	EventCommunityCreated = "community.created"
	EventMemberAdded      = "member.added"
	EventMemberRemoved    = "member.removed"
)

// EventSink 活动事件出口，nil 时不发
type EventSink interface {
	Publish(ctx context.Context, key string, payload any) error
}

type Event struct {
	Type string    `json:"type"`
	ID   string    `json:"id"`
	At   time.Time `json:"at"`
}

// 事件是尽力而为，失败不影响请求结果
func publish(ctx context.Context, sink EventSink, eventType, id string) {
	if sink == nil {
		return
	}
	_ = sink.Publish(ctx, id, Event{Type: eventType, ID: id, At: time.Now()})
}
