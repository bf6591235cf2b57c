package model

import "time"

type Member struct {
	ID        string    `json:"id"`
	User      string    `json:"user"`
	Community string    `json:"community"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
