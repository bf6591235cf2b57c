package model

import "time"

// Summary 关联填充时内嵌的 {id, name} 摘要
type Summary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CommunityWithOwner 社区列表视图，owner 已填充
type CommunityWithOwner struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Owner     Summary   `json:"owner"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MemberDetail 成员列表视图，user/role 已填充
type MemberDetail struct {
	ID        string    `json:"id"`
	Community string    `json:"community"`
	User      Summary   `json:"user"`
	Role      Summary   `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
