package types

import "time"

// ShareNoteRequest 分享笔记请求
type ShareNoteRequest struct {
	NoteID     int64  `json:"note_id" binding:"required"`
	SharedWith int64  `json:"shared_with" binding:"required"`
	Permission string `json:"permission" binding:"omitempty,oneof=read edit"`
}

// ShareNoteResponse 分享结果
type ShareNoteResponse struct {
	NoteID     int64  `json:"note_id"`
	SharedWith int64  `json:"shared_with"`
	Permission string `json:"permission"`
}

// SharedNote 分享视图里的笔记，附带授权权限
type SharedNote struct {
	ID         int64     `gorm:"column:id" json:"id"`
	UserID     int64     `gorm:"column:user_id" json:"user_id"`
	UpdatedBy  *int64    `gorm:"column:updated_by" json:"updated_by"`
	Title      string    `gorm:"column:title" json:"title"`
	Content    string    `gorm:"column:content" json:"content"`
	Version    int       `gorm:"column:version" json:"version"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updated_at"`
	Permission string    `gorm:"column:permission" json:"permission"`
}
