package models

import (
	"time"
)

// 分享权限等级
const (
	PermissionRead = "read"
	PermissionEdit = "edit"
)

// NoteShare 分享授权，(note_id, shared_with) 唯一，重复分享覆盖权限
type NoteShare struct {
	ID         int64     `gorm:"column:id;primary_key" json:"id"`
	NoteID     int64     `gorm:"column:note_id;not null;uniqueIndex:uk_note_shared_with" json:"note_id"`
	SharedWith int64     `gorm:"column:shared_with;not null;uniqueIndex:uk_note_shared_with;index:idx_shared_with" json:"shared_with"`
	Permission string    `gorm:"column:permission;type:enum('read','edit');not null;default:'read'" json:"permission"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (s NoteShare) TableName() string {
	return "note_shares"
}

// ValidPermission 校验权限枚举
func ValidPermission(p string) bool {
	return p == PermissionRead || p == PermissionEdit
}
