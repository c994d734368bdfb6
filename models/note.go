package models

import (
	"time"

	"gorm.io/gorm"
)

// Note 笔记主表：当前态，version 每次成功修改 +1
type Note struct {
	ID        int64          `gorm:"column:id;primary_key" json:"id"`
	UserID    int64          `gorm:"column:user_id;not null;index:idx_user_id" json:"user_id"`
	UpdatedBy *int64         `gorm:"column:updated_by;index:idx_updated_by" json:"updated_by"` // 最后编辑人，可空
	Title     string         `gorm:"column:title;type:varchar(255);not null;index:ft_notes_title_content,class:FULLTEXT" json:"title"`
	Content   string         `gorm:"column:content;type:text;not null;index:ft_notes_title_content,class:FULLTEXT" json:"content"`
	Version   int            `gorm:"column:version;not null;default:1" json:"version"`
	CreatedAt time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;index:idx_updated_at" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index:idx_deleted_at" json:"-"`
}

func (n Note) TableName() string {
	return "notes"
}
