package models

import (
	"time"
)

// NoteVersion 笔记历史快照，只追加不修改，软删后依旧保留。
// (note_id, version) 唯一：同一版本的快照只落一行
type NoteVersion struct {
	ID        int64     `gorm:"column:id;primary_key" json:"id"`
	NoteID    int64     `gorm:"column:note_id;not null;uniqueIndex:uk_note_id_version" json:"note_id"`
	Title     string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	Version   int       `gorm:"column:version;not null;uniqueIndex:uk_note_id_version" json:"version"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (v NoteVersion) TableName() string {
	return "note_versions"
}
