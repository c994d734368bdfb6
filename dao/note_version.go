package dao

import (
	"Memo/models"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NoteVersionDAO struct {
	Repo[models.NoteVersion]
}

func NewNoteVersionDAO(db *gorm.DB) *NoteVersionDAO {
	return &NoteVersionDAO{Repo: NewRepo[models.NoteVersion](db)}
}

// AppendTx 事务内追加历史快照，快照只增不改。
// 同一版本重复追加是空操作：创建笔记时落的 version=1 快照
// 就是第一次更新的修改前状态，两次写入落到同一行
func (d *NoteVersionDAO) AppendTx(ctx context.Context, tx *gorm.DB, version *models.NoteVersion) error {
	return tx.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(version).Error
}

// ListByNote 按版本号升序查询历史
func (d *NoteVersionDAO) ListByNote(ctx context.Context, noteID int64) ([]*models.NoteVersion, error) {
	var versions []*models.NoteVersion
	err := d.Db.WithContext(ctx).
		Where("note_id = ?", noteID).
		Order("version ASC").
		Find(&versions).Error
	return versions, err
}
