package dao

import (
	"Memo/models"
	"context"

	"gorm.io/gorm"
)

type NoteDAO struct {
	Repo[models.Note]
}

func NewNoteDAO(db *gorm.DB) *NoteDAO {
	return &NoteDAO{Repo: NewRepo[models.Note](db)}
}

// CreateTx 在事务内创建笔记
func (d *NoteDAO) CreateTx(ctx context.Context, tx *gorm.DB, note *models.Note) error {
	return tx.WithContext(ctx).Create(note).Error
}

// FindByID 主键查询，软删或不存在返回 nil
func (d *NoteDAO) FindByID(ctx context.Context, noteID int64) (*models.Note, error) {
	return d.Repo.FindById(ctx, noteID)
}

// FindForUpdate 事务内读取当前态，作为乐观锁版本比对的基准
func (d *NoteDAO) FindForUpdate(ctx context.Context, tx *gorm.DB, noteID int64) (*models.Note, error) {
	var notes []*models.Note
	err := tx.WithContext(ctx).Where("id = ?", noteID).Limit(1).Find(&notes).Error
	if err != nil {
		return nil, err
	}
	if len(notes) == 0 {
		return nil, nil
	}
	return notes[0], nil
}

// UpdateChecked 条件更新：version 匹配才生效，返回影响行数。
// version+1 与比对在同一条 UPDATE 内完成，避免读写之间的窗口。
func (d *NoteDAO) UpdateChecked(ctx context.Context, tx *gorm.DB, noteID int64, version int, title, content string, editorID int64) (int64, error) {
	res := tx.WithContext(ctx).
		Model(&models.Note{}).
		Where("id = ? AND version = ?", noteID, version).
		Updates(map[string]any{
			"title":      title,
			"content":    content,
			"version":    gorm.Expr("version + 1"),
			"updated_by": editorID,
		})
	return res.RowsAffected, res.Error
}

// SoftDeleteOwned 按归属软删，返回影响行数
func (d *NoteDAO) SoftDeleteOwned(ctx context.Context, noteID, ownerID int64) (int64, error) {
	res := d.Db.WithContext(ctx).
		Where("id = ? AND user_id = ?", noteID, ownerID).
		Delete(&models.Note{})
	return res.RowsAffected, res.Error
}

// ListByOwner 按更新时间倒序查询用户笔记
func (d *NoteDAO) ListByOwner(ctx context.Context, ownerID int64) ([]*models.Note, error) {
	var notes []*models.Note
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("updated_at DESC").
		Find(&notes).Error
	return notes, err
}

// Search 全文检索，按相关度倒序
func (d *NoteDAO) Search(ctx context.Context, ownerID int64, keyword string) ([]*models.Note, error) {
	var notes []*models.Note
	err := d.Db.WithContext(ctx).
		Select("*, MATCH(title, content) AGAINST(? IN NATURAL LANGUAGE MODE) AS relevance", keyword).
		Where("user_id = ?", ownerID).
		Where("MATCH(title, content) AGAINST(? IN NATURAL LANGUAGE MODE)", keyword).
		Order("relevance DESC").
		Find(&notes).Error
	return notes, err
}
