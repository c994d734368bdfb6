package dao

import (
	"Memo/models"
	"Memo/types"
	"context"

	"gorm.io/gorm"
)

type NoteShareDAO struct {
	Repo[models.NoteShare]
}

func NewNoteShareDAO(db *gorm.DB) *NoteShareDAO {
	return &NoteShareDAO{Repo: NewRepo[models.NoteShare](db)}
}

// FindPairTx 事务内查询 (note_id, shared_with) 授权，不存在返回 nil
func (d *NoteShareDAO) FindPairTx(ctx context.Context, tx *gorm.DB, noteID, sharedWith int64) (*models.NoteShare, error) {
	var shares []*models.NoteShare
	err := tx.WithContext(ctx).
		Where("note_id = ? AND shared_with = ?", noteID, sharedWith).
		Limit(1).
		Find(&shares).Error
	if err != nil {
		return nil, err
	}
	if len(shares) == 0 {
		return nil, nil
	}
	return shares[0], nil
}

// CreateTx 事务内创建授权
func (d *NoteShareDAO) CreateTx(ctx context.Context, tx *gorm.DB, share *models.NoteShare) error {
	return tx.WithContext(ctx).Create(share).Error
}

// UpdatePermissionTx 事务内覆盖已有授权的权限
func (d *NoteShareDAO) UpdatePermissionTx(ctx context.Context, tx *gorm.DB, shareID int64, permission string) error {
	return tx.WithContext(ctx).
		Model(&models.NoteShare{}).
		Where("id = ?", shareID).
		Update("permission", permission).Error
}

// ExistsForUser 判断用户是否持有该笔记的授权
func (d *NoteShareDAO) ExistsForUser(ctx context.Context, noteID, userID int64) (bool, error) {
	return d.Repo.IsExist(ctx, "note_id = ? AND shared_with = ?", noteID, userID)
}

// ListSharedWith 查询分享给用户的笔记，联表过滤软删笔记。
// 软删后残留的授权行不会出现在结果里，无需额外清理任务。
func (d *NoteShareDAO) ListSharedWith(ctx context.Context, userID int64) ([]*types.SharedNote, error) {
	var rows []*types.SharedNote
	err := d.Db.WithContext(ctx).
		Table("note_shares").
		Select("notes.id, notes.user_id, notes.updated_by, notes.title, notes.content, notes.version, notes.created_at, notes.updated_at, note_shares.permission").
		Joins("JOIN notes ON notes.id = note_shares.note_id AND notes.deleted_at IS NULL").
		Where("note_shares.shared_with = ?", userID).
		Order("notes.updated_at DESC").
		Scan(&rows).Error
	return rows, err
}
