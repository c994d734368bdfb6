package service

import (
	"Memo/models"
	"Memo/pkg/log"
	"Memo/pkg/snowflake"
	"Memo/types"
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ INoteShareService = (*NoteShareService)(nil)

type INoteShareService interface {
	ShareNote(ctx context.Context, ownerID int64, req *types.ShareNoteRequest) (*types.ShareNoteResponse, error)
	ListShared(ctx context.Context, userID int64) ([]*types.SharedNote, error)
}

// ShareStore 授权读写，(note_id, shared_with) 至多一行
type ShareStore interface {
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
	FindPairTx(ctx context.Context, tx *gorm.DB, noteID, sharedWith int64) (*models.NoteShare, error)
	CreateTx(ctx context.Context, tx *gorm.DB, share *models.NoteShare) error
	UpdatePermissionTx(ctx context.Context, tx *gorm.DB, shareID int64, permission string) error
	ListSharedWith(ctx context.Context, userID int64) ([]*types.SharedNote, error)
}

// IdentityStore 被分享用户存在性校验
type IdentityStore interface {
	FindByIDTx(ctx context.Context, tx *gorm.DB, userID int64) (*models.Users, error)
}

// NoteReader 分享前的归属校验
type NoteReader interface {
	FindForUpdate(ctx context.Context, tx *gorm.DB, noteID int64) (*models.Note, error)
}

// ShareCache 分享视图缓存
type ShareCache interface {
	GetShared(ctx context.Context, userID int64) ([]*types.SharedNote, bool)
	SetShared(ctx context.Context, userID int64, notes []*types.SharedNote)
	InvalidateShare(ctx context.Context, noteID, granteeID int64)
}

type NoteShareService struct {
	ShareDAO ShareStore
	NoteDAO  NoteReader
	UserDAO  IdentityStore
	Cache    ShareCache
}

// ShareNote 分享笔记。存在性校验和 upsert 放在同一事务内，
// 并发分享同一 (笔记, 用户) 不会产生重复授权行
func (s *NoteShareService) ShareNote(ctx context.Context, ownerID int64, req *types.ShareNoteRequest) (*types.ShareNoteResponse, error) {
	permission := req.Permission
	if permission == "" {
		permission = models.PermissionRead
	}
	if !models.ValidPermission(permission) {
		return nil, ErrInvalidPermission
	}

	err := s.ShareDAO.Transaction(ctx, func(tx *gorm.DB) error {
		grantee, err := s.UserDAO.FindByIDTx(ctx, tx, req.SharedWith)
		if err != nil {
			return err
		}
		if grantee == nil {
			return ErrInvalidGrantee
		}

		note, err := s.NoteDAO.FindForUpdate(ctx, tx, req.NoteID)
		if err != nil {
			return err
		}
		if note == nil {
			return ErrNoteNotFound
		}
		if note.UserID != ownerID {
			return ErrAccessDenied
		}

		existing, err := s.ShareDAO.FindPairTx(ctx, tx, req.NoteID, req.SharedWith)
		if err != nil {
			return err
		}
		if existing != nil {
			// 重复分享覆盖权限
			return s.ShareDAO.UpdatePermissionTx(ctx, tx, existing.ID, permission)
		}
		return s.ShareDAO.CreateTx(ctx, tx, &models.NoteShare{
			ID:         snowflake.GenID(),
			NoteID:     req.NoteID,
			SharedWith: req.SharedWith,
			Permission: permission,
		})
	})
	if err != nil {
		log.L.Error("share note failed",
			zap.Int64("owner_id", ownerID),
			zap.Int64("note_id", req.NoteID),
			zap.Int64("shared_with", req.SharedWith),
			zap.Error(err))
		return nil, err
	}

	s.Cache.InvalidateShare(ctx, req.NoteID, req.SharedWith)

	return &types.ShareNoteResponse{
		NoteID:     req.NoteID,
		SharedWith: req.SharedWith,
		Permission: permission,
	}, nil
}

// ListShared 分享给我的笔记，联表天然过滤掉已软删的笔记
func (s *NoteShareService) ListShared(ctx context.Context, userID int64) ([]*types.SharedNote, error) {
	if notes, ok := s.Cache.GetShared(ctx, userID); ok {
		return notes, nil
	}

	notes, err := s.ShareDAO.ListSharedWith(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.Cache.SetShared(ctx, userID, notes)
	return notes, nil
}
