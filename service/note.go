package service

import (
	"Memo/models"
	"Memo/pkg/log"
	"Memo/pkg/snowflake"
	"Memo/types"
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ INoteService = (*NoteService)(nil)

type INoteService interface {
	CreateNote(ctx context.Context, userID int64, req *types.CreateNoteRequest) (*models.Note, error)
	GetNote(ctx context.Context, userID, noteID int64) (*models.Note, error)
	ListNotes(ctx context.Context, userID int64) ([]*models.Note, error)
	SearchNotes(ctx context.Context, userID int64, keyword string) ([]*models.Note, error)
	UpdateNote(ctx context.Context, userID, noteID int64, req *types.UpdateNoteRequest) (*models.Note, error)
	DeleteNote(ctx context.Context, userID, noteID int64) error
	ListVersions(ctx context.Context, userID, noteID int64) ([]*models.NoteVersion, error)
}

// NoteStore 当前态读写，UpdateChecked 返回影响行数用于乐观锁判定
type NoteStore interface {
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
	CreateTx(ctx context.Context, tx *gorm.DB, note *models.Note) error
	FindByID(ctx context.Context, noteID int64) (*models.Note, error)
	FindForUpdate(ctx context.Context, tx *gorm.DB, noteID int64) (*models.Note, error)
	UpdateChecked(ctx context.Context, tx *gorm.DB, noteID int64, version int, title, content string, editorID int64) (int64, error)
	SoftDeleteOwned(ctx context.Context, noteID, ownerID int64) (int64, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*models.Note, error)
	Search(ctx context.Context, ownerID int64, keyword string) ([]*models.Note, error)
}

// VersionStore 历史快照，只追加
type VersionStore interface {
	AppendTx(ctx context.Context, tx *gorm.DB, version *models.NoteVersion) error
	ListByNote(ctx context.Context, noteID int64) ([]*models.NoteVersion, error)
}

// ShareLookup 非属主可见性判定
type ShareLookup interface {
	ExistsForUser(ctx context.Context, noteID, userID int64) (bool, error)
}

// NoteCache 旁路缓存。Get 未命中返回 false，Set/Invalidate 失败由缓存层
// 记日志吞掉，永远不影响写路径的结果
type NoteCache interface {
	GetNote(ctx context.Context, noteID int64) (*models.Note, bool)
	SetNote(ctx context.Context, note *models.Note)
	GetUserNotes(ctx context.Context, userID int64) ([]*models.Note, bool)
	SetUserNotes(ctx context.Context, userID int64, notes []*models.Note)
	GetSearch(ctx context.Context, userID int64, keyword string) ([]*models.Note, bool)
	SetSearch(ctx context.Context, userID int64, keyword string, notes []*models.Note)
	InvalidateNote(ctx context.Context, noteID, ownerID int64)
	InvalidateUserNotes(ctx context.Context, ownerID int64)
}

type NoteService struct {
	NoteDAO    NoteStore
	VersionDAO VersionStore
	ShareDAO   ShareLookup
	Cache      NoteCache
}

// CreateNote 创建笔记并在同一事务内落初始快照
func (s *NoteService) CreateNote(ctx context.Context, userID int64, req *types.CreateNoteRequest) (*models.Note, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		return nil, ErrEmptyTitleContent
	}

	now := time.Now()
	note := &models.Note{
		ID:        snowflake.GenID(),
		UserID:    userID,
		Title:     req.Title,
		Content:   req.Content,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.NoteDAO.Transaction(ctx, func(tx *gorm.DB) error {
		if err := s.NoteDAO.CreateTx(ctx, tx, note); err != nil {
			return err
		}
		return s.VersionDAO.AppendTx(ctx, tx, &models.NoteVersion{
			ID:      snowflake.GenID(),
			NoteID:  note.ID,
			Title:   note.Title,
			Content: note.Content,
			Version: note.Version,
		})
	})
	if err != nil {
		log.L.Error("create note failed", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}

	// 提交成功后才失效缓存
	s.Cache.InvalidateUserNotes(ctx, userID)

	return note, nil
}

// GetNote 旁路缓存读取，非属主需持有授权，不可见与不存在同错误
func (s *NoteService) GetNote(ctx context.Context, userID, noteID int64) (*models.Note, error) {
	note, err := s.loadNote(ctx, noteID)
	if err != nil {
		return nil, err
	}

	if note.UserID != userID {
		shared, err := s.ShareDAO.ExistsForUser(ctx, noteID, userID)
		if err != nil {
			return nil, err
		}
		if !shared {
			return nil, ErrNoteNotFound
		}
	}

	return note, nil
}

func (s *NoteService) loadNote(ctx context.Context, noteID int64) (*models.Note, error) {
	if note, ok := s.Cache.GetNote(ctx, noteID); ok {
		return note, nil
	}

	note, err := s.NoteDAO.FindByID(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrNoteNotFound
	}

	s.Cache.SetNote(ctx, note)
	return note, nil
}

// ListNotes 用户笔记列表，按更新时间倒序
func (s *NoteService) ListNotes(ctx context.Context, userID int64) ([]*models.Note, error) {
	if notes, ok := s.Cache.GetUserNotes(ctx, userID); ok {
		return notes, nil
	}

	notes, err := s.NoteDAO.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.Cache.SetUserNotes(ctx, userID, notes)
	return notes, nil
}

// SearchNotes 全文检索，空关键词直接拒绝，不落库
func (s *NoteService) SearchNotes(ctx context.Context, userID int64, keyword string) ([]*models.Note, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, ErrEmptyKeyword
	}

	if notes, ok := s.Cache.GetSearch(ctx, userID, keyword); ok {
		return notes, nil
	}

	notes, err := s.NoteDAO.Search(ctx, userID, keyword)
	if err != nil {
		return nil, err
	}

	s.Cache.SetSearch(ctx, userID, keyword, notes)
	return notes, nil
}

// UpdateNote 带乐观锁的更新：同一事务内先落修改前快照，再做 version
// 条件更新，条件不中说明有并发写者抢先提交，整个事务回滚
func (s *NoteService) UpdateNote(ctx context.Context, userID, noteID int64, req *types.UpdateNoteRequest) (*models.Note, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		return nil, ErrEmptyTitleContent
	}

	var updated *models.Note

	err := s.NoteDAO.Transaction(ctx, func(tx *gorm.DB) error {
		note, err := s.NoteDAO.FindForUpdate(ctx, tx, noteID)
		if err != nil {
			return err
		}
		if note == nil || note.UserID != userID {
			return ErrNoteNotFound
		}

		// 修改前的状态进历史
		if err := s.VersionDAO.AppendTx(ctx, tx, &models.NoteVersion{
			ID:      snowflake.GenID(),
			NoteID:  note.ID,
			Title:   note.Title,
			Content: note.Content,
			Version: note.Version,
		}); err != nil {
			return err
		}

		rows, err := s.NoteDAO.UpdateChecked(ctx, tx, noteID, note.Version, req.Title, req.Content, userID)
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrNoteConflict
		}

		updated = note
		updated.Title = req.Title
		updated.Content = req.Content
		updated.Version = note.Version + 1
		updated.UpdatedBy = &userID
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Cache.InvalidateNote(ctx, noteID, userID)

	return updated, nil
}

// DeleteNote 软删。单条条件语句自带原子性，历史快照保持不动
func (s *NoteService) DeleteNote(ctx context.Context, userID, noteID int64) error {
	rows, err := s.NoteDAO.SoftDeleteOwned(ctx, noteID, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNoteNotFound
	}

	s.Cache.InvalidateNote(ctx, noteID, userID)

	return nil
}

// ListVersions 历史版本，可见性规则与 GetNote 一致
func (s *NoteService) ListVersions(ctx context.Context, userID, noteID int64) ([]*models.NoteVersion, error) {
	if _, err := s.GetNote(ctx, userID, noteID); err != nil {
		return nil, err
	}

	return s.VersionDAO.ListByNote(ctx, noteID)
}
