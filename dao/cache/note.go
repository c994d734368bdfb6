package cache

import (
	"Memo/models"
	"Memo/pkg/log"
	"Memo/types"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
)

// 各键族过期时间。搜索和分享视图更易失效、重算也更便宜，用短 TTL
const (
	noteExpire      = 300 * time.Second
	userNotesExpire = 300 * time.Second
	searchExpire    = 60 * time.Second
	sharedExpire    = 60 * time.Second
)

type NoteStorage struct {
	redis *redis.Client
}

func NewNoteStorage(rds *redis.Client) *NoteStorage {
	return &NoteStorage{redis: rds}
}

func noteKey(noteID int64) string {
	return fmt.Sprintf("note:%d", noteID)
}

func userNotesKey(userID int64) string {
	return fmt.Sprintf("notes:user:%d", userID)
}

func searchKey(userID int64, keyword string) string {
	return fmt.Sprintf("notes:search:%d:%s", userID, keyword)
}

func sharedKey(userID int64) string {
	return fmt.Sprintf("notes:shared:%d", userID)
}

// GetNote 单条笔记缓存
func (s *NoteStorage) GetNote(ctx context.Context, noteID int64) (*models.Note, bool) {
	var note models.Note
	if !s.get(ctx, noteKey(noteID), &note) {
		return nil, false
	}
	return &note, true
}

func (s *NoteStorage) SetNote(ctx context.Context, note *models.Note) {
	s.set(ctx, noteKey(note.ID), note, noteExpire)
}

// GetUserNotes 用户笔记列表缓存
func (s *NoteStorage) GetUserNotes(ctx context.Context, userID int64) ([]*models.Note, bool) {
	var notes []*models.Note
	if !s.get(ctx, userNotesKey(userID), &notes) {
		return nil, false
	}
	return notes, true
}

func (s *NoteStorage) SetUserNotes(ctx context.Context, userID int64, notes []*models.Note) {
	s.set(ctx, userNotesKey(userID), notes, userNotesExpire)
}

// GetSearch 搜索结果缓存
func (s *NoteStorage) GetSearch(ctx context.Context, userID int64, keyword string) ([]*models.Note, bool) {
	var notes []*models.Note
	if !s.get(ctx, searchKey(userID, keyword), &notes) {
		return nil, false
	}
	return notes, true
}

func (s *NoteStorage) SetSearch(ctx context.Context, userID int64, keyword string, notes []*models.Note) {
	s.set(ctx, searchKey(userID, keyword), notes, searchExpire)
}

// GetShared 分享给用户的笔记视图缓存
func (s *NoteStorage) GetShared(ctx context.Context, userID int64) ([]*types.SharedNote, bool) {
	var notes []*types.SharedNote
	if !s.get(ctx, sharedKey(userID), &notes) {
		return nil, false
	}
	return notes, true
}

func (s *NoteStorage) SetShared(ctx context.Context, userID int64, notes []*types.SharedNote) {
	s.set(ctx, sharedKey(userID), notes, sharedExpire)
}

// InvalidateNote 笔记写入提交后失效单条和属主列表
func (s *NoteStorage) InvalidateNote(ctx context.Context, noteID, ownerID int64) {
	s.del(ctx, noteKey(noteID), userNotesKey(ownerID))
}

// InvalidateUserNotes 新建笔记后失效属主列表
func (s *NoteStorage) InvalidateUserNotes(ctx context.Context, ownerID int64) {
	s.del(ctx, userNotesKey(ownerID))
}

// InvalidateShare 分享提交后失效被分享用户视图和笔记本身
func (s *NoteStorage) InvalidateShare(ctx context.Context, noteID, granteeID int64) {
	s.del(ctx, noteKey(noteID), sharedKey(granteeID))
}

// get 命中返回 true；redis.Nil、IO 错误、反序列化失败都按未命中处理，
// 回源到数据库读取
func (s *NoteStorage) get(ctx context.Context, key string, dest any) bool {
	data, err := s.redis.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.L.Warn("cache get failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		log.L.Warn("cache decode failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// set 无条件覆盖。并发回源重复写入同等数据，无需加锁
func (s *NoteStorage) set(ctx context.Context, key string, value any, expire time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		log.L.Warn("cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.redis.Set(ctx, key, data, expire).Err(); err != nil {
		log.L.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

// del 并发删除各键。删除失败只记日志不重试，过期兜底；
// 删除不存在的键是空操作
func (s *NoteStorage) del(ctx context.Context, keys ...string) {
	var wg conc.WaitGroup
	for _, key := range keys {
		key := key
		wg.Go(func() {
			if err := s.redis.Del(ctx, key).Err(); err != nil {
				log.L.Warn("cache invalidate failed", zap.String("key", key), zap.Error(err))
			}
		})
	}
	wg.Wait()
}
