package service

import (
	"Memo/models"
	"Memo/types"
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"
)

// fakeStore 内存版笔记/历史存储。事务串行执行，失败时整体回滚，
// UpdateChecked 做原子的版本比对更新，贴近 MySQL 行锁下的行为
type fakeStore struct {
	txMu sync.Mutex
	mu   sync.Mutex

	notes    map[int64]*models.Note
	deleted  map[int64]bool
	versions map[int64]map[int]models.NoteVersion

	// observedVersion 不为 nil 时 FindForUpdate 固定返回该版本，
	// 模拟多个写者基于同一份陈旧读提交
	observedVersion *int

	searchCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		notes:    make(map[int64]*models.Note),
		deleted:  make(map[int64]bool),
		versions: make(map[int64]map[int]models.NoteVersion),
	}
}

func (f *fakeStore) snapshot() (map[int64]*models.Note, map[int64]bool, map[int64]map[int]models.NoteVersion) {
	notes := make(map[int64]*models.Note, len(f.notes))
	for id, n := range f.notes {
		cp := *n
		notes[id] = &cp
	}
	deleted := make(map[int64]bool, len(f.deleted))
	for id, d := range f.deleted {
		deleted[id] = d
	}
	versions := make(map[int64]map[int]models.NoteVersion, len(f.versions))
	for id, m := range f.versions {
		cp := make(map[int]models.NoteVersion, len(m))
		for v, row := range m {
			cp[v] = row
		}
		versions[id] = cp
	}
	return notes, deleted, versions
}

func (f *fakeStore) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	f.txMu.Lock()
	defer f.txMu.Unlock()

	f.mu.Lock()
	notes, deleted, versions := f.snapshot()
	f.mu.Unlock()

	if err := fn(nil); err != nil {
		f.mu.Lock()
		f.notes, f.deleted, f.versions = notes, deleted, versions
		f.mu.Unlock()
		return err
	}
	return nil
}

func (f *fakeStore) CreateTx(ctx context.Context, tx *gorm.DB, note *models.Note) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *note
	f.notes[note.ID] = &cp
	return nil
}

func (f *fakeStore) FindByID(ctx context.Context, noteID int64) (*models.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n, ok := f.notes[noteID]
	if !ok || f.deleted[noteID] {
		return nil, nil
	}
	cp := *n
	return &cp, nil
}

func (f *fakeStore) FindForUpdate(ctx context.Context, tx *gorm.DB, noteID int64) (*models.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n, ok := f.notes[noteID]
	if !ok || f.deleted[noteID] {
		return nil, nil
	}
	cp := *n
	if f.observedVersion != nil {
		cp.Version = *f.observedVersion
	}
	return &cp, nil
}

func (f *fakeStore) UpdateChecked(ctx context.Context, tx *gorm.DB, noteID int64, version int, title, content string, editorID int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n, ok := f.notes[noteID]
	if !ok || f.deleted[noteID] || n.Version != version {
		return 0, nil
	}
	n.Title = title
	n.Content = content
	n.Version++
	n.UpdatedBy = &editorID
	n.UpdatedAt = time.Now()
	return 1, nil
}

func (f *fakeStore) SoftDeleteOwned(ctx context.Context, noteID, ownerID int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n, ok := f.notes[noteID]
	if !ok || f.deleted[noteID] || n.UserID != ownerID {
		return 0, nil
	}
	f.deleted[noteID] = true
	return 1, nil
}

func (f *fakeStore) ListByOwner(ctx context.Context, ownerID int64) ([]*models.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var notes []*models.Note
	for id, n := range f.notes {
		if f.deleted[id] || n.UserID != ownerID {
			continue
		}
		cp := *n
		notes = append(notes, &cp)
	}
	sort.Slice(notes, func(i, j int) bool {
		return notes[i].UpdatedAt.After(notes[j].UpdatedAt)
	})
	return notes, nil
}

func (f *fakeStore) Search(ctx context.Context, ownerID int64, keyword string) ([]*models.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searchCalls++
	var notes []*models.Note
	for id, n := range f.notes {
		if f.deleted[id] || n.UserID != ownerID {
			continue
		}
		if strings.Contains(n.Title, keyword) || strings.Contains(n.Content, keyword) {
			cp := *n
			notes = append(notes, &cp)
		}
	}
	return notes, nil
}

func (f *fakeStore) AppendTx(ctx context.Context, tx *gorm.DB, version *models.NoteVersion) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	m := f.versions[version.NoteID]
	if m == nil {
		m = make(map[int]models.NoteVersion)
		f.versions[version.NoteID] = m
	}
	if _, exists := m[version.Version]; exists {
		return nil
	}
	m[version.Version] = *version
	return nil
}

func (f *fakeStore) ListByNote(ctx context.Context, noteID int64) ([]*models.NoteVersion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var rows []*models.NoteVersion
	for _, row := range f.versions[noteID] {
		cp := row
		rows = append(rows, &cp)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Version < rows[j].Version
	})
	return rows, nil
}

// fakeShareStore 内存版授权存储，联表语义通过持有 fakeStore 实现
type fakeShareStore struct {
	mu    sync.Mutex
	store *fakeStore
	rows  map[int64]*models.NoteShare // share id → row
}

func newFakeShareStore(store *fakeStore) *fakeShareStore {
	return &fakeShareStore{
		store: store,
		rows:  make(map[int64]*models.NoteShare),
	}
}

func (f *fakeShareStore) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

func (f *fakeShareStore) FindPairTx(ctx context.Context, tx *gorm.DB, noteID, sharedWith int64) (*models.NoteShare, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, row := range f.rows {
		if row.NoteID == noteID && row.SharedWith == sharedWith {
			cp := *row
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeShareStore) CreateTx(ctx context.Context, tx *gorm.DB, share *models.NoteShare) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *share
	f.rows[share.ID] = &cp
	return nil
}

func (f *fakeShareStore) UpdatePermissionTx(ctx context.Context, tx *gorm.DB, shareID int64, permission string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if row, ok := f.rows[shareID]; ok {
		row.Permission = permission
	}
	return nil
}

func (f *fakeShareStore) ExistsForUser(ctx context.Context, noteID, userID int64) (bool, error) {
	share, err := f.FindPairTx(ctx, nil, noteID, userID)
	return share != nil, err
}

func (f *fakeShareStore) ListSharedWith(ctx context.Context, userID int64) ([]*types.SharedNote, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*types.SharedNote
	for _, row := range f.rows {
		if row.SharedWith != userID {
			continue
		}
		note, err := f.store.FindByID(ctx, row.NoteID)
		if err != nil {
			return nil, err
		}
		if note == nil {
			continue
		}
		out = append(out, &types.SharedNote{
			ID:         note.ID,
			UserID:     note.UserID,
			UpdatedBy:  note.UpdatedBy,
			Title:      note.Title,
			Content:    note.Content,
			Version:    note.Version,
			CreatedAt:  note.CreatedAt,
			UpdatedAt:  note.UpdatedAt,
			Permission: row.Permission,
		})
	}
	return out, nil
}

// fakeUsers 内存版用户存储
type fakeUsers struct {
	mu    sync.Mutex
	users map[int64]*models.Users
}

func newFakeUsers(ids ...int64) *fakeUsers {
	f := &fakeUsers{users: make(map[int64]*models.Users)}
	for _, id := range ids {
		f.users[id] = &models.Users{ID: id}
	}
	return f
}

func (f *fakeUsers) FindByIDTx(ctx context.Context, tx *gorm.DB, userID int64) (*models.Users, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

// fakeCache 记录写入和失效的旁路缓存
type fakeCache struct {
	mu sync.Mutex

	notes     map[int64]*models.Note
	userNotes map[int64][]*models.Note
	search    map[string][]*models.Note
	shared    map[int64][]*types.SharedNote

	invalidatedNotes  []int64
	invalidatedUsers  []int64
	invalidatedShares [][2]int64
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		notes:     make(map[int64]*models.Note),
		userNotes: make(map[int64][]*models.Note),
		search:    make(map[string][]*models.Note),
		shared:    make(map[int64][]*types.SharedNote),
	}
}

func (f *fakeCache) GetNote(ctx context.Context, noteID int64) (*models.Note, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n, ok := f.notes[noteID]
	return n, ok
}

func (f *fakeCache) SetNote(ctx context.Context, note *models.Note) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notes[note.ID] = note
}

func (f *fakeCache) GetUserNotes(ctx context.Context, userID int64) ([]*models.Note, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	notes, ok := f.userNotes[userID]
	return notes, ok
}

func (f *fakeCache) SetUserNotes(ctx context.Context, userID int64, notes []*models.Note) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.userNotes[userID] = notes
}

func (f *fakeCache) GetSearch(ctx context.Context, userID int64, keyword string) ([]*models.Note, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	notes, ok := f.search[keyword]
	return notes, ok
}

func (f *fakeCache) SetSearch(ctx context.Context, userID int64, keyword string, notes []*models.Note) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.search[keyword] = notes
}

func (f *fakeCache) GetShared(ctx context.Context, userID int64) ([]*types.SharedNote, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	notes, ok := f.shared[userID]
	return notes, ok
}

func (f *fakeCache) SetShared(ctx context.Context, userID int64, notes []*types.SharedNote) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.shared[userID] = notes
}

func (f *fakeCache) InvalidateNote(ctx context.Context, noteID, ownerID int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.notes, noteID)
	delete(f.userNotes, ownerID)
	f.invalidatedNotes = append(f.invalidatedNotes, noteID)
	f.invalidatedUsers = append(f.invalidatedUsers, ownerID)
}

func (f *fakeCache) InvalidateUserNotes(ctx context.Context, ownerID int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.userNotes, ownerID)
	f.invalidatedUsers = append(f.invalidatedUsers, ownerID)
}

func (f *fakeCache) InvalidateShare(ctx context.Context, noteID, granteeID int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.notes, noteID)
	delete(f.shared, granteeID)
	f.invalidatedShares = append(f.invalidatedShares, [2]int64{noteID, granteeID})
}

func (f *fakeCache) noteInvalidations() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.invalidatedNotes)
}
