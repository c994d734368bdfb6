package types

// CreateNoteRequest 创建笔记请求
type CreateNoteRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// UpdateNoteRequest 更新笔记请求，基于最近一次读到的状态提交
type UpdateNoteRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}
