package handler

import (
	"Memo/config"
	"Memo/middleware"
	"Memo/pkg/context"
	"Memo/pkg/response"
	"Memo/service"
	"Memo/types"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Note struct {
	NoteService service.INoteService
	Config      *config.Config
}

func (n *Note) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(n.Config.Jwt.Secret))
	g := r.Group("/v1/notes", authorize)
	g.POST("", context.Wrap(n.CreateNote))
	g.GET("", context.Wrap(n.ListNotes))
	g.GET("/search", context.Wrap(n.SearchNotes))
	g.GET("/:id", context.Wrap(n.GetNote))
	g.PUT("/:id", context.Wrap(n.UpdateNote))
	g.DELETE("/:id", context.Wrap(n.DeleteNote))
	g.GET("/versions/:id", context.Wrap(n.ListVersions))
}

// CreateNote 创建笔记
func (n *Note) CreateNote(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	var req types.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(response.CodeValidation, "参数格式错误: "+err.Error())
	}

	note, err := n.NoteService.CreateNote(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}

	response.Success(c, note)
	return nil
}

// ListNotes 我的笔记列表
func (n *Note) ListNotes(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	notes, err := n.NoteService.ListNotes(c.Request.Context(), userID)
	if err != nil {
		return err
	}

	response.Success(c, notes)
	return nil
}

// SearchNotes 关键词搜索
func (n *Note) SearchNotes(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	notes, err := n.NoteService.SearchNotes(c.Request.Context(), userID, c.Query("q"))
	if err != nil {
		return err
	}

	response.Success(c, notes)
	return nil
}

// GetNote 查询单条笔记
func (n *Note) GetNote(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	noteID, err := parseNoteID(c)
	if err != nil {
		return err
	}

	note, err := n.NoteService.GetNote(c.Request.Context(), userID, noteID)
	if err != nil {
		return err
	}

	response.Success(c, note)
	return nil
}

// UpdateNote 更新笔记，乐观锁冲突时返回可重试错误
func (n *Note) UpdateNote(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	noteID, err := parseNoteID(c)
	if err != nil {
		return err
	}

	var req types.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(response.CodeValidation, "参数格式错误: "+err.Error())
	}

	note, err := n.NoteService.UpdateNote(c.Request.Context(), userID, noteID, &req)
	if err != nil {
		return err
	}

	response.Success(c, note)
	return nil
}

// DeleteNote 软删笔记
func (n *Note) DeleteNote(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	noteID, err := parseNoteID(c)
	if err != nil {
		return err
	}

	if err := n.NoteService.DeleteNote(c.Request.Context(), userID, noteID); err != nil {
		return err
	}

	response.Success(c, nil)
	return nil
}

// ListVersions 笔记历史版本，按版本号升序
func (n *Note) ListVersions(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	noteID, err := parseNoteID(c)
	if err != nil {
		return err
	}

	versions, err := n.NoteService.ListVersions(c.Request.Context(), userID, noteID)
	if err != nil {
		return err
	}

	response.Success(c, versions)
	return nil
}

func parseNoteID(c *gin.Context) (int64, error) {
	noteID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, response.NewError(response.CodeValidation, "笔记ID格式错误")
	}
	return noteID, nil
}
