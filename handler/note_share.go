package handler

import (
	"Memo/config"
	"Memo/middleware"
	"Memo/pkg/context"
	"Memo/pkg/response"
	"Memo/service"
	"Memo/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type NoteShare struct {
	ShareService service.INoteShareService
	Config       *config.Config
}

func (s *NoteShare) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(s.Config.Jwt.Secret))
	g := r.Group("/v1/shares", authorize)
	g.POST("", context.Wrap(s.ShareNote))
	g.GET("", context.Wrap(s.ListShared))
}

// ShareNote 把笔记分享给其他用户，重复分享只更新权限
func (s *NoteShare) ShareNote(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	var req types.ShareNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(response.CodeValidation, "参数格式错误: "+err.Error())
	}

	resp, err := s.ShareService.ShareNote(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}

	response.Success(c, resp)
	return nil
}

// ListShared 分享给我的笔记列表
func (s *NoteShare) ListShared(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	notes, err := s.ShareService.ListShared(c.Request.Context(), userID)
	if err != nil {
		return err
	}

	response.Success(c, notes)
	return nil
}
