package handler

import (
	"Memo/pkg/context"
	"Memo/pkg/response"
	"Memo/service"
	"Memo/types"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	AuthService service.IAuthService
}

func (a *Auth) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/auth")
	g.POST("/register", context.Wrap(a.Register))
	g.POST("/login", context.Wrap(a.Login))
	g.POST("/refresh", context.Wrap(a.Refresh))
}

// Register 注册新用户
func (a *Auth) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(response.CodeValidation, "参数格式错误: "+err.Error())
	}

	user, err := a.AuthService.Register(c.Request.Context(), &req)
	if err != nil {
		return err
	}

	response.Success(c, user)
	return nil
}

// Login 邮箱密码登录，返回双 token
func (a *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(response.CodeValidation, "参数格式错误: "+err.Error())
	}

	tokens, err := a.AuthService.Login(c.Request.Context(), &req)
	if err != nil {
		return err
	}

	response.Success(c, tokens)
	return nil
}

// Refresh 用 refresh token 换新的 token 对
func (a *Auth) Refresh(c *gin.Context) error {
	var req types.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(response.CodeValidation, "参数格式错误: "+err.Error())
	}

	tokens, err := a.AuthService.Refresh(c.Request.Context(), &req)
	if err != nil {
		return err
	}

	response.Success(c, tokens)
	return nil
}
