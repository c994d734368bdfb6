package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 业务错误码，客户端依据 code 判断错误类型做重试决策
const (
	CodeValidation     = 422 // 参数校验失败
	CodeNotFound       = 404 // 资源不存在或不可见
	CodeConflict       = 409 // 乐观锁冲突，可重试
	CodeAccessDenied   = 403 // 无权限
	CodeInvalidGrantee = 412 // 被分享用户不存在
)

type BizError struct {
	Code int
	Msg  string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{
		Code: httpStatus,
		Msg:  msg,
		Data: nil,
	})
}

func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.JSON(http.StatusInternalServerError, Response{
					Code: 500,
					Msg:  "系统异常",
				})
				c.Abort()
			}
		}()

		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err

			if be, ok := err.(*BizError); ok {
				Fail(c, be.Code, be.Msg)
			} else {
				Fail(c, 500, err.Error())
			}
			c.Abort()
		}
	}
}
