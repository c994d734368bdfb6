package service

import "Memo/pkg/response"

// 业务错误。ErrNoteNotFound 同时覆盖"不存在"和"不可见"，
// 避免向请求者泄露他无权看到的笔记是否存在
var (
	ErrEmptyTitleContent = response.NewError(response.CodeValidation, "标题和内容不能为空")
	ErrEmptyKeyword      = response.NewError(response.CodeValidation, "搜索关键词不能为空")
	ErrInvalidPermission = response.NewError(response.CodeValidation, "权限取值只能是 read 或 edit")
	ErrNoteNotFound      = response.NewError(response.CodeNotFound, "笔记不存在")
	ErrNoteConflict      = response.NewError(response.CodeConflict, "笔记已被其他用户修改，请重新读取后提交")
	ErrAccessDenied      = response.NewError(response.CodeAccessDenied, "无权限操作该笔记")
	ErrInvalidGrantee    = response.NewError(response.CodeInvalidGrantee, "被分享用户不存在")
	ErrEmailExists       = response.NewError(response.CodeValidation, "邮箱已注册")
	ErrInvalidLogin      = response.NewError(response.CodeAccessDenied, "邮箱或密码错误")
)
