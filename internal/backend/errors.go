package backend

import "errors"

// 失败类别：登录态缺失、实体不存在、表单校验失败、网络或服务端错误
const (
	KindUnauthenticated  = "unauthenticated"
	KindNotFound         = "not_found"
	KindValidationFailed = "validation_failed"
	KindNetworkOrServer  = "network_or_server"
)

// Error 后端调用统一错误包装
// Message 为后端返回的提示文案，界面原样展示
type Error struct {
	Kind       string
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// WrapError 包装错误
func WrapError(kind string, statusCode int, message string, err error) *Error {
	return &Error{
		Kind:       kind,
		StatusCode: statusCode,
		Message:    message,
		Err:        err,
	}
}

// KindOf 返回错误类别，非本包错误一律视为网络或服务端错误
func KindOf(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindNetworkOrServer
}

// MessageOf 返回可展示的错误文案
func MessageOf(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return "request failed"
}

// IsUnauthenticated 判断是否为未登录错误
func IsUnauthenticated(err error) bool {
	return KindOf(err) == KindUnauthenticated
}

// IsNotFound 判断是否为实体不存在错误
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// IsValidationFailed 判断是否为校验失败错误
func IsValidationFailed(err error) bool {
	return KindOf(err) == KindValidationFailed
}
