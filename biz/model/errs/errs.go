package errs

import (
	"fmt"
	"net/http"
)

type Error interface {
	Error() string
	Code() int32
	Msg() string
	Details() map[string]string
	SetErr(err error) Error
	SetMsg(msg string) Error
	SetDetails(details map[string]string) Error
}

type bizError struct {
	code    int32
	msg     string
	details map[string]string
}

func (bizErr *bizError) Error() string {
	return fmt.Sprintf("%d:%s", bizErr.code, bizErr.msg)
}

func (bizErr *bizError) Code() int32 {
	return bizErr.code
}

func (bizErr *bizError) Msg() string {
	return bizErr.msg
}

func (bizErr *bizError) Details() map[string]string {
	return bizErr.details
}

func (bizErr *bizError) SetErr(err error) Error {
	return &bizError{code: bizErr.code, msg: err.Error(), details: bizErr.details}
}

func (bizErr *bizError) SetMsg(msg string) Error {
	return &bizError{code: bizErr.code, msg: msg, details: bizErr.details}
}

func (bizErr *bizError) SetDetails(details map[string]string) Error {
	return &bizError{code: bizErr.code, msg: bizErr.msg, details: details}
}

func New(code int32, msg string) Error {
	return &bizError{
		code: code,
		msg:  msg,
	}
}

func ErrorEqual(err1, err2 Error) bool {
	if err1 == nil && err2 == nil {
		return true
	}

	if err1 == nil || err2 == nil {
		return false
	}

	return err1.Code() == err2.Code()
}

var (
	Success         = New(0, "success")
	ServerError     = New(1_0001, "internal server error")
	ParamError      = New(1_0002, "param error")
	Unauthorized    = New(1_0003, "user unauthorized")
	TooManyRequest  = New(1_0004, "too many request")
	LoginReachLimit = New(1_0005, "login reach limit")
	RequestBlocked  = New(1_0006, "request is blocked")
	NotImplemented  = New(1_0007, "not implemented")

	// one message for unknown email and wrong password
	InvalidCredentials = New(2_0001, "invalid email or password")
	UserNotExist       = New(2_0002, "user not exist")
	EmailDuplicated    = New(2_0003, "user already exists")

	VenueNotExist = New(3_0001, "venue not exist")
)

var httpStatus = map[int32]int{
	Success.Code():            http.StatusOK,
	ServerError.Code():        http.StatusInternalServerError,
	ParamError.Code():         http.StatusBadRequest,
	Unauthorized.Code():       http.StatusUnauthorized,
	TooManyRequest.Code():     http.StatusTooManyRequests,
	LoginReachLimit.Code():    http.StatusTooManyRequests,
	RequestBlocked.Code():     http.StatusForbidden,
	NotImplemented.Code():     http.StatusNotImplemented,
	InvalidCredentials.Code(): http.StatusUnauthorized,
	UserNotExist.Code():       http.StatusNotFound,
	EmailDuplicated.Code():    http.StatusConflict,
	VenueNotExist.Code():      http.StatusNotFound,
}

// HTTPStatus maps a business error to the status code the boundary answers with.
func HTTPStatus(err Error) int {
	if err == nil {
		return http.StatusOK
	}
	if code, ok := httpStatus[err.Code()]; ok {
		return code
	}
	return http.StatusInternalServerError
}
