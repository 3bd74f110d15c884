package web

import (
	"github.com/alphahows/hows/internal/user/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = resultOf(errs.SystemError)
	loginFailedResult = resultOf(errs.LoginFailed)
)

func resultOf(code errs.ErrorCode) ginx.Result {
	return ginx.Result{Code: code.Code, Msg: code.Msg}
}
