package errs

var (
	SystemError       = ErrorCode{Code: 518001, Msg: "系统错误"}
	InvalidInput      = ErrorCode{Code: 418001, Msg: "参数错误"}
	InvalidRange      = ErrorCode{Code: 418002, Msg: "最低薪资不能高于最高薪资"}
	InvalidTransition = ErrorCode{Code: 418003, Msg: "不允许的状态变更"}
	InvalidOperation  = ErrorCode{Code: 418004, Msg: "当前角色不能执行该操作"}
	Unauthorized      = ErrorCode{Code: 418005, Msg: "无法识别当前用户"}
	Forbidden         = ErrorCode{Code: 418006, Msg: "没有权限"}
	NotFound          = ErrorCode{Code: 418007, Msg: "offer 不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
