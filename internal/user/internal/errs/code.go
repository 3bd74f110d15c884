package errs

var (
	SystemError = ErrorCode{Code: 501001, Msg: "系统错误"}
	// LoginFailed 邮箱不存在或者密码错误都用这个，不区分
	LoginFailed = ErrorCode{Code: 501002, Msg: "邮箱或者密码错误"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
