package domain

import "strings"

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"

	ProviderLocal = "LOCAL"
	ProviderKakao = "KAKAO"
)

type User struct {
	Id int64
	// Email 是用户的唯一标识，本地登录和社交登录都会落到这里
	Email    string
	Nickname string
	Provider string
	Role     string
	// Password 只有本地登录才有，保存的是 bcrypt 之后的值
	Password string
	// 社交登录时第三方返回的原始资料，不落库
	Profile map[string]any
}

func (u User) IsAdmin() bool {
	return strings.EqualFold(u.Role, RoleAdmin)
}
