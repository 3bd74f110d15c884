package web

import "github.com/alphahows/hows/internal/user/internal/domain"

type Profile struct {
	Id       int64  `json:"id"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
	Provider string `json:"provider"`
	Role     string `json:"role"`
}

func newProfile(u domain.User) Profile {
	return Profile{
		Id:       u.Id,
		Email:    u.Email,
		Nickname: u.Nickname,
		Provider: u.Provider,
		Role:     u.Role,
	}
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type KakaoCallback struct {
	Code  string `json:"code" form:"code"`
	State string `json:"state" form:"state"`
}
