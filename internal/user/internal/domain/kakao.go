package domain

// KakaoInfo 从 kakao 拿到的用户资料
type KakaoInfo struct {
	Id       int64
	Email    string
	Nickname string
	// Attributes 是 /v2/user/me 的原始返回，会原样放进 session
	Attributes map[string]any
}
