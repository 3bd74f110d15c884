package domain

import (
	"strings"
)

const (
	TypeOfferCreated       = "OFFER_CREATED"
	TypeOfferStatusChanged = "OFFER_STATUS_CHANGED"
	TypeOfferReadByAdmin   = "OFFER_READ_BY_ADMIN"
)

// Notification 推送给前端的内容，不落库
type Notification struct {
	Type    string `json:"type"`
	OfferId int64  `json:"offerId"`
	Title   string `json:"title"`
	Body    string `json:"body"`
	Ctime   int64  `json:"ctime"`
}

// UserQueue 某个用户的私有队列
func UserQueue(identity string) string {
	return "/user/" + identity + "/queue/notifications"
}

func TopicAddress(key string) string {
	return "/topic/notifications/" + key
}

// TopicKey 转小写，除了 [a-z0-9] 之外的字符都替换成 _
func TopicKey(identity string) string {
	lower := strings.ToLower(identity)
	var sb strings.Builder
	sb.Grow(len(lower))
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
			continue
		}
		sb.WriteByte('_')
	}
	return sb.String()
}
