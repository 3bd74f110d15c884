package event

// OfferEventName 通知模块订阅这个 topic
const OfferEventName = "offer_events"

const (
	TypeOfferCreated       = "OFFER_CREATED"
	TypeOfferStatusChanged = "OFFER_STATUS_CHANGED"
	TypeOfferReadByAdmin   = "OFFER_READ_BY_ADMIN"
)

const (
	// AudienceAdmins 发给所有管理员
	AudienceAdmins = "admins"
	// AudienceUser 发给 Receiver 指定的用户
	AudienceUser = "user"
)

type OfferEvent struct {
	Type     string `json:"type"`
	Audience string `json:"audience"`
	// 规范化之后的身份标识
	Receiver string `json:"receiver"`
	OfferId  int64  `json:"offerId"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	Ctime    int64  `json:"ctime"`
}
