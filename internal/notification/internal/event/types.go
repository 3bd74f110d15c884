package event

// OfferEventName 和 offer 模块发送的 topic 保持一致
const OfferEventName = "offer_events"

// 事件类型
const (
	TypeOfferCreated       = "OFFER_CREATED"
	TypeOfferStatusChanged = "OFFER_STATUS_CHANGED"
	TypeOfferReadByAdmin   = "OFFER_READ_BY_ADMIN"
)

const (
	AudienceAdmins = "admins"
	AudienceUser   = "user"
)

type OfferEvent struct {
	Type     string `json:"type"`
	Audience string `json:"audience"`
	Receiver string `json:"receiver"`
	OfferId  int64  `json:"offerId"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	Ctime    int64  `json:"ctime"`
}
