package event

import (
	"strconv"

	"github.com/alphahows/hows/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
)

//go:generate mockgen -source=./producer.go -package=evtmocks -destination=../../mocks/producer.mock.go OfferEventProducer
type OfferEventProducer mqx.Producer[OfferEvent]

func NewOfferEventProducer(q mq.MQ) (OfferEventProducer, error) {
	// 同一个 offer 的事件按顺序消费
	return mqx.NewGeneralProducer[OfferEvent](q, OfferEventName, mqx.WithKey(func(evt OfferEvent) string {
		return strconv.FormatInt(evt.OfferId, 10)
	}))
}
