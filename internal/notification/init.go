package notification

import (
	"github.com/alphahows/hows/internal/notification/internal/event"
	"github.com/alphahows/hows/internal/notification/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/econf"
)

func initHub() *service.Hub {
	// 每个连接最多积压多少条通知
	return service.NewHub(econf.GetInt("notification.queueSize"))
}

func initOfferEventConsumer(svc service.Service, q mq.MQ) *event.OfferEventConsumer {
	c, err := event.NewOfferEventConsumer(svc, q)
	if err != nil {
		panic(err)
	}
	return c
}

func initRobotEventConsumer(q mq.MQ) *event.RobotEventConsumer {
	var cfg event.RobotConfig
	err := econf.UnmarshalKey("notification.robot", &cfg)
	if err != nil {
		panic(err)
	}
	c, err := event.NewRobotEventConsumer(q, cfg)
	if err != nil {
		panic(err)
	}
	return c
}
