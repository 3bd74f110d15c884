package startup

import (
	"github.com/alphahows/hows/internal/offer/internal/event"
	"github.com/alphahows/hows/internal/offer/internal/repository/dao"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
)

func initDAO(db *egorm.Component) dao.OfferDAO {
	err := dao.InitTables(db)
	if err != nil {
		panic(err)
	}
	return dao.NewGORMOfferDAO(db)
}

func initProducer(q mq.MQ) event.OfferEventProducer {
	producer, err := event.NewOfferEventProducer(q)
	if err != nil {
		panic(err)
	}
	return producer
}
