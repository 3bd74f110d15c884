//go:build wireinject

package ioc

import (
	"github.com/alphahows/hows/internal/notification"
	"github.com/alphahows/hows/internal/offer"
	"github.com/alphahows/hows/internal/user"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ, InitResolver)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		user.InitModule,
		offer.InitModule,
		notification.InitModule,
		wire.FieldsOf(new(*user.Module), "Hdl"),
		wire.FieldsOf(new(*offer.Module), "Hdl"),
		wire.FieldsOf(new(*notification.Module), "Hdl"),
		initMQConsumers,
		InitSession,
		initGinxServer)
	return new(App), nil
}
