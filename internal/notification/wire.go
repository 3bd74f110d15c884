//go:build wireinject

package notification

import (
	"github.com/alphahows/hows/internal/notification/internal/service"
	"github.com/alphahows/hows/internal/notification/internal/web"
	"github.com/alphahows/hows/internal/pkg/identity"
	"github.com/alphahows/hows/internal/user"
	"github.com/ecodeclub/mq-api"
	"github.com/google/wire"
)

func InitModule(q mq.MQ, resolver *identity.Resolver, userModule *user.Module) *Module {
	wire.Build(
		wire.FieldsOf(new(*user.Module), "Svc"),
		initHub,
		service.NewService,
		web.NewHandler,
		initOfferEventConsumer,
		initRobotEventConsumer,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}
