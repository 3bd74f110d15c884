//go:build wireinject

package offer

import (
	"github.com/alphahows/hows/internal/offer/internal/repository"
	"github.com/alphahows/hows/internal/offer/internal/service"
	"github.com/alphahows/hows/internal/offer/internal/web"
	"github.com/alphahows/hows/internal/pkg/identity"
	"github.com/alphahows/hows/internal/user"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	initDAO,
	initProducer,
	repository.NewOfferRepository,
	service.NewService,
	web.NewHandler,
)

func InitModule(db *egorm.Component, q mq.MQ, resolver *identity.Resolver, userModule *user.Module) *Module {
	wire.Build(
		wire.FieldsOf(new(*user.Module), "Svc"),
		ProviderSet,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}
