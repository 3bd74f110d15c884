//go:build wireinject

package startup

import (
	"github.com/alphahows/hows/internal/offer"
	"github.com/alphahows/hows/internal/offer/internal/repository"
	"github.com/alphahows/hows/internal/offer/internal/service"
	"github.com/alphahows/hows/internal/offer/internal/web"
	"github.com/alphahows/hows/internal/pkg/identity"
	"github.com/alphahows/hows/internal/user"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, q mq.MQ, resolver *identity.Resolver, userModule *user.Module) *offer.Module {
	wire.Build(
		initDAO,
		initProducer,
		repository.NewOfferRepository,
		service.NewService,
		web.NewHandler,
		wire.FieldsOf(new(*user.Module), "Svc"),
		wire.Struct(new(offer.Module), "*"),
	)
	return new(offer.Module)
}
