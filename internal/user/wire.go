//go:build wireinject

package user

import (
	"github.com/alphahows/hows/internal/pkg/identity"
	"github.com/alphahows/hows/internal/user/internal/repository"
	"github.com/alphahows/hows/internal/user/internal/repository/cache"
	"github.com/alphahows/hows/internal/user/internal/web"
	"github.com/ecodeclub/ecache"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(web.NewHandler,
	cache.NewUserECache,
	initDAO,
	initKakaoOAuthService,
	initUserService,
	repository.NewCachedUserRepository)

func InitModule(db *egorm.Component, cache ecache.Cache, resolver *identity.Resolver) *Module {
	wire.Build(ProviderSet, wire.Struct(new(Module), "*"))
	return new(Module)
}
