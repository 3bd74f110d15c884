package ioc

import (
	"github.com/alphahows/hows/internal/pkg/identity"
	"github.com/gotomicro/ego/core/econf"
)

// InitResolver 配置里面的第三方平台会覆盖默认配置
func InitResolver() *identity.Resolver {
	providers := identity.DefaultProviders()
	var cfg map[string]identity.Provider
	err := econf.UnmarshalKey("identity.providers", &cfg)
	if err == nil {
		for name, p := range cfg {
			providers[name] = p
		}
	}
	return identity.NewResolver(providers)
}
