// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package identity

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

type Resolver struct {
	providers map[string]Provider
}

func NewResolver(providers map[string]Provider) *Resolver {
	ps := make(map[string]Provider, len(providers))
	for name, p := range providers {
		ps[strings.ToLower(name)] = p
	}
	return &Resolver{providers: ps}
}

// Resolve 计算规范化的身份标识。纯函数，不会创建或者修改用户
func (r *Resolver) Resolve(auth *Authentication) (string, error) {
	if auth == nil || !auth.Authenticated || auth.Principal == nil {
		return "", ErrUnresolvedIdentity
	}
	switch p := auth.Principal.(type) {
	case LocalSubject:
		if strings.TrimSpace(p.Subject) == "" {
			return "", ErrUnresolvedIdentity
		}
		return p.Subject, nil
	case *LocalSubject:
		if p == nil {
			return "", ErrUnresolvedIdentity
		}
		return r.Resolve(&Authentication{Authenticated: true, Principal: *p})
	case SocialProfile:
		return r.resolveSocial(p)
	case *SocialProfile:
		if p == nil {
			return "", ErrUnresolvedIdentity
		}
		return r.resolveSocial(*p)
	default:
		return "", ErrUnresolvedIdentity
	}
}

func (r *Resolver) resolveSocial(p SocialProfile) (string, error) {
	name := strings.ToLower(p.Provider)
	cfg, ok := r.providers[name]
	if !ok {
		cfg = Provider{
			AccountKey: name + "_account",
			MailDomain: name + ".com",
		}
	}
	// 1. 第三方账号里面的邮箱
	account := cast.ToStringMap(p.Attributes[cfg.AccountKey])
	if email := strings.TrimSpace(cast.ToString(account["email"])); email != "" {
		return email, nil
	}
	// 2. 第三方的用户 id
	if id := strings.TrimSpace(cast.ToString(p.Attributes["id"])); id != "" {
		return fmt.Sprintf("%s@%s", id, cfg.MailDomain), nil
	}
	// 3. 名字
	if n := strings.TrimSpace(p.Name); n != "" {
		return fmt.Sprintf("%s@%s", n, cfg.MailDomain), nil
	}
	return "", ErrUnresolvedIdentity
}
