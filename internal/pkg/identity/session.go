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
	"encoding/json"

	"github.com/ecodeclub/ginx/session"
)

// JWT 里面携带的身份字段
const (
	ClaimEmail    = "email"
	ClaimProvider = "provider"
	ClaimName     = "name"
	ClaimProfile  = "profile"
)

// ClaimsOf 构造登录时写进 JWT 的数据，和 FromSession 对应
func ClaimsOf(p Principal) map[string]string {
	switch val := p.(type) {
	case LocalSubject:
		return map[string]string{ClaimEmail: val.Subject}
	case SocialProfile:
		res := map[string]string{
			ClaimProvider: val.Provider,
			ClaimName:     val.Name,
		}
		if len(val.Attributes) > 0 {
			data, err := json.Marshal(val.Attributes)
			if err == nil {
				res[ClaimProfile] = string(data)
			}
		}
		return res
	default:
		return map[string]string{}
	}
}

// FromSession 从 session 里面还原登录主体
func FromSession(sess session.Session) *Authentication {
	if sess == nil {
		return nil
	}
	claims := sess.Claims()
	if provider := claims.Get(ClaimProvider).StringOrDefault(""); provider != "" {
		var attrs map[string]any
		if raw := claims.Get(ClaimProfile).StringOrDefault(""); raw != "" {
			// 解析失败就当没有，交给 Resolve 兜底
			_ = json.Unmarshal([]byte(raw), &attrs)
		}
		return &Authentication{
			Authenticated: true,
			Principal: SocialProfile{
				Provider:   provider,
				Name:       claims.Get(ClaimName).StringOrDefault(""),
				Attributes: attrs,
			},
		}
	}
	if email := claims.Get(ClaimEmail).StringOrDefault(""); email != "" {
		return &Authentication{
			Authenticated: true,
			Principal:     LocalSubject{Subject: email},
		}
	}
	return &Authentication{Authenticated: false}
}
