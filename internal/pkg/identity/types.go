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

// Package identity 把不同登录方式的主体统一成一个邮箱格式的身份标识。
// 业务代码只认这个标识，不关心用户是本地登录还是社交登录。
package identity

import "errors"

var ErrUnresolvedIdentity = errors.New("无法识别当前用户身份")

// Principal 登录主体，只有本包里的类型可以实现
type Principal interface {
	principal()
}

// LocalSubject 本地登录，Subject 就是邮箱
type LocalSubject struct {
	Subject string
}

func (LocalSubject) principal() {}

// SocialProfile 社交登录
type SocialProfile struct {
	// kakao
	Provider   string
	Name       string
	Attributes map[string]any
}

func (SocialProfile) principal() {}

type Authentication struct {
	Authenticated bool
	Principal     Principal
}

// Provider 社交登录提供方的配置
type Provider struct {
	// AccountKey 第三方资料里面放账号信息的字段，例如 kakao_account
	AccountKey string `yaml:"accountKey"`
	// MailDomain 拼接兜底邮箱时使用，例如 kakao.com
	MailDomain string `yaml:"mailDomain"`
}

func DefaultProviders() map[string]Provider {
	return map[string]Provider{
		"kakao": {
			AccountKey: "kakao_account",
			MailDomain: "kakao.com",
		},
	}
}
