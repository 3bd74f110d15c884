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

package user

import (
	"github.com/alphahows/hows/internal/user/internal/repository"
	"github.com/alphahows/hows/internal/user/internal/repository/dao"
	"github.com/alphahows/hows/internal/user/internal/service"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
)

func initKakaoOAuthService() service.OAuth2Service {
	type Config struct {
		ClientID     string `yaml:"clientID"`
		ClientSecret string `yaml:"clientSecret"`
		RedirectURL  string `yaml:"redirectURL"`
	}
	var cfg Config
	err := econf.UnmarshalKey("kakao", &cfg)
	if err != nil {
		panic(err)
	}
	return service.NewKakaoService(cfg.ClientID, cfg.ClientSecret, cfg.RedirectURL)
}

func initUserService(repo repository.UserRepository) service.UserService {
	// 没有配置就是空的
	var admins []string
	_ = econf.UnmarshalKey("user.admins", &admins)
	return service.NewUserService(repo, admins)
}

func initDAO(db *egorm.Component) dao.UserDAO {
	err := dao.InitTables(db)
	if err != nil {
		panic(err)
	}
	return dao.NewGORMUserDAO(db)
}
