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

package service

import (
	"context"
	"errors"
	"strings"

	"github.com/alphahows/hows/internal/user/internal/domain"
	"github.com/alphahows/hows/internal/user/internal/repository"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound       = repository.ErrUserNotFound
	ErrInvalidCredentials = errors.New("邮箱或者密码不对")
)

//go:generate mockgen -source=./user.go -package=svcmocks -destination=mocks/user.mock.go UserService
type UserService interface {
	Profile(ctx context.Context, id int64) (domain.User, error)
	// FindByEmail 按照规范化之后的身份标识查找用户
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindAdmins(ctx context.Context) ([]domain.User, error)
	// FindOrCreateBySocial 社交登录，有就更新昵称，没有就创建
	FindOrCreateBySocial(ctx context.Context, u domain.User) (domain.User, error)
	LocalLogin(ctx context.Context, email, password string) (domain.User, error)
}

type userService struct {
	repo repository.UserRepository
	// 配置里面的管理员邮箱，登录时提升为 ADMIN
	admins []string
	logger *elog.Component
}

func NewUserService(repo repository.UserRepository, admins []string) UserService {
	return &userService{
		repo: repo,
		admins: slice.Map(admins, func(idx int, src string) string {
			return strings.ToLower(strings.TrimSpace(src))
		}),
		logger: elog.DefaultLogger,
	}
}

func (svc *userService) Profile(ctx context.Context, id int64) (domain.User, error) {
	return svc.repo.FindById(ctx, id)
}

func (svc *userService) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	return svc.repo.FindByEmail(ctx, email)
}

func (svc *userService) FindAdmins(ctx context.Context) ([]domain.User, error) {
	return svc.repo.FindByRole(ctx, domain.RoleAdmin)
}

func (svc *userService) FindOrCreateBySocial(ctx context.Context, u domain.User) (domain.User, error) {
	found, err := svc.repo.FindCredential(ctx, u.Email)
	switch {
	case err == nil:
		found.Password = ""
		changed := domain.User{Id: found.Id, Email: found.Email}
		if u.Nickname != "" && u.Nickname != found.Nickname {
			changed.Nickname = u.Nickname
			found.Nickname = u.Nickname
		}
		if svc.isConfiguredAdmin(found.Email) && !found.IsAdmin() {
			changed.Role = domain.RoleAdmin
			found.Role = domain.RoleAdmin
		}
		if changed.Nickname == "" && changed.Role == "" {
			return found, nil
		}
		return found, svc.repo.Update(ctx, changed)
	case errors.Is(err, repository.ErrUserNotFound):
	default:
		return domain.User{}, err
	}

	u.Role = domain.RoleUser
	if svc.isConfiguredAdmin(u.Email) {
		u.Role = domain.RoleAdmin
	}
	u.Password = ""
	id, err := svc.repo.Create(ctx, u)
	if errors.Is(err, repository.ErrUserDuplicate) {
		// 并发登录，另外一个请求已经创建好了
		return svc.repo.FindByEmail(ctx, u.Email)
	}
	if err != nil {
		return domain.User{}, err
	}
	u.Id = id
	svc.logger.Info("社交登录创建用户",
		elog.String("provider", u.Provider),
		elog.String("email", u.Email))
	return u, nil
}

func (svc *userService) LocalLogin(ctx context.Context, email, password string) (domain.User, error) {
	u, err := svc.repo.FindCredential(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domain.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return domain.User{}, err
	}
	if u.Password == "" {
		// 社交登录的用户没有密码
		return domain.User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return domain.User{}, ErrInvalidCredentials
	}
	u.Password = ""
	if svc.isConfiguredAdmin(u.Email) && !u.IsAdmin() {
		u.Role = domain.RoleAdmin
		err = svc.repo.Update(ctx, domain.User{Id: u.Id, Email: u.Email, Role: domain.RoleAdmin})
		if err != nil {
			return domain.User{}, err
		}
	}
	return u, nil
}

func (svc *userService) isConfiguredAdmin(email string) bool {
	return slice.Contains(svc.admins, strings.ToLower(email))
}
