package repository

import (
	"context"
	"database/sql"

	"github.com/alphahows/hows/internal/user/internal/domain"
	"github.com/alphahows/hows/internal/user/internal/repository/cache"
	"github.com/alphahows/hows/internal/user/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"golang.org/x/sync/singleflight"
)

var (
	ErrUserNotFound  = dao.ErrDataNotFound
	ErrUserDuplicate = dao.ErrUserDuplicate
)

//go:generate mockgen -source=./user.go -package=repomocks -destination=mocks/user.mock.go UserRepository
type UserRepository interface {
	Create(ctx context.Context, u domain.User) (int64, error)
	// Update 更新数据，只有非 0 值才会更新
	Update(ctx context.Context, u domain.User) error
	// FindByEmail 走缓存，不会返回密码
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	// FindCredential 直接查询数据库，带上密码
	FindCredential(ctx context.Context, email string) (domain.User, error)
	FindById(ctx context.Context, id int64) (domain.User, error)
	FindByRole(ctx context.Context, role string) ([]domain.User, error)
}

// CachedUserRepository 使用了缓存的 repository 实现
type CachedUserRepository struct {
	dao   dao.UserDAO
	cache cache.UserCache
	// 每个 offer 请求都要按邮箱查用户，缓存失效的时候合并对数据库的查询
	group singleflight.Group
}

// NewCachedUserRepository 支持缓存的实现
func NewCachedUserRepository(d dao.UserDAO,
	c cache.UserCache) UserRepository {
	return &CachedUserRepository{
		dao:   d,
		cache: c,
	}
}

func (ur *CachedUserRepository) Update(ctx context.Context, u domain.User) error {
	err := ur.dao.UpdateNonZeroFields(ctx, ur.domainToEntity(u))
	if err != nil {
		return err
	}
	return ur.cache.Delete(ctx, u.Email)
}

func (ur *CachedUserRepository) Create(ctx context.Context, u domain.User) (int64, error) {
	return ur.dao.Insert(ctx, ur.domainToEntity(u))
}

func (ur *CachedUserRepository) FindByEmail(ctx context.Context,
	email string) (domain.User, error) {
	u, err := ur.cache.Get(ctx, email)
	if err == nil {
		return u, nil
	}
	val, err, _ := ur.group.Do(email, func() (any, error) {
		ue, err := ur.dao.FindByEmail(ctx, email)
		if err != nil {
			return domain.User{}, err
		}
		res := ur.entityToDomain(ue)
		res.Password = ""
		// 忽略掉这里的错误
		_ = ur.cache.Set(ctx, res)
		return res, nil
	})
	if err != nil {
		return domain.User{}, err
	}
	return val.(domain.User), nil
}

func (ur *CachedUserRepository) FindCredential(ctx context.Context, email string) (domain.User, error) {
	ue, err := ur.dao.FindByEmail(ctx, email)
	return ur.entityToDomain(ue), err
}

func (ur *CachedUserRepository) FindById(ctx context.Context,
	id int64) (domain.User, error) {
	ue, err := ur.dao.FindById(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	u := ur.entityToDomain(ue)
	u.Password = ""
	return u, nil
}

func (ur *CachedUserRepository) FindByRole(ctx context.Context, role string) ([]domain.User, error) {
	us, err := ur.dao.FindByRole(ctx, role)
	if err != nil {
		return nil, err
	}
	return slice.Map(us, func(idx int, src dao.User) domain.User {
		u := ur.entityToDomain(src)
		u.Password = ""
		return u
	}), nil
}

func (ur *CachedUserRepository) domainToEntity(u domain.User) dao.User {
	return dao.User{
		Id:       u.Id,
		Email:    u.Email,
		Nickname: u.Nickname,
		Provider: u.Provider,
		Role:     u.Role,
		Password: sql.NullString{
			String: u.Password,
			Valid:  u.Password != "",
		},
	}
}

func (ur *CachedUserRepository) entityToDomain(ue dao.User) domain.User {
	return domain.User{
		Id:       ue.Id,
		Email:    ue.Email,
		Nickname: ue.Nickname,
		Provider: ue.Provider,
		Role:     ue.Role,
		Password: ue.Password.String,
	}
}
