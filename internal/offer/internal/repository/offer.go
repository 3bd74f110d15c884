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

package repository

import (
	"context"
	"time"

	"github.com/alphahows/hows/internal/offer/internal/domain"
	"github.com/alphahows/hows/internal/offer/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

var ErrOfferNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./offer.go -package=repomocks -destination=mocks/offer.mock.go OfferRepository
type OfferRepository interface {
	Create(ctx context.Context, o domain.Offer) (domain.Offer, error)
	FindById(ctx context.Context, id int64) (domain.Offer, error)
	FindByIdAndRecruiter(ctx context.Context, id, recruiterId int64) (domain.Offer, error)
	FindAll(ctx context.Context) ([]domain.Offer, error)
	FindByRecruiter(ctx context.Context, recruiterId int64) ([]domain.Offer, error)
	CountAdminUnread(ctx context.Context) (int64, error)
	CountRecruiterUnread(ctx context.Context, recruiterId int64) (int64, error)
	ConfirmAll(ctx context.Context, recruiterId int64) (int64, error)
	// Update 原子的读-改-写，fn 返回 error 就放弃修改
	Update(ctx context.Context, id int64, fn func(o *domain.Offer) error) (domain.Offer, error)
	AddMessage(ctx context.Context, m domain.Message, fn func(o *domain.Offer) error) (domain.Message, error)
	FindMessages(ctx context.Context, offerId int64) ([]domain.Message, error)
}

type offerRepository struct {
	dao dao.OfferDAO
}

func NewOfferRepository(d dao.OfferDAO) OfferRepository {
	return &offerRepository{dao: d}
}

func (r *offerRepository) Create(ctx context.Context, o domain.Offer) (domain.Offer, error) {
	entity, err := r.dao.Insert(ctx, r.toEntity(o))
	if err != nil {
		return domain.Offer{}, err
	}
	return r.toDomain(entity), nil
}

func (r *offerRepository) FindById(ctx context.Context, id int64) (domain.Offer, error) {
	o, err := r.dao.FindById(ctx, id)
	return r.toDomain(o), err
}

func (r *offerRepository) FindByIdAndRecruiter(ctx context.Context, id, recruiterId int64) (domain.Offer, error) {
	o, err := r.dao.FindByIdAndRecruiter(ctx, id, recruiterId)
	return r.toDomain(o), err
}

func (r *offerRepository) FindAll(ctx context.Context) ([]domain.Offer, error) {
	os, err := r.dao.FindAll(ctx)
	return r.toDomains(os), err
}

func (r *offerRepository) FindByRecruiter(ctx context.Context, recruiterId int64) ([]domain.Offer, error) {
	os, err := r.dao.FindByRecruiter(ctx, recruiterId)
	return r.toDomains(os), err
}

func (r *offerRepository) CountAdminUnread(ctx context.Context) (int64, error) {
	return r.dao.CountAdminUnread(ctx)
}

func (r *offerRepository) CountRecruiterUnread(ctx context.Context, recruiterId int64) (int64, error) {
	return r.dao.CountRecruiterUnread(ctx, recruiterId)
}

func (r *offerRepository) ConfirmAll(ctx context.Context, recruiterId int64) (int64, error) {
	return r.dao.ConfirmAllByRecruiter(ctx, recruiterId)
}

func (r *offerRepository) Update(ctx context.Context, id int64, fn func(o *domain.Offer) error) (domain.Offer, error) {
	o, err := r.dao.Update(ctx, id, r.wrap(fn))
	if err != nil {
		return domain.Offer{}, err
	}
	return r.toDomain(o), nil
}

func (r *offerRepository) AddMessage(ctx context.Context, m domain.Message, fn func(o *domain.Offer) error) (domain.Message, error) {
	entity, err := r.dao.InsertMessage(ctx, dao.OfferMessage{
		OfferId:     m.OfferId,
		SenderType:  string(m.SenderType),
		SenderEmail: m.SenderEmail,
		Content:     m.Content,
	}, r.wrap(fn))
	if err != nil {
		return domain.Message{}, err
	}
	return r.messageToDomain(entity), nil
}

func (r *offerRepository) FindMessages(ctx context.Context, offerId int64) ([]domain.Message, error) {
	ms, err := r.dao.FindMessages(ctx, offerId)
	return slice.Map(ms, func(idx int, src dao.OfferMessage) domain.Message {
		return r.messageToDomain(src)
	}), err
}

// wrap 只把状态和已读标记写回去
func (r *offerRepository) wrap(fn func(o *domain.Offer) error) func(o *dao.Offer) error {
	return func(entity *dao.Offer) error {
		o := r.toDomain(*entity)
		if err := fn(&o); err != nil {
			return err
		}
		entity.Status = o.Status.String()
		entity.AdminRead = o.AdminRead
		entity.RecruiterRead = o.RecruiterRead
		return nil
	}
}

func (r *offerRepository) toDomains(os []dao.Offer) []domain.Offer {
	return slice.Map(os, func(idx int, src dao.Offer) domain.Offer {
		return r.toDomain(src)
	})
}

func (r *offerRepository) toEntity(o domain.Offer) dao.Offer {
	return dao.Offer{
		Id:             o.Id,
		RecruiterId:    o.RecruiterId,
		RecruiterEmail: o.RecruiterEmail,
		CompanyName:    o.CompanyName,
		PositionTitle:  o.PositionTitle,
		ContactEmail:   o.ContactEmail,
		ContactPhone:   o.ContactPhone,
		EmploymentType: string(o.EmploymentType),
		WorkType:       string(o.WorkType),
		Message:        o.Message,
		SalaryMin:      o.SalaryMin,
		SalaryMax:      o.SalaryMax,
		Currency:       o.Currency,
		SalaryUnit:     string(o.SalaryUnit),
		Status:         o.Status.String(),
		AdminRead:      o.AdminRead,
		RecruiterRead:  o.RecruiterRead,
	}
}

func (r *offerRepository) toDomain(o dao.Offer) domain.Offer {
	return domain.Offer{
		Id:             o.Id,
		RecruiterId:    o.RecruiterId,
		RecruiterEmail: o.RecruiterEmail,
		CompanyName:    o.CompanyName,
		PositionTitle:  o.PositionTitle,
		ContactEmail:   o.ContactEmail,
		ContactPhone:   o.ContactPhone,
		EmploymentType: domain.EmploymentType(o.EmploymentType),
		WorkType:       domain.WorkType(o.WorkType),
		Message:        o.Message,
		SalaryMin:      o.SalaryMin,
		SalaryMax:      o.SalaryMax,
		Currency:       o.Currency,
		SalaryUnit:     domain.SalaryUnit(o.SalaryUnit),
		Status:         domain.Status(o.Status),
		AdminRead:      o.AdminRead,
		RecruiterRead:  o.RecruiterRead,
		Ctime:          time.UnixMilli(o.Ctime),
		Utime:          time.UnixMilli(o.Utime),
	}
}

func (r *offerRepository) messageToDomain(m dao.OfferMessage) domain.Message {
	return domain.Message{
		Id:          m.Id,
		OfferId:     m.OfferId,
		SenderType:  domain.SenderType(m.SenderType),
		SenderEmail: m.SenderEmail,
		Content:     m.Content,
		Ctime:       time.UnixMilli(m.Ctime),
	}
}
