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
	"fmt"
	"strings"
	"time"

	"github.com/alphahows/hows/internal/offer/internal/domain"
	"github.com/alphahows/hows/internal/offer/internal/event"
	"github.com/alphahows/hows/internal/offer/internal/repository"
	"github.com/alphahows/hows/internal/user"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -source=./offer.go -package=svcmocks -destination=../../mocks/offer.mock.go Service
type Service interface {
	Create(ctx context.Context, identity string, o domain.Offer) (domain.OfferView, error)
	List(ctx context.Context, identity string, filter domain.Filter) ([]domain.OfferView, error)
	Get(ctx context.Context, identity string, id int64) (domain.OfferView, error)
	UpdateStatus(ctx context.Context, identity string, id int64, target domain.Status) (domain.OfferView, error)
	// MarkAdminRead 只有管理员可以调用
	MarkAdminRead(ctx context.Context, identity string, id int64, read bool) (domain.OfferView, error)
	UnreadCount(ctx context.Context, identity string) (int64, error)
	// ConfirmAll 发起人一次性确认所有未读的 offer，返回确认的数量
	ConfirmAll(ctx context.Context, identity string) (int64, error)
	ConfirmOne(ctx context.Context, identity string, id int64) (domain.OfferView, error)
	PostMessage(ctx context.Context, identity string, id int64, content string) (domain.Message, error)
	ListMessages(ctx context.Context, identity string, id int64) ([]domain.Message, error)
}

type service struct {
	repo     repository.OfferRepository
	userSvc  user.Service
	producer event.OfferEventProducer
	// 异步发送通知，测试里面替换成同步的
	goFunc         func(fn func())
	publishTimeout time.Duration
	logger         *elog.Component
}

func NewService(repo repository.OfferRepository,
	userSvc user.Service,
	producer event.OfferEventProducer) Service {
	return &service{
		repo:     repo,
		userSvc:  userSvc,
		producer: producer,
		goFunc: func(fn func()) {
			go fn()
		},
		publishTimeout: 3 * time.Second,
		logger:         elog.DefaultLogger.With(elog.FieldComponent("offer.service")),
	}
}

func (s *service) Create(ctx context.Context, identity string, o domain.Offer) (domain.OfferView, error) {
	caller, err := s.caller(ctx, identity)
	if err != nil {
		return domain.OfferView{}, err
	}
	if !o.ValidSalaryRange() {
		return domain.OfferView{}, ErrInvalidRange
	}
	o.Id = 0
	o.RecruiterId = caller.Id
	o.RecruiterEmail = caller.Email
	o.Currency = domain.NormalizeCurrency(o.Currency)
	o.Status = domain.StatusSubmitted
	o.AdminRead = false
	o.RecruiterRead = true
	created, err := s.repo.Create(ctx, o)
	if err != nil {
		return domain.OfferView{}, fmt.Errorf("保存 offer 失败: %w", err)
	}
	s.publish(ctx, event.OfferEvent{
		Type:     event.TypeOfferCreated,
		Audience: event.AudienceAdmins,
		OfferId:  created.Id,
		Title:    "收到新的 Offer",
		Body:     fmt.Sprintf("%s - %s", created.CompanyName, created.PositionTitle),
	})
	return domain.NewOfferView(created, caller), nil
}

func (s *service) List(ctx context.Context, identity string, filter domain.Filter) ([]domain.OfferView, error) {
	caller, err := s.caller(ctx, identity)
	if err != nil {
		return nil, err
	}
	var offers []domain.Offer
	if caller.Admin {
		offers, err = s.repo.FindAll(ctx)
	} else {
		offers, err = s.repo.FindByRecruiter(ctx, caller.Id)
	}
	if err != nil {
		return nil, err
	}
	offers = slice.FilterMap(offers, func(idx int, o domain.Offer) (domain.Offer, bool) {
		if filter.Status != "" && o.Status != filter.Status {
			return o, false
		}
		// 不管什么角色都和 AdminRead 比较
		if filter.Read != nil && o.AdminRead != *filter.Read {
			return o, false
		}
		return o, o.Matches(filter.Keyword, caller)
	})
	return slice.Map(offers, func(idx int, o domain.Offer) domain.OfferView {
		return domain.NewOfferView(o, caller)
	}), nil
}

func (s *service) Get(ctx context.Context, identity string, id int64) (domain.OfferView, error) {
	caller, err := s.caller(ctx, identity)
	if err != nil {
		return domain.OfferView{}, err
	}
	o, err := s.find(ctx, caller, id)
	if err != nil {
		return domain.OfferView{}, err
	}
	return domain.NewOfferView(o, caller), nil
}

func (s *service) UpdateStatus(ctx context.Context, identity string, id int64, target domain.Status) (domain.OfferView, error) {
	caller, err := s.caller(ctx, identity)
	if err != nil {
		return domain.OfferView{}, err
	}
	o, err := s.repo.Update(ctx, id, func(o *domain.Offer) error {
		if !o.VisibleTo(caller) {
			return ErrNotFound
		}
		if !o.Status.CanTransitTo(target) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, target)
		}
		o.Status = target
		// 管理员操作过，即便状态没变也算已读，并且要重新提醒发起人
		if caller.Admin {
			o.AdminRead = true
			o.RecruiterRead = false
		}
		return nil
	})
	if err != nil {
		return domain.OfferView{}, s.mapErr(err)
	}
	if caller.Admin {
		s.publish(ctx, event.OfferEvent{
			Type:     event.TypeOfferStatusChanged,
			Audience: event.AudienceUser,
			Receiver: o.RecruiterEmail,
			OfferId:  o.Id,
			Title:    "Offer 状态已更新",
			Body:     fmt.Sprintf("当前状态: %s", o.Status),
		})
	}
	return domain.NewOfferView(o, caller), nil
}

func (s *service) MarkAdminRead(ctx context.Context, identity string, id int64, read bool) (domain.OfferView, error) {
	caller, err := s.caller(ctx, identity)
	if err != nil {
		return domain.OfferView{}, err
	}
	// 先检查能不能看到，再检查权限
	if _, err = s.find(ctx, caller, id); err != nil {
		return domain.OfferView{}, err
	}
	if !caller.Admin {
		return domain.OfferView{}, ErrForbidden
	}
	firstRead := false
	o, err := s.repo.Update(ctx, id, func(o *domain.Offer) error {
		if !o.AdminRead && read {
			firstRead = true
			o.RecruiterRead = false
		}
		o.AdminRead = read
		return nil
	})
	if err != nil {
		return domain.OfferView{}, s.mapErr(err)
	}
	if firstRead {
		s.publish(ctx, event.OfferEvent{
			Type:     event.TypeOfferReadByAdmin,
			Audience: event.AudienceUser,
			Receiver: o.RecruiterEmail,
			OfferId:  o.Id,
			Title:    "管理员已查看 Offer",
			Body:     fmt.Sprintf("%s - %s", o.CompanyName, o.PositionTitle),
		})
	}
	return domain.NewOfferView(o, caller), nil
}

func (s *service) UnreadCount(ctx context.Context, identity string) (int64, error) {
	caller, err := s.caller(ctx, identity)
	if err != nil {
		return 0, err
	}
	if caller.Admin {
		return s.repo.CountAdminUnread(ctx)
	}
	return s.repo.CountRecruiterUnread(ctx, caller.Id)
}

func (s *service) ConfirmAll(ctx context.Context, identity string) (int64, error) {
	caller, err := s.caller(ctx, identity)
	if err != nil {
		return 0, err
	}
	if caller.Admin {
		return 0, ErrInvalidOperation
	}
	return s.repo.ConfirmAll(ctx, caller.Id)
}

func (s *service) ConfirmOne(ctx context.Context, identity string, id int64) (domain.OfferView, error) {
	caller, err := s.caller(ctx, identity)
	if err != nil {
		return domain.OfferView{}, err
	}
	if caller.Admin {
		return domain.OfferView{}, ErrInvalidOperation
	}
	o, err := s.repo.Update(ctx, id, func(o *domain.Offer) error {
		// 只能确认自己的
		if o.RecruiterId != caller.Id {
			return ErrNotFound
		}
		o.RecruiterRead = true
		return nil
	})
	if err != nil {
		return domain.OfferView{}, s.mapErr(err)
	}
	return domain.NewOfferView(o, caller), nil
}

func (s *service) PostMessage(ctx context.Context, identity string, id int64, content string) (domain.Message, error) {
	caller, err := s.caller(ctx, identity)
	if err != nil {
		return domain.Message{}, err
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return domain.Message{}, ErrInvalidOperation
	}
	m, err := s.repo.AddMessage(ctx, domain.Message{
		OfferId:     id,
		SenderType:  domain.SenderOf(caller),
		SenderEmail: caller.Email,
		Content:     content,
	}, func(o *domain.Offer) error {
		if !o.VisibleTo(caller) {
			return ErrNotFound
		}
		// 新消息对另外一方来说是未读的
		if caller.Admin {
			o.RecruiterRead = false
		} else {
			o.AdminRead = false
		}
		return nil
	})
	if err != nil {
		return domain.Message{}, s.mapErr(err)
	}
	return m, nil
}

func (s *service) ListMessages(ctx context.Context, identity string, id int64) ([]domain.Message, error) {
	caller, err := s.caller(ctx, identity)
	if err != nil {
		return nil, err
	}
	if _, err = s.find(ctx, caller, id); err != nil {
		return nil, err
	}
	return s.repo.FindMessages(ctx, id)
}

// caller 每次都根据身份标识重新查一遍用户
func (s *service) caller(ctx context.Context, identity string) (domain.Caller, error) {
	if strings.TrimSpace(identity) == "" {
		return domain.Caller{}, ErrUnresolvedIdentity
	}
	u, err := s.userSvc.FindByEmail(ctx, identity)
	if errors.Is(err, user.ErrUserNotFound) {
		return domain.Caller{}, ErrUnresolvedIdentity
	}
	if err != nil {
		return domain.Caller{}, fmt.Errorf("查询用户失败: %w", err)
	}
	return domain.Caller{
		Id:    u.Id,
		Email: u.Email,
		Admin: u.IsAdmin(),
	}, nil
}

func (s *service) find(ctx context.Context, caller domain.Caller, id int64) (domain.Offer, error) {
	var (
		o   domain.Offer
		err error
	)
	if caller.Admin {
		o, err = s.repo.FindById(ctx, id)
	} else {
		o, err = s.repo.FindByIdAndRecruiter(ctx, id, caller.Id)
	}
	return o, s.mapErr(err)
}

func (s *service) mapErr(err error) error {
	if errors.Is(err, repository.ErrOfferNotFound) {
		return ErrNotFound
	}
	return err
}

// publish 异步发送，失败了只记录日志
func (s *service) publish(ctx context.Context, evt event.OfferEvent) {
	evt.Ctime = time.Now().UnixMilli()
	// 请求结束之后 ctx 会被复用，这里只保留链路信息
	bg := trace.ContextWithSpanContext(context.Background(), trace.SpanContextFromContext(ctx))
	s.goFunc(func() {
		pctx, cancel := context.WithTimeout(bg, s.publishTimeout)
		defer cancel()
		if err := s.producer.Produce(pctx, evt); err != nil {
			s.logger.Error("发送 offer 通知失败",
				elog.FieldErr(err),
				elog.FieldKey("event"),
				elog.FieldValueAny(evt),
			)
		}
	})
}
