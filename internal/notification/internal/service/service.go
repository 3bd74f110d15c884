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
	"fmt"
	"strings"

	"github.com/alphahows/hows/internal/notification/internal/domain"
	"github.com/alphahows/hows/internal/user"
	"github.com/gotomicro/ego/core/elog"
)

type Service interface {
	// Notify 同时发到用户私有队列和用户的 topic
	Notify(ctx context.Context, identity string, n domain.Notification)
	BroadcastToAdmins(ctx context.Context, n domain.Notification) error
	SubscribeUser(identity string) *Subscription
	SubscribeTopic(key string) *Subscription
}

type service struct {
	hub     *Hub
	userSvc user.Service
	logger  *elog.Component
}

func NewService(hub *Hub, userSvc user.Service) Service {
	return &service{
		hub:     hub,
		userSvc: userSvc,
		logger:  elog.DefaultLogger.With(elog.FieldComponent("notification.service")),
	}
}

func (s *service) Notify(ctx context.Context, identity string, n domain.Notification) {
	if identity == "" {
		return
	}
	cnt := s.hub.Publish(domain.UserQueue(identity), n)
	cnt += s.hub.Publish(domain.TopicAddress(domain.TopicKey(identity)), n)
	s.logger.Debug("发送通知",
		elog.String("identity", identity),
		elog.String("type", n.Type),
		elog.Int("delivered", cnt))
}

func (s *service) BroadcastToAdmins(ctx context.Context, n domain.Notification) error {
	admins, err := s.userSvc.FindAdmins(ctx)
	if err != nil {
		return fmt.Errorf("查询管理员失败: %w", err)
	}
	for _, a := range admins {
		if strings.TrimSpace(a.Email) == "" {
			continue
		}
		s.Notify(ctx, a.Email, n)
	}
	return nil
}

func (s *service) SubscribeUser(identity string) *Subscription {
	return s.hub.Subscribe(domain.UserQueue(identity))
}

func (s *service) SubscribeTopic(key string) *Subscription {
	return s.hub.Subscribe(domain.TopicAddress(key))
}
