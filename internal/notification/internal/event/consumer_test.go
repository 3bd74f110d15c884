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
package event

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alphahows/hows/internal/notification/internal/domain"
	"github.com/alphahows/hows/internal/notification/internal/service"
	"github.com/alphahows/hows/internal/user"
	usermocks "github.com/alphahows/hows/internal/user/mocks"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newMessage(t *testing.T, evt OfferEvent) *mq.Message {
	t.Helper()
	val, err := json.Marshal(evt)
	require.NoError(t, err)
	return &mq.Message{Value: val}
}

func TestOfferEventConsumer_Handle(t *testing.T) {
	ctrl := gomock.NewController(t)
	userSvc := usermocks.NewMockUserService(ctrl)
	userSvc.EXPECT().FindAdmins(gomock.Any()).Return([]user.User{
		{Id: 1, Email: "admin@hows.com", Role: user.RoleAdmin},
	}, nil).AnyTimes()
	svc := service.NewService(service.NewHub(4), userSvc)
	c := &OfferEventConsumer{svc: svc, logger: elog.DefaultLogger}

	admin := svc.SubscribeUser("admin@hows.com")
	recruiter := svc.SubscribeTopic(domain.TopicKey("hr@acme.com"))
	defer admin.Close()
	defer recruiter.Close()

	t.Run("通知管理员", func(t *testing.T) {
		err := c.Handle(context.Background(), newMessage(t, OfferEvent{
			Type:     TypeOfferCreated,
			Audience: AudienceAdmins,
			OfferId:  1,
			Title:    "收到新的 Offer",
			Body:     "Acme - Backend Engineer",
			Ctime:    123,
		}))
		require.NoError(t, err)
		assert.Equal(t, domain.Notification{
			Type:    domain.TypeOfferCreated,
			OfferId: 1,
			Title:   "收到新的 Offer",
			Body:    "Acme - Backend Engineer",
			Ctime:   123,
		}, <-admin.C())
	})

	t.Run("通知招聘方", func(t *testing.T) {
		err := c.Handle(context.Background(), newMessage(t, OfferEvent{
			Type:     TypeOfferStatusChanged,
			Audience: AudienceUser,
			Receiver: "hr@acme.com",
			OfferId:  1,
			Body:     "当前状态: UNDER_REVIEW",
		}))
		require.NoError(t, err)
		n := <-recruiter.C()
		assert.Equal(t, domain.TypeOfferStatusChanged, n.Type)
		assert.Equal(t, "当前状态: UNDER_REVIEW", n.Body)
	})

	t.Run("未知的通知对象", func(t *testing.T) {
		err := c.Handle(context.Background(), newMessage(t, OfferEvent{
			Type:     TypeOfferCreated,
			Audience: "everyone",
		}))
		assert.Error(t, err)
	})

	t.Run("消息格式错误", func(t *testing.T) {
		err := c.Handle(context.Background(), &mq.Message{Value: []byte("not json")})
		assert.Error(t, err)
	})
}
