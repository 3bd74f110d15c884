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
	"fmt"

	"github.com/alphahows/hows/internal/notification/internal/domain"
	"github.com/alphahows/hows/internal/notification/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// OfferEventConsumer 把 offer 事件转成推送
type OfferEventConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewOfferEventConsumer(svc service.Service, q mq.MQ) (*OfferEventConsumer, error) {
	const groupID = "notification.offer"
	consumer, err := q.Consumer(OfferEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &OfferEventConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("notification.offer.consumer")),
	}, nil
}

func (c *OfferEventConsumer) Start(ctx context.Context) {
	go consumeLoop(ctx, c.consumer, c.Handle, c.logger, defaultRetryInterval, defaultMaxRetryInterval)
}

func (c *OfferEventConsumer) Handle(ctx context.Context, msg *mq.Message) error {
	var evt OfferEvent
	err := json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	n := domain.Notification{
		Type:    evt.Type,
		OfferId: evt.OfferId,
		Title:   evt.Title,
		Body:    evt.Body,
		Ctime:   evt.Ctime,
	}
	switch evt.Audience {
	case AudienceAdmins:
		return c.svc.BroadcastToAdmins(ctx, n)
	case AudienceUser:
		c.svc.Notify(ctx, evt.Receiver, n)
		return nil
	default:
		return fmt.Errorf("未知的通知对象 %s", evt.Audience)
	}
}
