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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

type Text struct {
	Content string `json:"content"`
}

type RobotMessage struct {
	MsgType string `json:"msgtype"`
	Text    Text   `json:"text"`
}

type HTTPPOSTFunc func(url, contentType string, body io.Reader) (resp *http.Response, err error)

type RobotConfig struct {
	// Webhook 为空就不转发
	Webhook string `yaml:"webhook"`
}

// RobotEventConsumer 新的 offer 同时转发到运营群的机器人
type RobotEventConsumer struct {
	consumer mq.Consumer
	config   RobotConfig
	post     HTTPPOSTFunc
	logger   *elog.Component
}

func NewRobotEventConsumer(q mq.MQ, config RobotConfig) (*RobotEventConsumer, error) {
	const groupID = "notification.robot"
	consumer, err := q.Consumer(OfferEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &RobotEventConsumer{
		consumer: consumer,
		config:   config,
		post:     http.Post,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("notification.robot.consumer")),
	}, nil
}

func (c *RobotEventConsumer) Start(ctx context.Context) {
	if c.config.Webhook == "" {
		c.logger.Info("没有配置机器人地址，不转发 offer 通知")
		return
	}
	go consumeLoop(ctx, c.consumer, c.Handle, c.logger, defaultRetryInterval, defaultMaxRetryInterval)
}

func (c *RobotEventConsumer) Handle(ctx context.Context, msg *mq.Message) error {
	var evt OfferEvent
	err := json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	// 只关心新 offer
	if evt.Type != TypeOfferCreated || c.config.Webhook == "" {
		return nil
	}
	data, err := json.Marshal(&RobotMessage{
		MsgType: "text",
		Text:    Text{Content: fmt.Sprintf("%s\n%s (offer #%d)", evt.Title, evt.Body, evt.OfferId)},
	})
	if err != nil {
		return fmt.Errorf("序列化机器人消息失败: %w", err)
	}
	resp, err := c.post(c.config.Webhook, "application/json", bytes.NewBuffer(data))
	if err != nil {
		return fmt.Errorf("向机器人发送请求失败: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("机器人处理请求失败: %s", http.StatusText(resp.StatusCode))
	}
	return nil
}
