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
	"sync"

	"github.com/alphahows/hows/internal/notification/internal/domain"
	"github.com/gotomicro/ego/core/elog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var droppedCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "hows",
	Subsystem: "notification",
	Name:      "dropped_total",
	Help:      "订阅者队列满了之后丢弃的通知数量",
}, []string{"type"})

// Subscription 一个连接对应一个订阅，队列有界
type Subscription struct {
	Address string
	ch      chan domain.Notification
	hub     *Hub
	once    sync.Once
}

// C 收通知，Close 之后会被关闭
func (s *Subscription) C() <-chan domain.Notification {
	return s.ch
}

func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.remove(s)
	})
}

// Hub 进程内的订阅表，不做持久化也不重试
type Hub struct {
	mu        sync.RWMutex
	subs      map[string]map[*Subscription]struct{}
	queueSize int
	logger    *elog.Component
}

func NewHub(queueSize int) *Hub {
	if queueSize <= 0 {
		queueSize = 16
	}
	return &Hub{
		subs:      make(map[string]map[*Subscription]struct{}),
		queueSize: queueSize,
		logger:    elog.DefaultLogger.With(elog.FieldComponent("notification.hub")),
	}
}

func (h *Hub) Subscribe(address string) *Subscription {
	sub := &Subscription{
		Address: address,
		ch:      make(chan domain.Notification, h.queueSize),
		hub:     h,
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.subs[address]
	if !ok {
		set = make(map[*Subscription]struct{})
		h.subs[address] = set
	}
	set[sub] = struct{}{}
	return sub
}

// Publish 返回成功放进队列的订阅数量，慢的订阅者只会丢自己的消息
func (h *Hub) Publish(address string, n domain.Notification) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	delivered := 0
	for sub := range h.subs[address] {
		select {
		case sub.ch <- n:
			delivered++
		default:
			droppedCounter.WithLabelValues(n.Type).Inc()
			h.logger.Warn("订阅者队列已满，丢弃通知",
				elog.String("address", address),
				elog.String("type", n.Type),
				elog.Int64("offerId", n.OfferId))
		}
	}
	return delivered
}

func (h *Hub) Subscribers(address string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[address])
}

// remove 先从订阅表里面摘掉再关闭 channel，Publish 持有读锁所以不会往关闭的 channel 里面写
func (h *Hub) remove(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if set, ok := h.subs[sub.Address]; ok {
		delete(set, sub)
		if len(set) == 0 {
			delete(h.subs, sub.Address)
		}
	}
	close(sub.ch)
}
