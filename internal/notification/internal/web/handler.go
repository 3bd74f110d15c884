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

package web

import (
	"io"
	"net/http"
	"time"

	"github.com/alphahows/hows/internal/notification/internal/domain"
	"github.com/alphahows/hows/internal/notification/internal/service"
	"github.com/alphahows/hows/internal/pkg/identity"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const (
	NotificationEvt = "notification"
	PingEvt         = "ping"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc          service.Service
	resolver     *identity.Resolver
	pingInterval time.Duration
	logger       *elog.Component
}

func NewHandler(svc service.Service, resolver *identity.Resolver) *Handler {
	return &Handler{
		svc:          svc,
		resolver:     resolver,
		pingInterval: 30 * time.Second,
		logger:       elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/notifications")
	g.GET("/stream", ginx.S(h.Stream))
	g.GET("/topics/:key", ginx.S(h.StreamTopic))
}

// Stream 当前用户的私有队列
func (h *Handler) Stream(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	uid, err := h.resolver.Resolve(identity.FromSession(sess))
	if err != nil {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return ginx.Result{}, ginx.ErrNoResponse
	}
	sub := h.svc.SubscribeUser(uid)
	defer sub.Close()
	h.stream(ctx, sub)
	return ginx.Result{}, ginx.ErrNoResponse
}

// StreamTopic 只能订阅自己的 topic
func (h *Handler) StreamTopic(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	uid, err := h.resolver.Resolve(identity.FromSession(sess))
	if err != nil {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return ginx.Result{}, ginx.ErrNoResponse
	}
	key := ctx.Context.Param("key")
	if key != domain.TopicKey(uid) {
		h.logger.Warn("订阅别人的 topic",
			elog.String("identity", uid),
			elog.String("key", key))
		ctx.AbortWithStatus(http.StatusForbidden)
		return ginx.Result{}, ginx.ErrNoResponse
	}
	sub := h.svc.SubscribeTopic(key)
	defer sub.Close()
	h.stream(ctx, sub)
	return ginx.Result{}, ginx.ErrNoResponse
}

func (h *Handler) stream(ctx *ginx.Context, sub *service.Subscription) {
	ctx.Header("Cache-Control", "no-cache")
	ctx.Header("Connection", "keep-alive")
	ctx.Header("X-Accel-Buffering", "no")
	ticker := time.NewTicker(h.pingInterval)
	defer ticker.Stop()
	done := ctx.Request.Context().Done()
	// 先发一个事件，客户端可以据此确认订阅已经建立
	ctx.SSEvent(PingEvt, time.Now().UnixMilli())
	ctx.Writer.Flush()
	ctx.Stream(func(w io.Writer) bool {
		select {
		case <-done:
			return false
		case n, ok := <-sub.C():
			if !ok {
				return false
			}
			ctx.SSEvent(NotificationEvt, n)
			return true
		case t := <-ticker.C:
			ctx.SSEvent(PingEvt, t.UnixMilli())
			return true
		}
	})
}
