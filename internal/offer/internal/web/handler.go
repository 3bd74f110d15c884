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
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/alphahows/hows/internal/offer/internal/domain"
	"github.com/alphahows/hows/internal/offer/internal/errs"
	"github.com/alphahows/hows/internal/offer/internal/service"
	"github.com/alphahows/hows/internal/pkg/identity"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc      service.Service
	resolver *identity.Resolver
	logger   *elog.Component
}

func NewHandler(svc service.Service, resolver *identity.Resolver) *Handler {
	return &Handler{
		svc:      svc,
		resolver: resolver,
		logger:   elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/offers")
	g.POST("", ginx.BS[CreateOfferReq](h.Create))
	g.GET("", ginx.S(h.List))
	// 要放在 /:id 前面
	g.GET("/unread-count", ginx.S(h.UnreadCount))
	g.POST("/confirm", ginx.S(h.ConfirmAll))
	g.GET("/:id", ginx.S(h.Detail))
	g.PATCH("/:id/status", ginx.BS[UpdateStatusReq](h.UpdateStatus))
	g.PATCH("/:id/read", ginx.BS[MarkReadReq](h.MarkRead))
	g.PATCH("/:id/confirm", ginx.S(h.ConfirmOne))
	g.POST("/:id/messages", ginx.BS[PostMessageReq](h.PostMessage))
	g.GET("/:id/messages", ginx.S(h.ListMessages))
}

func (h *Handler) Create(ctx *ginx.Context, req CreateOfferReq, sess session.Session) (ginx.Result, error) {
	if !validCreateReq(req) {
		return h.writeErr(ctx, http.StatusBadRequest, errs.InvalidInput)
	}
	uid, err := h.identity(sess)
	if err != nil {
		return h.errResult(ctx, err)
	}
	o, err := h.svc.Create(ctx.Request.Context(), uid, req.toDomain())
	if err != nil {
		return h.errResult(ctx, err)
	}
	return ginx.Result{Data: newOffer(o)}, nil
}

func (h *Handler) List(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	filter, ok := parseFilter(ctx)
	if !ok {
		return h.writeErr(ctx, http.StatusBadRequest, errs.InvalidInput)
	}
	uid, err := h.identity(sess)
	if err != nil {
		return h.errResult(ctx, err)
	}
	offers, err := h.svc.List(ctx.Request.Context(), uid, filter)
	if err != nil {
		return h.errResult(ctx, err)
	}
	return ginx.Result{
		Data: OfferList{
			Total:  len(offers),
			Offers: slice.Map(offers, func(idx int, src domain.OfferView) Offer { return newOffer(src) }),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	id, ok := offerId(ctx)
	if !ok {
		return h.writeErr(ctx, http.StatusBadRequest, errs.InvalidInput)
	}
	uid, err := h.identity(sess)
	if err != nil {
		return h.errResult(ctx, err)
	}
	o, err := h.svc.Get(ctx.Request.Context(), uid, id)
	if err != nil {
		return h.errResult(ctx, err)
	}
	return ginx.Result{Data: newOffer(o)}, nil
}

func (h *Handler) UpdateStatus(ctx *ginx.Context, req UpdateStatusReq, sess session.Session) (ginx.Result, error) {
	id, ok := offerId(ctx)
	if !ok {
		return h.writeErr(ctx, http.StatusBadRequest, errs.InvalidInput)
	}
	uid, err := h.identity(sess)
	if err != nil {
		return h.errResult(ctx, err)
	}
	o, err := h.svc.UpdateStatus(ctx.Request.Context(), uid, id, domain.ParseStatus(req.Status))
	if err != nil {
		return h.errResult(ctx, err)
	}
	return ginx.Result{Data: newOffer(o)}, nil
}

func (h *Handler) MarkRead(ctx *ginx.Context, req MarkReadReq, sess session.Session) (ginx.Result, error) {
	id, ok := offerId(ctx)
	if !ok {
		return h.writeErr(ctx, http.StatusBadRequest, errs.InvalidInput)
	}
	uid, err := h.identity(sess)
	if err != nil {
		return h.errResult(ctx, err)
	}
	read := req.Read != nil && *req.Read
	o, err := h.svc.MarkAdminRead(ctx.Request.Context(), uid, id, read)
	if err != nil {
		return h.errResult(ctx, err)
	}
	return ginx.Result{Data: newOffer(o)}, nil
}

func (h *Handler) UnreadCount(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	uid, err := h.identity(sess)
	if err != nil {
		return h.errResult(ctx, err)
	}
	cnt, err := h.svc.UnreadCount(ctx.Request.Context(), uid)
	if err != nil {
		return h.errResult(ctx, err)
	}
	return ginx.Result{Data: cnt}, nil
}

func (h *Handler) ConfirmAll(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	uid, err := h.identity(sess)
	if err != nil {
		return h.errResult(ctx, err)
	}
	cnt, err := h.svc.ConfirmAll(ctx.Request.Context(), uid)
	if err != nil {
		return h.errResult(ctx, err)
	}
	return ginx.Result{Data: cnt}, nil
}

func (h *Handler) ConfirmOne(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	id, ok := offerId(ctx)
	if !ok {
		return h.writeErr(ctx, http.StatusBadRequest, errs.InvalidInput)
	}
	uid, err := h.identity(sess)
	if err != nil {
		return h.errResult(ctx, err)
	}
	o, err := h.svc.ConfirmOne(ctx.Request.Context(), uid, id)
	if err != nil {
		return h.errResult(ctx, err)
	}
	return ginx.Result{Data: newOffer(o)}, nil
}

func (h *Handler) PostMessage(ctx *ginx.Context, req PostMessageReq, sess session.Session) (ginx.Result, error) {
	id, ok := offerId(ctx)
	if !ok {
		return h.writeErr(ctx, http.StatusBadRequest, errs.InvalidInput)
	}
	uid, err := h.identity(sess)
	if err != nil {
		return h.errResult(ctx, err)
	}
	m, err := h.svc.PostMessage(ctx.Request.Context(), uid, id, req.Content)
	if err != nil {
		return h.errResult(ctx, err)
	}
	return ginx.Result{Data: newMessage(m)}, nil
}

func (h *Handler) ListMessages(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	id, ok := offerId(ctx)
	if !ok {
		return h.writeErr(ctx, http.StatusBadRequest, errs.InvalidInput)
	}
	uid, err := h.identity(sess)
	if err != nil {
		return h.errResult(ctx, err)
	}
	ms, err := h.svc.ListMessages(ctx.Request.Context(), uid, id)
	if err != nil {
		return h.errResult(ctx, err)
	}
	return ginx.Result{
		Data: slice.Map(ms, func(idx int, src domain.Message) Message { return newMessage(src) }),
	}, nil
}

func (h *Handler) identity(sess session.Session) (string, error) {
	return h.resolver.Resolve(identity.FromSession(sess))
}

// errResult 业务错误自己写响应，其余的交给 ginx 记录日志
func (h *Handler) errResult(ctx *ginx.Context, err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrUnresolvedIdentity):
		return h.writeErr(ctx, http.StatusUnauthorized, errs.Unauthorized)
	case errors.Is(err, service.ErrNotFound):
		return h.writeErr(ctx, http.StatusNotFound, errs.NotFound)
	case errors.Is(err, service.ErrForbidden):
		return h.writeErr(ctx, http.StatusForbidden, errs.Forbidden)
	case errors.Is(err, service.ErrInvalidRange):
		return h.writeErr(ctx, http.StatusBadRequest, errs.InvalidRange)
	case errors.Is(err, service.ErrInvalidTransition):
		return h.writeErr(ctx, http.StatusBadRequest, errs.InvalidTransition)
	case errors.Is(err, service.ErrInvalidOperation):
		return h.writeErr(ctx, http.StatusBadRequest, errs.InvalidOperation)
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) writeErr(ctx *ginx.Context, status int, code errs.ErrorCode) (ginx.Result, error) {
	ctx.JSON(status, resultOf(code))
	return ginx.Result{}, ginx.ErrNoResponse
}

func offerId(ctx *ginx.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Context.Param("id"), 10, 64)
	return id, err == nil && id > 0
}

func parseFilter(ctx *ginx.Context) (domain.Filter, bool) {
	var filter domain.Filter
	if status := ctx.Context.Query("status"); status != "" {
		filter.Status = domain.ParseStatus(status)
		if !filter.Status.Valid() {
			return filter, false
		}
	}
	if read := ctx.Context.Query("read"); read != "" {
		val, err := strconv.ParseBool(read)
		if err != nil {
			return filter, false
		}
		filter.Read = &val
	}
	filter.Keyword = strings.TrimSpace(ctx.Context.Query("keyword"))
	return filter, true
}

func validCreateReq(req CreateOfferReq) bool {
	if strings.TrimSpace(req.CompanyName) == "" || strings.TrimSpace(req.PositionTitle) == "" {
		return false
	}
	if !domain.EmploymentType(req.EmploymentType).Valid() ||
		!domain.WorkType(req.WorkType).Valid() ||
		!domain.SalaryUnit(req.SalaryUnit).Valid() {
		return false
	}
	c := domain.NormalizeCurrency(req.Currency)
	return c == "" || len(c) == 3
}
