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
	"net/http"
	"testing"

	"github.com/alphahows/hows/internal/offer/internal/domain"
	"github.com/alphahows/hows/internal/offer/internal/errs"
	"github.com/alphahows/hows/internal/offer/internal/service"
	svcmocks "github.com/alphahows/hows/internal/offer/mocks"
	"github.com/alphahows/hows/internal/pkg/identity"
	"github.com/alphahows/hows/internal/test"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newServer(t *testing.T, svc service.Service, claims map[string]string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	server := gin.New()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid:  2,
			Data: claims,
		}))
	})
	NewHandler(svc, identity.NewResolver(identity.DefaultProviders())).PrivateRoutes(server)
	return server
}

func TestHandler_Create(t *testing.T) {
	recruiter := identity.ClaimsOf(identity.LocalSubject{Subject: "hr@acme.com"})
	validReq := CreateOfferReq{
		CompanyName:    "Acme",
		PositionTitle:  "Backend Engineer",
		EmploymentType: "FULL_TIME",
		WorkType:       "REMOTE",
		Currency:       "krw",
	}
	testCases := []struct {
		name     string
		claims   map[string]string
		req      any
		mock     func(ctrl *gomock.Controller) service.Service
		wantCode int
		wantResp test.Result[Offer]
	}{
		{
			name:   "创建成功",
			claims: recruiter,
			req:    validReq,
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().Create(gomock.Any(), "hr@acme.com", gomock.Any()).
					Return(domain.OfferView{
						Offer: domain.Offer{
							Id:             1,
							RecruiterEmail: "hr@acme.com",
							CompanyName:    "Acme",
							PositionTitle:  "Backend Engineer",
							EmploymentType: domain.EmploymentFullTime,
							WorkType:       domain.WorkRemote,
							Currency:       "KRW",
							Status:         domain.StatusSubmitted,
							RecruiterRead:  true,
						},
						ReadForCaller: true,
					}, nil)
				return svc
			},
			wantCode: http.StatusOK,
			wantResp: test.Result[Offer]{
				Data: Offer{
					Id:             1,
					RecruiterEmail: "hr@acme.com",
					CompanyName:    "Acme",
					PositionTitle:  "Backend Engineer",
					EmploymentType: "FULL_TIME",
					WorkType:       "REMOTE",
					Currency:       "KRW",
					Status:         "SUBMITTED",
					RecruiterRead:  true,
					Read:           true,
					Ctime:          (domain.Offer{}).Ctime.UnixMilli(),
					Utime:          (domain.Offer{}).Utime.UnixMilli(),
				},
			},
		},
		{
			name:   "缺少公司名",
			claims: recruiter,
			req: CreateOfferReq{
				PositionTitle:  "Backend Engineer",
				EmploymentType: "FULL_TIME",
				WorkType:       "REMOTE",
			},
			mock: func(ctrl *gomock.Controller) service.Service {
				return svcmocks.NewMockService(ctrl)
			},
			wantCode: http.StatusBadRequest,
			wantResp: test.Result[Offer]{Code: errs.InvalidInput.Code, Msg: errs.InvalidInput.Msg},
		},
		{
			name:   "非法的工作类型",
			claims: recruiter,
			req: CreateOfferReq{
				CompanyName:    "Acme",
				PositionTitle:  "Backend Engineer",
				EmploymentType: "FULL_TIME",
				WorkType:       "MARS",
			},
			mock: func(ctrl *gomock.Controller) service.Service {
				return svcmocks.NewMockService(ctrl)
			},
			wantCode: http.StatusBadRequest,
			wantResp: test.Result[Offer]{Code: errs.InvalidInput.Code, Msg: errs.InvalidInput.Msg},
		},
		{
			name:   "薪资范围非法",
			claims: recruiter,
			req:    validReq,
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(domain.OfferView{}, service.ErrInvalidRange)
				return svc
			},
			wantCode: http.StatusBadRequest,
			wantResp: test.Result[Offer]{Code: errs.InvalidRange.Code, Msg: errs.InvalidRange.Msg},
		},
		{
			name:   "没有身份信息",
			claims: map[string]string{},
			req:    validReq,
			mock: func(ctrl *gomock.Controller) service.Service {
				return svcmocks.NewMockService(ctrl)
			},
			wantCode: http.StatusUnauthorized,
			wantResp: test.Result[Offer]{Code: errs.Unauthorized.Code, Msg: errs.Unauthorized.Msg},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newServer(t, tc.mock(ctrl), tc.claims)
			req, err := http.NewRequest(http.MethodPost, "/offers", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[Offer]()
			server.ServeHTTP(recorder, req)
			assert.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func TestHandler_ErrorMapping(t *testing.T) {
	admin := identity.ClaimsOf(identity.LocalSubject{Subject: "admin@hows.com"})
	testCases := []struct {
		name     string
		method   string
		path     string
		body     any
		mock     func(svc *svcmocks.MockService)
		wantCode int
		wantErr  errs.ErrorCode
	}{
		{
			name:   "不存在",
			method: http.MethodGet,
			path:   "/offers/404",
			mock: func(svc *svcmocks.MockService) {
				svc.EXPECT().Get(gomock.Any(), "admin@hows.com", int64(404)).
					Return(domain.OfferView{}, service.ErrNotFound)
			},
			wantCode: http.StatusNotFound,
			wantErr:  errs.NotFound,
		},
		{
			name:   "非法 id",
			method: http.MethodGet,
			path:   "/offers/abc",
			mock: func(svc *svcmocks.MockService) {
			},
			wantCode: http.StatusBadRequest,
			wantErr:  errs.InvalidInput,
		},
		{
			name:   "没有权限",
			method: http.MethodPatch,
			path:   "/offers/1/read",
			// 不传 read 按未读处理
			body: MarkReadReq{},
			mock: func(svc *svcmocks.MockService) {
				svc.EXPECT().MarkAdminRead(gomock.Any(), "admin@hows.com", int64(1), false).
					Return(domain.OfferView{}, service.ErrForbidden)
			},
			wantCode: http.StatusForbidden,
			wantErr:  errs.Forbidden,
		},
		{
			name:   "非法状态变更",
			method: http.MethodPatch,
			path:   "/offers/1/status",
			body:   UpdateStatusReq{Status: "submitted"},
			mock: func(svc *svcmocks.MockService) {
				svc.EXPECT().UpdateStatus(gomock.Any(), "admin@hows.com", int64(1), domain.StatusSubmitted).
					Return(domain.OfferView{}, service.ErrInvalidTransition)
			},
			wantCode: http.StatusBadRequest,
			wantErr:  errs.InvalidTransition,
		},
		{
			name:   "管理员不能确认",
			method: http.MethodPost,
			path:   "/offers/confirm",
			mock: func(svc *svcmocks.MockService) {
				svc.EXPECT().ConfirmAll(gomock.Any(), "admin@hows.com").
					Return(int64(0), service.ErrInvalidOperation)
			},
			wantCode: http.StatusBadRequest,
			wantErr:  errs.InvalidOperation,
		},
		{
			name:   "非法的已读参数",
			method: http.MethodGet,
			path:   "/offers?read=maybe",
			mock: func(svc *svcmocks.MockService) {
			},
			wantCode: http.StatusBadRequest,
			wantErr:  errs.InvalidInput,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := svcmocks.NewMockService(ctrl)
			tc.mock(svc)
			server := newServer(t, svc, admin)
			req, err := http.NewRequest(tc.method, tc.path, iox.NewJSONReader(tc.body))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[any]()
			server.ServeHTTP(recorder, req)
			assert.Equal(t, tc.wantCode, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantErr.Code, res.Code)
			assert.Equal(t, tc.wantErr.Msg, res.Msg)
		})
	}
}

func TestHandler_ListAndCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := svcmocks.NewMockService(ctrl)
	read := false
	svc.EXPECT().List(gomock.Any(), "hr@acme.com", domain.Filter{
		Status:  domain.StatusUnderReview,
		Read:    &read,
		Keyword: "go",
	}).Return([]domain.OfferView{
		{Offer: domain.Offer{Id: 2, Status: domain.StatusUnderReview}},
		{Offer: domain.Offer{Id: 1, Status: domain.StatusUnderReview}, ReadForCaller: true},
	}, nil)
	svc.EXPECT().UnreadCount(gomock.Any(), "hr@acme.com").Return(int64(3), nil)

	server := newServer(t, svc, identity.ClaimsOf(identity.LocalSubject{Subject: "hr@acme.com"}))

	req, err := http.NewRequest(http.MethodGet, "/offers?status=under_review&read=false&keyword=%20go%20", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[OfferList]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	list := recorder.MustScan().Data
	assert.Equal(t, 2, list.Total)
	assert.Equal(t, int64(2), list.Offers[0].Id)
	assert.True(t, list.Offers[1].Read)

	req, err = http.NewRequest(http.MethodGet, "/offers/unread-count", nil)
	require.NoError(t, err)
	cntRecorder := test.NewJSONResponseRecorder[int64]()
	server.ServeHTTP(cntRecorder, req)
	require.Equal(t, http.StatusOK, cntRecorder.Code)
	assert.Equal(t, int64(3), cntRecorder.MustScan().Data)
}
