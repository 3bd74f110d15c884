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
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alphahows/hows/internal/notification/internal/domain"
	"github.com/alphahows/hows/internal/notification/internal/service"
	"github.com/alphahows/hows/internal/pkg/identity"
	_ "github.com/alphahows/hows/internal/test"
	usermocks "github.com/alphahows/hows/internal/user/mocks"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newServer(t *testing.T, svc service.Service, claims map[string]string) *httptest.Server {
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
	return httptest.NewServer(server)
}

// readEvent 读取下一个 SSE 事件
func readEvent(t *testing.T, r *bufio.Reader) (string, string) {
	t.Helper()
	var name, data string
	for {
		line, err := r.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimRight(line, "\n")
		switch {
		case strings.HasPrefix(line, "event:"):
			name = strings.TrimPrefix(line, "event:")
		case strings.HasPrefix(line, "data:"):
			data = strings.TrimPrefix(line, "data:")
		case line == "" && name != "":
			return name, data
		}
	}
}

func TestHandler_Stream(t *testing.T) {
	ctrl := gomock.NewController(t)
	hub := service.NewHub(4)
	svc := service.NewService(hub, usermocks.NewMockUserService(ctrl))
	claims := identity.ClaimsOf(identity.LocalSubject{Subject: "hr@acme.com"})

	testCases := []struct {
		name    string
		path    string
		address string
	}{
		{
			name:    "私有队列",
			path:    "/notifications/stream",
			address: domain.UserQueue("hr@acme.com"),
		},
		{
			name:    "自己的 topic",
			path:    "/notifications/topics/hr_acme_com",
			address: domain.TopicAddress("hr_acme_com"),
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			server := newServer(t, svc, claims)
			defer server.Close()
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+tc.path, nil)
			require.NoError(t, err)
			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			require.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Contains(t, resp.Header.Get("Content-Type"), "text/event-stream")

			r := bufio.NewReader(resp.Body)
			name, _ := readEvent(t, r)
			assert.Equal(t, PingEvt, name)
			require.Equal(t, 1, hub.Subscribers(tc.address))

			want := domain.Notification{
				Type:    domain.TypeOfferStatusChanged,
				OfferId: 1,
				Title:   "Offer 状态已更新",
				Body:    "当前状态: UNDER_REVIEW",
				Ctime:   123,
			}
			svc.Notify(context.Background(), "hr@acme.com", want)
			name, data := readEvent(t, r)
			assert.Equal(t, NotificationEvt, name)
			var got domain.Notification
			require.NoError(t, json.Unmarshal([]byte(data), &got))
			assert.Equal(t, want, got)

			cancel()
			assert.Eventually(t, func() bool {
				return hub.Subscribers(tc.address) == 0
			}, 3*time.Second, 10*time.Millisecond)
		})
	}
}

func TestHandler_StreamRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := service.NewService(service.NewHub(4), usermocks.NewMockUserService(ctrl))
	testCases := []struct {
		name     string
		claims   map[string]string
		path     string
		wantCode int
	}{
		{
			name:     "订阅别人的 topic",
			claims:   identity.ClaimsOf(identity.LocalSubject{Subject: "hr@acme.com"}),
			path:     "/notifications/topics/hr_globex_com",
			wantCode: http.StatusForbidden,
		},
		{
			name:     "无法识别身份",
			claims:   map[string]string{},
			path:     "/notifications/stream",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "社交账号没有邮箱也没有 id",
			claims:   map[string]string{identity.ClaimProvider: "kakao"},
			path:     "/notifications/stream",
			wantCode: http.StatusUnauthorized,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			server := newServer(t, svc, tc.claims)
			defer server.Close()
			resp, err := http.Get(server.URL + tc.path)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tc.wantCode, resp.StatusCode)
		})
	}
}
