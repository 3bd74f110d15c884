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
//go:build e2e

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/alphahows/hows/internal/offer/internal/errs"
	"github.com/alphahows/hows/internal/offer/internal/event"
	"github.com/alphahows/hows/internal/offer/internal/integration/startup"
	"github.com/alphahows/hows/internal/offer/internal/repository/dao"
	"github.com/alphahows/hows/internal/offer/internal/web"
	"github.com/alphahows/hows/internal/pkg/identity"
	"github.com/alphahows/hows/internal/test"
	testioc "github.com/alphahows/hows/internal/test/ioc"
	"github.com/alphahows/hows/internal/user"
	usermocks "github.com/alphahows/hows/internal/user/mocks"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	adminEmail     = "admin@hows.com"
	recruiterEmail = "hr@acme.com"
	otherEmail     = "hr@globex.com"
	// 测试用，通过 header 切换当前登录的用户
	identityHeader = "X-Test-Identity"
)

func TestOfferHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

type HandlerTestSuite struct {
	suite.Suite
	db       *egorm.Component
	server   *egin.Component
	consumer mq.Consumer
}

func (s *HandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	q := testioc.InitMQ()
	consumer, err := q.Consumer(event.OfferEventName, "offer.e2e")
	require.NoError(s.T(), err)
	s.consumer = consumer

	ctrl := gomock.NewController(s.T())
	userSvc := usermocks.NewMockUserService(ctrl)
	users := map[string]user.User{
		adminEmail:     {Id: 1, Email: adminEmail, Role: user.RoleAdmin},
		recruiterEmail: {Id: 2, Email: recruiterEmail, Role: user.RoleUser},
		otherEmail:     {Id: 3, Email: otherEmail, Role: user.RoleUser},
	}
	userSvc.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, email string) (user.User, error) {
			u, ok := users[email]
			if !ok {
				return user.User{}, user.ErrUserNotFound
			}
			return u, nil
		}).AnyTimes()

	module := startup.InitModule(s.db, q, identity.NewResolver(identity.DefaultProviders()), &user.Module{Svc: userSvc})
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		email := ctx.GetHeader(identityHeader)
		if email == "" {
			return
		}
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid:  users[email].Id,
			Data: identity.ClaimsOf(identity.LocalSubject{Subject: email}),
		}))
	})
	module.Hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *HandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `offers`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE TABLE `offer_messages`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) do(email, method, path string, body any) *test.JSONResponseRecorder[json.RawMessage] {
	t := s.T()
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	if email != "" {
		req.Header.Set(identityHeader, email)
	}
	recorder := test.NewJSONResponseRecorder[json.RawMessage]()
	s.server.ServeHTTP(recorder, req)
	return &recorder
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var res T
	require.NoError(t, json.Unmarshal(raw, &res))
	return res
}

func (s *HandlerTestSuite) create(email string) web.Offer {
	t := s.T()
	recorder := s.do(email, http.MethodPost, "/offers", web.CreateOfferReq{
		CompanyName:    "Acme",
		PositionTitle:  "Backend Engineer",
		ContactEmail:   "contact@acme.com",
		EmploymentType: "FULL_TIME",
		WorkType:       "REMOTE",
		Message:        "Go + MySQL",
		Currency:       "krw",
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	return decode[web.Offer](t, recorder.MustScan().Data)
}

// nextEvent 发送是异步的
func (s *HandlerTestSuite) nextEvent() event.OfferEvent {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	msg, err := s.consumer.Consume(ctx)
	require.NoError(t, err)
	var evt event.OfferEvent
	require.NoError(t, json.Unmarshal(msg.Value, &evt))
	return evt
}

func (s *HandlerTestSuite) TestWorkflow() {
	t := s.T()

	created := s.create(recruiterEmail)
	assert.Equal(t, "SUBMITTED", created.Status)
	assert.Equal(t, "KRW", created.Currency)
	assert.False(t, created.AdminRead)
	assert.True(t, created.RecruiterRead)
	evt := s.nextEvent()
	assert.Equal(t, event.TypeOfferCreated, evt.Type)
	assert.Equal(t, event.AudienceAdmins, evt.Audience)
	assert.Equal(t, created.Id, evt.OfferId)
	path := "/offers/" + strconv.FormatInt(created.Id, 10)

	// 管理员能看到所有 offer
	recorder := s.do(adminEmail, http.MethodGet, "/offers", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	list := decode[web.OfferList](t, recorder.MustScan().Data)
	assert.Equal(t, 1, list.Total)

	// 别的招聘方看不到
	recorder = s.do(otherEmail, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	recorder = s.do(adminEmail, http.MethodGet, "/offers/unread-count", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, int64(1), decode[int64](t, recorder.MustScan().Data))

	// 别人的 offer 改不了
	recorder = s.do(otherEmail, http.MethodPatch, path+"/status", web.UpdateStatusReq{Status: "UNDER_REVIEW"})
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, errs.NotFound.Code, recorder.MustScan().Code)

	recorder = s.do(adminEmail, http.MethodPatch, path+"/status", web.UpdateStatusReq{Status: "UNDER_REVIEW"})
	require.Equal(t, http.StatusOK, recorder.Code)
	updated := decode[web.Offer](t, recorder.MustScan().Data)
	assert.Equal(t, "UNDER_REVIEW", updated.Status)
	assert.True(t, updated.AdminRead)
	assert.False(t, updated.RecruiterRead)
	evt = s.nextEvent()
	assert.Equal(t, event.TypeOfferStatusChanged, evt.Type)
	assert.Equal(t, recruiterEmail, evt.Receiver)

	// 不能回退
	recorder = s.do(adminEmail, http.MethodPatch, path+"/status", web.UpdateStatusReq{Status: "SUBMITTED"})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, errs.InvalidTransition.Code, recorder.MustScan().Code)

	recorder = s.do(recruiterEmail, http.MethodGet, "/offers/unread-count", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, int64(1), decode[int64](t, recorder.MustScan().Data))

	recorder = s.do(recruiterEmail, http.MethodPost, "/offers/confirm", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, int64(1), decode[int64](t, recorder.MustScan().Data))

	// 管理员没有确认操作
	recorder = s.do(adminEmail, http.MethodPost, "/offers/confirm", nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, errs.InvalidOperation.Code, recorder.MustScan().Code)

	var got dao.Offer
	require.NoError(t, s.db.Where("id = ?", created.Id).First(&got).Error)
	assert.True(t, got.RecruiterRead)
	assert.Equal(t, "UNDER_REVIEW", got.Status)
}

func (s *HandlerTestSuite) TestMessages() {
	t := s.T()
	created := s.create(recruiterEmail)
	_ = s.nextEvent()
	path := "/offers/" + strconv.FormatInt(created.Id, 10) + "/messages"

	recorder := s.do(adminEmail, http.MethodPost, path, web.PostMessageReq{Content: "请补充薪资范围"})
	require.Equal(t, http.StatusOK, recorder.Code)
	msg := decode[web.Message](t, recorder.MustScan().Data)
	assert.Equal(t, "ADMIN", msg.SenderType)

	recorder = s.do(recruiterEmail, http.MethodPost, path, web.PostMessageReq{Content: "年薪 8000 万"})
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = s.do(recruiterEmail, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	msgs := decode[[]web.Message](t, recorder.MustScan().Data)
	require.Len(t, msgs, 2)
	assert.Equal(t, "请补充薪资范围", msgs[0].Content)
	assert.Equal(t, "RECRUITER", msgs[1].SenderType)

	recorder = s.do(otherEmail, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func (s *HandlerTestSuite) TestUnauthenticated() {
	recorder := s.do("", http.MethodGet, "/offers", nil)
	assert.Equal(s.T(), http.StatusUnauthorized, recorder.Code)

	recorder = s.do("nobody@hows.com", http.MethodGet, "/offers", nil)
	assert.Equal(s.T(), http.StatusUnauthorized, recorder.Code)
}
