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

package dao

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var offerColumns = []string{"id", "recruiter_id", "recruiter_email", "company_name",
	"position_title", "status", "admin_read", "recruiter_read", "ctime", "utime"}

func TestGORMOfferDAO_Update(t *testing.T) {
	errBiz := errors.New("业务校验失败")
	testCases := []struct {
		name    string
		mock    func(t *testing.T) *sql.DB
		fn      func(o *Offer) error
		want    Offer
		wantErr error
	}{
		{
			name: "加锁更新成功",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT \\* FROM `offers` WHERE id = \\? .*FOR UPDATE").
					WillReturnRows(sqlmock.NewRows(offerColumns).
						AddRow(1, 2, "hr@acme.com", "Acme", "Go", "SUBMITTED", false, true, 100, 100))
				mock.ExpectExec("UPDATE `offers` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
				return mockDB
			},
			fn: func(o *Offer) error {
				o.Status = "UNDER_REVIEW"
				o.AdminRead = true
				o.RecruiterRead = false
				return nil
			},
			want: Offer{Id: 1, RecruiterId: 2, Status: "UNDER_REVIEW", AdminRead: true, RecruiterRead: false},
		},
		{
			name: "没有变化不写回",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT \\* FROM `offers` WHERE id = \\? .*FOR UPDATE").
					WillReturnRows(sqlmock.NewRows(offerColumns).
						AddRow(1, 2, "hr@acme.com", "Acme", "Go", "SUBMITTED", false, true, 100, 100))
				mock.ExpectCommit()
				return mockDB
			},
			fn: func(o *Offer) error {
				return nil
			},
			want: Offer{Id: 1, RecruiterId: 2, Status: "SUBMITTED", AdminRead: false, RecruiterRead: true},
		},
		{
			name: "校验失败回滚",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT \\* FROM `offers` WHERE id = \\? .*FOR UPDATE").
					WillReturnRows(sqlmock.NewRows(offerColumns).
						AddRow(1, 2, "hr@acme.com", "Acme", "Go", "CLOSED", true, true, 100, 100))
				mock.ExpectRollback()
				return mockDB
			},
			fn: func(o *Offer) error {
				return errBiz
			},
			wantErr: errBiz,
		},
		{
			name: "记录不存在",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT \\* FROM `offers` WHERE id = \\? .*FOR UPDATE").
					WillReturnRows(sqlmock.NewRows(offerColumns))
				mock.ExpectRollback()
				return mockDB
			},
			fn: func(o *Offer) error {
				return nil
			},
			wantErr: ErrRecordNotFound,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			d := NewGORMOfferDAO(openMockDB(t, tc.mock(t)))
			o, err := d.Update(context.Background(), 1, tc.fn)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.want.Id, o.Id)
			assert.Equal(t, tc.want.RecruiterId, o.RecruiterId)
			assert.Equal(t, tc.want.Status, o.Status)
			assert.Equal(t, tc.want.AdminRead, o.AdminRead)
			assert.Equal(t, tc.want.RecruiterRead, o.RecruiterRead)
		})
	}
}

func TestGORMOfferDAO_ConfirmAllByRecruiter(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectExec("UPDATE `offers` SET .* WHERE recruiter_id = \\? AND recruiter_read = \\?").
		WillReturnResult(sqlmock.NewResult(0, 3))

	d := NewGORMOfferDAO(openMockDB(t, mockDB))
	cnt, err := d.ConfirmAllByRecruiter(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), cnt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGORMOfferDAO_CountAdminUnread(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `offers` WHERE admin_read = \\?").
		WithArgs(false).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	d := NewGORMOfferDAO(openMockDB(t, mockDB))
	cnt, err := d.CountAdminUnread(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), cnt)
}

func TestGORMOfferDAO_InsertMessage(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `offers` WHERE id = \\? .*FOR UPDATE").
		WillReturnRows(sqlmock.NewRows(offerColumns).
			AddRow(7, 2, "hr@acme.com", "Acme", "Go", "SUBMITTED", true, true, 100, 100))
	mock.ExpectExec("UPDATE `offers` SET .*").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `offer_messages` .*").
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectCommit()

	d := NewGORMOfferDAO(openMockDB(t, mockDB))
	m, err := d.InsertMessage(context.Background(), OfferMessage{
		OfferId:     7,
		SenderType:  "RECRUITER",
		SenderEmail: "hr@acme.com",
		Content:     "안녕하세요",
	}, func(o *Offer) error {
		o.AdminRead = false
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), m.Id)
	assert.True(t, m.Ctime > 0)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func openMockDB(t *testing.T, conn *sql.DB) *gorm.DB {
	db, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn: conn,
		// 如果为 false ，则GORM在初始化时，会先调用 show version
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		// 如果为 true ，则不允许 Ping数据库
		DisableAutomaticPing: true,
		// 如果为 false ，则即使是单一语句，也会开启事务
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db
}
