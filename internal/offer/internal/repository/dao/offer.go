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
	"fmt"
	"time"

	"github.com/ego-component/egorm"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type OfferDAO interface {
	Insert(ctx context.Context, o Offer) (Offer, error)
	FindById(ctx context.Context, id int64) (Offer, error)
	FindByIdAndRecruiter(ctx context.Context, id, recruiterId int64) (Offer, error)
	// FindAll 按照 id 倒序
	FindAll(ctx context.Context) ([]Offer, error)
	FindByRecruiter(ctx context.Context, recruiterId int64) ([]Offer, error)
	CountAdminUnread(ctx context.Context) (int64, error)
	CountRecruiterUnread(ctx context.Context, recruiterId int64) (int64, error)
	// ConfirmAllByRecruiter 一条 UPDATE 语句，返回影响的行数
	ConfirmAllByRecruiter(ctx context.Context, recruiterId int64) (int64, error)
	// Update 在事务里面锁住这一行，fn 修改之后写回
	Update(ctx context.Context, id int64, fn func(o *Offer) error) (Offer, error)
	// InsertMessage 锁住 offer，fn 修改已读标记，和消息一起提交
	InsertMessage(ctx context.Context, m OfferMessage, fn func(o *Offer) error) (OfferMessage, error)
	FindMessages(ctx context.Context, offerId int64) ([]OfferMessage, error)
}

type GORMOfferDAO struct {
	db *egorm.Component
}

func NewGORMOfferDAO(db *egorm.Component) OfferDAO {
	return &GORMOfferDAO{db: db}
}

func (g *GORMOfferDAO) Insert(ctx context.Context, o Offer) (Offer, error) {
	now := time.Now().UnixMilli()
	o.Ctime, o.Utime = now, now
	err := g.db.WithContext(ctx).Create(&o).Error
	return o, err
}

func (g *GORMOfferDAO) FindById(ctx context.Context, id int64) (Offer, error) {
	var res Offer
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (g *GORMOfferDAO) FindByIdAndRecruiter(ctx context.Context, id, recruiterId int64) (Offer, error) {
	var res Offer
	err := g.db.WithContext(ctx).
		Where("id = ? AND recruiter_id = ?", id, recruiterId).
		First(&res).Error
	return res, err
}

func (g *GORMOfferDAO) FindAll(ctx context.Context) ([]Offer, error) {
	var res []Offer
	err := g.db.WithContext(ctx).Order("id DESC").Find(&res).Error
	return res, err
}

func (g *GORMOfferDAO) FindByRecruiter(ctx context.Context, recruiterId int64) ([]Offer, error) {
	var res []Offer
	err := g.db.WithContext(ctx).
		Where("recruiter_id = ?", recruiterId).
		Order("id DESC").Find(&res).Error
	return res, err
}

func (g *GORMOfferDAO) CountAdminUnread(ctx context.Context) (int64, error) {
	var cnt int64
	err := g.db.WithContext(ctx).Model(&Offer{}).
		Where("admin_read = ?", false).Count(&cnt).Error
	return cnt, err
}

func (g *GORMOfferDAO) CountRecruiterUnread(ctx context.Context, recruiterId int64) (int64, error) {
	var cnt int64
	err := g.db.WithContext(ctx).Model(&Offer{}).
		Where("recruiter_id = ? AND recruiter_read = ?", recruiterId, false).
		Count(&cnt).Error
	return cnt, err
}

func (g *GORMOfferDAO) ConfirmAllByRecruiter(ctx context.Context, recruiterId int64) (int64, error) {
	res := g.db.WithContext(ctx).Model(&Offer{}).
		Where("recruiter_id = ? AND recruiter_read = ?", recruiterId, false).
		Updates(map[string]any{
			"recruiter_read": true,
			"utime":          time.Now().UnixMilli(),
		})
	return res.RowsAffected, res.Error
}

func (g *GORMOfferDAO) Update(ctx context.Context, id int64, fn func(o *Offer) error) (Offer, error) {
	var res Offer
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		res, err = g.lockAndUpdate(tx, id, fn)
		return err
	})
	return res, err
}

func (g *GORMOfferDAO) InsertMessage(ctx context.Context, m OfferMessage, fn func(o *Offer) error) (OfferMessage, error) {
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := g.lockAndUpdate(tx, m.OfferId, fn); err != nil {
			return err
		}
		now := time.Now().UnixMilli()
		m.Ctime, m.Utime = now, now
		if err := tx.Create(&m).Error; err != nil {
			return fmt.Errorf("保存 offer 消息失败: %w", err)
		}
		return nil
	})
	return m, err
}

// lockAndUpdate 只会写回状态和两个已读标记，其余字段创建后不可变
func (g *GORMOfferDAO) lockAndUpdate(tx *gorm.DB, id int64, fn func(o *Offer) error) (Offer, error) {
	var o Offer
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).First(&o).Error
	if err != nil {
		return Offer{}, err
	}
	before := o
	if err = fn(&o); err != nil {
		return Offer{}, err
	}
	if before.Status == o.Status &&
		before.AdminRead == o.AdminRead &&
		before.RecruiterRead == o.RecruiterRead {
		return before, nil
	}
	o.Utime = time.Now().UnixMilli()
	err = tx.Model(&Offer{}).Where("id = ?", id).
		Updates(map[string]any{
			"status":         o.Status,
			"admin_read":     o.AdminRead,
			"recruiter_read": o.RecruiterRead,
			"utime":          o.Utime,
		}).Error
	if err != nil {
		return Offer{}, fmt.Errorf("更新 offer 失败: %w", err)
	}
	return o, nil
}

func (g *GORMOfferDAO) FindMessages(ctx context.Context, offerId int64) ([]OfferMessage, error) {
	var res []OfferMessage
	err := g.db.WithContext(ctx).
		Where("offer_id = ?", offerId).
		Order("id ASC").Find(&res).Error
	return res, err
}

type Offer struct {
	Id             int64  `gorm:"primaryKey,autoIncrement"`
	RecruiterId    int64  `gorm:"not null;index:idx_recruiter_read,priority:1"`
	RecruiterEmail string `gorm:"type:varchar(256);not null"`
	CompanyName    string `gorm:"type:varchar(256);not null"`
	PositionTitle  string `gorm:"type:varchar(256);not null"`
	ContactEmail   string `gorm:"type:varchar(256)"`
	ContactPhone   string `gorm:"type:varchar(64)"`
	// FULL_TIME, PART_TIME, CONTRACT, INTERN
	EmploymentType string `gorm:"type:varchar(20);not null"`
	// ONSITE, REMOTE, HYBRID
	WorkType string `gorm:"type:varchar(20);not null"`
	Message  string `gorm:"type:text"`

	SalaryMin  decimal.NullDecimal `gorm:"type:decimal(15,2)"`
	SalaryMax  decimal.NullDecimal `gorm:"type:decimal(15,2)"`
	Currency   string              `gorm:"type:varchar(3)"`
	SalaryUnit string              `gorm:"type:varchar(10)"`

	Status        string `gorm:"type:varchar(20);not null;index"`
	AdminRead     bool   `gorm:"not null;index"`
	RecruiterRead bool   `gorm:"not null;index:idx_recruiter_read,priority:2"`

	Ctime int64
	Utime int64
}

func (Offer) TableName() string {
	return "offers"
}

type OfferMessage struct {
	Id      int64 `gorm:"primaryKey,autoIncrement"`
	OfferId int64 `gorm:"not null;index"`
	// RECRUITER, ADMIN
	SenderType  string `gorm:"type:varchar(20);not null"`
	SenderEmail string `gorm:"type:varchar(256);not null"`
	Content     string `gorm:"type:text;not null"`
	Ctime       int64
	Utime       int64
}

func (OfferMessage) TableName() string {
	return "offer_messages"
}
