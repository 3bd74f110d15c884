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

package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Offer struct {
	Id int64
	// 发起人，创建后不能修改
	RecruiterId    int64
	RecruiterEmail string

	CompanyName    string
	PositionTitle  string
	ContactEmail   string
	ContactPhone   string
	EmploymentType EmploymentType
	WorkType       WorkType
	Message        string

	SalaryMin decimal.NullDecimal
	SalaryMax decimal.NullDecimal
	// ISO 4217，统一大写
	Currency   string
	SalaryUnit SalaryUnit

	Status Status
	// 管理员和发起人各自的已读标记，互不影响
	AdminRead     bool
	RecruiterRead bool

	Ctime time.Time
	Utime time.Time
}

// ValidSalaryRange 两个都有的时候，最小值不能超过最大值
func (o Offer) ValidSalaryRange() bool {
	if !o.SalaryMin.Valid || !o.SalaryMax.Valid {
		return true
	}
	return o.SalaryMin.Decimal.LessThanOrEqual(o.SalaryMax.Decimal)
}

func NormalizeCurrency(c string) string {
	return strings.ToUpper(strings.TrimSpace(c))
}

// ReadFor 调用者视角下的已读状态
func (o Offer) ReadFor(c Caller) bool {
	if c.Admin {
		return o.AdminRead
	}
	return o.RecruiterRead
}

// VisibleTo 管理员能看所有的，其余人只能看自己的
func (o Offer) VisibleTo(c Caller) bool {
	return c.Admin || o.RecruiterId == c.Id
}

// Matches 按照关键字搜索，管理员还能搜发起人
func (o Offer) Matches(keyword string, c Caller) bool {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	if kw == "" {
		return true
	}
	fields := []string{o.CompanyName, o.PositionTitle, o.Message}
	if c.Admin {
		fields = append(fields, o.RecruiterEmail)
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), kw) {
			return true
		}
	}
	return false
}

type OfferView struct {
	Offer
	ReadForCaller bool
}

func NewOfferView(o Offer, c Caller) OfferView {
	return OfferView{Offer: o, ReadForCaller: o.ReadFor(c)}
}

// Caller 当前操作的人，每次请求根据身份标识重新查
type Caller struct {
	Id    int64
	Email string
	Admin bool
}

type Filter struct {
	// 空字符串表示不过滤
	Status Status
	Read   *bool
	// 已经去掉首尾空格
	Keyword string
}
