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

import "strings"

// Status 顺序就是声明顺序，只能往后走
type Status string

const (
	StatusSubmitted   Status = "SUBMITTED"
	StatusUnderReview Status = "UNDER_REVIEW"
	StatusAccepted    Status = "ACCEPTED"
	StatusRejected    Status = "REJECTED"
	StatusClosed      Status = "CLOSED"
)

var statusRanks = map[Status]int{
	StatusSubmitted:   1,
	StatusUnderReview: 2,
	StatusAccepted:    3,
	StatusRejected:    4,
	StatusClosed:      5,
}

func ParseStatus(s string) Status {
	return Status(strings.ToUpper(strings.TrimSpace(s)))
}

func (s Status) Rank() int {
	return statusRanks[s]
}

func (s Status) Valid() bool {
	return s.Rank() > 0
}

func (s Status) String() string {
	return string(s)
}

// CanTransitTo 相同状态视为可以，CLOSED 之后不能再变
func (s Status) CanTransitTo(target Status) bool {
	if !target.Valid() {
		return false
	}
	if s == target {
		return true
	}
	if s == StatusClosed {
		return false
	}
	return target.Rank() > s.Rank()
}

type EmploymentType string

const (
	EmploymentFullTime EmploymentType = "FULL_TIME"
	EmploymentPartTime EmploymentType = "PART_TIME"
	EmploymentContract EmploymentType = "CONTRACT"
	EmploymentIntern   EmploymentType = "INTERN"
)

func (e EmploymentType) Valid() bool {
	switch e {
	case EmploymentFullTime, EmploymentPartTime, EmploymentContract, EmploymentIntern:
		return true
	}
	return false
}

type WorkType string

const (
	WorkOnsite WorkType = "ONSITE"
	WorkRemote WorkType = "REMOTE"
	WorkHybrid WorkType = "HYBRID"
)

func (w WorkType) Valid() bool {
	switch w {
	case WorkOnsite, WorkRemote, WorkHybrid:
		return true
	}
	return false
}

type SalaryUnit string

const (
	SalaryPerHour  SalaryUnit = "HOUR"
	SalaryPerDay   SalaryUnit = "DAY"
	SalaryPerMonth SalaryUnit = "MONTH"
	SalaryPerYear  SalaryUnit = "YEAR"
)

// Valid 空值表示没填
func (u SalaryUnit) Valid() bool {
	switch u {
	case "", SalaryPerHour, SalaryPerDay, SalaryPerMonth, SalaryPerYear:
		return true
	}
	return false
}
