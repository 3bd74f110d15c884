package web

import (
	"github.com/alphahows/hows/internal/offer/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateOfferReq struct {
	CompanyName    string              `json:"companyName"`
	PositionTitle  string              `json:"positionTitle"`
	ContactEmail   string              `json:"contactEmail"`
	ContactPhone   string              `json:"contactPhone"`
	EmploymentType string              `json:"employmentType"`
	WorkType       string              `json:"workType"`
	Message        string              `json:"message"`
	SalaryMin      decimal.NullDecimal `json:"salaryMin"`
	SalaryMax      decimal.NullDecimal `json:"salaryMax"`
	Currency       string              `json:"currency"`
	SalaryUnit     string              `json:"salaryUnit"`
}

func (r CreateOfferReq) toDomain() domain.Offer {
	return domain.Offer{
		CompanyName:    r.CompanyName,
		PositionTitle:  r.PositionTitle,
		ContactEmail:   r.ContactEmail,
		ContactPhone:   r.ContactPhone,
		EmploymentType: domain.EmploymentType(r.EmploymentType),
		WorkType:       domain.WorkType(r.WorkType),
		Message:        r.Message,
		SalaryMin:      r.SalaryMin,
		SalaryMax:      r.SalaryMax,
		Currency:       r.Currency,
		SalaryUnit:     domain.SalaryUnit(r.SalaryUnit),
	}
}

type UpdateStatusReq struct {
	Status string `json:"status"`
}

type MarkReadReq struct {
	// 只有明确传 true 才是已读
	Read *bool `json:"read"`
}

type PostMessageReq struct {
	Content string `json:"content"`
}

type Offer struct {
	Id             int64               `json:"id"`
	RecruiterEmail string              `json:"recruiterEmail"`
	CompanyName    string              `json:"companyName"`
	PositionTitle  string              `json:"positionTitle"`
	ContactEmail   string              `json:"contactEmail"`
	ContactPhone   string              `json:"contactPhone"`
	EmploymentType string              `json:"employmentType"`
	WorkType       string              `json:"workType"`
	Message        string              `json:"message"`
	SalaryMin      decimal.NullDecimal `json:"salaryMin"`
	SalaryMax      decimal.NullDecimal `json:"salaryMax"`
	Currency       string              `json:"currency"`
	SalaryUnit     string              `json:"salaryUnit"`
	Status         string              `json:"status"`
	AdminRead      bool                `json:"adminRead"`
	RecruiterRead  bool                `json:"recruiterRead"`
	// 当前用户视角下是否已读
	Read  bool  `json:"read"`
	Ctime int64 `json:"ctime"`
	Utime int64 `json:"utime"`
}

func newOffer(v domain.OfferView) Offer {
	return Offer{
		Id:             v.Id,
		RecruiterEmail: v.RecruiterEmail,
		CompanyName:    v.CompanyName,
		PositionTitle:  v.PositionTitle,
		ContactEmail:   v.ContactEmail,
		ContactPhone:   v.ContactPhone,
		EmploymentType: string(v.EmploymentType),
		WorkType:       string(v.WorkType),
		Message:        v.Offer.Message,
		SalaryMin:      v.SalaryMin,
		SalaryMax:      v.SalaryMax,
		Currency:       v.Currency,
		SalaryUnit:     string(v.SalaryUnit),
		Status:         v.Status.String(),
		AdminRead:      v.AdminRead,
		RecruiterRead:  v.RecruiterRead,
		Read:           v.ReadForCaller,
		Ctime:          v.Ctime.UnixMilli(),
		Utime:          v.Utime.UnixMilli(),
	}
}

type OfferList struct {
	Total  int     `json:"total"`
	Offers []Offer `json:"offers"`
}

type Message struct {
	Id          int64  `json:"id"`
	OfferId     int64  `json:"offerId"`
	SenderType  string `json:"senderType"`
	SenderEmail string `json:"senderEmail"`
	Content     string `json:"content"`
	Ctime       int64  `json:"ctime"`
}

func newMessage(m domain.Message) Message {
	return Message{
		Id:          m.Id,
		OfferId:     m.OfferId,
		SenderType:  string(m.SenderType),
		SenderEmail: m.SenderEmail,
		Content:     m.Content,
		Ctime:       m.Ctime.UnixMilli(),
	}
}
