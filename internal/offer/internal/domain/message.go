package domain

import "time"

type SenderType string

const (
	SenderRecruiter SenderType = "RECRUITER"
	SenderAdmin     SenderType = "ADMIN"
)

// Message 围绕一个 offer 的沟通记录
type Message struct {
	Id          int64
	OfferId     int64
	SenderType  SenderType
	SenderEmail string
	Content     string
	Ctime       time.Time
}

func SenderOf(c Caller) SenderType {
	if c.Admin {
		return SenderAdmin
	}
	return SenderRecruiter
}
