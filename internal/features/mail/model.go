package mail

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type MailboxData struct {
	Name string `json:"name"`
}

type Mailbox struct {
	ID   uuid.UUID                       `gorm:"column:id;primaryKey"`
	Data datatypes.JSONType[MailboxData] `gorm:"column:data"`
}

func (Mailbox) TableName() string {
	return "mailbox"
}

type Party struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type MailData struct {
	Subject  string    `json:"subject"`
	From     Party     `json:"from"`
	To       Party     `json:"to"`
	Received time.Time `json:"received"`
	Content  string    `json:"content"`
}

type Mail struct {
	ID        uuid.UUID                    `gorm:"column:id;primaryKey"`
	MailboxID uuid.UUID                    `gorm:"column:mailbox"`
	Data      datatypes.JSONType[MailData] `gorm:"column:data"`
}

func (Mail) TableName() string {
	return "mail"
}
