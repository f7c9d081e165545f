package mail

import (
	"time"

	"github.com/google/uuid"
)

// AddressDTO renames email to address on the wire.
type AddressDTO struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type MailSummaryDTO struct {
	ID       uuid.UUID  `json:"id"`
	Subject  string     `json:"subject"`
	From     AddressDTO `json:"from"`
	To       AddressDTO `json:"to"`
	Received time.Time  `json:"received"`
}

type MailDTO struct {
	MailSummaryDTO
	Content string `json:"content"`
}

func toAddressDTO(party Party) AddressDTO {
	return AddressDTO{Name: party.Name, Address: party.Email}
}

func toMailSummaryDTO(mail *Mail) *MailSummaryDTO {
	data := mail.Data.Data()

	return &MailSummaryDTO{
		ID:       mail.ID,
		Subject:  data.Subject,
		From:     toAddressDTO(data.From),
		To:       toAddressDTO(data.To),
		Received: data.Received,
	}
}
