package mail

import (
	"log/slog"

	"gorm.io/gorm"
)

func NewMailRepository(db *gorm.DB) *MailRepository {
	return &MailRepository{db: db}
}

func NewMailService(mailStore MailStore, log *slog.Logger) *MailService {
	return &MailService{mailStore: mailStore, log: log}
}

func NewMailController(mailService *MailService) *MailController {
	return &MailController{mailService: mailService}
}
