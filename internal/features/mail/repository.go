package mail

import (
	"context"

	"diligent-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MailRepository struct {
	db *gorm.DB
}

func (r *MailRepository) CreateMailbox(ctx context.Context, mailbox *Mailbox) error {
	if mailbox.ID == uuid.Nil {
		mailbox.ID = uuid.New()
	}

	return r.db.WithContext(ctx).Create(mailbox).Error
}

func (r *MailRepository) CreateMail(ctx context.Context, mail *Mail) error {
	if mail.ID == uuid.Nil {
		mail.ID = uuid.New()
	}

	return r.db.WithContext(ctx).Create(mail).Error
}

func (r *MailRepository) ListMailboxes(ctx context.Context) ([]*Mailbox, error) {
	mailboxes := make([]*Mailbox, 0)

	err := r.db.WithContext(ctx).
		Order("data->>'name' ASC, id ASC").
		Find(&mailboxes).Error

	return mailboxes, err
}

func (r *MailRepository) FindMailbox(
	ctx context.Context,
	name string,
	ignoreCase bool,
) (*Mailbox, error) {
	condition := "data->>'name' = ?"
	if ignoreCase {
		condition = "LOWER(data->>'name') = LOWER(?)"
	}

	var mailbox Mailbox
	err := r.db.WithContext(ctx).Where(condition, name).Order("id ASC").First(&mailbox).Error
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, nil
		}

		return nil, err
	}

	return &mailbox, nil
}

func (r *MailRepository) ListByMailbox(ctx context.Context, mailboxID uuid.UUID) ([]*Mail, error) {
	mails := make([]*Mail, 0)

	err := r.db.WithContext(ctx).
		Where("mailbox = ?", mailboxID).
		Order("(data->>'received')::timestamptz DESC, id ASC").
		Find(&mails).Error

	return mails, err
}

func (r *MailRepository) GetByID(ctx context.Context, mailID uuid.UUID) (*Mail, error) {
	var mail Mail

	err := r.db.WithContext(ctx).Where("id = ?", mailID).First(&mail).Error
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, nil
		}

		return nil, err
	}

	return &mail, nil
}

func (r *MailRepository) Move(ctx context.Context, mailID uuid.UUID, mailboxID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&Mail{}).
		Where("id = ?", mailID).
		Update("mailbox", mailboxID)

	return result.RowsAffected > 0, result.Error
}
