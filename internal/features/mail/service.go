package mail

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	errors_utils "diligent-backend/internal/util/errors"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

const sentMailboxName = "sent"

var (
	ErrMailboxRequired = errors_utils.NewValidation("mailbox query parameter is required")
	ErrMailboxNotFound = errors_utils.NewNotFound("Mailbox not found")
	ErrMailNotFound    = errors_utils.NewNotFound("Email not found")
	ErrMoveToSent      = errors_utils.NewConflict("Cannot move email to sent mailbox")
)

type MailService struct {
	mailStore MailStore
	log       *slog.Logger
}

func (s *MailService) ListMailboxNames(ctx context.Context) ([]string, error) {
	mailboxes, err := s.mailStore.ListMailboxes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get mailboxes: %w", err)
	}

	return lo.Map(mailboxes, func(mailbox *Mailbox, _ int) string {
		return mailbox.Data.Data().Name
	}), nil
}

// ListMail returns the summaries of a mailbox, newest first. The mailbox
// name must match exactly.
func (s *MailService) ListMail(ctx context.Context, mailboxName string) ([]*MailSummaryDTO, error) {
	if mailboxName == "" {
		return nil, ErrMailboxRequired
	}

	mailbox, err := s.mailStore.FindMailbox(ctx, mailboxName, false)
	if err != nil {
		return nil, fmt.Errorf("failed to get mailbox: %w", err)
	}

	if mailbox == nil {
		return nil, ErrMailboxNotFound
	}

	mails, err := s.mailStore.ListByMailbox(ctx, mailbox.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get mail: %w", err)
	}

	return lo.Map(mails, func(mail *Mail, _ int) *MailSummaryDTO {
		return toMailSummaryDTO(mail)
	}), nil
}

func (s *MailService) GetMail(ctx context.Context, mailID uuid.UUID) (*MailDTO, error) {
	mail, err := s.mailStore.GetByID(ctx, mailID)
	if err != nil {
		return nil, fmt.Errorf("failed to get mail: %w", err)
	}

	if mail == nil {
		return nil, ErrMailNotFound
	}

	return &MailDTO{
		MailSummaryDTO: *toMailSummaryDTO(mail),
		Content:        mail.Data.Data().Content,
	}, nil
}

// MoveMail files a mail under another mailbox, matched ignoring case.
// Nothing may be moved into the sent mailbox.
func (s *MailService) MoveMail(ctx context.Context, mailID uuid.UUID, mailboxName string) error {
	if mailboxName == "" {
		return ErrMailboxRequired
	}

	if strings.EqualFold(mailboxName, sentMailboxName) {
		return ErrMoveToSent
	}

	mail, err := s.mailStore.GetByID(ctx, mailID)
	if err != nil {
		return fmt.Errorf("failed to get mail: %w", err)
	}

	if mail == nil {
		return ErrMailNotFound
	}

	mailbox, err := s.mailStore.FindMailbox(ctx, mailboxName, true)
	if err != nil {
		return fmt.Errorf("failed to get mailbox: %w", err)
	}

	if mailbox == nil {
		return ErrMailboxNotFound
	}

	moved, err := s.mailStore.Move(ctx, mailID, mailbox.ID)
	if err != nil {
		return fmt.Errorf("failed to move mail: %w", err)
	}

	if !moved {
		return ErrMailNotFound
	}

	s.log.Debug("Mail moved", "mailId", mailID, "mailbox", mailbox.Data.Data().Name)
	return nil
}
