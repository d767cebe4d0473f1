package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ShopThryfted/Thryfted/internal/entity"
	"github.com/ShopThryfted/Thryfted/internal/repository"
)

// ErrValidation marks user input problems; handlers turn it into a flash
// message rather than a server error.
var ErrValidation = errors.New("validation failed")

// MessageService is the contact inbox: form submissions in, admin listing,
// read flags, deletion, and outbound replies.
type MessageService struct {
	messages repository.MessageStore
	notifier Notifier
}

func NewMessageService(messages repository.MessageStore, notifier Notifier) *MessageService {
	return &MessageService{messages: messages, notifier: notifier}
}

func (s *MessageService) Create(ctx context.Context, name, email, company, category, message string) (*entity.ContactMessage, error) {
	msg := &entity.ContactMessage{
		Name:     name,
		Email:    email,
		Company:  company,
		Category: category,
		Message:  message,
	}

	created, err := s.messages.Create(ctx, msg)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating contact message")
		return nil, err
	}

	return created, nil
}

func (s *MessageService) GetByID(ctx context.Context, id int) (*entity.ContactMessage, error) {
	return s.messages.GetByID(ctx, id)
}

func (s *MessageService) ListAll(ctx context.Context) ([]*entity.ContactMessage, error) {
	messages, err := s.messages.ListAll(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing contact messages")
		return nil, err
	}
	return messages, nil
}

func (s *MessageService) MarkRead(ctx context.Context, id int) error {
	return s.messages.MarkRead(ctx, id)
}

func (s *MessageService) Delete(ctx context.Context, id int) error {
	return s.messages.Delete(ctx, id)
}

// Reply emails the sender of a message. Subject and body are required; a
// transport failure is returned to the caller so it can be shown to the
// admin instead of silently losing the reply.
func (s *MessageService) Reply(ctx context.Context, id int, subject, body string) error {
	if strings.TrimSpace(subject) == "" || strings.TrimSpace(body) == "" {
		return fmt.Errorf("%w: subject and message body are required", ErrValidation)
	}

	msg, err := s.messages.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.notifier.Send(msg.Email, subject, body); err != nil {
		logger.Error().Err(err).Int("message_id", id).Msg("Error sending reply")
		return err
	}

	return nil
}

// DefaultReplySubject is the prefilled subject line for the reply form.
func DefaultReplySubject(msg *entity.ContactMessage) string {
	// Casers are stateful, so build one per call.
	return fmt.Sprintf("Re: %s Inquiry", cases.Title(language.English).String(msg.Category))
}

// DefaultReplyBody is the prefilled greeting for the reply form.
func DefaultReplyBody(msg *entity.ContactMessage) string {
	return fmt.Sprintf("Hi %s,\n\nThank you for reaching out to Thryfted Archive.\n\n", msg.Name)
}
