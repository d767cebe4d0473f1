package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ShopThryfted/Thryfted/internal/entity"
)

// In-memory store implementations. They back the handler and service tests
// and keep the same NotFound semantics as the MySQL repositories.

type MemoryMessageStore struct {
	mu       sync.Mutex
	nextID   int
	messages map[int]*entity.ContactMessage
}

func NewMemoryMessageStore() *MemoryMessageStore {
	return &MemoryMessageStore{nextID: 1, messages: make(map[int]*entity.ContactMessage)}
}

func (s *MemoryMessageStore) Create(ctx context.Context, msg *entity.ContactMessage) (*entity.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg.ID = s.nextID
	s.nextID++
	msg.Timestamp = time.Now().UTC()
	copied := *msg
	s.messages[msg.ID] = &copied
	return msg, nil
}

func (s *MemoryMessageStore) GetByID(ctx context.Context, id int) (*entity.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg, ok := s.messages[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *msg
	return &copied, nil
}

func (s *MemoryMessageStore) ListAll(ctx context.Context) ([]*entity.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var messages []*entity.ContactMessage
	for _, msg := range s.messages {
		copied := *msg
		messages = append(messages, &copied)
	}
	sort.Slice(messages, func(i, j int) bool {
		if messages[i].Timestamp.Equal(messages[j].Timestamp) {
			return messages[i].ID > messages[j].ID
		}
		return messages[i].Timestamp.After(messages[j].Timestamp)
	})
	return messages, nil
}

func (s *MemoryMessageStore) MarkRead(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg, ok := s.messages[id]
	if !ok {
		return ErrNotFound
	}
	msg.IsRead = true
	return nil
}

func (s *MemoryMessageStore) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.messages[id]; !ok {
		return ErrNotFound
	}
	delete(s.messages, id)
	return nil
}

type MemoryCheckoutStore struct {
	mu       sync.Mutex
	nextID   int
	sessions map[string]*entity.CheckoutSession
}

func NewMemoryCheckoutStore() *MemoryCheckoutStore {
	return &MemoryCheckoutStore{nextID: 1, sessions: make(map[string]*entity.CheckoutSession)}
}

func (s *MemoryCheckoutStore) Create(ctx context.Context, sess *entity.CheckoutSession) (*entity.CheckoutSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess.ID = s.nextID
	s.nextID++
	sess.Status = entity.CheckoutStatusCreated
	sess.CreatedAt = time.Now().UTC()
	copied := *sess
	s.sessions[sess.StripeSessionID] = &copied
	return sess, nil
}

func (s *MemoryCheckoutStore) GetByStripeSessionID(ctx context.Context, stripeSessionID string) (*entity.CheckoutSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[stripeSessionID]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *sess
	return &copied, nil
}

func (s *MemoryCheckoutStore) MarkCompleted(ctx context.Context, stripeSessionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[stripeSessionID]
	if !ok {
		return false, ErrNotFound
	}
	if sess.Status == entity.CheckoutStatusCompleted {
		return false, nil
	}
	now := time.Now().UTC()
	sess.Status = entity.CheckoutStatusCompleted
	sess.CompletedAt = &now
	return true, nil
}

type MemorySurveyStore struct {
	mu        sync.Mutex
	responses []*entity.SurveyResponse
}

func NewMemorySurveyStore() *MemorySurveyStore {
	return &MemorySurveyStore{}
}

func (s *MemorySurveyStore) Append(ctx context.Context, resp *entity.SurveyResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	resp.ID = len(s.responses) + 1
	resp.Timestamp = time.Now().UTC()
	copied := *resp
	s.responses = append(s.responses, &copied)
	return nil
}

// Responses returns a snapshot of the appended survey rows.
func (s *MemorySurveyStore) Responses() []*entity.SurveyResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*entity.SurveyResponse(nil), s.responses...)
}
