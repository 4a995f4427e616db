package telegram

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
)

type Step int

const (
	StepIdle Step = iota

	StepPhone
	StepNickname
	StepCard

	StepOrderCurrency
	StepOrderAmount
	StepOrderNetwork
	StepOrderConfirm
	StepProofUpload
	StepOrderLookup

	StepAdminRate
	StepAdminSupport
	StepAdminWalletNetwork
	StepAdminWalletAddress
	StepAdminWalletDelete
	StepAdminMailing
	StepAdminMailingConfirm
	StepAdminOrderLookup
	StepAdminUserLookup
)

// Session is the per-chat conversation state. It lives in the session
// store between updates, so every field must survive JSON round-trips.
type Session struct {
	Step          Step   `json:"step"`
	EntryCurrency string `json:"entry_currency,omitempty"`
	Network       string `json:"network,omitempty"`
	Amount        string `json:"amount,omitempty"`
	OrderID       int64  `json:"order_id,omitempty"`
	Text          string `json:"text,omitempty"`
}

// SessionStore is the raw byte store behind Sessions. The Redis
// implementation lives in infrastructure, the in-memory one below is
// for tests.
type SessionStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

type Sessions struct {
	store SessionStore
}

func NewSessions(store SessionStore) *Sessions {
	return &Sessions{store: store}
}

// Load returns the chat's session, or a fresh idle one when nothing is
// stored or the stored payload cannot be decoded.
func (s *Sessions) Load(ctx context.Context, chatID int64) *Session {
	raw, ok, err := s.store.Get(ctx, chatKey(chatID))
	if err != nil || !ok {
		return &Session{Step: StepIdle}
	}
	var session Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return &Session{Step: StepIdle}
	}
	return &session
}

func (s *Sessions) Save(ctx context.Context, chatID int64, session *Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, chatKey(chatID), raw)
}

func (s *Sessions) Reset(ctx context.Context, chatID int64) error {
	return s.store.Delete(ctx, chatKey(chatID))
}

func chatKey(chatID int64) string {
	return strconv.FormatInt(chatID, 10)
}

// MemoryStore keeps sessions in a map. Used in tests and as a fallback
// when no Redis address is configured.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	val, ok := m.data[key]
	return val, ok, nil
}

func (m *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
