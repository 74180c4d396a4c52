package app

import (
	"sync"

	"jobboard_backend/internal/email"
	"jobboard_backend/internal/logger"
)

// SentConfirmation - письмо подтверждения, перехваченное MockEmailProvider
type SentConfirmation struct {
	To       string
	Username string
	Token    string
}

// MockEmailProvider используется для тестов и локальной разработки.
// Письма не уходят наружу, а сохраняются в памяти.
type MockEmailProvider struct {
	mu            sync.Mutex
	Err           error // если задана, любая отправка завершается этой ошибкой
	Sent          []*email.Email
	Confirmations []SentConfirmation
}

func (m *MockEmailProvider) Send(msg *email.Email) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Sent = append(m.Sent, msg)
	return nil
}

func (m *MockEmailProvider) SendConfirmation(to, username, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Confirmations = append(m.Confirmations, SentConfirmation{To: to, Username: username, Token: token})
	logger.Debug("Mock email: confirmation captured", "to", to)
	return nil
}

// LastConfirmation возвращает последнее перехваченное письмо подтверждения
func (m *MockEmailProvider) LastConfirmation() (SentConfirmation, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Confirmations) == 0 {
		return SentConfirmation{}, false
	}
	return m.Confirmations[len(m.Confirmations)-1], true
}

func (m *MockEmailProvider) Validate() error { return nil }
func (m *MockEmailProvider) Close() error    { return nil }
