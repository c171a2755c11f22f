package memstore

import (
	"sync"
	"time"
)

type otpEntry struct {
	code      string
	expiresAt time.Time
}

// OTPStore はワンタイムコードのTTL付きインメモリ実装。
// プロセスグローバルではなく注入して使う。複数インスタンス構成に
// するときはRedis等の外部KVに差し替える前提の置き場所。
type OTPStore struct {
	mu      sync.Mutex
	entries map[string]otpEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewOTPStore(ttl time.Duration) *OTPStore {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &OTPStore{
		entries: make(map[string]otpEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Set はcontactに対するコードを保存する（上書き）
func (s *OTPStore) Set(contact string, code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[contact] = otpEntry{
		code:      code,
		expiresAt: s.now().Add(s.ttl),
	}
}

// Verify はコード一致かつ未失効ならtrue
func (s *OTPStore) Verify(contact string, code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[contact]
	if !ok {
		return false
	}
	if s.now().After(e.expiresAt) {
		delete(s.entries, contact)
		return false
	}
	return e.code == code
}

// Delete は使用済みコードを破棄する
func (s *OTPStore) Delete(contact string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, contact)
}
