package memstore

import (
	"sync"
	"time"
)

// PresenceTracker は管理者の最終アクセス時刻を持つ。
// 注入して使う（プロセスグローバルにはしない）
type PresenceTracker struct {
	mu       sync.RWMutex
	lastSeen time.Time
	window   time.Duration
	now      func() time.Time
}

// windowは「オンライン扱いにする猶予」。0なら2分
func NewPresenceTracker(window time.Duration) *PresenceTracker {
	if window <= 0 {
		window = 2 * time.Minute
	}
	return &PresenceTracker{
		window: window,
		now:    time.Now,
	}
}

// Touch は最終アクセスを今に更新する
func (t *PresenceTracker) Touch() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lastSeen = t.now()
}

// Online は最終アクセスがwindow以内ならtrue
func (t *PresenceTracker) Online() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.lastSeen.IsZero() {
		return false
	}
	return t.now().Sub(t.lastSeen) < t.window
}
