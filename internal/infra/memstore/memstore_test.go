package memstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOTPStore_SetVerifyDelete(t *testing.T) {
	s := NewOTPStore(5 * time.Minute)

	s.Set("ravi@example.com", "1234")
	assert.True(t, s.Verify("ravi@example.com", "1234"))
	assert.False(t, s.Verify("ravi@example.com", "9999"))
	assert.False(t, s.Verify("other@example.com", "1234"))

	s.Delete("ravi@example.com")
	assert.False(t, s.Verify("ravi@example.com", "1234"))
}

func TestOTPStore_Expiry(t *testing.T) {
	s := NewOTPStore(5 * time.Minute)

	current := time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return current }

	s.Set("ravi@example.com", "1234")

	current = current.Add(4 * time.Minute)
	assert.True(t, s.Verify("ravi@example.com", "1234"))

	current = current.Add(2 * time.Minute)
	assert.False(t, s.Verify("ravi@example.com", "1234"))
}

func TestOTPStore_SetOverwrites(t *testing.T) {
	s := NewOTPStore(5 * time.Minute)

	s.Set("ravi@example.com", "1111")
	s.Set("ravi@example.com", "2222")
	assert.False(t, s.Verify("ravi@example.com", "1111"))
	assert.True(t, s.Verify("ravi@example.com", "2222"))
}

func TestPresenceTracker_Window(t *testing.T) {
	tr := NewPresenceTracker(2 * time.Minute)

	current := time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC)
	tr.now = func() time.Time { return current }

	//未Touchはオフライン
	assert.False(t, tr.Online())

	tr.Touch()
	assert.True(t, tr.Online())

	current = current.Add(119 * time.Second)
	assert.True(t, tr.Online())

	current = current.Add(2 * time.Second)
	assert.False(t, tr.Online())

	//再Touchで復帰
	tr.Touch()
	assert.True(t, tr.Online())
}
