package service

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUserLocksSerializePerUser(t *testing.T) {
	locks := newUserLocks()
	uid := uuid.New()
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.lock(uid)
			defer unlock()
			v := counter
			v++
			counter = v
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, counter)
	assert.Zero(t, locks.size())
}

func TestUserLocksIndependentUsers(t *testing.T) {
	locks := newUserLocks()
	unlockA := locks.lock(uuid.New())
	// must not block while A is held
	unlockB := locks.lock(uuid.New())
	assert.Equal(t, 2, locks.size())
	unlockB()
	unlockA()
	assert.Zero(t, locks.size())
}
