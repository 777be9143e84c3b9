package storage

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddressLocks_ReleasedWhenIdle(t *testing.T) {
	locks := newAddressLocks()

	var wg sync.WaitGroup
	counter := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.lock("0xabc")
			counter++
			unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
	assert.Zero(t, locks.size())
}

func TestAddressLocks_IndependentAddresses(t *testing.T) {
	locks := newAddressLocks()

	unlockA := locks.lock("0xaaa")
	unlockB := locks.lock("0xbbb")
	assert.Equal(t, 2, locks.size())

	unlockA()
	assert.Equal(t, 1, locks.size())
	unlockB()
	assert.Zero(t, locks.size())
}
