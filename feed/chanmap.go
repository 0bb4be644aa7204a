// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package feed

import (
	"fmt"
	"sync"

	"github.com/zhangyunhao116/skipmap"
)

// ChanMap distributes realtime updates to one channel per symbol. Channels
// are buffered; on overflow the oldest entry is dropped, because fresh
// market data is always more important than stale data.
type ChanMap[T any] struct {
	sm                    *skipmap.StringMap[chan T]
	pendingCloseList      []chan T
	pendingCloseListMutex *sync.Mutex
}

func NewChanMap[T any]() *ChanMap[T] {
	return &ChanMap[T]{
		sm:                    skipmap.NewString[chan T](),
		pendingCloseListMutex: new(sync.Mutex),
	}
}

func (m *ChanMap[T]) addPendingClose(c chan T) {
	m.pendingCloseListMutex.Lock()
	m.pendingCloseList = append(m.pendingCloseList, c)
	m.pendingCloseListMutex.Unlock()
}

// ClearPendingClose closes channels of previously unsubscribed symbols.
// Closing is deferred to this call so that a concurrent publisher does not
// race against the close.
func (m *ChanMap[T]) ClearPendingClose() {
	m.pendingCloseListMutex.Lock()
	for _, c := range m.pendingCloseList {
		close(c)
	}
	m.pendingCloseList = nil
	m.pendingCloseListMutex.Unlock()
}

func (m *ChanMap[T]) Clear() {
	m.sm.Range(
		func(k string, c chan T) bool {
			close(c)
			return true
		},
	)
	m.sm = skipmap.NewString[chan T]()
}

func (m *ChanMap[T]) Subscribe(symbol string) (chan T, error) {
	// buffered, so that old data can be dropped if processing is too slow
	c := make(chan T, 1024)
	var err error
	_, exists := m.sm.LoadOrStore(symbol, c)
	if exists {
		err = fmt.Errorf("already subscribed to %s", symbol)
		c = nil
	}
	return c, err
}

func (m *ChanMap[T]) Unsubscribe(symbol string) error {
	var err error
	if c, exists := m.sm.LoadAndDelete(symbol); exists {
		// closing here could race against a concurrent publish
		m.addPendingClose(c)
	} else {
		err = fmt.Errorf("cannot unsubscribe %s: not subscribed", symbol)
	}
	return err
}

func (m *ChanMap[T]) Publish(symbol string, data T) error {
	c, exists := m.sm.Load(symbol)
	var err error
	if exists {
		select {
		case c <- data:
		// usually if a golang channel is full, we would drop additional data.
		// but new data is much more important in this case, so instead we
		// delete old data.
		// we might steal one entry without necessity in some corner cases,
		// but in general this code is fine.
		default:
			select {
			// try to remove first entry, non-blocking
			case <-c:
				// try again to push the new entry, non-blocking
				select {
				case c <- data:
					err = fmt.Errorf("symbol %s: buffer overflow, old realtime data is being removed", symbol)
				default:
					err = fmt.Errorf("symbol %s: buffer overflow, new realtime data is being dropped", symbol)
				}
			default:
				err = fmt.Errorf("symbol %s: buffer cannot be read from or written to", symbol)
			}
		}
	}
	// silently ignore if entry does not exist, as this may happen while unsubscribing
	return err
}
