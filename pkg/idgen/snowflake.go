package idgen

import (
	"errors"
	"sync"
	"time"
)

// Layout: 41 bits of milliseconds since epoch, 10 bits worker id, 12 bits sequence.
const (
	epoch          = int64(1704067200000) // 2024-01-01 00:00:00 UTC
	workerIDBits   = 10
	sequenceBits   = 12
	maxWorkerID    = -1 ^ (-1 << workerIDBits)
	maxSequence    = -1 ^ (-1 << sequenceBits)
	workerIDShift  = sequenceBits
	timestampShift = sequenceBits + workerIDBits
)

var ErrInvalidWorkerID = errors.New("worker id out of range")

type Generator interface {
	NextID() int64
}

// Snowflake produces unique, strictly increasing ids for a single worker.
type Snowflake struct {
	mu        sync.Mutex
	timestamp int64
	workerID  int64
	sequence  int64
	now       func() int64
}

func NewSnowflake(workerID int64) (*Snowflake, error) {
	if workerID < 0 || workerID > maxWorkerID {
		return nil, ErrInvalidWorkerID
	}
	return &Snowflake{
		workerID: workerID,
		now:      func() int64 { return time.Now().UnixMilli() },
	}, nil
}

func (s *Snowflake) NextID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now < s.timestamp {
		// clock went backwards, keep issuing from the last seen millisecond
		now = s.timestamp
	}

	if now == s.timestamp {
		s.sequence = (s.sequence + 1) & maxSequence
		if s.sequence == 0 {
			for now <= s.timestamp {
				now = s.now()
			}
		}
	} else {
		s.sequence = 0
	}

	s.timestamp = now

	return ((now - epoch) << timestampShift) |
		(s.workerID << workerIDShift) |
		s.sequence
}
