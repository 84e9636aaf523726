package store

import (
	"bufio"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// Codec pairs the encode and decode halves of a record's line format.
type Codec[T any] struct {
	Marshal   func(T) string
	Unmarshal func(string) (T, bool)
}

// Collection is the in-memory ordered sequence of one record kind, backed by
// a single flat text file with one encoded record per line. Order is
// insertion/load order and is preserved across save/load cycles.
//
// Collections perform no locking; the process owns exactly one logical thread
// of control.
type Collection[T any] struct {
	path   string
	codec  Codec[T]
	keyOf  func(T) string
	items  []T
	logger *zap.Logger
}

// NewCollection builds an empty collection backed by the given file. keyOf
// derives the lookup key of a record; keyless kinds pass a func returning "".
func NewCollection[T any](path string, codec Codec[T], keyOf func(T) string, logger *zap.Logger) *Collection[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Collection[T]{path: path, codec: codec, keyOf: keyOf, logger: logger}
}

// Load replaces the in-memory sequence with the decoded contents of the
// backing file, in file order. A missing file yields an empty collection.
// Empty and malformed lines are dropped silently.
func (c *Collection[T]) Load() error {
	c.items = c.items[:0]

	file, err := os.Open(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		c.logger.Warn("collection file unreadable, treating as empty",
			zap.String("path", c.path), zap.Error(err))
		return nil
	}
	defer file.Close() //nolint:errcheck

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		record, ok := c.codec.Unmarshal(line)
		if !ok {
			c.logger.Debug("dropping malformed line", zap.String("path", c.path))
			continue
		}
		c.items = append(c.items, record)
	}
	if err := scanner.Err(); err != nil {
		c.logger.Warn("collection read interrupted", zap.String("path", c.path), zap.Error(err))
	}
	return nil
}

// Save overwrites the backing file with one encoded line per record in
// current sequence order. The write is not atomic; a crash mid-write can
// truncate the file.
func (c *Collection[T]) Save() error {
	file, err := os.Create(c.path)
	if err != nil {
		return fmt.Errorf("create %s: %w", c.path, err)
	}
	defer file.Close() //nolint:errcheck

	w := bufio.NewWriter(file)
	for _, record := range c.items {
		if _, err := fmt.Fprintln(w, c.codec.Marshal(record)); err != nil {
			return fmt.Errorf("write %s: %w", c.path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", c.path, err)
	}
	return nil
}

// Insert appends the record to the end of the sequence. Key uniqueness is the
// caller's responsibility.
func (c *Collection[T]) Insert(record T) {
	c.items = append(c.items, record)
}

// Remove deletes the first record whose key matches and reports whether one
// was found.
func (c *Collection[T]) Remove(key string) bool {
	for i, record := range c.items {
		if c.keyOf(record) == key {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Update locates the first record by key and mutates it in place, reporting
// whether one was found.
func (c *Collection[T]) Update(key string, mutate func(*T)) bool {
	for i := range c.items {
		if c.keyOf(c.items[i]) == key {
			mutate(&c.items[i])
			return true
		}
	}
	return false
}

// UpdateFirst mutates the first record satisfying match, reporting whether
// one was found. Used where the key alone is ambiguous, e.g. repeated
// (student, course) enrollment pairs after a drop.
func (c *Collection[T]) UpdateFirst(match func(T) bool, mutate func(*T)) bool {
	for i := range c.items {
		if match(c.items[i]) {
			mutate(&c.items[i])
			return true
		}
	}
	return false
}

// Find returns the first record whose key matches.
func (c *Collection[T]) Find(key string) (T, bool) {
	for _, record := range c.items {
		if c.keyOf(record) == key {
			return record, true
		}
	}
	var zero T
	return zero, false
}

// All returns a copy of the sequence in current order.
func (c *Collection[T]) All() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of records held.
func (c *Collection[T]) Len() int {
	return len(c.items)
}

// Replace swaps the whole sequence, used by seeding.
func (c *Collection[T]) Replace(records []T) {
	c.items = append(c.items[:0], records...)
}
