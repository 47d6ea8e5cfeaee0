// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package storage

import (
	"fmt"
	"sync"
)

// Memory is an in-memory Backend. Memory is not durable and is mainly useful
// for testing. It is safe for concurrent use.
type Memory struct {
	mu     sync.Mutex
	values map[string]string

	// quota is the maximum total size of keys and values in bytes. Zero
	// means no limit.
	quota int
}

// NewMemory returns a new empty Memory backend.
func NewMemory() *Memory {
	return &Memory{
		values: map[string]string{},
	}
}

// SetQuota sets the maximum total size in bytes of all keys and values. Writes
// that would exceed the quota fail with ErrQuotaExceeded. A quota of zero
// removes the limit.
func (m *Memory) SetQuota(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.quota = n
}

// Get implements [Backend.Get].
func (m *Memory) Get(key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	return v, nil
}

// Set implements [Backend.Set].
func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.quota > 0 {
		size := len(key) + len(value)
		for k, v := range m.values {
			if k != key {
				size += len(k) + len(v)
			}
		}
		if size > m.quota {
			return fmt.Errorf("%w: writing %q", ErrQuotaExceeded, key)
		}
	}
	m.values[key] = value
	return nil
}

// Remove implements [Backend.Remove].
func (m *Memory) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// Close implements [io.Closer].
func (*Memory) Close() error {
	return nil
}

// Nop is an absent Backend. Reads always miss and writes are discarded.
type Nop struct{}

// Get implements [Backend.Get].
func (Nop) Get(key string) (string, error) {
	return "", fmt.Errorf("%w: %q", ErrNotFound, key)
}

// Set implements [Backend.Set].
func (Nop) Set(string, string) error {
	return nil
}

// Remove implements [Backend.Remove].
func (Nop) Remove(string) error {
	return nil
}

// Close implements [io.Closer].
func (Nop) Close() error {
	return nil
}
