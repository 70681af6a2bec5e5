// Package storage keeps the local catalog of generated stacks as a JSON
// file under the terrastrap root.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// Stack records one generated configuration.
type Stack struct {
	Project     string    `json:"project"`
	Provider    string    `json:"provider"`
	Environment string    `json:"environment"`
	Region      string    `json:"region"`
	Path        string    `json:"path"`
	CreatedAt   time.Time `json:"created_at"`
}

// StackStore implements the stack catalog using a local JSON file.
type StackStore struct {
	mu  sync.Mutex
	dir string
}

// NewStackStore creates a stack store rooted at the given directory.
func NewStackStore(dir string) *StackStore {
	return &StackStore{dir: dir}
}

func (s *StackStore) filePath() string {
	return filepath.Join(s.dir, "stacks.json")
}

// Append records a newly generated stack.
func (s *StackStore) Append(st Stack) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stacks, err := s.readUnsafe()
	if err != nil {
		stacks = nil // Start fresh if file is corrupted
	}

	st.CreatedAt = time.Now()
	stacks = append(stacks, st)

	return s.writeUnsafe(stacks)
}

// List returns all recorded stacks, most recent first.
func (s *StackStore) List() ([]Stack, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stacks, err := s.readUnsafe()
	if err != nil {
		return nil, err
	}
	sort.Slice(stacks, func(i, j int) bool {
		return stacks[i].CreatedAt.After(stacks[j].CreatedAt)
	})
	return stacks, nil
}

func (s *StackStore) readUnsafe() ([]Stack, error) {
	data, err := os.ReadFile(s.filePath())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read stacks: %w", err)
	}
	var stacks []Stack
	if err := json.Unmarshal(data, &stacks); err != nil {
		return nil, fmt.Errorf("failed to parse stacks: %w", err)
	}
	return stacks, nil
}

func (s *StackStore) writeUnsafe(stacks []Stack) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", s.dir, err)
	}
	data, err := json.MarshalIndent(stacks, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal stacks: %w", err)
	}
	return os.WriteFile(s.filePath(), data, 0o644)
}
