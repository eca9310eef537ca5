// Copyright (c) Microsoft. All rights reserved.

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	al "github.com/microsoft/agentlab/agentlab"
)

// FileStore is a [agentlab.MessageStore] that checkpoints the whole
// conversation to one JSON file after every append. The file is rewritten
// atomically (temp file + rename), so a crash mid-write never corrupts an
// existing checkpoint. A missing file reads as an empty conversation.
type FileStore struct {
	mu   sync.Mutex
	path string
}

var _ al.MessageStore = (*FileStore)(nil)

// NewFileStore creates a store backed by the JSON file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the checkpoint file location.
func (s *FileStore) Path() string { return s.path }

func (s *FileStore) ListMessages(_ context.Context) ([]al.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *FileStore) AddMessages(_ context.Context, msgs []al.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.load()
	if err != nil {
		return err
	}
	return s.save(append(existing, msgs...))
}

func (s *FileStore) Serialize() (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msgs, err := s.load()
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"path":     s.path,
		"messages": msgs,
	}, nil
}

func (s *FileStore) load() ([]al.Message, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read checkpoint %s: %w", s.path, err)
	}

	var msgs []al.Message
	if err := json.Unmarshal(data, &msgs); err != nil {
		return nil, fmt.Errorf("parse checkpoint %s: %w", s.path, err)
	}
	return msgs, nil
}

func (s *FileStore) save(msgs []al.Message) error {
	data, err := json.MarshalIndent(msgs, "", "  ")
	if err != nil {
		return fmt.Errorf("encode checkpoint: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".checkpoint-*")
	if err != nil {
		return fmt.Errorf("create temp checkpoint: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write checkpoint: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close checkpoint: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace checkpoint %s: %w", s.path, err)
	}
	return nil
}
