package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/hongminglow/yapekuna/internal/auth"
	"github.com/hongminglow/yapekuna/internal/models"
)

// FileStore keeps the session as a signed token in a single file.
type FileStore struct {
	path   string
	tokens *auth.TokenManager
	logger zerolog.Logger
	mu     sync.Mutex
}

func NewFileStore(path string, tokens *auth.TokenManager, logger zerolog.Logger) *FileStore {
	return &FileStore{path: path, tokens: tokens, logger: logger}
}

func (f *FileStore) Load() (Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	raw, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return Session{}, ErrNoSession
	}
	if err != nil {
		return Session{}, fmt.Errorf("read session: %w", err)
	}

	claims, err := f.tokens.Parse(strings.TrimSpace(string(raw)))
	if err != nil {
		f.logger.Info().Err(err).Str("path", f.path).Msg("discarding stored session")
		return Session{}, ErrNoSession
	}
	return Session{UserID: claims.UserID, IssuedAt: claims.IssuedAt}, nil
}

func (f *FileStore) Save(id models.UserID) (Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	token, issued, err := f.tokens.Generate(id)
	if err != nil {
		return Session{}, err
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return Session{}, fmt.Errorf("create session dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".session-*")
	if err != nil {
		return Session{}, fmt.Errorf("write session: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.WriteString(token + "\n"); err != nil {
		tmp.Close()
		return Session{}, fmt.Errorf("write session: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return Session{}, fmt.Errorf("write session: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return Session{}, fmt.Errorf("write session: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return Session{}, fmt.Errorf("write session: %w", err)
	}
	return Session{UserID: id, IssuedAt: issued}, nil
}

func (f *FileStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// MemoryStore keeps the session in process.
type MemoryStore struct {
	mu      sync.Mutex
	current *Session
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now}
}

func (m *MemoryStore) Load() (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return Session{}, ErrNoSession
	}
	return *m.current, nil
}

func (m *MemoryStore) Save(id models.UserID) (Session, error) {
	if id.IsZero() {
		return Session{}, errors.New("save session: empty user id")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s := Session{UserID: id, IssuedAt: m.now()}
	m.current = &s
	return s, nil
}

func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = nil
	return nil
}
