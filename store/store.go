// Package store persists games as JSON snapshot files, one per game.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"corrgo/board"
)

// Store reads and writes games below a single directory.
type Store struct {
	Dir string
}

// New returns a store rooted at dir. The directory is created lazily on
// the first save.
func New(dir string) *Store {
	return &Store{Dir: dir}
}

// GameInfo summarizes a stored game for listings.
type GameInfo struct {
	Name      string
	BoardSize int
	MoveCount int
	NextColor board.Stone
}

// Path returns the file path for a game name.
func (s *Store) Path(name string) string {
	return filepath.Join(s.Dir, name+".json")
}

// Exists reports whether a game with this name is stored.
func (s *Store) Exists(name string) bool {
	_, err := os.Stat(s.Path(name))
	return err == nil
}

// Save writes the board's snapshot for the named game.
func (s *Store) Save(name string, b *board.Board) error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("create game dir: %w", err)
	}

	data, err := json.MarshalIndent(b.Snapshot(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode game %q: %w", name, err)
	}
	if err := os.WriteFile(s.Path(name), data, 0644); err != nil {
		return fmt.Errorf("write game %q: %w", name, err)
	}
	return nil
}

// Load reads the named game and reconstructs its board from the
// snapshot fields directly.
func (s *Store) Load(name string) (*board.Board, error) {
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("game %q not found", name)
		}
		return nil, fmt.Errorf("read game %q: %w", name, err)
	}

	var snap board.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode game %q: %w", name, err)
	}

	b, err := board.FromSnapshot(snap)
	if err != nil {
		return nil, fmt.Errorf("game %q: %w", name, err)
	}
	return b, nil
}

// Delete removes the named game.
func (s *Store) Delete(name string) error {
	if !s.Exists(name) {
		return fmt.Errorf("game %q not found", name)
	}
	return os.Remove(s.Path(name))
}

// List returns summaries of all stored games, sorted by name.
func (s *Store) List() ([]GameInfo, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read game dir: %w", err)
	}

	var games []GameInfo
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ".json")
		b, err := s.Load(name)
		if err != nil {
			continue // skip unreadable files, they still show up on disk
		}
		games = append(games, GameInfo{
			Name:      name,
			BoardSize: b.Size(),
			MoveCount: len(b.History()),
			NextColor: b.NextColor(),
		})
	}

	sort.Slice(games, func(i, j int) bool { return games[i].Name < games[j].Name })
	return games, nil
}
