// Package highscore persists the best score across runs.
package highscore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// Store reads and writes the persisted high score. The game core never
// touches a store; the frontend saves when a game ends.
type Store interface {
	Load() (int, error)
	Save(score int) error
}

// FileStore keeps the high score as a single integer in a text file.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load returns the stored score. A missing or empty file means no score
// has been recorded yet and loads as zero.
func (s *FileStore) Load() (int, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, err
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return 0, nil
	}
	score, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("high score file %s is corrupt: %w", s.Path, err)
	}
	return score, nil
}

func (s *FileStore) Save(score int) error {
	return os.WriteFile(s.Path, []byte(strconv.Itoa(score)+"\n"), 0644)
}
