package identity

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	appDir   = "connectfour"
	fileName = "participant-id"
)

// DefaultPath - the per-user location of the participant id, e.g. ~/.config/connectfour/participant-id.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config dir: %w", err)
	}

	return filepath.Join(dir, appDir, fileName), nil
}

// LoadOrCreate - returns the participant id stored at path, generating and saving a new one
// on the first run. The same device therefore always rejoins a room with the same id.
func LoadOrCreate(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		if id := strings.TrimSpace(string(data)); id != "" {
			return id, nil
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("failed to read participant id: %w", err)
	}

	id := uuid.NewString()

	if err = os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("failed to create participant id dir: %w", err)
	}

	if err = os.WriteFile(path, []byte(id+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("failed to save participant id: %w", err)
	}

	return id, nil
}
