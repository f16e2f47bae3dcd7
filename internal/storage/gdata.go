package storage

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/quasilyte/gdata"
)

// DefaultAppName is the gdata application directory name.
const DefaultAppName = "neon_runner"

// itemStore is the part of gdata.Manager the save store needs.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// SaveStore keeps integer values as gdata items in the user's app data
// directory. It needs no database and suits the window build.
type SaveStore struct {
	items itemStore
}

// OpenSaveStore opens the gdata directory for appName.
func OpenSaveStore(appName string) (*SaveStore, error) {
	if appName == "" {
		appName = DefaultAppName
	}
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open save data: %w", err)
	}
	return &SaveStore{items: m}, nil
}

// Get reads an integer item. The boolean is false when the item is absent.
func (s *SaveStore) Get(key string) (int, bool, error) {
	data, err := s.items.LoadItem(key)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot load %q: %w", key, err)
	}
	if len(data) == 0 {
		return 0, false, nil
	}

	v, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, false, fmt.Errorf("storage: item %q is not an integer: %w", key, err)
	}
	return v, true, nil
}

// Set writes an integer item.
func (s *SaveStore) Set(key string, value int) error {
	if err := s.items.SaveItem(key, []byte(strconv.Itoa(value))); err != nil {
		return fmt.Errorf("storage: cannot save %q: %w", key, err)
	}
	return nil
}
