package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// LoadArgs returns the arguments stored in the user's config file, to be
// parsed ahead of the command line.
func LoadArgs() ([]string, error) {
	path, err := xdg.ConfigFile(filepath.Join("rasterboard", "rasterboard.conf"))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}
	return readArgs(path)
}

func readArgs(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// return no error when the file doesn't exist
			return nil, nil
		}

		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return strings.Fields(string(b)), nil
}
