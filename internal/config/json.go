package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// parseJSON decodes the config file at path into a layer. Keys absent from
// the file stay nil; unknown keys are ignored.
//
// A missing file is not an error: it returns found == false.
func parseJSON(path string) (*layer, bool, error) {
	jsonFile, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%w %s: %w", ErrReadingConfigFile, path, err)
	}
	defer jsonFile.Close()

	var fileLayer layer
	if err := json.NewDecoder(jsonFile).Decode(&fileLayer); err != nil {
		return nil, false, fmt.Errorf("%w %s: %w", ErrDecodingConfigFile, path, err)
	}

	return &fileLayer, true, nil
}
