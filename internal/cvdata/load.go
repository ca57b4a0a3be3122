// Package cvdata provides functionality to load and normalize structured CV files.
package cvdata

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/cv-curator/internal/types"
)

// LoadCVData loads a structured CV from a JSON file
func LoadCVData(path string) (*types.CVData, error) {
	// Read file
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	// Unmarshal JSON
	var cv types.CVData
	if err := json.Unmarshal(content, &cv); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	return &cv, nil
}
