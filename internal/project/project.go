package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/IJOL/greedypacker/internal/model"
)

// Project bundles the inputs and the last result of a packing job so a
// run can be saved and reopened later.
type Project struct {
	Name   string            `json:"name"`
	Config model.AppConfig   `json:"config"`
	Items  []*model.Item     `json:"items"`
	Result *model.PackResult `json:"result,omitempty"`
}

// SaveProject persists a project to the given path as indented JSON,
// creating parent directories as needed.
func SaveProject(path string, p Project) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadProject reads a project from the given path.
func LoadProject(path string) (Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Project{}, fmt.Errorf("cannot open project file: %w", err)
	}
	var p Project
	if err := json.Unmarshal(data, &p); err != nil {
		return Project{}, fmt.Errorf("cannot parse project file: %w", err)
	}
	return p, nil
}
