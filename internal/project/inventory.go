package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/IJOL/greedypacker/internal/engine"
)

// Inventory tracks the usable offcuts left over from previous packing
// runs, so later jobs can consume remnant stock before opening new bins.
type Inventory struct {
	Offcuts []engine.Offcut `json:"offcuts"`
}

// DefaultInventoryPath returns the default file path for the inventory,
// ~/.greedypacker/inventory.json.
func DefaultInventoryPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".greedypacker", "inventory.json"), nil
}

// SaveInventory writes the inventory to the specified JSON file.
// It creates parent directories if they do not exist.
func SaveInventory(path string, inv Inventory) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(inv, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadInventory reads the inventory from the specified JSON file.
// If the file does not exist, it returns an empty inventory.
func LoadInventory(path string) (Inventory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Inventory{}, nil
		}
		return Inventory{}, err
	}
	var inv Inventory
	if err := json.Unmarshal(data, &inv); err != nil {
		return Inventory{}, err
	}
	return inv, nil
}

// MergeOffcuts adds offcuts to the inventory, skipping duplicate IDs.
func (inv *Inventory) MergeOffcuts(offcuts []engine.Offcut) {
	ids := make(map[string]bool, len(inv.Offcuts))
	for _, o := range inv.Offcuts {
		ids[o.ID] = true
	}
	for _, o := range offcuts {
		if !ids[o.ID] {
			inv.Offcuts = append(inv.Offcuts, o)
			ids[o.ID] = true
		}
	}
}
