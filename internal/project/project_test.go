package project

import (
	"path/filepath"
	"testing"

	"github.com/IJOL/greedypacker/internal/engine"
	"github.com/IJOL/greedypacker/internal/model"
)

func TestSaveLoadProject_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kitchen.json")

	items := []*model.Item{
		model.NewItem("Side Panel", 600, 400, 2),
		model.NewItem("Shelf", 500, 300, 4),
	}
	mgr := engine.NewManager(2440, 1220, engine.Config{Rotation: true}, engine.BestAreaFit, engine.BinFirstFit)
	result := mgr.Pack(engine.ExpandQuantities(items))

	p := Project{
		Name:   "kitchen",
		Config: model.DefaultAppConfig(),
		Items:  items,
		Result: &result,
	}

	if err := SaveProject(path, p); err != nil {
		t.Fatalf("SaveProject returned error: %v", err)
	}

	loaded, err := LoadProject(path)
	if err != nil {
		t.Fatalf("LoadProject returned error: %v", err)
	}
	if loaded.Name != "kitchen" {
		t.Errorf("name mismatch: %q", loaded.Name)
	}
	if len(loaded.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(loaded.Items))
	}
	if loaded.Items[0].Label != "Side Panel" || loaded.Items[0].Quantity != 2 {
		t.Errorf("item mismatch: %+v", loaded.Items[0])
	}
	if loaded.Result == nil || loaded.Result.PlacedCount() != result.PlacedCount() {
		t.Errorf("result not preserved: %+v", loaded.Result)
	}
}

func TestLoadProject_MissingFile(t *testing.T) {
	if _, err := LoadProject(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing project file")
	}
}
