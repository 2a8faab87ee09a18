package model

// AppConfig holds user-level defaults for packing runs. It is persisted
// as JSON by the project package and overridden by CLI flags.
type AppConfig struct {
	BinWidth     int    `json:"bin_width"`
	BinHeight    int    `json:"bin_height"`
	Heuristic    string `json:"heuristic"`
	SplitPolicy  string `json:"split_policy"`
	BinSelection string `json:"bin_selection"`
	Rotation     bool   `json:"rotation"`
	Merge        bool   `json:"merge"`
}

// DefaultAppConfig returns the built-in defaults used when no config file
// exists yet.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		BinWidth:     2440,
		BinHeight:    1220,
		Heuristic:    "best_area_fit",
		SplitPolicy:  "default",
		BinSelection: "first_fit",
		Rotation:     true,
		Merge:        false,
	}
}
