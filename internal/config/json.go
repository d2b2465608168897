package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/passvault/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	DatabaseDSN string `json:"database_dsn"`
	LogLevel    string `json:"log_level"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c/-config flags via flagx.JsonConfigFlags;
// if none is given, no JSON is loaded. Only fields present in the file
// override the current values. Read or unmarshal errors panic (caller may
// recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
