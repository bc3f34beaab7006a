package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/nbassil/campuslink/internal/flagx"
	"github.com/nbassil/campuslink/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "10s" or as integer nanoseconds.
type JsonConfig struct {
	ServerURL      string         `json:"server_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	DatabasePath   string         `json:"database_path"`
	KeyPath        string         `json:"key_path"`
}

// parseJson overlays Config with values loaded from the JSON file selected
// via -c or -config. When no file is given, cfg is left untouched. Read and
// unmarshal errors panic; the intended usage is defaults -> parseJson ->
// parseFlags, where later stages override earlier ones.
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

	cfg.ServerURL = jc.ServerURL
	cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	cfg.DatabasePath = jc.DatabasePath
	cfg.KeyPath = jc.KeyPath
}
