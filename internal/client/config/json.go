package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/mahendrakumawat2208/medium-blog-platform/internal/flagx"
	"github.com/mahendrakumawat2208/medium-blog-platform/internal/timex"
)

// jsonConfig is the DTO used exclusively for JSON unmarshalling. It relies
// on timex.Duration so timeouts can be written as "30s" or as integer
// nanoseconds.
type jsonConfig struct {
	BaseURL     *string         `json:"base_url"`
	StatePath   *string         `json:"state_path"`
	HTTPTimeout *timex.Duration `json:"http_timeout"`
}

// parseJSON overlays cfg with values from the JSON file named by the -c or
// -config flag. When no file is named, the function is a no-op. Fields
// absent from the file keep their earlier values.
func parseJSON(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != nil {
		cfg.BaseURL = *jc.BaseURL
	}
	if jc.StatePath != nil {
		cfg.StatePath = *jc.StatePath
	}
	if jc.HTTPTimeout != nil {
		cfg.HTTPTimeout = time.Duration(jc.HTTPTimeout.Duration)
	}
}
