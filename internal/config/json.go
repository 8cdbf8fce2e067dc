package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the optional JSON config file.
type StructuredJSONConfig struct {
	App struct {
		LogLevel             string `json:"log_level"`
		DashboardDate        string `json:"dashboard_date"`
		ExitOnStartupFailure bool   `json:"exit_on_startup_failure"`
	} `json:"app,omitempty"`

	Storage struct {
		Mongo struct {
			URL            string   `json:"url"`
			Database       string   `json:"database"`
			ConnectTimeout Duration `json:"connect_timeout"`
		} `json:"mongo,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		Port               string   `json:"port"`
		RequestTimeout     Duration `json:"request_timeout"`
		ShutdownTimeout    Duration `json:"shutdown_timeout"`
		MaxBodyBytes       int64    `json:"max_body_bytes"`
		RateLimit          float64  `json:"rate_limit"`
		RateBurst          int      `json:"rate_burst"`
		CORSAllowedOrigins []string `json:"cors_allowed_origins"`
		HSTSMaxAge         Duration `json:"hsts_max_age"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogLevel:             jsonCfg.App.LogLevel,
			DashboardDate:        jsonCfg.App.DashboardDate,
			ExitOnStartupFailure: jsonCfg.App.ExitOnStartupFailure,
		},
		Storage: Storage{
			Mongo: Mongo{
				URL:            jsonCfg.Storage.Mongo.URL,
				Database:       jsonCfg.Storage.Mongo.Database,
				ConnectTimeout: time.Duration(jsonCfg.Storage.Mongo.ConnectTimeout),
			},
		},
		Server: Server{
			Port:               jsonCfg.Server.Port,
			RequestTimeout:     time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout:    time.Duration(jsonCfg.Server.ShutdownTimeout),
			MaxBodyBytes:       jsonCfg.Server.MaxBodyBytes,
			RateLimit:          jsonCfg.Server.RateLimit,
			RateBurst:          jsonCfg.Server.RateBurst,
			CORSAllowedOrigins: jsonCfg.Server.CORSAllowedOrigins,
			HSTSMaxAge:         time.Duration(jsonCfg.Server.HSTSMaxAge),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
