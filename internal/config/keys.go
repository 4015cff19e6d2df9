package config

import (
	"os"
	"strconv"
	"strings"
)

// SettingSource represents where an effective setting comes from.
type SettingSource string

const (
	SourceEnv    SettingSource = "env"
	SourceConfig SettingSource = "config" // config file or built-in default
)

// SettingStatus describes one setting for the status command.
type SettingStatus struct {
	Key    string        `json:"key"`
	EnvVar string        `json:"env_var"`
	Value  string        `json:"value"`
	Source SettingSource `json:"source"`
}

// overridableKeys lists the settings reported by CheckSettings, in display order.
var overridableKeys = []string{
	"analysis.concurrency",
	"analysis.excerpt_length",
	"api.host",
	"api.port",
	"api.max_body_bytes",
	"logging.level",
	"logging.format",
	"output.format",
	"output.indent",
}

// CheckSettings reports the effective value of each overridable setting and
// whether an environment variable supplied it.
func CheckSettings(cfg *Config) []SettingStatus {
	values := cfg.flatten()
	statuses := make([]SettingStatus, 0, len(overridableKeys))
	for _, key := range overridableKeys {
		statuses = append(statuses, checkSetting(key, values[key]))
	}
	return statuses
}

// checkSetting checks where a setting came from.
func checkSetting(key, value string) SettingStatus {
	s := SettingStatus{
		Key:    key,
		EnvVar: EnvVar(key),
		Value:  value,
		Source: SourceConfig,
	}
	if _, ok := os.LookupEnv(s.EnvVar); ok {
		s.Source = SourceEnv
	}
	return s
}

// EnvVar returns the environment variable that overrides a dotted key.
func EnvVar(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

func (c *Config) flatten() map[string]string {
	return map[string]string{
		"analysis.concurrency":    strconv.Itoa(c.Analysis.Concurrency),
		"analysis.excerpt_length": strconv.Itoa(c.Analysis.ExcerptLength),
		"api.host":                c.API.Host,
		"api.port":                strconv.Itoa(c.API.Port),
		"api.max_body_bytes":      strconv.FormatInt(c.API.MaxBodyBytes, 10),
		"logging.level":           c.Logging.Level,
		"logging.format":          c.Logging.Format,
		"output.format":           c.Output.Format,
		"output.indent":           strconv.Itoa(c.Output.Indent),
	}
}
