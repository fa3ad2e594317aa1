package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	Format     string   `mapstructure:"format"`
	Output     string   `mapstructure:"output"`
	Columns    []string `mapstructure:"columns"`
	Ignore     []string `mapstructure:"ignore"`
	MaxEntries int      `mapstructure:"max_entries"`
	ValueSep   string   `mapstructure:"value_sep"`
	LogLevel   string   `mapstructure:"log_level"`
	LogFormat  string   `mapstructure:"log_format"`
}

// C is the global config instance.
var C Config

// Init initializes configuration with viper.
func Init() error {
	viper.SetDefault("format", "csv")
	viper.SetDefault("output", "-")
	viper.SetDefault("columns", []string{})
	viper.SetDefault("ignore", []string{})
	viper.SetDefault("max_entries", 0)
	viper.SetDefault("value_sep", "|")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("log_format", "text")

	viper.SetConfigName("ldif2csv")
	viper.SetConfigType("yaml")

	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "ldif2csv"))
	}
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("LDIF2CSV")
	viper.AutomaticEnv()

	// A missing or malformed config file is not fatal; defaults apply.
	_ = viper.ReadInConfig()

	return viper.Unmarshal(&C)
}

// GetFormat returns the output format (csv, json or ldif).
func GetFormat() string {
	return viper.GetString("format")
}

// GetOutput returns the output path, "-" meaning stdout.
func GetOutput() string {
	return viper.GetString("output")
}

// GetColumns returns the CSV column list.
func GetColumns() []string {
	return viper.GetStringSlice("columns")
}

// GetIgnore returns the attribute types to drop.
func GetIgnore() []string {
	return viper.GetStringSlice("ignore")
}

// GetMaxEntries returns the record cap, 0 meaning unlimited.
func GetMaxEntries() int {
	return viper.GetInt("max_entries")
}

// GetValueSep returns the separator joining multi-valued attributes in
// CSV cells.
func GetValueSep() string {
	return viper.GetString("value_sep")
}

// GetLogLevel returns the log level name.
func GetLogLevel() string {
	return viper.GetString("log_level")
}

// GetLogFormat returns the log output format.
func GetLogFormat() string {
	return viper.GetString("log_format")
}
