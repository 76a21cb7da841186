package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	keyTimezone = "timezone"
	keyLogLevel = "log.level"

	envPrefix      = "MONTHS"
	configFileName = "months"
)

// defConfigPaths are searched in order when no --config flag is given.
var defConfigPaths = []string{"."}

func init() {
	if home, err := os.UserHomeDir(); err == nil {
		defConfigPaths = append(defConfigPaths, filepath.Join(home, ".config", "months"))
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(keyTimezone, "UTC")
	v.SetDefault(keyLogLevel, "info")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// loadConfig reads the explicit config file if one is given, otherwise the
// first months.* found on the search path. A missing default file is not an
// error. It returns the file used, or "".
func loadConfig(v *viper.Viper, explicit string) (string, error) {
	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		v.SetConfigName(configFileName)
		for _, dir := range defConfigPaths {
			v.AddConfigPath(dir)
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit == "" && errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("read config: %w", err)
	}
	return v.ConfigFileUsed(), nil
}

// newLogger builds a JSON logger writing to w at the given level.
func newLogger(w io.Writer, level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(w)), lvl)
	return zap.New(core), nil
}
