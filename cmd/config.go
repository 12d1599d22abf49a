package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"namelint.dev/pkg/namelint/internal/adapter"
	"namelint.dev/pkg/namelint/internal/controller"
	"namelint.dev/pkg/namelint/internal/domain"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "namelint"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	verboseFlagName      = "verbose"
	statsOnlyFlagName    = "stats-only"
	suggestFixesFlagName = "suggest-fixes"
	diffFlagName         = "diff"
	interactiveFlagName  = "interactive"
	formatFlagName       = "format"
	reportFlagName       = "report"
	excludeFlagName      = "exclude"
	extFlagName          = "ext"
	strictnessFlagName   = "strictness"
	parallelFlagName     = "parallel"

	excludeConfigKey    = "paths.exclude"
	extensionsConfigKey = "paths.extensions"
	strictnessConfigKey = "rules.strictness"
	parallelConfigKey   = "run.parallel"
	formatConfigKey     = "report.format"
	reportConfigKey     = "report.file"

	defaultScanRoot   = "."
	defaultStrictness = string(domain.Strict)
	defaultFormat     = string(controller.FormatText)
	defaultParallel   = 1

	envPrefix = "NAMELINT"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".namelint.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

// configErr holds the error from reading the config file at startup. It is
// reported by the root command before any work is done.
var configErr error

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(excludeConfigKey, adapter.DefaultExclude)
	viper.SetDefault(extensionsConfigKey, adapter.DefaultExtensions)
	viper.SetDefault(strictnessConfigKey, defaultStrictness)
	viper.SetDefault(parallelConfigKey, defaultParallel)
	viper.SetDefault(formatConfigKey, defaultFormat)
	viper.SetDefault(reportConfigKey, "")

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	configErr = loadConfig()
}

// loadConfig reads namelint.yaml when present. A missing file is not an
// error; an unreadable or malformed one is.
func loadConfig() error {
	err := viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("read config %s: %w", viper.ConfigFileUsed(), err)
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}

// normalizeExtensions trims values and adds the leading dot where missing.
func normalizeExtensions(values []string) []string {
	extensions := make([]string, 0, len(values))

	for _, value := range values {
		ext := strings.TrimSpace(value)
		if ext == "" {
			continue
		}

		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}

		extensions = append(extensions, ext)
	}

	return extensions
}
