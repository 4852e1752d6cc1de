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
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "synver"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	reportFlagName       = "report"
	excludeFlagName      = "exclude"
	includeTestsFlagName = "include-tests"
	diffFlagName         = "diff"
	plainFlagName        = "plain"
	verboseFlagName      = "verbose"
	logFileFlagName      = "log-file"

	reportConfigKey       = "report.path"
	excludeConfigKey      = "paths.exclude"
	includeTestsConfigKey = "compare.include_tests"
	diffConfigKey         = "output.diff"
	plainConfigKey        = "output.plain"

	defaultReportPath   = ""
	defaultIncludeTests = false
	defaultDiff         = false
	defaultPlain        = false

	envPrefix = "SYNVER"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".synver.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

// configErr holds a config file that exists but could not be read. It is
// reported when a command runs rather than at init.
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
	viper.SetDefault(reportConfigKey, defaultReportPath)
	viper.SetDefault(excludeConfigKey, []string{})
	viper.SetDefault(includeTestsConfigKey, defaultIncludeTests)
	viper.SetDefault(diffConfigKey, defaultDiff)
	viper.SetDefault(plainConfigKey, defaultPlain)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	configErr = readConfig()
}

// readConfig loads synver.yaml when present. A missing file is not an error.
func readConfig() error {
	err := viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("read %s: %w", configFileName, err)
}

var slogLevels = map[string]slog.Level{
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}

// parseSlogLevel accepts a level name or a raw slog level number such as -4.
func parseSlogLevel(value string, fallback slog.Level) slog.Level {
	name := strings.ToLower(strings.TrimSpace(value))

	if level, ok := slogLevels[name]; ok {
		return level
	}

	if n, err := strconv.Atoi(name); err == nil {
		return slog.Level(n)
	}

	return fallback
}

// configureLogger routes the default slog logger to a rotating log file.
// verbose forces debug output regardless of log.level.
func configureLogger(logPath string, verbose bool) {
	level := slog.LevelDebug
	if !verbose {
		level = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	rotation := &lumberjack.Logger{
		Filename:   logFilename(logPath),
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	globalLogger = slog.New(slog.NewTextHandler(rotation, &slog.HandlerOptions{
		AddSource: true,
		Level:     level,
	}))
	slog.SetDefault(globalLogger)
}

// logFilename falls back from the explicit path to log.filename and then
// to the built-in default.
func logFilename(explicit string) string {
	for _, candidate := range []string{explicit, viper.GetString(logFilenameKey)} {
		if strings.TrimSpace(candidate) != "" {
			return candidate
		}
	}

	return defaultLogFilename
}
