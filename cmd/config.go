package cmd

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "apkrepack"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	toolsDirFlagName    = "tools-dir"
	javaFlagName        = "java"
	hookFlagName        = "hook"
	verboseFlagName     = "verbose"
	workDirFlagName     = "work-dir"
	reportsFlagName     = "reports"
	metricsFileFlagName = "metrics-file"

	toolsBaseDirKey     = "tools.base_dir"
	decompilerPrefixKey = "tools.decompiler_prefix"
	decompilerExtKey    = "tools.decompiler_ext"
	hookPayloadKey      = "tools.hook_payload"
	javaKey             = "tools.java"
	workDirKey          = "run.work_dir"
	nativeHookKey       = "run.native_hook"
	verboseKey          = "run.verbose"
	processTimeoutKey   = "run.process_timeout"
	reportDirKey        = "report.dir"
	metricsFileKey      = "metrics.file"

	defaultDecompilerPrefix = "apkeditor"
	defaultDecompilerExt    = ".jar"
	defaultHookPayload      = "lib_Pairip_CoreX.so"
	defaultJava             = "java"
	defaultNativeHook       = false
	defaultVerbose          = false
	defaultProcessTimeout   = 0
	defaultReportsDir       = ".apkrepack-reports"
	defaultMetricsFile      = ""

	envPrefix = "APKREPACK"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".apkrepack.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(toolsBaseDirKey, defaultToolsBaseDir())
	viper.SetDefault(decompilerPrefixKey, defaultDecompilerPrefix)
	viper.SetDefault(decompilerExtKey, defaultDecompilerExt)
	viper.SetDefault(hookPayloadKey, defaultHookPayload)
	viper.SetDefault(javaKey, defaultJava)
	viper.SetDefault(workDirKey, defaultWorkDir())
	viper.SetDefault(nativeHookKey, defaultNativeHook)
	viper.SetDefault(verboseKey, defaultVerbose)
	viper.SetDefault(processTimeoutKey, defaultProcessTimeout)
	viper.SetDefault(reportDirKey, defaultReportsDir)
	viper.SetDefault(metricsFileKey, defaultMetricsFile)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	readConfig()
}

// readConfig loads apkrepack.yaml when present. A file that exists but
// cannot be parsed is reported and the defaults stay in effect.
func readConfig() {
	err := viper.ReadInConfig()
	if err == nil {
		return
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
		return
	}

	slog.Warn("Ignoring unreadable config file", "file", viper.ConfigFileUsed(), "error", err)
}

// defaultToolsBaseDir is the directory holding the running executable.
func defaultToolsBaseDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}

	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	return filepath.Dir(exe)
}

func defaultWorkDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return os.TempDir()
	}

	return home
}

func processTimeout() time.Duration {
	seconds := viper.GetInt64(processTimeoutKey)
	if seconds <= 0 {
		return 0
	}

	return time.Duration(seconds) * time.Second
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
