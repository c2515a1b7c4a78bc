package pavlog

import (
	"io"

	smerrors "github.com/Station-Manager/errors"
	"github.com/Station-Manager/types"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
)

// Config selects the listeners Configure attaches to a logger.
type Config struct {
	Level             string `toml:"level" validate:"required,loglevel"`
	ConsoleLogging    bool   `toml:"console_logging"`
	JSONLogging       bool   `toml:"json_logging"`
	NoColor           bool   `toml:"no_color"`
	WithTimestamp     bool   `toml:"with_timestamp"`
	FileLogging       bool   `toml:"file_logging"`
	LogFileDir        string `toml:"log_file_dir" validate:"required_if=FileLogging true"`
	LogFileName       string `toml:"log_file_name"`
	LogFileMaxBackups int    `toml:"log_file_max_backups" validate:"gte=0"`
	LogFileMaxAgeDays int    `toml:"log_file_max_age_days" validate:"gte=0"`
	LogFileMaxSizeMB  int    `toml:"log_file_max_size_mb" validate:"gte=0"`
}

// DefaultConfig logs info and above to the console.
func DefaultConfig() *Config {
	return &Config{
		Level:             DefaultLevel.String(),
		ConsoleLogging:    true,
		LogFileDir:        "logs",
		LogFileMaxBackups: 3,
		LogFileMaxAgeDays: 7,
		LogFileMaxSizeMB:  10,
	}
}

// FromLoggingConfig converts the Station-Manager shared logging settings.
func FromLoggingConfig(lc types.LoggingConfig) *Config {
	return &Config{
		Level:             lc.Level,
		ConsoleLogging:    lc.ConsoleLogging,
		WithTimestamp:     lc.WithTimestamp,
		FileLogging:       lc.FileLogging,
		LogFileDir:        lc.RelLogFileDir,
		LogFileMaxBackups: lc.LogFileMaxBackups,
		LogFileMaxAgeDays: lc.LogFileMaxAgeDays,
		LogFileMaxSizeMB:  lc.LogFileMaxSizeMB,
	}
}

// DecodeConfig reads a TOML document over DefaultConfig and validates it.
func DecodeConfig(r io.Reader) (*Config, error) {
	const op smerrors.Op = "pavlog.DecodeConfig"
	cfg := DefaultConfig()
	if err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, smerrors.New(op).Err(err).Msg(errMsgDecodeConfig)
	}
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// BindFlags registers command line flags for c, using its current values as
// defaults.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.Level, "log-level", c.Level, "Minimum log level (fatal, error, warn, info, debug, trace)")
	fs.BoolVar(&c.ConsoleLogging, "log-console", c.ConsoleLogging, "Log to the console")
	fs.BoolVar(&c.JSONLogging, "log-json", c.JSONLogging, "Write console logs as JSON lines")
	fs.BoolVar(&c.NoColor, "log-no-color", c.NoColor, "Disable console colors")
	fs.BoolVar(&c.WithTimestamp, "log-timestamp", c.WithTimestamp, "Include timestamps in console logs")
	fs.BoolVar(&c.FileLogging, "log-file", c.FileLogging, "Log to a rolling file")
	fs.StringVar(&c.LogFileDir, "log-file-dir", c.LogFileDir, "Directory for log files")
	fs.StringVar(&c.LogFileName, "log-file-name", c.LogFileName, "Log file name (default: <executable>.log)")
	fs.IntVar(&c.LogFileMaxBackups, "log-file-max-backups", c.LogFileMaxBackups, "Rotated log files to keep")
	fs.IntVar(&c.LogFileMaxAgeDays, "log-file-max-age", c.LogFileMaxAgeDays, "Days to keep rotated log files")
	fs.IntVar(&c.LogFileMaxSizeMB, "log-file-max-size", c.LogFileMaxSizeMB, "Megabytes before a log file is rotated")
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// Configure validates cfg and attaches the listeners it enables to l at
// cfg.Level. The returned closer releases the log file, if any.
func Configure(l *Logger, cfg *Config) (io.Closer, error) {
	const op smerrors.Op = "pavlog.Configure"
	if l == nil {
		return nil, smerrors.New(op).Msg(errMsgNilLogger)
	}
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	if !cfg.ConsoleLogging && !cfg.FileLogging {
		return nil, smerrors.New(op).Msg(errMsgNoChannels)
	}

	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, smerrors.New(op).Err(err).Msg(errMsgConfigInvalid)
	}

	closer := closerFunc(func() error { return nil })

	if cfg.FileLogging {
		fl, err := NewFileListener(FileOptions{
			Dir:        cfg.LogFileDir,
			Filename:   cfg.LogFileName,
			MaxBackups: cfg.LogFileMaxBackups,
			MaxAgeDays: cfg.LogFileMaxAgeDays,
			MaxSizeMB:  cfg.LogFileMaxSizeMB,
		})
		if err != nil {
			return nil, err
		}
		if err = l.Use(level, fl); err != nil {
			_ = fl.Close()
			return nil, err
		}
		closer = fl.Close
	}

	if cfg.ConsoleLogging {
		var listener Listener
		if cfg.JSONLogging {
			listener = NewJSONListener(nil, nil)
		} else {
			listener = NewConsoleListener(ConsoleOptions{NoColor: cfg.NoColor, WithTimestamp: cfg.WithTimestamp})
		}
		if err = l.Use(level, listener); err != nil {
			return nil, err
		}
	}

	return closer, nil
}
