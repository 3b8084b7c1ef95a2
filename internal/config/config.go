// Package config resolves and validates the letter command's settings.
//
// Values come from, in decreasing priority: command-line flags, LETTER_*
// environment variables, an optional YAML file named by --config, and the
// flag defaults. Validate rejects settings the search cannot run with.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/wordmorph/morph"
	"github.com/katalvlaran/wordmorph/render"
)

// EnvPrefix namespaces environment overrides, e.g. LETTER_LOG_LEVEL.
const EnvPrefix = "LETTER"

var (
	// ErrModeConflict is returned when both stack and queue are requested.
	ErrModeConflict = errors.New("config: cannot specify both stack and queue")
	// ErrModeMissing is returned when neither stack nor queue is requested.
	ErrModeMissing = errors.New("config: must specify either stack or queue")
	// ErrBeginMissing is returned when no begin word is given.
	ErrBeginMissing = errors.New("config: must specify begin word")
	// ErrEndMissing is returned when no end word is given.
	ErrEndMissing = errors.New("config: must specify end word")
	// ErrNoOperations is returned when none of change, length or swap is on.
	ErrNoOperations = errors.New("config: must specify at least one of change, length, or swap")
	// ErrLengthMismatch is returned when begin and end differ in length
	// and length mode is off.
	ErrLengthMismatch = errors.New("config: cannot change words of different lengths without length mode")
	// ErrBadOutput is returned for an output mode other than W, M or Y.
	ErrBadOutput = errors.New("config: invalid output format, use W, M or Y")
	// ErrBadEditStyle is returned for an edit style other than long or short.
	ErrBadEditStyle = errors.New("config: invalid edit style, use long or short")
)

// Config is the fully resolved command configuration.
type Config struct {
	Stack bool `mapstructure:"stack"`
	Queue bool `mapstructure:"queue"`

	Begin string `mapstructure:"begin"`
	End   string `mapstructure:"end"`

	Change bool `mapstructure:"change"`
	Length bool `mapstructure:"length"`
	Swap   bool `mapstructure:"swap"`

	Output    string `mapstructure:"output"`
	EditStyle string `mapstructure:"edit-style"`

	DictPath    string `mapstructure:"dict"`
	LogLevel    string `mapstructure:"log-level"`
	LogFormat   string `mapstructure:"log-format"`
	MetricsFile string `mapstructure:"metrics-file"`
}

// Load layers the flags of cmd over the environment and the optional config
// file, then decodes the result. It does not validate.
func Load(cmd *cobra.Command) (*Config, error) {
	v := viper.New()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("config: binding flags: %w", err)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decoding: %w", err)
	}
	cfg.Output = strings.ToUpper(cfg.Output)
	cfg.EditStyle = strings.ToLower(cfg.EditStyle)
	return &cfg, nil
}

// Validate checks the settings in the order the command reports them.
func (c *Config) Validate() error {
	switch {
	case c.Stack && c.Queue:
		return ErrModeConflict
	case !c.Stack && !c.Queue:
		return ErrModeMissing
	case c.Begin == "":
		return ErrBeginMissing
	case c.End == "":
		return ErrEndMissing
	case !c.Change && !c.Length && !c.Swap:
		return ErrNoOperations
	case !c.Length && len(c.Begin) != len(c.End):
		return ErrLengthMismatch
	}
	if _, err := c.RenderOptions(); err != nil {
		return err
	}
	return nil
}

// Discipline maps the stack/queue switch onto the search discipline.
func (c *Config) Discipline() morph.Discipline {
	if c.Stack {
		return morph.Stack
	}
	return morph.Queue
}

// Operations returns the enabled edit families.
func (c *Config) Operations() morph.Operation {
	var ops morph.Operation
	if c.Change {
		ops |= morph.OpChange
	}
	if c.Length {
		ops |= morph.OpLength
	}
	if c.Swap {
		ops |= morph.OpSwap
	}
	return ops
}

// RenderOptions translates the output flags.
func (c *Config) RenderOptions() (render.Options, error) {
	var o render.Options
	switch c.Output {
	case "W", "":
		o.Mode = render.WordMode
	case "M":
		o.Mode = render.EditMode
	case "Y":
		o.Mode = render.ReportMode
	default:
		return o, fmt.Errorf("%w: %q", ErrBadOutput, c.Output)
	}
	switch c.EditStyle {
	case "long", "":
		o.Style = render.LongStyle
	case "short":
		o.Style = render.ShortStyle
	default:
		return o, fmt.Errorf("%w: %q", ErrBadEditStyle, c.EditStyle)
	}
	return o, nil
}

// RegisterFlags declares every setting on cmd with its default.
func RegisterFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.BoolP("stack", "s", false, "use the stack-based routing scheme (depth-first)")
	f.BoolP("queue", "q", false, "use the queue-based routing scheme (breadth-first)")
	f.StringP("begin", "b", "", "word to begin the morph at")
	f.StringP("end", "e", "", "word to end the morph at")
	f.StringP("output", "o", "W", "output format: W (words), M (modifications) or Y (YAML report)")
	f.BoolP("change", "c", false, "allow changing one letter")
	f.BoolP("length", "l", false, "allow inserting or deleting one letter")
	f.BoolP("swap", "p", false, "allow swapping two adjacent letters")
	f.String("dict", "", "dictionary file (default stdin)")
	f.String("edit-style", "long", "modification lines: long (change,1,a) or short (c,1,a)")
	f.String("config", "", "YAML config file")
	f.String("log-level", "warn", "log level: debug, info, warn or error")
	f.String("log-format", "text", "log format: text or json")
	f.String("metrics-file", "", "write Prometheus metrics to this textfile")
}
