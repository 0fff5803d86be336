package validate

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/gridkit/gridkit/pkg/grid"
	"github.com/gridkit/gridkit/pkg/rule"
)

// MsgMode controls how many failures the error map retains.
type MsgMode string

const (
	// MsgModeMulti keeps one entry per failing cell.
	MsgModeMulti MsgMode = "multi"
	// MsgModeSingle collapses the map to the most recent failure.
	MsgModeSingle MsgMode = "single"
)

// MessageStyle controls when the failure tooltip opens.
type MessageStyle string

const (
	// MessageDefault opens the tooltip only for fixed-height grids.
	MessageDefault MessageStyle = "default"
	// MessageTooltip always opens the tooltip on the failing cell.
	MessageTooltip MessageStyle = "tooltip"
)

// Options holds the per-grid validation behavior knobs.
type Options struct {
	// AutoPos scrolls to and focuses the first failing cell on failure.
	AutoPos bool
	// MsgMode selects single or multi message retention.
	MsgMode MsgMode
	// Message selects the tooltip display style.
	Message MessageStyle
}

// DefaultOptions returns the documented defaults: auto-positioning on,
// multi-message retention, default tooltip style.
func DefaultOptions() Options {
	return Options{
		AutoPos: true,
		MsgMode: MsgModeMulti,
		Message: MessageDefault,
	}
}

type envOptions struct {
	AutoPos bool   `env:"GRID_VALIDATE_AUTOPOS" envDefault:"true"`
	MsgMode string `env:"GRID_VALIDATE_MSG_MODE" envDefault:"multi"`
	Message string `env:"GRID_VALIDATE_MESSAGE" envDefault:"default"`
}

var defaultEnvLoaded sync.Once

// LoadOptions reads Options from GRID_VALIDATE_* environment variables,
// preloading a .env file once per process when one exists.
func LoadOptions() (Options, error) {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	var cfg envOptions
	if err := env.Parse(&cfg); err != nil {
		return Options{}, errors.Join(ErrParsingOptions, err)
	}

	opts := Options{AutoPos: cfg.AutoPos}

	switch MsgMode(cfg.MsgMode) {
	case MsgModeMulti, MsgModeSingle:
		opts.MsgMode = MsgMode(cfg.MsgMode)
	default:
		return Options{}, fmt.Errorf("%w: msg mode %q", ErrInvalidOption, cfg.MsgMode)
	}

	switch MessageStyle(cfg.Message) {
	case MessageDefault, MessageTooltip:
		opts.Message = MessageStyle(cfg.Message)
	default:
		return Options{}, fmt.Errorf("%w: message style %q", ErrInvalidOption, cfg.Message)
	}

	return opts, nil
}

// Option configures a Validator.
type Option func(*Validator)

// WithRules sets the grid's rule set.
func WithRules(set rule.Set) Option {
	return func(v *Validator) { v.rules = set }
}

// WithRegistry sets the named custom validator registry.
// Nil registries are ignored.
func WithRegistry(r *rule.Registry) Option {
	return func(v *Validator) {
		if r != nil {
			v.registry = r
		}
	}
}

// WithPresenter sets the presentation collaborator. A nil presenter
// turns every presentation action into a no-op.
func WithPresenter(p grid.Presenter) Option {
	return func(v *Validator) { v.presenter = p }
}

// WithLogger sets the logger for configuration and deprecation
// warnings. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

// WithOptions replaces the behavior options wholesale.
func WithOptions(opts Options) Option {
	return func(v *Validator) { v.opts = opts }
}

// WithFailureListener registers the host observer for failure
// notifications.
func WithFailureListener(fn FailureListener) Option {
	return func(v *Validator) { v.listener = fn }
}
