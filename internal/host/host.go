package host

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Runtime is the slice of the agent runtime a provider may use while it runs:
// a settings lookup and an error logging surface.
//
//go:generate mockgen -package=testutil -destination=../testutil/mock_runtime.go -source=host.go Runtime
type Runtime interface {
	// GetSetting returns the named setting and whether it is present.
	GetSetting(name string) (string, bool)

	// LogError records a failure together with its detail.
	LogError(message string, err error)
}

// Env is a Runtime whose settings come from viper (environment, .env, config file)
// and whose errors go to a zerolog logger.
type Env struct {
	settings *viper.Viper
	logger   zerolog.Logger
}

// NewEnv creates a runtime backed by the given settings and logger
func NewEnv(settings *viper.Viper, logger zerolog.Logger) *Env {
	if settings == nil {
		settings = viper.New()
		settings.AutomaticEnv()
	}

	return &Env{
		settings: settings,
		logger:   logger.With().Str("component", "host").Logger(),
	}
}

// GetSetting implements Runtime. Blank values count as absent.
// The viper instance is only read here, so concurrent providers may share it.
func (e *Env) GetSetting(name string) (string, bool) {
	value := strings.TrimSpace(e.settings.GetString(name))
	if value == "" {
		return "", false
	}
	return value, true
}

// LogError implements Runtime
func (e *Env) LogError(message string, err error) {
	e.logger.Error().Err(err).Msg(message)
}
