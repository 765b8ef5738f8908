package config

import (
	"log/slog"

	"go.uber.org/fx"
)

// ModuleName is the Fx module name used by NewModule.
const ModuleName = "hjarta-config"

type moduleParams struct {
	fx.In

	Logger *slog.Logger `optional:"true"`
}

// NewModule creates an Fx module providing *Config, *parser.Registry and *loader.Loader.
// A *slog.Logger present in the container is used unless opts set another one.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(opts ...Option) fx.Option {
	return fx.Module(ModuleName,
		fx.Provide(
			func(params moduleParams) (*Config, error) {
				all := opts
				if params.Logger != nil {
					all = append([]Option{WithLogger(params.Logger)}, opts...)
				}

				return New(all...)
			},
			(*Config).Registry,
			(*Config).Loader,
		),
	)
}
