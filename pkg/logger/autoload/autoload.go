// Package autoload initializes the global logger from LOG_* environment
// variables as an import side effect.
package autoload

import (
	configx "github.com/farhanfadillahr/shipping-price-checker/pkg/config"
	logx "github.com/farhanfadillahr/shipping-price-checker/pkg/logger"
)

func init() {
	cfg := configx.MustNew[logx.Config]("LOG")
	logx.Init(*cfg)
}
