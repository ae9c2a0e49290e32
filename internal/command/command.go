// Package command 提供命令行子命令的公共配置。
package command

import "github.com/lwmacct/251207-go-pkg-varexp/internal/config"

// Defaults 为默认配置的单一来源。
var Defaults = config.DefaultConfig()
