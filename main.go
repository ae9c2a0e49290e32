package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-varexp/internal/command/resolve"
)

// appVersion 由构建时 -ldflags 注入。
var appVersion = "dev"

func main() {
	app := &cli.Command{
		Name:    "varexp",
		Usage:   "配置变量解析工具",
		Version: appVersion,
		Commands: []*cli.Command{
			resolve.Command,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
