// Package resolve 提供变量解析命令。
package resolve

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-varexp/internal/command"
)

// Command 解析命令
var Command = &cli.Command{
	Name:      "resolve",
	Usage:     "解析配置字符串中的 ${name} 占位符",
	ArgsUsage: "[value...]",
	Action:    action,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "manifest",
			Aliases: []string{"m"},
			Value:   command.Defaults.Manifest,
			Usage:   "来源清单文件 (YAML/JSON)",
		},
		&cli.StringSliceFlag{
			Name:    "props",
			Aliases: []string{"p"},
			Usage:   "主属性文件，可重复",
		},
		&cli.StringSliceFlag{
			Name:  "defaults",
			Usage: "默认属性文件，可重复",
		},
		&cli.StringSliceFlag{
			Name:  "dir",
			Usage: "目录变量表条目 name=path，可重复",
		},
		&cli.BoolFlag{
			Name:    "watch",
			Aliases: []string{"w"},
			Value:   command.Defaults.Watch,
			Usage:   "监听来源文件变化并重新解析",
		},
	},
}
