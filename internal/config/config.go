// Package config 提供 varexp 命令行工具的配置。
package config

// Config 工具配置。
type Config struct {
	Manifest string            `json:"manifest" desc:"来源清单文件 (YAML/JSON)"`
	Props    []string          `json:"props" desc:"主属性文件列表"`
	Defaults []string          `json:"defaults" desc:"默认属性文件列表"`
	Dirs     map[string]string `json:"dirs" desc:"目录变量表 (名字 → 路径)"`
	Watch    bool              `json:"watch" desc:"监听来源文件变化并重新解析"`
}

// DefaultConfig 返回默认配置。
// 注意：internal/command/command.go 中的 Defaults 变量引用此函数以实现单一配置来源。
func DefaultConfig() Config {
	return Config{}
}
