package propsrc

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-viper/mapstructure/v2"
	yamlv3 "go.yaml.in/yaml/v3"

	"github.com/lwmacct/251207-go-pkg-varexp/pkg/varexp"
)

// Manifest 描述一次解析所需的属性来源组合。
type Manifest struct {
	Properties []string          `json:"properties" desc:"主属性文件列表"`
	Defaults   []string          `json:"defaults" desc:"默认属性文件列表"`
	Dirs       map[string]string `json:"dirs" desc:"目录变量表 (名字 → 路径)"`
}

// LoadManifest 读取 YAML/JSON 格式的来源清单文件。
func LoadManifest(path string) (*Manifest, error) {
	content, err := os.ReadFile(path) //nolint:gosec // path is from trusted config
	if err != nil {
		return nil, err
	}

	var raw any
	if isJSONPath(path) {
		err = json.Unmarshal(content, &raw)
	} else {
		err = yamlv3.Unmarshal(content, &raw)
	}
	if err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}

	normalized := normalizeMapKeys(raw)
	manifestMap, ok := normalized.(map[string]any)
	if !ok {
		return nil, errors.New("manifest root must be object")
	}

	var m Manifest
	if err := decodeManifestMap(manifestMap, &m); err != nil {
		return nil, fmt.Errorf("decode manifest %s: %w", path, err)
	}

	return &m, nil
}

// Sources 加载清单列出的全部文件并构建 varexp 的三个属性来源。
//
// 相对路径基于 baseDir 解析；每组文件按列出顺序合并，
// 后加载的覆盖同名键。
func (m *Manifest) Sources(baseDir string) (varexp.Sources, error) {
	props, err := loadGroup(baseDir, m.Properties)
	if err != nil {
		return varexp.Sources{}, err
	}
	defaults, err := loadGroup(baseDir, m.Defaults)
	if err != nil {
		return varexp.Sources{}, err
	}

	dirs := make(map[string]string, len(m.Dirs))
	for name, dir := range m.Dirs {
		dirs[name] = dir
	}

	return varexp.Sources{Props: props, Defaults: defaults, Dirs: dirs}, nil
}

func loadGroup(baseDir string, paths []string) (map[string]string, error) {
	merged := make(map[string]string)
	for _, p := range paths {
		if baseDir != "" && !filepath.IsAbs(p) {
			p = filepath.Join(baseDir, p)
		}

		loaded, err := LoadFile(p)
		if err != nil {
			return nil, fmt.Errorf("load property source %s: %w", p, err)
		}
		Merge(merged, loaded)

		slog.Debug("Loaded property source", "path", p, "keys", len(loaded))
	}

	return merged, nil
}

func decodeManifestMap(data map[string]any, out any) error {
	conf := &mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.TextUnmarshallerHookFunc(),
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "json",
	}
	decoder, err := mapstructure.NewDecoder(conf)
	if err != nil {
		return err
	}

	return decoder.Decode(data)
}
