package propsrc

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	yamlv3 "go.yaml.in/yaml/v3"
)

// ParseProperties 逐行解析 key=value 格式的属性文件。
//
// 空行与 #、! 开头的注释行被跳过；没有等号的行被忽略；
// 键与值两端的空白被去除。
func ParseProperties(r io.Reader) (map[string]string, error) {
	props := make(map[string]string)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
			continue
		}

		eq := strings.Index(line, "=")
		if eq < 0 {
			continue
		}
		key := strings.TrimSpace(line[:eq])
		if key == "" {
			continue
		}
		props[key] = strings.TrimSpace(line[eq+1:])
	}

	return props, scanner.Err()
}

// LoadFile 按扩展名加载单个属性来源文件。
//
// .properties 走 [ParseProperties]；.yaml/.yml/.json 解析后
// 将嵌套结构展开为点号连接的扁平键，标量值渲染为字符串。
func LoadFile(path string) (map[string]string, error) {
	content, err := os.ReadFile(path) //nolint:gosec // path is from trusted config
	if err != nil {
		return nil, err
	}

	if strings.EqualFold(filepath.Ext(path), ".properties") {
		return ParseProperties(bytes.NewReader(content))
	}

	return parseStructured(path, content)
}

// Merge 将 src 合并进 dst，src 中的键覆盖 dst 的同名键。
func Merge(dst, src map[string]string) {
	for key, value := range src {
		dst[key] = value
	}
}

func parseStructured(path string, content []byte) (map[string]string, error) {
	var raw any
	var err error
	if isJSONPath(path) {
		err = json.Unmarshal(content, &raw)
	} else {
		err = yamlv3.Unmarshal(content, &raw)
	}
	if err != nil {
		return nil, err
	}

	normalized := normalizeMapKeys(raw)
	if normalized == nil {
		return map[string]string{}, nil
	}
	root, ok := normalized.(map[string]any)
	if !ok {
		return nil, errors.New("property source root must be object")
	}

	out := make(map[string]string)
	flattenInto(out, "", root)

	return out, nil
}

func isJSONPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

func normalizeMapKeys(val any) any {
	switch typed := val.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, value := range typed {
			out[key] = normalizeMapKeys(value)
		}

		return out
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, value := range typed {
			out[fmt.Sprintf("%v", key)] = normalizeMapKeys(value)
		}

		return out
	case []any:
		for i := range typed {
			typed[i] = normalizeMapKeys(typed[i])
		}
		return typed
	default:
		return val
	}
}

func flattenInto(dst map[string]string, prefix string, src map[string]any) {
	for key, value := range src {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		if child, ok := value.(map[string]any); ok {
			flattenInto(dst, fullKey, child)

			continue
		}
		if value == nil {
			dst[fullKey] = ""

			continue
		}

		dst[fullKey] = fmt.Sprintf("%v", value)
	}
}
