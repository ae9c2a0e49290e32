package varexp

import (
	"errors"
	"log/slog"
	"regexp"
	"strings"
)

// ═══════════════════════════════════════════════════════════════════════════
// 占位符解析
// ═══════════════════════════════════════════════════════════════════════════

// varNamePattern 非贪婪匹配 ${...}，相邻占位符各自捕获。
var varNamePattern = regexp.MustCompile(`\$\{(.*?)\}`)

// ErrUnresolved 表示输入中存在无法解析的变量引用。
//
// 循环引用、变量缺值、嵌套解析失败统一返回该错误；
// 具体原因仅通过诊断日志输出，不体现在错误值上。
var ErrUnresolved = errors.New("varexp: unresolved variable reference")

// Sources 为一次解析提供的三个只读属性来源。
type Sources struct {
	// Props 主属性，显式配置的值。
	Props map[string]string
	// Defaults 默认属性，Props 未命中时的回退。
	Defaults map[string]string
	// Dirs 目录变量表，名字到文件系统路径的映射。
	// 命中该表的名字不再查询 Props/Defaults。
	Dirs map[string]string
}

// Resolve 解析 input 中的全部 ${name} 占位符并返回纯字面值结果。
//
// 变量的值可以继续引用其他变量，解析沿调用栈递归展开；
// 解析链用于检测循环引用。解析失败（循环、缺值、空值）时
// 返回 [ErrUnresolved]，整个输入视为不可解析，不产生部分结果。
//
// 无占位符的输入原样返回（仅做反斜杠归一化），恒成功。
func Resolve(input string, src Sources, opts ...Option) (string, error) {
	o := newOptions(opts)
	return resolve(input, nil, src, o.logger)
}

// resolve 是递归实现。chain 记录当前解析路径上的变量名，
// 顶层调用传 nil；每次递归下降时基于调用方的链复制扩展，
// 兄弟分支互不影响。
func resolve(input string, chain map[string]struct{}, src Sources, log *slog.Logger) (string, error) {
	// 统一替换为正斜杠，避免替换阶段破坏 Windows 路径
	resolved := strings.ReplaceAll(input, `\`, "/")

	// 在原始输入上收集去重后的变量名；同名占位符只解析一次。
	// 同一字符串内的名字作为无序集合统一对照调用方的链快照。
	names := make(map[string]struct{})
	for _, m := range varNamePattern.FindAllStringSubmatch(input, -1) {
		name := m[1]
		if _, seen := chain[name]; seen {
			log.Debug("Found a recursive variable reference", "variable", name)
			return "", ErrUnresolved
		}
		names[name] = struct{}{}
	}

	for name := range names {
		value, ok := PropertyValue(name, src)
		if !ok || value == "" {
			// 空值视同缺失
			log.Debug("Variable cannot be resolved", "variable", name)
			return "", ErrUnresolved
		}

		next := make(map[string]struct{}, len(chain)+1)
		next[name] = struct{}{}
		for inherited := range chain {
			next[inherited] = struct{}{}
		}

		resolvedValue, err := resolve(value, next, src, log)
		if err != nil {
			log.Debug("Could not resolve the variable value", "variable", name, "value", value)
			return "", ErrUnresolved
		}

		resolvedValue = strings.ReplaceAll(resolvedValue, `\`, "/")
		// 名字按字面替换，不参与任何模式匹配
		resolved = strings.ReplaceAll(resolved, "${"+name+"}", resolvedValue)
	}

	log.Debug("Expression evaluated", "input", input, "resolved", resolved)

	return resolved, nil
}
