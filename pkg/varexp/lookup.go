package varexp

import "strings"

// envPrefix 环境变量风格的名字前缀，未命中时回退到去前缀的名字。
const envPrefix = "env."

// PropertyValue 按固定回退顺序查找变量的字面值（不做递归解析）。
//
// 顺序：Dirs > Props > Defaults；带 "env." 前缀的名字在全部
// 未命中后，用去前缀的名字再查一轮 Props 与 Defaults。
// 值两端恰好各有一个双引号且长度大于 2 时剥掉一层引号，
// 恰为 `""` 的值保持原样。
//
// 第二个返回值表示是否找到；找到但为空串也返回 true，
// 空值的取舍由调用方决定。
func PropertyValue(name string, src Sources) (string, bool) {
	value, ok := src.Dirs[name]
	if !ok {
		value, ok = src.Props[name]
		if !ok {
			value, ok = src.Defaults[name]
		}
		if !ok && strings.HasPrefix(name, envPrefix) && len(name) > len(envPrefix) {
			stripped := name[len(envPrefix):]
			value, ok = src.Props[stripped]
			if !ok {
				value, ok = src.Defaults[stripped]
			}
		}
	}
	if !ok {
		return "", false
	}

	if len(value) > 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
		value = value[1 : len(value)-1]
	}

	return value, true
}
