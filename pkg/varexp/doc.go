// Package varexp 提供配置字符串中 ${name} 占位符的递归解析。
//
// 变量的值本身可以继续引用其他变量，解析会递归展开直至得到纯字面值。
// 解析是全有或全无的：任一占位符无法解析（缺失、空值或循环引用），
// 整个输入即告失败，不产生部分替换结果。
//
// # 查找顺序
//
//  1. 目录表 (Dirs) - 命中即返回，不再查询其他来源
//  2. 主属性 (Props)
//  3. 默认属性 (Defaults)
//  4. "env." 前缀变量额外回退到去前缀后的名字（先 Props 后 Defaults）
//
// # 语义说明
//
//  1. 仅识别 ${...} 语法（非贪婪匹配，不支持嵌套花括号与转义）
//  2. 所有值中的反斜杠统一替换为正斜杠，保证 Windows 路径替换稳定
//  3. 值两端恰好各一个双引号时剥掉一层（值恰为 "" 除外）
//  4. 空值视同缺失：解析失败
//  5. 循环引用通过解析链检测，每个递归分支持有独立的链副本
//
// # 快速开始
//
// 解析引用了其他属性的配置值：
//
//	src := varexp.Sources{
//	    Props: map[string]string{"a.dir": "${root}/lib", "root": "/opt"},
//	}
//	resolved, err := varexp.Resolve("${a.dir}/x.jar", src)
//	// resolved == "/opt/lib/x.jar"
//
// 失败原因（循环、缺值）只通过注入的日志器输出，返回值统一为
// [ErrUnresolved]。详见 [Resolve] 与 [PropertyValue] 文档。
package varexp
