// Package propsrc 提供属性来源文件的加载与合并。
//
// 支持三种文件格式，统一展开为字符串键值表供 varexp 解析使用：
//
//  1. .properties - 逐行 key=value，支持 # 与 ! 注释
//  2. .yaml/.yml - 嵌套结构展开为点号连接的扁平键
//  3. .json - 同 YAML
//
// 同一来源组内按列出顺序合并，后加载的文件覆盖同名键。
//
// # 来源清单
//
// [Manifest] 用一个 YAML/JSON 文件描述完整的来源组合：
//
//	properties:
//	  - bootstrap.properties
//	defaults:
//	  - defaults.properties
//	dirs:
//	  usr.extension.dir: /usr/ext
//
// 通过 [LoadManifest] 读取后调用 [Manifest.Sources] 得到
// 可直接传给 varexp.Resolve 的三个属性来源。
package propsrc
