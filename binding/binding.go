// Package binding 提供页脚等模板文字里 ${key} 占位符的替换。
package binding

import "regexp"

var exprPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Interpolate 将 text 中的 ${key} 替换为 vars 中的值；
// 未知键保留原占位符，便于发现模板笔误。
func Interpolate(text string, vars map[string]string) string {
	if len(vars) == 0 {
		return text
	}
	return exprPattern.ReplaceAllStringFunc(text, func(match string) string {
		key := match[2 : len(match)-1]
		if val, ok := vars[key]; ok {
			return val
		}
		return match
	})
}
