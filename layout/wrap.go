package layout

import (
	"strings"
	"unicode"
)

// 贪心折行：附表备注列使用，先按显式换行分段，再逐词试装。

// wrapLineGap 每行在字号之外额外占用的行距。
const wrapLineGap = 4.0

// wrapText 把 text 折成不超过 maxWidth 的行序列。
// 显式换行优先切段（空段保留为空行）；段内按词贪心累加，
// 词间以单个空格相连，装不下时整词换行。单词本身超宽时照常落行，
// 溢出容忍。块高 = 行数 × (字号 + 4)。
func wrapText(m Measurer, text, font string, fontSize, maxWidth float64) Wrapped {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		lines = append(lines, wrapParagraph(m, para, font, fontSize, maxWidth)...)
	}
	return Wrapped{
		Lines:  lines,
		Height: float64(len(lines)) * (fontSize + wrapLineGap),
	}
}

func wrapParagraph(m Measurer, para, font string, fontSize, maxWidth float64) []string {
	tokens := tokenize(para)
	if len(tokens) == 0 {
		return []string{""}
	}
	var lines []string
	current := ""
	for _, tok := range tokens {
		candidate := tok
		if current != "" {
			candidate = current + " " + tok
		}
		if current != "" && m.TextWidth(candidate, font, fontSize) > maxWidth {
			lines = append(lines, current)
			current = tok
			continue
		}
		current = candidate
	}
	return append(lines, current)
}

// tokenize 切词：ASCII 字母/数字/下划线的极大连续段为一词，
// 其余非空白字符（汉字、标点、符号）各自成词。
func tokenize(s string) []string {
	var tokens []string
	var word strings.Builder
	flush := func() {
		if word.Len() > 0 {
			tokens = append(tokens, word.String())
			word.Reset()
		}
	}
	for _, r := range s {
		switch {
		case isWordRune(r):
			word.WriteRune(r)
		case unicode.IsSpace(r):
			flush()
		default:
			flush()
			tokens = append(tokens, string(r))
		}
	}
	flush()
	return tokens
}

func isWordRune(r rune) bool {
	return r == '_' ||
		(r >= '0' && r <= '9') ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z')
}
