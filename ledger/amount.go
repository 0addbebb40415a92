package ledger

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// 金额的两种写法：阿拉伯数字（带千分位）与大写数字（壹贰叁……）。

var cnyPrinter = message.NewPrinter(language.SimplifiedChinese)

// FormatAmount 按本地习惯格式化数字金额，例如 ¥12,000 或 ¥66.60。
func FormatAmount(v float64) string {
	if v == math.Trunc(v) {
		return cnyPrinter.Sprintf("¥%d", int64(v))
	}
	return cnyPrinter.Sprintf("¥%.2f", v)
}

var (
	cnDigits = [...]string{"零", "壹", "贰", "叁", "肆", "伍", "陆", "柒", "捌", "玖"}
	cnUnits  = [...]string{"", "拾", "佰", "仟"}
	cnGroups = [...]string{"", "万", "亿", "万亿"}
)

// CapitalAmount 将金额转写为大写记账体，例如 1200 → 金壹仟贰佰元整。
func CapitalAmount(v float64) string {
	if v < 0 {
		return "负" + CapitalAmount(-v)
	}
	cents := int64(math.Round(v * 100))
	yuan := cents / 100
	jiao := cents / 10 % 10
	fen := cents % 10

	var b strings.Builder
	b.WriteString("金")
	if yuan == 0 {
		b.WriteString(cnDigits[0])
	} else {
		b.WriteString(capitalInt(yuan))
	}
	b.WriteString("元")
	switch {
	case jiao == 0 && fen == 0:
		b.WriteString("整")
	case jiao == 0:
		b.WriteString(cnDigits[0])
		b.WriteString(cnDigits[fen])
		b.WriteString("分")
	default:
		b.WriteString(cnDigits[jiao])
		b.WriteString("角")
		if fen > 0 {
			b.WriteString(cnDigits[fen])
			b.WriteString("分")
		}
	}
	return b.String()
}

// capitalInt 转写正整数部分。按四位一组处理，组间缺位由低组首个非零数字前补零。
func capitalInt(n int64) string {
	s := strconv.FormatInt(n, 10)
	var b strings.Builder
	l := len(s)
	pendingZero := false
	groupHasDigit := false
	for i := 0; i < l; i++ {
		d := int(s[i] - '0')
		pos := l - 1 - i
		if d != 0 {
			if pendingZero && b.Len() > 0 {
				b.WriteString(cnDigits[0])
			}
			pendingZero = false
			b.WriteString(cnDigits[d])
			b.WriteString(cnUnits[pos%4])
			groupHasDigit = true
		} else {
			pendingZero = true
		}
		if pos%4 == 0 && groupHasDigit {
			b.WriteString(cnGroups[pos/4])
			groupHasDigit = false
		}
	}
	return b.String()
}
