package utils

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const yenSign = "￥"

var jaPrinter = message.NewPrinter(language.Japanese)

// FormatYen formata o valor em ienes inteiros com separador de milhar (￥150,000).
// Trabalha sobre os dígitos do decimal para não depender do limite de int64.
func FormatYen(amount decimal.Decimal) string {
	rounded := amount.Round(0)
	formatted := yenSign + groupThousands(rounded.Abs().String())
	if rounded.IsNegative() {
		return "-" + formatted
	}
	return formatted
}

func groupThousands(digits string) string {
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}

	var b strings.Builder
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatPercent formata a razão como porcentagem com uma casa decimal (0.7333 → 73.3%)
func FormatPercent(ratio float64) string {
	return jaPrinter.Sprintf("%.1f%%", ratio*100)
}
