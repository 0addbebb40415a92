// Package ledger 定义礼金簿的数据模型与记账前的数据整理。
package ledger

// Record 表示一条礼金记录。输入后不再修改。
type Record struct {
	// Name 送礼人姓名。
	Name string `json:"name"`
	// Amount 礼金数额（元）。
	Amount float64 `json:"amount"`
	// AmountText 大写金额文字；为空时由 DisplayAmountText 补写。
	AmountText string `json:"amountText"`
	// Remark 自由备注，空串视为无备注。
	Remark string `json:"remark"`
	// Abolished 作废标记：不计入合计，但仍占用格位。
	Abolished bool `json:"abolished"`
	// Type 类目（同事/亲属/……），空串表示未注明。
	Type string `json:"type"`
}

// DisplayAmountText 返回该记录应当誊写的大写金额：
// 记录自带的文字优先，缺失时按数额生成。
func (r Record) DisplayAmountText() string {
	if r.AmountText != "" {
		return r.AmountText
	}
	return CapitalAmount(r.Amount)
}
