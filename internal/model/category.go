package model

// Category is the derived classification of a transaction. It is computed
// from the description, action, and amount fields, never stored.
type Category string

const (
	CategoryDeposit         Category = "deposit"
	CategoryWithdrawal      Category = "withdrawal"
	CategoryBankTransferIn  Category = "bank-transfer-in"
	CategoryBankTransferOut Category = "bank-transfer-out"
	CategoryTradeWin        Category = "trade-win"
	CategoryTradeLoss       Category = "trade-loss"
	CategoryFee             Category = "fee"
	CategoryOther           Category = "other"
)
