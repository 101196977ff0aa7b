// Package classify derives transaction categories from the free-text
// description and action fields of the broker export. The literal sets match
// the export vocabulary exactly; there is no fuzzy matching.
package classify

import (
	"github.com/tradelens-dev/tradelens/internal/model"
)

const (
	transferIn      = "Online Transfer Cash In"
	transferOut     = "Online Transfer Cash Out"
	actionTradeWin  = "Trade Receivable"
	actionTradeLoss = "Trade Payable"
)

// overnightFees are the description literals for overnight-financing events.
var overnightFees = map[string]struct{}{
	"Funding Charges":         {},
	"Funding Refund":          {},
	"Trading Adjustment(Div)": {},
}

// Outcome is the trade result derived from the action field.
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLoss Outcome = "loss"
	OutcomeNone Outcome = "none" // non-trade event (fee, transfer, adjustment)
)

// IsBankTransfer reports whether a description marks a bank transfer. Bank
// transfers are excluded from every P/L aggregate regardless of sign.
func IsBankTransfer(description string) bool {
	return description == transferIn || description == transferOut
}

// IsOvernightFee reports whether a description marks an overnight-financing
// event.
func IsOvernightFee(description string) bool {
	_, ok := overnightFees[description]
	return ok
}

// TradeOutcome classifies the action field of a row.
func TradeOutcome(action string) Outcome {
	switch action {
	case actionTradeWin:
		return OutcomeWin
	case actionTradeLoss:
		return OutcomeLoss
	default:
		return OutcomeNone
	}
}

// Category derives the category of a parsed transaction. Bank transfers take
// precedence, then trade outcome, then fee events; remaining rows split into
// deposit or withdrawal by amount sign. The sign split is coarse: any
// positive non-trade-labeled row counts as a deposit.
func Category(tx model.Transaction) model.Category {
	switch tx.Description {
	case transferIn:
		return model.CategoryBankTransferIn
	case transferOut:
		return model.CategoryBankTransferOut
	}

	switch TradeOutcome(tx.Action) {
	case OutcomeWin:
		return model.CategoryTradeWin
	case OutcomeLoss:
		return model.CategoryTradeLoss
	}

	if IsOvernightFee(tx.Description) {
		return model.CategoryFee
	}

	if tx.Amount.IsNegative() {
		return model.CategoryWithdrawal
	}
	return model.CategoryDeposit
}
