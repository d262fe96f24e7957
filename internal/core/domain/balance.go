package domain

import "github.com/shopspring/decimal"

// MoneyScale is the number of fraction digits kept for every amount.
const MoneyScale = 2

// MaxIntegerDigits is the number of integer digits a NUMERIC(12,2) balance can hold.
const MaxIntegerDigits = 10

// DepositCapRatio is the share of outstanding work a client may deposit at once.
var DepositCapRatio = decimal.RequireFromString("0.25")

// DepositCap returns the largest deposit allowed given the client's unpaid in-progress total.
// A zero total yields a zero cap, so such clients cannot deposit at all.
func DepositCap(totalUnpaid decimal.Decimal) decimal.Decimal {
	if !totalUnpaid.IsPositive() {
		return decimal.Zero
	}
	return totalUnpaid.Mul(DepositCapRatio)
}

// WithinMoneyRange reports whether amount has at most MaxIntegerDigits integer digits.
// It only inspects the coefficient length and exponent, so huge exponents stay cheap.
func WithinMoneyRange(amount decimal.Decimal) bool {
	if amount.IsZero() {
		return true
	}
	return int64(amount.NumDigits())+int64(amount.Exponent()) <= MaxIntegerDigits
}

// HasMoneyScale reports whether amount fits into MoneyScale fraction digits.
// Surplus fraction digits can only be trailing zeros of the coefficient, so an
// exponent below -MoneyScale by more than the coefficient length is rejected
// before any rescaling happens.
func HasMoneyScale(amount decimal.Decimal) bool {
	if amount.IsZero() || amount.Exponent() >= -MoneyScale {
		return true
	}
	surplus := -int64(amount.Exponent()) - MoneyScale
	if surplus > int64(amount.NumDigits()) {
		return false
	}
	return amount.Equal(amount.Truncate(MoneyScale))
}
