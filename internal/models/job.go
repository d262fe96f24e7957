package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// Job is a row of the jobs table.
type Job struct {
	ID          int64           `db:"id"`
	ContractID  int64           `db:"contract_id"`
	Description string          `db:"description"`
	Price       decimal.Decimal `db:"price"`
	Paid        bool            `db:"paid"`
	PaymentDate sql.NullTime    `db:"payment_date"` // Nullable until paid
	Timestamps
}
