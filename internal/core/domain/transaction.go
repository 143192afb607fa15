package domain

import "github.com/shopspring/decimal"

// TransactionType identifies the kind of ledger movement.
type TransactionType string

const (
	Withdrawal         TransactionType = "WITHDRAWAL"
	Deposit            TransactionType = "DEPOSIT"
	BankTransfer       TransactionType = "BANK_TRANSFER"
	OpeningAmount      TransactionType = "OPENING_AMOUNT"
	TransactionFee     TransactionType = "TRANSACTION_FEE"
	MaintenancePayment TransactionType = "MAINTENANCE_PAYMENT"
)

var transactionTypeCodes = map[TransactionType]string{
	Withdrawal:         "001",
	Deposit:            "002",
	BankTransfer:       "003",
	OpeningAmount:      "004",
	TransactionFee:     "005",
	MaintenancePayment: "006",
}

// Code returns the ledger's numeric code for the transaction type, or "" when unknown.
func (t TransactionType) Code() string {
	return transactionTypeCodes[t]
}

// Transaction is a movement submitted to the ledger service.
// Once submitted it is owned by the ledger; this service never reads it back.
type Transaction struct {
	AccountID       string          `json:"accountId"`
	TransactionType TransactionType `json:"transactionType"`
	Amount          decimal.Decimal `json:"amount"`
}

// NewOpeningTransaction builds the OPENING_AMOUNT movement for a freshly created account.
func NewOpeningTransaction(account Account) Transaction {
	return Transaction{
		AccountID:       account.AccountID,
		TransactionType: OpeningAmount,
		Amount:          account.AmountAvailable,
	}
}
