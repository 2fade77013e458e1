// ABOUTME: Wire types for the loyalty wallet API
// ABOUTME: Field names mirror the JSON produced and consumed by the backend

package api

// UserProfile is the response of GET /users/me/.
type UserProfile struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	CPF       string `json:"cpf"`
}

// RegisterPayload is the body of POST /users/register/.
type RegisterPayload struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
	CPF       string `json:"cpf,omitempty"`
}

// Wallet is a named container grouping loyalty accounts.
type Wallet struct {
	ID           int    `json:"id"`
	User         int    `json:"user"`
	UserUsername string `json:"user_username"`
	WalletName   string `json:"wallet_name"`
	CreatedAt    string `json:"created_at"`
}

// WalletPayload is the body for creating or updating a wallet.
type WalletPayload struct {
	WalletName string `json:"wallet_name"`
}

// LoyaltyAccount is a balance-bearing account tied to a loyalty program.
// Decimal fields arrive as strings from the backend.
type LoyaltyAccount struct {
	ID                  int    `json:"id"`
	Wallet              int    `json:"wallet"`
	WalletName          string `json:"wallet_name"`
	Program             int    `json:"program"`
	ProgramName         string `json:"program_name"`
	ProgramCurrencyType string `json:"program_currency_type"`
	AccountNumber       string `json:"account_number"`
	Name                string `json:"name"`
	CurrentBalance      string `json:"current_balance"`
	AverageCost         string `json:"average_cost"`
	CustomRate          string `json:"custom_rate,omitempty"`
	LastUpdated         string `json:"last_updated"`
	IsActive            bool   `json:"is_active"`
	CreatedAt           string `json:"created_at"`
}

// LoyaltyAccountPayload is the body for creating an account inside a wallet.
type LoyaltyAccountPayload struct {
	Program        int     `json:"program"`
	AccountNumber  string  `json:"account_number"`
	Name           string  `json:"name"`
	CurrentBalance float64 `json:"current_balance"`
	AverageCost    float64 `json:"average_cost"`
}

// Currency types used by loyalty programs.
const (
	CurrencyPoints = 1
	CurrencyMiles  = 2
)

// LoyaltyProgram is a points/miles scheme.
type LoyaltyProgram struct {
	ID                  int    `json:"id"`
	Name                string `json:"name"`
	CurrencyType        int    `json:"currency_type"`
	CurrencyTypeDisplay string `json:"get_currency_type_display"`
	IsActive            bool   `json:"is_active"`
	IsUserCreated       bool   `json:"is_user_created"`
	CreatedBy           *int   `json:"created_by"`
	CreatedByUsername   string `json:"created_by_username,omitempty"`
	CreatedAt           string `json:"created_at"`
}

// LoyaltyProgramPayload is the body for creating a program.
type LoyaltyProgramPayload struct {
	Name          string `json:"name"`
	CurrencyType  int    `json:"currency_type"`
	IsActive      bool   `json:"is_active"`
	IsUserCreated bool   `json:"is_user_created"`
}

// Transaction kinds. The server applies and reverses balance effects.
const (
	TxManualCredit = 1
	TxTransfer     = 2
	TxRedemption   = 3
	TxSale         = 4
	TxExpiration   = 5
	TxAdjustment   = 6
)

// TransactionTypeLabel returns a human-readable name for a transaction kind.
func TransactionTypeLabel(t int) string {
	switch t {
	case TxManualCredit:
		return "Manual credit"
	case TxTransfer:
		return "Transfer"
	case TxRedemption:
		return "Redemption"
	case TxSale:
		return "Sale"
	case TxExpiration:
		return "Expiration"
	case TxAdjustment:
		return "Adjustment"
	default:
		return "Unknown"
	}
}

// TransactionPayload is the body of POST /transactions/.
// Origin and destination are account IDs; which of them is required depends
// on the transaction type and is validated client-side before dispatch.
type TransactionPayload struct {
	TransactionType    int      `json:"transaction_type"`
	Amount             float64  `json:"amount"`
	Cost               *float64 `json:"cost,omitempty"`
	OriginAccount      *int     `json:"origin_account,omitempty"`
	DestinationAccount *int     `json:"destination_account,omitempty"`
	BonusPercentage    *float64 `json:"bonus_percentage,omitempty"`
	Description        string   `json:"description,omitempty"`
	TransactionDate    string   `json:"transaction_date"`
}

// Transaction is a balance-affecting event as returned by the API.
type Transaction struct {
	ID                     int    `json:"id"`
	TransactionType        int    `json:"transaction_type"`
	TransactionTypeDisplay string `json:"transaction_type_display"`
	Amount                 string `json:"amount"`
	Cost                   string `json:"cost,omitempty"`
	OriginAccount          *int   `json:"origin_account"`
	OriginAccountName      string `json:"origin_account_name,omitempty"`
	DestinationAccount     *int   `json:"destination_account"`
	DestinationAccountName string `json:"destination_account_name,omitempty"`
	BonusPercentage        string `json:"bonus_percentage,omitempty"`
	Description            string `json:"description,omitempty"`
	TransactionDate        string `json:"transaction_date"`
	CreatedAt              string `json:"created_at"`
}

// ProgramSummary is one entry of the dashboard programs breakdown.
type ProgramSummary struct {
	Name         string `json:"name"`
	CurrencyType int    `json:"currency_type"`
	TotalBalance string `json:"total_balance"`
	TotalValue   string `json:"total_value"`
}

// CurrencyBalance aggregates balances per currency type (points vs miles).
type CurrencyBalance struct {
	CurrencyName          string `json:"currency_name"`
	TotalBalance          string `json:"total_balance"`
	DistinctProgramsCount int    `json:"distinct_programs_count"`
}

// Summary is the response of GET /summary/overall/.
type Summary struct {
	UserID                     int               `json:"user_id"`
	Username                   string            `json:"username"`
	TotalWallets               int               `json:"total_wallets"`
	TotalActiveLoyaltyAccounts int               `json:"total_active_loyalty_accounts"`
	OverallEstimatedValue      string            `json:"overall_estimated_value"`
	ProgramsSummary            []ProgramSummary  `json:"programs_summary"`
	BalancesByCurrencyType     []CurrencyBalance `json:"balances_by_currency_type"`
	TotalAcquisitionCost       string            `json:"total_acquisition_cost_tracked"`
	TotalPointsSold            string            `json:"total_points_milhas_sold"`
	TotalRevenueFromSales      string            `json:"total_revenue_from_sales"`
}

// SimulateTransferInput is the body of POST /simulations/transfer/.
type SimulateTransferInput struct {
	FromAccountID   int      `json:"from_account_id"`
	ToAccountID     int      `json:"to_account_id"`
	Amount          float64  `json:"amount"`
	BonusPercentage *float64 `json:"bonus_percentage,omitempty"`
}

// SimulateTransferResult projects a transfer without executing it.
type SimulateTransferResult struct {
	FromAccountName              string  `json:"from_account_name"`
	FromAccountProgram           string  `json:"from_account_program"`
	ToAccountName                string  `json:"to_account_name"`
	ToAccountProgram             string  `json:"to_account_program"`
	AmountToTransfer             string  `json:"amount_to_transfer"`
	OriginAvgCostPerThousand     string  `json:"origin_account_avg_cost_per_thousand"`
	BonusPercentage              string  `json:"bonus_percentage"`
	AmountToReceiveAtDestination string  `json:"amount_to_receive_at_destination"`
	EstimatedCostPerThousand     *string `json:"estimated_cost_per_thousand_at_destination"`
}

// SimulateSaleInput is the body of POST /simulations/sale/.
type SimulateSaleInput struct {
	LoyaltyAccountID     int     `json:"loyalty_account_id"`
	AmountToSell         float64 `json:"amount_to_sell"`
	SalePricePerThousand float64 `json:"sale_price_per_1000_miles"`
}

// SimulateSaleResult projects the profit of selling miles.
type SimulateSaleResult struct {
	LoyaltyAccountName     string `json:"loyalty_account_name"`
	CurrentBalance         string `json:"current_balance"`
	CurrentAverageCost     string `json:"current_average_cost_per_thousand"`
	AmountToSell           string `json:"amount_to_sell"`
	SalePricePerThousand   string `json:"sale_price_per_1000_miles"`
	TotalEstimatedSale     string `json:"total_estimated_sale_value"`
	TotalEstimatedCost     string `json:"total_estimated_cost_value"`
	EstimatedProfit        string `json:"estimated_profit"`
}
