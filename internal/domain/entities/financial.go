package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// FinancialData is one year of a citizen's finances. There is at most one
// row per citizen and year.
type FinancialData struct {
	ID            uint      `json:"financial_id"`
	CitizenID     uint      `json:"citizen_id"`
	Year          int       `json:"year"`
	AnnualIncome  float64   `json:"annual_income"`
	IncomeSource  string    `json:"income_source"`
	TaxPaid       float64   `json:"tax_paid"`
	TaxLiability  float64   `json:"tax_liability"`
	DebtLiability float64   `json:"debt_liability"`
	CreditScore   null.Int  `json:"credit_score"`
	LastUpdated   time.Time `json:"last_updated"`
}

// FinancialDataInput represents the writable financial fields.
type FinancialDataInput struct {
	Year          int      `json:"year" binding:"required,gt=1900"`
	AnnualIncome  float64  `json:"Annual_Income" binding:"gte=0"`
	IncomeSource  string   `json:"Income_source" binding:"required,max=100"`
	TaxPaid       float64  `json:"Tax_paid" binding:"gte=0"`
	TaxLiability  float64  `json:"Tax_liability" binding:"gte=0"`
	DebtLiability float64  `json:"Debt_liability" binding:"gte=0"`
	CreditScore   null.Int `json:"Credit_score"`
}

// CreateFinancialDataInput adds the owning citizen to FinancialDataInput.
type CreateFinancialDataInput struct {
	Username string `json:"User_name" binding:"required"`
	FinancialDataInput
}
