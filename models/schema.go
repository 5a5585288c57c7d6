package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Profile holds per-user display settings and the monthly budget used for
// the "remaining this month" view.
type Profile struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID        uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Username      string          `gorm:"not null" json:"username"`
	MonthlyBudget decimal.Decimal `gorm:"type:numeric(12,2);default:200.00" json:"monthly_budget"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Income represents a logged earning. Amount is always non-negative;
// the record type itself carries the credit direction.
type Income struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Title         string          `gorm:"not null" json:"title"`
	Amount        decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	Category      string          `gorm:"not null" json:"category"` // gig, allowance, job, other
	HustleType    string          `json:"hustle_type,omitempty"`
	Note          string          `json:"note,omitempty"`
	ScreenshotURL string          `json:"screenshot_url,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Expense represents a logged spend. Amount is always non-negative.
type Expense struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Title     string          `gorm:"not null" json:"title"`
	Amount    decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	Category  string          `gorm:"not null" json:"category"` // food, shopping, tech, entertainment
	Note      string          `json:"note,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Goal is a savings target. CurrentAmount only moves up, via contributions.
// Completion is derived (CurrentAmount >= TargetAmount), never stored.
type Goal struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Title         string          `gorm:"not null" json:"title"`
	TargetAmount  decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"target_amount"`
	CurrentAmount decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"current_amount"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// SplitExpense is a shared cost divided among named participants.
// TotalAmount is the sum of participant amounts at creation time.
type SplitExpense struct {
	ID           uuid.UUID          `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID       uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	Title        string             `gorm:"not null" json:"title"`
	Description  string             `json:"description,omitempty"`
	TotalAmount  decimal.Decimal    `gorm:"type:numeric(12,2);not null" json:"total_amount"`
	ReceiptURL   string             `json:"receipt_url,omitempty"`
	Participants []SplitParticipant `gorm:"foreignKey:SplitExpenseID;constraint:OnDelete:CASCADE" json:"participants"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// SplitParticipant is one share of a split, independently markable as paid.
type SplitParticipant struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SplitExpenseID uuid.UUID       `gorm:"type:uuid;not null;index" json:"split_expense_id"`
	Name           string          `gorm:"not null" json:"name"`
	Amount         decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	IsPaid         bool            `gorm:"default:false" json:"is_paid"`
	CreatedAt      time.Time       `json:"created_at"`
}
