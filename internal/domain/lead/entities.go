package lead

import (
	"time"
)

// Lead is a captured contact together with the simulation that produced it.
type Lead struct {
	ID                 uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	LeadID             string    `gorm:"column:lead_id;type:char(32);not null;uniqueIndex:ux_leads_lead_id" json:"lead_id"`
	VisitorID          string    `gorm:"column:visitor_id;size:64;index:idx_leads_visitor" json:"visitor_id"`
	Name               string    `gorm:"column:name;size:255;not null" json:"name"`
	Email              string    `gorm:"column:email;size:255;not null;index:idx_leads_email" json:"email"`
	Phone              string    `gorm:"column:phone;size:20;not null" json:"phone"`
	PropertyID         string    `gorm:"column:property_id;size:64;not null" json:"property_id"`
	PropertyName       string    `gorm:"column:property_name;size:255" json:"property_name"`
	VariationID        string    `gorm:"column:variation_id;size:64" json:"variation_id"`
	Consent            bool      `gorm:"column:consent;not null" json:"consent"`
	MonthlyIncome      float64   `gorm:"column:monthly_income;type:decimal(18,2)" json:"monthly_income"`
	DownPayment        float64   `gorm:"column:down_payment;type:decimal(18,2)" json:"down_payment"`
	AmortizationSystem string    `gorm:"column:amortization_system;size:8" json:"amortization_system"`
	PropertyValue      float64   `gorm:"column:property_value;type:decimal(18,2)" json:"property_value"`
	FinancedAmount     float64   `gorm:"column:financed_amount;type:decimal(18,2)" json:"financed_amount"`
	InstallmentValue   float64   `gorm:"column:installment_value;type:decimal(18,2)" json:"installment_value"`
	TermMonths         int       `gorm:"column:term_months" json:"term_months"`
	AnnualRate         float64   `gorm:"column:annual_rate;type:decimal(6,2)" json:"annual_rate"`
	SubmittedAt        time.Time `gorm:"column:submitted_at;not null;index:idx_leads_submitted_at" json:"submitted_at"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Lead) TableName() string { return "leads" }

// Contact is what the visitor types in the lead form.
type Contact struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Consent bool   `json:"consent"`
}

// RecentTTL is how long a submitted lead suppresses the form for the same property.
const RecentTTL = 7 * 24 * time.Hour

// RecentEntry is one record of the de-duplication cache.
type RecentEntry struct {
	Email      string    `json:"email"`
	PropertyID string    `json:"property_id"`
	Timestamp  time.Time `json:"timestamp"`
}

// Expired reports whether the entry is older than RecentTTL at now.
func (e RecentEntry) Expired(now time.Time) bool {
	return now.Sub(e.Timestamp) >= RecentTTL
}
