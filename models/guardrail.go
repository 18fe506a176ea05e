package models

// GuardrailCategory is the class of policy violation a classifier rule detects.
type GuardrailCategory string

const (
	CategoryPersonalData    GuardrailCategory = "personal_data"
	CategoryLegalAdvice     GuardrailCategory = "legal_advice"
	CategoryFinancialAdvice GuardrailCategory = "financial_advice"
	CategoryToxicity        GuardrailCategory = "toxicity"
	CategoryMisuse          GuardrailCategory = "misuse"
	CategoryNone            GuardrailCategory = "none"
)

// GuardrailResult is the verdict for a single piece of user text. A fresh
// value is produced per call; an unblocked result carries CategoryNone.
type GuardrailResult struct {
	IsBlocked         bool              `json:"isBlocked"`
	Category          GuardrailCategory `json:"category"`
	Confidence        float64           `json:"confidence"`
	Reason            string            `json:"reason"`
	SuggestedResponse string            `json:"suggestedResponse"`
}

// GuardrailStats reports the size of the loaded rule tables.
type GuardrailStats struct {
	TotalPatterns           int `json:"totalPatterns"`
	PersonalDataPatterns    int `json:"personalDataPatterns"`
	LegalAdvicePatterns     int `json:"legalAdvicePatterns"`
	FinancialAdvicePatterns int `json:"financialAdvicePatterns"`
	ToxicityPatterns        int `json:"toxicityPatterns"`
}
