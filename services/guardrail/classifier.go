package guardrail

import (
	"fmt"
	"strings"

	"support-assistant/models"
)

// Classify evaluates the rule tables in a fixed order and returns the
// first category that matches. It never fails: text that trips no rule
// comes back unblocked with CategoryNone.
func (s *DefaultGuardrailService) Classify(text string) models.GuardrailResult {
	if result := s.detectPersonalData(text); result != nil {
		return *result
	}
	if result := s.detectLegalAdvice(text); result != nil {
		return *result
	}
	if result := s.detectFinancialAdvice(text); result != nil {
		return *result
	}
	if result := s.detectToxicity(text); result != nil {
		return *result
	}
	if result := s.detectMisuse(text); result != nil {
		return *result
	}

	return models.GuardrailResult{
		IsBlocked:  false,
		Category:   models.CategoryNone,
		Confidence: 1.0,
		Reason:     "No guardrail violations detected",
	}
}

func (s *DefaultGuardrailService) detectPersonalData(text string) *models.GuardrailResult {
	for _, p := range personalDataPatterns {
		if match := p.pattern.FindString(text); match != "" {
			return &models.GuardrailResult{
				IsBlocked:         true,
				Category:          models.CategoryPersonalData,
				Confidence:        p.confidence,
				Reason:            fmt.Sprintf("Detected %s: %s", p.dataType, match),
				SuggestedResponse: personalDataResponse,
			}
		}
	}
	return nil
}

func (s *DefaultGuardrailService) detectLegalAdvice(text string) *models.GuardrailResult {
	lower := strings.ToLower(text)
	for _, rule := range legalAdviceRules {
		if anySubstring(lower, rule.keywords) && anySubstring(lower, rule.context) {
			return &models.GuardrailResult{
				IsBlocked:         true,
				Category:          models.CategoryLegalAdvice,
				Confidence:        rule.confidence,
				Reason:            "Potential legal advice request detected",
				SuggestedResponse: legalAdviceResponse,
			}
		}
	}
	return nil
}

func (s *DefaultGuardrailService) detectFinancialAdvice(text string) *models.GuardrailResult {
	lower := strings.ToLower(text)
	for _, rule := range financialAdviceRules {
		if anySubstring(lower, rule.keywords) && anySubstring(lower, rule.context) {
			return &models.GuardrailResult{
				IsBlocked:         true,
				Category:          models.CategoryFinancialAdvice,
				Confidence:        rule.confidence,
				Reason:            "Potential financial advice request detected",
				SuggestedResponse: financialResponse,
			}
		}
	}
	return nil
}

func (s *DefaultGuardrailService) detectToxicity(text string) *models.GuardrailResult {
	lower := strings.ToLower(text)
	for _, rule := range toxicityRules {
		if anySubstring(lower, rule.keywords) {
			return &models.GuardrailResult{
				IsBlocked:         true,
				Category:          models.CategoryToxicity,
				Confidence:        rule.confidence,
				Reason:            "Toxic language detected: " + strings.Join(rule.categories, ", "),
				SuggestedResponse: toxicityResponse,
			}
		}
	}
	return nil
}

func (s *DefaultGuardrailService) detectMisuse(text string) *models.GuardrailResult {
	lower := strings.ToLower(text)
	if anySubstring(lower, misuseRule.keywords) && anySubstring(lower, misuseRule.context) {
		return &models.GuardrailResult{
			IsBlocked:         true,
			Category:          models.CategoryMisuse,
			Confidence:        misuseRule.confidence,
			Reason:            "Potential system misuse detected",
			SuggestedResponse: misuseResponse,
		}
	}
	return nil
}

// Stats reports how many patterns each rule table carries.
func (s *DefaultGuardrailService) Stats() models.GuardrailStats {
	return models.GuardrailStats{
		TotalPatterns:           len(personalDataPatterns) + len(legalAdviceRules) + len(financialAdviceRules) + len(toxicityRules),
		PersonalDataPatterns:    len(personalDataPatterns),
		LegalAdvicePatterns:     len(legalAdviceRules),
		FinancialAdvicePatterns: len(financialAdviceRules),
		ToxicityPatterns:        len(toxicityRules),
	}
}

func anySubstring(lower string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(lower, n) {
			return true
		}
	}
	return false
}
