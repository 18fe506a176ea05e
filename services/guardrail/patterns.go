package guardrail

import "regexp"

// personalDataPattern pairs a compiled regex with the label echoed in
// the block reason. Confidence is per pattern, not aggregated.
type personalDataPattern struct {
	pattern    *regexp.Regexp
	dataType   string
	confidence float64
}

// cooccurrenceRule fires only when at least one keyword AND at least
// one context phrase appear anywhere in the lowercased text.
type cooccurrenceRule struct {
	keywords   []string
	context    []string
	confidence float64
}

// toxicityRule is keyword-only; categories are joined into the reason.
type toxicityRule struct {
	keywords   []string
	categories []string
	confidence float64
}

// Rule tables are loaded once and never mutated. Order is load-bearing:
// the first matching pattern wins, so an undashed SSN is reported as an
// SSN rather than a ZIP code even though both patterns overlap.
var personalDataPatterns = []personalDataPattern{
	{
		pattern:    regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`), // SSN
		dataType:   "social_security_number",
		confidence: 0.95,
	},
	{
		pattern:    regexp.MustCompile(`\b\d{4}[\s-]?\d{4}[\s-]?\d{4}[\s-]?\d{4}\b`), // Credit card
		dataType:   "credit_card_number",
		confidence: 0.9,
	},
	{
		pattern:    regexp.MustCompile(`\b\d{3}[\s-]?\d{2}[\s-]?\d{4}\b`), // SSN without dashes
		dataType:   "social_security_number",
		confidence: 0.9,
	},
	{
		pattern:    regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`), // Email
		dataType:   "email_address",
		confidence: 0.8,
	},
	{
		pattern:    regexp.MustCompile(`\b\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}\b`), // IP address
		dataType:   "ip_address",
		confidence: 0.7,
	},
	{
		pattern:    regexp.MustCompile(`\b\d{3}[\s-]?\d{3}[\s-]?\d{4}\b`), // Phone number
		dataType:   "phone_number",
		confidence: 0.8,
	},
	{
		pattern:    regexp.MustCompile(`\b\d{5}[\s-]?\d{4}\b`), // ZIP+4
		dataType:   "zip_code",
		confidence: 0.6,
	},
	{
		pattern:    regexp.MustCompile(`\b\d{5}\b`), // Basic ZIP
		dataType:   "zip_code",
		confidence: 0.4,
	},
}

var legalAdviceRules = []cooccurrenceRule{
	{
		keywords:   []string{"sue", "lawsuit", "legal action", "attorney", "lawyer", "court", "judge", "litigation"},
		context:    []string{"should i", "can i", "how to", "what if", "advice", "help"},
		confidence: 0.8,
	},
	{
		keywords:   []string{"contract", "agreement", "terms", "liability", "damages", "breach"},
		context:    []string{"enforce", "break", "violate", "legal", "rights"},
		confidence: 0.7,
	},
	{
		keywords:   []string{"compliance", "regulation", "law", "statute", "ordinance"},
		context:    []string{"required", "mandatory", "obligation", "duty"},
		confidence: 0.6,
	},
}

var financialAdviceRules = []cooccurrenceRule{
	{
		keywords:   []string{"invest", "investment", "stock", "bond", "portfolio", "retirement", "401k", "ira"},
		context:    []string{"should i", "best", "recommend", "advice", "strategy"},
		confidence: 0.8,
	},
	{
		keywords:   []string{"tax", "deduction", "credit", "refund", "filing"},
		context:    []string{"how to", "should i", "can i claim", "deduct"},
		confidence: 0.7,
	},
	{
		keywords:   []string{"loan", "mortgage", "refinance", "interest rate", "payment"},
		context:    []string{"should i", "best", "recommend", "advice"},
		confidence: 0.6,
	},
	{
		keywords:   []string{"insurance", "policy", "coverage", "premium"},
		context:    []string{"should i", "need", "recommend", "best"},
		confidence: 0.6,
	},
}

var toxicityRules = []toxicityRule{
	{
		keywords:   []string{"hate", "kill", "die", "stupid", "idiot", "moron", "fuck", "shit", "bitch"},
		categories: []string{"hate_speech", "profanity"},
		confidence: 0.8,
	},
	{
		keywords:   []string{"scam", "fraud", "fake", "liar", "cheat", "steal"},
		categories: []string{"accusations", "defamation"},
		confidence: 0.7,
	},
	{
		keywords:   []string{"useless", "worthless", "terrible", "awful", "horrible"},
		categories: []string{"insults", "criticism"},
		confidence: 0.6,
	},
}

var misuseRule = cooccurrenceRule{
	keywords:   []string{"hack", "exploit", "bypass", "circumvent", "cheat", "trick"},
	context:    []string{"system", "security", "payment", "account", "verification"},
	confidence: 0.8,
}

// Suggested responses per category.
const (
	personalDataResponse = "I cannot process personal information like this. Please remove any personal data and try again. For account-specific questions, please contact our support team directly."
	legalAdviceResponse  = "I cannot provide legal advice. For legal matters, please consult with a qualified attorney. I can help with general information about our services and policies."
	financialResponse    = "I cannot provide personalized financial advice. For investment, tax, or financial planning advice, please consult with a qualified financial advisor or tax professional."
	toxicityResponse     = "I'm here to help with support questions in a respectful manner. Please rephrase your question without inappropriate language."
	misuseResponse       = "I cannot assist with attempts to circumvent our systems or security measures. Please contact support if you're experiencing legitimate technical issues."
)
