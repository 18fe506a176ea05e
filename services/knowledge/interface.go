package knowledge

import (
	"context"

	"go.uber.org/zap"
)

// Document is one retrieved knowledge-base entry.
type Document struct {
	Title string `bson:"title" json:"title"`
	Text  string `bson:"text" json:"text"`
}

// Retriever finds knowledge-base documents relevant to a question.
type Retriever interface {
	Retrieve(ctx context.Context, query string, limit int) ([]Document, error)
}

// Generator produces a natural-language answer from a prompt.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Service answers questions on the retrieval fallback path. It never
// returns an error to the orchestrator: any internal failure degrades
// to an apology answer.
type Service interface {
	Answer(ctx context.Context, question string) string
}

// DefaultKnowledgeService implements Service. Retriever, Generator and
// Cache are each optional; missing pieces degrade gracefully.
type DefaultKnowledgeService struct {
	Retriever Retriever
	Generator Generator
	Cache     *AnswerCache
	Logger    *zap.Logger
}
