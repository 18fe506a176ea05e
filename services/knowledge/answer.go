package knowledge

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const fallbackAnswer = "I apologize, but I encountered an error while processing your request. Please try again."

const retrievalLimit = 4

// Answer resolves a question against the knowledge base. Cached answers
// are served first; otherwise retrieved context is handed to the
// generator. Failures never propagate past this method.
func (s *DefaultKnowledgeService) Answer(ctx context.Context, question string) string {
	if s.Cache != nil {
		if answer, ok := s.Cache.Get(ctx, question); ok {
			return answer
		}
	}

	if s.Generator == nil {
		return fallbackAnswer
	}

	var contextText string
	if s.Retriever != nil {
		docs, err := s.Retriever.Retrieve(ctx, question, retrievalLimit)
		if err != nil {
			s.Logger.Warn("knowledge retrieval failed", zap.Error(err))
		} else {
			parts := make([]string, 0, len(docs))
			for _, doc := range docs {
				parts = append(parts, doc.Text)
			}
			contextText = strings.Join(parts, "\n\n")
		}
	}

	answer, err := s.Generator.GenerateContent(ctx, buildPrompt(contextText, question))
	if err != nil {
		s.Logger.Error("answer generation failed", zap.Error(err))
		return fallbackAnswer
	}
	if answer == "" {
		return fallbackAnswer
	}

	if s.Cache != nil {
		s.Cache.Set(ctx, question, answer)
	}
	return answer
}

func buildPrompt(contextText, question string) string {
	return fmt.Sprintf(`You are a helpful customer support assistant. Be empathetic, professional, and actionable. Use "we" and "our" when referring to the company.

Context information:
%s

Question: %s

Please provide a helpful and accurate answer based on the context above. If the context doesn't contain enough information to answer the question, say so politely.`, contextText, question)
}
