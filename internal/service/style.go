package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/faresFatooh/media-platform/internal/model"
	"github.com/faresFatooh/media-platform/pkg/llm"
)

// maxStyleExamples bounds the few-shot prompt size regardless of how
// many pairs the owner has accumulated.
const maxStyleExamples = 50

const stylePrompt = `You are an expert Arabic text editor. Your task is to edit the following text based on the provided style examples.
Maintain the original meaning but improve the style, grammar, and clarity according to the examples.

Here are the examples of the desired style:
%s

Now, please edit this text in the same style:
Original: %s
Edited:`

type StyleExampleStore interface {
	ListRecentByOwner(ctx context.Context, ownerID int64, limit int) ([]model.StyleExample, error)
}

// StyleService rewrites text in the owner's house style, learned
// few-shot from stored before/after pairs.
type StyleService struct {
	gateway llm.Client
	styles  StyleExampleStore
}

func NewStyleService(gateway llm.Client, styles StyleExampleStore) *StyleService {
	return &StyleService{gateway: gateway, styles: styles}
}

func (s *StyleService) Predict(ctx context.Context, ownerID int64, rawText string) (string, error) {
	if rawText == "" {
		return "", &ValidationError{Msg: "raw_text is required."}
	}

	examples, err := s.styles.ListRecentByOwner(ctx, ownerID, maxStyleExamples)
	if err != nil {
		return "", fmt.Errorf("load style examples: %w", err)
	}

	edited, err := s.gateway.Generate(ctx, buildStylePrompt(examples, rawText))
	if err != nil {
		return "", &GatewayError{Err: err}
	}

	return strings.TrimSpace(edited), nil
}

func buildStylePrompt(examples []model.StyleExample, rawText string) string {
	var sb strings.Builder

	// Examples arrive newest first; present them oldest first.
	for i := len(examples) - 1; i >= 0; i-- {
		sb.WriteString(fmt.Sprintf("Original: %s\nEdited: %s", examples[i].BeforeText, examples[i].AfterText))
		if i > 0 {
			sb.WriteString("\n\n")
		}
	}

	return fmt.Sprintf(stylePrompt, sb.String(), rawText)
}
