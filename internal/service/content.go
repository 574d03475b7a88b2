package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/faresFatooh/media-platform/internal/model"
	"github.com/faresFatooh/media-platform/pkg/llm"
)

const analysisPrompt = `Analyze the provided news content. Your output must be a clean JSON object with keys: "headline", "summary", and "entities".
Content: %s`

const generationPrompt = `Based on the following news data, generate tailored captions in Arabic for these platforms: %s.
Your output must be a clean JSON object where keys are the platform names.
News Data:
- Headline: %s
- Summary: %s`

type ArticleStore interface {
	CreateArticleWithPosts(ctx context.Context, article *model.NewsArticle, posts []model.GeneratedPost) error
}

// NewsAnalysis is the structured result of the first model call.
type NewsAnalysis struct {
	Headline string          `json:"headline"`
	Summary  string          `json:"summary"`
	Entities json.RawMessage `json:"entities"`
}

type GenerationResult struct {
	Article    model.NewsArticle
	ParsedNews NewsAnalysis
	Posts      map[string]string
}

// ContentService runs the analyze -> persist -> generate pipeline for
// submitted news content.
type ContentService struct {
	gateway  llm.Client
	articles ArticleStore
}

func NewContentService(gateway llm.Client, articles ArticleStore) *ContentService {
	return &ContentService{gateway: gateway, articles: articles}
}

func (s *ContentService) ProcessAndGenerate(ctx context.Context, ownerID int64, sourceURL, rawText string, platforms []string) (*GenerationResult, error) {
	if sourceURL == "" && rawText == "" {
		return nil, &ValidationError{Msg: "URL/text and platforms are required."}
	}
	if len(platforms) == 0 {
		return nil, &ValidationError{Msg: "URL/text and platforms are required."}
	}

	content := fmt.Sprintf("URL: %s", sourceURL)
	if sourceURL == "" {
		content = fmt.Sprintf("Text: %q", rawText)
	}

	analysisRaw, err := s.gateway.Generate(ctx, fmt.Sprintf(analysisPrompt, content))
	if err != nil {
		return nil, &GatewayError{Err: err}
	}

	var analysis NewsAnalysis
	if err := llm.DecodeJSON(analysisRaw, &analysis); err != nil {
		return nil, &FormatError{Err: err}
	}

	originalText := rawText
	if originalText == "" {
		originalText = analysis.Summary
	}

	captionsRaw, err := s.gateway.Generate(ctx, fmt.Sprintf(
		generationPrompt, strings.Join(platforms, ", "), analysis.Headline, analysis.Summary))
	if err != nil {
		return nil, &GatewayError{Err: err}
	}

	captions, err := llm.DecodeStringMap(captionsRaw)
	if err != nil {
		return nil, &FormatError{Err: err}
	}

	posts := make([]model.GeneratedPost, 0, len(captions))
	kept := make(map[string]string, len(captions))
	for platform, caption := range captions {
		if !model.KnownPlatform(platform) {
			slog.Warn("skipping unknown platform returned by model", "platform", platform)
			continue
		}
		posts = append(posts, model.GeneratedPost{
			Platform: platform,
			Content:  caption,
			Status:   model.PostStatusDraft,
		})
		kept[platform] = caption
	}

	article := model.NewsArticle{
		OwnerID:      ownerID,
		SourceURL:    sourceURL,
		OriginalText: originalText,
		Topic:        model.DefaultTopic,
	}

	if err := s.articles.CreateArticleWithPosts(ctx, &article, posts); err != nil {
		return nil, fmt.Errorf("save article with posts: %w", err)
	}

	return &GenerationResult{
		Article:    article,
		ParsedNews: analysis,
		Posts:      kept,
	}, nil
}
