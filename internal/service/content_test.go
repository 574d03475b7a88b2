package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faresFatooh/media-platform/internal/model"
)

type fakeGateway struct {
	responses []string
	errs      []error
	prompts   []string
}

func (g *fakeGateway) Generate(ctx context.Context, prompt string) (string, error) {
	call := len(g.prompts)
	g.prompts = append(g.prompts, prompt)
	if call < len(g.errs) && g.errs[call] != nil {
		return "", g.errs[call]
	}
	if call < len(g.responses) {
		return g.responses[call], nil
	}
	return "", errors.New("unexpected gateway call")
}

type fakeArticleStore struct {
	article *model.NewsArticle
	posts   []model.GeneratedPost
	err     error
	calls   int
}

func (s *fakeArticleStore) CreateArticleWithPosts(ctx context.Context, article *model.NewsArticle, posts []model.GeneratedPost) error {
	s.calls++
	if s.err != nil {
		return s.err
	}
	article.ID = 7
	s.article = article
	s.posts = posts
	return nil
}

func TestProcessAndGenerate_MissingInput(t *testing.T) {
	gateway := &fakeGateway{}
	store := &fakeArticleStore{}
	svc := NewContentService(gateway, store)

	_, err := svc.ProcessAndGenerate(context.Background(), 1, "", "", []string{"Facebook"})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, 0, len(gateway.prompts), "no gateway call should be attempted")
	assert.Equal(t, 0, store.calls, "nothing should be persisted")
}

func TestProcessAndGenerate_EmptyPlatforms(t *testing.T) {
	gateway := &fakeGateway{}
	store := &fakeArticleStore{}
	svc := NewContentService(gateway, store)

	_, err := svc.ProcessAndGenerate(context.Background(), 1, "", "Flooding in region X", nil)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, 0, store.calls)
}

func TestProcessAndGenerate_HappyPath(t *testing.T) {
	gateway := &fakeGateway{responses: []string{
		`{"headline":"Floods hit region X","summary":"Severe flooding reported.","entities":["region X"]}`,
		`{"Facebook":"fb caption","X":"x caption"}`,
	}}
	store := &fakeArticleStore{}
	svc := NewContentService(gateway, store)

	result, err := svc.ProcessAndGenerate(context.Background(), 42, "", "Flooding in region X", []string{"Facebook", "X"})
	require.NoError(t, err)

	assert.Equal(t, "Floods hit region X", result.ParsedNews.Headline)
	assert.Equal(t, map[string]string{"Facebook": "fb caption", "X": "x caption"}, result.Posts)

	require.NotNil(t, store.article)
	assert.Equal(t, int64(42), store.article.OwnerID)
	assert.Equal(t, "Flooding in region X", store.article.OriginalText)
	assert.Equal(t, model.DefaultTopic, store.article.Topic)

	require.Len(t, store.posts, 2)
	for _, p := range store.posts {
		assert.Equal(t, model.PostStatusDraft, p.Status)
		assert.True(t, model.KnownPlatform(p.Platform))
	}
}

func TestProcessAndGenerate_URLOnlyFallsBackToSummary(t *testing.T) {
	gateway := &fakeGateway{responses: []string{
		`{"headline":"Floods hit region X","summary":"Severe flooding reported.","entities":[]}`,
		`{"Facebook":"fb caption"}`,
	}}
	store := &fakeArticleStore{}
	svc := NewContentService(gateway, store)

	_, err := svc.ProcessAndGenerate(context.Background(), 1, "https://news.example/floods", "", []string{"Facebook"})
	require.NoError(t, err)

	assert.Equal(t, "https://news.example/floods", store.article.SourceURL)
	assert.Equal(t, "Severe flooding reported.", store.article.OriginalText)
}

func TestProcessAndGenerate_MalformedAnalysis(t *testing.T) {
	gateway := &fakeGateway{responses: []string{
		"I could not analyze that content.",
	}}
	store := &fakeArticleStore{}
	svc := NewContentService(gateway, store)

	_, err := svc.ProcessAndGenerate(context.Background(), 1, "", "Flooding in region X", []string{"Facebook"})

	var fErr *FormatError
	require.ErrorAs(t, err, &fErr)
	assert.Equal(t, 0, store.calls, "nothing should be persisted on malformed output")
}

func TestProcessAndGenerate_MalformedCaptions(t *testing.T) {
	gateway := &fakeGateway{responses: []string{
		`{"headline":"h","summary":"s","entities":[]}`,
		"not json at all",
	}}
	store := &fakeArticleStore{}
	svc := NewContentService(gateway, store)

	_, err := svc.ProcessAndGenerate(context.Background(), 1, "", "Flooding in region X", []string{"Facebook"})

	var fErr *FormatError
	require.ErrorAs(t, err, &fErr)
	assert.Equal(t, 0, store.calls)
}

func TestProcessAndGenerate_GatewayFailure(t *testing.T) {
	gateway := &fakeGateway{errs: []error{errors.New("quota exceeded")}}
	store := &fakeArticleStore{}
	svc := NewContentService(gateway, store)

	_, err := svc.ProcessAndGenerate(context.Background(), 1, "", "Flooding in region X", []string{"Facebook"})

	var gErr *GatewayError
	require.ErrorAs(t, err, &gErr)
	assert.Equal(t, 0, store.calls)
}

func TestProcessAndGenerate_SkipsUnknownPlatforms(t *testing.T) {
	gateway := &fakeGateway{responses: []string{
		`{"headline":"h","summary":"s","entities":[]}`,
		`{"Facebook":"fb caption","MySpace":"stray caption"}`,
	}}
	store := &fakeArticleStore{}
	svc := NewContentService(gateway, store)

	result, err := svc.ProcessAndGenerate(context.Background(), 1, "", "Flooding in region X", []string{"Facebook"})
	require.NoError(t, err)

	require.Len(t, store.posts, 1)
	assert.Equal(t, "Facebook", store.posts[0].Platform)
	assert.Equal(t, map[string]string{"Facebook": "fb caption"}, result.Posts)
}
