package api

import (
	"context"

	"github.com/newspulse/newspulse/app/analyzer"
	"github.com/newspulse/newspulse/app/database"
	"github.com/newspulse/newspulse/app/fetcher"
	"github.com/newspulse/newspulse/app/tasks"
)

// AnalyzerInterface is the analysis pipeline as seen from the HTTP layer
type AnalyzerInterface interface {
	Analyze(ctx context.Context, title, content string) (*analyzer.AnalysisResult, error)
}

var _ AnalyzerInterface = (*analyzer.Analyzer)(nil)

// FetcherInterface provides category news retrieval
type FetcherInterface interface {
	FetchCategory(ctx context.Context, category, country string) ([]fetcher.Item, error)
	Categories() []string
}

var _ FetcherInterface = (*fetcher.Fetcher)(nil)

// TranslatorInterface is the translation collaborator used by the
// translate endpoint
type TranslatorInterface interface {
	Enabled() bool
	Detect(ctx context.Context, text string) (string, error)
	Translate(ctx context.Context, text, from, to string) (string, error)
}

type Handler struct {
	analyze     AnalyzerInterface
	articleRepo database.ArticleRepository
	fetch       FetcherInterface
	translator  TranslatorInterface
	scheduler   tasks.TaskSchedulerInterface
}

// AnalyzeRequest is the payload of the analysis endpoints
type AnalyzeRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// TranslateRequest is the payload of the translate endpoint
type TranslateRequest struct {
	Text           string `json:"text" binding:"required"`
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language" binding:"required"`
}
