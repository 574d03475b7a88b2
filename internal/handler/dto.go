package handler

import "github.com/faresFatooh/media-platform/internal/service"

type ProcessAndGenerateRequest struct {
	URL       string   `json:"url"`
	Text      string   `json:"text"`
	Platforms []string `json:"platforms"`
}

type ProcessAndGenerateResponse struct {
	ArticleID      int64                `json:"article_id"`
	ParsedNews     service.NewsAnalysis `json:"parsed_news"`
	GeneratedPosts map[string]string    `json:"generated_posts"`
}

type CreateArticleRequest struct {
	URL   string `json:"url"`
	Text  string `json:"text"`
	Topic string `json:"topic"`
}

type PostResponse struct {
	ID       int64  `json:"id"`
	Platform string `json:"platform"`
	Content  string `json:"content"`
	Status   string `json:"status"`
}

type ArticleResponse struct {
	ID           int64          `json:"id"`
	SourceURL    string         `json:"source_url"`
	OriginalText string         `json:"original_text"`
	Topic        string         `json:"topic"`
	CreatedAt    string         `json:"created_at"`
	Posts        []PostResponse `json:"posts"`
}

type ArticleListResponse struct {
	Articles []ArticleResponse `json:"articles"`
	Total    int               `json:"total"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}

type StyleExampleRequest struct {
	BeforeText string `json:"before_text"`
	AfterText  string `json:"after_text"`
}

type StyleExampleResponse struct {
	ID         int64  `json:"id"`
	BeforeText string `json:"before_text"`
	AfterText  string `json:"after_text"`
	CreatedAt  string `json:"created_at"`
}

type StyleExampleListResponse struct {
	Examples []StyleExampleResponse `json:"examples"`
	Total    int                    `json:"total"`
	Limit    int                    `json:"limit"`
	Offset   int                    `json:"offset"`
}

type PredictRequest struct {
	RawText string `json:"raw_text"`
}

type PredictResponse struct {
	EditedText string `json:"edited_text"`
}

type CreateTaskRequest struct {
	ApplicationID int64  `json:"application_id"`
	InputText     string `json:"input_text"`
}

type UpdateTaskRequest struct {
	Status     string `json:"status"`
	OutputText string `json:"output_text"`
}

type TaskResponse struct {
	ID            int64  `json:"id"`
	ApplicationID int64  `json:"application_id"`
	Status        string `json:"status"`
	InputText     string `json:"input_text"`
	OutputText    string `json:"output_text"`
	CreatedAt     string `json:"created_at"`
}

type TaskListResponse struct {
	Tasks  []TaskResponse `json:"tasks"`
	Total  int            `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

type ApplicationResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
