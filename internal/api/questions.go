package api

import (
	"context"
	"fmt"
	"net/url"
)

// Question represents a customer product question.
type Question struct {
	ID         string   `json:"id"`
	ProductKey string   `json:"product_key,omitempty"`
	Author     string   `json:"author,omitempty"`
	Email      string   `json:"email,omitempty"`
	Content    string   `json:"content"`
	CreatedAt  string   `json:"created_at,omitempty"`
	Answers    []Answer `json:"answers,omitempty"`
}

// Answer is a reply to a product question.
type Answer struct {
	ID        string `json:"id"`
	Author    string `json:"author,omitempty"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at,omitempty"`
	Official  bool   `json:"official,omitempty"`
}

// QuestionListResponse wraps the questions list payload.
type QuestionListResponse struct {
	Questions []Question `json:"questions"`
	Total     int        `json:"total,omitempty"`
	Page      int        `json:"page,omitempty"`
}

// ListQuestionsParams defines filters for listing questions.
type ListQuestionsParams struct {
	Page       int
	Count      int
	Unanswered bool
}

// List retrieves questions with optional filters.
func (s QuestionsService) List(ctx context.Context, params ListQuestionsParams) (*QuestionListResponse, error) {
	return listQuestions(ctx, s.Client, params)
}

func listQuestions(ctx context.Context, r Requester, params ListQuestionsParams) (*QuestionListResponse, error) {
	query := url.Values{}
	if params.Page > 0 {
		query.Set("page", fmt.Sprintf("%d", params.Page))
	}
	if params.Count > 0 {
		query.Set("count", fmt.Sprintf("%d", params.Count))
	}
	if params.Unanswered {
		query.Set("unanswered", "1")
	}

	var result QuestionListResponse
	if err := r.Get(ctx, "questions", query, &result); err != nil {
		return nil, wrapServiceErr(err)
	}
	return &result, nil
}

// ForProduct retrieves the questions asked about a product.
func (s QuestionsService) ForProduct(ctx context.Context, productKey string) ([]Question, error) {
	return productQuestions(ctx, s.Client, productKey)
}

func productQuestions(ctx context.Context, r Requester, productKey string) ([]Question, error) {
	var result QuestionListResponse
	path := fmt.Sprintf("products/%s/questions", url.PathEscape(productKey))
	if err := r.Get(ctx, path, nil, &result); err != nil {
		return nil, wrapServiceErr(err)
	}
	return result.Questions, nil
}

// Ask submits a new question about a product.
func (s QuestionsService) Ask(ctx context.Context, productKey, author, email, content string) (*Question, error) {
	return askQuestion(ctx, s.Client, productKey, author, email, content)
}

func askQuestion(ctx context.Context, r Requester, productKey, author, email, content string) (*Question, error) {
	body := map[string]any{
		"product_key": productKey,
		"author":      author,
		"content":     content,
	}
	if email != "" {
		body["email"] = email
	}

	var result struct {
		Question Question `json:"question"`
	}
	if err := r.PostJSON(ctx, "questions/create", body, &result); err != nil {
		return nil, wrapServiceErr(err)
	}
	return &result.Question, nil
}

// Answer posts an answer to a question.
func (s QuestionsService) Answer(ctx context.Context, questionID, author, content string, official bool) (*Answer, error) {
	return answerQuestion(ctx, s.Client, questionID, author, content, official)
}

func answerQuestion(ctx context.Context, r Requester, questionID, author, content string, official bool) (*Answer, error) {
	body := map[string]any{
		"author":   author,
		"content":  content,
		"official": official,
	}

	var result struct {
		Answer Answer `json:"answer"`
	}
	path := fmt.Sprintf("questions/%s/answer", url.PathEscape(questionID))
	if err := r.PostJSON(ctx, path, body, &result); err != nil {
		return nil, wrapServiceErr(err)
	}
	return &result.Answer, nil
}

// Delete removes a question.
func (s QuestionsService) Delete(ctx context.Context, questionID string) error {
	return deleteQuestion(ctx, s.Client, questionID)
}

func deleteQuestion(ctx context.Context, r Requester, questionID string) error {
	path := fmt.Sprintf("questions/%s/delete", url.PathEscape(questionID))
	if err := r.PostForm(ctx, path, map[string]string{"id": questionID}, nil); err != nil {
		return wrapServiceErr(err)
	}
	return nil
}
