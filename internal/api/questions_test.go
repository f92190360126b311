package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestQuestionsList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/questions" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("unanswered"); got != "1" {
			t.Errorf("unanswered = %q", got)
		}
		_, _ = w.Write([]byte(`{"status":"OK","code":200,"data":{"questions":[{"id":"q1","content":"Does it float?"}],"total":1}}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	resp, err := client.Questions().List(context.Background(), ListQuestionsParams{Unanswered: true})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(resp.Questions) != 1 || resp.Questions[0].ID != "q1" {
		t.Errorf("resp = %+v", resp)
	}
}

func TestQuestionsForProduct(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products/p1/questions" {
			t.Errorf("path = %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"status":"OK","code":200,"data":{"questions":[{"id":"q1","content":"Is it blue?","answers":[{"id":"a1","content":"Yes","official":true}]}]}}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	questions, err := client.Questions().ForProduct(context.Background(), "p1")
	if err != nil {
		t.Fatalf("ForProduct failed: %v", err)
	}
	if len(questions) != 1 || len(questions[0].Answers) != 1 {
		t.Fatalf("questions = %+v", questions)
	}
	if !questions[0].Answers[0].Official {
		t.Error("answer should be official")
	}
}

func TestQuestionsAsk(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/questions/create" {
			t.Errorf("path = %s", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		var payload map[string]any
		_ = json.Unmarshal(body, &payload)
		if payload["product_key"] != "p1" || payload["content"] != "Does it ship abroad?" {
			t.Errorf("payload = %v", payload)
		}
		_, _ = w.Write([]byte(`{"status":"OK","code":200,"data":{"question":{"id":"q5","content":"Does it ship abroad?"}}}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	question, err := client.Questions().Ask(context.Background(), "p1", "Sam", "", "Does it ship abroad?")
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	if question.ID != "q5" {
		t.Errorf("question = %+v", question)
	}
}

func TestQuestionsAnswer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/questions/q1/answer" {
			t.Errorf("path = %s", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		var payload map[string]any
		_ = json.Unmarshal(body, &payload)
		if payload["official"] != true {
			t.Errorf("payload = %v", payload)
		}
		_, _ = w.Write([]byte(`{"status":"OK","code":200,"data":{"answer":{"id":"a9","content":"Yes, worldwide","official":true}}}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	answer, err := client.Questions().Answer(context.Background(), "q1", "Store team", "Yes, worldwide", true)
	if err != nil {
		t.Fatalf("Answer failed: %v", err)
	}
	if answer.ID != "a9" || !answer.Official {
		t.Errorf("answer = %+v", answer)
	}
}

func TestQuestionsDelete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/questions/q1/delete" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("ParseForm: %v", err)
		}
		if got := r.PostForm.Get("id"); got != "q1" {
			t.Errorf("id = %q", got)
		}
		_, _ = w.Write([]byte(`{"status":"OK","code":200,"data":{"deleted":true}}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	if err := client.Questions().Delete(context.Background(), "q1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
}
