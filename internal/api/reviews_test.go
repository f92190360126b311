package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestReviewsList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/reviews" {
			t.Errorf("path = %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("product_key") != "prod-1" || q.Get("page") != "3" || q.Get("min_score") != "4" {
			t.Errorf("query = %v", q)
		}
		_, _ = w.Write([]byte(`{"status":"OK","code":200,"data":{"review":[{"id":"1","score":"5"},{"id":"2","score":"4"}],"total":2}}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	resp, err := client.Reviews().List(context.Background(), ListReviewsParams{ProductKey: "prod-1", Page: 3, MinScore: 4})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(resp.Review) != 2 || resp.Total != 2 {
		t.Errorf("resp = %+v", resp)
	}
	if resp.Review[0].ID != "1" || resp.Review[1].Score != "4" {
		t.Errorf("reviews = %+v", resp.Review)
	}
}

func TestReviewsGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/reviews/rv-9/view" {
			t.Errorf("path = %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"status":"OK","code":200,"data":{"review":{"id":"9","key":"rv-9","score":"3","title":"okay"}}}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	review, err := client.Reviews().Get(context.Background(), "rv-9")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if review.ID != "9" || review.Title != "okay" {
		t.Errorf("review = %+v", review)
	}
}

func TestReviewsGetNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"NOT_FOUND","code":404,"message":"review does not exist"}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	_, err := client.Reviews().Get(context.Background(), "missing")
	if !IsNotFound(err) {
		t.Fatalf("expected not-found API error, got %v", err)
	}
}

func TestReviewsCreate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/reviews/create" || r.Method != http.MethodPost {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		var payload map[string]any
		_ = json.Unmarshal(body, &payload)
		if payload["product_key"] != "prod-1" || payload["score"] != float64(5) {
			t.Errorf("payload = %v", payload)
		}
		if _, ok := payload["email"]; ok {
			t.Error("empty email should be omitted")
		}
		_, _ = w.Write([]byte(`{"status":"OK","code":200,"data":{"review":{"id":"50","score":"5","author":"Jo"}}}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	review, err := client.Reviews().Create(context.Background(), "prod-1", "Jo", "", 5, "", "loved it")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if review.ID != "50" || review.Author != "Jo" {
		t.Errorf("review = %+v", review)
	}
}

func TestReviewsReply(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/reviews/rv-1/reply" {
			t.Errorf("path = %s", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		var payload map[string]string
		_ = json.Unmarshal(body, &payload)
		if payload["content"] != "thanks!" {
			t.Errorf("payload = %v", payload)
		}
		_, _ = w.Write([]byte(`{"status":"OK","code":200,"data":{"review":{"id":"1","score":"5","reply":"thanks!"}}}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	review, err := client.Reviews().Reply(context.Background(), "rv-1", "thanks!")
	if err != nil {
		t.Fatalf("Reply failed: %v", err)
	}
	if review.Reply != "thanks!" {
		t.Errorf("review = %+v", review)
	}
}

func TestReviewsAddMedia(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/reviews/rv-1/media" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("ParseMultipartForm: %v", err)
		}
		if got := r.FormValue("review_key"); got != "rv-1" {
			t.Errorf("review_key = %q", got)
		}
		if len(r.MultipartForm.File["media[]"]) != 1 {
			t.Errorf("files = %v", r.MultipartForm.File)
		}
		_, _ = w.Write([]byte(`{"status":"OK","code":200,"data":{"media":[{"id":"m1","url":"https://cdn.example.com/m1.jpg"}]}}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	media, err := client.Reviews().AddMedia(context.Background(), "rv-1", map[string][]byte{"pic.jpg": []byte("jpeg")})
	if err != nil {
		t.Fatalf("AddMedia failed: %v", err)
	}
	if len(media) != 1 || media[0].ID != "m1" {
		t.Errorf("media = %+v", media)
	}
}

func TestReviewsDelete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/reviews/rv-1/delete" || r.Method != http.MethodPost {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("ParseForm: %v", err)
		}
		if got := r.PostForm.Get("key"); got != "rv-1" {
			t.Errorf("key = %q", got)
		}
		_, _ = w.Write([]byte(`{"status":"OK","code":200,"data":{"deleted":true}}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	if err := client.Reviews().Delete(context.Background(), "rv-1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
}

func TestReviewsWrapsTransportFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := newTestClient(server)
	server.Close()

	_, err := client.Reviews().List(context.Background(), ListReviewsParams{})
	var base *Error
	if !errors.As(err, &base) {
		t.Fatalf("expected *Error wrapper, got %T: %v", err, err)
	}
	if base.Message != "Network error" {
		t.Errorf("Message = %q", base.Message)
	}
	if !IsNetworkError(err) {
		t.Error("underlying network error should remain reachable")
	}
}
