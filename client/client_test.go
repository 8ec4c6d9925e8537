package client

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-json-experiment/json"
	"github.com/google/go-cmp/cmp"
)

func TestClient_Post(t *testing.T) {
	t.Parallel()

	var got Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Api-Key") != "secret" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &got); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"user":{"id":"1"}}}`))
	}))
	t.Cleanup(server.Close)

	c := NewClient(server.URL, WithHTTPClient(server.Client()), WithHTTPHeader(http.Header{"X-Api-Key": []string{"secret"}}))

	var out struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	if err := c.Post(t.Context(), "User", "query User($id: ID!) { user(id: $id) { id } }", map[string]any{"id": "1"}, &out); err != nil {
		t.Fatalf("Post() error = %v", err)
	}

	if diff := cmp.Diff("1", out.User.ID); diff != "" {
		t.Errorf("data diff(-want +got): %s", diff)
	}

	want := Request{
		Query:         "query User($id: ID!) { user(id: $id) { id } }",
		OperationName: "User",
		Variables:     map[string]any{"id": "1"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("request diff(-want +got): %s", diff)
	}
}

func TestParseResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{
			name:   "dataを読み込める",
			status: http.StatusOK,
			body:   `{"data":{"name":"gqlgenphp"}}`,
		},
		{
			name:    "GraphQLのエラーはパス付きで返す",
			status:  http.StatusOK,
			body:    `{"errors":[{"message":"not found","path":["user"]}]}`,
			wantErr: "graphql error: not found (path: [user])",
		},
		{
			name:    "dataがnullの場合はエラー",
			status:  http.StatusOK,
			body:    `{"data":null}`,
			wantErr: "response has no data",
		},
		{
			name:    "JSONでないレスポンスはステータスを返す",
			status:  http.StatusInternalServerError,
			body:    "internal error\n",
			wantErr: "http status 500: internal error",
		},
		{
			name:    "JSONとして不正な場合はエラー",
			status:  http.StatusOK,
			body:    `{"data":`,
			wantErr: "failed to decode response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			rec.WriteHeader(tt.status)
			_, _ = rec.WriteString(tt.body)

			var out struct {
				Name string `json:"name"`
			}
			err := ParseResponse(rec.Result(), &out)

			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("error = nil, want %q", tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("error message = %q, want to contain %q", err.Error(), tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseResponse() error = %v", err)
			}
			if diff := cmp.Diff("gqlgenphp", out.Name); diff != "" {
				t.Errorf("diff(-want +got): %s", diff)
			}
		})
	}
}
