package profileapi

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"kollabee/seller-portal/seller-portal-backend/internal/onboarding"
)

func TestGetBusinessInfoSendsBearerToken(t *testing.T) {
	var gotPath, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"businessName":"Acme Textiles","businessTypes":["Manufacturer"]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "token-123")
	info, err := client.GetBusinessInfo(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "/seller/profile/bussinessInfo", gotPath)
	assert.Equal(t, "Bearer token-123", gotAuth)
	assert.Equal(t, "Acme Textiles", info.BusinessName)
}

func TestUpdateGoalsMetricsPutsJSON(t *testing.T) {
	var gotMethod, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.Write([]byte(`{"message":"ok"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "token-123")
	err := client.UpdateGoalsMetrics(context.Background(), &onboarding.GoalsMetrics{
		SelectedObjectives: []string{"expand"},
		Agreement:          true,
	})

	assert.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Contains(t, gotBody, `"selectedObjectives":["expand"]`)
	assert.Contains(t, gotBody, `"agreement":true`)
}

func TestErrorResponsesSurfaceServerMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"database unavailable"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "token-123")
	_, err := client.GetProfileSummary(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database unavailable")
}

func TestUploadPostsMultipart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/seller/upload/pdf", r.URL.Path)
		file, header, err := r.FormFile("file")
		assert.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "registration.pdf", header.Filename)
		w.Write([]byte(`{"fileUrl":"https://cdn/documents/registration.pdf"}`))
	}))
	defer server.Close()

	store := NewFileStore(NewClient(server.URL, "token-123"))
	stored, err := store.UploadPDF(context.Background(), onboarding.File{
		Name:        "registration.pdf",
		ContentType: "application/pdf",
		Size:        12,
		Content:     strings.NewReader("%PDF-1.4 ..."),
	})

	assert.NoError(t, err)
	assert.Equal(t, "https://cdn/documents/registration.pdf", stored.URL())
}
