package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soulful-academy/chakra-report/internal/questionnaire"
	"github.com/soulful-academy/chakra-report/internal/report"
)

func testServer() *Server {
	// No logo URL: reports render without the image, and nothing touches
	// the network.
	return New(Config{Port: 0, PlanVariant: report.PlanSevenDay})
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func createSession(t *testing.T, s *Server) sessionResponse {
	t.Helper()
	rec := doJSON(t, s, "POST", "/sessions", map[string]string{
		"name":   "Maya",
		"gender": "Female",
		"email":  "maya@example.com",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[sessionResponse](t, rec)
}

func TestHealth(t *testing.T) {
	s := testServer()
	rec := doJSON(t, s, "GET", "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestListQuestions(t *testing.T) {
	s := testServer()
	rec := doJSON(t, s, "GET", "/questions", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[struct {
		PageSize  int            `json:"page_size"`
		PageCount int            `json:"page_count"`
		Questions []questionView `json:"questions"`
	}](t, rec)
	assert.Equal(t, questionnaire.PageSize, resp.PageSize)
	assert.Equal(t, questionnaire.PageCount, resp.PageCount)
	require.Len(t, resp.Questions, questionnaire.NumQuestions)
	assert.Equal(t, 0, resp.Questions[0].Index)
	assert.Equal(t, 1, resp.Questions[0].Page)
	assert.NotEmpty(t, resp.Questions[0].Prompt)
	assert.Equal(t, 5, resp.Questions[49].Page)
}

func TestQuestionPage(t *testing.T) {
	s := testServer()

	rec := doJSON(t, s, "GET", "/questions/pages/3", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[struct {
		Page      int            `json:"page"`
		Questions []questionView `json:"questions"`
	}](t, rec)
	assert.Equal(t, 3, resp.Page)
	require.Len(t, resp.Questions, questionnaire.PageSize)
	assert.Equal(t, 20, resp.Questions[0].Index)

	assert.Equal(t, http.StatusBadRequest, doJSON(t, s, "GET", "/questions/pages/9", nil).Code)
	assert.Equal(t, http.StatusBadRequest, doJSON(t, s, "GET", "/questions/pages/abc", nil).Code)
}

func TestCreateSessionValidation(t *testing.T) {
	s := testServer()

	rec := doJSON(t, s, "POST", "/sessions", map[string]string{"gender": "Unspecified"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, s, "POST", "/sessions", map[string]string{"gender": "Female", "email": "nope"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Name is optional: the report falls back to a generic label.
	rec = doJSON(t, s, "POST", "/sessions", map[string]string{"gender": "Other"})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestSessionLifecycle(t *testing.T) {
	s := testServer()
	created := createSession(t, s)
	assert.Equal(t, 1, created.Page)
	assert.Equal(t, 0, created.Answered)

	rec := doJSON(t, s, "GET", "/sessions/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, "POST", "/sessions/"+created.ID+"/answers", map[string]any{
		"page": 1,
		"answers": map[string]string{
			"0": "affirmative",
			"4": "negative",
		},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[sessionResponse](t, rec)
	assert.Equal(t, 2, updated.Page)
	assert.Equal(t, 2, updated.Answered)

	// Answer from the wrong page is rejected and does not change state.
	rec = doJSON(t, s, "POST", "/sessions/"+created.ID+"/answers", map[string]any{
		"page":    1,
		"answers": map[string]string{"30": "affirmative"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, s, "GET", "/sessions/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, decode[sessionResponse](t, rec).Answered)
}

func TestSessionNotFound(t *testing.T) {
	s := testServer()
	assert.Equal(t, http.StatusNotFound,
		doJSON(t, s, "GET", "/sessions/6ba7b810-9dad-11d1-80b4-00c04fd430c8", nil).Code)
	assert.Equal(t, http.StatusBadRequest,
		doJSON(t, s, "GET", "/sessions/not-a-uuid", nil).Code)
}

func TestGenerateReport(t *testing.T) {
	s := testServer()
	created := createSession(t, s)

	rec := doJSON(t, s, "POST", fmt.Sprintf("/sessions/%s/report", created.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp := decode[reportResponse](t, rec)
	// All answers default to Sometimes; Heart bottoms out at 2.0 in the
	// declared bank and drives the classification.
	assert.Equal(t, "Heart", resp.LowestCategory)
	assert.Equal(t, "The Devoted Nurturer", resp.Personality)
	require.Len(t, resp.LowestThree, 3)
	assert.Equal(t, 2.0, resp.LowestThree[0].Score)
	assert.Len(t, resp.Affirmations, 3)
	assert.NotEmpty(t, resp.NeedsStatement)
	assert.Equal(t, fmt.Sprintf("/sessions/%s/report.pdf", created.ID), resp.Download)
	assert.Equal(t, "Maya_chakra_report.pdf", resp.Filename)

	// The session survives generation and can be re-generated.
	rec = doJSON(t, s, "POST", fmt.Sprintf("/sessions/%s/report", created.ID), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDownloadReport(t *testing.T) {
	s := testServer()
	created := createSession(t, s)

	rec := doJSON(t, s, "GET", fmt.Sprintf("/sessions/%s/report.pdf", created.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, report.MIMEType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "Maya_chakra_report.pdf")
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF-"), "body is not a PDF")
}

func TestHTTPStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&ErrValidation{Field: "id", Message: "bad"}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(fmt.Errorf("boom")))
}
