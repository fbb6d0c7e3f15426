package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/soulful-academy/chakra-report/internal/questionnaire"
	"github.com/soulful-academy/chakra-report/internal/report"
	"github.com/soulful-academy/chakra-report/internal/session"
)

var validate = validator.New()

// questionView is the client-facing shape of a question. Impact deltas stay
// server-side; the UI only needs prompts.
type questionView struct {
	Index  int    `json:"index"`
	Page   int    `json:"page"`
	Prompt string `json:"prompt"`
}

func questionViews(offset int, questions []questionnaire.Question) []questionView {
	views := make([]questionView, 0, len(questions))
	for i, q := range questions {
		idx := offset + i
		views = append(views, questionView{
			Index:  idx,
			Page:   questionnaire.PageOfQuestion(idx),
			Prompt: q.Prompt,
		})
	}
	return views
}

// handleListQuestions returns the full question bank.
func (s *Server) handleListQuestions(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"page_size":  questionnaire.PageSize,
		"page_count": questionnaire.PageCount,
		"questions":  questionViews(0, questionnaire.Bank()),
	})
}

// handleQuestionPage returns one page of questions.
func (s *Server) handleQuestionPage(w http.ResponseWriter, r *http.Request) {
	page, err := strconv.Atoi(r.PathValue("page"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid page number")
		return
	}
	questions, err := questionnaire.Page(page)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"page":      page,
		"questions": questionViews((page-1)*questionnaire.PageSize, questions),
	})
}

type createSessionRequest struct {
	Name   string `json:"name" validate:"max=120"`
	Gender string `json:"gender" validate:"required,oneof=Female Male Other"`
	Email  string `json:"email" validate:"omitempty,email"`
}

type sessionResponse struct {
	ID        string `json:"id"`
	Page      int    `json:"page"`
	Answered  int    `json:"answered"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func toSessionResponse(st session.State) sessionResponse {
	return sessionResponse{
		ID:        st.ID.String(),
		Page:      st.Page,
		Answered:  len(st.Answers),
		CreatedAt: st.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: st.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// handleCreateSession starts a new questionnaire session.
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("invalid identity: %v", err))
		return
	}

	st := s.store.Create(session.Identity{
		Name:   req.Name,
		Gender: req.Gender,
		Email:  req.Email,
	}, s.now())
	s.jsonResponse(w, http.StatusCreated, toSessionResponse(st))
}

// sessionFromRequest resolves the {id} path value to stored state.
func (s *Server) sessionFromRequest(r *http.Request) (session.State, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return session.State{}, &ErrValidation{Field: "id", Message: "not a valid session ID"}
	}
	return s.store.Get(id)
}

// handleGetSession returns the current session state summary.
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	st, err := s.sessionFromRequest(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, toSessionResponse(st))
}

type submitAnswersRequest struct {
	Page    int            `json:"page" validate:"required,min=1,max=5"`
	Answers map[int]string `json:"answers" validate:"required"`
}

// handleSubmitAnswers records the answers of one page through a pure state
// transition and stores the resulting state.
func (s *Server) handleSubmitAnswers(w http.ResponseWriter, r *http.Request) {
	st, err := s.sessionFromRequest(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req submitAnswersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("invalid submission: %v", err))
		return
	}

	answers := make(map[int]questionnaire.Answer, len(req.Answers))
	for idx, raw := range req.Answers {
		answer, err := questionnaire.ParseAnswer(raw)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		answers[idx] = answer
	}

	next, err := session.SubmitPage(st, req.Page, answers, s.now())
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.store.Put(next)
	s.jsonResponse(w, http.StatusOK, toSessionResponse(next))
}

type rankedView struct {
	Category string  `json:"category"`
	Score    float64 `json:"score"`
}

type reportResponse struct {
	Personality    string       `json:"personality"`
	LowestCategory string       `json:"lowest_category"`
	LowestThree    []rankedView `json:"lowest_three"`
	NeedsStatement string       `json:"needs_statement"`
	Affirmations   []string     `json:"affirmations"`
	AverageScore   float64      `json:"average_score"`
	Download       string       `json:"download"`
	Filename       string       `json:"filename"`
}

// profileFromState assembles the render input from stored session state.
func (s *Server) profileFromState(st session.State) report.Profile {
	return report.BuildProfile(
		st.Identity.Name,
		report.Gender(st.Identity.Gender),
		st.Identity.Email,
		session.Complete(st),
		s.now(),
	)
}

// handleGenerateReport classifies the session's answers and confirms the
// report can be produced. The session stays stored whatever happens, so a
// failed generation is retryable without re-answering.
func (s *Server) handleGenerateReport(w http.ResponseWriter, r *http.Request) {
	st, err := s.sessionFromRequest(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	profile := s.profileFromState(st)
	if _, err := s.renderer.Render(r.Context(), &profile); err != nil {
		log.Printf("[report] generation failed for session %s: %v", st.ID, err)
		s.errorResponse(w, HTTPStatus(err), "report could not be generated")
		return
	}

	c := profile.Classification
	lowestThree := make([]rankedView, 0, len(c.LowestThree))
	for _, rc := range c.LowestThree {
		lowestThree = append(lowestThree, rankedView{Category: rc.Category.String(), Score: rc.Score})
	}
	s.jsonResponse(w, http.StatusOK, reportResponse{
		Personality:    c.PersonalityLabel,
		LowestCategory: c.Lowest.String(),
		LowestThree:    lowestThree,
		NeedsStatement: c.NeedsStatement,
		Affirmations:   c.Affirmations[:],
		AverageScore:   c.Average,
		Download:       fmt.Sprintf("/sessions/%s/report.pdf", st.ID),
		Filename:       profile.Filename(),
	})
}

// handleDownloadReport renders the PDF and serves it as an attachment.
func (s *Server) handleDownloadReport(w http.ResponseWriter, r *http.Request) {
	st, err := s.sessionFromRequest(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	profile := s.profileFromState(st)
	data, err := s.renderer.Render(r.Context(), &profile)
	if err != nil {
		log.Printf("[report] generation failed for session %s: %v", st.ID, err)
		s.errorResponse(w, HTTPStatus(err), "report could not be generated")
		return
	}

	w.Header().Set("Content-Type", report.MIMEType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", profile.Filename()))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Printf("Error writing PDF response: %v", err)
	}
}
