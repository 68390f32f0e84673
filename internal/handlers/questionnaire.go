package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stress-checker/internal/flow"
	"stress-checker/internal/models"
	"stress-checker/internal/repository"
	"stress-checker/internal/scoring"
)

type QuestionnaireHandler struct {
	log        *zap.Logger
	instrument *models.Instrument
}

func NewQuestionnaireHandler(log *zap.Logger, instrument *models.Instrument) *QuestionnaireHandler {
	return &QuestionnaireHandler{log: log, instrument: instrument}
}

// loadState fetches the user's persisted run and rebuilds the flow
// state from it. Returns nil after writing an error response.
func (h *QuestionnaireHandler) loadState(c *gin.Context) (*models.TestSession, *flow.State) {
	user := currentUser(c)
	session, err := repository.GetOrCreateTestSession(c.Request.Context(), user.ID)
	if err != nil {
		h.log.Error("Failed to load test session", zap.Error(err), zap.Uint("userID", user.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"message": models.Error("Tidak dapat memuat sesi tes")})
		return nil, nil
	}
	return session, flow.Resume(session.CurrentIndex, session.AnswerSlice(), session.IsComplete)
}

func (h *QuestionnaireHandler) save(c *gin.Context, session *models.TestSession, state *flow.State) bool {
	if err := repository.SaveTestSession(c.Request.Context(), session, state); err != nil {
		h.log.Error("Failed to save test session", zap.Error(err), zap.Uint("sessionID", session.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"message": models.Error("Tidak dapat menyimpan jawaban")})
		return false
	}
	return true
}

// stateResponse is what every questionnaire endpoint returns: enough
// for the client to render the current question without further calls.
func (h *QuestionnaireHandler) stateResponse(state *flow.State) gin.H {
	question := h.instrument.Questions[state.Index]
	return gin.H{
		"questionNumber": question.Number,
		"questionText":   question.Text,
		"options":        h.instrument.Options,
		"selected":       state.Answers[state.Index],
		"totalQuestions": scoring.NumQuestions,
		"onLastQuestion": state.OnLastQuestion(),
		"canSubmit":      state.CanSubmit(),
		"complete":       state.Complete,
	}
}

// Current returns the question the run is sitting on.
func (h *QuestionnaireHandler) Current(c *gin.Context) {
	_, state := h.loadState(c)
	if state == nil {
		return
	}
	c.JSON(http.StatusOK, h.stateResponse(state))
}

type answerRequest struct {
	Value *int `json:"value" binding:"required"`
}

// Answer records an option for the current question. The run does not
// auto-advance; Next is its own action.
func (h *QuestionnaireHandler) Answer(c *gin.Context) {
	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": models.Error("Jawaban tidak valid")})
		return
	}

	session, state := h.loadState(c)
	if state == nil {
		return
	}
	if !state.SelectOption(*req.Value) {
		c.JSON(http.StatusBadRequest, gin.H{"message": models.Error("Jawaban harus antara 0 dan 4")})
		return
	}
	if !h.save(c, session, state) {
		return
	}
	c.JSON(http.StatusOK, h.stateResponse(state))
}

// Next advances to the following question. Unanswered questions keep
// the run where it is; the UI disables the button for the same reason.
func (h *QuestionnaireHandler) Next(c *gin.Context) {
	session, state := h.loadState(c)
	if state == nil {
		return
	}
	if state.Advance() {
		if !h.save(c, session, state) {
			return
		}
	}
	c.JSON(http.StatusOK, h.stateResponse(state))
}

// Prev moves back one question, keeping earlier answers.
func (h *QuestionnaireHandler) Prev(c *gin.Context) {
	session, state := h.loadState(c)
	if state == nil {
		return
	}
	if state.Retreat() {
		if !h.save(c, session, state) {
			return
		}
	}
	c.JSON(http.StatusOK, h.stateResponse(state))
}

// Submit finalizes the run: score, classify, store the record, mark the
// session complete. A storage failure leaves the run on the last
// question so the user can resubmit without re-answering.
func (h *QuestionnaireHandler) Submit(c *gin.Context) {
	user := currentUser(c)
	session, state := h.loadState(c)
	if state == nil {
		return
	}

	total, level, err := state.Submit(func(total int, level scoring.Level) error {
		encoded, err := models.EncodeAnswers(state.Answers)
		if err != nil {
			return err
		}
		record := &models.TestRecord{
			UserID:      user.ID,
			TotalScore:  total,
			StressLevel: string(level),
			Answer:      encoded,
		}
		return repository.CreateTestRecord(c.Request.Context(), record)
	})
	if err == flow.ErrIncomplete {
		c.JSON(http.StatusBadRequest, gin.H{"message": models.Error("Semua pertanyaan harus dijawab terlebih dahulu")})
		return
	}
	if err != nil {
		h.log.Error("Failed to store test record", zap.Error(err), zap.Uint("userID", user.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"message": models.Error("Gagal menyimpan hasil tes. Silakan coba lagi")})
		return
	}

	if !h.save(c, session, state) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalScore":  total,
		"stressLevel": level,
		"message":     models.Success("Tes selesai"),
	})
}

// Restart abandons the current run and starts over.
func (h *QuestionnaireHandler) Restart(c *gin.Context) {
	session, state := h.loadState(c)
	if state == nil {
		return
	}
	state.Restart()
	if !h.save(c, session, state) {
		return
	}
	c.JSON(http.StatusOK, h.stateResponse(state))
}
