package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stress-checker/internal/models"
	"stress-checker/internal/repository"
	"stress-checker/internal/services"
)

type HistoryHandler struct {
	log *zap.Logger
}

func NewHistoryHandler(log *zap.Logger) *HistoryHandler {
	return &HistoryHandler{log: log}
}

// recordView is the API shape of one stored result. Answers are decoded
// leniently: a malformed row renders with an empty answer set instead
// of breaking the listing.
type recordView struct {
	ID          uint           `json:"id"`
	TotalScore  int            `json:"totalScore"`
	StressLevel string         `json:"stressLevel"`
	Answers     map[string]int `json:"answers"`
	CreatedAt   time.Time      `json:"createdAt"`
}

func toView(r models.TestRecord) recordView {
	return recordView{
		ID:          r.ID,
		TotalScore:  r.TotalScore,
		StressLevel: r.StressLevel,
		Answers:     models.DecodeAnswers(r.Answer),
		CreatedAt:   r.CreatedAt,
	}
}

// List returns the user's history, newest first.
func (h *HistoryHandler) List(c *gin.Context) {
	user := currentUser(c)
	records, err := repository.ListTestRecords(c.Request.Context(), user.ID)
	if err != nil {
		h.log.Error("Failed to list test records", zap.Error(err), zap.Uint("userID", user.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"message": models.Error("Gagal mengambil riwayat tes")})
		return
	}

	views := make([]recordView, 0, len(records))
	for _, r := range records {
		views = append(views, toView(r))
	}
	c.JSON(http.StatusOK, gin.H{"history": views})
}

// Latest returns the user's most recent result, for the result page.
func (h *HistoryHandler) Latest(c *gin.Context) {
	user := currentUser(c)
	record, err := repository.GetLatestTestRecord(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": models.Error("Belum ada riwayat tes")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": toView(*record)})
}

// Delete removes one record owned by the user.
func (h *HistoryHandler) Delete(c *gin.Context) {
	user := currentUser(c)
	recordID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": models.Error("ID riwayat tidak valid")})
		return
	}

	removed, err := repository.DeleteTestRecord(c.Request.Context(), user.ID, uint(recordID))
	if err != nil {
		h.log.Error("Failed to delete test record", zap.Error(err), zap.Uint("userID", user.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"message": models.Error("Gagal menghapus riwayat tes")})
		return
	}
	if removed == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": models.Error("Riwayat tes tidak ditemukan")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": models.Success("Riwayat tes dihapus")})
}

// DeleteAll wipes the user's history and reports the removed count.
func (h *HistoryHandler) DeleteAll(c *gin.Context) {
	user := currentUser(c)
	removed, err := repository.DeleteAllTestRecords(c.Request.Context(), user.ID)
	if err != nil {
		h.log.Error("Failed to delete test history", zap.Error(err), zap.Uint("userID", user.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"message": models.Error("Gagal menghapus riwayat tes")})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":   removed,
		"message": models.Success("Semua riwayat tes dihapus"),
	})
}

// Export streams the user's history as a CSV download.
func (h *HistoryHandler) Export(c *gin.Context) {
	user := currentUser(c)
	records, err := repository.ListTestRecords(c.Request.Context(), user.ID)
	if err != nil {
		h.log.Error("Failed to load records for export", zap.Error(err), zap.Uint("userID", user.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"message": models.Error("Gagal mengekspor riwayat tes")})
		return
	}

	data, err := services.ExportHistoryCSV(records)
	if err != nil {
		h.log.Error("Failed to render history CSV", zap.Error(err), zap.Uint("userID", user.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"message": models.Error("Gagal mengekspor riwayat tes")})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="riwayat-tes-stres.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}
