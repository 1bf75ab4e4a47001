package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobname/recommender/internal/model"
	"github.com/jobname/recommender/internal/repository"
)

// missMessage is the fixed body returned for every lookup miss, including
// an empty or omitted input parameter.
const missMessage = "No recommendations for user input"

// PredictHandler serves GET /predict/ lookups against the injected table.
type PredictHandler struct {
	Repo *repository.LabelRepo // immutable lookup table, loaded at startup
}

// LabelsResponse is the body of a successful lookup.  Labels marshals back
// in the exact shape the dataset stored (scalar or list).
type LabelsResponse struct {
	Labels model.Label `json:"labels"`
}

// Predict looks up the raw `input` query parameter as an exact key.  The
// key is not trimmed, case-folded or otherwise normalized.  A missing or
// empty parameter is a miss, and misses are normal negative results: they
// return 404 with a fixed message and are never logged as errors.
func (h *PredictHandler) Predict(c echo.Context) error {
	input := c.QueryParam("input")
	if input == "" {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: missMessage})
	}
	label, ok := h.Repo.Lookup(input)
	if !ok {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: missMessage})
	}
	return c.JSON(http.StatusOK, LabelsResponse{Labels: label})
}
