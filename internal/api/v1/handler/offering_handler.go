package handler

import (
	"net/http"

	"coursecatalog/internal/service"

	"github.com/rs/zerolog"
)

// OfferingHandler serves the timetable.
type OfferingHandler struct {
	offeringService service.OfferingService
	logger          zerolog.Logger
}

func NewOfferingHandler(offeringService service.OfferingService, logger zerolog.Logger) *OfferingHandler {
	return &OfferingHandler{
		offeringService: offeringService,
		logger:          logger.With().Str("handler", "OfferingHandler").Logger(),
	}
}

func (h *OfferingHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/offerings", h.listOfferings)
}

// listOfferings godoc
// @Summary List offerings
// @Description Returns every row of the timetable table.
// @Tags offerings
// @Produce json
// @Success 200 {array} model.Offering
// @Failure 500 {string} string "Failed to retrieve offerings"
// @Router /offerings [get]
func (h *OfferingHandler) listOfferings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	offerings, err := h.offeringService.ListOfferings(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list offerings")
		http.Error(w, "Failed to retrieve offerings: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, offerings, h.logger)
}
