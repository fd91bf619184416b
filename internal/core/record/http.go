package record

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/linwanqing/artstudy/internal/platform/request"
	"github.com/linwanqing/artstudy/internal/platform/respond"
)

// Handler implements the HTTP layer for records.
// It translates web requests into domain service calls.
type Handler struct {
	service *Service
}

// NewHandler constructs a new record [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the record domain's endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/{id}", handler.getRecord)
	router.Put("/{id}/override", handler.saveOverride)

	return router
}

/*
GET /api/v1/records/{id}.

Description: Retrieves the fully-resolved effective view of one record,
including its one-line metadata summary.

Request:
  - id: string (Record ID)

Response:
  - 200: EffectiveView: Success
  - 404: ErrNotFound: Record missing
*/
func (handler *Handler) getRecord(writer http.ResponseWriter, request *http.Request) {

	// Extract ID from URL
	id := requestutil.ID(request, "id")

	// Domain Logic Execution
	view, err := handler.service.GetEffective(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Structured API Response
	respond.OK(writer, recordResponse{EffectiveView: view, MetaSummary: view.MetaSummary()})
}

/*
PUT /api/v1/records/{id}/override.

Description: Saves the detail-edit form for a record. The override map is
persisted immediately; empty fields fall back to base values on resolution.

Request:
  - id: string (Record ID)
  - body: OverrideDraft

Response:
  - 200: EffectiveView: The freshly resolved view
  - 400: Validation: Malformed JSON body
  - 404: ErrNotFound: Record missing
*/
func (handler *Handler) saveOverride(writer http.ResponseWriter, request *http.Request) {

	// Extract ID from URL
	id := requestutil.ID(request, "id")

	// Decode the edit form
	var draft OverrideDraft
	if err := requestutil.DecodeJSON(request, &draft); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Domain Logic Execution
	view, err := handler.service.SaveOverride(request.Context(), id, draft)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, recordResponse{EffectiveView: view, MetaSummary: view.MetaSummary()})
}

// recordResponse decorates an effective view with its display summary.
type recordResponse struct {
	EffectiveView
	MetaSummary string `json:"metaSummary"`
}
