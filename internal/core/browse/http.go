package browse

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/linwanqing/artstudy/internal/platform/request"
	"github.com/linwanqing/artstudy/internal/platform/respond"
	"github.com/linwanqing/artstudy/internal/platform/validate"
	"github.com/linwanqing/artstudy/pkg/convert"
)

// Handler implements the HTTP layer for browsing and navigation.
type Handler struct {
	service *Service
}

// NewHandler constructs a new browse [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the browse endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// # Navigation Session
	router.Get("/session", handler.getSession)
	router.Put("/session/filter", handler.setFilter)
	router.Post("/session/step", handler.step)
	router.Post("/session/reset", handler.reset)

	// # Filter Options
	router.Get("/facets", handler.getFacets)

	return router
}

/*
GET /api/v1/session.

Description: Returns the current browsing state — active filter, the
filtered ordered views, and the cursor with its current record.

Response:
  - 200: State: Success
*/
func (handler *Handler) getSession(writer http.ResponseWriter, request *http.Request) {
	state, err := handler.service.Current(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, state)
}

/*
PUT /api/v1/session/filter.

Description: Replaces the session filter and returns the recomputed state.

Request:
  - body: FilterSpec

Response:
  - 200: State: Success
  - 400: Validation: Malformed JSON body
*/
func (handler *Handler) setFilter(writer http.ResponseWriter, request *http.Request) {
	var spec FilterSpec
	if err := requestutil.DecodeJSON(request, &spec); err != nil {
		respond.Error(writer, request, err)
		return
	}

	state, err := handler.service.SetFilter(request.Context(), spec)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, state)
}

// stepRequest is the body of POST /session/step.
type stepRequest struct {
	Delta int `json:"delta"`
}

/*
POST /api/v1/session/step.

Description: Moves the cursor by delta, wrapping at both ends of the
filtered set. The delta may come from the JSON body or a ?delta= query
parameter; ±1 are the values the arrow keys produce.

Request:
  - delta: int (non-zero)

Response:
  - 200: State: Success
  - 400: Validation: Zero or missing delta
*/
func (handler *Handler) step(writer http.ResponseWriter, request *http.Request) {

	// Query parameter takes precedence for simple clients.
	delta := convert.ToInt(requestutil.Query(request, "delta"))

	if delta == 0 && request.Body != nil && request.ContentLength != 0 {
		var body stepRequest
		if err := requestutil.DecodeJSON(request, &body); err != nil {
			respond.Error(writer, request, err)
			return
		}
		delta = body.Delta
	}

	v := &validate.Validator{}
	v.Custom("delta", delta == 0, "Must be a non-zero step")
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	state, err := handler.service.Step(request.Context(), delta)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, state)
}

/*
POST /api/v1/session/reset.

Description: Restores the all-sentinel filter with the cursor on the first
record.

Response:
  - 200: State: Success
*/
func (handler *Handler) reset(writer http.ResponseWriter, request *http.Request) {
	state, err := handler.service.Reset(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, state)
}

/*
GET /api/v1/facets.

Description: Returns the distinct option values for the deck, region,
style, and category selects, zh-collated.

Response:
  - 200: Facets: Success
*/
func (handler *Handler) getFacets(writer http.ResponseWriter, request *http.Request) {
	facets, err := handler.service.Facets(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, facets)
}
