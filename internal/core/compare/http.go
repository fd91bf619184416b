package compare

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/linwanqing/artstudy/internal/platform/request"
	"github.com/linwanqing/artstudy/internal/platform/respond"
)

// Handler implements the HTTP layer for pair comparison.
type Handler struct {
	service *Service
}

// NewHandler constructs a new compare [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the compare endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.getComparison)
	router.Put("/note", handler.saveNote)
	router.Get("/notes", handler.listNotes)

	return router
}

/*
GET /api/v1/compare?a={id}&b={id}.

Description: Builds the side-by-side comparison of two records: both
effective views, the difference table, the saved note, and the writing
guidance.

Request:
  - a: string (First record ID)
  - b: string (Second record ID)

Response:
  - 200: Comparison: Success
  - 400: Validation: Missing or identical ids
  - 404: ErrNotFound: Either record missing
*/
func (handler *Handler) getComparison(writer http.ResponseWriter, request *http.Request) {

	idA := requestutil.Query(request, "a")
	idB := requestutil.Query(request, "b")

	comparison, err := handler.service.Compare(request.Context(), idA, idB)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, comparison)
}

// noteRequest is the body of PUT /compare/note.
type noteRequest struct {
	IDA  string `json:"idA"`
	IDB  string `json:"idB"`
	Note string `json:"note"`
}

// noteResponse echoes the stored note text after a save.
type noteResponse struct {
	PairKey PairKey `json:"pairKey"`
	Note    string  `json:"note"`
}

/*
PUT /api/v1/compare/note.

Description: Saves the comparison note for a pair. The text is trimmed;
saving an empty note deletes the entry.

Request:
  - body: noteRequest

Response:
  - 200: noteResponse: The stored (trimmed) text
  - 400: Validation: Malformed body, missing or identical ids
  - 404: ErrNotFound: Either record missing
*/
func (handler *Handler) saveNote(writer http.ResponseWriter, request *http.Request) {

	var body noteRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	stored, err := handler.service.SaveNote(request.Context(), body.IDA, body.IDB, body.Note)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, noteResponse{PairKey: NewPairKey(body.IDA, body.IDB), Note: stored})
}

/*
GET /api/v1/compare/notes.

Description: Lists every saved note ordered by pair key, with both record
titles for display. Notes whose records are no longer in the dataset are
skipped.

Response:
  - 200: []SavedNote: Success
*/
func (handler *Handler) listNotes(writer http.ResponseWriter, request *http.Request) {
	notes, err := handler.service.SavedNotes(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, notes)
}
