package seedserver

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/gophtodo/internal/logging"
	"github.com/gorilla/mux"
)

type handlers struct {
	store  *TodoStore
	logger logging.Logger
}

// NewHandler is NewRouter wrapped in the request id and logging
// middleware. The wrapping sits outside the router so 404 and 405 answers
// are covered too.
func NewHandler(store *TodoStore, logger logging.Logger) http.Handler {
	return requestIDMiddleware(loggingMiddleware(logger)(NewRouter(store, logger)))
}

// NewRouter serves the todo list:
//
//	GET /todos?_limit=N   first N todos (all when _limit is absent)
//	GET /todos/{id}       one todo
//	GET /health           liveness
func NewRouter(store *TodoStore, logger logging.Logger) *mux.Router {
	h := &handlers{store: store, logger: logger}

	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods(http.MethodGet)
	r.HandleFunc("/todos", h.listTodos).Methods(http.MethodGet)
	r.HandleFunc("/todos/{id:[0-9]+}", h.getTodo).Methods(http.MethodGet)

	return r
}

func (h *handlers) listTodos(w http.ResponseWriter, r *http.Request) {
	limit := -1
	if v := r.URL.Query().Get("_limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			http.Error(w, "invalid _limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	h.writeJSON(w, r, http.StatusOK, h.store.List(limit))
}

func (h *handlers) getTodo(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	todo, ok := h.store.Get(id)
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	h.writeJSON(w, r, http.StatusOK, todo)
}

func (h *handlers) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error(r.Context(), "error writing response", "error", err)
	}
}
