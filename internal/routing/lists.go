package routing

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/SystemBuilders/strlist/internal/dll"
	"github.com/SystemBuilders/strlist/internal/listservice"
	"github.com/gorilla/mux"
	"github.com/oklog/ulid"
)

// create wraps the list service Create function and creates a clean HTTP service.
func create(w http.ResponseWriter, r *http.Request, ls listservice.ListService) {
	id, err := ls.Create()
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	writeJSON(w, http.StatusCreated, listservice.CreateRes{ID: id.String()})
}

func lists(w http.ResponseWriter, r *http.Request, ls listservice.ListService) {
	ids := []string{}
	for _, id := range ls.Lists() {
		ids = append(ids, id.String())
	}
	writeJSON(w, http.StatusOK, ids)
}

func contents(w http.ResponseWriter, r *http.Request, ls listservice.ListService) {
	id, err := listID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	values, err := ls.Contents(id)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	rendered, err := ls.Render(id)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	writeJSON(w, http.StatusOK, listservice.ContentsRes{Values: values, Rendered: rendered})
}

func destroy(w http.ResponseWriter, r *http.Request, ls listservice.ListService) {
	id, err := listID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := ls.Destroy(id); err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	w.Write([]byte("list destroyed"))
}

func listID(r *http.Request) (ulid.ULID, error) {
	return ulid.Parse(mux.Vars(r)["id"])
}

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, listservice.ErrListNotFound):
		return http.StatusNotFound
	case errors.Is(err, dll.ErrNodeAllocation):
		return http.StatusInsufficientStorage
	default:
		return http.StatusInternalServerError
	}
}

// writeJSON writes status only once v has been marshalled.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	byteData, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(byteData)
}
