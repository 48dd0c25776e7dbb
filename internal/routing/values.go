package routing

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/SystemBuilders/strlist/internal/listservice"
)

func insert(w http.ResponseWriter, r *http.Request, ls listservice.ListService) {
	id, err := listID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req, err := readValue(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := ls.Insert(id, req.Value); err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	w.Write([]byte("value inserted"))
}

func find(w http.ResponseWriter, r *http.Request, ls listservice.ListService) {
	id, err := listID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req, err := readValue(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	found, err := ls.Find(id, req.Value)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	writeJSON(w, http.StatusOK, listservice.FindRes{Found: found})
}

// remove serves delete; a missing value is reported, not an error.
func remove(w http.ResponseWriter, r *http.Request, ls listservice.ListService) {
	id, err := listID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req, err := readValue(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	deleted, err := ls.Delete(id, req.Value)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	writeJSON(w, http.StatusOK, listservice.DeleteRes{Deleted: deleted})
}

func readValue(r *http.Request) (listservice.ValueRequest, error) {
	var req listservice.ValueRequest
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return req, err
	}
	err = json.Unmarshal(body, &req)
	return req, err
}
