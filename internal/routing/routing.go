package routing

import (
	"net/http"

	"github.com/SystemBuilders/strlist/internal/listservice"
	"github.com/gorilla/mux"
)

// SetupRouting adds all the routes on the http server.
func SetupRouting(ls listservice.ListService, r *mux.Router) *mux.Router {
	r.HandleFunc("/lists", makeCreateHandler(ls)).Methods(http.MethodPost)
	r.HandleFunc("/lists", makeListsHandler(ls)).Methods(http.MethodGet)
	r.HandleFunc("/lists/{id}", makeContentsHandler(ls)).Methods(http.MethodGet)
	r.HandleFunc("/lists/{id}", makeDestroyHandler(ls)).Methods(http.MethodDelete)
	r.HandleFunc("/lists/{id}/insert", makeInsertHandler(ls)).Methods(http.MethodPost)
	r.HandleFunc("/lists/{id}/find", makeFindHandler(ls)).Methods(http.MethodPost)
	r.HandleFunc("/lists/{id}/delete", makeDeleteHandler(ls)).Methods(http.MethodPost)
	return r
}

func makeCreateHandler(ls listservice.ListService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		create(w, r, ls)
	}
}

func makeListsHandler(ls listservice.ListService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lists(w, r, ls)
	}
}

func makeContentsHandler(ls listservice.ListService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contents(w, r, ls)
	}
}

func makeDestroyHandler(ls listservice.ListService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		destroy(w, r, ls)
	}
}

func makeInsertHandler(ls listservice.ListService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		insert(w, r, ls)
	}
}

func makeFindHandler(ls listservice.ListService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		find(w, r, ls)
	}
}

func makeDeleteHandler(ls listservice.ListService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		remove(w, r, ls)
	}
}
