package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/rsxml/arrangement"
	"github.com/jsphweid/rsxml/catalog"
	"github.com/jsphweid/rsxml/constants"
	"github.com/jsphweid/rsxml/model"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the conversion API",
	Long:  `Serves the conversion API on PORT.`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

// documentStore keeps converted documents in memory by id.
type documentStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

func (s *documentStore) put(doc []byte) string {
	id := uuid.New().String()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[id] = doc
	return id
}

func (s *documentStore) get(id string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[id]
	return doc, ok
}

var documents = &documentStore{docs: make(map[string][]byte)}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func queryFlag(r *http.Request, name string) bool {
	on, _ := strconv.ParseBool(r.URL.Query().Get(name))
	return on
}

func convertOptionsFrom(r *http.Request) ConvertOptions {
	return ConvertOptions{
		Full:            queryFlag(r, "full"),
		FixHighDensity:  queryFlag(r, "fixHighDensity"),
		RemoveDD:        queryFlag(r, "removeDD"),
		MatchToSections: queryFlag(r, "matchSections"),
	}
}

func convertRequest(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	opts := convertOptionsFrom(r)
	arr, err := Transform(http.MaxBytesReader(w, r.Body, constants.MaxUploadSize), opts)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return nil, false
	}
	var buf bytes.Buffer
	if err := arr.Write(&buf, opts.Mode()); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return nil, false
	}
	return buf.Bytes(), true
}

func HandleConvert(w http.ResponseWriter, r *http.Request) {
	doc, ok := convertRequest(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/xml")
	w.Write(doc)
}

func HandleStoreDocument(w http.ResponseWriter, r *http.Request) {
	doc, ok := convertRequest(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusCreated, model.DocumentResponse{ID: documents.put(doc)})
}

func HandleGetDocument(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	doc, ok := documents.get(id)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("no document %v", id))
		return
	}
	w.Header().Set("Content-Type", "application/xml")
	w.Write(doc)
}

func HandleTones(w http.ResponseWriter, r *http.Request) {
	ti, err := arrangement.ReadToneNames(http.MaxBytesReader(w, r.Body, constants.MaxUploadSize))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, model.NewTonesResponse(ti))
}

func HandleMetaData(w http.ResponseWriter, r *http.Request) {
	md, err := arrangement.ReadMetaData(http.MaxBytesReader(w, r.Body, constants.MaxUploadSize))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, catalog.FromMetaData(&md))
}

func HandleMidi(w http.ResponseWriter, r *http.Request) {
	arr, err := arrangement.Read(http.MaxBytesReader(w, r.Body, constants.MaxUploadSize))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	start, _ := strconv.Atoi(r.URL.Query().Get("sampleStart"))
	notes, _ := strconv.Atoi(r.URL.Query().Get("sampleNotes"))
	s, err := ArrangementMidi(arr, start, notes)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "audio/midi")
	w.Write(buf.Bytes())
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/convert", HandleConvert).Methods("POST")
	router.HandleFunc("/tones", HandleTones).Methods("POST")
	router.HandleFunc("/metadata", HandleMetaData).Methods("POST")
	router.HandleFunc("/midi", HandleMidi).Methods("POST")
	router.HandleFunc("/documents", HandleStoreDocument).Methods("POST")
	router.HandleFunc("/documents/{id}", HandleGetDocument).Methods("GET")
	return cors.Default().Handler(router)
}

func serve() {
	addr := ":" + constants.GetPort()
	log.Printf("Listening on %v", addr)
	log.Fatal(http.ListenAndServe(addr, NewRouter()))
}
