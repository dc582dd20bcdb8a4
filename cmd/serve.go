package cmd

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/jsphweid/harmonia/chord"
	"github.com/jsphweid/harmonia/constants"
	"github.com/jsphweid/harmonia/model"
	"github.com/jsphweid/harmonia/note"
	"github.com/jsphweid/harmonia/progression"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", constants.GetAddr(), "address to listen on")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves keys, chords and progressions over HTTP",
	Long: `Serves keys, chords and progressions as JSON:

  GET  /keys/{tonic}/{mode}
  GET  /chords/{root}/{quality}?sus=4&omit=5
  GET  /progressions
  POST /progressions/evaluate  {"tonic": "C", "mode": "major", "name": "canon"}

Sharps in a path can be written as 's' (Fs) or escaped (F%23).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(serveAddr)
	},
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.Errorf("could not encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	logrus.Debugf("bad request: %v", err)
	writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
}

func HandleKey(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	args := []string{vars["tonic"]}
	if mode, ok := vars["mode"]; ok {
		args = append(args, mode)
	}
	k, err := buildKey(args)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.NewKeyResponse(k))
}

func HandleChord(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	root, err := note.Parse(vars["root"])
	if err != nil {
		writeError(w, err)
		return
	}
	q := chord.Major
	if s, ok := vars["quality"]; ok {
		if q, err = chord.ParseQuality(s); err != nil {
			writeError(w, err)
			return
		}
	}

	query := r.URL.Query()
	var sus int
	if s := query.Get("sus"); s != "" {
		if sus, err = strconv.Atoi(s); err != nil {
			writeError(w, errors.Wrap(err, "bad sus"))
			return
		}
	}
	var omit []int
	for _, s := range query["omit"] {
		degree, err := strconv.Atoi(s)
		if err != nil {
			writeError(w, errors.Wrap(err, "bad omit"))
			return
		}
		omit = append(omit, degree)
	}

	c, err := modify(chord.Build(root, q), sus, omit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.NewChordResponse(c))
}

func HandleProgressions(w http.ResponseWriter, r *http.Request) {
	res := make([]model.ProgressionResponse, 0)
	for _, name := range progression.Names() {
		p, _ := progression.Named(name)
		res = append(res, model.NewProgressionResponse(p))
	}
	writeJSON(w, http.StatusOK, res)
}

func HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	var input model.EvaluateRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, errors.Wrap(err, "could not decode request body"))
		return
	}

	args := []string{input.Tonic}
	if input.Mode != "" {
		args = append(args, input.Mode)
	}
	k, err := buildKey(args)
	if err != nil {
		writeError(w, err)
		return
	}
	ps, err := pickProgressions(input.Name, input.Steps, "")
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.NewEvaluateResponse(k, ps[0]))
}

func NewRouter() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/keys/{tonic}", HandleKey).Methods("GET")
	router.HandleFunc("/keys/{tonic}/{mode}", HandleKey).Methods("GET")
	router.HandleFunc("/chords/{root}", HandleChord).Methods("GET")
	router.HandleFunc("/chords/{root}/{quality}", HandleChord).Methods("GET")
	router.HandleFunc("/progressions", HandleProgressions).Methods("GET")
	router.HandleFunc("/progressions/evaluate", HandleEvaluate).Methods("POST")
	return router
}

// NewHandler is the router wrapped to allow cross origin requests.
func NewHandler() http.Handler {
	return cors.Default().Handler(NewRouter())
}

func serve(addr string) error {
	logrus.Infof("serving on %v", addr)
	return http.ListenAndServe(addr, NewHandler())
}
