package cmd

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/tjadex/analysis"
	"github.com/jsphweid/tjadex/constants"
	"github.com/jsphweid/tjadex/file"
	"github.com/jsphweid/tjadex/midi"
	"github.com/jsphweid/tjadex/model"
	"github.com/jsphweid/tjadex/timeline"
	"github.com/jsphweid/tjadex/tja"
	"github.com/jsphweid/tjadex/util"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

var (
	errStoreFull     = errors.New("too many charts stored")
	errChartTooLarge = errors.New("chart too large")
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serves",
	Long:  `Serves chart parsing and analysis over HTTP on $PORT.`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

type chartStore struct {
	mu     sync.RWMutex
	charts map[string]model.Chart
}

func newChartStore() *chartStore {
	return &chartStore{charts: make(map[string]model.Chart)}
}

func (s *chartStore) add(chart model.Chart) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.charts) >= constants.MaxStoredCharts {
		return "", errStoreFull
	}
	id := uuid.New().String()
	s.charts[id] = chart
	return id, nil
}

func (s *chartStore) get(id string) (model.Chart, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	chart, ok := s.charts[id]
	return chart, ok
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("could not write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch errors.Cause(err) {
	case analysis.ErrCourseNotFound:
		return http.StatusNotFound
	case timeline.ErrBalloonOverrun:
		return http.StatusUnprocessableEntity
	case errStoreFull:
		return http.StatusServiceUnavailable
	case errChartTooLarge:
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}

func readChart(w http.ResponseWriter, r *http.Request) (model.Chart, error) {
	limit := int64(constants.MaxChartBytes)
	body, err := io.ReadAll(io.LimitReader(http.MaxBytesReader(w, r.Body, limit+1), limit+1))
	if err != nil {
		return model.Chart{}, errors.Wrap(err, "could not read request body")
	}
	if int64(len(body)) > limit {
		return model.Chart{}, errors.Wrapf(errChartTooLarge, "over %v bytes", limit)
	}
	text, _, err := file.Decode(body)
	if err != nil {
		return model.Chart{}, err
	}
	return tja.Parse(text), nil
}

func courseParam(name string) (model.CourseID, error) {
	id, ok := tja.LookupCourse(name)
	if !ok {
		return 0, errors.Wrapf(analysis.ErrCourseNotFound, "%q", name)
	}
	return id, nil
}

type server struct {
	store *chartStore
}

func (s *server) handleCreateChart(w http.ResponseWriter, r *http.Request) {
	chart, err := readChart(w, r)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	id, err := s.store.add(chart)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	logger.Printf("stored chart %v (%v)", id, chart.Headers.Title)
	writeJSON(w, http.StatusCreated, model.ChartCreated{
		Id:      id,
		Title:   chart.Headers.Title,
		Courses: util.GetSortedKeys(chart.Courses),
	})
}

func (s *server) lookup(w http.ResponseWriter, r *http.Request) (model.Chart, bool) {
	id := mux.Vars(r)["id"]
	chart, ok := s.store.get(id)
	if !ok {
		writeError(w, http.StatusNotFound, errors.Errorf("no chart %v", id))
	}
	return chart, ok
}

func (s *server) handleGetChart(w http.ResponseWriter, r *http.Request) {
	if chart, ok := s.lookup(w, r); ok {
		writeJSON(w, http.StatusOK, chart)
	}
}

func analyseAndWrite(w http.ResponseWriter, chart model.Chart, courseName string) {
	id, err := courseParam(courseName)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	res, err := analysis.Analyse(chart, id)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, res.Response())
}

func (s *server) handleAnalyseStored(w http.ResponseWriter, r *http.Request) {
	if chart, ok := s.lookup(w, r); ok {
		analyseAndWrite(w, chart, mux.Vars(r)["course"])
	}
}

func (s *server) handleMidi(w http.ResponseWriter, r *http.Request) {
	chart, ok := s.lookup(w, r)
	if !ok {
		return
	}
	id, err := courseParam(mux.Vars(r)["course"])
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	course, ok := chart.Courses[id]
	if !ok {
		writeError(w, http.StatusNotFound, errors.Wrapf(analysis.ErrCourseNotFound, "%v", id))
		return
	}
	tl, err := timeline.Build(course)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	w.Header().Set("Content-Type", "audio/midi")
	if err := midi.Export(w, tl); err != nil {
		log.Printf("could not write midi: %v", err)
	}
}

func handleAnalyse(w http.ResponseWriter, r *http.Request) {
	chart, err := readChart(w, r)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	name := r.URL.Query().Get("course")
	if name == "" {
		name = "oni"
	}
	analyseAndWrite(w, chart, name)
}

func rateLimit(limiter *rate.Limiter, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			writeError(w, http.StatusTooManyRequests, errors.New("rate limit exceeded"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func NewRouter() http.Handler {
	s := &server{store: newChartStore()}

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/charts", s.handleCreateChart).Methods("POST")
	router.HandleFunc("/charts/{id}", s.handleGetChart).Methods("GET")
	router.HandleFunc("/charts/{id}/courses/{course}", s.handleAnalyseStored).Methods("GET")
	router.HandleFunc("/charts/{id}/courses/{course}/midi", s.handleMidi).Methods("GET")
	router.HandleFunc("/analyse", handleAnalyse).Methods("POST")

	limit := constants.GetRateLimit()
	limiter := rate.NewLimiter(rate.Limit(limit), int(limit)+1)
	return cors.Default().Handler(rateLimit(limiter, router))
}

func serve() {
	addr := ":" + constants.GetPort()
	log.Printf("listening on %v", addr)
	log.Fatal(http.ListenAndServe(addr, NewRouter()))
}
