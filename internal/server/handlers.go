package server

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/zephyrtronium/calculator"
)

// maxBodyBytes bounds the size of an evaluate request body.
const maxBodyBytes = 64 << 10

// EvaluateRequest is the body of an evaluate request.
type EvaluateRequest struct {
	Expression string `json:"expression"`
}

// EvaluateResponse is the body of a successful evaluate response. Value is
// omitted when the result is infinite or NaN, which JSON can't represent;
// Text always holds the formatted result.
type EvaluateResponse struct {
	Expression string   `json:"expression"`
	Value      *float64 `json:"value,omitempty"`
	Text       string   `json:"text"`
}

// Problem is the body of an error response.
type Problem struct {
	Title    string `json:"title"`
	Detail   string `json:"detail"`
	Status   int    `json:"status"`
	Position int    `json:"position,omitempty"`
}

// problems maps evaluation error kinds to response titles and statuses.
var problems = []struct {
	kind   error
	title  string
	status int
}{
	{calculator.ErrEmptyExpression, "Empty expression", http.StatusBadRequest},
	{calculator.ErrUnknownCharacter, "Unknown character", http.StatusBadRequest},
	{calculator.ErrUnknownFunction, "Unknown function", http.StatusBadRequest},
	{calculator.ErrInvalidNumber, "Invalid number", http.StatusBadRequest},
	{calculator.ErrMismatchedParentheses, "Mismatched parentheses", http.StatusBadRequest},
	{calculator.ErrInsufficientOperands, "Insufficient operands", http.StatusBadRequest},
	{calculator.ErrInsufficientArguments, "Insufficient arguments", http.StatusBadRequest},
	{calculator.ErrExtraOperands, "Extra operands", http.StatusBadRequest},
	{calculator.ErrMalformedPostfix, "Internal error", http.StatusInternalServerError},
}

func problemFor(err error) Problem {
	p := Problem{Title: "Internal error", Detail: err.Error(), Status: http.StatusInternalServerError}
	for _, k := range problems {
		if errors.Is(err, k.kind) {
			p.Title, p.Status = k.title, k.status
			break
		}
	}
	var ie calculator.InputError
	if errors.As(err, &ie) {
		p.Position = ie.Pos()
	}
	return p
}

func (s *Server) evaluate(w http.ResponseWriter, r *http.Request) {
	var req EvaluateRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		p := Problem{Title: "Invalid request", Detail: err.Error(), Status: http.StatusBadRequest}
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			p.Title, p.Status = "Request too large", http.StatusRequestEntityTooLarge
		}
		writeJSON(w, p.Status, p)
		return
	}

	v, err := calculator.EvalString(req.Expression)
	if err != nil {
		p := problemFor(err)
		level := s.logger.Debug
		if p.Status >= http.StatusInternalServerError {
			level = s.logger.Error
		}
		level("evaluation failed",
			"expression", req.Expression,
			"error", err,
			"request_id", middleware.GetReqID(r.Context()),
		)
		writeJSON(w, p.Status, p)
		return
	}

	resp := EvaluateResponse{
		Expression: req.Expression,
		Text:       strconv.FormatFloat(v, 'g', -1, 64),
	}
	if !math.IsInf(v, 0) && !math.IsNaN(v) {
		resp.Value = &v
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
