package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlstyle/pkg/diag"
	"github.com/pseudomuto/sqlstyle/pkg/format"
)

const (
	errEmptySQL = "SQL to format must be a non-empty string."

	// maxEscape is the longest JSON escape of a single input byte (\u0000).
	maxEscape = 6
	// bodySlack covers the JSON envelope and the style overrides.
	bodySlack = 64 << 10
)

type (
	formatRequest struct {
		SQL   json.RawMessage `json:"sql"`
		Style json.RawMessage `json:"style"`
	}

	errorResponse struct {
		Error string `json:"error"`
	}
)

func (s *Server) formatSQL(w http.ResponseWriter, r *http.Request) {
	limit := int64(s.opts.Style.MaxInputBytes)*maxEscape + bodySlack
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}

		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	var req formatRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "request body must be a JSON object")
		return
	}

	var sql string
	if err := json.Unmarshal(req.SQL, &sql); err != nil || sql == "" {
		writeError(w, http.StatusBadRequest, errEmptySQL)
		return
	}

	cfg := s.opts.Style
	if len(req.Style) > 0 && !bytes.Equal(req.Style, []byte("null")) {
		if err := json.Unmarshal(req.Style, &cfg); err != nil {
			writeError(w, http.StatusBadRequest, errors.Wrap(err, "invalid style").Error())
			return
		}

		// requests may lower the ceilings, never raise them
		cfg.MaxInputBytes = min(cfg.MaxInputBytes, s.opts.Style.MaxInputBytes)
		cfg.MaxNestingDepth = min(cfg.MaxNestingDepth, s.opts.Style.MaxNestingDepth)
	}

	f, err := format.New(cfg)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	out, err := f.Format(sql)
	if err != nil {
		if errors.Is(err, format.ErrResourceExceeded) {
			writeError(w, http.StatusRequestEntityTooLarge, err.Error())
			return
		}

		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if out.Diagnostics == nil {
		out.Diagnostics = diag.List{}
	}

	writeJSON(w, http.StatusOK, out)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
