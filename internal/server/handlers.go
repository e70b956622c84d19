package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/getsentry/sentry-go"

	"github.com/cbegin/stan-go/internal/config"
	"github.com/cbegin/stan-go/internal/lilypond"
	"github.com/cbegin/stan-go/internal/notation"
	"github.com/cbegin/stan-go/internal/render"
	"github.com/cbegin/stan-go/internal/timeline"
)

type ParseRequest struct {
	Input  string `json:"input"`
	Format string `json:"format,omitempty"`
}

type Event struct {
	Kind    string   `json:"kind"`
	Onset   string   `json:"onset"`
	Length  string   `json:"length"`
	Pitches []string `json:"pitches,omitempty"`
	Depth   int      `json:"depth"`
}

type ParseResponse struct {
	ID       string  `json:"id"`
	Kind     string  `json:"kind"`
	Rendered string  `json:"rendered"`
	Duration string  `json:"duration"`
	Events   []Event `json:"events"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	ID     string `json:"id,omitempty"`
	Detail string `json:"detail"`
	Kind   string `json:"kind,omitempty"`
	Pos    *int   `json:"pos,omitempty"`
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	id := RequestID(r.Context())

	var req ParseRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{ID: id, Detail: fmt.Sprintf("invalid request body: %v", err)})
		return
	}
	if req.Format == "" {
		req.Format = config.FormatDebug
	}
	if req.Format != config.FormatDebug && req.Format != config.FormatLily {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{ID: id, Detail: fmt.Sprintf("unknown format %q", req.Format)})
		return
	}

	span := sentry.StartSpan(r.Context(), "stan.parse")
	span.SetData("input_bytes", len(req.Input))
	col, err := s.parser.Parse(req.Input)
	if err != nil {
		span.Status = sentry.SpanStatusInvalidArgument
		span.Finish()
		resp := ErrorResponse{ID: id, Detail: err.Error(), Kind: lilypond.Code(err)}
		var pe *lilypond.ParseError
		if errors.As(err, &pe) {
			pos := pe.Pos
			resp.Pos = &pos
		}
		writeJSON(w, http.StatusUnprocessableEntity, resp)
		return
	}
	span.Status = sentry.SpanStatusOK
	span.Finish()

	rendered := render.Column(col)
	if req.Format == config.FormatLily {
		rendered = render.LilyOctave(col, s.parser.Config().DefaultOctave)
	}
	tl, err := timeline.New(col)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{ID: id, Detail: err.Error(), Kind: lilypond.Code(err)})
		return
	}
	events := make([]Event, 0, tl.Len())
	for _, ev := range tl.Events() {
		out := Event{
			Kind:   ev.Kind.String(),
			Onset:  ev.Onset.String(),
			Length: ev.Length.String(),
			Depth:  ev.Depth,
		}
		for _, p := range ev.Pitches {
			out.Pitches = append(out.Pitches, render.Pitch(p))
		}
		events = append(events, out)
	}

	writeJSON(w, http.StatusOK, ParseResponse{
		ID:       id,
		Kind:     col.Kind().String(),
		Rendered: rendered,
		Duration: notation.DurationOf(col).String(),
		Events:   events,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
