package ui

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"manydice/domain/core"
	"manydice/domain/randvar"
	"manydice/domain/space"
)

type errorResponse struct {
	Error string `json:"error"`
}

type rollResponse struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type pmfEntry struct {
	Value       int     `json:"value"`
	Probability float64 `json:"probability"`
}

type pmfResponse struct {
	Name string     `json:"name"`
	PMF  []pmfEntry `json:"pmf"`
}

type rollTogetherRequest struct {
	Names []string `json:"names"`
}

type rollTogetherResponse struct {
	Values map[string]int `json:"values"`
}

func (a *App) handleListDice(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"dice": a.names})
}

func (a *App) handleRoll(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	v, ok := a.lookup(name)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "unknown die: " + name})
		return
	}
	value, err := randvar.RollAlone(v)
	if err != nil {
		a.log.Error("roll of %s failed: %v", name, err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, rollResponse{Name: name, Value: value})
}

func (a *App) handlePMF(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	v, ok := a.lookup(name)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "unknown die: " + name})
		return
	}
	entries, err := a.pmfEntries(v)
	if err != nil {
		status := http.StatusInternalServerError
		if core.IsMeasureError(err) || errors.Is(err, core.ErrSpaceTooLarge) {
			status = http.StatusUnprocessableEntity
		}
		writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, pmfResponse{Name: name, PMF: entries})
}

func (a *App) handleRollTogether(w http.ResponseWriter, r *http.Request) {
	var req rollTogetherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	vars := make([]randvar.AnyVariable, 0, len(req.Names))
	for _, name := range req.Names {
		v, ok := a.lookup(name)
		if !ok {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "unknown die: " + name})
			return
		}
		vars = append(vars, v)
	}
	values, err := randvar.RollTogether(vars...)
	if err != nil {
		a.log.Error("joint roll failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	out := make(map[string]int, len(values))
	for i, name := range req.Names {
		out[name] = values[i].(int)
	}
	writeJSON(w, http.StatusOK, rollTogetherResponse{Values: out})
}

// pmfEntries computes the exact distribution of v as a value-sorted table,
// guarding against enumerations beyond the configured bound.
func (a *App) pmfEntries(v randvar.Variable[int]) ([]pmfEntry, error) {
	if spaceSize(v.Space()) > a.cfg.MaxEnumerate {
		return nil, core.ErrSpaceTooLarge
	}
	masses, err := randvar.PMF(v)
	if err != nil {
		return nil, err
	}
	entries := make([]pmfEntry, 0, len(masses))
	for value, p := range masses {
		entries = append(entries, pmfEntry{Value: value, Probability: float64(p)})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Value < entries[j].Value })
	return entries, nil
}

func spaceSize(s space.SampleSpace) int {
	size := 1
	for _, p := range s.Constituents() {
		size *= p.Size()
	}
	return size
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
