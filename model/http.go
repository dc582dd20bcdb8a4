package model

import (
	"github.com/jsphweid/harmonia/chord"
	"github.com/jsphweid/harmonia/format"
	"github.com/jsphweid/harmonia/key"
	"github.com/jsphweid/harmonia/progression"
)

type KeyResponse struct {
	Name    string   `json:"name"`
	Tonic   string   `json:"tonic"`
	Mode    string   `json:"mode"`
	Degrees []string `json:"degrees"`
}

type ChordResponse struct {
	Name         string   `json:"name"`
	Root         string   `json:"root"`
	Intervals    []string `json:"intervals"`
	Notes        []string `json:"notes"`
	PitchClasses []int    `json:"pitch_classes"`
}

type ProgressionResponse struct {
	Name  string `json:"name"`
	Steps string `json:"steps"`
}

// EvaluateRequestBody picks a progression by Name, or parses Steps when set.
type EvaluateRequestBody struct {
	Tonic string `json:"tonic"`
	Mode  string `json:"mode"`
	Name  string `json:"name"`
	Steps string `json:"steps"`
}

type EvaluateResponse struct {
	Key         KeyResponse     `json:"key"`
	Progression string          `json:"progression"`
	Chords      []ChordResponse `json:"chords"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}

func NewKeyResponse(k key.Key) KeyResponse {
	return KeyResponse{
		Name:    k.Name(),
		Tonic:   k.Tonic().Name(),
		Mode:    k.Mode().String(),
		Degrees: format.Names(k.AsSequence()),
	}
}

func NewChordResponse(c chord.Chord) ChordResponse {
	res := ChordResponse{
		Name:         c.Name(),
		Root:         c.Root().Name(),
		Notes:        format.Names(c.Notes()),
		PitchClasses: c.PitchClasses(),
	}
	for _, i := range c.Intervals() {
		res.Intervals = append(res.Intervals, i.String())
	}
	return res
}

func NewChordResponses(chords []chord.Chord) []ChordResponse {
	res := make([]ChordResponse, 0, len(chords))
	for _, c := range chords {
		res = append(res, NewChordResponse(c))
	}
	return res
}

func NewProgressionResponse(p progression.Progression) ProgressionResponse {
	return ProgressionResponse{Name: p.Name, Steps: p.String()}
}

func NewEvaluateResponse(k key.Key, p progression.Progression) EvaluateResponse {
	return EvaluateResponse{
		Key:         NewKeyResponse(k),
		Progression: p.String(),
		Chords:      NewChordResponses(p.Evaluate(k)),
	}
}
