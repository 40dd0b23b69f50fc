package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Conceptual-Machines/scales-api/internal/catalog"
	"github.com/Conceptual-Machines/scales-api/internal/logger"
	"github.com/Conceptual-Machines/scales-api/internal/metrics"
	"github.com/Conceptual-Machines/scales-api/internal/models"
	"github.com/Conceptual-Machines/scales-api/internal/theory"
)

const customScaleType = "custom"

// ErrStartMismatch is returned when a start note names a different pitch
// class than the scale root
var ErrStartMismatch = errors.New("start note does not match scale root")

// ScaleService builds scale responses on top of the theory package.
// It holds no mutable state, so one instance serves all requests.
type ScaleService struct {
	catalog       *catalog.Catalog
	recorder      metrics.Recorder
	defaultOctave int
}

func NewScaleService(cat *catalog.Catalog, recorder metrics.Recorder, defaultOctave int) *ScaleService {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &ScaleService{
		catalog:       cat,
		recorder:      recorder,
		defaultOctave: defaultOctave,
	}
}

// Generate builds a built-in scale or mode
func (s *ScaleService) Generate(ctx context.Context, req models.ScaleRequest) (*models.ScaleResponse, error) {
	start := time.Now()

	resp, err := s.generate(req)

	// keep metric dimensions bounded to known types
	scaleType := "unknown"
	if def, lookupErr := theory.LookupScale(req.Type); lookupErr == nil {
		scaleType = string(def.Type)
	}
	s.record(ctx, req.Root, scaleType, start, err)
	return resp, err
}

func (s *ScaleService) generate(req models.ScaleRequest) (*models.ScaleResponse, error) {
	def, err := theory.LookupScale(req.Type)
	if err != nil {
		return nil, err
	}
	scale, err := theory.BuildFromDefinition(req.Root, def)
	if err != nil {
		return nil, err
	}
	return s.respond(scale, string(def.Type), req.Octave, req.Start, req.Direction)
}

// GenerateCustom builds a scale from caller-supplied semitone steps
func (s *ScaleService) GenerateCustom(ctx context.Context, req models.CustomScaleRequest) (*models.ScaleResponse, error) {
	start := time.Now()

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = customScaleType
	}
	def := theory.Definition{
		Type:    customScaleType,
		Name:    name,
		Family:  theory.FamilyScale,
		Pattern: theory.Pattern(req.Steps),
	}

	var resp *models.ScaleResponse
	scale, err := theory.BuildFromDefinition(req.Root, def)
	if err == nil {
		resp, err = s.respond(scale, customScaleType, req.Octave, req.Start, req.Direction)
	}
	s.record(ctx, req.Root, customScaleType, start, err)
	return resp, err
}

func (s *ScaleService) respond(scale theory.Scale, scaleType string, octave *int, start, direction string) (*models.ScaleResponse, error) {
	startOctave, err := s.startOctave(scale, octave, start)
	if err != nil {
		return nil, err
	}

	dir, err := theory.ParseDirection(direction)
	if err != nil {
		return nil, err
	}
	pitches, err := theory.AssignOctaves(scale, startOctave)
	if err != nil {
		return nil, err
	}
	events, err := theory.PlaybackEvents(pitches, theory.PlaybackOptions{Direction: dir})
	if err != nil {
		return nil, err
	}

	infos := make([]models.PitchInfo, len(pitches))
	for i, p := range pitches {
		infos[i] = models.PitchInfo{
			Name:       p.Name,
			Octave:     p.Octave,
			Scientific: p.Scientific(),
			MIDI:       p.MIDI,
			Interval:   theory.Distance(pitches[0].Class, p.Class),
		}
	}

	return &models.ScaleResponse{
		Root:    scale.Root,
		Type:    scaleType,
		Name:    scale.Definition.Name,
		Family:  string(scale.Definition.Family),
		Steps:   append([]int(nil), scale.Definition.Pattern...),
		Notes:   scale.Notes,
		Display: scale.Display(),
		Pitches: infos,
		Events:  events,
	}, nil
}

// startOctave picks the octave of the root: a start note such as "Bb3" wins,
// then an explicit octave, then the configured default
func (s *ScaleService) startOctave(scale theory.Scale, octave *int, start string) (int, error) {
	if strings.TrimSpace(start) != "" {
		p, err := theory.ParseScientific(start)
		if err != nil {
			return 0, err
		}
		if len(scale.Classes) == 0 || p.Class != scale.Classes[0] {
			return 0, fmt.Errorf("%w: %s is not %s", ErrStartMismatch, p.Scientific(), scale.Root)
		}
		return p.Octave, nil
	}
	if octave != nil {
		return *octave, nil
	}
	return s.defaultOctave, nil
}

// ListScales returns every built-in definition with its catalog description
func (s *ScaleService) ListScales() models.ScaleListResponse {
	defs := theory.Definitions()
	out := make([]models.ScaleTypeInfo, 0, len(defs))
	for _, def := range defs {
		info := models.ScaleTypeInfo{
			Type:   string(def.Type),
			Name:   def.Name,
			Family: string(def.Family),
			Steps:  def.Pattern,
		}
		if s.catalog != nil {
			if entry, ok := s.catalog.Describe(def.Type); ok {
				info.Description = entry.Description
				info.Character = strings.Join(entry.Character, ", ")
			}
		}
		out = append(out, info)
	}
	return models.ScaleListResponse{Scales: out, Count: len(out)}
}

// ParseDisplay splits a legacy display string into header and notes
func (s *ScaleService) ParseDisplay(req models.ParseDisplayRequest) (*models.ParseDisplayResponse, error) {
	header, notes, err := theory.ParseDisplay(req.Display)
	if err != nil {
		return nil, err
	}
	return &models.ParseDisplayResponse{Header: header, Notes: notes}, nil
}

func (s *ScaleService) record(ctx context.Context, root, scaleType string, start time.Time, err error) {
	duration := time.Since(start)
	s.recorder.RecordScaleGeneration(ctx, scaleType, err == nil, duration)
	logger.LogScaleRequest(root, scaleType, duration, err, nil)
}
