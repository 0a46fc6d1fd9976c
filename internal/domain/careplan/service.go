package careplan

import (
	"context"
	"time"

	"pet-preventive-care/internal/platform/logger"
)

// ProfileSource entrega el snapshot de un animal guardado.
// Lo implementa animals.Service; se define acá para evitar ciclos de imports.
type ProfileSource interface {
	Profile(ctx context.Context, animalID string) (AnimalProfile, error)
}

type Service struct {
	engine   *Engine
	profiles ProfileSource
	log      logger.Logger

	defaultHorizon int
	previewLimit   int

	// now solo se usa en el borde HTTP cuando no viene reference_time.
	now func() time.Time
}

type ServiceOptions struct {
	Profiles       ProfileSource // puede ser nil si solo se usan perfiles ad-hoc
	Logger         logger.Logger
	DefaultHorizon int
	PreviewLimit   int
}

func NewService(engine *Engine, opts ServiceOptions) *Service {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	horizon := opts.DefaultHorizon
	if horizon <= 0 {
		horizon = DefaultHorizonCycles
	}
	return &Service{
		engine:         engine,
		profiles:       opts.Profiles,
		log:            log.With(map[string]any{"component": "careplan"}),
		defaultHorizon: horizon,
		previewLimit:   opts.PreviewLimit,
		now:            time.Now,
	}
}

func (s *Service) Engine() *Engine { return s.engine }

func (s *Service) PreviewLimit() int { return s.previewLimit }

// Build arma el calendario de un perfil ad-hoc y registra los warnings.
func (s *Service) Build(ctx context.Context, animal AnimalProfile, ref time.Time, horizonCycles int) (Result, error) {
	if horizonCycles <= 0 {
		horizonCycles = s.defaultHorizon
	}

	res, err := s.engine.Build(animal, ref, horizonCycles)
	if err != nil {
		return res, err
	}

	for _, w := range res.Warnings {
		fields := map[string]any{
			"animal_id": w.AnimalID,
			"item":      w.Item,
			"code":      string(w.Code),
		}
		if w.Date != nil {
			fields["candidate_date"] = w.Date.Format(DateLayout)
		}
		s.log.Warn("scheduling overflow", fields)
	}

	s.log.Debug("schedule built", map[string]any{
		"animal_id": res.AnimalID,
		"species":   string(animal.Species),
		"events":    len(res.Events),
		"warnings":  len(res.Warnings),
		"horizon":   horizonCycles,
	})
	return res, nil
}

// ScheduleFor carga el animal del store externo y arma su calendario.
func (s *Service) ScheduleFor(ctx context.Context, animalID string, ref time.Time, horizonCycles int) (Result, error) {
	if s.profiles == nil {
		return Result{AnimalID: animalID}, ErrInvalidInput
	}
	p, err := s.profiles.Profile(ctx, animalID)
	if err != nil {
		return Result{AnimalID: animalID}, err
	}
	return s.Build(ctx, p, ref, horizonCycles)
}
