package careplan

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

const defaultBatchConcurrency = 8

// BatchResult es el resultado de un animal dentro de un lote.
// Err != nil => el animal se salteó; el resto del lote sigue.
type BatchResult struct {
	Result
	Err error
}

type BatchRunner struct {
	svc         *Service
	concurrency int
}

func NewBatchRunner(svc *Service, concurrency int) *BatchRunner {
	if concurrency <= 0 {
		concurrency = defaultBatchConcurrency
	}
	return &BatchRunner{svc: svc, concurrency: concurrency}
}

// Run arma un calendario por animal, en paralelo. Cada goroutine tiene su
// propio conjunto de candidatas y su propio conteo por día. Los resultados
// vuelven en el mismo orden que inputs.
func (b *BatchRunner) Run(ctx context.Context, inputs []RawAnimal, ref time.Time, horizonCycles int) []BatchResult {
	out := make([]BatchResult, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)

	for i, raw := range inputs {
		g.Go(func() error {
			out[i] = b.one(gctx, raw, ref, horizonCycles)
			return nil
		})
	}
	_ = g.Wait()

	return out
}

func (b *BatchRunner) one(ctx context.Context, raw RawAnimal, ref time.Time, horizonCycles int) BatchResult {
	if err := ctx.Err(); err != nil {
		return skipped(raw.ID, err)
	}

	p, err := ParseProfile(raw)
	if err != nil {
		b.svc.log.Warn("animal skipped", map[string]any{
			"animal_id": raw.ID,
			"err":       err,
		})
		return skipped(raw.ID, err)
	}

	res, err := b.svc.Build(ctx, p, ref, horizonCycles)
	if err != nil {
		b.svc.log.Warn("animal skipped", map[string]any{
			"animal_id": raw.ID,
			"err":       err,
		})
		return skipped(raw.ID, err)
	}
	return BatchResult{Result: res}
}

func skipped(animalID string, err error) BatchResult {
	return BatchResult{
		Result: Result{
			AnimalID: animalID,
			Warnings: []Warning{{
				Code:     WarningInvalidInput,
				AnimalID: animalID,
				Message:  err.Error(),
			}},
		},
		Err: err,
	}
}
