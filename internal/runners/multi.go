// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package runners

import (
	"sync"

	"github.com/portalconv/portalconv/internal/report"
	"github.com/portalconv/portalconv/internal/scene"
	"github.com/portalconv/portalconv/internal/terrain"
)

// MapJob is one map/terrain pair to convert as part of a multi-map bundle
// (§6 "multi-experience --maps <csv>").
type MapJob struct {
	SourceDir   string
	MapName     string
	BaseTerrain string
	Terrain     *terrain.TargetTerrain
}

// MapResult is one job's outcome: either a Scene and Report, or an Err
// naming why that map failed. A failed map does not abort the others —
// the bundle command decides whether a partial bundle is acceptable.
type MapResult struct {
	Job    MapJob
	Scene  *scene.Scene
	Report *report.Report
	Err    error
}

// ConvertMany runs p.Convert for every job, in parallel, bounded to
// workers concurrent conversions (§5). Results are returned in the same
// order as jobs regardless of completion order, so callers can build a
// deterministic mapRotation. All workers share p's Catalog, and jobs that
// name the same base terrain may share one *terrain.TargetTerrain; Convert
// only reads both, and each job parses its own SourceMap.
func (p *Pipeline) ConvertMany(jobs []MapJob, workers int) []MapResult {
	if workers < 1 {
		workers = 1
	}
	results := make([]MapResult, len(jobs))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, job := range jobs {
		wg.Add(1)
		go func(i int, job MapJob) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			sc, rep, err := p.Convert(job.SourceDir, job.MapName, job.Terrain)
			results[i] = MapResult{Job: job, Scene: sc, Report: rep, Err: err}
		}(i, job)
	}

	wg.Wait()
	return results
}
