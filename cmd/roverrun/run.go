package main

import (
	"context"
	"fmt"

	"github.com/katalvlaran/roverrun/internal/ctxlog"
	"github.com/katalvlaran/roverrun/mapfile"
	"github.com/katalvlaran/roverrun/mission"
	"github.com/katalvlaran/roverrun/render"
	"github.com/katalvlaran/roverrun/rover"
)

func (a *app) runCosts(ctx context.Context, mapPath string) error {
	res, err := mapfile.LoadAndCompute(ctx, mapPath)
	if err != nil {
		return err
	}
	printHeader(a.out, res)
	return render.Costs(a.out, res.Grid)
}

func (a *app) runShow(ctx context.Context, mapPath string) error {
	res, err := mapfile.LoadAndCompute(ctx, mapPath)
	if err != nil {
		return err
	}
	printHeader(a.out, res)
	if err := render.Soils(a.out, res.Grid, render.Options{Colour: a.cfg.Render.Colour}); err != nil {
		return err
	}
	if a.cfg.Render.Codes {
		fmt.Fprintln(a.out)
		if err := render.Codes(a.out, res.Grid); err != nil {
			return err
		}
	}
	if a.cfg.Render.Costs {
		fmt.Fprintln(a.out)
		if err := render.Costs(a.out, res.Grid); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) runDrive(ctx context.Context, mapPath, missionPath string) error {
	logger := ctxlog.FromContext(ctx)

	res, err := mapfile.LoadAndCompute(ctx, mapPath)
	if err != nil {
		return err
	}
	m, err := mission.Load(missionPath, res.Grid)
	if err != nil {
		return err
	}
	logger.Debug("Mission loaded.", "name", m.Name, "start", m.Start.String(), "moves", len(m.Moves))

	printHeader(a.out, res)
	tr, err := rover.Replay(res.Grid, m.Start, m.Moves)
	if tr != nil {
		printTrace(a.out, m, tr)
	}
	if err != nil {
		return fmt.Errorf("mission %q: %w", m.Name, err)
	}
	return nil
}
