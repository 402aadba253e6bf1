// SPDX-License-Identifier: MIT

package server

import (
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/labyrinth/config"
	"github.com/katalvlaran/labyrinth/generate"
	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/solve"
)

// Controller registers a group of routes.
type Controller interface {
	Register(route *gin.RouterGroup)
}

// MazeController serves maze generation.
type MazeController struct {
	cfg    config.Config
	logger logrus.FieldLogger

	mu  sync.Mutex // guards rng; handlers run concurrently
	rng *rand.Rand
}

// NewMazeController returns a MazeController using cfg for defaults and
// limits.
func NewMazeController(cfg config.Config, logger logrus.FieldLogger) *MazeController {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &MazeController{
		cfg:    cfg,
		logger: logger,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// nextSeed draws a fresh generation seed.
func (mc *MazeController) nextSeed() int64 {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	return mc.rng.Int63()
}

// Register registers the maze routes.
func (mc *MazeController) Register(route *gin.RouterGroup) {
	route.GET("/algorithms", mc.algorithms)
	route.GET("/mazes", mc.generate)
}

// algorithms lists generator names.
func (mc *MazeController) algorithms(ctx *gin.Context) {
	var resp AlgorithmsResponse
	for _, a := range generate.Algorithms() {
		resp.Algorithms = append(resp.Algorithms, a.String())
	}
	ctx.JSON(http.StatusOK, resp)
}

// generate builds, and optionally solves, one maze.
func (mc *MazeController) generate(ctx *gin.Context) {
	var req MazeRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	width, height := mc.cfg.Width, mc.cfg.Height
	if req.Width != 0 {
		width = req.Width
	}
	if req.Height != 0 {
		height = req.Height
	}
	if err := mc.cfg.CheckDimensions(width, height); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	alg := mc.cfg.Algorithm
	if req.Algorithm != "" {
		var err error
		if alg, err = generate.ParseAlgorithm(req.Algorithm); err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
	}

	seed := mc.nextSeed()
	if req.Seed != nil {
		seed = *req.Seed
	}

	log := mc.logger.WithFields(logrus.Fields{
		"request_id": ctx.GetString(requestIDKey),
		"algorithm":  alg.String(),
		"width":      width,
		"height":     height,
		"seed":       seed,
	})

	gen, err := generate.New(alg, generate.WithSeed(seed), generate.WithLogger(mc.logger))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	m, err := maze.New(width, height, gen)
	if err != nil {
		log.WithError(err).Error("maze generation failed")
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "maze generation failed"})
		return
	}

	resp := MazeResponse{
		ID:        uuid.New(),
		Width:     width,
		Height:    height,
		Algorithm: alg.String(),
		Seed:      seed,
	}
	var path []*grid.Cell
	if req.Solve {
		if path, err = solve.Solve(m); err != nil {
			log.WithError(err).Error("maze solving failed")
			ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "maze solving failed"})
			return
		}
		resp.Solution = make([]grid.Position, len(path))
		for i, c := range path {
			resp.Solution[i] = c.Position()
		}
	}
	resp.Maze = m.Render(path)

	log.WithField("id", resp.ID.String()).Info("maze generated")
	ctx.JSON(http.StatusOK, resp)
}
