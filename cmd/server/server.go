package main

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"

	"github.com/mrsobakin/battleships/internal/game/field"
	"github.com/mrsobakin/battleships/internal/game/fleet"
	"github.com/mrsobakin/battleships/internal/game/placement"
)

const (
	ErrBadFormat   string = "bad_format"
	ErrBadFleet    string = "bad_fleet"
	ErrUnplaceable string = "unplaceable"
	ErrUnknown     string = "unknown"
	ErrTimeout     string = "timeout"
	ErrNotFound    string = "not_found"
)

var (
	errPlacementTimeout error = errors.New("placement timeout")
	errNoFleet          error = errors.New("either fleet or ships must be given")
	errEmptyLayout      error = errors.New("layout has no ships")
)

type server struct {
	placer           placement.Placer
	placementTimeout time.Duration
	jobs             *semaphore.Weighted
	log              zerolog.Logger
}

type attackParams struct {
	Board  field.Board    `json:"board"`
	Target field.Location `json:"target"`
}

func (s *server) handleRandomBoard(c *gin.Context) {
	var params struct {
		Size  int          `json:"size" binding:"required,min=1,max=1000"`
		Fleet string       `json:"fleet"`
		Ships []field.Ship `json:"ships"`
		Seed  [2]uint64    `json:"seed"`
	}

	if !tryBindParams(c, &params) {
		return
	}

	ships := params.Ships
	if params.Fleet != "" {
		var err error
		if ships, err = fleet.ByName(params.Fleet); err != nil {
			abortWith(c, 422, ErrBadFleet, err)
			return
		}
	} else if len(ships) == 0 {
		abortWith(c, 422, ErrBadFleet, errNoFleet)
		return
	}

	if err := checkShipSizes(params.Size, ships); err != nil {
		abortWith(c, 422, ErrBadFleet, err)
		return
	}

	if err := s.jobs.Acquire(c, 1); err != nil {
		return
	}
	defer s.jobs.Release(1)

	timeoutCtx, cancel := context.WithTimeoutCause(c.Request.Context(), s.placementTimeout, errPlacementTimeout)
	defer cancel()

	src := placement.NewPCG(params.Seed[0], params.Seed[1])
	board, err := s.placer.Place(timeoutCtx, params.Size, ships, src)

	if err == nil {
		c.JSON(200, board)
		return
	}

	s.log.Warn().
		Err(err).
		Int("size", params.Size).
		Str("fleet", params.Fleet).
		Int("ships", len(ships)).
		Msg("placement failed")

	if errors.Is(err, placement.ErrUnplaceable) {
		abortWith(c, 409, ErrUnplaceable, err)
	} else if errors.Is(err, errPlacementTimeout) {
		abortWith(c, 408, ErrTimeout, err)
	} else {
		abortWith(c, 500, ErrUnknown, err)
	}
}

func (s *server) handleLayout(c *gin.Context) {
	var params struct {
		Size   int    `json:"size" binding:"required,min=1,max=1000"`
		Layout string `json:"layout" binding:"required"`
	}

	if !tryBindParams(c, &params) {
		return
	}

	ships := slices.Collect(fleet.Parse(strings.NewReader(params.Layout)))
	if len(ships) == 0 {
		abortWith(c, 422, ErrBadFleet, errEmptyLayout)
		return
	}

	if err := checkShipSizes(params.Size, ships); err != nil {
		abortWith(c, 422, ErrBadFleet, err)
		return
	}

	for i, ship := range ships {
		if !field.IsValidPosition(params.Size, ships[:i], ship) {
			abortWith(c, 422, ErrBadFleet, fmt.Errorf("%q at %s is off the board or crosses another ship", ship.Name, ship.Location))
			return
		}
	}

	c.JSON(200, field.NewBoard(params.Size, ships))
}

func (s *server) handleMissile(c *gin.Context) {
	var params attackParams
	if !tryBindParams(c, &params) {
		return
	}

	c.JSON(200, params.Board.FireMissile(params.Target))
}

func (s *server) handleBomb(c *gin.Context) {
	var params attackParams
	if !tryBindParams(c, &params) {
		return
	}

	c.JSON(200, params.Board.FireBomb(params.Target))
}

func (s *server) handleSquare(c *gin.Context) {
	var params attackParams
	if !tryBindParams(c, &params) {
		return
	}

	c.JSON(200, map[string]any{
		"square":   params.Board.ReadSquare(params.Target),
		"all_sunk": params.Board.AllSunk(),
	})
}

func (s *server) handleFleets(c *gin.Context) {
	c.JSON(200, fleet.Names())
}

func (s *server) handleFleet(c *gin.Context) {
	ships, err := fleet.ByName(c.Param("name"))
	if err != nil {
		abortWith(c, 404, ErrNotFound, err)
		return
	}

	c.JSON(200, ships)
}

func checkShipSizes(boardSize int, ships []field.Ship) error {
	for _, ship := range ships {
		if ship.Size <= 0 || ship.Size > boardSize {
			return fmt.Errorf("size of %q must be within 1..%d, got %d", ship.Name, boardSize, ship.Size)
		}
	}
	return nil
}

func (s *server) RegisterEndpoints(e *gin.Engine) {
	e.POST("/boards", s.handleLayout)
	e.POST("/boards/random", s.handleRandomBoard)
	e.POST("/missile", s.handleMissile)
	e.POST("/bomb", s.handleBomb)
	e.POST("/square", s.handleSquare)
	e.GET("/fleets", s.handleFleets)
	e.GET("/fleets/:name", s.handleFleet)
}
