// Package server exposes the collection as the /animes HTTP resource that the
// remote substrate consumes.
package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/anikeep/anikeep/internal/domain"
)

type Server struct {
	log   zerolog.Logger
	store domain.EntryStore
}

func New(log zerolog.Logger, store domain.EntryStore) *Server {
	return &Server{
		log:   log.With().Str("module", "server").Logger(),
		store: store,
	}
}

// Router builds the gin engine with all collection routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/animes", s.list)
	r.POST("/animes", s.create)
	r.GET("/animes/:id", s.getOne)
	r.PUT("/animes/:id", s.update)
	r.DELETE("/animes/:id", s.remove)

	return r
}

// Run serves the collection on addr until the listener fails.
func (s *Server) Run(addr string) error {
	s.log.Info().Str("addr", addr).Msg("serving collection")
	return s.Router().Run(addr)
}

func (s *Server) list(c *gin.Context) {
	entries, err := s.store.List(c.Request.Context())
	if err != nil {
		s.log.Error().Err(err).Msg("list failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

func (s *Server) create(c *gin.Context) {
	var entry domain.Entry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	created, err := s.store.Create(c.Request.Context(), entry)
	if err != nil {
		s.log.Error().Err(err).Msg("create failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (s *Server) getOne(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	entry, err := s.store.Get(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, err, "get failed")
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (s *Server) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var entry domain.Entry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	// The member URL is authoritative for the id.
	entry.ID = id

	updated, err := s.store.Update(c.Request.Context(), entry)
	if err != nil {
		s.respondError(c, err, "update failed")
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (s *Server) remove(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	// Reject unknown ids so remote clients see the miss; the local substrate
	// alone is forgiving about absent ids.
	if _, err := s.store.Get(c.Request.Context(), id); err != nil {
		s.respondError(c, err, "delete failed")
		return
	}

	if err := s.store.Delete(c.Request.Context(), id); err != nil {
		s.respondError(c, err, "delete failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

func (s *Server) respondError(c *gin.Context, err error, fallback string) {
	var notFound *domain.NotFoundError
	if errors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	s.log.Error().Err(err).Msg(fallback)
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
