package infoserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetSunInfo returns the star's description
func GetSunInfo(c *gin.Context) {
	c.JSON(http.StatusOK, sun)
}

// GetPlanetInfo returns one planet by name. Unknown names get an empty
// object, which clients read as "not found".
func (s *Server) GetPlanetInfo(c *gin.Context) {
	planet, ok := LookupPlanet(c.Param("name"))
	if !ok {
		s.metrics.unknownBodies.Inc()
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, planet)
}

// GetPlanets returns all planets in orbital order
func GetPlanets(c *gin.Context) {
	list := Planets()
	c.JSON(http.StatusOK, gin.H{
		"data":  list,
		"count": len(list),
	})
}
