package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/casetrail/casetrail-backend/usecases"
)

func handleLivenessProbe(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		usecase := uc.NewLivenessUsecase()
		err := usecase.Liveness(c.Request.Context())
		if presentError(c.Request.Context(), c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	}
}

func handleHealth(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		usecase := uc.NewHealthUsecase()
		health := usecase.GetHealthStatus(c.Request.Context())

		status := http.StatusOK
		if !health.IsHealthy() {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, health)
	}
}

func handleVersion(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		usecase := uc.NewVersionUsecase()
		c.JSON(http.StatusOK, gin.H{
			"version": usecase.ApiVersion,
		})
	}
}
