package main

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.DebugLevel)

	router := gin.New()
	router.Use(requestLogger(zap.New(core)))
	router.GET("/api/subjects/:subjectID/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/api/subjects/:subjectID/missing", func(c *gin.Context) { apiError(c, http.StatusNotFound, "nope") })
	router.GET("/boom", func(c *gin.Context) { apiError(c, http.StatusInternalServerError, "boom") })

	doRequest(router, "GET", "/api/subjects/s1/ok", "")
	doRequest(router, "GET", "/api/subjects/s1/missing", "")
	doRequest(router, "GET", "/boom", "")

	entries := logs.All()
	require.Len(t, entries, 3)

	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	fields := entries[0].ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/api/subjects/:subjectID/ok", fields["path"])
	assert.Equal(t, int64(http.StatusOK), fields["status"])
	assert.Equal(t, "s1", fields["subject_id"])

	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	_, hasSubject := entries[2].ContextMap()["subject_id"]
	assert.False(t, hasSubject)
}
