package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (b *Builder) CacheStats(ec echo.Context) error {
	stats := b.compliance.CacheStats()
	result := CacheOutput{
		Entries: make([]CacheEntry, 0, len(stats)),
	}
	for _, stat := range stats {
		result.Entries = append(result.Entries, CacheEntry{
			Source:    stat.Key,
			Age:       stat.Age.Seconds(),
			Remaining: stat.Remaining.Seconds(),
			Expired:   stat.Expired,
		})
	}
	return ec.JSON(http.StatusOK, result)
}

func (b *Builder) InvalidateCache(ec echo.Context) error {
	b.compliance.Invalidate()
	return ec.JSON(http.StatusOK, NewResponse("cache invalidated"))
}
