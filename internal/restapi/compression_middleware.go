package restapi

import (
	"net/http"

	"github.com/klauspost/compress/gzhttp"
)

// CompressionConfig holds configuration options for response compression
type CompressionConfig struct {
	// MinSize is the minimum response size in bytes to compress
	MinSize int
	// Level is the gzip compression level, 1-9
	Level int
}

// compressibleTypes are the content types that get gzipped.
var compressibleTypes = []string{
	"application/json",
	"text/html",
	"text/css",
	"text/javascript",
	"application/javascript",
	"image/svg+xml",
}

// DefaultCompressionConfig returns the settings used by Handler.
func DefaultCompressionConfig() CompressionConfig {
	return CompressionConfig{
		MinSize: 1024,
		Level:   6,
	}
}

// NewCompressionMiddleware gzips JSON, HTML, script and SVG responses larger than MinSize
func NewCompressionMiddleware(config CompressionConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		wrapper, err := gzhttp.NewWrapper(
			gzhttp.MinSize(config.MinSize),
			gzhttp.CompressionLevel(config.Level),
			gzhttp.ContentTypes(compressibleTypes),
		)
		if err != nil {
			return gzhttp.GzipHandler(next)
		}
		return wrapper(next)
	}
}
