package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"scholarhub/docs"
	"scholarhub/internal/config"
)

func TestSwaggerHost(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"", ""},
		{"api.scholarhub.dev", "api.scholarhub.dev"},
		{"https://api.scholarhub.dev/", "api.scholarhub.dev"},
		{"http://localhost:8080", "localhost:8080"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, swaggerHost(tt.raw), tt.raw)
	}
}

func TestSwaggerURL(t *testing.T) {
	assert.Equal(t, "http://localhost:5000/swagger/index.html",
		swaggerURL(&config.Config{ServerPort: "5000"}))
	assert.Equal(t, "https://api.scholarhub.dev/swagger/index.html",
		swaggerURL(&config.Config{SwaggerHost: "https://api.scholarhub.dev/"}))
	assert.Equal(t, "http://api.scholarhub.dev/swagger/index.html",
		swaggerURL(&config.Config{SwaggerHost: "api.scholarhub.dev"}))
}

func TestConfigureSwagger(t *testing.T) {
	original := docs.SwaggerInfo.Host
	t.Cleanup(func() { docs.SwaggerInfo.Host = original })

	configureSwagger("")
	assert.Equal(t, "localhost:5000", docs.SwaggerInfo.Host)

	configureSwagger("https://api.scholarhub.dev")
	assert.Equal(t, "api.scholarhub.dev", docs.SwaggerInfo.Host)
	assert.Contains(t, docs.SwaggerInfo.ReadDoc(), `"host": "api.scholarhub.dev"`)
}
