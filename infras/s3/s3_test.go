package s3_test

import (
	"hotel/config"
	"hotel/infras/otel/mocks"
	"hotel/infras/s3"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestS3_ObjectKeyFromURL(t *testing.T) {
	cfg := &config.Config{}
	cfg.External.S3.PublicDomain = "https://cdn.hotel.test/"
	cfg.External.S3.Region = "auto"

	svc := s3.New(cfg, mocks.NewOtel())

	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{name: "public object", url: "https://cdn.hotel.test/room/3f2a.png", expected: "room/3f2a.png"},
		{name: "foreign domain", url: "https://elsewhere.test/room/3f2a.png", expected: ""},
		{name: "empty", url: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, svc.ObjectKeyFromURL(tt.url))
		})
	}
}
