package detector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.trai.ch/cradle/internal/adapters/detector"
)

func TestDetectEnvironment_CI(t *testing.T) {
	t.Setenv("CI", "true")

	assert.Equal(t, detector.FormatJSON, detector.DetectEnvironment())
}

func TestDetectEnvironment_NonTTY(t *testing.T) {
	t.Setenv("CI", "")

	// Test processes never run with a terminal on stderr.
	assert.Equal(t, detector.FormatJSON, detector.DetectEnvironment())
}

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		name     string
		detected detector.LogFormat
		userFlag string
		want     detector.LogFormat
	}{
		{name: "pretty override", detected: detector.FormatJSON, userFlag: "pretty", want: detector.FormatPretty},
		{name: "json override", detected: detector.FormatPretty, userFlag: "json", want: detector.FormatJSON},
		{name: "auto keeps detection", detected: detector.FormatPretty, userFlag: "auto", want: detector.FormatPretty},
		{name: "empty keeps detection", detected: detector.FormatJSON, userFlag: "", want: detector.FormatJSON},
		{name: "unknown keeps detection", detected: detector.FormatJSON, userFlag: "bogus", want: detector.FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detector.ResolveFormat(tt.detected, tt.userFlag))
		})
	}
}
