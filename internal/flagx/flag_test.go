package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-a", ":8080", "-x", "noise"},
			allowed: []string{"-a"},
			want:    []string{"-a", ":8080"},
		},
		{
			name:    "equals form",
			args:    []string{"--config=conf.json", "-d", "dsn"},
			allowed: []string{"--config", "-d"},
			want:    []string{"--config=conf.json", "-d", "dsn"},
		},
		{
			name:    "flag without value followed by another flag",
			args:    []string{"-v", "-a", ":9090"},
			allowed: []string{"-v"},
			want:    []string{"-v"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-a", "x"},
			allowed: nil,
			want:    []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}
