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
			name:    "keeps allowed flag with value",
			args:    []string{"-a", "http://localhost:8090", "-x", "junk"},
			allowed: []string{"-a"},
			want:    []string{"-a", "http://localhost:8090"},
		},
		{
			name:    "keeps equals form",
			args:    []string{"-a=http://localhost:8090", "-x=1"},
			allowed: []string{"-a"},
			want:    []string{"-a=http://localhost:8090"},
		},
		{
			name:    "drops unknown flags entirely",
			args:    []string{"-x", "1", "-y"},
			allowed: []string{"-a"},
			want:    []string{},
		},
		{
			name:    "bare flag before another flag keeps no value",
			args:    []string{"-v", "-a", "url"},
			allowed: []string{"-v", "-a"},
			want:    []string{"-v", "-a", "url"},
		},
		{
			name:    "empty input",
			args:    nil,
			allowed: []string{"-a"},
			want:    []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}
