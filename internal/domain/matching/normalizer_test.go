package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSkill(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"js", "JavaScript"},
		{"JavaScript", "JavaScript"},
		{"  Postgres ", "PostgreSQL"},
		{"reactjs", "React"},
		{"Node JS", "Node.js"},
		{"k8s", "Kubernetes"},
		{"event sourcing", "Event Sourcing"},
		{"gRAPH thEORY", "Graph Theory"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeSkill(tt.in))
		})
	}
}

func TestNormalizeSkill_SynonymRoundTrip(t *testing.T) {
	assert.Equal(t, NormalizeSkill("js"), NormalizeSkill("JavaScript"))
	assert.Equal(t, "JavaScript", NormalizeSkill("js"))
}

func TestCompareSkills(t *testing.T) {
	got := CompareSkills(
		[]string{"react", "Node.js", "Docker", "docker", ""},
		[]string{"React", "nodejs", "PostgreSQL"},
	)

	assert.Equal(t, []string{"React", "Node.js"}, got.Matched)
	assert.Equal(t, []string{"PostgreSQL"}, got.Missing)
	assert.Equal(t, []string{"Docker"}, got.Extra)
}

func TestCompareSkills_Empty(t *testing.T) {
	got := CompareSkills(nil, nil)

	assert.Empty(t, got.Matched)
	assert.Empty(t, got.Missing)
	assert.Empty(t, got.Extra)
}
