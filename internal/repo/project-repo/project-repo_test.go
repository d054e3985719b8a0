package project_repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectsForAccountFilter_MemberOrCreator(t *testing.T) {
	assert.Contains(t, projectsForAccountFilter, "created_by = $1")
	assert.Contains(t, projectsForAccountFilter, "$1 = ANY(members)")
	assert.Contains(t, projectsForAccountFilter, " OR ")
}
