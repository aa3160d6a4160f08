package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStageValid(t *testing.T) {
	for _, stage := range AllStages {
		assert.True(t, stage.Valid(), "stage %s", stage)
	}

	assert.False(t, Stage("archived").Valid())
	assert.False(t, Stage("").Valid())
	assert.False(t, Stage("Screening").Valid(), "enum values are case sensitive")
}

func TestStageBoardColumn(t *testing.T) {
	// Fresh applications are shown in the screening column.
	assert.Equal(t, StageScreening, StageNew.BoardColumn())

	for _, stage := range BoardStages {
		assert.Equal(t, stage, stage.BoardColumn())
	}
}

func TestJobStatusValid(t *testing.T) {
	for _, status := range []JobStatus{JobStatusPending, JobStatusActive, JobStatusRejected, JobStatusClosed} {
		assert.True(t, status.Valid())
	}
	assert.False(t, JobStatus("draft").Valid())
}

func TestEmploymentTypeValid(t *testing.T) {
	for _, typ := range []EmploymentType{EmploymentFullTime, EmploymentPartTime, EmploymentContract, EmploymentInternship} {
		assert.True(t, typ.Valid())
	}
	assert.False(t, EmploymentType("freelance").Valid())
}
