package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderApplicationReceived(t *testing.T) {
	body, err := RenderApplicationReceived(ApplicationReceivedData{
		CompanyName:    "Acme GmbH",
		JobTitle:       "Backend Engineer",
		CandidateName:  "Dana Fields",
		CandidateEmail: "dana@example.com",
	})
	require.NoError(t, err)

	assert.Contains(t, body, "Acme GmbH")
	assert.Contains(t, body, "Backend Engineer")
	assert.Contains(t, body, "Dana Fields")
	assert.Contains(t, body, "dana@example.com")
}

func TestRenderApplicationReceived_EscapesHTML(t *testing.T) {
	body, err := RenderApplicationReceived(ApplicationReceivedData{
		CompanyName:   "Acme",
		JobTitle:      "Engineer",
		CandidateName: "<script>alert(1)</script>",
	})
	require.NoError(t, err)
	assert.NotContains(t, body, "<script>")
}

func TestRenderJobDecision(t *testing.T) {
	approved, err := RenderJobDecision(JobDecisionData{
		CompanyName: "Acme GmbH",
		JobTitle:    "Backend Engineer",
		Approved:    true,
	})
	require.NoError(t, err)
	assert.Contains(t, approved, "approved")

	rejected, err := RenderJobDecision(JobDecisionData{
		CompanyName: "Acme GmbH",
		JobTitle:    "Backend Engineer",
		Approved:    false,
		Reason:      "incomplete description",
	})
	require.NoError(t, err)
	assert.Contains(t, rejected, "rejected")
	assert.Contains(t, rejected, "incomplete description")
}
