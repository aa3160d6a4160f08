package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// Template data for the two notification mails the platform sends.

type ApplicationReceivedData struct {
	CompanyName    string
	JobTitle       string
	CandidateName  string
	CandidateEmail string
}

type JobDecisionData struct {
	CompanyName string
	JobTitle    string
	Approved    bool
	Reason      string
}

const applicationReceivedTmpl = `
<h2>New application for {{.JobTitle}}</h2>
<p>Hello {{.CompanyName}},</p>
<p><strong>{{.CandidateName}}</strong> ({{.CandidateEmail}}) has applied to your
job posting <strong>{{.JobTitle}}</strong>.</p>
<p>Open your dashboard to review the application.</p>
`

const jobDecisionTmpl = `
{{if .Approved}}
<h2>Your job posting is live</h2>
<p>Hello {{.CompanyName}},</p>
<p>Your posting <strong>{{.JobTitle}}</strong> has been approved and is now
visible to candidates.</p>
{{else}}
<h2>Your job posting was not approved</h2>
<p>Hello {{.CompanyName}},</p>
<p>Your posting <strong>{{.JobTitle}}</strong> was rejected by moderation.
{{if .Reason}}Reason: {{.Reason}}{{end}}</p>
{{end}}
`

var (
	applicationReceived = template.Must(template.New("application_received").Parse(applicationReceivedTmpl))
	jobDecision         = template.Must(template.New("job_decision").Parse(jobDecisionTmpl))
)

// RenderApplicationReceived renders the new-application notification body.
func RenderApplicationReceived(data ApplicationReceivedData) (string, error) {
	return render(applicationReceived, data)
}

// RenderJobDecision renders the approve/reject decision body.
func RenderJobDecision(data JobDecisionData) (string, error) {
	return render(jobDecision, data)
}

func render(t *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", t.Name(), err)
	}
	return buf.String(), nil
}
