// Package relaysvc forwards rendered study plans to the coordinator's
// archive endpoint (a Google Apps Script web app). Delivery is best effort:
// the student already holds the rendered document, so failures are logged
// and never surfaced.
package relaysvc

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/dieti/studyplan/core"
	"github.com/dieti/studyplan/core/plan"
)

type appsScriptRelay struct {
	url    string
	apiKey string
	client *http.Client
	log    core.Logger
}

var _ plan.SubmissionRelay = (*appsScriptRelay)(nil)

func NewAppsScriptRelay(log core.Logger) plan.SubmissionRelay {
	return &appsScriptRelay{
		url:    core.Conf.Relay.URL,
		apiKey: core.Conf.Relay.APIKey,
		client: &http.Client{Timeout: core.Conf.Relay.Timeout},
		log:    log,
	}
}

type relayPayload struct {
	APIKey     string              `json:"apiKey"`
	FileName   string              `json:"fileName"`
	FileBase64 string              `json:"fileBase64"`
	Student    plan.StudentDetails `json:"student"`
	Meta       plan.SubmissionMeta `json:"meta"`
}

func (r *appsScriptRelay) Submit(sub plan.Submission) {
	if r.url == "" {
		r.log.Debug("relay URL not configured, skipping submission", sub.ID)
		return
	}
	go r.submit(sub)
}

func (r *appsScriptRelay) submit(sub plan.Submission) {
	payload := relayPayload{
		APIKey:     r.apiKey,
		FileName:   sub.FileName,
		FileBase64: base64.StdEncoding.EncodeToString(sub.Document),
		Student:    sub.Student,
		Meta:       sub.Meta,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		r.log.Error(fmt.Sprintf("relay: marshaling submission %s: %v", sub.ID, err), err)
		return
	}

	res, err := r.client.Post(r.url, "application/json", bytes.NewReader(body))
	if err != nil {
		r.log.Warn(fmt.Sprintf("relay: submitting %s: %v", sub.ID, err))
		return
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		r.log.Warn(fmt.Sprintf("relay: submitting %s - status: %d", sub.ID, res.StatusCode))
		return
	}
	// Apps Script serves an HTML login page on permission errors; anything
	// that is not JSON counts as a failed delivery.
	if ct := res.Header.Get("Content-Type"); !strings.Contains(ct, "json") {
		r.log.Warn(fmt.Sprintf("relay: submitting %s - non-JSON response (%s)", sub.ID, ct))
		return
	}
	r.log.Info("relay: submitted study plan", sub.ID, sub.FileName)
}

// CaptureRelay records submissions in memory; used in tests and local runs.
type CaptureRelay struct {
	Submissions []plan.Submission
}

var _ plan.SubmissionRelay = (*CaptureRelay)(nil)

func (r *CaptureRelay) Submit(sub plan.Submission) {
	r.Submissions = append(r.Submissions, sub)
}
