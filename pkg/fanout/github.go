package fanout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/incidentfox/incidentfox/pkg/output"
)

// RunMarker returns the hidden HTML comment embedded in GitHub comments so a
// later reaction webhook can be tied back to the run.
func RunMarker(runID string) string {
	return fmt.Sprintf("<!-- incidentfox:run_id=%s -->", runID)
}

// RunIDFromMarker extracts the run id from a comment body, or "" when the
// body carries no marker.
func RunIDFromMarker(body string) string {
	const prefix = "<!-- incidentfox:run_id="
	start := strings.Index(body, prefix)
	if start < 0 {
		return ""
	}
	rest := body[start+len(prefix):]
	end := strings.Index(rest, " -->")
	if end < 0 {
		return ""
	}
	return rest[:end]
}

// deliverGitHub posts the artifact as an issue or PR comment. When a comment
// for the same run already exists (found by its marker) it is updated in
// place instead of duplicated.
func (s *Service) deliverGitHub(ctx context.Context, dest output.Destination, artifact Artifact, creds Credentials) error {
	if creds.GitHubToken == "" {
		return fmt.Errorf("github integration not configured")
	}
	if dest.Repo == "" || dest.IssueNumber <= 0 {
		return fmt.Errorf("github destination missing repo or issue number")
	}
	apiHost := creds.GitHubAPIHost
	if apiHost == "" {
		apiHost = "https://api.github.com"
	}

	body := artifact.Text + "\n\n" + RunMarker(artifact.RunID)

	existingID, err := s.findRunComment(ctx, apiHost, creds.GitHubToken, dest, artifact.RunID)
	if err != nil {
		return err
	}

	method := http.MethodPost
	url := fmt.Sprintf("%s/repos/%s/issues/%d/comments", apiHost, dest.Repo, dest.IssueNumber)
	if existingID != 0 {
		method = http.MethodPatch
		url = fmt.Sprintf("%s/repos/%s/issues/comments/%d", apiHost, dest.Repo, existingID)
	}

	payload, err := json.Marshal(map[string]string{"body": body})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	s.githubHeaders(req, creds.GitHubToken)

	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("github comment request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("github comment returned %d: %s", resp.StatusCode, msg)
	}
	return nil
}

// findRunComment scans the issue's comments for this run's marker.
func (s *Service) findRunComment(ctx context.Context, apiHost, token string, dest output.Destination, runID string) (int64, error) {
	url := fmt.Sprintf("%s/repos/%s/issues/%d/comments?per_page=100", apiHost, dest.Repo, dest.IssueNumber)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	s.githubHeaders(req, token)

	resp, err := s.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("listing github comments failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("listing github comments returned %d", resp.StatusCode)
	}

	var comments []struct {
		ID   int64  `json:"id"`
		Body string `json:"body"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&comments); err != nil {
		return 0, fmt.Errorf("decoding github comments: %w", err)
	}
	for _, comment := range comments {
		if RunIDFromMarker(comment.Body) == runID {
			return comment.ID, nil
		}
	}
	return 0, nil
}

func (s *Service) githubHeaders(req *http.Request, token string) {
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Content-Type", "application/json")
}
