package resolver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lehigh-university-libraries/curator/format"
	"github.com/lehigh-university-libraries/curator/helpers"
)

// DefaultRORBaseURL is the public ROR REST API.
const DefaultRORBaseURL = "https://api.ror.org/v2"

// ROR resolves ROR identifiers against the ROR REST API.
type ROR struct {
	BaseURL    string
	Client     *http.Client
	MaxRetries int
}

var _ format.AffiliationResolver = (*ROR)(nil)

// NewROR creates a ROR client. An empty baseURL means DefaultRORBaseURL.
func NewROR(baseURL string, timeout time.Duration) *ROR {
	if baseURL == "" {
		baseURL = DefaultRORBaseURL
	}
	return &ROR{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  newClient(timeout),
	}
}

type rorOrganization struct {
	Names []struct {
		Value string   `json:"value"`
		Types []string `json:"types"`
	} `json:"names"`
	// Name is the v1 schema display name.
	Name string `json:"name"`
}

// displayName returns the ror_display name (v2), falling back to the
// first label and then to the v1 name.
func (o rorOrganization) displayName() string {
	var label string
	for _, n := range o.Names {
		for _, t := range n.Types {
			switch t {
			case "ror_display":
				return n.Value
			case "label":
				if label == "" {
					label = n.Value
				}
			}
		}
	}
	if label != "" {
		return label
	}
	return o.Name
}

// Resolve returns the canonical name of the organisation identified by
// rorID, which may be a bare id or a https://ror.org/ URL.
func (r *ROR) Resolve(ctx context.Context, rorID string) (string, bool) {
	id := helpers.RORKey(rorID)
	if id == "" {
		return "", false
	}
	name, err := r.fetch(ctx, id)
	if err != nil {
		slog.Warn("ROR lookup failed", "ror", rorID, "error", err)
		return "", false
	}
	return name, name != ""
}

func (r *ROR) fetch(ctx context.Context, id string) (string, error) {
	endpoint := r.BaseURL + "/organizations/" + url.PathEscape(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := doWithRetry(ctx, r.Client, req, r.MaxRetries)
	if err != nil {
		return "", fmt.Errorf("requesting %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("requesting %s: unexpected status %d", endpoint, resp.StatusCode)
	}

	var org rorOrganization
	if err := json.NewDecoder(resp.Body).Decode(&org); err != nil {
		return "", fmt.Errorf("decoding ROR response: %w", err)
	}
	return helpers.CollapseSpace(org.displayName()), nil
}
