package resolver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/lehigh-university-libraries/curator/format"
	"github.com/lehigh-university-libraries/curator/helpers"
)

// DefaultORCIDBaseURL is the ORCID public API.
const DefaultORCIDBaseURL = "https://pub.orcid.org/v3.0"

// ORCID resolves ORCID identifiers to registered person names.
type ORCID struct {
	BaseURL    string
	Client     *http.Client
	MaxRetries int
}

var _ format.PersonResolver = (*ORCID)(nil)

// NewORCID creates an ORCID client. An empty baseURL means
// DefaultORCIDBaseURL.
func NewORCID(baseURL string, timeout time.Duration) *ORCID {
	if baseURL == "" {
		baseURL = DefaultORCIDBaseURL
	}
	return &ORCID{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  newClient(timeout),
	}
}

type orcidValue struct {
	Value string `json:"value"`
}

type orcidPerson struct {
	Name *struct {
		GivenNames *orcidValue `json:"given-names"`
		FamilyName *orcidValue `json:"family-name"`
	} `json:"name"`
}

// ResolvePerson returns the given and family names registered for orcid.
// A record that hides its name resolves as missing.
func (o *ORCID) ResolvePerson(ctx context.Context, orcid string) (format.PersonName, bool) {
	id := helpers.NormalizeORCID(orcid)
	if id == "" {
		return format.PersonName{}, false
	}

	person, err := o.fetch(ctx, id)
	if err != nil {
		slog.Warn("ORCID lookup failed", "orcid", id, "error", err)
		return format.PersonName{}, false
	}
	if person.Name == nil {
		return format.PersonName{}, false
	}

	var name format.PersonName
	if person.Name.GivenNames != nil {
		name.Given = helpers.CollapseSpace(person.Name.GivenNames.Value)
	}
	if person.Name.FamilyName != nil {
		name.Family = helpers.CollapseSpace(person.Name.FamilyName.Value)
	}
	return name, name.Given != "" || name.Family != ""
}

func (o *ORCID) fetch(ctx context.Context, id string) (*orcidPerson, error) {
	endpoint := o.BaseURL + "/" + id + "/person"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := doWithRetry(ctx, o.Client, req, o.MaxRetries)
	if err != nil {
		return nil, fmt.Errorf("requesting %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("requesting %s: unexpected status %d", endpoint, resp.StatusCode)
	}

	var person orcidPerson
	if err := json.NewDecoder(resp.Body).Decode(&person); err != nil {
		return nil, fmt.Errorf("decoding ORCID response: %w", err)
	}
	return &person, nil
}
