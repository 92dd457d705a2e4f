package oai

import (
	"net/url"
	"time"

	"github.com/matzehuels/oaiview/pkg/errors"
)

// OAI-PMH verbs (section 4 of the protocol).
const (
	VerbIdentify            = "Identify"
	VerbListMetadataFormats = "ListMetadataFormats"
	VerbListSets            = "ListSets"
	VerbListIdentifiers     = "ListIdentifiers"
	VerbListRecords         = "ListRecords"
	VerbGetRecord           = "GetRecord"
)

// Verbs is the set of verbs a repository must support.
var Verbs = map[string]bool{
	VerbIdentify:            true,
	VerbListMetadataFormats: true,
	VerbListSets:            true,
	VerbListIdentifiers:     true,
	VerbListRecords:         true,
	VerbGetRecord:           true,
}

// DateFormat is the day granularity used for from and until arguments.
const DateFormat = "2006-01-02"

var (
	ErrNoEndpoint = errors.New(errors.ErrCodeInvalidEndpoint, "request: an endpoint is required")
	ErrNoVerb     = errors.New(errors.ErrCodeInvalidInput, "request: no verb")
	ErrBadVerb    = errors.New(errors.ErrCodeInvalidInput, "request: bad verb")
)

// Request holds the arguments of a single OAI-PMH request.
type Request struct {
	Endpoint        string
	Verb            string
	From            time.Time
	Until           time.Time
	Set             string
	Prefix          string
	Identifier      string
	ResumptionToken string
}

// URL returns the absolute URL for the request. A resumption token is an
// exclusive argument: when set, only verb and token are encoded.
func (r Request) URL() (string, error) {
	if r.Endpoint == "" {
		return "", ErrNoEndpoint
	}
	if r.Verb == "" {
		return "", ErrNoVerb
	}
	if !Verbs[r.Verb] {
		return "", ErrBadVerb
	}

	u, err := url.Parse(r.Endpoint)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidEndpoint, err, "parse endpoint")
	}
	values := u.Query()
	values.Set("verb", r.Verb)

	if r.ResumptionToken != "" {
		values.Set("resumptionToken", r.ResumptionToken)
		u.RawQuery = values.Encode()
		return u.String(), nil
	}

	setIf := func(k, v string) {
		if v != "" {
			values.Set(k, v)
		}
	}
	setDate := func(k string, t time.Time) {
		if !t.IsZero() {
			values.Set(k, t.Format(DateFormat))
		}
	}

	switch r.Verb {
	case VerbListRecords, VerbListIdentifiers:
		setDate("from", r.From)
		setDate("until", r.Until)
		setIf("set", r.Set)
		setIf("metadataPrefix", r.Prefix)
	case VerbGetRecord:
		setIf("identifier", r.Identifier)
		setIf("metadataPrefix", r.Prefix)
	case VerbListMetadataFormats:
		setIf("identifier", r.Identifier)
	}
	u.RawQuery = values.Encode()
	return u.String(), nil
}
