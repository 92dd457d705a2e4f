package oai

import (
	"context"
	stderrors "errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/beevik/etree"
	"github.com/charmbracelet/log"
	"github.com/sethgrid/pester"

	"github.com/matzehuels/oaiview/pkg/buildinfo"
	"github.com/matzehuels/oaiview/pkg/errors"
	"github.com/matzehuels/oaiview/pkg/observability"
	"github.com/matzehuels/oaiview/pkg/xmltree"
)

// Defaults for a new Client.
const (
	DefaultTimeout     = 60 * time.Second
	DefaultRetries     = 8
	DefaultMaxRequests = 1024
)

// Doer executes HTTP requests. Both *http.Client and *pester.Client
// satisfy it.
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client is an OAI-PMH client bound to one repository endpoint.
// A Client is safe for sequential use; it holds no per-request state.
type Client struct {
	endpoint    string
	prefix      string
	format      Format
	http        Doer
	logger      *log.Logger
	timeout     time.Duration
	retries     int
	maxRequests int
}

// Option configures a Client at construction.
type Option func(*Client)

// WithHTTPClient replaces the retrying pester transport.
func WithHTTPClient(d Doer) Option {
	return func(c *Client) { c.http = d }
}

// WithLogger sets the logger for request tracing. Nil means log.Default().
func WithLogger(l *log.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithTimeout sets the per-request timeout of the default transport.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithRetries sets how often the default transport retries a request.
func WithRetries(n int) Option {
	return func(c *Client) { c.retries = n }
}

// WithMaxRequests caps the pages an iterator fetches. Zero means no limit.
func WithMaxRequests(n int) Option {
	return func(c *Client) { c.maxRequests = n }
}

// WithPrefix sets the default metadataPrefix for list and get requests.
func WithPrefix(prefix string) Option {
	return func(c *Client) { c.prefix = prefix }
}

// WithFormat binds ListRecords and GetRecord to a record representation.
func WithFormat(f Format) Option {
	return func(c *Client) { c.format = f }
}

// NewClient creates a client for endpoint using the default record
// representation and the oai_dc metadata prefix.
func NewClient(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint:    endpoint,
		prefix:      DefaultPrefix,
		format:      FormatDefault,
		timeout:     DefaultTimeout,
		retries:     DefaultRetries,
		maxRequests: DefaultMaxRequests,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = log.Default()
	}
	if c.http == nil {
		p := pester.New()
		p.Timeout = c.timeout
		p.MaxRetries = c.retries
		p.Backoff = pester.ExponentialBackoff
		c.http = p
	}
	return c
}

// Endpoint returns the repository base URL.
func (c *Client) Endpoint() string { return c.endpoint }

// Prefix returns the default metadataPrefix.
func (c *Client) Prefix() string { return c.prefix }

// Do performs a single request. The endpoint defaults to the client's.
// A well-formed response carrying an <error> element is returned together
// with an OAI_ERROR error wrapping the [*Error].
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	if req.Endpoint == "" {
		req.Endpoint = c.endpoint
	}
	host := ""
	if u, err := url.Parse(req.Endpoint); err == nil {
		host = u.Host
	}
	hooks := observability.Harvest()
	hooks.OnRequest(ctx, req.Verb, host)

	start := time.Now()
	resp, status, size, err := c.do(ctx, req)
	if err != nil {
		hooks.OnError(ctx, req.Verb, host, err)
		return resp, err
	}
	hooks.OnResponse(ctx, req.Verb, host, status, size, time.Since(start))
	return resp, nil
}

// do performs one round trip and reports the HTTP status and body size.
func (c *Client) do(ctx context.Context, req Request) (*Response, int, int, error) {
	link, err := req.URL()
	if err != nil {
		return nil, 0, 0, err
	}
	c.logger.Debug("oai request", "url", link)

	hreq, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return nil, 0, 0, errors.Wrap(errors.ErrCodeInvalidEndpoint, err, "build request")
	}
	hreq.Header.Set("User-Agent", buildinfo.UserAgent())

	start := time.Now()
	hresp, err := c.http.Do(hreq)
	if err != nil {
		return nil, 0, 0, errors.Wrap(errors.ErrCodeNetwork, err, "%s %s", req.Verb, req.Endpoint)
	}
	defer hresp.Body.Close()

	status := hresp.StatusCode
	if err := checkStatus(status); err != nil {
		return nil, status, 0, err
	}
	body, err := io.ReadAll(hresp.Body)
	if err != nil {
		return nil, status, 0, errors.Wrap(errors.ErrCodeNetwork, err, "read response")
	}
	c.logger.Debug("oai response", "verb", req.Verb, "bytes", len(body), "duration", time.Since(start))

	root, err := xmltree.ParseBytes(body)
	if err != nil {
		return nil, status, len(body), err
	}
	resp := newResponse(req.Verb, root)
	if oaiErr := resp.OAIError(); oaiErr != nil {
		return resp, status, len(body), errors.Wrap(errors.ErrCodeOAI, oaiErr, "%s", req.Verb)
	}
	return resp, status, len(body), nil
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return errors.New(errors.ErrCodeNotFound, "endpoint not found (status %d)", code)
	default:
		return errors.New(errors.ErrCodeNetwork, "unexpected status %d", code)
	}
}

// AsError extracts the repository error from err, if there is one.
func AsError(err error) (*Error, bool) {
	var oe *Error
	if stderrors.As(err, &oe) {
		return oe, true
	}
	return nil, false
}

// Identify describes the repository.
func (c *Client) Identify(ctx context.Context) (*Identify, error) {
	resp, err := c.Do(ctx, Request{Verb: VerbIdentify})
	if err != nil {
		return nil, err
	}
	el := resp.payload
	if el == nil {
		return nil, errors.New(errors.ErrCodeInvalidXML, "Identify response has no Identify element")
	}
	ns := resp.namespace
	id := &Identify{
		RepositoryName:    xmltree.Text(xmltree.Child(el, ns, "repositoryName")),
		BaseURL:           xmltree.Text(xmltree.Child(el, ns, "baseURL")),
		ProtocolVersion:   xmltree.Text(xmltree.Child(el, ns, "protocolVersion")),
		EarliestDatestamp: xmltree.Text(xmltree.Child(el, ns, "earliestDatestamp")),
		DeletedRecord:     xmltree.Text(xmltree.Child(el, ns, "deletedRecord")),
		Granularity:       xmltree.Text(xmltree.Child(el, ns, "granularity")),
	}
	for _, m := range xmltree.Children(el, ns, "adminEmail") {
		id.AdminEmails = append(id.AdminEmails, xmltree.Text(m))
	}
	return id, nil
}

// ListMetadataFormats lists the formats of the repository, or of one item
// when identifier is not empty.
func (c *Client) ListMetadataFormats(identifier string) *Iterator[MetadataFormat] {
	req := Request{Verb: VerbListMetadataFormats, Identifier: identifier}
	return newIterator(c, req, "metadataFormat", func(el *etree.Element, ns string) (MetadataFormat, error) {
		return MetadataFormat{
			Prefix:    xmltree.Text(xmltree.Child(el, ns, "metadataPrefix")),
			Schema:    xmltree.Text(xmltree.Child(el, ns, "schema")),
			Namespace: xmltree.Text(xmltree.Child(el, ns, "metadataNamespace")),
		}, nil
	})
}

// ListSets lists the set hierarchy of the repository.
func (c *Client) ListSets() *Iterator[Set] {
	return newIterator(c, Request{Verb: VerbListSets}, "set", func(el *etree.Element, ns string) (Set, error) {
		s := Set{
			Spec: xmltree.Text(xmltree.Child(el, ns, "setSpec")),
			Name: xmltree.Text(xmltree.Child(el, ns, "setName")),
		}
		if d := xmltree.Child(el, ns, "setDescription"); d != nil {
			s.Description = descriptionText(d)
		}
		return s, nil
	})
}

// ListOptions narrows ListRecords and ListIdentifiers.
type ListOptions struct {
	// Prefix overrides the client's metadataPrefix.
	Prefix string
	Set    string
	From   time.Time
	Until  time.Time
}

func (c *Client) listRequest(verb string, opts ListOptions) Request {
	req := Request{Verb: verb, Set: opts.Set, From: opts.From, Until: opts.Until, Prefix: opts.Prefix}
	if req.Prefix == "" {
		req.Prefix = c.prefix
	}
	return req
}

// ListIdentifiers lists record headers.
func (c *Client) ListIdentifiers(opts ListOptions) *Iterator[Header] {
	req := c.listRequest(VerbListIdentifiers, opts)
	return newIterator(c, req, "header", func(el *etree.Element, ns string) (Header, error) {
		return parseHeader(el, ns), nil
	})
}

// ListRecords lists full records in the client's bound format.
func (c *Client) ListRecords(opts ListOptions) *Iterator[*Record] {
	req := c.listRequest(VerbListRecords, opts)
	f := c.RecordFormat(VerbListRecords)
	return newIterator(c, req, "record", func(el *etree.Element, ns string) (*Record, error) {
		return newRecord(el, ns, f), nil
	})
}

// GetRecord fetches one record. An empty prefix uses the client's.
func (c *Client) GetRecord(ctx context.Context, identifier, prefix string) (*Record, error) {
	if err := errors.ValidateIdentifier(identifier); err != nil {
		return nil, err
	}
	if prefix == "" {
		prefix = c.prefix
	}
	resp, err := c.Do(ctx, Request{Verb: VerbGetRecord, Identifier: identifier, Prefix: prefix})
	if err != nil {
		return nil, err
	}
	items := resp.items("record")
	if len(items) == 0 {
		return nil, errors.New(errors.ErrCodeNotFound, "GetRecord %q: response has no record", identifier)
	}
	return newRecord(items[0], resp.namespace, c.RecordFormat(VerbGetRecord)), nil
}

func descriptionText(el *etree.Element) string {
	var text string
	xmltree.Walk(el, func(e, _ *etree.Element) bool {
		if t := xmltree.Text(e); t != "" {
			text = t
			return false
		}
		return true
	})
	return text
}
