package oai

// NewHarvester creates a client for endpoint whose ListRecords and
// GetRecord operations return records in the representation named by
// metadataFormat (see [ParseFormat]). The name is also used as the
// default metadataPrefix; an empty name selects oai_dc.
func NewHarvester(endpoint, metadataFormat string, opts ...Option) *Client {
	base := []Option{WithFormat(ParseFormat(metadataFormat))}
	if metadataFormat != "" {
		base = append(base, WithPrefix(metadataFormat))
	}
	return NewClient(endpoint, append(base, opts...)...)
}

// RecordFormat returns the record representation bound to verb. Only
// ListRecords and GetRecord carry a binding; other verbs yield FormatDefault.
func (c *Client) RecordFormat(verb string) Format {
	switch verb {
	case VerbListRecords, VerbGetRecord:
		return c.format
	}
	return FormatDefault
}

// Bindings returns the verb to record representation table.
func (c *Client) Bindings() map[string]Format {
	return map[string]Format{
		VerbListRecords: c.RecordFormat(VerbListRecords),
		VerbGetRecord:   c.RecordFormat(VerbGetRecord),
	}
}
