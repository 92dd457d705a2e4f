package oai

// Format selects how a [Record] exposes its metadata payload.
type Format int

const (
	// FormatDefault maps local tag names of the payload to text values.
	FormatDefault Format = iota
	// FormatEDM parses the payload as an RDF/XML graph.
	FormatEDM
	// FormatLIDO returns the payload element as-is.
	FormatLIDO
)

// DefaultPrefix is the metadataPrefix every repository must support.
const DefaultPrefix = "oai_dc"

func (f Format) String() string {
	switch f {
	case FormatEDM:
		return "edm"
	case FormatLIDO:
		return "lido"
	default:
		return "default"
	}
}

// ParseFormat maps a metadata format name to a Format. Only the exact
// names "edm" and "lido" are recognized; any other name yields FormatDefault.
func ParseFormat(name string) Format {
	switch name {
	case "edm":
		return FormatEDM
	case "lido":
		return FormatLIDO
	default:
		return FormatDefault
	}
}
