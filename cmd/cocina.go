package main

// Cocina object model, pared down to the descriptive/administrative shapes the
// indexers consume.  Field names and nesting follow the upstream JSON schema;
// anything the pipeline never reads is omitted.

const (
	objectTypePrefix = "https://cocina.sul.stanford.edu/models/"

	statusPrimary = "primary"
)

// descValue is the recursive descriptive value shape.  Exactly one of Value,
// StructuredValue, ParallelValue or GroupedValue is expected to be populated,
// but the walker tolerates records that violate that.
type descValue struct {
	Value           string      `json:"value,omitempty"`
	Type            string      `json:"type,omitempty"`
	Status          string      `json:"status,omitempty"`
	Code            string      `json:"code,omitempty"`
	URI             string      `json:"uri,omitempty"`
	DisplayLabel    string      `json:"displayLabel,omitempty"`
	Source          *descSource `json:"source,omitempty"`
	StructuredValue []descValue `json:"structuredValue,omitempty"`
	ParallelValue   []descValue `json:"parallelValue,omitempty"`
	GroupedValue    []descValue `json:"groupedValue,omitempty"`
	Note            []descValue `json:"note,omitempty"`
}

type descSource struct {
	Code    string `json:"code,omitempty"`
	URI     string `json:"uri,omitempty"`
	Value   string `json:"value,omitempty"`
	Version string `json:"version,omitempty"`
}

type descContributor struct {
	Name       []descValue `json:"name,omitempty"`
	Type       string      `json:"type,omitempty"`
	Status     string      `json:"status,omitempty"`
	Role       []descValue `json:"role,omitempty"`
	Identifier []descValue `json:"identifier,omitempty"`
	Note       []descValue `json:"note,omitempty"`
}

type descEvent struct {
	Type          string            `json:"type,omitempty"`
	Status        string            `json:"status,omitempty"`
	DisplayLabel  string            `json:"displayLabel,omitempty"`
	Date          []descValue       `json:"date,omitempty"`
	Location      []descValue       `json:"location,omitempty"`
	Contributor   []descContributor `json:"contributor,omitempty"`
	Note          []descValue       `json:"note,omitempty"`
	ParallelEvent []descEvent       `json:"parallelEvent,omitempty"`
}

type descLanguage struct {
	Value  string      `json:"value,omitempty"`
	Code   string      `json:"code,omitempty"`
	URI    string      `json:"uri,omitempty"`
	Status string      `json:"status,omitempty"`
	Source *descSource `json:"source,omitempty"`
	Script *descValue  `json:"script,omitempty"`
}

type description struct {
	Title       []descValue       `json:"title,omitempty"`
	Contributor []descContributor `json:"contributor,omitempty"`
	Event       []descEvent       `json:"event,omitempty"`
	Form        []descValue       `json:"form,omitempty"`
	Language    []descLanguage    `json:"language,omitempty"`
	Subject     []descValue       `json:"subject,omitempty"`
	Note        []descValue       `json:"note,omitempty"`
	Identifier  []descValue       `json:"identifier,omitempty"`
	Purl        string            `json:"purl,omitempty"`
}

type embargo struct {
	ReleaseDate string `json:"releaseDate,omitempty"`
	View        string `json:"view,omitempty"`
	Download    string `json:"download,omitempty"`
}

type access struct {
	View                        string   `json:"view,omitempty"`
	Download                    string   `json:"download,omitempty"`
	Location                    string   `json:"location,omitempty"`
	ControlledDigitalLending    bool     `json:"controlledDigitalLending,omitempty"`
	Copyright                   string   `json:"copyright,omitempty"`
	License                     string   `json:"license,omitempty"`
	UseAndReproductionStatement string   `json:"useAndReproductionStatement,omitempty"`
	Embargo                     *embargo `json:"embargo,omitempty"`
}

type fileAdministrative struct {
	Publish     bool `json:"publish,omitempty"`
	Shelve      bool `json:"shelve,omitempty"`
	SdrPreserve bool `json:"sdrPreserve,omitempty"`
}

type objectFile struct {
	Filename       string              `json:"filename,omitempty"`
	Label          string              `json:"label,omitempty"`
	Size           int64               `json:"size,omitempty"`
	HasMimeType    string              `json:"hasMimeType,omitempty"`
	Access         *access             `json:"access,omitempty"`
	Administrative *fileAdministrative `json:"administrative,omitempty"`
}

type fileSetStructural struct {
	Contains []objectFile `json:"contains,omitempty"`
}

type fileSet struct {
	Type       string            `json:"type,omitempty"`
	Label      string            `json:"label,omitempty"`
	Structural fileSetStructural `json:"structural,omitempty"`
}

type structural struct {
	Contains   []fileSet `json:"contains,omitempty"`
	IsMemberOf []string  `json:"isMemberOf,omitempty"`
}

type catalogLink struct {
	Catalog         string `json:"catalog,omitempty"`
	CatalogRecordID string `json:"catalogRecordId,omitempty"`
	Refresh         bool   `json:"refresh,omitempty"`
	PartLabel       string `json:"partLabel,omitempty"`
	SortKey         string `json:"sortKey,omitempty"`
}

type identification struct {
	SourceID     string        `json:"sourceId,omitempty"`
	Barcode      string        `json:"barcode,omitempty"`
	DOI          string        `json:"doi,omitempty"`
	CatalogLinks []catalogLink `json:"catalogLinks,omitempty"`
}

type administrative struct {
	HasAdminPolicy string `json:"hasAdminPolicy,omitempty"`
}

// cocinaObject is one repository object as delivered by the object store.
type cocinaObject struct {
	Type               string          `json:"type,omitempty"`
	ExternalIdentifier string          `json:"externalIdentifier,omitempty"`
	Label              string          `json:"label,omitempty"`
	Version            int             `json:"version,omitempty"`
	Access             *access         `json:"access,omitempty"`
	Administrative     *administrative `json:"administrative,omitempty"`
	Description        *description    `json:"description,omitempty"`
	Identification     *identification `json:"identification,omitempty"`
	Structural         *structural     `json:"structural,omitempty"`
}

// objectType returns the short model name ("item", "collection", ...) from the
// full cocina type URI, or the raw value if it is not a cocina URI.
func (o *cocinaObject) objectType() string {
	t := o.Type

	if len(t) > len(objectTypePrefix) && t[:len(objectTypePrefix)] == objectTypePrefix {
		return t[len(objectTypePrefix):]
	}

	return t
}

func (o *cocinaObject) desc() *description {
	if o.Description == nil {
		return &description{}
	}

	return o.Description
}
