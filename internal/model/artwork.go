package model

// Museum identifies the upstream collection a record came from.
type Museum string

const (
	// MuseumArtic is the Art Institute of Chicago, the primary source.
	MuseumArtic Museum = "artic"
	// MuseumMet is the Metropolitan Museum of Art, the secondary source.
	MuseumMet Museum = "met"
)

// Placeholders written by adapters when the upstream leaves a field empty.
const (
	UntitledTitle = "Untitled"
	UnknownArtist = "Unknown"
	UnknownDate   = "Date unknown"
)

func (m Museum) Valid() bool {
	return m == MuseumArtic || m == MuseumMet
}

// DisplayName returns the human readable museum name.
func (m Museum) DisplayName() string {
	switch m {
	case MuseumArtic:
		return "Art Institute of Chicago"
	case MuseumMet:
		return "Metropolitan Museum of Art"
	default:
		return string(m)
	}
}

// Artwork is the unified record produced by every source adapter.
// Records are values: translation returns a modified copy.
type Artwork struct {
	ID          string
	Title       string
	Artist      string
	Date        string
	ImageURL    string
	Medium      string
	Department  string
	Dimensions  string
	Description string
	Museum      Museum
}

// Key returns the identifier that is unique across museums.
func (a Artwork) Key() string {
	return string(a.Museum) + "-" + a.ID
}
