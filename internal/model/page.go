package model

// ArtworkPage is one page of an upstream catalog listing.
type ArtworkPage struct {
	Artworks   []Artwork
	TotalCount int
	TotalPages int
}

// Empty reports whether the page carries no usable data.
func (p ArtworkPage) Empty() bool {
	return len(p.Artworks) == 0 && p.TotalPages == 0
}
