package museum

import "fmt"

type metSearchResponse struct {
	Total     int     `json:"total"`
	ObjectIDs []int64 `json:"objectIDs"`
}

// objectIDs is null when nothing matches, which is not an error.
func (r *metSearchResponse) validate() error {
	if r.Total < 0 {
		return fmt.Errorf("%w: negative search total", ErrMalformed)
	}
	return nil
}

type metObject struct {
	ObjectID          int64  `json:"objectID"`
	Title             string `json:"title"`
	ArtistDisplayName string `json:"artistDisplayName"`
	ObjectDate        string `json:"objectDate"`
	PrimaryImage      string `json:"primaryImage"`
	PrimaryImageSmall string `json:"primaryImageSmall"`
	Department        string `json:"department"`
	Medium            string `json:"medium"`
	Dimensions        string `json:"dimensions"`
}

func (o *metObject) validate() error {
	if o.ObjectID <= 0 {
		return fmt.Errorf("%w: object without objectID", ErrMalformed)
	}
	return nil
}
