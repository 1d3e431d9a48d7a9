package museum

import "fmt"

const (
	articListFields   = "id,title,artist_display,date_display,image_id,department_title,medium_display,dimensions,is_public_domain"
	articDetailFields = articListFields + ",description"
)

type articArtwork struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	ArtistDisplay   string `json:"artist_display"`
	DateDisplay     string `json:"date_display"`
	ImageID         string `json:"image_id"`
	DepartmentTitle string `json:"department_title"`
	MediumDisplay   string `json:"medium_display"`
	Dimensions      string `json:"dimensions"`
	Description     string `json:"description"`
	IsPublicDomain  bool   `json:"is_public_domain"`
}

func (a *articArtwork) validate() error {
	if a.ID <= 0 {
		return fmt.Errorf("%w: artwork without id", ErrMalformed)
	}
	return nil
}

type articPagination struct {
	Total       int `json:"total"`
	Limit       int `json:"limit"`
	TotalPages  int `json:"total_pages"`
	CurrentPage int `json:"current_page"`
}

type articListResponse struct {
	Pagination *articPagination `json:"pagination"`
	Data       []articArtwork   `json:"data"`
}

func (r *articListResponse) validate() error {
	if r.Pagination == nil || r.Data == nil {
		return fmt.Errorf("%w: listing without pagination or data", ErrMalformed)
	}
	if r.Pagination.Total < 0 || r.Pagination.TotalPages < 0 {
		return fmt.Errorf("%w: negative pagination totals", ErrMalformed)
	}
	for i := range r.Data {
		if err := r.Data[i].validate(); err != nil {
			return err
		}
	}
	return nil
}

type articDetailResponse struct {
	Data *articArtwork `json:"data"`
}

func (r *articDetailResponse) validate() error {
	if r.Data == nil {
		return fmt.Errorf("%w: detail without data", ErrMalformed)
	}
	return r.Data.validate()
}

type articSearchHit struct {
	ID int64 `json:"id"`
}

type articSearchResponse struct {
	Data []articSearchHit `json:"data"`
}

func (r *articSearchResponse) validate() error {
	if r.Data == nil {
		return fmt.Errorf("%w: search without data", ErrMalformed)
	}
	for _, hit := range r.Data {
		if hit.ID <= 0 {
			return fmt.Errorf("%w: search hit without id", ErrMalformed)
		}
	}
	return nil
}
