package client

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophgallery/internal/client/models"
)

// tagList accepts tags as a JSON array or as a comma separated string.
type tagList []string

func (t *tagList) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*t = nil
		return nil
	}

	var arr []string
	if err := json.Unmarshal(b, &arr); err == nil {
		*t = arr
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*t = models.TagsFromString(s)
	return nil
}

type imageDTO struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Filename     string  `json:"filename"`
	URL          string  `json:"url"`
	Owner        string  `json:"owner"`
	Tags         tagList `json:"tags"`
	Likes        int     `json:"likes"`
	Downloads    int     `json:"downloads"`
	Size         int64   `json:"size"`
	UploadedAt   string  `json:"uploadedAt"`
	LastModified string  `json:"last_modified"`
}

func (d imageDTO) toModel() models.Image {
	img := models.Image{
		ID:        d.ID,
		Name:      d.Name,
		Filename:  d.Filename,
		URL:       d.URL,
		Owner:     d.Owner,
		Tags:      []string(d.Tags),
		Likes:     d.Likes,
		Downloads: d.Downloads,
		Size:      d.Size,
	}

	for _, ts := range []string{d.UploadedAt, d.LastModified} {
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			img.UploadedAt = t
			break
		}
	}

	return models.NewImage(img)
}

type albumDTO struct {
	Name      string     `json:"name"`
	AlbumName string     `json:"albumName"`
	Images    []imageDTO `json:"images"`
}

type libraryDTO struct {
	Images []imageDTO `json:"images"`
	Album  []albumDTO `json:"album"`
	Albums []albumDTO `json:"albums"`
}

func (d libraryDTO) toModel() *models.Library {
	lib := &models.Library{Images: make([]models.Image, 0, len(d.Images))}
	for _, img := range d.Images {
		lib.Images = append(lib.Images, img.toModel())
	}

	for _, a := range append(d.Album, d.Albums...) {
		name := a.Name
		if name == "" {
			name = a.AlbumName
		}
		na := models.NamedAlbum{Name: name}
		for _, img := range a.Images {
			na.Images = append(na.Images, img.toModel())
		}
		lib.Albums = append(lib.Albums, na)
	}
	return lib
}

type tagsDTO struct {
	Tags []models.TagCount `json:"tags"`
}

type tokenDTO struct {
	AccessToken  string `json:"access_token"`
	IDToken      string `json:"id_token"`
	RefreshToken string `json:"refresh_token"`
}

// errorDTO covers the error bodies the backend produces: {"detail": "..."}
// from the API layer and {"error": "..."} from the auth routes.
type errorDTO struct {
	Detail  json.RawMessage `json:"detail"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

func (e errorDTO) text() string {
	if len(e.Detail) > 0 {
		var s string
		if err := json.Unmarshal(e.Detail, &s); err == nil && s != "" {
			return s
		}
		if d := strings.TrimSpace(string(e.Detail)); d != "null" {
			return d
		}
	}
	if e.Error != "" {
		return e.Error
	}
	return e.Message
}
