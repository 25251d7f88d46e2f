package model

const (
	NoDescription = "No description available."
	NoContent     = "No content available."
	NoImage       = "No image available."
)

// Article is a news item as received from the search provider. An empty
// field means the provider did not send it.
type Article struct {
	Title       string
	Description string
	Content     string
	Source      string
	PublishedAt string
	URL         string
	URLToImage  string
}

// WithPlaceholders fills the fields the frontend renders directly with
// human-readable placeholders when they are missing.
func (a Article) WithPlaceholders() Article {
	if a.Description == "" {
		a.Description = NoDescription
	}
	if a.Content == "" {
		a.Content = NoContent
	}
	if a.URLToImage == "" {
		a.URLToImage = NoImage
	}
	return a
}
