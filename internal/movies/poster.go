package movies

import "moviesearch/internal/tmdb"

// PosterURLSet maps size roles to absolute poster image URLs. All entries are
// null when the movie has no poster path. Default always equals the smallest
// picked size.
type PosterURLSet struct {
	Default *string `json:"default"`
	SM      *string `json:"sm"`
	MD      *string `json:"md"`
	LG      *string `json:"lg"`
}

// Best returns the largest available URL, or "" when the set is empty.
func (p PosterURLSet) Best() string {
	for _, u := range []*string{p.LG, p.MD, p.SM, p.Default} {
		if u != nil {
			return *u
		}
	}
	return ""
}

// Smallest returns the default-size URL, or "" when the set is empty.
func (p PosterURLSet) Smallest() string {
	if p.Default == nil {
		return ""
	}
	return *p.Default
}

// Size role picks from the provider's poster size list. Against the standard
// seven-entry list these land on w185, w500 and w780.
const (
	smallSizeIndex  = 2
	mediumSizeIndex = 4
	largeSizeIndex  = 5
)

// NewPosterURLSet builds poster URLs from the provider's image configuration
// and a raw poster path.
func NewPosterURLSet(images tmdb.ImageConfiguration, posterPath string) PosterURLSet {
	base := images.SecureBaseURL
	if base == "" {
		base = images.BaseURL
	}
	if posterPath == "" || base == "" || len(images.PosterSizes) == 0 {
		return PosterURLSet{}
	}

	small := base + pickSize(images.PosterSizes, smallSizeIndex) + posterPath
	medium := base + pickSize(images.PosterSizes, mediumSizeIndex) + posterPath
	large := base + pickSize(images.PosterSizes, largeSizeIndex) + posterPath

	return PosterURLSet{
		Default: &small,
		SM:      &small,
		MD:      &medium,
		LG:      &large,
	}
}

func pickSize(sizes []string, index int) string {
	if index >= len(sizes) {
		index = len(sizes) - 1
	}
	return sizes[index]
}
