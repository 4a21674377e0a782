package resources

import (
	"context"
	"fmt"

	"github.com/prateeks/prepdeck/internal/backend"
)

// Service fetches resource listings for a topic, extracting structure from
// the backend's free text and serving fallback catalogs when it fails.
type Service struct {
	backend   backend.Service
	extractor Extractor
}

// NewService builds a Service. A nil extractor defaults to
// MarkdownExtractor.
func NewService(b backend.Service, extractor Extractor) *Service {
	if extractor == nil {
		extractor = MarkdownExtractor{}
	}
	return &Service{backend: b, extractor: extractor}
}

// Listing is one topic's fetched resources. Fallback reports whether any of
// the three sections came from the sample catalog instead of the backend.
type Listing struct {
	Topic    string
	Videos   []Video
	Books    []Book
	Sites    []Site
	Fallback bool
}

// Fetch gathers videos, books, and websites for topic. Backend failure on
// any section fills that section from the fallback catalog; Fetch itself
// never fails.
func (s *Service) Fetch(ctx context.Context, topic string) *Listing {
	l := &Listing{Topic: topic}

	result, err := s.backend.Search(ctx, fmt.Sprintf("%s tutorial videos", topic))
	if err != nil || len(result.YouTubeResults) == 0 {
		l.Videos = FallbackVideos(topic)
		l.Fallback = true
	} else {
		for _, entry := range result.YouTubeResults {
			l.Videos = append(l.Videos, ParseVideoEntry(entry))
		}
	}

	result, err = s.backend.Search(ctx, fmt.Sprintf("%s books and textbooks", topic))
	if err == nil {
		for _, item := range s.extractor.Extract(result.EducationalResources) {
			l.Books = append(l.Books, Book{Title: item.Title, Author: "From API"})
		}
	}
	if len(l.Books) == 0 {
		l.Books = FallbackBooks(topic)
		l.Fallback = true
	}

	result, err = s.backend.Search(ctx, fmt.Sprintf("%s online courses and educational websites", topic))
	if err == nil {
		for _, item := range s.extractor.Extract(result.EducationalResources) {
			site := Site{Title: item.Title, Provider: "From API", Kind: "Online Resource", Duration: "N/A", Link: item.Link}
			if site.Link == "" {
				site.Link = "#"
			}
			l.Sites = append(l.Sites, site)
		}
	}
	if len(l.Sites) == 0 {
		l.Sites = FallbackSites(topic)
		l.Fallback = true
	}

	return l
}
