// Package resources turns the backend's free-form search output into
// displayable video, book, and website listings, with deterministic fallback
// catalogs when the backend is unreachable.
package resources

import "regexp"

// Extractor pulls titled items out of unstructured text. The backend gives
// no schema guarantee for educational_resources, so extraction is
// best-effort and pluggable rather than something to harden.
type Extractor interface {
	Extract(text string) []Item
}

// Item is a titled resource extracted from free text. Link may be empty.
type Item struct {
	Title string
	Link  string
}

// Video is one entry parsed from the backend's youtube_results list.
type Video struct {
	Title   string
	Channel string
	Link    string
}

var (
	titleRe   = regexp.MustCompile(`\*\*(.*?)\*\*`)
	creatorRe = regexp.MustCompile(`\*\* - (.*?) -`)
	linkRe    = regexp.MustCompile(`\(([^)]+)\)`)
	urlRe     = regexp.MustCompile(`\((https?://[^\s)]+)\)`)
)

// MarkdownExtractor matches the loose markdown the generation backend
// emits: bold titles, parenthesized links.
type MarkdownExtractor struct{}

var _ Extractor = MarkdownExtractor{}

// Extract returns every bold-titled item in text, pairing the i-th title
// with the i-th URL when one exists.
func (MarkdownExtractor) Extract(text string) []Item {
	titles := titleRe.FindAllStringSubmatch(text, -1)
	if len(titles) == 0 {
		return nil
	}
	links := urlRe.FindAllStringSubmatch(text, -1)

	items := make([]Item, 0, len(titles))
	for i, m := range titles {
		item := Item{Title: m[1]}
		if i < len(links) {
			item.Link = links[i][1]
		}
		items = append(items, item)
	}
	return items
}

// ParseVideoEntry parses one youtube_results line of the form
// "1. **Title** - Creator - [Watch here](https://...)". Missing pieces fall
// back to placeholders so one scrappy line does not empty the whole list.
func ParseVideoEntry(entry string) Video {
	v := Video{
		Title:   "Untitled video",
		Channel: "Unknown Creator",
		Link:    "#",
	}
	if m := titleRe.FindStringSubmatch(entry); m != nil {
		v.Title = m[1]
	}
	if m := creatorRe.FindStringSubmatch(entry); m != nil {
		v.Channel = m[1]
	}
	if m := linkRe.FindStringSubmatch(entry); m != nil {
		v.Link = m[1]
	}
	return v
}
