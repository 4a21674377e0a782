package resources

import "testing"

func TestParseVideoEntry(t *testing.T) {
	entry := "1. **Kinematics in One Shot** - PhysicsWallah - [Watch here](https://www.youtube.com/watch?v=abc123)"
	v := ParseVideoEntry(entry)

	if v.Title != "Kinematics in One Shot" {
		t.Errorf("Title = %q", v.Title)
	}
	if v.Channel != "PhysicsWallah" {
		t.Errorf("Channel = %q", v.Channel)
	}
	if v.Link != "https://www.youtube.com/watch?v=abc123" {
		t.Errorf("Link = %q", v.Link)
	}
}

func TestParseVideoEntry_Scrappy(t *testing.T) {
	v := ParseVideoEntry("some unparseable line")
	if v.Title != "Untitled video" || v.Channel != "Unknown Creator" || v.Link != "#" {
		t.Errorf("placeholders not applied: %+v", v)
	}
}

func TestMarkdownExtractor(t *testing.T) {
	text := "1. **Concepts of Physics** - [Read here](https://archive.org/cop) - A classic.\n" +
		"2. **NCERT Chemistry** - [Read here](https://ncert.nic.in/chem) - The standard text."

	items := MarkdownExtractor{}.Extract(text)
	if len(items) != 2 {
		t.Fatalf("Extract returned %d items, want 2", len(items))
	}
	if items[0].Title != "Concepts of Physics" || items[0].Link != "https://archive.org/cop" {
		t.Errorf("items[0] = %+v", items[0])
	}
	if items[1].Title != "NCERT Chemistry" || items[1].Link != "https://ncert.nic.in/chem" {
		t.Errorf("items[1] = %+v", items[1])
	}
}

func TestMarkdownExtractor_NoTitles(t *testing.T) {
	if items := (MarkdownExtractor{}).Extract("plain prose with no emphasis"); items != nil {
		t.Errorf("Extract = %v, want nil", items)
	}
}

func TestMarkdownExtractor_MoreTitlesThanLinks(t *testing.T) {
	text := "**First** ([link](https://a.example)) and **Second** with no link."
	items := MarkdownExtractor{}.Extract(text)
	if len(items) != 2 {
		t.Fatalf("Extract returned %d items, want 2", len(items))
	}
	if items[1].Link != "" {
		t.Errorf("items[1].Link = %q, want empty", items[1].Link)
	}
}
