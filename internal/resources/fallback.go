package resources

import "fmt"

// Fallback catalogs keep the resource views populated when the backend is
// down. They are a pure function of the requested topic, not a cache.

// Book is a recommended textbook listing.
type Book struct {
	Title  string
	Author string
	Rating float64
	Year   int
}

// Site is an online course or website listing.
type Site struct {
	Title    string
	Provider string
	Kind     string
	Duration string
	Link     string
}

// FallbackVideos returns sample video listings for a topic.
func FallbackVideos(topic string) []Video {
	return []Video{
		{Title: fmt.Sprintf("Understanding %s - Comprehensive Guide", topic), Channel: "LearningMastery", Link: "#"},
		{Title: fmt.Sprintf("Advanced %s Concepts Explained", topic), Channel: "AcademicExcellence", Link: "#"},
		{Title: fmt.Sprintf("%s Made Simple - Quick Tutorial", topic), Channel: "StudyPro", Link: "#"},
		{Title: fmt.Sprintf("%s for Beginners - Step by Step", topic), Channel: "EduChannel", Link: "#"},
	}
}

// FallbackBooks returns sample book listings for a topic.
func FallbackBooks(topic string) []Book {
	return []Book{
		{Title: fmt.Sprintf("Essential %s Handbook", topic), Author: "Dr. Robert Anderson", Rating: 4.8, Year: 2022},
		{Title: fmt.Sprintf("%s: A Comprehensive Approach", topic), Author: "Emily N. Morgan", Rating: 4.5, Year: 2021},
		{Title: fmt.Sprintf("Understanding %s - From Theory to Practice", topic), Author: "James P. Smith", Rating: 4.7, Year: 2023},
		{Title: fmt.Sprintf("Advanced %s Concepts", topic), Author: "David R. Williams", Rating: 4.6, Year: 2020},
		{Title: fmt.Sprintf("%s for Academic Excellence", topic), Author: "Sarah J. Thompson", Rating: 4.9, Year: 2023},
		{Title: fmt.Sprintf("The Complete Guide to %s", topic), Author: "Michael C. Brown", Rating: 4.4, Year: 2021},
	}
}

// FallbackSites returns sample website listings for a topic.
func FallbackSites(topic string) []Site {
	return []Site{
		{Title: fmt.Sprintf("%s - Online Course", topic), Provider: "Coursera", Kind: "Course", Duration: "8 weeks", Link: "#"},
		{Title: fmt.Sprintf("Interactive %s Tutorials", topic), Provider: "Khan Academy", Kind: "Interactive", Duration: "Self-paced", Link: "#"},
		{Title: fmt.Sprintf("%s - Practice Problems", topic), Provider: "MIT OpenCourseware", Kind: "Practice", Duration: "N/A", Link: "#"},
		{Title: fmt.Sprintf("%s - Expert Articles", topic), Provider: "ResearchGate", Kind: "Articles", Duration: "N/A", Link: "#"},
	}
}
