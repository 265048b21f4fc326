package services

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// skillVocabulary is the fixed list of skills we scan for, in the order
// the frontend displays them.
var skillVocabulary = []string{
	"python", "javascript", "java", "react", "node.js", "sql",
	"html", "css", "aws", "docker", "kubernetes", "git",
	"machine learning", "data science", "ui/ux", "design",
}

var (
	// RFC-lite: good enough for résumés, not a validator.
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	// Loose on purpose: optional country code, dots/dashes/spaces as
	// separators, optional parens around the area code.
	phonePattern = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
)

// ResumeAnalysis is the result of analyzing one résumé text.
// Email and Phone are nil when nothing matched; the HTTP layer decides
// how to render absence.
type ResumeAnalysis struct {
	Skills     []string
	Email      *string
	Phone      *string
	TextLength int
	WordCount  int
}

type ResumeService struct{}

func NewResumeService() *ResumeService {
	return &ResumeService{}
}

// AnalyzeText runs the keyword/regex analysis over raw résumé text.
// Pure function of the input: no storage, no network.
func (s *ResumeService) AnalyzeText(text string) (*ResumeAnalysis, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ValidationError{Msg: "resume text is empty"}
	}

	textLower := strings.ToLower(text)

	// --- RULE 1: Skill Match ---
	// Plain substring containment. That means "javascript" in the text also
	// lights up "java" in the results. Known quirk, kept as-is: fixing it
	// needs word boundaries and the skill list has entries like "node.js"
	// and "ui/ux" where word boundaries get murky fast.
	skills := make([]string, 0)
	for _, skill := range skillVocabulary {
		if strings.Contains(textLower, skill) {
			skills = append(skills, skill)
		}
	}

	// --- RULE 2: Contact Extraction ---
	// First match wins, scanning left to right.
	var email, phone *string
	if m := emailPattern.FindString(text); m != "" {
		email = &m
	}
	if m := phonePattern.FindString(text); m != "" {
		phone = &m
	}

	return &ResumeAnalysis{
		Skills:     skills,
		Email:      email,
		Phone:      phone,
		TextLength: utf8.RuneCountInString(text),
		WordCount:  len(strings.Fields(text)),
	}, nil
}
