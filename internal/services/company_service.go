package services

import (
	"fmt"
	"strings"
)

// CompanyInfo is a templated company profile. Demo data: every company
// is a mid-size tech company with a guessed website.
type CompanyInfo struct {
	Name        string `json:"name"`
	Industry    string `json:"industry"`
	Size        string `json:"size"`
	Website     string `json:"website"`
	Description string `json:"description"`
}

type CompanyService struct{}

func NewCompanyService() *CompanyService {
	return &CompanyService{}
}

// Lookup builds the profile from the name alone. The website guess is
// the usual trick: lowercase, strip spaces, slap .com on it.
func (s *CompanyService) Lookup(name string) CompanyInfo {
	return CompanyInfo{
		Name:        name,
		Industry:    "Technology",
		Size:        "50-200 employees",
		Website:     fmt.Sprintf("https://%s.com", strings.ReplaceAll(strings.ToLower(name), " ", "")),
		Description: fmt.Sprintf("%s is a growing technology company.", name),
	}
}
