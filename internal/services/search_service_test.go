package services_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/jobscout-app/jobscout/internal/services"
)

// ── Method selection ───────────────────────────────────────────────────────

func TestSearch_MockMethodCombinesBothSources(t *testing.T) {
	svc := services.NewSearchService()

	jobs := svc.Search("Go", "", services.MethodMock)
	if len(jobs) != 4 {
		t.Fatalf("Search(mock) returned %d jobs, want 4", len(jobs))
	}
	// Sample listings lead, board listings follow.
	if jobs[0].Company != "Tech Company A" || jobs[3].Company != "Open Source Inc" {
		t.Errorf("unexpected source order: %q ... %q", jobs[0].Company, jobs[3].Company)
	}
}

func TestSearch_EmptyMethodDefaultsToMock(t *testing.T) {
	svc := services.NewSearchService()
	if got := len(svc.Search("Go", "", "")); got != 4 {
		t.Errorf("Search with empty method returned %d jobs, want 4", got)
	}
}

func TestSearch_BoardMethodsReturnBoardJobsOnly(t *testing.T) {
	svc := services.NewSearchService()
	for _, method := range []string{services.MethodBoards, services.MethodCompanies, "nonsense"} {
		jobs := svc.Search("Go", "", method)
		if len(jobs) != 2 {
			t.Errorf("Search(%q) returned %d jobs, want 2", method, len(jobs))
			continue
		}
		for _, job := range jobs {
			if job.Salary == "" || job.Source == "" {
				t.Errorf("Search(%q) job %q should carry salary and source", method, job.Title)
			}
		}
	}
}

// ── Templating ─────────────────────────────────────────────────────────────

func TestSearch_TitlesAreTemplatedFromRole(t *testing.T) {
	svc := services.NewSearchService()

	jobs := svc.Search("Go", "", services.MethodMock)
	want := []string{"Go Developer", "Senior Go", "Go Specialist", "Junior Go"}
	for i, job := range jobs {
		if job.Title != want[i] {
			t.Errorf("jobs[%d].Title = %q, want %q", i, job.Title, want[i])
		}
	}
}

func TestSearch_SampleSkillsIncludeLoweredRole(t *testing.T) {
	svc := services.NewSearchService()

	jobs := svc.Search("DevOps", "", services.MethodMock)
	want := []string{"devops", "python", "javascript"}
	if !reflect.DeepEqual(jobs[0].Skills, want) {
		t.Errorf("jobs[0].Skills = %v, want %v", jobs[0].Skills, want)
	}
}

func TestSearch_LocationDefaults(t *testing.T) {
	svc := services.NewSearchService()

	jobs := svc.Search("Go", "", services.MethodMock)
	want := []string{"Remote", "San Francisco, CA", "New York, NY", "Remote"}
	for i, job := range jobs {
		if job.Location != want[i] {
			t.Errorf("jobs[%d].Location = %q, want default %q", i, job.Location, want[i])
		}
	}
}

func TestSearch_ExplicitLocationWinsEverywhere(t *testing.T) {
	svc := services.NewSearchService()

	for _, job := range svc.Search("Go", "Berlin", services.MethodMock) {
		if job.Location != "Berlin" {
			t.Errorf("job %q Location = %q, want %q", job.Title, job.Location, "Berlin")
		}
	}
}

// ── Dates ──────────────────────────────────────────────────────────────────

func TestSearch_BoardJobsPostedToday(t *testing.T) {
	svc := services.NewSearchService()
	today := time.Now().Format("2006-01-02")

	for _, job := range svc.Search("Go", "", services.MethodBoards) {
		if job.PostedDate != today {
			t.Errorf("board job %q PostedDate = %q, want %q", job.Title, job.PostedDate, today)
		}
	}
}

func TestSearch_SampleJobsHaveFixedDates(t *testing.T) {
	svc := services.NewSearchService()

	jobs := svc.Search("Go", "", services.MethodMock)
	if jobs[0].PostedDate != "2025-06-01" || jobs[1].PostedDate != "2025-06-02" {
		t.Errorf("sample dates = %q, %q; want the fixed demo dates", jobs[0].PostedDate, jobs[1].PostedDate)
	}
}
