package memory

import (
	"context"

	"talent-hub-backend/internal/domain"
)

// SeedSummary reports how many records Seed inserted per kind.
type SeedSummary struct {
	Jobs        int `json:"jobs"`
	Candidates  int `json:"candidates"`
	Assessments int `json:"assessments"`
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

var seedJobs = []domain.JobInput{
	{
		Name:        "Senior React Developer",
		Mode:        "Remote",
		Type:        "Full-time",
		Exp:         "5+ years",
		Status:      domain.JobStatusOpen,
		Description: strPtr("We're looking for an experienced React developer to join our growing team. You'll be working on cutting-edge web applications using modern technologies like React, TypeScript, and Next.js."),
	},
	{
		Name:        "Product Designer",
		Mode:        "Hybrid",
		Type:        "Full-time",
		Exp:         "3+ years",
		Status:      domain.JobStatusOpen,
		Description: strPtr("Join our design team to create beautiful, user-centered products. Experience with Figma, design systems, and user research required."),
	},
	{
		Name:        "DevOps Engineer",
		Mode:        "On-site",
		Type:        "Contract",
		Exp:         "4+ years",
		Status:      domain.JobStatusArchived,
		Description: strPtr("Help us scale our infrastructure with AWS, Docker, and Kubernetes. Looking for someone with strong automation and monitoring skills."),
	},
	{
		Name:        "Data Scientist",
		Mode:        "Remote",
		Type:        "Full-time",
		Exp:         "2+ years",
		Status:      domain.JobStatusOpen,
		Description: strPtr("Analyze large datasets and build machine learning models to drive business insights. Python, SQL, and statistical analysis experience required."),
	},
	{
		Name:        "Mobile App Developer",
		Mode:        "Hybrid",
		Type:        "Part-time",
		Exp:         "3+ years",
		Status:      domain.JobStatusOpen,
		Description: strPtr("Develop cross-platform mobile applications using React Native. Experience with native iOS/Android development is a plus."),
	},
}

var seedCandidates = []domain.CandidateInput{
	{
		Name:       "Sarah Chen",
		Email:      "sarah.chen@email.com",
		Phone:      strPtr("+1 (555) 123-4567"),
		Position:   strPtr("Frontend Developer"),
		Experience: strPtr("5 years of experience building modern web applications with React, Vue.js, and TypeScript. Led frontend development for multiple successful products."),
		Skills:     []string{"React", "TypeScript", "JavaScript", "CSS", "HTML", "Vue.js", "Node.js"},
		Status:     domain.CandidateStatusActive,
	},
	{
		Name:       "Marcus Johnson",
		Email:      "marcus.j@email.com",
		Phone:      strPtr("+1 (555) 234-5678"),
		Position:   strPtr("UX/UI Designer"),
		Experience: strPtr("4 years specializing in user experience design and interface development. Strong background in user research and design systems."),
		Skills:     []string{"Figma", "Sketch", "Adobe Creative Suite", "Prototyping", "User Research", "Design Systems"},
		Status:     domain.CandidateStatusActive,
	},
	{
		Name:       "Elena Rodriguez",
		Email:      "elena.rodriguez@email.com",
		Phone:      strPtr("+1 (555) 345-6789"),
		Position:   strPtr("Data Analyst"),
		Experience: strPtr("3 years analyzing business data and creating insights. Proficient in SQL, Python, and data visualization tools."),
		Skills:     []string{"Python", "SQL", "Tableau", "Power BI", "Excel", "Statistics", "Machine Learning"},
		Status:     domain.CandidateStatusActive,
	},
	{
		Name:       "David Kim",
		Email:      "david.kim@email.com",
		Position:   strPtr("Backend Engineer"),
		Experience: strPtr("6 years developing scalable backend systems and APIs. Experience with microservices architecture and cloud platforms."),
		Skills:     []string{"Node.js", "Python", "PostgreSQL", "MongoDB", "AWS", "Docker", "Kubernetes"},
		Status:     domain.CandidateStatusActive,
	},
	{
		Name:       "Amanda Foster",
		Email:      "amanda.foster@email.com",
		Phone:      strPtr("+1 (555) 456-7890"),
		Position:   strPtr("Product Manager"),
		Experience: strPtr("4 years leading product development from conception to launch. Strong analytical and communication skills."),
		Skills:     []string{"Product Strategy", "Analytics", "Agile", "Scrum", "User Research", "Roadmapping"},
		Status:     domain.CandidateStatusActive,
	},
	{
		Name:       "James Wilson",
		Email:      "james.wilson@email.com",
		Phone:      strPtr("+1 (555) 567-8901"),
		Position:   strPtr("DevOps Engineer"),
		Experience: strPtr("5 years building and maintaining CI/CD pipelines and cloud infrastructure."),
		Skills:     []string{"AWS", "Docker", "Kubernetes", "Jenkins", "Terraform", "Monitoring", "Linux"},
		Status:     domain.CandidateStatusInactive,
	},
}

// seedAssessment refers to seeded records by their position in seedJobs and
// seedCandidates; the real ids are only known once those are created.
type seedAssessment struct {
	candidate int
	job       int
	input     domain.AssessmentInput
}

var seedAssessments = []seedAssessment{
	{0, 0, domain.AssessmentInput{
		Title:  "Technical Interview - React Skills",
		Type:   "Technical",
		Status: domain.AssessmentStatusCompleted,
		Score:  intPtr(85),
		Notes:  strPtr("Strong performance in React concepts, clean code implementation."),
	}},
	{1, 1, domain.AssessmentInput{
		Title:  "Design Portfolio Review",
		Type:   "Portfolio Review",
		Status: domain.AssessmentStatusCompleted,
		Score:  intPtr(92),
		Notes:  strPtr("Excellent design sense and user-centered approach."),
	}},
	{2, 3, domain.AssessmentInput{
		Title:  "Data Analysis Challenge",
		Type:   "Technical",
		Status: domain.AssessmentStatusInProgress,
		Notes:  strPtr("Currently working on SQL optimization tasks."),
	}},
	{3, 0, domain.AssessmentInput{
		Title:  "System Design Interview",
		Type:   "Technical",
		Status: domain.AssessmentStatusPending,
	}},
}

// Seed loads the sample dataset through the regular Create calls. Assessment
// references point at the jobs and candidates created by this same call.
func Seed(ctx context.Context, s *Storage) SeedSummary {
	var summary SeedSummary

	jobIDs := make([]string, 0, len(seedJobs))
	for _, in := range seedJobs {
		jobIDs = append(jobIDs, s.Jobs.Create(ctx, in).ID)
		summary.Jobs++
	}

	candidateIDs := make([]string, 0, len(seedCandidates))
	for _, in := range seedCandidates {
		candidateIDs = append(candidateIDs, s.Candidates.Create(ctx, in).ID)
		summary.Candidates++
	}

	for _, sa := range seedAssessments {
		in := sa.input
		in.CandidateID = strPtr(candidateIDs[sa.candidate])
		in.JobID = strPtr(jobIDs[sa.job])
		s.Assessments.Create(ctx, in)
		summary.Assessments++
	}

	return summary
}
