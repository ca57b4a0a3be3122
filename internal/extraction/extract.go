// Package extraction turns a structured CV document into the flat, ordered
// sequence of typed content items the curation pipeline operates on.
package extraction

import (
	"fmt"
	"strings"

	"github.com/jonathan/cv-curator/internal/analysis"
	"github.com/jonathan/cv-curator/internal/types"
)

// Impact boosts applied after base metadata analysis
const (
	achievementImpactBoost   = 0.2
	certificationImpactBoost = 0.3
	// skillRecency is fixed: skills are assumed current regardless of when
	// they were acquired
	skillRecency = 0.9
)

// Section labels attached to extracted items
const (
	sectionPersonal       = "Personal Information"
	sectionExperience     = "Experience"
	sectionEducation      = "Education"
	sectionSkills         = "Skills"
	sectionCertifications = "Certifications"
	sectionProjects       = "Projects"
)

// Extractor walks a CVData document and emits content items with metadata
// attached by the configured analyzer.
type Extractor struct {
	analyzer *analysis.Analyzer
}

// NewExtractor creates an extractor over the given metadata analyzer
func NewExtractor(analyzer *analysis.Analyzer) *Extractor {
	return &Extractor{analyzer: analyzer}
}

// ExtractContent produces the ordered content items for a CV. Item IDs are
// derived from section and position, so repeated extraction of the same CV
// yields identical sequences. Missing optional sections are skipped;
// missing sub-fields degrade to empty strings rather than failing the run.
func (e *Extractor) ExtractContent(cv *types.CVData) []types.ContentItem {
	items := make([]types.ContentItem, 0)

	items = append(items, e.extractPersonalInfo(cv.PersonalInfo)...)
	items = append(items, e.extractExperience(cv.Experience)...)
	items = append(items, e.extractEducation(cv.Education)...)
	items = append(items, e.extractSkills(cv.Skills)...)
	items = append(items, e.extractCertifications(cv.Certifications)...)
	items = append(items, e.extractProjects(cv.Projects)...)

	return items
}

func (e *Extractor) extractPersonalInfo(info types.PersonalInfo) []types.ContentItem {
	items := make([]types.ContentItem, 0, 2)

	if info.Summary != "" {
		items = append(items, types.ContentItem{
			ID:       "personal-summary",
			Type:     types.ContentSummary,
			Content:  info.Summary,
			Section:  sectionPersonal,
			Metadata: e.analyzer.AnalyzeContent(info.Summary, types.ContentSummary),
			Source:   types.ContentSource{Section: "personal_info", Index: -1, SubIndex: -1},
		})
	}

	if info.Name != "" {
		items = append(items, types.ContentItem{
			ID:       "personal-name",
			Type:     types.ContentPersonalInfo,
			Content:  info.Name,
			Section:  sectionPersonal,
			Metadata: e.analyzer.AnalyzeContent(info.Name, types.ContentPersonalInfo),
			Source:   types.ContentSource{Section: "personal_info", Index: -1, SubIndex: -1},
		})
	}

	return items
}

func (e *Extractor) extractExperience(experience []types.Experience) []types.ContentItem {
	items := make([]types.ContentItem, 0, len(experience))

	for i, exp := range experience {
		content := fmt.Sprintf("%s at %s", exp.Position, exp.Employer)
		metadata := e.analyzer.AnalyzeContent(content, types.ContentExperience)

		var dateRange *types.DateRange
		if exp.StartDate != "" || exp.EndDate != "" {
			end := exp.EndDate
			if end == "" {
				end = "Present"
			}
			dateRange = &types.DateRange{Start: exp.StartDate, End: end}
			metadata.DateRange = dateRange
			metadata.Recency = analysis.CalculateRecency(exp.StartDate, exp.EndDate)
		}

		items = append(items, types.ContentItem{
			ID:       fmt.Sprintf("experience-%d", i),
			Type:     types.ContentExperience,
			Content:  content,
			Section:  sectionExperience,
			Metadata: metadata,
			Source:   types.ContentSource{Section: "experience", Index: i, SubIndex: -1},
		})

		// Responsibilities and achievements inherit the parent's dates and
		// recency; achievements additionally get an impact boost.
		for j, responsibility := range exp.Responsibilities {
			respMetadata := e.analyzer.AnalyzeContent(responsibility, types.ContentResponsibility)
			respMetadata.DateRange = dateRange
			respMetadata.Recency = metadata.Recency

			items = append(items, types.ContentItem{
				ID:       fmt.Sprintf("experience-%d-resp-%d", i, j),
				Type:     types.ContentResponsibility,
				Content:  responsibility,
				Section:  sectionExperience,
				Metadata: respMetadata,
				Source:   types.ContentSource{Section: "experience", Index: i, SubIndex: j},
			})
		}

		for j, achievement := range exp.Achievements {
			achMetadata := e.analyzer.AnalyzeContent(achievement, types.ContentAchievement)
			achMetadata.DateRange = dateRange
			achMetadata.Recency = metadata.Recency
			achMetadata.Impact = clampScore(achMetadata.Impact + achievementImpactBoost)

			items = append(items, types.ContentItem{
				ID:       fmt.Sprintf("experience-%d-ach-%d", i, j),
				Type:     types.ContentAchievement,
				Content:  achievement,
				Section:  sectionExperience,
				Metadata: achMetadata,
				Source:   types.ContentSource{Section: "experience", Index: i, SubIndex: j},
			})
		}
	}

	return items
}

func (e *Extractor) extractEducation(education []types.Education) []types.ContentItem {
	items := make([]types.ContentItem, 0, len(education))

	for i, edu := range education {
		content := fmt.Sprintf("%s in %s from %s", edu.Degree, edu.Field, edu.Institution)
		metadata := e.analyzer.AnalyzeContent(content, types.ContentEducation)

		if edu.GraduationDate != "" || edu.StartDate != "" {
			metadata.DateRange = &types.DateRange{Start: edu.StartDate, End: edu.GraduationDate}
			metadata.Recency = analysis.CalculateRecency(edu.StartDate, edu.GraduationDate)
		}

		items = append(items, types.ContentItem{
			ID:       fmt.Sprintf("education-%d", i),
			Type:     types.ContentEducation,
			Content:  content,
			Section:  sectionEducation,
			Metadata: metadata,
			Source:   types.ContentSource{Section: "education", Index: i, SubIndex: -1},
		})
	}

	return items
}

func (e *Extractor) extractSkills(skills []string) []types.ContentItem {
	items := make([]types.ContentItem, 0, len(skills))

	for i, skill := range skills {
		skill = strings.TrimSpace(skill)
		metadata := e.analyzer.AnalyzeContent(skill, types.ContentSkill)
		metadata.Recency = skillRecency

		items = append(items, types.ContentItem{
			ID:       fmt.Sprintf("skill-%d", i),
			Type:     types.ContentSkill,
			Content:  skill,
			Section:  sectionSkills,
			Metadata: metadata,
			Source:   types.ContentSource{Section: "skills", Index: i, SubIndex: -1},
		})
	}

	return items
}

func (e *Extractor) extractCertifications(certifications []types.Certification) []types.ContentItem {
	items := make([]types.ContentItem, 0, len(certifications))

	for i, cert := range certifications {
		metadata := e.analyzer.AnalyzeContent(cert.Name, types.ContentCertification)

		if cert.DateObtained != "" {
			metadata.DateRange = &types.DateRange{Start: cert.DateObtained, End: cert.ExpirationDate}
			metadata.Recency = analysis.CalculateRecency(cert.DateObtained, cert.ExpirationDate)
		}

		metadata.Impact = clampScore(metadata.Impact + certificationImpactBoost)

		items = append(items, types.ContentItem{
			ID:       fmt.Sprintf("certification-%d", i),
			Type:     types.ContentCertification,
			Content:  cert.Name,
			Section:  sectionCertifications,
			Metadata: metadata,
			Source:   types.ContentSource{Section: "certifications", Index: i, SubIndex: -1},
		})
	}

	return items
}

func (e *Extractor) extractProjects(projects []types.Project) []types.ContentItem {
	items := make([]types.ContentItem, 0, len(projects))

	for i, project := range projects {
		content := fmt.Sprintf("%s: %s", project.Name, project.Description)
		metadata := e.analyzer.AnalyzeContent(content, types.ContentProject)

		if project.StartDate != "" || project.EndDate != "" {
			metadata.DateRange = &types.DateRange{Start: project.StartDate, End: project.EndDate}
			metadata.Recency = analysis.CalculateRecency(project.StartDate, project.EndDate)
		}

		items = append(items, types.ContentItem{
			ID:       fmt.Sprintf("project-%d", i),
			Type:     types.ContentProject,
			Content:  content,
			Section:  sectionProjects,
			Metadata: metadata,
			Source:   types.ContentSource{Section: "projects", Index: i, SubIndex: -1},
		})
	}

	return items
}

// clampScore clamps a score to [0, 1]
func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
