// Package clustering groups content items into thematic clusters and scores
// each cluster's relevance to a target job.
package clustering

import (
	"fmt"
	"strings"

	"github.com/jonathan/cv-curator/internal/types"
)

// maxClusterKeywords caps the representative keywords kept per cluster
const maxClusterKeywords = 10

// clusterOrder fixes the cluster emission order to the extraction order of
// content types, so repeated runs produce identical cluster lists.
var clusterOrder = []types.ContentType{
	types.ContentSummary,
	types.ContentPersonalInfo,
	types.ContentExperience,
	types.ContentResponsibility,
	types.ContentAchievement,
	types.ContentEducation,
	types.ContentSkill,
	types.ContentCertification,
	types.ContentProject,
}

// ClusterContent builds one cluster per distinct content type present,
// collecting item ids and the first ten unique keywords, then scores each
// cluster's relevance against the job context.
func ClusterContent(items []types.ContentItem, job *types.JobContext) []types.ContentCluster {
	byType := make(map[types.ContentType][]types.ContentItem)
	for _, item := range items {
		byType[item.Type] = append(byType[item.Type], item)
	}

	jobKeywords := buildJobKeywords(job)

	clusters := make([]types.ContentCluster, 0, len(byType))
	for _, contentType := range clusterOrder {
		typeItems := byType[contentType]
		if len(typeItems) == 0 {
			continue
		}

		cluster := buildCluster(contentType, typeItems)
		cluster.JobRelevance = clusterJobRelevance(cluster.Keywords, typeItems, jobKeywords)
		clusters = append(clusters, cluster)
	}

	return clusters
}

// buildCluster groups all items of one type into a single cluster
func buildCluster(contentType types.ContentType, items []types.ContentItem) types.ContentCluster {
	contentIDs := make([]string, 0, len(items))
	seen := make(map[string]bool)
	keywords := make([]string, 0, maxClusterKeywords)

	for _, item := range items {
		contentIDs = append(contentIDs, item.ID)
		for _, keyword := range item.Metadata.Keywords {
			if seen[keyword] {
				continue
			}
			seen[keyword] = true
			if len(keywords) < maxClusterKeywords {
				keywords = append(keywords, keyword)
			}
		}
	}

	theme := string(contentType)
	theme = strings.ToUpper(theme[:1]) + theme[1:]

	return types.ContentCluster{
		ID:         fmt.Sprintf("cluster-%s", contentType),
		Theme:      theme,
		ContentIDs: contentIDs,
		Keywords:   keywords,
	}
}

// clusterJobRelevance is the fraction of the cluster's full keyword set that
// matches a job keyword by substring in either direction.
func clusterJobRelevance(_ []string, items []types.ContentItem, jobKeywords []string) float64 {
	clusterKeywords := make([]string, 0)
	for _, item := range items {
		for _, keyword := range item.Metadata.Keywords {
			clusterKeywords = append(clusterKeywords, strings.ToLower(keyword))
		}
	}

	if len(clusterKeywords) == 0 {
		return 0
	}

	matches := 0
	for _, ck := range clusterKeywords {
		for _, jk := range jobKeywords {
			if strings.Contains(jk, ck) || strings.Contains(ck, jk) {
				matches++
				break
			}
		}
	}

	return float64(matches) / float64(len(clusterKeywords))
}

// buildJobKeywords flattens the job's required skills, responsibility words,
// and description words into one lowercase pool, dropping short tokens.
func buildJobKeywords(job *types.JobContext) []string {
	if job == nil {
		return nil
	}

	keywords := make([]string, 0)
	appendKeyword := func(word string) {
		word = strings.ToLower(strings.TrimSpace(word))
		if len(word) > 2 {
			keywords = append(keywords, word)
		}
	}

	for _, skill := range job.RequiredSkills {
		appendKeyword(skill)
	}
	for _, responsibility := range job.Responsibilities {
		for _, word := range strings.Fields(responsibility) {
			appendKeyword(word)
		}
	}
	for _, word := range strings.Fields(job.Description) {
		appendKeyword(word)
	}

	return keywords
}
