package analysis

import (
	"sort"
	"strings"

	"github.com/jonathan/cv-curator/internal/types"
)

// defaultSectorKeywords maps sector tags to the terms that indicate them.
// Content matching no sector is tagged private.
var defaultSectorKeywords = map[string][]string{
	types.SectorFederal: {
		"federal", "government", "usajobs", "clearance", "security",
		"policy", "regulation", "compliance", "federal agency",
	},
	types.SectorState: {
		"state", "municipal", "local government", "public sector",
		"cms", "recruitment",
	},
	types.SectorHealthcare: {
		"healthcare", "medical", "hospital", "patient", "clinical",
		"nursing", "physician", "ehr", "hipaa",
	},
	types.SectorTech: {
		"software", "programming", "development", "javascript", "python",
		"react", "api", "database", "cloud", "devops",
	},
}

// defaultSectorOrder fixes the tag emission order so classification output
// is deterministic
var defaultSectorOrder = []string{
	types.SectorFederal,
	types.SectorState,
	types.SectorHealthcare,
	types.SectorTech,
}

// IdentifySectors tags content with every sector whose dictionary matches
// the content text or its extracted keywords. Content matching nothing is
// tagged private. An item may carry multiple tags.
func (a *Analyzer) IdentifySectors(content string, keywords []string) []string {
	contentLower := strings.ToLower(content)
	keywordSet := make(map[string]bool, len(keywords))
	for _, k := range keywords {
		keywordSet[strings.ToLower(k)] = true
	}

	sectors := make([]string, 0, 2)
	for _, sector := range a.sectorOrder {
		for _, term := range a.sectorKeywords[sector] {
			if strings.Contains(contentLower, term) || keywordSet[term] {
				sectors = append(sectors, sector)
				break
			}
		}
	}

	if len(sectors) == 0 {
		sectors = append(sectors, types.SectorPrivate)
	}

	return sectors
}

// sortedSectorNames gives custom lexicons a stable evaluation order
func sortedSectorNames(sectors map[string][]string) []string {
	names := make([]string, 0, len(sectors))
	for name := range sectors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
