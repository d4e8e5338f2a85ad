package analytics

import (
	"cmp"
	"slices"

	"github.com/jordanlanch/nexuscrm/pkg/models"
)

// StageCount is one step of the pipeline funnel.
type StageCount struct {
	Stage     models.DealStage `json:"stage"`
	Count     int              `json:"count"`
	DealValue int              `json:"dealValue"`
	Share     float64          `json:"share"`
}

// SourceCount summarizes one acquisition channel.
type SourceCount struct {
	Source         models.LeadSource `json:"source"`
	Leads          int               `json:"leads"`
	Won            int               `json:"won"`
	ConversionRate float64           `json:"conversionRate"`
}

// Funnel counts leads and deal value per stage, in pipeline order. Stages
// without leads are included with zero counts.
func Funnel(leads []models.Lead) []StageCount {
	stages := models.AllDealStages()
	out := make([]StageCount, len(stages))
	index := make(map[models.DealStage]int, len(stages))
	for i, s := range stages {
		out[i].Stage = s
		index[s] = i
	}

	for _, l := range leads {
		i, ok := index[l.Stage]
		if !ok {
			continue
		}
		out[i].Count++
		out[i].DealValue += l.DealValue
	}

	for i := range out {
		out[i].Share = percent(float64(out[i].Count), float64(len(leads)))
	}
	return out
}

// BySource counts leads per channel, busiest first. Channels without leads
// are omitted; ties keep the canonical channel order.
func BySource(leads []models.Lead) []SourceCount {
	counts := make(map[models.LeadSource]*SourceCount)
	for _, l := range leads {
		sc, ok := counts[l.Source]
		if !ok {
			sc = &SourceCount{Source: l.Source}
			counts[l.Source] = sc
		}
		sc.Leads++
		if l.Stage == models.StageClosedWon {
			sc.Won++
		}
	}

	out := make([]SourceCount, 0, len(counts))
	for _, src := range models.AllLeadSources() {
		if sc, ok := counts[src]; ok {
			out = append(out, *sc)
			delete(counts, src)
		}
	}
	// channels outside the known set go last, by name
	rest := make([]SourceCount, 0, len(counts))
	for _, sc := range counts {
		rest = append(rest, *sc)
	}
	slices.SortFunc(rest, func(a, b SourceCount) int { return cmp.Compare(a.Source, b.Source) })
	out = append(out, rest...)

	for i := range out {
		out[i].ConversionRate = percent(float64(out[i].Won), float64(out[i].Leads))
	}
	slices.SortStableFunc(out, func(a, b SourceCount) int { return cmp.Compare(b.Leads, a.Leads) })
	return out
}
