package services

import (
	"github.com/rankine-dev/rankine/internal/domain/entities"
)

// StudyMerger merges studies according to extends semantics.
//
// Merge Semantics:
//   - Metadata: overlay wins, fallback to base if empty
//   - Vars: overlay wins on conflict
//   - Defaults: overlay wins per field, tags concatenate
//   - Cycles: merge by ID (same ID = replace, new ID = append)
//   - Extends: NOT propagated (already resolved)
type StudyMerger struct{}

// NewStudyMerger creates a new study merger service.
func NewStudyMerger() *StudyMerger {
	return &StudyMerger{}
}

// MergeAll merges parents left-to-right, then applies the current study.
// Returns a NEW study (does not mutate inputs).
func (m *StudyMerger) MergeAll(parents []*entities.Study, current *entities.Study) *entities.Study {
	if len(parents) == 0 {
		return DeepCopyStudy(current)
	}

	result := DeepCopyStudy(parents[0])
	for _, parent := range parents[1:] {
		result = m.merge(result, parent)
	}
	return m.merge(result, current)
}

// Merge combines two studies with overlay winning on conflicts.
func (m *StudyMerger) Merge(base, overlay *entities.Study) *entities.Study {
	return m.merge(DeepCopyStudy(base), overlay)
}

func (m *StudyMerger) merge(base, overlay *entities.Study) *entities.Study {
	return &entities.Study{
		Metadata: m.mergeMetadata(base.Metadata, overlay.Metadata),
		Vars:     m.mergeVars(base.Vars, overlay.Vars),
		Defaults: m.mergeDefaults(base.Defaults, overlay.Defaults),
		Cycles:   m.mergeCycles(base.Cycles, overlay.Cycles),
	}
}

func (m *StudyMerger) mergeMetadata(base, overlay entities.StudyMetadata) entities.StudyMetadata {
	result := overlay
	if result.Name == "" {
		result.Name = base.Name
	}
	if result.Version == "" {
		result.Version = base.Version
	}
	if result.Description == "" {
		result.Description = base.Description
	}
	if result.Requires == "" {
		result.Requires = base.Requires
	}
	return result
}

func (m *StudyMerger) mergeVars(base, overlay map[string]interface{}) map[string]interface{} {
	if base == nil && overlay == nil {
		return nil
	}
	result := make(map[string]interface{}, len(base)+len(overlay))
	for k, v := range base {
		result[k] = v
	}
	for k, v := range overlay {
		result[k] = v
	}
	return result
}

func (m *StudyMerger) mergeDefaults(base, overlay *entities.StudyDefaults) *entities.StudyDefaults {
	if base == nil && overlay == nil {
		return nil
	}
	result := &entities.StudyDefaults{}
	if base != nil {
		result = CopyStudyDefaults(base)
	}
	if overlay != nil {
		if overlay.PLow != nil {
			result.PLow = copyFloat(overlay.PLow)
		}
		if overlay.PHigh != nil {
			result.PHigh = copyFloat(overlay.PHigh)
		}
		result.Tags = mergeStringSliceDedup(result.Tags, overlay.Tags)
	}
	return result
}

// mergeCycles keeps base order, replacing entries the overlay redefines,
// then appends overlay-only entries in overlay order.
func (m *StudyMerger) mergeCycles(base, overlay []entities.StudyCycle) []entities.StudyCycle {
	overlayByID := make(map[string]entities.StudyCycle, len(overlay))
	for _, c := range overlay {
		overlayByID[c.ID] = c
	}

	seen := make(map[string]bool, len(base))
	result := make([]entities.StudyCycle, 0, len(base)+len(overlay))
	for _, c := range base {
		seen[c.ID] = true
		if replacement, ok := overlayByID[c.ID]; ok {
			result = append(result, copyStudyCycle(replacement))
			continue
		}
		result = append(result, copyStudyCycle(c))
	}
	for _, c := range overlay {
		if !seen[c.ID] {
			seen[c.ID] = true
			result = append(result, copyStudyCycle(c))
		}
	}
	return result
}

// mergeStringSliceDedup concatenates two slices and deduplicates, preserving order.
func mergeStringSliceDedup(base, overlay []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(base)+len(overlay))
	for _, list := range [][]string{base, overlay} {
		for _, s := range list {
			if !seen[s] {
				seen[s] = true
				result = append(result, s)
			}
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}
