package services

import (
	"github.com/rankine-dev/rankine/internal/domain/entities"
)

// DeepCopyStudy creates an independent copy of a study.
// Vars values are copied shallowly; they are scalars in practice.
func DeepCopyStudy(original *entities.Study) *entities.Study {
	if original == nil {
		return nil
	}

	return &entities.Study{
		Metadata: original.Metadata,
		Vars:     CopyVars(original.Vars),
		Defaults: CopyStudyDefaults(original.Defaults),
		Extends:  CopyStringSlice(original.Extends),
		Cycles:   CopyStudyCycles(original.Cycles),
	}
}

// CopyStringSlice creates a copy of a string slice.
func CopyStringSlice(src []string) []string {
	if src == nil {
		return nil
	}
	dst := make([]string, len(src))
	copy(dst, src)
	return dst
}

// CopyVars creates a shallow copy of a vars map.
func CopyVars(src map[string]interface{}) map[string]interface{} {
	if src == nil {
		return nil
	}
	dst := make(map[string]interface{}, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// CopyStudyDefaults creates a deep copy of study defaults.
func CopyStudyDefaults(src *entities.StudyDefaults) *entities.StudyDefaults {
	if src == nil {
		return nil
	}
	return &entities.StudyDefaults{
		PLow:  copyFloat(src.PLow),
		PHigh: copyFloat(src.PHigh),
		Tags:  CopyStringSlice(src.Tags),
	}
}

// CopyStudyCycles creates a deep copy of cycle entries.
func CopyStudyCycles(src []entities.StudyCycle) []entities.StudyCycle {
	if src == nil {
		return nil
	}
	dst := make([]entities.StudyCycle, len(src))
	for i, c := range src {
		dst[i] = copyStudyCycle(c)
	}
	return dst
}

func copyStudyCycle(c entities.StudyCycle) entities.StudyCycle {
	return entities.StudyCycle{
		ID:             c.ID,
		Name:           c.Name,
		Description:    c.Description,
		PLow:           copyFloat(c.PLow),
		PHigh:          copyFloat(c.PHigh),
		THigh:          copyFloat(c.THigh),
		SuperheatRatio: copyFloat(c.SuperheatRatio),
		Tags:           CopyStringSlice(c.Tags),
	}
}

func copyFloat(src *float64) *float64 {
	if src == nil {
		return nil
	}
	v := *src
	return &v
}
