package types

import "strings"

// AbsenceMarker is how an absent value is rendered for display.
const AbsenceMarker = "Not found"

// ExtractedInfo is the structured result of parsing one résumé.
type ExtractedInfo struct {
	Name           Optional[string]   `json:"name"`
	Email          Optional[string]   `json:"email"`
	Phone          Optional[string]   `json:"phone"`
	LinkedIn       Optional[string]   `json:"linkedin"`
	GitHub         Optional[string]   `json:"github"`
	Portfolio      Optional[string]   `json:"portfolio"`
	Education      Optional[[]string] `json:"education"`
	Skills         Optional[[]string] `json:"skills"`
	Certifications Optional[[]string] `json:"certifications"`
	Projects       Optional[[]string] `json:"projects"`
}

// Display renders an optional scalar, substituting AbsenceMarker.
func Display(o Optional[string]) string {
	return o.OrElse(AbsenceMarker)
}

// DisplayList renders an optional list, substituting a single AbsenceMarker entry.
func DisplayList(o Optional[[]string]) []string {
	return o.OrElse([]string{AbsenceMarker})
}

// ValidSkills returns the recovered skills with blank entries removed.
func (e ExtractedInfo) ValidSkills() []string {
	return nonBlank(e.Skills)
}

// ValidCertifications returns the recovered certifications with blank entries removed.
func (e ExtractedInfo) ValidCertifications() []string {
	return nonBlank(e.Certifications)
}

func nonBlank(o Optional[[]string]) []string {
	items, ok := o.Get()
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, s := range items {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}
