package domain

// Fields is the schemaless payload of a stored document.
type Fields map[string]interface{}

// Document is a record addressed by collection name and id.
type Document struct {
	ID     string
	Fields Fields
}

// Clone returns a copy whose maps and string slices are not shared with f.
func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		switch t := v.(type) {
		case []string:
			out[k] = append([]string(nil), t...)
		case []interface{}:
			out[k] = append([]interface{}(nil), t...)
		default:
			out[k] = v
		}
	}
	return out
}

// String reads a string field, "" when absent or of another type.
func (f Fields) String(key string) string {
	if s, ok := f[key].(string); ok {
		return s
	}
	return ""
}

// Strings reads a comma-delimited sequence field. Stores hand arrays back
// either as []string or as []interface{}; a bare string is treated as
// comma input.
func (f Fields) Strings(key string) []string {
	return f.sequence(key, SplitComma)
}

// Lines is Strings for newline-delimited fields such as keyFeatures.
func (f Fields) Lines(key string) []string {
	return f.sequence(key, SplitLines)
}

func (f Fields) sequence(key string, split func(string) []string) []string {
	switch t := f[key].(type) {
	case []string:
		return append([]string{}, t...)
	case []interface{}:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		return split(t)
	default:
		return []string{}
	}
}

// ProjectFields renders a project as store fields. The id is not part of
// the payload.
func ProjectFields(p Project) Fields {
	return Fields{
		"title":       p.Title,
		"category":    p.Category,
		"description": p.Description,
		"overview":    p.Overview,
		"keyFeatures": nonNil(p.KeyFeatures),
		"techStack":   nonNil(p.TechStack),
		"image":       p.Image,
		"githubLink":  p.GithubLink,
		"liveLink":    p.LiveLink,
	}
}

// ProjectFromDocument decodes a stored project.
func ProjectFromDocument(d Document) Project {
	f := d.Fields
	return Project{
		ID:          d.ID,
		Title:       f.String("title"),
		Category:    f.String("category"),
		Description: f.String("description"),
		Overview:    f.String("overview"),
		KeyFeatures: f.Lines("keyFeatures"),
		TechStack:   f.Strings("techStack"),
		Image:       f.String("image"),
		GithubLink:  f.String("githubLink"),
		LiveLink:    f.String("liveLink"),
	}
}

// ExperienceFields renders an experience as store fields.
func ExperienceFields(e Experience) Fields {
	return Fields{
		"role":         e.Role,
		"company":      e.Company,
		"website":      e.Website,
		"period":       e.Period,
		"description":  e.Description,
		"technologies": nonNil(e.Technologies),
		"createdAt":    e.CreatedAt,
	}
}

// ExperienceFromDocument decodes a stored experience.
func ExperienceFromDocument(d Document) Experience {
	f := d.Fields
	return Experience{
		ID:           d.ID,
		Role:         f.String("role"),
		Company:      f.String("company"),
		Website:      f.String("website"),
		Period:       f.String("period"),
		Description:  f.String("description"),
		Technologies: f.Strings("technologies"),
		CreatedAt:    f.String("createdAt"),
	}
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
