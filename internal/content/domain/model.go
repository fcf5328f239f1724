package domain

// Collection names in the document store.
const (
	CollectionProjects    = "projects"
	CollectionExperiences = "experiences"
)

// Categories is the fixed display set a project category must belong to.
var Categories = []string{
	"DevOps & Automation",
	"Cloud Infrastructure",
	"Web Development",
	"Other",
}

// IsCategory reports whether c is one of Categories.
func IsCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Project is a portfolio entry in the "projects" collection.
type Project struct {
	ID          string   `json:"id" firestore:"-"`
	Title       string   `json:"title" firestore:"title"`
	Category    string   `json:"category" firestore:"category"`
	Description string   `json:"description" firestore:"description"`
	Overview    string   `json:"overview" firestore:"overview"`
	KeyFeatures []string `json:"keyFeatures" firestore:"keyFeatures"`
	TechStack   []string `json:"techStack" firestore:"techStack"`
	Image       string   `json:"image" firestore:"image"`
	GithubLink  string   `json:"githubLink" firestore:"githubLink"`
	LiveLink    string   `json:"liveLink" firestore:"liveLink"`
}

// Summary is the long-form text shown on the details page, falling back
// to the card description.
func (p Project) Summary() string {
	if p.Overview != "" {
		return p.Overview
	}
	return p.Description
}

// Experience is a role in the "experiences" collection.
type Experience struct {
	ID           string   `json:"id" firestore:"-"`
	Role         string   `json:"role" firestore:"role"`
	Company      string   `json:"company" firestore:"company"`
	Website      string   `json:"website" firestore:"website"`
	Period       string   `json:"period" firestore:"period"`
	Description  string   `json:"description" firestore:"description"`
	Technologies []string `json:"technologies" firestore:"technologies"`
	CreatedAt    string   `json:"createdAt" firestore:"createdAt"`
}
