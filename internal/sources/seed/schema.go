package seed

// Document mirrors domain.SiteConfig in YAML. Pointers distinguish a
// missing section from an empty one.
type Document struct {
	Hero     *HeroProps     `yaml:"hero"`
	About    *AboutProps    `yaml:"about"`
	Projects []ProjectProps `yaml:"projects"`
}

type HeroProps struct {
	Status   string `yaml:"status"`
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
}

type AboutProps struct {
	Title        string `yaml:"title"`
	Description1 string `yaml:"description1"`
	Description2 string `yaml:"description2"`
}

type ProjectProps struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Category    string   `yaml:"category"`
	Description string   `yaml:"description"`
	ImageURL    string   `yaml:"imageUrl"`
	Tags        []string `yaml:"tags,omitempty"`
}
