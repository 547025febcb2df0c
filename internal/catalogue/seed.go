package catalogue

// Static skill vocabulary. This is the last-resort tier of the catalogue and
// the seed data for the skills table: the service stays useful for resume
// parsing and job matching even before (or without) a database.
//
// Aliases are matched case-insensitively and cover abbreviations,
// punctuation variants and German translations, since a large share of the
// resumes this system sees are German.

// SeedEntries returns a copy of the built-in vocabulary for store seeding.
func SeedEntries() []Entry {
	out := make([]Entry, len(seedEntries))
	copy(out, seedEntries)
	return out
}

var seedEntries = []Entry{
	// Programming languages
	{Name: "JavaScript", Category: "Programming", Aliases: []string{"js", "java script", "ecmascript"}},
	{Name: "TypeScript", Category: "Programming", Aliases: []string{"ts", "type script"}},
	{Name: "Python", Category: "Programming", Aliases: []string{"py"}},
	{Name: "Java", Category: "Programming", Aliases: []string{}},
	{Name: "C", Category: "Programming", Aliases: []string{"c language", "ansi c"}},
	{Name: "C++", Category: "Programming", Aliases: []string{"cpp", "c plus plus"}},
	{Name: "C#", Category: "Programming", Aliases: []string{"c sharp", "c-sharp"}},
	{Name: "Go", Category: "Programming", Aliases: []string{"golang"}},
	{Name: "Rust", Category: "Programming", Aliases: []string{}},
	{Name: "PHP", Category: "Programming", Aliases: []string{}},
	{Name: "Ruby", Category: "Programming", Aliases: []string{}},
	{Name: "Swift", Category: "Programming", Aliases: []string{}},
	{Name: "Kotlin", Category: "Programming", Aliases: []string{}},
	{Name: "Scala", Category: "Programming", Aliases: []string{}},
	{Name: "Dart", Category: "Programming", Aliases: []string{}},
	{Name: "R", Category: "Programming", Aliases: []string{"r language"}},
	{Name: "SQL", Category: "Programming", Aliases: []string{}},
	{Name: "Bash", Category: "Programming", Aliases: []string{"shell scripting"}},

	// Frontend
	{Name: "HTML", Category: "Frontend", Aliases: []string{"html5"}},
	{Name: "CSS", Category: "Frontend", Aliases: []string{"css3"}},
	{Name: "Sass", Category: "Frontend", Aliases: []string{"scss"}},
	{Name: "React", Category: "Frontend", Aliases: []string{"reactjs", "react.js", "react js"}},
	{Name: "React Native", Category: "Frontend", Aliases: []string{}},
	{Name: "Next.js", Category: "Frontend", Aliases: []string{"nextjs", "next js"}},
	{Name: "Angular", Category: "Frontend", Aliases: []string{"angularjs", "angular.js", "angular js"}},
	{Name: "Vue.js", Category: "Frontend", Aliases: []string{"vue", "vuejs", "vue js"}},
	{Name: "Svelte", Category: "Frontend", Aliases: []string{"sveltejs"}},
	{Name: "Tailwind CSS", Category: "Frontend", Aliases: []string{"tailwind", "tailwindcss"}},
	{Name: "Bootstrap", Category: "Frontend", Aliases: []string{}},

	// Backend
	{Name: "Node.js", Category: "Backend", Aliases: []string{"node", "nodejs", "node js"}},
	{Name: "Express", Category: "Backend", Aliases: []string{"expressjs", "express.js", "express js"}},
	{Name: "NestJS", Category: "Backend", Aliases: []string{"nest.js", "nest js"}},
	{Name: "Django", Category: "Backend", Aliases: []string{}},
	{Name: "Flask", Category: "Backend", Aliases: []string{}},
	{Name: "FastAPI", Category: "Backend", Aliases: []string{"fast api"}},
	{Name: "Spring Boot", Category: "Backend", Aliases: []string{"spring", "spring-boot"}},
	{Name: "Ruby on Rails", Category: "Backend", Aliases: []string{"rails"}},
	{Name: "Laravel", Category: "Backend", Aliases: []string{}},
	{Name: ".NET", Category: "Backend", Aliases: []string{"dotnet", "asp.net", "asp net", "aspnet"}},
	{Name: "GraphQL", Category: "Backend", Aliases: []string{}},
	{Name: "REST", Category: "Backend", Aliases: []string{"restful", "rest api", "restful api"}},

	// Databases
	{Name: "PostgreSQL", Category: "Databases", Aliases: []string{"postgres", "psql"}},
	{Name: "MySQL", Category: "Databases", Aliases: []string{"maria db", "mariadb"}},
	{Name: "SQLite", Category: "Databases", Aliases: []string{}},
	{Name: "MongoDB", Category: "Databases", Aliases: []string{"mongo"}},
	{Name: "Redis", Category: "Databases", Aliases: []string{}},
	{Name: "Elasticsearch", Category: "Databases", Aliases: []string{}},

	// Cloud / DevOps
	{Name: "AWS", Category: "Cloud", Aliases: []string{"amazon web services"}},
	{Name: "Google Cloud", Category: "Cloud", Aliases: []string{"gcp", "google cloud platform"}},
	{Name: "Azure", Category: "Cloud", Aliases: []string{"microsoft azure"}},
	{Name: "Docker", Category: "DevOps", Aliases: []string{"docker compose", "docker-compose"}},
	{Name: "Kubernetes", Category: "DevOps", Aliases: []string{"k8s"}},
	{Name: "CI/CD", Category: "DevOps", Aliases: []string{"cicd", "ci cd"}},
	{Name: "GitHub Actions", Category: "DevOps", Aliases: []string{"gh actions"}},
	{Name: "GitLab CI", Category: "DevOps", Aliases: []string{"gitlab-ci", "gitlab ci/cd"}},
	{Name: "Terraform", Category: "DevOps", Aliases: []string{}},
	{Name: "Ansible", Category: "DevOps", Aliases: []string{}},
	{Name: "Linux", Category: "DevOps", Aliases: []string{"gnu/linux"}},
	{Name: "Nginx", Category: "DevOps", Aliases: []string{}},

	// Tools
	{Name: "Git", Category: "Tools", Aliases: []string{"github", "gitlab", "bitbucket"}},
	{Name: "JIRA", Category: "Tools", Aliases: []string{}},
	{Name: "Figma", Category: "Tools", Aliases: []string{}},
	{Name: "Jest", Category: "Tools", Aliases: []string{}},
	{Name: "Cypress", Category: "Tools", Aliases: []string{}},
	{Name: "Playwright", Category: "Tools", Aliases: []string{}},
	{Name: "MS Office", Category: "Tools", Aliases: []string{"microsoft office"}},
	{Name: "Excel", Category: "Tools", Aliases: []string{"ms excel", "microsoft excel", "tabellenkalkulation"}},
	{Name: "Word", Category: "Tools", Aliases: []string{"ms word", "microsoft word", "textverarbeitung"}},
	{Name: "PowerPoint", Category: "Tools", Aliases: []string{"ms powerpoint", "microsoft powerpoint", "präsentation"}},

	// Data / AI
	{Name: "Machine Learning", Category: "Data", Aliases: []string{"ml", "maschinelles lernen"}},
	{Name: "Artificial Intelligence", Category: "Data", Aliases: []string{"künstliche intelligenz", "ki"}},
	{Name: "Data Analysis", Category: "Data", Aliases: []string{"datenanalyse", "auswertung"}},
	{Name: "Pandas", Category: "Data", Aliases: []string{}},

	// Spoken languages
	{Name: "English", Category: "Languages", Aliases: []string{"englisch"}},
	{Name: "German", Category: "Languages", Aliases: []string{"deutsch"}},
	{Name: "French", Category: "Languages", Aliases: []string{"französisch", "francais"}},
	{Name: "Spanish", Category: "Languages", Aliases: []string{"spanisch", "espanol"}},
	{Name: "Italian", Category: "Languages", Aliases: []string{"italienisch"}},
	{Name: "Arabic", Category: "Languages", Aliases: []string{"arabisch", "arabe"}},
	{Name: "Russian", Category: "Languages", Aliases: []string{"russisch"}},
	{Name: "Turkish", Category: "Languages", Aliases: []string{"türkisch"}},
	{Name: "Dutch", Category: "Languages", Aliases: []string{"nederlands"}},

	// Soft skills
	{Name: "Teamwork", Category: "Soft Skills", Aliases: []string{"teamarbeit", "teamfähigkeit", "team player", "collaboration"}},
	{Name: "Communication", Category: "Soft Skills", Aliases: []string{"kommunikation", "verbal communication", "written communication"}},
	{Name: "Leadership", Category: "Soft Skills", Aliases: []string{"führungskompetenz"}},
	{Name: "Problem Solving", Category: "Soft Skills", Aliases: []string{"problemlösung", "analytical thinking", "analytisches denken"}},
	{Name: "Time Management", Category: "Soft Skills", Aliases: []string{"zeitmanagement", "deadline management"}},
	{Name: "Adaptability", Category: "Soft Skills", Aliases: []string{"anpassungsfähigkeit", "flexibilität"}},
	{Name: "Organization", Category: "Soft Skills", Aliases: []string{"organisation", "organisationsfähigkeit", "organizational skills"}},
	{Name: "Attention to Detail", Category: "Soft Skills", Aliases: []string{"detailorientiert", "genauigkeit"}},
	{Name: "Creativity", Category: "Soft Skills", Aliases: []string{"kreativität"}},

	// Other
	{Name: "Project Management", Category: "Other", Aliases: []string{"projektmanagement", "scrum", "kanban", "agile"}},
	{Name: "Customer Service", Category: "Other", Aliases: []string{"kundendienst", "kundenservice", "kundenbetreuung"}},
	{Name: "Sales", Category: "Other", Aliases: []string{"vertrieb", "verkauf"}},
	{Name: "Marketing", Category: "Other", Aliases: []string{}},
	{Name: "Accounting", Category: "Other", Aliases: []string{"buchhaltung"}},
	{Name: "Teaching", Category: "Other", Aliases: []string{"lehre"}},
	{Name: "Driving License", Category: "Other", Aliases: []string{"führerschein"}},
}

// fallbackAliases resolves very common variants straight to their canonical
// display form. It sits between the store and the seed scan, covering the
// case where the store is offline and a term hides in no seed alias list.
var fallbackAliases = map[string]string{
	// Web core
	"html":        "HTML",
	"html5":       "HTML",
	"css":         "CSS",
	"css3":        "CSS",
	"sass":        "Sass",
	"scss":        "Sass",
	"javascript":  "JavaScript",
	"java script": "JavaScript",
	"js":          "JavaScript",
	"typescript":  "TypeScript",
	"type script": "TypeScript",
	"ts":          "TypeScript",

	// React / Next
	"react":    "React",
	"reactjs":  "React",
	"react.js": "React",
	"react js": "React",
	"next":     "Next.js",
	"nextjs":   "Next.js",
	"next.js":  "Next.js",
	"next js":  "Next.js",

	// Node / Express
	"node":       "Node.js",
	"nodejs":     "Node.js",
	"node.js":    "Node.js",
	"node js":    "Node.js",
	"express":    "Express",
	"expressjs":  "Express",
	"express.js": "Express",
	"express js": "Express",

	// Databases / infra / cloud
	"sql":                   "SQL",
	"postgres":              "PostgreSQL",
	"postgresql":            "PostgreSQL",
	"psql":                  "PostgreSQL",
	"mongodb":               "MongoDB",
	"mongo":                 "MongoDB",
	"redis":                 "Redis",
	"docker":                "Docker",
	"docker compose":        "Docker",
	"docker-compose":        "Docker",
	"k8s":                   "Kubernetes",
	"kubernetes":            "Kubernetes",
	"aws":                   "AWS",
	"amazon web services":   "AWS",
	"gcp":                   "Google Cloud",
	"google cloud":          "Google Cloud",
	"google cloud platform": "Google Cloud",
	"azure":                 "Azure",

	// .NET / C family
	".net":    ".NET",
	"dotnet":  ".NET",
	"asp.net": ".NET",
	"asp net": ".NET",
	"c#":      "C#",
	"c sharp": "C#",
	"c-sharp": "C#",
	"c++":     "C++",
	"cpp":     "C++",
	"go":      "Go",
	"golang":  "Go",

	// Tools
	"git":       "Git",
	"github":    "Git",
	"gitlab":    "Git",
	"bitbucket": "Git",

	// Spoken languages and ML shorthand
	"englisch": "English",
	"deutsch":  "German",
	"ml":       "Machine Learning",
	"ai":       "Artificial Intelligence",
}
