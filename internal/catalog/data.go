package catalog

// Default is the catalog shown on the skills page.
var Default = MustNew(
	Category{Name: "Frontend", Skills: []Skill{
		{Name: "React.js", Level: 90, Icon: "devicon-react-original colored", Color: "#61DAFB"},
		{Name: "JavaScript", Level: 92, Icon: "devicon-javascript-plain colored", Color: "#F7DF1E"},
		{Name: "HTML5", Level: 95, Icon: "devicon-html5-plain colored", Color: "#E34F26"},
		{Name: "CSS3", Level: 90, Icon: "devicon-css3-plain colored", Color: "#1572B6"},
		{Name: "Tailwind CSS", Level: 84, Icon: "devicon-tailwindcss-plain colored", Color: "#38B2AC"},
		{Name: "Vue.js", Level: 78, Icon: "devicon-vuejs-plain colored", Color: "#4FC08D"},
	}},
	Category{Name: "Backend", Skills: []Skill{
		{Name: "Node.js", Level: 85, Icon: "devicon-nodejs-plain colored", Color: "#339933"},
		{Name: "Python", Level: 88, Icon: "devicon-python-plain colored", Color: "#3776AB"},
		{Name: "Java", Level: 80, Icon: "devicon-java-plain colored", Color: "#007396"},
		{Name: "C++", Level: 77, Icon: "devicon-cplusplus-plain colored", Color: "#00599C"},
		{Name: "PHP", Level: 72, Icon: "devicon-php-plain colored", Color: "#777BB4"},
	}},
	Category{Name: "Database", Skills: []Skill{
		{Name: "MongoDB", Level: 78, Icon: "devicon-mongodb-plain colored", Color: "#47A248"},
		{Name: "MySQL", Level: 80, Icon: "devicon-mysql-plain colored", Color: "#4479A1"},
		{Name: "Firebase", Level: 65, Icon: "devicon-firebase-plain colored", Color: "#FFCA28"},
		{Name: "PostgreSQL", Level: 70, Icon: "devicon-postgresql-plain colored", Color: "#336791"},
	}},
	Category{Name: "Tools", Skills: []Skill{
		{Name: "Git", Level: 85, Icon: "devicon-git-plain colored", Color: "#F05032"},
		{Name: "Docker", Level: 75, Icon: "devicon-docker-plain colored", Color: "#2496ED"},
		{Name: "Figma", Level: 70, Icon: "devicon-figma-plain colored", Color: "#F24E1E"},
		{Name: "Android Studio", Level: 70, Icon: "devicon-android-plain colored", Color: "#3DDC84"},
		{Name: "Flutter", Level: 65, Icon: "devicon-flutter-plain colored", Color: "#02569B"},
	}},
)

// Milestone is a year on the learning journey timeline.
type Milestone struct {
	Year       string
	Milestones []string
}

// LearningJourney is rendered oldest first.
var LearningJourney = []Milestone{
	{Year: "2022", Milestones: []string{
		"Mastered React advanced patterns and state management",
		"Learned Node.js backend development and REST API design",
		"Started exploring TypeScript for type-safe applications",
	}},
	{Year: "2023", Milestones: []string{
		"Deep dived into cloud infrastructure with AWS",
		"Built CI/CD pipelines with GitHub Actions",
		"Implemented GraphQL APIs for efficient data fetching",
	}},
	{Year: "2024", Milestones: []string{
		"Specialized in NextJS and full-stack applications",
		"Studied system design and architecture patterns",
		"Developed skills in data visualization libraries",
	}},
	{Year: "2025", Milestones: []string{
		"Advanced AI/ML integration in web applications",
		"Exploring blockchain development and Web3",
		"Contributing to open-source projects",
	}},
}
