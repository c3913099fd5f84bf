package main

var (
	AboutMe = `I love building software that's both useful and fun, and I'm always curious about how things work behind the scenes.
	Most of my projects start with a simple idea and turn into a chance to learn something new, whether it's exploring a
	different language, experimenting with tools, or solving tricky problems.
	When I'm not coding, you'll usually find me at a hackathon, reading about system design,
	or chasing down a new challenge outside the screen.`

	Tagline = `Transforming ideas into reality through code. Explore my journey,
	skills, and proficiency across the technology landscape.`
)

// ResumeEntry is one block of the resume: a job or a degree.
type ResumeEntry struct {
	Title       string
	Org         string
	Location    string
	Period      string
	Description string
	LogoPath    string
	Bullets     []string
	Tags        []string
}

// Certification is a course or credential.
type Certification struct {
	Name   string
	Issuer string
	Date   string
}

var Experience = []ResumeEntry{
	{
		Title:       "Machine Learning Intern",
		Org:         "Aican Automate",
		Location:    "Remote",
		Period:      "Aug 2022 - Sep 2022",
		Description: "Applied machine learning concepts to real-world classification challenges.",
		Bullets: []string{
			"Achieved an average precision of 82% using Python and TensorFlow",
			"Collaborated with a team to optimize hyperparameters, reducing training time by 20%",
		},
		Tags: []string{"Python", "TensorFlow"},
	},
}

var Education = []ResumeEntry{
	{
		Title:       "Master of Computer Applications (MCA)",
		Org:         "Vellore Institute of Technology (VIT)",
		Location:    "Vellore, India",
		Period:      "2024 - 2026",
		Description: "Specializing in advanced computing and software engineering.",
		Bullets: []string{
			"Research Assistant",
			"Data Structures and Algorithms coursework",
			"Participated in Hackathons",
		},
	},
	{
		Title:       "Bachelor of Computer Applications (BCA)",
		Org:         "Dr. Virendra Swaroop Institute of Computer Studies",
		Location:    "Kanpur, Uttar Pradesh, India",
		Period:      "2021 - 2024",
		Description: "Focused on software development and programming principles.",
		Bullets: []string{
			"Media and Publication Committee Coordinator",
			"Coding Club Member",
			"Participated in various coding competitions",
		},
	},
}

var Certifications = []Certification{
	{Name: "Responsive Web Design", Issuer: "freeCodeCamp", Date: "Apr 2025"},
	{Name: "Prompt Design in Vertex AI", Issuer: "Google", Date: "Feb 2025"},
	{Name: "Foundations of UX Design", Issuer: "Google", Date: "Mar 2024"},
	{Name: "Career Essentials in Generative AI", Issuer: "Microsoft LinkedIn", Date: "Oct 2023"},
	{Name: "Android Development", Issuer: "Dr. Virendra Swaroop Institute", Date: "Aug 2023"},
	{Name: "Machine Learning", Issuer: "Teachnook Wissenarie, IIT Bhubaneswar", Date: "Oct 2022"},
}
