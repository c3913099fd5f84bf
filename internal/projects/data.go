package projects

// All is the project gallery.
var All = []Project{
	{
		ID:    1,
		Title: "Campus Navigation App",
		Description: `A hybrid indoor-outdoor navigation app built with Flutter and the Google Maps API.
	Route clarity improved by 40% and navigation efficiency by 30% using Dijkstra's algorithm.`,
		Image:        "https://images.unsplash.com/photo-1563013544-824ae1b704d3?auto=format&fit=crop&w=800&q=80",
		Technologies: []string{"Flutter", "Google Maps API", "Dijkstra's Algorithm"},
		GitHub:       "https://github.com/Zachkp/campus-navigation-app",
		Featured:     true,
	},
	{
		ID:    2,
		Title: "Real-Time Chat Application",
		Description: `A chat platform built with Spring Boot and React.js, with real-time messaging
	over WebSockets that lifted usage metrics by 15%.`,
		Image:        "https://images.unsplash.com/photo-1611746872915-64382b5c76da?auto=format&fit=crop&w=800&q=80",
		Technologies: []string{"React", "Spring Boot", "WebSocket"},
		GitHub:       "https://github.com/Zachkp/chat-app",
		Featured:     true,
	},
	{
		ID:    3,
		Title: "Agro - Smart Farming Assistant",
		Description: `A full-stack web platform that helps farmers optimize soil and crop decisions,
	improving yield by 20% and decision-making speed by 25%.`,
		Image:        "https://images.unsplash.com/photo-1554224155-6726b3ff858f?auto=format&fit=crop&w=800&q=80",
		Technologies: []string{"React", "Node.js", "MongoDB"},
		GitHub:       "https://github.com/Zachkp/agro-smart-farming",
		Featured:     true,
	},
	{
		ID:    4,
		Title: "Machine Learning Classification Model",
		Description: `A classification model with an average precision of 82%, improved by 15%
	through feature engineering and hyperparameter tuning.`,
		Image:        "https://images.unsplash.com/photo-1531991340693-af878c384f52?auto=format&fit=crop&w=800&q=80",
		Technologies: []string{"Python", "TensorFlow", "Machine Learning"},
		GitHub:       "https://github.com/Zachkp/ml-classification-model",
	},
}
