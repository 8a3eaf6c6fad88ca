package skills

import "github.com/Tharuni-2310/ProFile-Analyser/internal/types"

type fieldList struct {
	field types.Field
	items []string
}

// fieldKeywords is the keyword taxonomy in classification order.
// Earlier fields win ties.
var fieldKeywords = []fieldList{
	{types.FieldDataScience, []string{
		"python", "machine learning", "pandas", "numpy", "tensorflow", "data analysis", "scikit-learn",
		"sklearn", "jupyter", "matplotlib", "seaborn", "plotly", "sql", "postgresql", "mysql", "mongodb",
		"spark", "hadoop", "kafka", "powerbi", "tableau", "excel", "r", "statistics", "regression",
		"classification", "clustering", "nlp", "natural language processing", "deep learning",
		"neural networks",
	}},
	{types.FieldWebDevelopment, []string{
		"html", "css", "javascript", "js", "react", "vue", "angular", "node", "nodejs", "flask",
		"django", "express", "mongodb", "mysql", "postgresql", "rest api", "graphql", "typescript", "ts",
		"bootstrap", "tailwind", "sass", "less", "webpack", "babel", "npm", "yarn", "git", "github",
		"docker", "kubernetes",
	}},
	{types.FieldAndroidDevelopment, []string{
		"android", "kotlin", "java", "xml", "gradle", "android studio", "firebase", "room database",
		"retrofit", "okhttp", "glide", "picasso", "jetpack compose", "material design", "mvvm", "mvp",
		"dagger", "hilt", "coroutines", "flow",
	}},
	{types.FieldUIUX, []string{
		"figma", "adobe xd", "photoshop", "sketch", "invision", "protopie", "framer", "wireframing",
		"prototyping", "user research", "usability testing", "design systems", "responsive design",
		"accessibility", "wcag", "user personas", "journey mapping",
	}},
	{types.FieldArtificialIntelligence, []string{
		"deep learning", "neural networks", "nlp", "bert", "transformers", "pytorch", "keras",
		"tensorflow", "opencv", "computer vision", "cnn", "rnn", "lstm", "gru", "gan",
		"reinforcement learning", "q-learning", "openai", "gpt", "chatgpt", "langchain",
	}},
	{types.FieldCybersecurity, []string{
		"network security", "penetration testing", "pen testing", "firewalls", "siem",
		"vulnerability assessment", "encryption", "ssl", "tls", "wireshark", "nmap", "metasploit",
		"burp suite", "owasp", "ethical hacking", "ceh", "comptia security+", "cryptography",
		"hash functions", "digital signatures", "vpn", "ids", "ips",
	}},
	{types.FieldCloudComputing, []string{
		"aws", "amazon web services", "azure", "gcp", "google cloud", "cloud", "devops", "docker",
		"kubernetes", "k8s", "ci/cd", "jenkins", "gitlab", "github actions", "terraform", "ansible",
		"serverless", "lambda", "ec2", "s3", "rds", "vpc", "load balancer", "auto scaling",
		"cloudformation", "cloudwatch",
	}},
	{types.FieldSoftwareDevelopment, []string{
		"c++", "cpp", "java", "python", "oop", "object oriented programming", "git", "algorithms",
		"data structures", "leetcode", "hackerrank", "design patterns", "microservices", "api", "rest",
		"graphql", "testing", "unit testing", "integration testing", "tdd", "bdd", "agile", "scrum",
		"kanban", "jira", "confluence",
	}},
	{types.FieldBusinessAnalyst, []string{
		"business analysis", "requirement gathering", "process modeling", "sql", "excel", "powerbi",
		"tableau", "jira", "confluence", "user stories", "use cases", "bpmn", "uml", "data modeling",
		"er diagrams", "stakeholder management", "gap analysis", "swot analysis", "root cause analysis",
	}},
	{types.FieldProductManagement, []string{
		"roadmap", "product strategy", "user stories", "agile", "scrum", "market research",
		"competitive analysis", "user personas", "journey mapping", "a/b testing", "analytics",
		"google analytics", "mixpanel", "amplitude", "jira", "confluence", "figma", "prototyping", "mvp",
		"minimum viable product",
	}},
	{types.FieldMobileAppDevelopment, []string{
		"android", "ios", "swift", "kotlin", "flutter", "react native", "xamarin", "mobile development",
		"app store", "google play", "firebase", "push notifications", "in-app purchases", "mobile ui",
		"responsive design", "cross platform",
	}},
	{types.FieldGameDevelopment, []string{
		"unity", "unreal", "c#", "game design", "3d modeling", "physics engine", "blender", "maya",
		"3ds max", "game mechanics", "level design", "character design", "animation", "rigging",
		"texturing", "shaders", "game physics", "ai in games",
	}},
	{types.FieldFinance, []string{
		"accounting", "financial analysis", "excel", "valuation", "markets", "investment",
		"portfolio management", "risk management", "derivatives", "options", "futures", "bonds",
		"stocks", "mutual funds", "etf", "financial modeling", "dcf", "npv", "irr",
	}},
	{types.FieldHR, []string{
		"recruitment", "onboarding", "payroll", "employee engagement", "hrms", "compliance",
		"performance management", "talent acquisition", "employee relations", "benefits", "compensation",
		"training", "development", "diversity", "inclusion", "workplace culture",
	}},
	{types.FieldDigitalMarketing, []string{
		"seo", "search engine optimization", "sem", "search engine marketing", "google analytics",
		"content marketing", "social media", "email marketing", "ppc", "google ads", "facebook ads",
		"instagram ads", "linkedin ads", "conversion optimization", "landing pages", "a/b testing",
		"marketing automation", "hubspot", "mailchimp",
	}},
	{types.FieldBlockchain, []string{
		"blockchain", "bitcoin", "ethereum", "solidity", "smart contracts", "web3", "defi",
		"decentralized finance", "nft", "non-fungible tokens", "cryptocurrency", "hyperledger",
		"consensus algorithms", "proof of work", "proof of stake", "metamask", "ipfs",
		"interplanetary file system",
	}},
	{types.FieldDevOps, []string{
		"devops", "ci/cd", "continuous integration", "continuous deployment", "jenkins", "gitlab ci",
		"github actions", "docker", "kubernetes", "terraform", "ansible", "prometheus", "grafana",
		"elk stack", "elasticsearch", "logstash", "kibana", "monitoring", "logging",
		"infrastructure as code", "iac",
	}},
	{types.FieldUIUXDesign, []string{
		"ui design", "ux design", "user interface", "user experience", "figma", "sketch", "adobe xd",
		"invision", "prototyping", "wireframing", "user research", "usability testing", "design systems",
		"responsive design", "mobile design", "accessibility", "wcag", "user personas",
		"journey mapping",
	}},
	{types.FieldARVR, []string{
		"augmented reality", "virtual reality", "ar", "vr", "unity", "unreal engine", "oculus",
		"htc vive", "hololens", "3d modeling", "blender", "maya", "spatial computing", "mixed reality",
		"mr", "computer vision", "tracking",
	}},
	{types.FieldIoT, []string{
		"internet of things", "iot", "raspberry pi", "arduino", "sensors", "mqtt", "coap",
		"edge computing", "fog computing", "embedded systems", "microcontrollers", "wireless protocols",
		"bluetooth", "wifi", "zigbee", "lorawan", "nb-iot",
	}},
}
