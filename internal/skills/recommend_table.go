package skills

import "github.com/Tharuni-2310/ProFile-Analyser/internal/types"

// fieldCourses lists suggested courses per field.
var fieldCourses = []fieldList{
	{types.FieldDataScience, []string{
		"Data Science with Python – IBM (Coursera)", "Machine Learning A-Z – Udemy",
		"Python for Data Science – DataCamp", "SQL for Data Analysis – Mode Analytics",
		"Statistics for Data Science – Coursera",
		"Deep Learning Specialization – DeepLearning.AI (Coursera)",
	}},
	{types.FieldWebDevelopment, []string{
		"React for Beginners – Udemy", "Full Stack with Django – Udemy",
		"JavaScript Complete Guide – Udemy", "Node.js Bootcamp – Udemy",
		"MongoDB Complete Course – Udemy", "Git & GitHub Crash Course – Udemy",
	}},
	{types.FieldAndroidDevelopment, []string{
		"Android with Kotlin – Udemy", "Build Apps with Firebase – Udemy",
		"Android App Development – Coursera", "Kotlin for Android – Udemy",
		"Android Studio Masterclass – Udemy",
	}},
	{types.FieldUIUX, []string{
		"Figma UI Basics – Udemy", "UX Design Crash Course – Udemy", "Adobe XD Complete Course – Udemy",
		"User Research Methods – Coursera", "Prototyping with Figma – Udemy",
	}},
	{types.FieldArtificialIntelligence, []string{
		"Deep Learning Specialization – DeepLearning.AI (Coursera)",
		"Natural Language Processing with BERT (Coursera)", "AI For Everyone (Coursera)",
		"Computer Vision with OpenCV – Udemy", "Machine Learning with Python – Coursera",
		"TensorFlow Developer Certificate – Google",
	}},
	{types.FieldCybersecurity, []string{
		"Introduction to Cyber Security (Coursera)", "Network Security (Udemy)",
		"Penetration Testing (NPTEL)", "Ethical Hacking Course – Udemy",
		"CompTIA Security+ Certification – Udemy", "CEH v12 Complete Course – Udemy",
	}},
	{types.FieldCloudComputing, []string{
		"AWS Cloud Practitioner Essentials (AWS)", "Azure Fundamentals (Microsoft)",
		"DevOps on AWS (Coursera)", "CI/CD with GitHub Actions (Coursera)",
		"Docker Complete Course – Udemy", "Kubernetes for Beginners – Udemy",
	}},
	{types.FieldSoftwareDevelopment, []string{
		"Java Programming (Coursera)", "Data Structures & Algorithms (Coursera)",
		"Git & GitHub Bootcamp (Udemy)", "Python Complete Course – Udemy", "C++ Programming – Udemy",
		"System Design Interview Course – Udemy",
	}},
	{types.FieldBusinessAnalyst, []string{
		"Business Analysis Fundamentals (Udemy)", "Excel to MySQL: Analytics for Business (Coursera)",
		"SQL for Business Analysts – Udemy", "Power BI Complete Course – Udemy",
		"Tableau for Data Science – Udemy", "Business Process Modeling – Udemy",
	}},
	{types.FieldProductManagement, []string{
		"Digital Product Management (Coursera)", "Product Management by Pragmatic Institute",
		"Agile Project Management – Udemy", "User Story Mapping – Udemy",
		"Product Strategy Course – Udemy", "A/B Testing for Product Managers – Udemy",
	}},
	{types.FieldMobileAppDevelopment, []string{
		"iOS App Development with Swift (Coursera)", "Flutter & Dart (Udemy)",
		"React Native Complete Course – Udemy", "Mobile App Development – Udemy",
		"Cross-Platform Development – Udemy",
	}},
	{types.FieldGameDevelopment, []string{
		"Game Development with Unity (Coursera)", "Unreal Engine C++ Developer (Udemy)",
		"Unity 2D Game Development – Udemy", "3D Modeling with Blender – Udemy",
		"Game Design Principles – Udemy",
	}},
	{types.FieldFinance, []string{
		"Financial Markets – Yale (Coursera)", "Accounting Fundamentals (Udemy)",
		"Investment Management – Coursera", "Financial Modeling – Udemy", "Risk Management – Coursera",
		"Portfolio Management – Udemy",
	}},
	{types.FieldHR, []string{
		"Human Resource Management (Coursera)", "HR Analytics (Udemy)",
		"Recruitment and Selection – Udemy", "Employee Relations – Udemy", "HR Compliance – Udemy",
		"Performance Management – Udemy",
	}},
	{types.FieldDigitalMarketing, []string{
		"Digital Marketing Specialization (Coursera)", "SEO Training (Udemy)",
		"Google Analytics (Coursera)", "Social Media Marketing – Udemy", "Email Marketing – Udemy",
		"Content Marketing – Udemy",
	}},
	{types.FieldBlockchain, []string{
		"Blockchain Basics – Coursera", "Ethereum Development – Udemy", "Solidity Programming – Udemy",
		"Web3 Development – Udemy", "Cryptocurrency Trading – Udemy", "DeFi Fundamentals – Udemy",
	}},
	{types.FieldDevOps, []string{
		"DevOps Fundamentals – Udemy", "Docker and Kubernetes – Udemy", "CI/CD Pipeline – Udemy",
		"Terraform for Beginners – Udemy", "Ansible Automation – Udemy",
		"Monitoring and Logging – Udemy",
	}},
	{types.FieldUIUXDesign, []string{
		"UI/UX Design Bootcamp – Udemy", "User Experience Design – Coursera",
		"Prototyping with Figma – Udemy", "Design Systems – Udemy", "User Research Methods – Udemy",
		"Accessibility Design – Udemy",
	}},
	{types.FieldARVR, []string{
		"Unity AR Development – Udemy", "VR Development with Unity – Udemy",
		"3D Modeling for VR – Udemy", "Spatial Computing – Coursera",
		"Mixed Reality Development – Udemy",
	}},
	{types.FieldIoT, []string{
		"IoT Fundamentals – Coursera", "Arduino Programming – Udemy", "Raspberry Pi Projects – Udemy",
		"IoT Security – Udemy", "Edge Computing – Udemy", "Sensor Networks – Udemy",
	}},
}

// fieldCertifications lists certifications worth pursuing per field.
var fieldCertifications = []fieldList{
	{types.FieldDataScience, []string{
		"Google Data Analytics", "IBM Data Science", "Microsoft Data Analyst Associate", "CISCO",
		"EDUSKILLS",
	}},
	{types.FieldWebDevelopment, []string{
		"Meta Front-End Certificate", "FreeCodeCamp Responsive Web Design",
	}},
	{types.FieldArtificialIntelligence, []string{
		"DeepLearning.AI Specialization", "Google AI Professional Certificate",
	}},
	{types.FieldCybersecurity, []string{
		"CompTIA Security+", "Certified Ethical Hacker (CEH)", "Cisco CCNA Security",
	}},
	{types.FieldCloudComputing, []string{
		"AWS Cloud Practitioner", "Azure Fundamentals", "Google Associate Cloud Engineer",
	}},
	{types.FieldSoftwareDevelopment, []string{
		"Oracle Certified Java Programmer", "Microsoft Certified: Azure Developer Associate",
	}},
	{types.FieldBusinessAnalyst, []string{
		"IIBA ECBA", "CBAP Certification",
	}},
	{types.FieldProductManagement, []string{
		"Pragmatic Institute Product Management", "Certified Scrum Product Owner (CSPO)",
	}},
	{types.FieldMobileAppDevelopment, []string{
		"Google Associate Android Developer", "Apple Certified iOS Developer",
	}},
	{types.FieldGameDevelopment, []string{
		"Unity Certified Developer", "Unreal Engine Certification",
	}},
	{types.FieldFinance, []string{
		"CFA Level 1", "CPA", "Financial Risk Manager (FRM)",
	}},
	{types.FieldHR, []string{
		"SHRM-CP", "HRCI PHR",
	}},
	{types.FieldDigitalMarketing, []string{
		"Google Analytics Individual Qualification", "HubSpot Content Marketing",
	}},
	{types.FieldUIUX, []string{
		"NN/g UX Certification", "Adobe Certified Expert",
	}},
}

// fieldProjectIdeas lists portfolio project ideas per field.
var fieldProjectIdeas = []fieldList{
	{types.FieldDataScience, []string{
		"Movie Recommendation System (ML)", "E-commerce Sales Dashboard (Tableau/Excel)",
		"Customer Churn Prediction", "Stock Price Predictor",
	}},
	{types.FieldWebDevelopment, []string{
		"Portfolio Website (HTML/CSS/JS)", "Blog Platform (Django/Flask)",
		"E-commerce Store (React/Node)",
	}},
	{types.FieldAndroidDevelopment, []string{
		"Expense Tracker App (Kotlin)", "Weather App (Java)", "Chat App (Firebase)",
	}},
	{types.FieldUIUX, []string{
		"Mobile App Redesign (Figma)", "Landing Page UI (Adobe XD)", "User Flow Mapping",
	}},
	{types.FieldArtificialIntelligence, []string{
		"Fake News Detection using BERT", "Image Captioning with CNN+RNN",
		"Speech Recognition System (Deep Learning)", "Chatbot with Transformers",
	}},
	{types.FieldCybersecurity, []string{
		"Network Vulnerability Scanner", "Phishing Detection System", "Firewall Rule Automation",
		"SIEM Log Analyzer",
	}},
	{types.FieldCloudComputing, []string{
		"Deploy a CI/CD pipeline with GitHub Actions and AWS", "Serverless Web App (AWS Lambda)",
		"Multi-cloud Monitoring Dashboard",
	}},
	{types.FieldSoftwareDevelopment, []string{
		"Library Management System (Java)", "Task Manager App (Python)", "REST API with Flask/Django",
	}},
	{types.FieldBusinessAnalyst, []string{
		"Sales Data Dashboard (PowerBI)", "Process Optimization Case Study",
		"Customer Segmentation Analysis",
	}},
	{types.FieldProductManagement, []string{
		"Go-to-Market Strategy Plan", "User Feedback Analysis Tool", "Product Roadmap Dashboard",
	}},
	{types.FieldMobileAppDevelopment, []string{
		"Fitness Tracker App (Flutter)", "Recipe App (iOS/Swift)", "Event Planner App (React Native)",
	}},
	{types.FieldGameDevelopment, []string{
		"2D Platformer Game (Unity)", "Multiplayer Card Game (Unreal)", "VR Puzzle Game",
	}},
	{types.FieldFinance, []string{
		"Stock Portfolio Tracker (Excel/Python)", "Loan Default Prediction (ML)",
		"Financial Statement Analyzer",
	}},
	{types.FieldHR, []string{
		"Employee Onboarding Portal", "HR Analytics Dashboard", "Leave Management System",
	}},
	{types.FieldDigitalMarketing, []string{
		"SEO Audit & Digital Campaign (Google Analytics)", "Social Media Sentiment Analysis",
		"Email Campaign Automation",
	}},
}
