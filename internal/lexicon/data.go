package lexicon

// defaultStopwords are never reported as keywords
var defaultStopwords = []string{
	// articles, conjunctions, prepositions
	"and", "or", "the", "a", "an", "to", "for", "of", "in", "on", "at",
	"with", "by", "is", "are", "was", "were", "as", "that", "this",
	"from", "be", "have", "has", "had", "it", "its", "will", "can",
	"but", "if", "than", "then", "so", "because", "while", "when",
	"about", "into", "over", "under", "up", "down", "out", "off",
	"also", "just", "very", "more", "most", "such",

	// pronouns
	"i", "me", "my", "mine",
	"you", "your", "yours",
	"he", "him", "his",
	"she", "her", "hers",
	"we", "us", "our", "ours",
	"they", "them", "their", "theirs",
	"someone", "everyone", "anyone",

	// generic nouns
	"team", "teams", "work", "working", "works",
	"role", "roles",
	"customer", "customers",
	"people", "person",
	"user", "users",
	"time", "day", "days",
	"year", "years",
	"way", "ways",
	"thing", "things",
	"part", "parts",

	// generic verbs and adjectives
	"ensure", "ensures", "ensured",
	"use", "uses", "using", "used",
	"own", "owned", "owning",
	"build", "builds", "building", "built",
	"help", "helps", "helping", "helped",
	"make", "makes", "making", "made",
	"take", "takes", "taking", "taken",
	"drive", "drives", "driving", "driven",
	"closely", "every", "each", "many", "few",
	"strong", "great", "good", "better", "best",
	"high", "low", "new", "old",
}

var defaultTools = []string{
	"sql", "python", "r", "tableau", "powerbi", "excel", "looker",
	"jira", "confluence", "figma", "miro",
	"aws", "azure", "gcp", "snowflake", "databricks",
	"airflow", "dbt",
	"java", "javascript", "typescript", "react", "node",
	"spark", "hadoop",
	"kanban", "salesforce",
	"kubernetes", "docker",
	"api", "apis",
	"postman", "git", "github",
}

var defaultSkills = []string{
	"roadmap", "backlog", "prioritization", "prioritize",
	"discovery", "experimentation", "experiment", "experiments",
	"testing", "ab", "hypothesis",
	"analytics", "analysis", "insights",
	"metrics", "kpis", "okr", "okrs",
	"stakeholder", "stakeholders",
	"research", "ux", "design",
	"agile", "scrum", "sprint",
	"requirements", "stories", "story",
	"estimation", "grooming",
	"optimization", "optimize",
	"segmentation",
	"automation", "automations",
	"risk", "compliance",
	"leadership", "communication",
}

// defaultDomain seeds context words that are worth showing even when they occur once
var defaultDomain = []string{
	"product", "platform", "platforms",
	"payment", "payments",
	"billing", "claims",
	"credit", "debit",
	"card", "cards",
	"fraud", "chargeback", "dispute", "disputes",
	"fintech", "banking", "lending",
	"saas", "b2b", "b2c",
	"growth", "retention", "acquisition",
	"churn",
	"healthcare", "medical", "clinical",
	"travel", "booking", "bookings",
	"inventory", "orders", "order",
	"logistics", "supply", "supplychain",
	"ai", "ml", "llm", "models",
	"agents", "agent",
	"experience", "experiences",
	"features", "launch", "launches",
	"data", "datasets",
	"workflow", "workflows",
	"enterprise", "enterprises",
}

var defaultStrongVerbs = []string{
	"led", "owned", "drove", "built", "created", "launched", "shipped",
	"improved", "increased", "reduced", "designed", "optimized", "managed",
	"delivered", "implemented", "developed", "scaled",
}

var defaultWeakOpeners = []string{
	"responsible for",
	"worked on",
	"helped",
}
